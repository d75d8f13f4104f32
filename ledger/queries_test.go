package ledger

import (
	"errors"
	"testing"
)

func TestStakeholders(t *testing.T) {
	l := newTestLedger(t, DefaultPolicy())
	founder := createTestUser(t, l, "founder", 10000)
	buyer := createTestUser(t, l, "buyer", 10000)
	companyID := foundCompany(t, l, founder.ID, "ACME", 1000, 6)

	if err := l.BuyShares(buyer.ID, companyID, 2); err != nil {
		t.Fatalf("buy: %v", err)
	}

	stakeholders, err := l.Stakeholders(companyID)
	if err != nil {
		t.Fatalf("Stakeholders: %v", err)
	}

	if len(stakeholders) != 2 {
		t.Fatalf("stakeholders = %d, want 2", len(stakeholders))
	}
	if stakeholders[0].UserID != founder.ID || stakeholders[0].Quantity != 6 {
		t.Errorf("top stakeholder = user %d with %d, want founder with 6",
			stakeholders[0].UserID, stakeholders[0].Quantity)
	}
	if stakeholders[0].Username != "founder" {
		t.Errorf("top stakeholder username = %q, want founder", stakeholders[0].Username)
	}
	if stakeholders[0].Percentage != 60 {
		t.Errorf("top percentage = %v, want 60", stakeholders[0].Percentage)
	}
	if stakeholders[1].Percentage != 20 {
		t.Errorf("second percentage = %v, want 20", stakeholders[1].Percentage)
	}
}

func TestStakeholdersEmptyCompany(t *testing.T) {
	l := newTestLedger(t, DefaultPolicy())
	founder := createTestUser(t, l, "founder", 10000)
	companyID := foundCompany(t, l, founder.ID, "ACME", 1000, 0)

	stakeholders, err := l.Stakeholders(companyID)
	if err != nil {
		t.Fatalf("Stakeholders: %v", err)
	}
	if len(stakeholders) != 0 {
		t.Errorf("stakeholders = %d, want empty list", len(stakeholders))
	}
}

func TestStakeholdersCompanyNotFound(t *testing.T) {
	l := newTestLedger(t, DefaultPolicy())

	_, err := l.Stakeholders(42)
	if !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("err = %v, want ErrCompanyNotFound", err)
	}
}

func TestCompanies(t *testing.T) {
	l := newTestLedger(t, DefaultPolicy())
	founder := createTestUser(t, l, "founder", 10000)
	foundCompany(t, l, founder.ID, "ACME", 1000, 4)
	foundCompany(t, l, founder.ID, "GLOB", 2000, 0)

	listings, err := l.Companies()
	if err != nil {
		t.Fatalf("Companies: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("listings = %d, want 2", len(listings))
	}

	acme := listings[0]
	if acme.Ticker != "ACME" {
		t.Fatalf("first listing = %s, want ACME", acme.Ticker)
	}
	if acme.AvailableShares != 6 {
		t.Errorf("ACME available = %d, want 6", acme.AvailableShares)
	}
	if acme.Price != 100 {
		t.Errorf("ACME price = %d, want 100", acme.Price)
	}
	if acme.CEOUserID != founder.ID || acme.CEOUsername != "founder" {
		t.Errorf("ACME CEO = %d/%q, want founder", acme.CEOUserID, acme.CEOUsername)
	}

	// No holders: no CEO.
	glob := listings[1]
	if glob.CEOUserID != 0 {
		t.Errorf("GLOB CEO = %d, want none", glob.CEOUserID)
	}
	if glob.AvailableShares != 20 {
		t.Errorf("GLOB available = %d, want 20", glob.AvailableShares)
	}
}

func TestUserHoldings(t *testing.T) {
	l := newTestLedger(t, DefaultPolicy())
	founder := createTestUser(t, l, "founder", 10000)
	buyer := createTestUser(t, l, "buyer", 10000)
	acmeID := foundCompany(t, l, founder.ID, "ACME", 1000, 0)
	globID := foundCompany(t, l, founder.ID, "GLOB", 1000, 0)

	if err := l.BuyShares(buyer.ID, acmeID, 5); err != nil {
		t.Fatalf("buy ACME: %v", err)
	}
	if err := l.BuyShares(buyer.ID, globID, 2); err != nil {
		t.Fatalf("buy GLOB: %v", err)
	}

	positions, err := l.UserHoldings(buyer.ID)
	if err != nil {
		t.Fatalf("UserHoldings: %v", err)
	}
	if len(positions) != 2 {
		t.Fatalf("positions = %d, want 2", len(positions))
	}

	// Ordered by quantity descending.
	if positions[0].Ticker != "ACME" || positions[0].Quantity != 5 {
		t.Errorf("first position = %s x%d, want ACME x5", positions[0].Ticker, positions[0].Quantity)
	}
	if positions[0].Value != 500 {
		t.Errorf("first position value = %d, want 500", positions[0].Value)
	}
	if positions[1].Name != "GLOB Corp" {
		t.Errorf("second position name = %q, want GLOB Corp", positions[1].Name)
	}
}

func TestPriceHistory(t *testing.T) {
	l := newTestLedger(t, DefaultPolicy())
	founder := createTestUser(t, l, "founder", 10000)
	companyID := foundCompany(t, l, founder.ID, "ACME", 1000, 10)

	if _, err := l.InvestInCompany(founder.ID, companyID, 300, 0); err != nil {
		t.Fatalf("invest: %v", err)
	}

	points, err := l.PriceHistory(companyID, 50)
	if err != nil {
		t.Fatalf("PriceHistory: %v", err)
	}
	// One point at founding, one per issuance.
	if len(points) != 2 {
		t.Errorf("points = %d, want 2", len(points))
	}
}

func TestResetDailyCounters(t *testing.T) {
	l := newTestLedger(t, DefaultPolicy())
	founder := createTestUser(t, l, "founder", 10000)
	buyer := createTestUser(t, l, "buyer", 10000)
	companyID := foundCompany(t, l, founder.ID, "ACME", 1000, 0)

	if err := l.BuyShares(buyer.ID, companyID, 3); err != nil {
		t.Fatalf("buy: %v", err)
	}
	if err := l.SellShares(buyer.ID, companyID, 1); err != nil {
		t.Fatalf("sell: %v", err)
	}

	if err := l.ResetDailyCounters(); err != nil {
		t.Fatalf("ResetDailyCounters: %v", err)
	}

	listing, err := l.CompanyByID(companyID)
	if err != nil {
		t.Fatalf("CompanyByID: %v", err)
	}
	if listing.AvailableShares != 8 {
		t.Errorf("available = %d, want 8", listing.AvailableShares)
	}

	var stock struct{ BoughtToday, SoldToday int64 }
	if err := l.db.Table("stocks").Where("company_id = ?", companyID).
		Select("bought_today, sold_today").Scan(&stock).Error; err != nil {
		t.Fatalf("loading counters: %v", err)
	}
	if stock.BoughtToday != 0 || stock.SoldToday != 0 {
		t.Errorf("counters = %d/%d, want 0/0", stock.BoughtToday, stock.SoldToday)
	}
}
