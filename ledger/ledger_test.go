package ledger

import (
	"testing"

	"bourse/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestLedger(t *testing.T, policy Policy) *Ledger {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// A single connection keeps every transaction on the one shared
	// in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Stock{},
		&models.Holding{},
		&models.ShareIssuanceEvent{},
		&models.PricePoint{},
		&models.TransactionRecord{},
		&models.FinanceSnapshot{},
	)
	if err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return New(db, zap.NewNop().Sugar(), policy)
}

func createTestUser(t *testing.T, l *Ledger, username string, money int64) *models.User {
	t.Helper()

	user, err := models.CreateUser(l.db, username, username+"@example.com", "hash", money)
	if err != nil {
		t.Fatalf("creating user %s: %v", username, err)
	}

	return user
}

func userMoney(t *testing.T, l *Ledger, userID uint) int64 {
	t.Helper()

	user, err := models.GetUserByID(l.db, userID)
	if err != nil || user == nil {
		t.Fatalf("loading user %d: %v", userID, err)
	}

	return user.Money
}

func holdingQuantity(t *testing.T, l *Ledger, userID, companyID uint) int64 {
	t.Helper()

	holding, err := models.GetHolding(l.db, userID, companyID)
	if err != nil {
		t.Fatalf("loading holding: %v", err)
	}
	if holding == nil {
		return 0
	}

	return holding.Quantity
}

// assertConservation checks the core invariant: shares held never exceed
// shares issued.
func assertConservation(t *testing.T, l *Ledger, companyID uint) {
	t.Helper()

	company, err := models.GetCompanyByID(l.db, companyID)
	if err != nil || company == nil {
		t.Fatalf("loading company %d: %v", companyID, err)
	}

	held, err := models.SumCompanyHoldings(l.db, companyID)
	if err != nil {
		t.Fatalf("summing holdings: %v", err)
	}

	if held > company.IssuedShares {
		t.Fatalf("conservation violated: %d held > %d issued", held, company.IssuedShares)
	}
}
