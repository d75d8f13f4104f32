package ledger

import (
	"bourse/models"
)

// CompanyListing is a company enriched with the derived fields callers
// care about: current price, unsold supply and the derived CEO.
type CompanyListing struct {
	models.Company
	Price           int64  `json:"price"`
	AvailableShares int64  `json:"available_shares"`
	CEOUserID       uint   `json:"ceo_user_id,omitempty"`
	CEOUsername     string `json:"ceo_username,omitempty"`
}

type Stakeholder struct {
	UserID     uint    `json:"user_id"`
	Username   string  `json:"username"`
	Quantity   int64   `json:"quantity"`
	Percentage float64 `json:"percentage"`
}

// Position is one entry of a user's portfolio, enriched with company and
// stock display data.
type Position struct {
	CompanyID uint   `json:"company_id"`
	Name      string `json:"name"`
	Ticker    string `json:"ticker"`
	LogoColor string `json:"logo_color"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
	Value     int64  `json:"value"`
}

func (l *Ledger) listing(company *models.Company) (*CompanyListing, error) {
	stock, err := models.GetStockByCompanyID(l.db, company.ID)
	if err != nil {
		return nil, err
	}

	held, err := models.SumCompanyHoldings(l.db, company.ID)
	if err != nil {
		return nil, err
	}

	listing := CompanyListing{
		Company:         *company,
		AvailableShares: company.IssuedShares - held,
	}
	if stock != nil {
		listing.Price = stock.Price
	}

	top, err := models.GetTopHolder(l.db, company.ID)
	if err != nil {
		return nil, err
	}
	if top != nil {
		ceo, err := models.GetUserByID(l.db, top.UserID)
		if err != nil {
			return nil, err
		}
		if ceo != nil {
			listing.CEOUserID = ceo.ID
			listing.CEOUsername = ceo.Username
		}
	}

	return &listing, nil
}

// Companies lists every company with its derived fields.
func (l *Ledger) Companies() ([]CompanyListing, error) {
	companies, err := models.GetCompanies(l.db)
	if err != nil {
		return nil, err
	}

	listings := make([]CompanyListing, 0, len(companies))
	for i := range companies {
		listing, err := l.listing(&companies[i])
		if err != nil {
			return nil, err
		}
		listings = append(listings, *listing)
	}

	return listings, nil
}

func (l *Ledger) CompanyByID(companyID uint) (*CompanyListing, error) {
	company, err := models.GetCompanyByID(l.db, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	return l.listing(company)
}

// Stakeholders ranks a company's holders by position size, each
// annotated with their percentage of issued shares. A company no one
// holds yields an empty list, not an error.
func (l *Ledger) Stakeholders(companyID uint) ([]Stakeholder, error) {
	company, err := models.GetCompanyByID(l.db, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}

	var holdings []models.Holding
	err = l.db.Preload("User").
		Where("company_id = ?", companyID).Order("quantity DESC").
		Find(&holdings).Error
	if err != nil {
		return nil, err
	}

	stakeholders := make([]Stakeholder, 0, len(holdings))
	for _, holding := range holdings {
		stakeholder := Stakeholder{
			UserID:   holding.UserID,
			Username: holding.User.Username,
			Quantity: holding.Quantity,
		}
		if company.IssuedShares > 0 {
			stakeholder.Percentage = float64(holding.Quantity) / float64(company.IssuedShares) * 100
		}
		stakeholders = append(stakeholders, stakeholder)
	}

	return stakeholders, nil
}

// UserHoldings returns a user's portfolio enriched with company and
// stock display data.
func (l *Ledger) UserHoldings(userID uint) ([]Position, error) {
	holdings, err := models.GetUserHoldings(l.db, userID)
	if err != nil {
		return nil, err
	}

	positions := make([]Position, 0, len(holdings))
	for _, holding := range holdings {
		company, err := models.GetCompanyByID(l.db, holding.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			continue
		}

		stock, err := models.GetStockByCompanyID(l.db, holding.CompanyID)
		if err != nil {
			return nil, err
		}

		position := Position{
			CompanyID: company.ID,
			Name:      company.Name,
			Ticker:    company.Ticker,
			LogoColor: company.LogoColor,
			Quantity:  holding.Quantity,
		}
		if stock != nil {
			position.Price = stock.Price
			position.Value = stock.Price * holding.Quantity
		}
		positions = append(positions, position)
	}

	return positions, nil
}

// PriceHistory returns the most recent price points for a company's
// stock, newest first.
func (l *Ledger) PriceHistory(companyID uint, limit int) ([]models.PricePoint, error) {
	stock, err := models.GetStockByCompanyID(l.db, companyID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, ErrCompanyNotFound
	}

	return models.GetStockPricePoints(l.db, stock.ID, limit)
}
