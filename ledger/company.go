package ledger

import (
	"fmt"

	"bourse/models"
	"bourse/pricing"

	"gorm.io/gorm"
)

type CreateCompanyResult struct {
	Company         *models.Company `json:"company"`
	SharesIssued    int64           `json:"shares_issued"`
	SharesRetained  int64           `json:"shares_retained"`
	SharesAvailable int64           `json:"shares_available"`
}

// CreateCompany founds a company. The founder pays the full capital from
// their wallet; capital converts to shares at the policy's
// capital-per-share rate, and the founder may retain up to that many
// shares for themselves. The rest becomes available supply.
func (l *Ledger) CreateCompany(userID uint, name, ticker, description, logoColor string, capital, retainedShares int64) (*CreateCompanyResult, error) {
	if retainedShares < 0 {
		return nil, ErrNegativeRetained
	}

	shares := pricing.SharesFromCapital(capital, l.policy.CapitalPerShare)
	if shares < 1 {
		return nil, fmt.Errorf("%w: %d raises no shares at %d per share", ErrBelowMinimum, capital, l.policy.CapitalPerShare)
	}
	if retainedShares > shares {
		return nil, fmt.Errorf("%w: %d issued, %d retained", ErrRetainedExceedsIssued, shares, retainedShares)
	}

	var result *CreateCompanyResult
	err := l.db.Transaction(func(tx *gorm.DB) error {
		existing, err := models.GetCompanyByTicker(tx, ticker)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateSymbol, ticker)
		}

		if err := debitWallet(tx, userID, capital); err != nil {
			return fmt.Errorf("%w to found a company with %d capital", ErrInsufficientFunds, capital)
		}

		company := models.Company{
			Name:         name,
			Ticker:       ticker,
			Description:  description,
			LogoColor:    logoColor,
			Capital:      capital,
			IssuedShares: shares,
			CreatorID:    userID,
		}
		if err := tx.Create(&company).Error; err != nil {
			return err
		}

		stock := models.Stock{
			CompanyID: company.ID,
			Price:     l.policy.InitialSharePrice,
		}
		if err := tx.Create(&stock).Error; err != nil {
			return err
		}

		if _, err := models.CreatePricePoint(tx, stock.ID, stock.Price); err != nil {
			return err
		}

		if retainedShares > 0 {
			if err := upsertHolding(tx, userID, company.ID, retainedShares); err != nil {
				return err
			}
		}

		text := fmt.Sprintf("Founded %s (%s) with %d capital, %d shares issued, %d retained",
			name, ticker, capital, shares, retainedShares)
		if err := models.CreateTransactionRecord(tx, userID, text); err != nil {
			return err
		}

		result = &CreateCompanyResult{
			Company:         &company,
			SharesIssued:    shares,
			SharesRetained:  retainedShares,
			SharesAvailable: shares - retainedShares,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Infow("company founded",
		"company_id", result.Company.ID, "ticker", ticker, "capital", capital, "shares", shares)

	return result, nil
}
