package ledger

import (
	"fmt"
	"time"

	"bourse/models"
	"bourse/pricing"

	"gorm.io/gorm"
)

type InvestmentResult struct {
	NewShares      int64 `json:"new_shares"`
	NewTotalShares int64 `json:"new_total_shares"`
	NewCapital     int64 `json:"new_capital"`
	NewSharePrice  int64 `json:"new_share_price"`
	RetainedShares int64 `json:"retained_shares"`
}

// InvestInCompany lets the company's current CEO — the largest
// shareholder, re-derived on every call — put fresh capital in and mint
// new shares at the current price. The investor may retain part of the
// mint; the rest lands in the available supply, diluting every existing
// holder. Issuance logs a price point at the unchanged price, an
// append-only issuance event, and a finance snapshot.
func (l *Ledger) InvestInCompany(userID, companyID uint, investmentAmount, retainedShares int64) (*InvestmentResult, error) {
	if retainedShares < 0 {
		return nil, ErrNegativeRetained
	}

	unlock := l.locks.Acquire(companyID)
	defer unlock()

	var result *InvestmentResult
	err := l.db.Transaction(func(tx *gorm.DB) error {
		company, err := models.GetCompanyByID(tx, companyID)
		if err != nil {
			return err
		}
		if company == nil {
			return ErrCompanyNotFound
		}

		stock, err := models.GetStockByCompanyID(tx, companyID)
		if err != nil {
			return err
		}
		if stock == nil {
			return ErrStockNotFound
		}

		top, err := models.GetTopHolder(tx, companyID)
		if err != nil {
			return err
		}
		if top == nil {
			return ErrNoShareholders
		}
		if top.UserID != userID {
			return ErrNotAuthorized
		}

		if stock.Price <= 0 {
			return ErrInvalidPrice
		}
		if investmentAmount < stock.Price {
			return fmt.Errorf("%w: %d is less than the %d share price", ErrBelowMinimum, investmentAmount, stock.Price)
		}

		newShares := investmentAmount / stock.Price
		actualCost := newShares * stock.Price
		if retainedShares > newShares {
			return fmt.Errorf("%w: minting %d, retaining %d", ErrRetainedExceedsIssued, newShares, retainedShares)
		}

		if err := debitWallet(tx, userID, actualCost); err != nil {
			return fmt.Errorf("%w to invest %d", ErrInsufficientFunds, actualCost)
		}

		activeHolders, err := models.CountActiveHolders(tx, companyID)
		if err != nil {
			return err
		}
		if activeHolders == 0 {
			return ErrNoActiveHolders
		}

		// The cap is checked last, after the funds are tentatively
		// reserved, so exceeding it still rolls the whole operation back.
		if l.policy.MintMode == MintModeEventConditional {
			mintedToday, err := models.SumMintedSince(tx, companyID, localMidnight(time.Now()))
			if err != nil {
				return err
			}
			if mintedToday+newShares > l.policy.DailyMintCap {
				return fmt.Errorf("%w: %d of %d already minted today", ErrDailyCapExceeded, mintedToday, l.policy.DailyMintCap)
			}
		}

		issuedBefore := company.IssuedShares
		err = tx.Model(company).Updates(map[string]interface{}{
			"capital":       gorm.Expr("capital + ?", actualCost),
			"issued_shares": gorm.Expr("issued_shares + ?", newShares),
		}).Error
		if err != nil {
			return err
		}
		issuedAfter := issuedBefore + newShares

		if retainedShares > 0 {
			if err := upsertHolding(tx, userID, companyID, retainedShares); err != nil {
				return err
			}
		}

		// Dilution repriced nothing, but it is a market-relevant event,
		// so the history still gets a point at the unchanged price.
		if _, err := models.CreatePricePoint(tx, stock.ID, stock.Price); err != nil {
			return err
		}

		text := fmt.Sprintf("Invested %d in %s, minting %d shares (%d retained)",
			actualCost, company.Ticker, newShares, retainedShares)
		if err := models.CreateTransactionRecord(tx, userID, text); err != nil {
			return err
		}

		event := models.ShareIssuanceEvent{
			CompanyID:          companyID,
			Policy:             l.policy.MintMode,
			MintedShares:       newShares,
			IssuedSharesBefore: issuedBefore,
			IssuedSharesAfter:  issuedAfter,
			ActiveHolders:      activeHolders,
			OwnershipDriftBps:  pricing.OwnershipDriftBps(issuedBefore, newShares),
		}
		if err := models.CreateShareIssuanceEvent(tx, &event); err != nil {
			return err
		}

		marketCap := pricing.MarketCap(stock.Price, issuedAfter)
		pool := pricing.HourlyDividendPool(marketCap, l.policy.DividendPoolFraction)
		snapshot := models.FinanceSnapshot{
			CompanyID:             companyID,
			MarketCap:             marketCap,
			HourlyDividendPool:    pool,
			DividendMilliPerShare: pricing.DividendPerShare(pool, issuedAfter),
		}
		if err := models.CreateFinanceSnapshot(tx, &snapshot); err != nil {
			return err
		}

		result = &InvestmentResult{
			NewShares:      newShares,
			NewTotalShares: issuedAfter,
			NewCapital:     company.Capital + actualCost,
			NewSharePrice:  stock.Price,
			RetainedShares: retainedShares,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Infow("capital invested",
		"user_id", userID, "company_id", companyID,
		"minted", result.NewShares, "retained", retainedShares)

	return result, nil
}

func localMidnight(now time.Time) time.Time {
	now = now.Local()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
