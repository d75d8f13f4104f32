package ledger

import (
	"fmt"

	"bourse/models"

	"gorm.io/gorm"
)

// BuyShares moves quantity shares from the company's available supply to
// the buyer at the current price. All-or-nothing: a failed funds or
// supply check leaves wallet and holdings untouched.
func (l *Ledger) BuyShares(userID, companyID uint, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	unlock := l.locks.Acquire(companyID)
	defer unlock()

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

		held, err := models.SumCompanyHoldings(tx, companyID)
		if err != nil {
			return err
		}
		available := company.IssuedShares - held
		if available < quantity {
			return fmt.Errorf("%w: only %d shares available for purchase", ErrInsufficientSupply, available)
		}

		cost := stock.Price * quantity
		if err := debitWallet(tx, userID, cost); err != nil {
			return fmt.Errorf("%w to buy %d shares for %d", ErrInsufficientFunds, quantity, cost)
		}

		if err := upsertHolding(tx, userID, companyID, quantity); err != nil {
			return err
		}

		if err := tx.Model(stock).Update("bought_today", gorm.Expr("bought_today + ?", quantity)).Error; err != nil {
			return err
		}

		text := fmt.Sprintf("Bought %d shares of %s at %d for %d", quantity, company.Ticker, stock.Price, cost)
		return models.CreateTransactionRecord(tx, userID, text)
	})
	if err != nil {
		return err
	}

	l.logger.Infow("shares bought", "user_id", userID, "company_id", companyID, "quantity", quantity)
	return nil
}

// SellShares returns quantity of the seller's shares to the available
// supply and credits the proceeds. The holding check is part of the
// update predicate, so concurrent sells cannot jointly oversell a
// position. A position sold down to zero is deleted outright.
func (l *Ledger) SellShares(userID, companyID uint, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	unlock := l.locks.Acquire(companyID)
	defer unlock()

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

		result := tx.Model(&models.Holding{}).
			Where("user_id = ? AND company_id = ? AND quantity >= ?", userID, companyID, quantity).
			Update("quantity", gorm.Expr("quantity - ?", quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: tried to sell %d", ErrInsufficientShares, quantity)
		}

		holding, err := models.GetHolding(tx, userID, companyID)
		if err != nil {
			return err
		}
		if holding != nil && holding.Quantity == 0 {
			if err := tx.Delete(holding).Error; err != nil {
				return err
			}
		}

		proceeds := stock.Price * quantity
		if err := creditWallet(tx, userID, proceeds); err != nil {
			return err
		}

		if err := tx.Model(stock).Update("sold_today", gorm.Expr("sold_today + ?", quantity)).Error; err != nil {
			return err
		}

		text := fmt.Sprintf("Sold %d shares of %s at %d for %d", quantity, company.Ticker, stock.Price, proceeds)
		return models.CreateTransactionRecord(tx, userID, text)
	})
	if err != nil {
		return err
	}

	l.logger.Infow("shares sold", "user_id", userID, "company_id", companyID, "quantity", quantity)
	return nil
}
