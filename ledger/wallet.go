package ledger

import (
	"bourse/models"

	"gorm.io/gorm"
)

// debitWallet takes amount from a user's wallet. The balance check is
// part of the update predicate, so two concurrent debits can never both
// pass on the same funds.
func debitWallet(tx *gorm.DB, userID uint, amount int64) error {
	result := tx.Model(&models.User{}).
		Where("id = ? AND money >= ?", userID, amount).
		Update("money", gorm.Expr("money - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientFunds
	}

	return nil
}

// creditWallet adds amount to a user's wallet. Credits never fail on
// balance.
func creditWallet(tx *gorm.DB, userID uint, amount int64) error {
	return tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("money", gorm.Expr("money + ?", amount)).Error
}

// upsertHolding adds quantity to a user's position in a company,
// creating the row if the user holds nothing yet.
func upsertHolding(tx *gorm.DB, userID, companyID uint, quantity int64) error {
	holding, err := models.GetHolding(tx, userID, companyID)
	if err != nil {
		return err
	}

	if holding == nil {
		return tx.Create(&models.Holding{
			UserID:    userID,
			CompanyID: companyID,
			Quantity:  quantity,
		}).Error
	}

	return tx.Model(holding).Update("quantity", gorm.Expr("quantity + ?", quantity)).Error
}
