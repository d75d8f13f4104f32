package models

import (
	"errors"

	"gorm.io/gorm"
)

// Holding is a user's position in one company. Rows exist only while
// quantity is positive: selling a position down to zero deletes the row,
// so top-holder queries never see empty positions.
type Holding struct {
	Generic

	UserID    uint `gorm:"not null;uniqueIndex:idx_holdings_user_company" json:"user_id"`
	User      User `json:"-"`
	CompanyID uint `gorm:"not null;uniqueIndex:idx_holdings_user_company" json:"company_id"`

	Quantity int64 `gorm:"not null" json:"quantity"`
}

func GetHolding(db *gorm.DB, userID, companyID uint) (*Holding, error) {
	var holding Holding

	err := db.Where("user_id = ? AND company_id = ?", userID, companyID).First(&holding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &holding, nil
}

func GetUserHoldings(db *gorm.DB, userID uint) ([]Holding, error) {
	var holdings []Holding

	err := db.Where("user_id = ?", userID).Order("quantity DESC").Find(&holdings).Error
	if err != nil {
		return nil, err
	}

	return holdings, nil
}

func GetCompanyHoldings(db *gorm.DB, companyID uint) ([]Holding, error) {
	var holdings []Holding

	err := db.Where("company_id = ?", companyID).Order("quantity DESC").Find(&holdings).Error
	if err != nil {
		return nil, err
	}

	return holdings, nil
}

// GetTopHolder returns the largest position in a company, or nil when no
// one holds shares. The largest holder is the company's CEO; the role is
// derived here on every call, never stored.
func GetTopHolder(db *gorm.DB, companyID uint) (*Holding, error) {
	var holding Holding

	err := db.Where("company_id = ?", companyID).Order("quantity DESC").First(&holding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &holding, nil
}

// SumCompanyHoldings returns the total quantity currently held across all
// users of a company. issuedShares minus this sum is the available
// (unsold) supply.
func SumCompanyHoldings(db *gorm.DB, companyID uint) (int64, error) {
	var total int64

	err := db.Model(&Holding{}).Where("company_id = ?", companyID).
		Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}

// CountActiveHolders counts users holding at least one share of a company.
func CountActiveHolders(db *gorm.DB, companyID uint) (int64, error) {
	var count int64

	err := db.Model(&Holding{}).Where("company_id = ? AND quantity >= 1", companyID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
