package models

import (
	"errors"

	"gorm.io/gorm"
)

// Stock carries the tradable state of a company. One row per company.
type Stock struct {
	Generic

	CompanyID uint    `gorm:"uniqueIndex;not null" json:"company_id"`
	Company   Company `json:"-"`

	// Current price per share in whole currency units. Always positive.
	Price int64 `gorm:"not null" json:"price"`
	// Daily trade counters, reset by the reset_counters command.
	BoughtToday int64 `gorm:"not null;default:0" json:"bought_today"`
	SoldToday   int64 `gorm:"not null;default:0" json:"sold_today"`
}

func GetStockByCompanyID(db *gorm.DB, companyID uint) (*Stock, error) {
	var stock Stock

	err := db.Where("company_id = ?", companyID).First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &stock, nil
}
