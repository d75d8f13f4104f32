package models

import (
	"errors"

	"gorm.io/gorm"
)

type Company struct {
	Generic

	// Company name.
	Name string `gorm:"not null" json:"name"`
	// Ticker symbol of the company. It is unique.
	Ticker      string `gorm:"uniqueIndex" json:"ticker"`
	Description string `json:"description"`
	// Hex color used for the company's avatar in listings.
	LogoColor string `json:"logo_color"`
	// Cumulative capital ever raised, in whole currency units. Grows
	// monotonically: company creation and share issuance add to it,
	// nothing subtracts.
	Capital int64 `gorm:"not null" json:"capital"`
	// Total shares ever minted. Shares are never destroyed, only
	// redistributed, so this too only grows.
	IssuedShares int64 `gorm:"not null" json:"issued_shares"`

	CreatorID uint `gorm:"index;not null" json:"creator_id"`
}

func GetCompanyByID(db *gorm.DB, id uint) (*Company, error) {
	var company Company

	err := db.First(&company, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &company, nil
}

func GetCompanyByTicker(db *gorm.DB, ticker string) (*Company, error) {
	var company Company

	err := db.Where("ticker = ?", ticker).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &company, nil
}

func GetCompanies(db *gorm.DB) ([]Company, error) {
	var companies []Company

	err := db.Order("id ASC").Find(&companies).Error
	if err != nil {
		return nil, err
	}

	return companies, nil
}
