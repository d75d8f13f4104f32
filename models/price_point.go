package models

import "gorm.io/gorm"

// PricePoint is one entry in a stock's price history. Append-only: one
// row at company creation and one per issuance event, even when the price
// itself did not move, since dilution is a market-relevant event.
type PricePoint struct {
	Generic

	StockID uint  `gorm:"index;not null" json:"stock_id"`
	Stock   Stock `json:"-"`

	Price int64 `gorm:"not null" json:"price"`
}

func CreatePricePoint(db *gorm.DB, stockID uint, price int64) (*PricePoint, error) {
	point := PricePoint{
		StockID: stockID,
		Price:   price,
	}

	if err := db.Create(&point).Error; err != nil {
		return nil, err
	}

	return &point, nil
}

func GetStockPricePoints(db *gorm.DB, stockID uint, limit int) ([]PricePoint, error) {
	var points []PricePoint

	err := db.Where("stock_id = ?", stockID).Order("created_at DESC").Limit(limit).Find(&points).Error
	if err != nil {
		return nil, err
	}

	return points, nil
}
