package models

import "gorm.io/gorm"

// FinanceSnapshot captures the derived finance figures of a company right
// after an issuance event: market cap, the hourly dividend pool it funds,
// and the resulting per-share dividend. Read-only observability artifact;
// the engine never reads snapshots back for control flow.
type FinanceSnapshot struct {
	Generic

	CompanyID uint    `gorm:"index;not null" json:"company_id"`
	Company   Company `json:"-"`

	MarketCap          int64 `gorm:"not null" json:"market_cap"`
	HourlyDividendPool int64 `gorm:"not null" json:"hourly_dividend_pool"`
	// Dividend per share in milli-units, so low-value shares don't round
	// to zero.
	DividendMilliPerShare int64 `gorm:"not null" json:"dividend_milli_per_share"`
}

func CreateFinanceSnapshot(db *gorm.DB, snapshot *FinanceSnapshot) error {
	return db.Create(snapshot).Error
}
