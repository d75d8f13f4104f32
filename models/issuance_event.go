package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShareIssuanceEvent is the append-only audit record written once per
// successful capital investment. Rows are never updated or deleted.
type ShareIssuanceEvent struct {
	Generic

	// UUID correlates the event with records held by external systems.
	UUID uuid.UUID `gorm:"index;not null" json:"uuid"`

	CompanyID uint    `gorm:"index;not null" json:"company_id"`
	Company   Company `json:"-"`

	// Mint policy in effect when the event was recorded.
	Policy string `gorm:"not null" json:"policy"`

	MintedShares       int64 `gorm:"not null" json:"minted_shares"`
	IssuedSharesBefore int64 `gorm:"not null" json:"issued_shares_before"`
	IssuedSharesAfter  int64 `gorm:"not null" json:"issued_shares_after"`
	ActiveHolders      int64 `gorm:"not null" json:"active_holders"`
	// How much a holder of exactly one share was diluted, in basis points.
	OwnershipDriftBps int64 `gorm:"not null" json:"ownership_drift_bps"`
}

func CreateShareIssuanceEvent(db *gorm.DB, event *ShareIssuanceEvent) error {
	event.UUID = uuid.New()
	return db.Create(event).Error
}

// SumMintedSince totals the shares minted for a company by events recorded
// at or after the given time. The daily mint cap is enforced against this.
func SumMintedSince(db *gorm.DB, companyID uint, since time.Time) (int64, error) {
	var total int64

	err := db.Model(&ShareIssuanceEvent{}).
		Where("company_id = ? AND created_at >= ?", companyID, since).
		Select("COALESCE(SUM(minted_shares), 0)").Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
