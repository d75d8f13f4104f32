package models

import "gorm.io/gorm"

// TransactionRecord is a free-text audit line for a money-moving
// operation. Observability only; nothing reads these for control flow.
type TransactionRecord struct {
	Generic

	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `json:"-"`

	Text string `gorm:"not null" json:"text"`
}

func CreateTransactionRecord(db *gorm.DB, userID uint, text string) error {
	record := TransactionRecord{
		UserID: userID,
		Text:   text,
	}

	return db.Create(&record).Error
}

func GetUserTransactionRecords(db *gorm.DB, userID uint, limit int) ([]TransactionRecord, error) {
	var records []TransactionRecord

	err := db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
