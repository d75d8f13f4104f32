package models

import (
	"errors"

	"gorm.io/gorm"
)

type User struct {
	Generic

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"-"`
	// Bcrypt hash of the user's password.
	PasswordHash string `gorm:"not null" json:"-"`
	// Wallet balance in whole currency units. Trading and issuance
	// operations decrement it with a conditional update; it must never
	// go negative.
	Money int64 `gorm:"not null;default:0" json:"money"`
}

func CreateUser(db *gorm.DB, username, email, passwordHash string, money int64) (*User, error) {
	user := User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Money:        money,
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func GetUserByID(db *gorm.DB, id uint) (*User, error) {
	var user User

	err := db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func GetUserByUsername(db *gorm.DB, username string) (*User, error) {
	var user User

	err := db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
