package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FullName       string
	DrinkPrice     float64 // average price of one drink, used for money-saved figures
	Currency       string  `gorm:"size:8;default:GBP"`
	ProfilePicture string
	Onboarded      bool
	MFAEnabled     bool
	MFACode        string
	ResetToken     string
	ResetTokenExp  time.Time
	Disabled       bool
}
