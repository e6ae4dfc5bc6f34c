package models

import "gorm.io/gorm"

type Item struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Image       string
	LargeImage  string
	Price       uint `gorm:"not null"`
	UserID      uint `gorm:"not null"`
}
