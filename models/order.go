package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	UserID uint        `gorm:"not null"`
	Total  uint        `gorm:"not null"`
	Charge string      `gorm:"not null"`
	Items  []OrderItem `gorm:"constraint:OnDelete:CASCADE;"`
}

// OrderItem is a snapshot of an Item at purchase time. It deliberately keeps
// no reference to the catalog Item, so later edits never rewrite history.
type OrderItem struct {
	gorm.Model
	OrderID     uint   `gorm:"not null"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Image       string
	LargeImage  string
	Price       uint `gorm:"not null"`
	Quantity    uint `gorm:"not null"`
	UserID      uint `gorm:"not null"`
}
