package models

import "time"

// A user holds at most one CartItem per catalog item. The composite unique
// index makes concurrent adds for the same pair fail instead of duplicating.
// Cart rows are deleted for real (no DeletedAt): a soft-deleted row would
// keep occupying the unique index slot.
type CartItem struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint `gorm:"not null;uniqueIndex:idx_cart_user_item"`
	ItemID    uint `gorm:"not null;uniqueIndex:idx_cart_user_item"`
	Quantity  uint `gorm:"not null;default:1"`
	Item      Item
}
