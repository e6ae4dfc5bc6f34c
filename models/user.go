package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name             string     `gorm:"not null"`
	Email            string     `gorm:"not null;unique"`
	Password         string     `gorm:"not null" json:"-"`
	Permissions      []string   `gorm:"serializer:json;not null"`
	ResetToken       *string    `gorm:"index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	Items            []Item     `gorm:"constraint:OnDelete:CASCADE;"`
	CartItems        []CartItem `gorm:"constraint:OnDelete:CASCADE;"`
	Orders           []Order    `gorm:"constraint:OnDelete:CASCADE;"`
}
