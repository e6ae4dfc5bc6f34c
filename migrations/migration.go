package main

import (
	"gin-storefront/infra"
	"gin-storefront/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}); err != nil {
		panic("Failed to migrate database")
	}
}
