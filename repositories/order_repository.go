package repositories

import (
	"errors"

	"gin-storefront/apperrors"
	"gin-storefront/models"

	"gorm.io/gorm"
)

type IOrderRepository interface {
	Create(order models.Order) (*models.Order, error)
	FindByID(orderID uint) (*models.Order, error)
	FindByUser(userID uint) (*[]models.Order, error)
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

// Create persists the order together with its owned line items.
func (r *OrderRepository) Create(order models.Order) (*models.Order, error) {
	result := r.db.Create(&order)
	if result.Error != nil {
		return nil, result.Error
	}
	return &order, nil
}

func (r *OrderRepository) FindByID(orderID uint) (*models.Order, error) {
	var order models.Order
	result := r.db.Preload("Items").First(&order, "id = ?", orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, result.Error
	}
	return &order, nil
}

func (r *OrderRepository) FindByUser(userID uint) (*[]models.Order, error) {
	var orders []models.Order
	result := r.db.Preload("Items").Order("created_at DESC").Find(&orders, "user_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &orders, nil
}
