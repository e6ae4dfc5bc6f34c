package repositories

import (
	"errors"

	"gin-storefront/apperrors"
	"gin-storefront/models"

	"gorm.io/gorm"
)

type ICartRepository interface {
	FindByUserAndItem(userID uint, itemID uint) (*models.CartItem, error)
	FindByID(cartItemID uint) (*models.CartItem, error)
	FindByUser(userID uint) (*[]models.CartItem, error)
	Create(cartItem models.CartItem) (*models.CartItem, error)
	Update(cartItem models.CartItem) (*models.CartItem, error)
	Delete(cartItemID uint) error
	DeleteByIDs(cartItemIDs []uint) error
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) FindByUserAndItem(userID uint, itemID uint) (*models.CartItem, error) {
	var cartItem models.CartItem
	result := r.db.First(&cartItem, "user_id = ? AND item_id = ?", userID, itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, result.Error
	}
	return &cartItem, nil
}

func (r *CartRepository) FindByID(cartItemID uint) (*models.CartItem, error) {
	var cartItem models.CartItem
	result := r.db.Preload("Item").First(&cartItem, "id = ?", cartItemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, result.Error
	}
	return &cartItem, nil
}

func (r *CartRepository) FindByUser(userID uint) (*[]models.CartItem, error) {
	var cartItems []models.CartItem
	result := r.db.Preload("Item").Find(&cartItems, "user_id = ?", userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &cartItems, nil
}

func (r *CartRepository) Create(cartItem models.CartItem) (*models.CartItem, error) {
	result := r.db.Create(&cartItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &cartItem, nil
}

func (r *CartRepository) Update(cartItem models.CartItem) (*models.CartItem, error) {
	result := r.db.Save(&cartItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &cartItem, nil
}

func (r *CartRepository) Delete(cartItemID uint) error {
	result := r.db.Delete(&models.CartItem{}, "id = ?", cartItemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CartRepository) DeleteByIDs(cartItemIDs []uint) error {
	if len(cartItemIDs) == 0 {
		return nil
	}
	result := r.db.Delete(&models.CartItem{}, "id IN ?", cartItemIDs)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
