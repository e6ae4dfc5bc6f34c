package services

import (
	"errors"

	"gin-storefront/apperrors"
	"gin-storefront/models"
	"gin-storefront/repositories"
)

type ICartService interface {
	AddToCart(userID uint, itemID uint) (*models.CartItem, error)
	RemoveFromCart(cartItemID uint, userID uint) (*models.CartItem, error)
}

type CartService struct {
	repository     repositories.ICartRepository
	itemRepository repositories.IItemRepository
}

func NewCartService(repository repositories.ICartRepository, itemRepository repositories.IItemRepository) ICartService {
	return &CartService{
		repository:     repository,
		itemRepository: itemRepository,
	}
}

// AddToCart upserts the (user, item) row: an existing row gains quantity 1,
// otherwise a fresh row with quantity 1 is created.
func (s *CartService) AddToCart(userID uint, itemID uint) (*models.CartItem, error) {
	existing, err := s.repository.FindByUserAndItem(userID, itemID)
	if err == nil {
		existing.Quantity++
		return s.repository.Update(*existing)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if _, err := s.itemRepository.FindByID(itemID); err != nil {
		return nil, err
	}
	return s.repository.Create(models.CartItem{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 1,
	})
}

func (s *CartService) RemoveFromCart(cartItemID uint, userID uint) (*models.CartItem, error) {
	cartItem, err := s.repository.FindByID(cartItemID)
	if err != nil {
		return nil, err
	}
	if cartItem.UserID != userID {
		return nil, apperrors.ErrUnauthorized
	}

	if err := s.repository.Delete(cartItemID); err != nil {
		return nil, err
	}
	return cartItem, nil
}
