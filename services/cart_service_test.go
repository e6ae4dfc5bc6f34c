package services

import (
	"testing"

	"gin-storefront/apperrors"
	"gin-storefront/models"
	"gin-storefront/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) ICartService {
	return NewCartService(repositories.NewCartRepository(db), repositories.NewItemRepository(db))
}

func TestAddToCartTwiceIncrementsQuantity(t *testing.T) {
	db := setupTestDB(t)
	service := newCartService(db)
	user := createTestUser(t, db, "shopper@example.com")
	item := createTestItem(t, db, user.ID, "Vintage Lamp", 4500)

	first, err := service.AddToCart(user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.Quantity)

	second, err := service.AddToCart(user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, uint(2), second.Quantity)

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddToCartUnknownItem(t *testing.T) {
	db := setupTestDB(t)
	service := newCartService(db)
	user := createTestUser(t, db, "shopper@example.com")

	_, err := service.AddToCart(user.ID, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRemoveFromCartByOwner(t *testing.T) {
	db := setupTestDB(t)
	service := newCartService(db)
	user := createTestUser(t, db, "shopper@example.com")
	item := createTestItem(t, db, user.ID, "Vintage Lamp", 4500)

	added, err := service.AddToCart(user.ID, item.ID)
	require.NoError(t, err)

	removed, err := service.RemoveFromCart(added.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, added.ID, removed.ID)

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRemoveFromCartByNonOwner(t *testing.T) {
	db := setupTestDB(t)
	service := newCartService(db)
	owner := createTestUser(t, db, "owner@example.com")
	intruder := createTestUser(t, db, "intruder@example.com")
	item := createTestItem(t, db, owner.ID, "Vintage Lamp", 4500)

	added, err := service.AddToCart(owner.ID, item.ID)
	require.NoError(t, err)

	_, err = service.RemoveFromCart(added.ID, intruder.ID)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// The owner's cart is untouched.
	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", owner.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRemoveFromCartMissingRow(t *testing.T) {
	db := setupTestDB(t)
	service := newCartService(db)
	user := createTestUser(t, db, "shopper@example.com")

	_, err := service.RemoveFromCart(42, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddToCartAfterRemovalStartsFresh(t *testing.T) {
	db := setupTestDB(t)
	service := newCartService(db)
	user := createTestUser(t, db, "shopper@example.com")
	item := createTestItem(t, db, user.ID, "Vintage Lamp", 4500)

	added, err := service.AddToCart(user.ID, item.ID)
	require.NoError(t, err)
	_, err = service.AddToCart(user.ID, item.ID)
	require.NoError(t, err)
	_, err = service.RemoveFromCart(added.ID, user.ID)
	require.NoError(t, err)

	again, err := service.AddToCart(user.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), again.Quantity)
}
