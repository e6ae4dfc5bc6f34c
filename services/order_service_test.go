package services

import (
	"errors"
	"testing"

	"gin-storefront/apperrors"
	"gin-storefront/models"
	"gin-storefront/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB, gateway *fakeGateway) IOrderService {
	return NewOrderService(
		repositories.NewOrderRepository(db),
		repositories.NewCartRepository(db),
		gateway,
		"gbp",
	)
}

func fillCart(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()
	cartService := newCartService(db)
	lamp := createTestItem(t, db, user.ID, "Vintage Lamp", 1000)
	chair := createTestItem(t, db, user.ID, "Oak Chair", 250)

	// 2x lamp + 1x chair = 2250
	_, err := cartService.AddToCart(user.ID, lamp.ID)
	require.NoError(t, err)
	_, err = cartService.AddToCart(user.ID, lamp.ID)
	require.NoError(t, err)
	_, err = cartService.AddToCart(user.ID, chair.ID)
	require.NoError(t, err)
}

func TestCreateOrderChargesCartTotal(t *testing.T) {
	db := setupTestDB(t)
	gateway := &fakeGateway{}
	service := newOrderService(db, gateway)
	user := createTestUser(t, db, "shopper@example.com")
	fillCart(t, db, user)

	order, err := service.Create(user.ID, "tok_visa")
	require.NoError(t, err)

	require.Len(t, gateway.charges, 1)
	assert.Equal(t, uint(2250), gateway.charges[0].amount)
	assert.Equal(t, "gbp", gateway.charges[0].currency)
	assert.Equal(t, "tok_visa", gateway.charges[0].source)

	assert.Equal(t, uint(2250), order.Total)
	assert.Equal(t, "ch_test", order.Charge)
	assert.Equal(t, user.ID, order.UserID)
	require.Len(t, order.Items, 2)

	// Line items are snapshots, detached from the catalog rows.
	for _, line := range order.Items {
		assert.NotZero(t, line.ID)
		assert.NotEmpty(t, line.Title)
	}

	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.Equal(t, int64(0), cartCount)
}

func TestCreateOrderSnapshotSurvivesItemEdit(t *testing.T) {
	db := setupTestDB(t)
	gateway := &fakeGateway{}
	service := newOrderService(db, gateway)
	user := createTestUser(t, db, "shopper@example.com")
	item := createTestItem(t, db, user.ID, "Vintage Lamp", 1000)

	cartService := newCartService(db)
	_, err := cartService.AddToCart(user.ID, item.ID)
	require.NoError(t, err)

	order, err := service.Create(user.ID, "tok_visa")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Item{}).Where("id = ?", item.ID).Update("price", 9999).Error)

	reloaded, err := service.FindByID(order.ID, user)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, uint(1000), reloaded.Items[0].Price)
}

func TestCreateOrderPaymentDeclined(t *testing.T) {
	db := setupTestDB(t)
	gateway := &fakeGateway{err: errors.New("card declined")}
	service := newOrderService(db, gateway)
	user := createTestUser(t, db, "shopper@example.com")
	fillCart(t, db, user)

	_, err := service.Create(user.ID, "tok_declined")
	assert.ErrorIs(t, err, apperrors.ErrPaymentFailed)

	// A decline must leave no order behind and the cart intact.
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(0), orderCount)

	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.Equal(t, int64(2), cartCount)
}

func TestFindOrderByIDRequiresOwnership(t *testing.T) {
	db := setupTestDB(t)
	gateway := &fakeGateway{}
	service := newOrderService(db, gateway)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	fillCart(t, db, owner)

	order, err := service.Create(owner.ID, "tok_visa")
	require.NoError(t, err)

	found, err := service.FindByID(order.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)

	_, err = service.FindByID(order.ID, other)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestFindOrdersByUserReturnsOnlyOwn(t *testing.T) {
	db := setupTestDB(t)
	gateway := &fakeGateway{}
	service := newOrderService(db, gateway)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")
	fillCart(t, db, alice)
	fillCart(t, db, bob)

	_, err := service.Create(alice.ID, "tok_visa")
	require.NoError(t, err)
	_, err = service.Create(bob.ID, "tok_visa")
	require.NoError(t, err)

	orders, err := service.FindByUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, *orders, 1)
	assert.Equal(t, alice.ID, (*orders)[0].UserID)
}
