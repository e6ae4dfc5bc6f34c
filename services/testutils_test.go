package services

import (
	"testing"

	"gin-storefront/constants"
	"gin-storefront/models"
	"gin-storefront/payment"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Item{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, permissions ...string) *models.User {
	t.Helper()
	if len(permissions) == 0 {
		permissions = []string{constants.PermissionUser}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{
		Name:        "Test User",
		Email:       email,
		Password:    string(hashed),
		Permissions: permissions,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestItem(t *testing.T, db *gorm.DB, userID uint, title string, price uint) *models.Item {
	t.Helper()
	item := models.Item{
		Title:       title,
		Description: "a test item",
		Price:       price,
		UserID:      userID,
	}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(to string, subject string, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}

type fakeCharge struct {
	amount   uint
	currency string
	source   string
}

type fakeGateway struct {
	charges []fakeCharge
	err     error
}

func (g *fakeGateway) Charge(amount uint, currency string, source string) (*payment.Charge, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.charges = append(g.charges, fakeCharge{amount: amount, currency: currency, source: source})
	return &payment.Charge{ID: "ch_test", Amount: amount}, nil
}
