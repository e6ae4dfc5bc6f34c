package repositories

import (
	"errors"
	"time"

	"gin-storefront/apperrors"
	"gin-storefront/models"

	"gorm.io/gorm"
)

type IUserRepository interface {
	Create(user models.User) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByID(userID uint) (*models.User, error)
	FindByResetToken(token string, notBefore time.Time) (*models.User, error)
	FindAll() (*[]models.User, error)
	Update(user models.User) (*models.User, error)
	UpdatePermissions(userID uint, permissions []string) (*models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user models.User) (*models.User, error) {
	result := r.db.Create(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindByID(userID uint) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// FindByResetToken matches a user whose stored token equals the given one and
// whose expiry is still within the valid window.
func (r *UserRepository) FindByResetToken(token string, notBefore time.Time) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "reset_token = ? AND reset_token_expiry >= ?", token, notBefore)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) FindAll() (*[]models.User, error) {
	var users []models.User
	result := r.db.Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return &users, nil
}

func (r *UserRepository) Update(user models.User) (*models.User, error) {
	result := r.db.Save(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *UserRepository) UpdatePermissions(userID uint, permissions []string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	user.Permissions = permissions
	if err := r.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
