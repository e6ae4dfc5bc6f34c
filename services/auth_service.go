package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gin-storefront/apperrors"
	"gin-storefront/constants"
	"gin-storefront/mail"
	"gin-storefront/models"
	"gin-storefront/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Session tokens live as long as the cookie that carries them.
const SessionLifetime = 365 * 24 * time.Hour

const resetTokenLifetime = time.Hour

type IAuthService interface {
	Signup(name string, email string, password string) (*models.User, string, error)
	Signin(email string, password string) (*models.User, string, error)
	RequestReset(email string) error
	ResetPassword(resetToken string, password string, confirmPassword string) (*models.User, string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

type AuthService struct {
	repository  repositories.IUserRepository
	mailer      mail.Sender
	secretKey   string
	frontendURL string
}

func NewAuthService(repository repositories.IUserRepository, mailer mail.Sender, secretKey string, frontendURL string) IAuthService {
	return &AuthService{
		repository:  repository,
		mailer:      mailer,
		secretKey:   secretKey,
		frontendURL: frontendURL,
	}
}

func (s *AuthService) Signup(name string, email string, password string) (*models.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user, err := s.repository.Create(models.User{
		Name:        name,
		Email:       strings.ToLower(email),
		Password:    string(hashedPassword),
		Permissions: []string{constants.PermissionUser},
	})
	if err != nil {
		return nil, "", err
	}

	token, err := CreateToken(user.ID, s.secretKey)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Signin(email string, password string) (*models.User, string, error) {
	foundUser, err := s.repository.FindByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("no such user found for email %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredential
	}

	token, err := CreateToken(foundUser.ID, s.secretKey)
	if err != nil {
		return nil, "", err
	}
	return foundUser, token, nil
}

// RequestReset stores a fresh single-use token on the user and mails the
// reset link. A mail transport failure is logged but not surfaced; callers
// always see the same confirmation regardless.
func (s *AuthService) RequestReset(email string) error {
	user, err := s.repository.FindByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("no such user found for email %s: %w", email, apperrors.ErrNotFound)
		}
		return err
	}

	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	resetToken := hex.EncodeToString(buf)
	expiry := time.Now().Add(resetTokenLifetime)

	user.ResetToken = &resetToken
	user.ResetTokenExpiry = &expiry
	if _, err := s.repository.Update(*user); err != nil {
		return err
	}

	body := mail.ResetEmail(s.frontendURL, resetToken)
	if err := s.mailer.Send(user.Email, "Your Password Reset Token", body); err != nil {
		log.Printf("Failed to send reset email to %s: %v", user.Email, err)
	}
	return nil
}

func (s *AuthService) ResetPassword(resetToken string, password string, confirmPassword string) (*models.User, string, error) {
	if password != confirmPassword {
		return nil, "", fmt.Errorf("passwords don't match: %w", apperrors.ErrValidation)
	}

	user, err := s.repository.FindByResetToken(resetToken, time.Now().Add(-resetTokenLifetime))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", apperrors.ErrInvalidOrExpiredToken
		}
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user.Password = string(hashedPassword)
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	updatedUser, err := s.repository.Update(*user)
	if err != nil {
		return nil, "", err
	}

	token, err := CreateToken(updatedUser.ID, s.secretKey)
	if err != nil {
		return nil, "", err
	}
	return updatedUser, token, nil
}

func CreateToken(userID uint, secretKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(SessionLifetime).Unix(),
	})
	return token.SignedString([]byte(secretKey))
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if exp, ok := claims["exp"].(float64); !ok || float64(time.Now().Unix()) > exp {
		return nil, jwt.ErrTokenExpired
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return s.repository.FindByID(uint(sub))
}
