package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "papervest/internal/errors"
	"papervest/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db              *gorm.DB
	startingBalance int64
}

// NewUserService creates a new UserServicer. startingBalance is the wallet
// balance in cents credited to every newly registered user.
func NewUserService(db *gorm.DB, startingBalance int64) UserServicer {
	return &userService{db: db, startingBalance: startingBalance}
}

// CreateUser registers a new user with KYC fields and seeds the wallet
// with the configured starting balance.
func (s *userService) CreateUser(name, email, password, panNumber, idImagePath string) (*models.User, error) {
	// KYC fields are opaque strings, validated for presence only
	if name == "" || email == "" || password == "" || panNumber == "" || idImagePath == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name, email, password, PAN number and ID image are required")
	}

	// Check if user with email exists
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", strings.ToLower(email)).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Name:          name,
		Email:         strings.ToLower(email),
		Password:      string(hashedPassword),
		PanNumber:     panNumber,
		IDImagePath:   idImagePath,
		WalletBalance: s.startingBalance,
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}
