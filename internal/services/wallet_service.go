package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "papervest/internal/errors"
	"papervest/internal/models"
)

// walletService handles atomic access to user wallet balances.
type walletService struct {
	db *gorm.DB
}

// NewWalletService creates a new WalletServicer.
func NewWalletService(db *gorm.DB) WalletServicer {
	return &walletService{db: db}
}

// GetBalance returns the user's current wallet balance in cents.
func (s *walletService) GetBalance(userID uint) (int64, error) {
	var user models.User
	if err := s.db.Select("wallet_balance").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user.WalletBalance, nil
}

// Debit deducts amount from the user's wallet and returns the new balance.
// The pre-read below is advisory only, to produce a fast error message; the
// authoritative decrement is a single conditional UPDATE so that two
// concurrent debits against the same user can never overdraw the wallet.
func (s *walletService) Debit(userID uint, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "debit amount must be greater than zero")
	}

	balance, err := s.GetBalance(userID)
	if err != nil {
		return 0, err
	}
	if balance < amount {
		return 0, apperrors.ErrInsufficientFunds
	}

	// wallet_balance >= amount is re-checked inside the UPDATE: the
	// advisory read above may be stale by the time we commit.
	res := s.db.Model(&models.User{}).
		Where("id = ? AND wallet_balance >= ?", userID, amount).
		UpdateColumn("wallet_balance", gorm.Expr("wallet_balance - ?", amount))
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}

	if res.RowsAffected == 0 {
		// Either the user vanished or a concurrent debit won the race.
		var count int64
		if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count == 0 {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, apperrors.ErrInsufficientFunds
	}

	// Re-read so the caller gets the post-decrement balance as ground truth.
	return s.GetBalance(userID)
}
