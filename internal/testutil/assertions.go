package testutil

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	apperrors "papervest/internal/errors"
	"papervest/internal/models"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertWalletBalance checks the user's stored wallet balance in cents.
func AssertWalletBalance(t *testing.T, db *gorm.DB, userID uint, expected int64) {
	t.Helper()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		t.Fatalf("failed to load user %d: %v", userID, err)
	}
	if user.WalletBalance != expected {
		t.Errorf("expected wallet balance %d, got %d", expected, user.WalletBalance)
	}
}
