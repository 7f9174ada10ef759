package services

import (
	"testing"

	"papervest/internal/models"
	"papervest/internal/testutil"
)

func TestWalletDebit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)
		user := testutil.CreateTestUserWithBalance(t, db, 50000)

		newBalance, err := svc.Debit(user.ID, 20000)
		testutil.AssertNoError(t, err)

		if newBalance != 30000 {
			t.Errorf("expected new balance 30000, got %d", newBalance)
		}

		// Returned balance must match what is stored
		var stored models.User
		db.First(&stored, user.ID)
		if stored.WalletBalance != newBalance {
			t.Errorf("stored balance %d does not match returned balance %d", stored.WalletBalance, newBalance)
		}
	})

	t.Run("insufficient_funds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)
		user := testutil.CreateTestUserWithBalance(t, db, 10000)

		_, err := svc.Debit(user.ID, 10001)
		testutil.AssertAppError(t, err, "INSUFFICIENT_FUNDS")

		// Balance untouched
		var stored models.User
		db.First(&stored, user.ID)
		if stored.WalletBalance != 10000 {
			t.Errorf("expected balance unchanged at 10000, got %d", stored.WalletBalance)
		}
	})

	t.Run("exact_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)
		user := testutil.CreateTestUserWithBalance(t, db, 10000)

		newBalance, err := svc.Debit(user.ID, 10000)
		testutil.AssertNoError(t, err)
		if newBalance != 0 {
			t.Errorf("expected balance 0 after spending everything, got %d", newBalance)
		}
	})

	t.Run("user_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)

		_, err := svc.Debit(9999, 100)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("rejects_non_positive_amounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.Debit(user.ID, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.Debit(user.ID, -500)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("successful_debits_never_overdraw", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)
		user := testutil.CreateTestUserWithBalance(t, db, 25000)

		var spent int64
		for i := 0; i < 5; i++ {
			if _, err := svc.Debit(user.ID, 10000); err == nil {
				spent += 10000
			}
		}

		if spent > 25000 {
			t.Errorf("total successful debits %d exceed starting balance 25000", spent)
		}

		var stored models.User
		db.First(&stored, user.ID)
		if stored.WalletBalance < 0 {
			t.Errorf("balance went negative: %d", stored.WalletBalance)
		}
		if stored.WalletBalance != 25000-spent {
			t.Errorf("expected balance %d, got %d", 25000-spent, stored.WalletBalance)
		}
	})
}

func TestWalletGetBalance(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)
		user := testutil.CreateTestUserWithBalance(t, db, 12345)

		balance, err := svc.GetBalance(user.ID)
		testutil.AssertNoError(t, err)
		if balance != 12345 {
			t.Errorf("expected balance 12345, got %d", balance)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewWalletService(db)

		_, err := svc.GetBalance(9999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
