package services

import (
	"testing"

	"papervest/internal/models"
	"papervest/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("seeds_starting_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, 10000000)

		user, err := svc.CreateUser("Asha Rao", "asha@example.com", "supersecret", "ABCDE1234F", "/uploads/ids/asha.png")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.WalletBalance != 10000000 {
			t.Errorf("expected starting balance 10000000, got %d", user.WalletBalance)
		}
		if user.Password == "supersecret" {
			t.Error("password must be stored hashed")
		}
	})

	t.Run("lowercases_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, 10000000)

		user, err := svc.CreateUser("Asha Rao", "Asha@Example.COM", "supersecret", "ABCDE1234F", "/uploads/ids/asha.png")
		testutil.AssertNoError(t, err)

		if user.Email != "asha@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, 10000000)

		_, err := svc.CreateUser("Asha Rao", "asha@example.com", "supersecret", "ABCDE1234F", "/uploads/ids/asha.png")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("Other User", "ASHA@example.com", "differentpass", "FGHIJ5678K", "/uploads/ids/other.png")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("requires_kyc_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, 10000000)

		_, err := svc.CreateUser("Asha Rao", "asha@example.com", "supersecret", "", "/uploads/ids/asha.png")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateUser("Asha Rao", "asha@example.com", "supersecret", "ABCDE1234F", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		var count int64
		db.Model(&models.User{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no users created, got %d", count)
		}
	})
}

func TestGetUser(t *testing.T) {
	t.Run("by_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, 10000000)
		created := testutil.CreateTestUser(t, db)

		user, err := svc.GetUserByEmail(created.Email)
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, user.ID)
		}
	})

	t.Run("by_email_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, 10000000)

		_, err := svc.GetUserByEmail("nobody@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("by_id_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db, 10000000)

		_, err := svc.GetUserByID(9999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db, 10000000)

	user, err := svc.CreateUser("Asha Rao", "asha@example.com", "supersecret", "ABCDE1234F", "/uploads/ids/asha.png")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "supersecret") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrongpassword") {
		t.Error("expected wrong password to fail verification")
	}
}
