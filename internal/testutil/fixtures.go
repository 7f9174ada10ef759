package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"papervest/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password, unique email, and
// a $100,000.00 wallet.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithBalance(t, db, 10000000)
}

// CreateTestUserWithBalance creates a user with the given wallet balance (in cents).
func CreateTestUserWithBalance(t *testing.T, db *gorm.DB, balance int64) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	n := nextID()
	user := &models.User{
		Name:          fmt.Sprintf("Test User %d", n),
		Email:         fmt.Sprintf("user%d@test.com", n),
		Password:      string(hash),
		PanNumber:     fmt.Sprintf("ABCDE%04dF", n),
		IDImagePath:   fmt.Sprintf("/uploads/ids/user%d.png", n),
		WalletBalance: balance,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProduct creates a product priced at $250.00 per unit.
func CreateTestProduct(t *testing.T, db *gorm.DB) *models.Product {
	t.Helper()
	return CreateTestProductWithPrice(t, db, 25000)
}

// CreateTestProductWithPrice creates a product with the given per-unit price (in cents).
func CreateTestProductWithPrice(t *testing.T, db *gorm.DB, pricePerUnit int64) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:         fmt.Sprintf("Test Product %d", nextID()),
		Category:     models.ProductCategoryETF,
		PricePerUnit: pricePerUnit,
		KeyMetric:    1.25,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// CreateTestTransaction appends a ledger entry with the given units and
// purchase-time price (in cents).
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, productID uint, units, purchasePrice int64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:          userID,
		ProductID:       productID,
		Units:           units,
		PurchasePrice:   purchasePrice,
		TransactionDate: time.Now(),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestWatchlistEntry adds a product to a user's watchlist.
func CreateTestWatchlistEntry(t *testing.T, db *gorm.DB, userID, productID uint) *models.WatchlistEntry {
	t.Helper()

	entry := &models.WatchlistEntry{UserID: userID, ProductID: productID}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("failed to create test watchlist entry: %v", err)
	}
	return entry
}
