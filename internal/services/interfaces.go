package services

import (
	"papervest/internal/models"
	"papervest/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password, panNumber, idImagePath string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// WalletServicer defines the contract for wallet balance access. Debit is
// the only mutation: an atomic conditional decrement that can never drive
// the balance negative.
type WalletServicer interface {
	GetBalance(userID uint) (int64, error)
	Debit(userID uint, amount int64) (int64, error)
}

// ProductServicer defines the contract for catalog access. An empty category
// on GetProducts means no filter.
type ProductServicer interface {
	GetProducts(page pagination.PageRequest, category models.ProductCategory) (*pagination.PageResponse[models.Product], error)
	GetProductByID(productID uint) (*models.Product, error)
	GetProductDetail(productID uint) (*ProductDetail, error)
}

// PurchaseServicer defines the contract for the buy-transaction flow.
type PurchaseServicer interface {
	Buy(userID, productID uint, units int64) (*PurchaseReceipt, error)
	GetUserTransactions(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
}

// PortfolioServicer defines the contract for deriving holdings from the ledger.
type PortfolioServicer interface {
	GetPortfolio(userID uint) (*PortfolioSummary, error)
}

// WatchlistServicer defines the contract for watchlist management.
type WatchlistServicer interface {
	AddToWatchlist(userID, productID uint) (*models.WatchlistEntry, error)
	GetWatchlist(userID uint) ([]WatchlistItem, error)
	RemoveFromWatchlist(userID, productID uint) error
}
