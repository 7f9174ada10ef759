package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	apperrors "papervest/internal/errors"
	"papervest/internal/logger"
	"papervest/internal/models"
	"papervest/internal/pagination"
)

// PurchaseReceipt is the outcome of a successful buy: the appended ledger
// entry and the post-debit wallet balance. Callers must treat the returned
// balance, not any locally held copy, as the new ground truth.
type PurchaseReceipt struct {
	Transaction      *models.Transaction `json:"transaction"`
	NewWalletBalance int64               `json:"new_wallet_balance"`
}

// purchaseService orchestrates the buy-transaction flow: validation, price
// snapshot, atomic wallet debit, ledger append.
type purchaseService struct {
	db             *gorm.DB
	walletService  WalletServicer
	productService ProductServicer
}

// NewPurchaseService creates a new PurchaseServicer.
func NewPurchaseService(db *gorm.DB, walletService WalletServicer, productService ProductServicer) PurchaseServicer {
	return &purchaseService{
		db:             db,
		walletService:  walletService,
		productService: productService,
	}
}

// Buy purchases units of a product against the user's wallet.
//
// The product price is read fresh and frozen into the ledger entry as the
// purchase-time snapshot. The debit happens before the append: a purchase
// the user could not afford is never recorded. If the append then fails,
// the debit is not compensated; the failure is reported as a distinct
// ledger inconsistency rather than success.
func (s *purchaseService) Buy(userID, productID uint, units int64) (*PurchaseReceipt, error) {
	if units <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "units must be a positive integer")
	}
	if productID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "product ID is required")
	}

	product, err := s.productService.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	// Price snapshot: frozen here, never re-read from the catalog later
	pricePerUnit := product.PricePerUnit

	// units * pricePerUnit must not wrap around int64: a wrapped cost would
	// pass the debit guard and record an enormous position for pennies.
	if pricePerUnit > 0 && units > math.MaxInt64/pricePerUnit {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "units exceed the maximum purchasable amount")
	}

	transaction := &models.Transaction{
		UserID:          userID,
		ProductID:       productID,
		Units:           units,
		PurchasePrice:   pricePerUnit,
		TransactionDate: time.Now(),
	}
	cost := transaction.Cost()

	newBalance, err := s.walletService.Debit(userID, cost)
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(transaction).Error; err != nil {
		// The debit has already committed. There is no compensation step:
		// surface the inconsistency so it is never mistaken for success.
		logger.Get().Errorw("ledger append failed after wallet debit",
			"user_id", userID,
			"product_id", productID,
			"units", units,
			"cost", cost,
			"error", err.Error(),
		)
		return nil, apperrors.Wrap(apperrors.ErrLedgerInconsistent, err)
	}

	return &PurchaseReceipt{
		Transaction:      transaction,
		NewWalletBalance: newBalance,
	}, nil
}

// GetUserTransactions returns the user's purchase history, newest first.
func (s *purchaseService) GetUserTransactions(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Order("transaction_date DESC").
		Scopes(pagination.Paginate(page)).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}
