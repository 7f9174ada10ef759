package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "papervest/internal/errors"
	"papervest/internal/models"
)

// WatchlistItem is a watchlist entry with its product populated.
type WatchlistItem struct {
	ID      uint           `json:"id"`
	Product models.Product `json:"product"`
}

// watchlistService handles watchlist management.
type watchlistService struct {
	db             *gorm.DB
	productService ProductServicer
}

// NewWatchlistService creates a new WatchlistServicer.
func NewWatchlistService(db *gorm.DB, productService ProductServicer) WatchlistServicer {
	return &watchlistService{db: db, productService: productService}
}

// AddToWatchlist adds a product to the user's watchlist. Each user can
// watch a product at most once.
func (s *watchlistService) AddToWatchlist(userID, productID uint) (*models.WatchlistEntry, error) {
	if _, err := s.productService.GetProductByID(productID); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.WatchlistEntry{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrAlreadyWatched
	}

	entry := &models.WatchlistEntry{UserID: userID, ProductID: productID}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return entry, nil
}

// GetWatchlist returns the user's watchlist with products populated.
// Entries whose product has since been removed from the catalog are
// skipped.
func (s *watchlistService) GetWatchlist(userID uint) ([]WatchlistItem, error) {
	var entries []models.WatchlistEntry
	if err := s.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	items := make([]WatchlistItem, 0, len(entries))
	for _, e := range entries {
		if e.Product.ID == 0 {
			continue
		}
		items = append(items, WatchlistItem{ID: e.ID, Product: e.Product})
	}
	return items, nil
}

// RemoveFromWatchlist removes a product from the user's watchlist.
func (s *watchlistService) RemoveFromWatchlist(userID, productID uint) error {
	var entry models.WatchlistEntry
	if err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWatchlistNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&entry).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
