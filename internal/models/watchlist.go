package models

// WatchlistEntry marks a product a user is tracking. A user can watch a
// given product at most once.
type WatchlistEntry struct {
	Base
	UserID    uint `gorm:"not null;uniqueIndex:uq_watchlist_user_product" json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:uq_watchlist_user_product" json:"product_id"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"product"`
}
