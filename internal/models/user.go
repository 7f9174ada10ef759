package models

// User represents a registered investor. WalletBalance is the user's
// spendable virtual balance in cents; it is seeded at registration and
// must never go negative as the result of a purchase.
type User struct {
	Base
	Name          string `gorm:"not null" json:"name"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Password      string `gorm:"not null" json:"-"`
	PanNumber     string `gorm:"not null" json:"pan_number"`
	IDImagePath   string `gorm:"not null" json:"id_image_path"`
	WalletBalance int64  `gorm:"type:bigint;not null;default:0" json:"wallet_balance"`

	// Relationships
	Transactions []Transaction    `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Watchlist    []WatchlistEntry `gorm:"foreignKey:UserID" json:"watchlist,omitempty"`
}
