package models

import "time"

// Transaction is one entry in the purchase ledger and the system of record
// for holdings. PurchasePrice is the per-unit price in cents captured at
// purchase time; it is never re-derived from the catalog afterwards.
// Ledger entries are append-only: no code path updates or deletes them.
type Transaction struct {
	Base
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	ProductID       uint      `gorm:"not null;index" json:"product_id"`
	Units           int64     `gorm:"not null" json:"units"`
	PurchasePrice   int64     `gorm:"type:bigint;not null" json:"purchase_price"`
	TransactionDate time.Time `gorm:"not null" json:"transaction_date"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// Cost returns the total amount spent on this transaction in cents.
func (t *Transaction) Cost() int64 {
	return t.Units * t.PurchasePrice
}
