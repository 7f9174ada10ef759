package models

import "gorm.io/gorm"

// ProductCategory represents the type of financial product.
type ProductCategory string

const (
	ProductCategoryStock      ProductCategory = "stock"
	ProductCategoryETF        ProductCategory = "etf"
	ProductCategoryMutualFund ProductCategory = "mutual_fund"
	ProductCategoryBond       ProductCategory = "bond"
	ProductCategoryREIT       ProductCategory = "reit"
)

// Product represents a financial product in the catalog. PricePerUnit is
// the current price in cents and is always read fresh at purchase and
// aggregation time. Products are soft-deleted, so the ledger may hold
// references to products that no longer exist in the catalog.
type Product struct {
	Base
	Name         string          `gorm:"not null" json:"name"`
	Category     ProductCategory `gorm:"not null" json:"category"`
	PricePerUnit int64           `gorm:"type:bigint;not null" json:"price_per_unit"`
	// KeyMetric is an optional secondary metric, e.g. P/E ratio for stocks
	// or expense ratio for funds.
	KeyMetric float64        `json:"key_metric,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
