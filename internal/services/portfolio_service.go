package services

import (
	"sort"

	"gorm.io/gorm"

	apperrors "papervest/internal/errors"
	"papervest/internal/models"
)

// ProductSummary is the product slice of a holding as exposed to clients.
type ProductSummary struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	Category     models.ProductCategory `json:"category"`
	PricePerUnit int64                  `json:"price_per_unit"`
}

// Holding is a user's aggregated position in one product, derived from the
// ledger. TotalInvested sums units * purchase-time price per transaction;
// CurrentValue prices the aggregated units at the current catalog price.
type Holding struct {
	Product       ProductSummary `json:"product"`
	Units         int64          `json:"units"`
	TotalInvested int64          `json:"total_invested"`
	CurrentValue  int64          `json:"current_value"`
}

// PortfolioSummary aggregates all of a user's holdings.
type PortfolioSummary struct {
	TotalInvested int64     `json:"total_invested"`
	CurrentValue  int64     `json:"current_value"`
	Returns       int64     `json:"returns"`
	Holdings      []Holding `json:"holdings"`
}

// portfolioService derives holdings from the transaction ledger.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

// GetPortfolio recomputes the user's holdings from the full ledger on every
// call. Nothing is cached: catalog prices are read fresh each time, so a
// price change is reflected on the next read. Holdings whose product no
// longer exists in the catalog are skipped rather than failing the whole
// aggregation.
func (s *portfolioService) GetPortfolio(userID uint) (*PortfolioSummary, error) {
	type holdingRow struct {
		ProductID     uint
		Units         int64
		TotalInvested int64
	}

	var rows []holdingRow
	if err := s.db.Model(&models.Transaction{}).
		Select("product_id, SUM(units) AS units, SUM(units * purchase_price) AS total_invested").
		Where("user_id = ?", userID).
		Group("product_id").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &PortfolioSummary{Holdings: []Holding{}}
	if len(rows) == 0 {
		return summary, nil
	}

	productIDs := make([]uint, 0, len(rows))
	for _, r := range rows {
		productIDs = append(productIDs, r.ProductID)
	}

	// Current prices, read at query time. Soft-deleted products are
	// excluded here, which is what drops dangling ledger references.
	var products []models.Product
	if err := s.db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	productsByID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	for _, r := range rows {
		product, ok := productsByID[r.ProductID]
		if !ok {
			continue
		}

		currentValue := r.Units * product.PricePerUnit
		summary.Holdings = append(summary.Holdings, Holding{
			Product: ProductSummary{
				ID:           product.ID,
				Name:         product.Name,
				Category:     product.Category,
				PricePerUnit: product.PricePerUnit,
			},
			Units:         r.Units,
			TotalInvested: r.TotalInvested,
			CurrentValue:  currentValue,
		})
		summary.TotalInvested += r.TotalInvested
		summary.CurrentValue += currentValue
	}

	// Group order from SQL is backend-dependent; sort for deterministic output
	sort.Slice(summary.Holdings, func(i, j int) bool {
		return summary.Holdings[i].Product.ID < summary.Holdings[j].Product.ID
	})

	summary.Returns = summary.CurrentValue - summary.TotalInvested
	return summary, nil
}
