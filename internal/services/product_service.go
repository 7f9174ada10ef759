package services

import (
	"errors"
	"math/rand"
	"time"

	"gorm.io/gorm"

	apperrors "papervest/internal/errors"
	"papervest/internal/models"
	"papervest/internal/pagination"
)

// PricePoint is one day in a product's simulated price history.
type PricePoint struct {
	Date  string `json:"date"`
	Price int64  `json:"price"`
}

// ProductDetail is a product enriched with display data for the detail view.
// The history is a simulated random walk, not market data.
type ProductDetail struct {
	models.Product
	Description    string       `json:"description"`
	HistoricalData []PricePoint `json:"historical_data"`
	MarketCap      int64        `json:"market_cap"`
	Volume         int64        `json:"volume"`
}

const productDescription = "This is a simplified representation of a financial asset for educational purposes. Performance is based on a random walk algorithm to simulate market fluctuations."

// productService handles read-only catalog access.
type productService struct {
	db *gorm.DB
}

// NewProductService creates a new ProductServicer.
func NewProductService(db *gorm.DB) ProductServicer {
	return &productService{db: db}
}

// GetProducts returns a paginated list of catalog products, optionally
// restricted to one category.
func (s *productService) GetProducts(page pagination.PageRequest, category models.ProductCategory) (*pagination.PageResponse[models.Product], error) {
	page.Defaults()

	query := s.db.Model(&models.Product{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var products []models.Product
	if err := query.Order("id").Scopes(pagination.Paginate(page)).Find(&products).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(products, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetProductByID returns a single product by ID.
func (s *productService) GetProductByID(productID uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &product, nil
}

// GetProductDetail returns a product together with generated display data:
// a 30-day price history, market cap, and volume.
func (s *productService) GetProductDetail(productID uint) (*ProductDetail, error) {
	product, err := s.GetProductByID(productID)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{
		Product:        *product,
		Description:    productDescription,
		HistoricalData: generateHistoricalData(product.PricePerUnit),
		MarketCap:      int64(rand.Intn(1000000)) * 100000,
		Volume:         int64(rand.Intn(100000)),
	}, nil
}

// generateHistoricalData simulates 30 days of prices as a random walk
// ending near the current price. Prices are floored so the walk never
// drops below one tenth of the current price.
func generateHistoricalData(currentPrice int64) []PricePoint {
	data := make([]PricePoint, 0, 30)
	floor := currentPrice / 10
	if floor < 100 {
		floor = 100
	}

	price := currentPrice
	now := time.Now()
	for i := 0; i < 30; i++ {
		date := now.AddDate(0, 0, -(29 - i))

		// Daily fluctuation of up to +/-2% of the current price
		delta := int64(float64(currentPrice) * (rand.Float64() - 0.5) * 0.04)
		price += delta
		if price < floor {
			price = floor
		}

		data = append(data, PricePoint{
			Date:  date.Format("2006-01-02"),
			Price: price,
		})
	}
	return data
}
