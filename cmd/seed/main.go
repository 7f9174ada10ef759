package main

import (
	"fmt"
	"os"

	"papervest/internal/database"
	"papervest/internal/logger"
	"papervest/internal/models"
)

// demoProducts is the demo catalog. Prices are in cents; the key metric is
// a P/E ratio for stocks/ETFs and an expense ratio for funds.
var demoProducts = []models.Product{
	{Name: "Tech Innovators ETF", Category: models.ProductCategoryETF, PricePerUnit: 25000, KeyMetric: 32.5},
	{Name: "Global Health Fund", Category: models.ProductCategoryMutualFund, PricePerUnit: 12500, KeyMetric: 1.25},
	{Name: "Sustainable Energy Corp.", Category: models.ProductCategoryStock, PricePerUnit: 52000, KeyMetric: 45.1},
	{Name: "Blue-Chip Holdings", Category: models.ProductCategoryMutualFund, PricePerUnit: 35000, KeyMetric: 1.1},
	{Name: "AI & Robotics", Category: models.ProductCategoryETF, PricePerUnit: 48000, KeyMetric: 55.7},
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Seed error: %v", err)
	}
}

func run() error {
	cfg, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	manager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	db := manager.DB()
	log := logger.Get()

	for _, product := range demoProducts {
		var count int64
		if err := db.Model(&models.Product{}).Where("name = ?", product.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check existing product %q: %w", product.Name, err)
		}
		if count > 0 {
			log.Infof("Product %q already seeded, skipping", product.Name)
			continue
		}

		if err := db.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to seed product %q: %w", product.Name, err)
		}
		log.Infof("Seeded product %q", product.Name)
	}

	log.Info("Catalog seeding complete")
	return nil
}
