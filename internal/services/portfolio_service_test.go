package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"papervest/internal/models"
	"papervest/internal/testutil"
)

func TestGetPortfolio(t *testing.T) {
	t.Run("aggregates_holdings_and_totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)
		user := testutil.CreateTestUser(t, db)

		// P1 bought twice at different prices, current price $120.00;
		// P2 bought once at $50.00, current price $40.00.
		p1 := testutil.CreateTestProductWithPrice(t, db, 12000)
		p2 := testutil.CreateTestProductWithPrice(t, db, 4000)
		testutil.CreateTestTransaction(t, db, user.ID, p1.ID, 2, 10000)
		testutil.CreateTestTransaction(t, db, user.ID, p1.ID, 3, 11000)
		testutil.CreateTestTransaction(t, db, user.ID, p2.ID, 1, 5000)

		summary, err := svc.GetPortfolio(user.ID)
		require.NoError(t, err)
		require.Len(t, summary.Holdings, 2)

		byProduct := make(map[uint]Holding, len(summary.Holdings))
		for _, h := range summary.Holdings {
			byProduct[h.Product.ID] = h
		}

		h1 := byProduct[p1.ID]
		assert.Equal(t, int64(5), h1.Units)
		assert.Equal(t, int64(53000), h1.TotalInvested, "2*10000 + 3*11000")
		assert.Equal(t, int64(60000), h1.CurrentValue, "5 * 12000")

		h2 := byProduct[p2.ID]
		assert.Equal(t, int64(1), h2.Units)
		assert.Equal(t, int64(5000), h2.TotalInvested)
		assert.Equal(t, int64(4000), h2.CurrentValue)

		assert.Equal(t, int64(58000), summary.TotalInvested)
		assert.Equal(t, int64(64000), summary.CurrentValue)
		assert.Equal(t, int64(6000), summary.Returns)
	})

	t.Run("repeated_reads_are_identical", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)
		user := testutil.CreateTestUser(t, db)
		product := testutil.CreateTestProductWithPrice(t, db, 25000)
		testutil.CreateTestTransaction(t, db, user.ID, product.ID, 4, 24000)

		first, err := svc.GetPortfolio(user.ID)
		require.NoError(t, err)
		second, err := svc.GetPortfolio(user.ID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("reflects_current_catalog_price_on_each_read", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)
		user := testutil.CreateTestUser(t, db)
		product := testutil.CreateTestProductWithPrice(t, db, 10000)
		testutil.CreateTestTransaction(t, db, user.ID, product.ID, 2, 10000)

		before, err := svc.GetPortfolio(user.ID)
		require.NoError(t, err)
		require.Equal(t, int64(20000), before.CurrentValue)

		db.Model(&models.Product{}).Where("id = ?", product.ID).
			Update("price_per_unit", 15000)

		after, err := svc.GetPortfolio(user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(30000), after.CurrentValue, "current value follows the catalog")
		assert.Equal(t, before.TotalInvested, after.TotalInvested, "invested amount is frozen at purchase time")
	})

	t.Run("skips_holdings_of_deleted_products", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)
		user := testutil.CreateTestUser(t, db)

		kept := testutil.CreateTestProductWithPrice(t, db, 12000)
		removed := testutil.CreateTestProductWithPrice(t, db, 5000)
		testutil.CreateTestTransaction(t, db, user.ID, kept.ID, 1, 12000)
		testutil.CreateTestTransaction(t, db, user.ID, removed.ID, 2, 5000)

		require.NoError(t, db.Delete(&models.Product{}, removed.ID).Error)

		summary, err := svc.GetPortfolio(user.ID)
		require.NoError(t, err)

		require.Len(t, summary.Holdings, 1, "dangling reference must be skipped, not fail the aggregation")
		assert.Equal(t, kept.ID, summary.Holdings[0].Product.ID)
		assert.Equal(t, int64(12000), summary.TotalInvested)
		assert.Equal(t, int64(12000), summary.CurrentValue)
	})

	t.Run("empty_portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)
		user := testutil.CreateTestUser(t, db)

		summary, err := svc.GetPortfolio(user.ID)
		require.NoError(t, err)

		assert.Empty(t, summary.Holdings)
		assert.Zero(t, summary.TotalInvested)
		assert.Zero(t, summary.CurrentValue)
		assert.Zero(t, summary.Returns)
	})

	t.Run("holdings_sorted_by_product_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)
		user := testutil.CreateTestUser(t, db)

		p1 := testutil.CreateTestProduct(t, db)
		p2 := testutil.CreateTestProduct(t, db)
		p3 := testutil.CreateTestProduct(t, db)
		// Insert in non-ID order
		testutil.CreateTestTransaction(t, db, user.ID, p3.ID, 1, 1000)
		testutil.CreateTestTransaction(t, db, user.ID, p1.ID, 1, 1000)
		testutil.CreateTestTransaction(t, db, user.ID, p2.ID, 1, 1000)

		summary, err := svc.GetPortfolio(user.ID)
		require.NoError(t, err)
		require.Len(t, summary.Holdings, 3)

		for i := 1; i < len(summary.Holdings); i++ {
			assert.Less(t, summary.Holdings[i-1].Product.ID, summary.Holdings[i].Product.ID)
		}
	})

	t.Run("does_not_mix_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPortfolioService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		product := testutil.CreateTestProduct(t, db)

		testutil.CreateTestTransaction(t, db, user.ID, product.ID, 1, 25000)
		testutil.CreateTestTransaction(t, db, other.ID, product.ID, 10, 25000)

		summary, err := svc.GetPortfolio(user.ID)
		require.NoError(t, err)
		require.Len(t, summary.Holdings, 1)
		assert.Equal(t, int64(1), summary.Holdings[0].Units)
	})
}
