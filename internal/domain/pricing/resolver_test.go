package pricing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/shared/valueobject"
)

func newTestProduct(t *testing.T, price float64) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(uuid.New(), "Kopi Susu", valueobject.NewMoneyIDRFromFloat(price))
	require.NoError(t, err)
	return product
}

func newPercentPromotion(t *testing.T, product *catalog.Product, percent int64, createdAt time.Time) catalog.Promotion {
	t.Helper()
	promo, err := catalog.NewPromotion(product.StoreID, "Promo", catalog.DiscountTypePercent, decimal.NewFromInt(percent))
	require.NoError(t, err)
	require.NoError(t, promo.AttachProduct(product.ID, nil, nil))
	promo.CreatedAt = createdAt
	return *promo
}

func TestResolveEffectivePrice(t *testing.T) {
	now := time.Now()

	t.Run("returns base price with no promotions", func(t *testing.T) {
		product := newTestProduct(t, 1000)
		quote := ResolveEffectivePrice(product, nil, now)
		assert.True(t, quote.Price.Equal(decimal.NewFromInt(1000)))
		assert.Nil(t, quote.AppliedPromotionID)
	})

	t.Run("applies percent promotion", func(t *testing.T) {
		product := newTestProduct(t, 1000)
		promo := newPercentPromotion(t, product, 20, now)

		quote := ResolveEffectivePrice(product, []catalog.Promotion{promo}, now)
		assert.True(t, quote.Price.Equal(decimal.NewFromInt(800)), "got %s", quote.Price)
		require.NotNil(t, quote.AppliedPromotionID)
		assert.Equal(t, promo.ID, *quote.AppliedPromotionID)
	})

	t.Run("lowest price wins across promotions", func(t *testing.T) {
		product := newTestProduct(t, 1000)
		weak := newPercentPromotion(t, product, 10, now)
		strong := newPercentPromotion(t, product, 30, now)

		quote := ResolveEffectivePrice(product, []catalog.Promotion{weak, strong}, now)
		assert.True(t, quote.Price.Equal(decimal.NewFromInt(700)))
		require.NotNil(t, quote.AppliedPromotionID)
		assert.Equal(t, strong.ID, *quote.AppliedPromotionID)
	})

	t.Run("tie broken by earliest created promotion", func(t *testing.T) {
		product := newTestProduct(t, 1000)
		older := newPercentPromotion(t, product, 20, now.Add(-time.Hour))
		newer := newPercentPromotion(t, product, 20, now)

		quote := ResolveEffectivePrice(product, []catalog.Promotion{newer, older}, now)
		require.NotNil(t, quote.AppliedPromotionID)
		assert.Equal(t, older.ID, *quote.AppliedPromotionID)
	})

	t.Run("ignores promotions not targeting the product", func(t *testing.T) {
		product := newTestProduct(t, 1000)
		other := newTestProduct(t, 500)
		promo := newPercentPromotion(t, other, 50, now)

		quote := ResolveEffectivePrice(product, []catalog.Promotion{promo}, now)
		assert.True(t, quote.Price.Equal(decimal.NewFromInt(1000)))
		assert.Nil(t, quote.AppliedPromotionID)
	})

	t.Run("ignores inactive promotions", func(t *testing.T) {
		product := newTestProduct(t, 1000)
		promo := newPercentPromotion(t, product, 50, now)
		end := now.Add(-time.Minute)
		require.NoError(t, promo.SetSchedule(nil, &end))

		quote := ResolveEffectivePrice(product, []catalog.Promotion{promo}, now)
		assert.True(t, quote.Price.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("fixed discount floors at zero", func(t *testing.T) {
		product := newTestProduct(t, 1000)
		promo, err := catalog.NewPromotion(product.StoreID, "Cuci Gudang", catalog.DiscountTypeFixed, decimal.NewFromInt(5000))
		require.NoError(t, err)
		require.NoError(t, promo.AttachProduct(product.ID, nil, nil))

		quote := ResolveEffectivePrice(product, []catalog.Promotion{*promo}, now)
		assert.True(t, quote.Price.IsZero())
	})

	t.Run("promotion stacks on the standing product discount", func(t *testing.T) {
		product := newTestProduct(t, 1000)
		require.NoError(t, product.SetDiscountPercent(decimal.NewFromInt(10)))
		promo := newPercentPromotion(t, product, 20, now)

		// 1000 after 10% standing discount is 900, then 20% promotion.
		quote := ResolveEffectivePrice(product, []catalog.Promotion{promo}, now)
		assert.True(t, quote.BasePrice.Equal(decimal.NewFromInt(900)))
		assert.True(t, quote.Price.Equal(decimal.NewFromInt(720)), "got %s", quote.Price)
	})

	t.Run("promotion never raises the price", func(t *testing.T) {
		product := newTestProduct(t, 1000)
		promo := newPercentPromotion(t, product, 0, now)

		quote := ResolveEffectivePrice(product, []catalog.Promotion{promo}, now)
		assert.True(t, quote.Price.Equal(decimal.NewFromInt(1000)))
		assert.Nil(t, quote.AppliedPromotionID)
	})
}
