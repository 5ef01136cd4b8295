package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/domain/catalog"
	"github.com/tokopos/backend/internal/domain/pricing"
)

// PromotionCache caches the active promotion set per product so hot
// products don't hit the database on every price lookup. A miss returns
// ok=false; cache failures are treated as misses, never as errors.
type PromotionCache interface {
	Get(ctx context.Context, storeID, productID uuid.UUID) ([]catalog.Promotion, bool)
	Set(ctx context.Context, storeID, productID uuid.UUID, promotions []catalog.Promotion)
	Invalidate(ctx context.Context, storeID, productID uuid.UUID)
}

// PricingService resolves effective prices for products
type PricingService struct {
	products   catalog.ProductRepository
	promotions catalog.PromotionRepository
	cache      PromotionCache
	logger     *zap.Logger
}

// NewPricingService creates a new PricingService. The cache is optional.
func NewPricingService(products catalog.ProductRepository, promotions catalog.PromotionRepository, logger *zap.Logger) *PricingService {
	return &PricingService{
		products:   products,
		promotions: promotions,
		logger:     logger,
	}
}

// SetPromotionCache enables promotion caching for price lookups
func (s *PricingService) SetPromotionCache(cache PromotionCache) {
	s.cache = cache
}

// ResolveEffectivePrice computes the price one unit of the product costs at
// the given instant, after the product's standing discount and the best
// qualifying promotion.
func (s *PricingService) ResolveEffectivePrice(ctx context.Context, storeID, productID uuid.UUID, at time.Time) (*EffectivePriceResponse, error) {
	product, err := s.products.FindByIDForStore(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}

	promotions, err := s.activePromotions(ctx, storeID, productID, at)
	if err != nil {
		return nil, err
	}

	quote := pricing.ResolveEffectivePrice(product, promotions, at)
	return &EffectivePriceResponse{
		ProductID:          productID,
		BasePrice:          quote.BasePrice,
		EffectivePrice:     quote.Price,
		AppliedPromotionID: quote.AppliedPromotionID,
		ResolvedAt:         at,
	}, nil
}

// activePromotions returns the promotions targeting the product around the
// given instant, from cache when possible. Cached entries hold the set that
// was active at fill time. The resolver re-checks each window, so an entry
// that has since closed is never applied, but a promotion whose window opens
// after the fill is only picked up once the TTL expires.
func (s *PricingService) activePromotions(ctx context.Context, storeID, productID uuid.UUID, at time.Time) ([]catalog.Promotion, error) {
	if s.cache != nil {
		if promotions, ok := s.cache.Get(ctx, storeID, productID); ok {
			return promotions, nil
		}
	}

	promotions, err := s.promotions.FindActiveForProduct(ctx, storeID, productID, at)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, storeID, productID, promotions)
	}
	return promotions, nil
}
