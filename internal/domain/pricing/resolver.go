package pricing

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokopos/backend/internal/domain/catalog"
)

var oneHundred = decimal.NewFromInt(100)

// Quote is the result of resolving the effective price of a product at a
// given instant.
type Quote struct {
	Price              decimal.Decimal
	BasePrice          decimal.Decimal
	AppliedPromotionID *uuid.UUID
}

// candidate is one promotion's bid for the product price
type candidate struct {
	promotionID uuid.UUID
	createdAt   time.Time
	price       decimal.Decimal
}

// ResolveEffectivePrice computes what the customer pays for one unit of the
// product at the given instant. The starting point is the selling price
// after the product's standing discount. Every promotion active at that
// instant contributes a candidate price (per-product overrides win over the
// promotion's own fields). The lowest price always wins and is floored at
// zero. Ties between promotions are broken deterministically: the earliest
// created promotion wins, with the lexicographically smallest ID as the
// final tie-break.
func ResolveEffectivePrice(product *catalog.Product, promotions []catalog.Promotion, at time.Time) Quote {
	base := product.BaseUnitPrice()
	if base.IsNegative() {
		base = decimal.Zero
	}

	candidates := make([]candidate, 0, len(promotions))
	for i := range promotions {
		promo := &promotions[i]
		if !promo.IsActiveAt(at) {
			continue
		}
		if promo.OverrideFor(product.ID) == nil {
			continue
		}
		discountType, value := promo.EffectiveDiscount(product.ID)
		candidates = append(candidates, candidate{
			promotionID: promo.ID,
			createdAt:   promo.CreatedAt,
			price:       applyDiscount(base, discountType, value),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].price.Equal(candidates[j].price) {
			return candidates[i].price.LessThan(candidates[j].price)
		}
		if !candidates[i].createdAt.Equal(candidates[j].createdAt) {
			return candidates[i].createdAt.Before(candidates[j].createdAt)
		}
		return candidates[i].promotionID.String() < candidates[j].promotionID.String()
	})

	quote := Quote{Price: base, BasePrice: base}
	if len(candidates) > 0 && candidates[0].price.LessThan(base) {
		id := candidates[0].promotionID
		quote.Price = candidates[0].price
		quote.AppliedPromotionID = &id
	}
	if quote.Price.IsNegative() {
		quote.Price = decimal.Zero
	}
	return quote
}

// applyDiscount computes the discounted price for a single candidate.
// Fixed discounts floor at zero; percent discounts scale the price down.
func applyDiscount(price decimal.Decimal, discountType catalog.DiscountType, value decimal.Decimal) decimal.Decimal {
	switch discountType {
	case catalog.DiscountTypePercent:
		factor := decimal.NewFromInt(1).Sub(value.Div(oneHundred))
		return price.Mul(factor)
	case catalog.DiscountTypeFixed:
		discounted := price.Sub(value)
		if discounted.IsNegative() {
			return decimal.Zero
		}
		return discounted
	}
	return price
}
