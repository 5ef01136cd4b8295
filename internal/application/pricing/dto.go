package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EffectivePriceResponse is the resolved price for one unit of a product
type EffectivePriceResponse struct {
	ProductID          uuid.UUID       `json:"product_id"`
	BasePrice          decimal.Decimal `json:"base_price"`
	EffectivePrice     decimal.Decimal `json:"effective_price"`
	AppliedPromotionID *uuid.UUID      `json:"applied_promotion_id,omitempty"`
	ResolvedAt         time.Time       `json:"resolved_at"`
}
