package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokopos/backend/internal/domain/shared"
)

// DiscountType represents how a promotion discounts a price
type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeFixed   DiscountType = "fixed"
)

// IsValid checks if the discount type is known
func (t DiscountType) IsValid() bool {
	return t == DiscountTypePercent || t == DiscountTypeFixed
}

// Promotion represents a time-bound discount campaign targeting one or
// more products. Start and end bounds are each independently optional;
// an absent bound leaves the window open on that side.
type Promotion struct {
	shared.StoreAggregateRoot
	Name          string          `gorm:"type:varchar(200);not null"`
	DiscountType  DiscountType    `gorm:"type:varchar(10);not null"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Active        bool            `gorm:"not null;default:true"`
	StartAt       *time.Time      `gorm:"index"`
	EndAt         *time.Time      `gorm:"index"`
	Products      []PromotionProductOverride `gorm:"foreignKey:PromotionID"`
}

// TableName returns the table name for GORM
func (Promotion) TableName() string {
	return "promotions"
}

// PromotionProductOverride attaches a promotion to a product, optionally
// overriding the promotion's discount type and value for that product.
type PromotionProductOverride struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	PromotionID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	DiscountType  *DiscountType    `gorm:"type:varchar(10)"`
	DiscountValue *decimal.Decimal `gorm:"type:decimal(18,2)"`
	CreatedAt     time.Time
}

// TableName returns the table name for GORM
func (PromotionProductOverride) TableName() string {
	return "promotion_products"
}

// NewPromotion creates a new promotion
func NewPromotion(storeID uuid.UUID, name string, discountType DiscountType, discountValue decimal.Decimal) (*Promotion, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Promotion name cannot be empty")
	}
	if err := validateDiscount(discountType, discountValue); err != nil {
		return nil, err
	}

	return &Promotion{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Name:               name,
		DiscountType:       discountType,
		DiscountValue:      discountValue,
		Active:             true,
	}, nil
}

// SetSchedule sets the optional start/end bounds of the promotion window
func (p *Promotion) SetSchedule(startAt, endAt *time.Time) error {
	if startAt != nil && endAt != nil && endAt.Before(*startAt) {
		return shared.NewDomainError("INVALID_SCHEDULE", "Promotion end must not be before its start")
	}
	p.StartAt = startAt
	p.EndAt = endAt
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// AttachProduct targets the promotion at a product, optionally overriding
// the discount type/value for that product only.
func (p *Promotion) AttachProduct(productID uuid.UUID, overrideType *DiscountType, overrideValue *decimal.Decimal) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if overrideType != nil {
		if overrideValue == nil {
			return shared.NewDomainError("INVALID_OVERRIDE", "Override value required when override type is set")
		}
		if err := validateDiscount(*overrideType, *overrideValue); err != nil {
			return err
		}
	}
	p.Products = append(p.Products, PromotionProductOverride{
		ID:            uuid.New(),
		PromotionID:   p.ID,
		ProductID:     productID,
		DiscountType:  overrideType,
		DiscountValue: overrideValue,
		CreatedAt:     time.Now(),
	})
	return nil
}

// IsActiveAt reports whether the promotion applies at the given instant
func (p *Promotion) IsActiveAt(at time.Time) bool {
	if !p.Active {
		return false
	}
	if p.StartAt != nil && at.Before(*p.StartAt) {
		return false
	}
	if p.EndAt != nil && at.After(*p.EndAt) {
		return false
	}
	return true
}

// OverrideFor returns the override row for the given product, if any
func (p *Promotion) OverrideFor(productID uuid.UUID) *PromotionProductOverride {
	for i := range p.Products {
		if p.Products[i].ProductID == productID {
			return &p.Products[i]
		}
	}
	return nil
}

// EffectiveDiscount resolves the discount type and value that apply to the
// given product: the per-product override when present, the promotion's own
// fields otherwise.
func (p *Promotion) EffectiveDiscount(productID uuid.UUID) (DiscountType, decimal.Decimal) {
	if ov := p.OverrideFor(productID); ov != nil && ov.DiscountType != nil && ov.DiscountValue != nil {
		return *ov.DiscountType, *ov.DiscountValue
	}
	return p.DiscountType, p.DiscountValue
}

// validateDiscount enforces the promotion value constraints: percent values
// must lie in [0, 100], fixed values must not be negative.
func validateDiscount(discountType DiscountType, value decimal.Decimal) error {
	if !discountType.IsValid() {
		return shared.NewDomainError("INVALID_DISCOUNT_TYPE", "Discount type must be percent or fixed")
	}
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount value cannot be negative")
	}
	if discountType == DiscountTypePercent && value.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Percent discount cannot exceed 100")
	}
	return nil
}
