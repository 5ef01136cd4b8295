package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/shared/valueobject"
)

// Product represents a sellable item in the store catalog.
// It is the aggregate root for catalog operations. Stock quantity is only
// ever mutated through the stock ledger's conditional adjustment, never by
// loading and saving the aggregate.
type Product struct {
	shared.StoreAggregateRoot
	Name            string          `gorm:"type:varchar(200);not null"`
	SKU             string          `gorm:"type:varchar(50);uniqueIndex:idx_product_store_sku,priority:2,where:sku <> ''"`
	SellingPrice    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	StockQuantity   int             `gorm:"not null;default:0"`
	MinStockAlert   int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(storeID uuid.UUID, name string, sellingPrice valueobject.Money) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	if sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price cannot be negative")
	}

	return &Product{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Name:               name,
		SellingPrice:       sellingPrice.Amount(),
		DiscountPercent:    decimal.Zero,
	}, nil
}

// SetDiscountPercent sets the product's standing discount percentage
func (p *Product) SetDiscountPercent(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount percent must be between 0 and 100")
	}
	p.DiscountPercent = percent
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetMinStockAlert sets the low-stock alert threshold
func (p *Product) SetMinStockAlert(threshold int) error {
	if threshold < 0 {
		return shared.NewDomainError("INVALID_MIN_STOCK", "Minimum stock alert cannot be negative")
	}
	p.MinStockAlert = threshold
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// IsBelowMinimum returns true when on-hand stock is under the alert threshold
func (p *Product) IsBelowMinimum() bool {
	return p.MinStockAlert > 0 && p.StockQuantity < p.MinStockAlert
}

// GetSellingPriceMoney returns the selling price as a Money value object
func (p *Product) GetSellingPriceMoney() valueobject.Money {
	return valueobject.NewMoneyIDR(p.SellingPrice)
}

// BaseUnitPrice returns the selling price after the product's standing
// discount, before any promotion is applied.
func (p *Product) BaseUnitPrice() decimal.Decimal {
	if p.DiscountPercent.IsZero() {
		return p.SellingPrice
	}
	factor := decimal.NewFromInt(1).Sub(p.DiscountPercent.Div(decimal.NewFromInt(100)))
	return p.SellingPrice.Mul(factor)
}
