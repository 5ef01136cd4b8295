package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokopos/backend/internal/domain/shared"
	"github.com/tokopos/backend/internal/domain/shared/valueobject"
)

// Bundle represents a set of products sold together at a fixed price
type Bundle struct {
	shared.StoreAggregateRoot
	Name  string          `gorm:"type:varchar(200);not null"`
	Price decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Items []BundleItem    `gorm:"foreignKey:BundleID"`
}

// TableName returns the table name for GORM
func (Bundle) TableName() string {
	return "bundles"
}

// BundleItem references a product and the quantity of it inside a bundle
type BundleItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BundleID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (BundleItem) TableName() string {
	return "bundle_items"
}

// NewBundle creates a new bundle with a fixed price
func NewBundle(storeID uuid.UUID, name string, price valueobject.Money) (*Bundle, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Bundle name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Bundle price cannot be negative")
	}

	return &Bundle{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Name:               name,
		Price:              price.Amount(),
	}, nil
}

// AddItem adds a product line to the bundle
func (b *Bundle) AddItem(productID uuid.UUID, quantity int) error {
	if productID == uuid.Nil {
		return shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Bundle item quantity must be positive")
	}
	b.Items = append(b.Items, BundleItem{
		ID:        uuid.New(),
		BundleID:  b.ID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	})
	b.UpdatedAt = time.Now()
	return nil
}

// GetPriceMoney returns the bundle price as a Money value object
func (b *Bundle) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyIDR(b.Price)
}
