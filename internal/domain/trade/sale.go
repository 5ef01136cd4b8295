package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokopos/backend/internal/domain/shared"
)

// PaymentType identifies how a sale was settled
type PaymentType string

const (
	PaymentCash PaymentType = "cash"
	PaymentCard PaymentType = "card"
	PaymentDebt PaymentType = "debt"
)

// IsValid checks if the payment type is known
func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentDebt:
		return true
	}
	return false
}

// Sale is a finalized point-of-sale transaction. Once posted a sale and its
// items are immutable: corrections happen through new transactions, never by
// editing history.
type Sale struct {
	shared.StoreAggregateRoot
	SaleNumber  string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_sale_store_number,priority:2"`
	CustomerID  *uuid.UUID      `gorm:"type:uuid;index"`
	PaymentType PaymentType     `gorm:"type:varchar(10);not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Note        string          `gorm:"type:text"`
	SoldAt      time.Time       `gorm:"not null;index"`
	Items       []SaleItem      `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one line of a sale, carrying a snapshot of the product at the
// moment of sale so later catalog edits never rewrite history.
type SaleItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Quantity    int             `gorm:"not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	BundleID    *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// DebtSaleLink ties a debt-financed sale to the debt it accrued onto
type DebtSaleLink struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	DebtID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DebtSaleLink) TableName() string {
	return "debt_sale_links"
}

// NewSale creates a sale from its items. The total is derived from the line
// totals, never accepted from the caller.
func NewSale(storeID uuid.UUID, saleNumber string, customerID *uuid.UUID, paymentType PaymentType, items []SaleItem, note string) (*Sale, error) {
	if saleNumber == "" {
		return nil, shared.NewDomainError("INVALID_SALE_NUMBER", "Sale number cannot be empty")
	}
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Unknown payment type")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_SALE", "Sale must contain at least one item")
	}
	if paymentType == PaymentDebt && customerID == nil {
		return nil, shared.NewDomainError("CUSTOMER_REQUIRED", "Debt sales require a customer")
	}

	total := decimal.Zero
	for i := range items {
		if items[i].Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Sale item quantity must be positive")
		}
		if items[i].UnitPrice.IsNegative() || items[i].LineTotal.IsNegative() {
			return nil, shared.ErrInvalidAmount
		}
		total = total.Add(items[i].LineTotal)
	}

	sale := &Sale{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		SaleNumber:         saleNumber,
		CustomerID:         customerID,
		PaymentType:        paymentType,
		TotalAmount:        total,
		Note:               note,
		SoldAt:             time.Now(),
		Items:              items,
	}
	for i := range sale.Items {
		sale.Items[i].SaleID = sale.ID
	}
	return sale, nil
}

// NewSaleItem creates a sale line with the product snapshot taken at sale
// time. The line total is unit price times quantity rounded to two places.
func NewSaleItem(productID uuid.UUID, productName string, unitPrice decimal.Decimal, quantity int, bundleID *uuid.UUID) (SaleItem, error) {
	if quantity <= 0 {
		return SaleItem{}, shared.NewDomainError("INVALID_QUANTITY", "Sale item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return SaleItem{}, shared.ErrInvalidAmount
	}
	return SaleItem{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		LineTotal:   unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
		BundleID:    bundleID,
	}, nil
}

// NewDebtSaleLink records that a sale accrued the given amount onto a debt
func NewDebtSaleLink(storeID, debtID, saleID uuid.UUID, amount decimal.Decimal) *DebtSaleLink {
	return &DebtSaleLink{
		ID:        uuid.New(),
		StoreID:   storeID,
		DebtID:    debtID,
		SaleID:    saleID,
		Amount:    amount,
		CreatedAt: time.Now(),
	}
}
