package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tokopos/backend/internal/domain/shared"
)

// Customer represents a buyer known to the store, identified by phone
// number. Phone numbers are unique within a store.
type Customer struct {
	shared.StoreAggregateRoot
	Name  string `gorm:"type:varchar(200);not null"`
	Phone string `gorm:"type:varchar(30);not null;uniqueIndex:idx_customer_store_phone,priority:2"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(storeID uuid.UUID, name, phone string) (*Customer, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Customer phone cannot be empty")
	}
	if len(phone) > 30 {
		return nil, shared.NewDomainError("INVALID_PHONE", "Customer phone cannot exceed 30 characters")
	}
	if name == "" {
		name = phone
	}

	return &Customer{
		StoreAggregateRoot: shared.NewStoreAggregateRoot(storeID),
		Name:               name,
		Phone:              phone,
	}, nil
}

// Rename updates the customer's display name
func (c *Customer) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}
