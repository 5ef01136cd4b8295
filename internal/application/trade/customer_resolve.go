package trade

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
)

// resolveCustomerByPhone finds or creates the customer for a sale or order.
// A blank phone means an anonymous walk-in. Lookup by (store, phone) acts as
// an upsert so a returning customer never produces a duplicate row.
func resolveCustomerByPhone(ctx context.Context, repos TransactionalRepositories, storeID uuid.UUID, phone, name string) (*uuid.UUID, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, nil
	}

	customer, err := repos.CustomerRepo().FindByPhoneForStore(ctx, storeID, phone)
	if err == nil {
		return &customer.ID, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	customer, err = partner.NewCustomer(storeID, name, phone)
	if err != nil {
		return nil, err
	}
	if err := repos.CustomerRepo().Save(ctx, customer); err != nil {
		return nil, err
	}
	return &customer.ID, nil
}
