package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	tradeapp "github.com/tokopos/backend/internal/application/trade"
	"github.com/tokopos/backend/internal/domain/partner"
	"github.com/tokopos/backend/internal/domain/shared"
)

// CustomerService manages customer identities
type CustomerService struct {
	scope  tradeapp.TransactionScope
	logger *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(scope tradeapp.TransactionScope, logger *zap.Logger) *CustomerService {
	return &CustomerService{scope: scope, logger: logger}
}

// CreateCustomer registers a customer with a store-unique phone number
func (s *CustomerService) CreateCustomer(ctx context.Context, storeID uuid.UUID, name, phone string) (*CustomerResponse, error) {
	var response CustomerResponse
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		customer, err := partner.NewCustomer(storeID, name, phone)
		if err != nil {
			return err
		}
		if err := repos.CustomerRepo().Save(ctx, customer); err != nil {
			return err
		}
		response = ToCustomerResponse(customer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// MergeCustomers consolidates two customer identities: every debt, order and
// sale owned by the source is reassigned to the target atomically, then the
// source is deleted. Returns the surviving target customer.
func (s *CustomerService) MergeCustomers(ctx context.Context, storeID, sourceID, targetID uuid.UUID) (*CustomerResponse, error) {
	if sourceID == targetID {
		return nil, shared.NewDomainError("INVALID_MERGE", "Cannot merge a customer into itself")
	}

	var response CustomerResponse
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		if _, err := repos.CustomerRepo().FindByIDForStore(ctx, storeID, sourceID); err != nil {
			return err
		}
		target, err := repos.CustomerRepo().FindByIDForStore(ctx, storeID, targetID)
		if err != nil {
			return err
		}

		if err := repos.DebtRepo().ReassignCustomer(ctx, storeID, sourceID, targetID); err != nil {
			return err
		}
		if err := repos.OrderRepo().ReassignCustomer(ctx, storeID, sourceID, targetID); err != nil {
			return err
		}
		if err := repos.SaleRepo().ReassignCustomer(ctx, storeID, sourceID, targetID); err != nil {
			return err
		}
		if err := repos.CustomerRepo().DeleteForStore(ctx, storeID, sourceID); err != nil {
			return err
		}

		response = ToCustomerResponse(target)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("customers merged",
		zap.String("store_id", storeID.String()),
		zap.String("source_id", sourceID.String()),
		zap.String("target_id", targetID.String()))
	return &response, nil
}

// GetCustomer returns a single customer
func (s *CustomerService) GetCustomer(ctx context.Context, storeID, customerID uuid.UUID) (*CustomerResponse, error) {
	var response CustomerResponse
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		customer, err := repos.CustomerRepo().FindByIDForStore(ctx, storeID, customerID)
		if err != nil {
			return err
		}
		response = ToCustomerResponse(customer)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// ListCustomers returns customers for the store
func (s *CustomerService) ListCustomers(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (*shared.Paginated[CustomerResponse], error) {
	var page shared.Paginated[CustomerResponse]
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		customers, err := repos.CustomerRepo().FindAllForStore(ctx, storeID, filter)
		if err != nil {
			return err
		}
		total, err := repos.CustomerRepo().CountForStore(ctx, storeID)
		if err != nil {
			return err
		}
		responses := make([]CustomerResponse, len(customers))
		for i := range customers {
			responses[i] = ToCustomerResponse(&customers[i])
		}
		page = shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}
