package partner

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/domain/partner"
	"github.com/marketbay/backend/internal/domain/shared"
)

// CustomerService handles customer profile management
type CustomerService struct {
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo partner.CustomerRepository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// GetProfile returns the customer profile of the given user
func (s *CustomerService) GetProfile(ctx context.Context, userID uuid.UUID) (*CustomerInfo, error) {
	customer, err := s.customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := NewCustomerInfo(customer)
	return &info, nil
}

// UpdateProfile applies partial updates to the caller's profile
func (s *CustomerService) UpdateProfile(ctx context.Context, input UpdateCustomerInput) (*CustomerInfo, error) {
	customer, err := s.customerRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := customer.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Phone != nil {
		if err := customer.SetPhone(*input.Phone); err != nil {
			return nil, err
		}
	}
	if input.ShippingAddress != nil {
		if err := customer.SetShippingAddress(*input.ShippingAddress); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	info := NewCustomerInfo(customer)
	return &info, nil
}

// GetCustomer returns a customer profile by its ID (admin scope)
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerInfo, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewCustomerInfo(customer)
	return &info, nil
}

// ListCustomers returns a paginated list of customers (admin scope)
func (s *CustomerService) ListCustomers(ctx context.Context, filter shared.Filter) (*shared.Paginated[CustomerInfo], error) {
	customers, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.customerRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	infos := make([]CustomerInfo, len(customers))
	for i := range customers {
		infos[i] = NewCustomerInfo(&customers[i])
	}

	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result, nil
}
