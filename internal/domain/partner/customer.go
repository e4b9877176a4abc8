package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

// Customer represents a buyer profile aggregate root.
// It links an identity user to the orders placed under it.
type Customer struct {
	shared.BaseAggregateRoot
	UserID          uuid.UUID
	Email           string
	Name            string
	Phone           string
	ShippingAddress string
}

// NewCustomer creates a new customer profile
func NewCustomer(userID uuid.UUID, email, name string) (*Customer, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Name:              name,
	}, nil
}

// SetPhone sets the customer's phone number
func (c *Customer) SetPhone(phone string) error {
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	c.Phone = strings.TrimSpace(phone)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetShippingAddress sets the default shipping address
func (c *Customer) SetShippingAddress(address string) error {
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	c.ShippingAddress = strings.TrimSpace(address)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Rename changes the customer's display name
func (c *Customer) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}
