package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/marketbay/backend/internal/domain/shared/valueobject"
)

// PaymentRequest carries the data needed to open a hosted checkout session
type PaymentRequest struct {
	OrderID        uuid.UUID
	OrderNumber    string
	TransactionRef string
	Amount         valueobject.Money
	CustomerEmail  string
	Description    string
}

// PaymentSession is the gateway's answer to a checkout request.
// RedirectURL is where the customer completes the payment.
type PaymentSession struct {
	SessionID      string
	TransactionRef string
	RedirectURL    string
	ExpiresAt      time.Time
}

// CallbackResult is the gateway's notification about a finished payment
type CallbackResult struct {
	TransactionRef string
	Succeeded      bool
	FailureReason  string
}

// PaymentGateway is the port to the external payment provider
type PaymentGateway interface {
	// CreatePayment opens a checkout session for the given amount and
	// transaction reference
	CreatePayment(ctx context.Context, req *PaymentRequest) (*PaymentSession, error)
}
