package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/marketbay/backend/internal/domain/order"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/infrastructure/config"
)

const (
	checkoutSessionPath = "/gwprocess/v4/api.php"
	sessionValidity     = 30 * time.Minute
)

// CheckoutAdapter implements the order.PaymentGateway port against an
// SSLCommerz-style hosted checkout API. CreatePayment registers a session
// with the gateway and returns the URL the customer is redirected to.
type CheckoutAdapter struct {
	cfg        config.PaymentConfig
	httpClient *http.Client
}

// NewCheckoutAdapter creates a new hosted-checkout adapter
func NewCheckoutAdapter(cfg config.PaymentConfig) (*CheckoutAdapter, error) {
	if cfg.GatewayURL == "" {
		return nil, fmt.Errorf("payment: gateway URL is required")
	}
	if cfg.StoreID == "" || cfg.StorePassword == "" {
		return nil, fmt.Errorf("payment: store credentials are required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &CheckoutAdapter{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// checkoutSessionResponse is the gateway's session creation response
type checkoutSessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	SessionKey     string `json:"sessionkey"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// CreatePayment registers a payment session with the gateway.
// The returned session carries the redirect URL for the customer.
func (a *CheckoutAdapter) CreatePayment(ctx context.Context, req *order.PaymentRequest) (*order.PaymentSession, error) {
	if req.TransactionRef == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_REQUEST", "Transaction reference is required")
	}
	if req.Amount.Amount().IsNegative() || req.Amount.Amount().IsZero() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_REQUEST", "Payment amount must be positive")
	}

	form := url.Values{}
	form.Set("store_id", a.cfg.StoreID)
	form.Set("store_passwd", a.cfg.StorePassword)
	form.Set("tran_id", req.TransactionRef)
	form.Set("total_amount", req.Amount.StringFixed(2))
	form.Set("currency", string(req.Amount.Currency()))
	form.Set("success_url", a.cfg.SuccessURL)
	form.Set("fail_url", a.cfg.FailURL)
	form.Set("cancel_url", a.cfg.CancelURL)
	form.Set("ipn_url", a.cfg.CallbackURL)
	form.Set("product_name", req.Description)
	form.Set("product_category", "marketplace")
	form.Set("product_profile", "general")
	form.Set("cus_email", req.CustomerEmail)
	form.Set("value_a", req.OrderNumber)
	form.Set("value_b", req.OrderID.String())

	respBody, err := a.doRequest(ctx, form)
	if err != nil {
		return nil, err
	}

	var sessionResp checkoutSessionResponse
	if err := json.Unmarshal(respBody, &sessionResp); err != nil {
		return nil, fmt.Errorf("payment: failed to parse gateway response: %w", err)
	}

	if !strings.EqualFold(sessionResp.Status, "SUCCESS") || sessionResp.GatewayPageURL == "" {
		reason := sessionResp.FailedReason
		if reason == "" {
			reason = "gateway rejected the session"
		}
		return nil, fmt.Errorf("%w: %s", shared.ErrPaymentGateway, reason)
	}

	return &order.PaymentSession{
		SessionID:      sessionResp.SessionKey,
		TransactionRef: req.TransactionRef,
		RedirectURL:    sessionResp.GatewayPageURL,
		ExpiresAt:      time.Now().Add(sessionValidity),
	}, nil
}

// ParseCallback converts the gateway's server-to-server notification form
// fields into a callback result. Statuses other than VALID/VALIDATED are
// treated as failures.
func (a *CheckoutAdapter) ParseCallback(form url.Values) (*order.CallbackResult, error) {
	ref := form.Get("tran_id")
	if ref == "" {
		return nil, shared.NewDomainError("INVALID_CALLBACK", "Callback is missing the transaction reference")
	}

	status := strings.ToUpper(form.Get("status"))
	succeeded := status == "VALID" || status == "VALIDATED"

	result := &order.CallbackResult{
		TransactionRef: ref,
		Succeeded:      succeeded,
	}
	if !succeeded {
		result.FailureReason = form.Get("error")
		if result.FailureReason == "" {
			result.FailureReason = status
		}
	}
	return result, nil
}

// doRequest posts the form to the gateway's session endpoint
func (a *CheckoutAdapter) doRequest(ctx context.Context, form url.Values) ([]byte, error) {
	endpoint := strings.TrimRight(a.cfg.GatewayURL, "/") + checkoutSessionPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("payment: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrPaymentGateway, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("payment: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d", shared.ErrPaymentGateway, resp.StatusCode)
	}

	return respBody, nil
}

// Ensure CheckoutAdapter implements the PaymentGateway port
var _ order.PaymentGateway = (*CheckoutAdapter)(nil)
