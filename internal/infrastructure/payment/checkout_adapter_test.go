package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketbay/backend/internal/domain/order"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/domain/shared/valueobject"
	"github.com/marketbay/backend/internal/infrastructure/config"
)

func testPaymentConfig(gatewayURL string) config.PaymentConfig {
	return config.PaymentConfig{
		GatewayURL:    gatewayURL,
		StoreID:       "teststore",
		StorePassword: "testpass",
		SuccessURL:    "https://shop.example.com/pay/success",
		FailURL:       "https://shop.example.com/pay/fail",
		CancelURL:     "https://shop.example.com/pay/cancel",
		CallbackURL:   "https://shop.example.com/api/v1/payments/callback",
		Timeout:       5 * time.Second,
		Sandbox:       true,
	}
}

func testPaymentRequest(t *testing.T) *order.PaymentRequest {
	t.Helper()
	amount, err := valueobject.NewMoneyFromString("49.99", valueobject.USD)
	require.NoError(t, err)
	return &order.PaymentRequest{
		OrderID:        uuid.New(),
		OrderNumber:    "MB-2026-00001",
		TransactionRef: "TXN-1756100000000-a1b2c3",
		Amount:         amount,
		CustomerEmail:  "buyer@example.com",
		Description:    "Order MB-2026-00001",
	}
}

func TestCheckoutAdapterCreatePayment(t *testing.T) {
	var got url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"SUCCESS","sessionkey":"sess-123","GatewayPageURL":"https://pay.example.com/checkout/sess-123"}`))
	}))
	defer server.Close()

	adapter, err := NewCheckoutAdapter(testPaymentConfig(server.URL))
	require.NoError(t, err)

	req := testPaymentRequest(t)
	session, err := adapter.CreatePayment(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "sess-123", session.SessionID)
	assert.Equal(t, req.TransactionRef, session.TransactionRef)
	assert.Equal(t, "https://pay.example.com/checkout/sess-123", session.RedirectURL)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	assert.Equal(t, "teststore", got.Get("store_id"))
	assert.Equal(t, req.TransactionRef, got.Get("tran_id"))
	assert.Equal(t, "49.99", got.Get("total_amount"))
	assert.Equal(t, "USD", got.Get("currency"))
	assert.Equal(t, req.OrderNumber, got.Get("value_a"))
}

func TestCheckoutAdapterCreatePaymentGatewayRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"FAILED","failedreason":"store credential mismatch"}`))
	}))
	defer server.Close()

	adapter, err := NewCheckoutAdapter(testPaymentConfig(server.URL))
	require.NoError(t, err)

	_, err = adapter.CreatePayment(context.Background(), testPaymentRequest(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrPaymentGateway)
	assert.Contains(t, err.Error(), "store credential mismatch")
}

func TestCheckoutAdapterCreatePaymentHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	adapter, err := NewCheckoutAdapter(testPaymentConfig(server.URL))
	require.NoError(t, err)

	_, err = adapter.CreatePayment(context.Background(), testPaymentRequest(t))
	assert.ErrorIs(t, err, shared.ErrPaymentGateway)
}

func TestCheckoutAdapterCreatePaymentValidation(t *testing.T) {
	adapter, err := NewCheckoutAdapter(testPaymentConfig("https://pay.example.com"))
	require.NoError(t, err)

	req := testPaymentRequest(t)
	req.TransactionRef = ""
	_, err = adapter.CreatePayment(context.Background(), req)
	assert.Error(t, err)

	req = testPaymentRequest(t)
	req.Amount = valueobject.ZeroUSD()
	_, err = adapter.CreatePayment(context.Background(), req)
	assert.Error(t, err)
}

func TestNewCheckoutAdapterRequiresCredentials(t *testing.T) {
	cfg := testPaymentConfig("https://pay.example.com")
	cfg.StoreID = ""
	_, err := NewCheckoutAdapter(cfg)
	assert.Error(t, err)

	cfg = testPaymentConfig("")
	_, err = NewCheckoutAdapter(cfg)
	assert.Error(t, err)
}

func TestParseCallback(t *testing.T) {
	adapter, err := NewCheckoutAdapter(testPaymentConfig("https://pay.example.com"))
	require.NoError(t, err)

	form := url.Values{}
	form.Set("tran_id", "TXN-1-abc123")
	form.Set("status", "VALID")
	result, err := adapter.ParseCallback(form)
	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, "TXN-1-abc123", result.TransactionRef)

	form.Set("status", "FAILED")
	form.Set("error", "insufficient funds")
	result, err = adapter.ParseCallback(form)
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, "insufficient funds", result.FailureReason)

	form.Del("tran_id")
	_, err = adapter.ParseCallback(form)
	assert.Error(t, err)
}
