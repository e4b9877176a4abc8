package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/domain/order"
	"github.com/marketbay/backend/internal/domain/partner"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/domain/shared/valueobject"
	"github.com/marketbay/backend/internal/domain/shop"
)

// MockOrderRepository is a mock implementation of order.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByTransactionRef(ctx context.Context, ref string) (*order.Order, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]order.Order, error) {
	args := m.Called(ctx, vendorID, filter)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, vendorID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Save(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveWithLock(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GenerateOrderNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*partner.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *partner.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVendorRepository is a mock implementation of partner.VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Vendor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindByEmail(ctx context.Context, email string) (*partner.Vendor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Vendor, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVendorRepository) Save(ctx context.Context, v *partner.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockShopRepository is a mock implementation of shop.ShopRepository
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*shop.Shop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]shop.Shop, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, vendorID, filter)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) FindAll(ctx context.Context, filter shared.Filter) ([]shop.Shop, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]shop.Shop), args.Error(1)
}

func (m *MockShopRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShopRepository) Save(ctx context.Context, s *shop.Shop) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaymentGateway is a mock implementation of order.PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreatePayment(ctx context.Context, req *order.PaymentRequest) (*order.PaymentSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PaymentSession), args.Error(1)
}

type orderServiceMocks struct {
	orderRepo    *MockOrderRepository
	customerRepo *MockCustomerRepository
	vendorRepo   *MockVendorRepository
	shopRepo     *MockShopRepository
	gateway      *MockPaymentGateway
}

func newTestOrderService() (*OrderService, *orderServiceMocks) {
	m := &orderServiceMocks{
		orderRepo:    new(MockOrderRepository),
		customerRepo: new(MockCustomerRepository),
		vendorRepo:   new(MockVendorRepository),
		shopRepo:     new(MockShopRepository),
		gateway:      new(MockPaymentGateway),
	}
	svc := NewOrderService(m.orderRepo, m.customerRepo, m.vendorRepo, m.shopRepo, m.gateway, zap.NewNop())
	return svc, m
}

func newTestCustomer(t *testing.T) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer(uuid.New(), "buyer@example.com", "Buyer One")
	require.NoError(t, err)
	return customer
}

func newTestShop(t *testing.T, vendorID uuid.UUID) *shop.Shop {
	t.Helper()
	s, err := shop.NewShop("Trendy Threads", vendorID)
	require.NoError(t, err)
	return s
}

func newTestOrder(t *testing.T, customerID, shopID uuid.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder("MB-2026-00001", customerID, nil, valueobject.ZeroUSD())
	require.NoError(t, err)
	price, err := valueobject.NewMoneyFromString("19.99", valueobject.USD)
	require.NoError(t, err)
	_, err = o.AddItem(shopID, uuid.New(), "M", 2, price, decimal.Zero)
	require.NoError(t, err)
	return o
}

func TestCreateOrder(t *testing.T) {
	svc, m := newTestOrderService()

	customer := newTestCustomer(t)
	s := newTestShop(t, uuid.New())

	m.customerRepo.On("FindByUserID", mock.Anything, customer.UserID).Return(customer, nil)
	m.orderRepo.On("GenerateOrderNumber", mock.Anything).Return("MB-2026-00001", nil)
	m.shopRepo.On("FindByIDs", mock.Anything, []uuid.UUID{s.ID}).Return([]shop.Shop{*s}, nil)
	m.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)
	m.gateway.On("CreatePayment", mock.Anything, mock.MatchedBy(func(req *order.PaymentRequest) bool {
		// The gateway is charged the subtotal, not the discounted total
		return req.Amount.Amount().Equal(decimal.RequireFromString("39.98")) &&
			req.OrderNumber == "MB-2026-00001"
	})).Return(&order.PaymentSession{
		SessionID:      "sess-1",
		RedirectURL:    "https://pay.example.com/checkout/sess-1",
		ExpiresAt:      time.Now().Add(30 * time.Minute),
		TransactionRef: "TXN-1",
	}, nil)

	result, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerUserID: customer.UserID,
		Discount:       decimal.RequireFromString("5.00"),
		Items: []CreateOrderItemInput{
			{ShopID: s.ID, ProductID: uuid.New(), Size: "M", Quantity: 2, UnitPrice: decimal.RequireFromString("19.99")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example.com/checkout/sess-1", result.RedirectURL)
	assert.Equal(t, "MB-2026-00001", result.Order.OrderNumber)
	assert.Equal(t, customer.ID, result.Order.CustomerID)
	assert.True(t, result.Order.Subtotal.Equal(decimal.RequireFromString("39.98")))
	assert.True(t, result.Order.Total.Equal(decimal.RequireFromString("34.98")))
	assert.NotEmpty(t, result.Order.TransactionRef)
	assert.Equal(t, order.StatusPending.String(), result.Order.Status)
}

func TestCreateOrderEmpty(t *testing.T) {
	svc, _ := newTestOrderService()

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerUserID: uuid.New(),
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EMPTY_ORDER", domainErr.Code)
}

func TestCreateOrderCustomerMissing(t *testing.T) {
	svc, m := newTestOrderService()

	userID := uuid.New()
	m.customerRepo.On("FindByUserID", mock.Anything, userID).Return(nil, shared.ErrNotFound)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerUserID: userID,
		Items: []CreateOrderItemInput{
			{ShopID: uuid.New(), ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("9.99")},
		},
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", domainErr.Code)
	m.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrderBlacklistedShop(t *testing.T) {
	svc, m := newTestOrderService()

	customer := newTestCustomer(t)
	s := newTestShop(t, uuid.New())
	require.NoError(t, s.Blacklist("counterfeit goods"))

	m.customerRepo.On("FindByUserID", mock.Anything, customer.UserID).Return(customer, nil)
	m.orderRepo.On("GenerateOrderNumber", mock.Anything).Return("MB-2026-00002", nil)
	m.shopRepo.On("FindByIDs", mock.Anything, []uuid.UUID{s.ID}).Return([]shop.Shop{*s}, nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerUserID: customer.UserID,
		Items: []CreateOrderItemInput{
			{ShopID: s.ID, ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("9.99")},
		},
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SHOP_BLACKLISTED", domainErr.Code)
	assert.Contains(t, domainErr.Message, "Trendy Threads")
	m.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.gateway.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
}

func TestCreateOrderUnknownShop(t *testing.T) {
	svc, m := newTestOrderService()

	customer := newTestCustomer(t)
	shopID := uuid.New()

	m.customerRepo.On("FindByUserID", mock.Anything, customer.UserID).Return(customer, nil)
	m.orderRepo.On("GenerateOrderNumber", mock.Anything).Return("MB-2026-00003", nil)
	m.shopRepo.On("FindByIDs", mock.Anything, []uuid.UUID{shopID}).Return([]shop.Shop{}, nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerUserID: customer.UserID,
		Items: []CreateOrderItemInput{
			{ShopID: shopID, ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("9.99")},
		},
	})
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SHOP_NOT_FOUND", domainErr.Code)
}

func TestCreateOrderGatewayFailureRollsBack(t *testing.T) {
	svc, m := newTestOrderService()

	customer := newTestCustomer(t)
	s := newTestShop(t, uuid.New())

	m.customerRepo.On("FindByUserID", mock.Anything, customer.UserID).Return(customer, nil)
	m.orderRepo.On("GenerateOrderNumber", mock.Anything).Return("MB-2026-00004", nil)
	m.shopRepo.On("FindByIDs", mock.Anything, []uuid.UUID{s.ID}).Return([]shop.Shop{*s}, nil)
	m.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)
	m.orderRepo.On("Delete", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil)
	m.gateway.On("CreatePayment", mock.Anything, mock.Anything).Return(nil, shared.ErrPaymentGateway)

	_, err := svc.CreateOrder(context.Background(), CreateOrderInput{
		CustomerUserID: customer.UserID,
		Items: []CreateOrderItemInput{
			{ShopID: s.ID, ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("9.99")},
		},
	})
	assert.ErrorIs(t, err, shared.ErrPaymentGateway)
	m.orderRepo.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListMyOrdersUsesFilteredCount(t *testing.T) {
	svc, m := newTestOrderService()

	customer := newTestCustomer(t)
	s := newTestShop(t, uuid.New())
	o := newTestOrder(t, customer.ID, s.ID)

	filter := shared.DefaultFilter()
	filter.Filters["pending"] = true

	m.customerRepo.On("FindByUserID", mock.Anything, customer.UserID).Return(customer, nil)
	m.orderRepo.On("FindByCustomer", mock.Anything, customer.ID, filter).Return([]order.Order{*o}, nil)
	m.orderRepo.On("CountByCustomer", mock.Anything, customer.ID, filter).Return(int64(1), nil)

	result, err := svc.ListMyOrders(context.Background(), customer.UserID, filter)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, o.ID, result.Items[0].ID)

	// The count call carries the same scope and filter as the listing
	m.orderRepo.AssertCalled(t, "CountByCustomer", mock.Anything, customer.ID, filter)
}

func TestGetOrderScopes(t *testing.T) {
	svc, m := newTestOrderService()

	owner := newTestCustomer(t)
	vendorID := uuid.New()
	s := newTestShop(t, vendorID)
	o := newTestOrder(t, owner.ID, s.ID)

	m.orderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	m.customerRepo.On("FindByUserID", mock.Anything, owner.UserID).Return(owner, nil)

	// Owner sees the order
	info, err := svc.GetOrder(context.Background(), GetOrderInput{
		OrderID: o.ID,
		UserID:  owner.UserID,
		Role:    "customer",
	})
	require.NoError(t, err)
	assert.Equal(t, o.ID, info.ID)

	// A different customer is rejected
	other := newTestCustomer(t)
	m.customerRepo.On("FindByUserID", mock.Anything, other.UserID).Return(other, nil)
	_, err = svc.GetOrder(context.Background(), GetOrderInput{
		OrderID: o.ID,
		UserID:  other.UserID,
		Role:    "customer",
	})
	assert.ErrorIs(t, err, shared.ErrForbidden)

	// Admin sees everything
	_, err = svc.GetOrder(context.Background(), GetOrderInput{
		OrderID: o.ID,
		UserID:  uuid.New(),
		Role:    "admin",
	})
	assert.NoError(t, err)
}

func TestGetOrderVendorScope(t *testing.T) {
	svc, m := newTestOrderService()

	vendor, err := partner.NewVendor(uuid.New(), "seller@example.com", "Seller One")
	require.NoError(t, err)
	s := newTestShop(t, vendor.ID)
	o := newTestOrder(t, uuid.New(), s.ID)

	m.orderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	m.vendorRepo.On("FindByUserID", mock.Anything, vendor.UserID).Return(vendor, nil)
	m.shopRepo.On("FindByIDs", mock.Anything, []uuid.UUID{s.ID}).Return([]shop.Shop{*s}, nil)

	info, err := svc.GetOrder(context.Background(), GetOrderInput{
		OrderID: o.ID,
		UserID:  vendor.UserID,
		Role:    "vendor",
	})
	require.NoError(t, err)
	assert.Equal(t, o.ID, info.ID)

	// A vendor with no shop in the order is rejected
	stranger, err := partner.NewVendor(uuid.New(), "other@example.com", "Other Seller")
	require.NoError(t, err)
	m.vendorRepo.On("FindByUserID", mock.Anything, stranger.UserID).Return(stranger, nil)

	_, err = svc.GetOrder(context.Background(), GetOrderInput{
		OrderID: o.ID,
		UserID:  stranger.UserID,
		Role:    "vendor",
	})
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestAdvanceOrder(t *testing.T) {
	svc, m := newTestOrderService()

	s := newTestShop(t, uuid.New())
	o := newTestOrder(t, uuid.New(), s.ID)

	m.orderRepo.On("FindByID", mock.Anything, o.ID).Return(o, nil)
	m.orderRepo.On("SaveWithLock", mock.Anything, o).Return(nil)

	info, err := svc.AdvanceOrder(context.Background(), AdvanceOrderInput{
		OrderID: o.ID,
		UserID:  uuid.New(),
		Role:    "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, order.StatusOngoing.String(), info.Status)

	info, err = svc.AdvanceOrder(context.Background(), AdvanceOrderInput{
		OrderID: o.ID,
		UserID:  uuid.New(),
		Role:    "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered.String(), info.Status)
	assert.NotNil(t, info.DeliveredAt)

	// Delivered is terminal; advancing again is a no-op
	info, err = svc.AdvanceOrder(context.Background(), AdvanceOrderInput{
		OrderID: o.ID,
		UserID:  uuid.New(),
		Role:    "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered.String(), info.Status)
	m.orderRepo.AssertNumberOfCalls(t, "SaveWithLock", 2)
}

func TestAdvanceOrderCustomerForbidden(t *testing.T) {
	svc, _ := newTestOrderService()

	_, err := svc.AdvanceOrder(context.Background(), AdvanceOrderInput{
		OrderID: uuid.New(),
		UserID:  uuid.New(),
		Role:    "customer",
	})
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestHandlePaymentCallback(t *testing.T) {
	svc, m := newTestOrderService()

	s := newTestShop(t, uuid.New())
	o := newTestOrder(t, uuid.New(), s.ID)

	m.orderRepo.On("FindByTransactionRef", mock.Anything, o.TransactionRef).Return(o, nil)
	m.orderRepo.On("SaveWithLock", mock.Anything, o).Return(nil)

	info, err := svc.HandlePaymentCallback(context.Background(), &order.CallbackResult{
		TransactionRef: o.TransactionRef,
		Succeeded:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, order.PaymentStatusPaid.String(), info.PaymentStatus)

	// A repeated success notification does not persist again
	_, err = svc.HandlePaymentCallback(context.Background(), &order.CallbackResult{
		TransactionRef: o.TransactionRef,
		Succeeded:      true,
	})
	require.NoError(t, err)
	m.orderRepo.AssertNumberOfCalls(t, "SaveWithLock", 1)
}

func TestHandlePaymentCallbackFailure(t *testing.T) {
	svc, m := newTestOrderService()

	s := newTestShop(t, uuid.New())
	o := newTestOrder(t, uuid.New(), s.ID)

	m.orderRepo.On("FindByTransactionRef", mock.Anything, o.TransactionRef).Return(o, nil)
	m.orderRepo.On("SaveWithLock", mock.Anything, o).Return(nil)

	info, err := svc.HandlePaymentCallback(context.Background(), &order.CallbackResult{
		TransactionRef: o.TransactionRef,
		Succeeded:      false,
		FailureReason:  "insufficient funds",
	})
	require.NoError(t, err)
	assert.Equal(t, order.PaymentStatusFailed.String(), info.PaymentStatus)
}

func TestHandlePaymentCallbackUnknownRef(t *testing.T) {
	svc, m := newTestOrderService()

	m.orderRepo.On("FindByTransactionRef", mock.Anything, "TXN-missing").Return(nil, shared.ErrNotFound)

	_, err := svc.HandlePaymentCallback(context.Background(), &order.CallbackResult{
		TransactionRef: "TXN-missing",
		Succeeded:      true,
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
