package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/domain/identity"
	"github.com/marketbay/backend/internal/domain/order"
	"github.com/marketbay/backend/internal/domain/partner"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/domain/shared/valueobject"
	"github.com/marketbay/backend/internal/domain/shop"
)

// OrderService handles order placement, listing and fulfilment.
// Creation validates the customer and the shops, persists the order,
// and opens a payment session with the gateway.
type OrderService struct {
	orderRepo    order.OrderRepository
	customerRepo partner.CustomerRepository
	vendorRepo   partner.VendorRepository
	shopRepo     shop.ShopRepository
	gateway      order.PaymentGateway
	logger       *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo order.OrderRepository,
	customerRepo partner.CustomerRepository,
	vendorRepo partner.VendorRepository,
	shopRepo shop.ShopRepository,
	gateway order.PaymentGateway,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		vendorRepo:   vendorRepo,
		shopRepo:     shopRepo,
		gateway:      gateway,
		logger:       logger,
	}
}

// CreateOrder places a new order and opens a payment session.
// The order is rolled back if the gateway refuses the session, so a
// returned order always carries a usable redirect URL.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error) {
	if len(input.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}

	customer, err := s.customerRepo.FindByUserID(ctx, input.CustomerUserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CUSTOMER_NOT_FOUND", "Customer profile does not exist")
		}
		return nil, err
	}

	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(orderNumber, customer.ID, input.CouponID, valueobject.NewMoneyUSD(input.Discount))
	if err != nil {
		return nil, err
	}
	for _, item := range input.Items {
		if _, err := newOrder.AddItem(item.ShopID, item.ProductID, item.Size, item.Quantity,
			valueobject.NewMoneyUSD(item.UnitPrice), item.Discount); err != nil {
			return nil, err
		}
	}

	if err := s.validateShops(ctx, newOrder); err != nil {
		return nil, err
	}

	// The repository re-checks the blacklist inside the insert
	// transaction, closing the window between validation and persistence
	if err := s.orderRepo.Create(ctx, newOrder); err != nil {
		return nil, err
	}

	session, err := s.gateway.CreatePayment(ctx, &order.PaymentRequest{
		OrderID:        newOrder.ID,
		OrderNumber:    newOrder.OrderNumber,
		TransactionRef: newOrder.TransactionRef,
		Amount:         newOrder.GetSubtotalMoney(),
		CustomerEmail:  customer.Email,
		Description:    fmt.Sprintf("Order %s", newOrder.OrderNumber),
	})
	if err != nil {
		// No redirect URL means the customer cannot pay; undo the order
		if delErr := s.orderRepo.Delete(ctx, newOrder.ID); delErr != nil {
			s.logger.Error("failed to roll back order after gateway failure",
				zap.String("order_id", newOrder.ID.String()),
				zap.Error(delErr))
		}
		s.logger.Warn("payment gateway rejected checkout request",
			zap.String("order_number", newOrder.OrderNumber),
			zap.Error(err))
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, shared.ErrPaymentGateway
	}

	s.logger.Info("order created",
		zap.String("order_id", newOrder.ID.String()),
		zap.String("order_number", newOrder.OrderNumber),
		zap.String("transaction_ref", newOrder.TransactionRef))

	return &CreateOrderResult{
		Order:       NewOrderInfo(newOrder),
		RedirectURL: session.RedirectURL,
	}, nil
}

// validateShops checks that every referenced shop exists and none are
// blacklisted. Blacklist errors name the offending shop.
func (s *OrderService) validateShops(ctx context.Context, o *order.Order) error {
	shopIDs := o.ShopIDs()
	shops, err := s.shopRepo.FindByIDs(ctx, shopIDs)
	if err != nil {
		return err
	}

	byID := make(map[uuid.UUID]*shop.Shop, len(shops))
	for i := range shops {
		byID[shops[i].ID] = &shops[i]
	}

	for _, id := range shopIDs {
		found, ok := byID[id]
		if !ok {
			return shared.NewDomainError("SHOP_NOT_FOUND", fmt.Sprintf("Shop %s does not exist", id))
		}
		if found.IsBlacklisted() {
			return shared.NewDomainError("SHOP_BLACKLISTED", fmt.Sprintf("Shop %q is blacklisted and cannot receive orders", found.Name))
		}
	}

	return nil
}

// ListMyOrders returns the calling customer's orders. The pagination
// count covers only the customer's rows matching the filter.
func (s *OrderService) ListMyOrders(ctx context.Context, customerUserID uuid.UUID, filter shared.Filter) (*shared.Paginated[OrderInfo], error) {
	customer, err := s.customerRepo.FindByUserID(ctx, customerUserID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByCustomer(ctx, customer.ID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.CountByCustomer(ctx, customer.ID, filter)
	if err != nil {
		return nil, err
	}

	return s.paginate(orders, total, filter), nil
}

// ListVendorOrders returns orders containing items from the calling
// vendor's shops
func (s *OrderService) ListVendorOrders(ctx context.Context, vendorUserID uuid.UUID, filter shared.Filter) (*shared.Paginated[OrderInfo], error) {
	vendor, err := s.vendorRepo.FindByUserID(ctx, vendorUserID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByVendor(ctx, vendor.ID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.CountByVendor(ctx, vendor.ID, filter)
	if err != nil {
		return nil, err
	}

	return s.paginate(orders, total, filter), nil
}

// ListAllOrders returns orders across all customers (admin scope)
func (s *OrderService) ListAllOrders(ctx context.Context, filter shared.Filter) (*shared.Paginated[OrderInfo], error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.paginate(orders, total, filter), nil
}

// GetOrder returns a single order, enforcing the caller's scope:
// customers see their own orders, vendors see orders touching their
// shops, admins see everything.
func (s *OrderService) GetOrder(ctx context.Context, input GetOrderInput) (*OrderInfo, error) {
	found, err := s.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, found, input.UserID, input.Role); err != nil {
		return nil, err
	}

	info := NewOrderInfo(found)
	return &info, nil
}

// AdvanceOrder moves an order one step forward in its fulfilment.
// Vendors may advance orders touching their shops; admins any order.
func (s *OrderService) AdvanceOrder(ctx context.Context, input AdvanceOrderInput) (*OrderInfo, error) {
	if input.Role != identity.RoleAdmin.String() && input.Role != identity.RoleVendor.String() {
		return nil, shared.ErrForbidden
	}

	found, err := s.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, found, input.UserID, input.Role); err != nil {
		return nil, err
	}

	wasDelivered := found.IsDelivered()
	next, err := found.Advance()
	if err != nil {
		return nil, err
	}

	// Advancing a delivered order is a no-op; nothing to persist
	if !wasDelivered {
		if err := s.orderRepo.SaveWithLock(ctx, found); err != nil {
			return nil, err
		}

		s.logger.Info("order advanced",
			zap.String("order_id", found.ID.String()),
			zap.String("status", next.String()))
	}

	info := NewOrderInfo(found)
	return &info, nil
}

// HandlePaymentCallback applies a gateway notification to the matching
// order. Repeated notifications for the same outcome are no-ops.
func (s *OrderService) HandlePaymentCallback(ctx context.Context, result *order.CallbackResult) (*OrderInfo, error) {
	found, err := s.orderRepo.FindByTransactionRef(ctx, result.TransactionRef)
	if err != nil {
		return nil, err
	}

	before := found.PaymentStatus
	if result.Succeeded {
		err = found.MarkPaid()
	} else {
		err = found.MarkPaymentFailed()
	}
	if err != nil {
		return nil, err
	}

	if found.PaymentStatus != before {
		if err := s.orderRepo.SaveWithLock(ctx, found); err != nil {
			return nil, err
		}

		s.logger.Info("payment callback applied",
			zap.String("order_id", found.ID.String()),
			zap.String("transaction_ref", result.TransactionRef),
			zap.String("payment_status", found.PaymentStatus.String()),
			zap.String("failure_reason", result.FailureReason))
	}

	info := NewOrderInfo(found)
	return &info, nil
}

// authorize checks the caller's scope over the order
func (s *OrderService) authorize(ctx context.Context, o *order.Order, userID uuid.UUID, role string) error {
	switch role {
	case identity.RoleAdmin.String():
		return nil
	case identity.RoleCustomer.String():
		customer, err := s.customerRepo.FindByUserID(ctx, userID)
		if err != nil {
			return shared.ErrForbidden
		}
		if o.CustomerID != customer.ID {
			return shared.ErrForbidden
		}
		return nil
	case identity.RoleVendor.String():
		vendor, err := s.vendorRepo.FindByUserID(ctx, userID)
		if err != nil {
			return shared.ErrForbidden
		}
		shops, err := s.shopRepo.FindByIDs(ctx, o.ShopIDs())
		if err != nil {
			return err
		}
		for i := range shops {
			if shops[i].IsOwnedBy(vendor.ID) {
				return nil
			}
		}
		return shared.ErrForbidden
	}
	return shared.ErrForbidden
}

func (s *OrderService) paginate(orders []order.Order, total int64, filter shared.Filter) *shared.Paginated[OrderInfo] {
	infos := make([]OrderInfo, len(orders))
	for i := range orders {
		infos[i] = NewOrderInfo(&orders[i])
	}
	result := shared.NewPaginated(infos, total, filter.Page, filter.PageSize)
	return &result
}
