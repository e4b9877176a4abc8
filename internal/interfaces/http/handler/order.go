package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketbay/backend/internal/application/order"
	domainidentity "github.com/marketbay/backend/internal/domain/identity"
	"github.com/marketbay/backend/internal/domain/shared"
	"github.com/marketbay/backend/internal/interfaces/http/dto"
	"github.com/marketbay/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles order placement, listing and fulfilment requests
type OrderHandler struct {
	BaseHandler
	orderService *order.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CreateOrderItemRequest is one line item of a new order
type CreateOrderItemRequest struct {
	ShopID    string          `json:"shop_id" binding:"required,uuid"`
	ProductID string          `json:"product_id" binding:"required,uuid"`
	Size      string          `json:"size" binding:"omitempty,max=20"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
	Discount  decimal.Decimal `json:"discount"`
}

// CreateOrderRequest is the request body for order creation
type CreateOrderRequest struct {
	CouponID *string                  `json:"coupon_id" binding:"omitempty,uuid"`
	Discount decimal.Decimal          `json:"discount"`
	Items    []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderItemResponse is the wire representation of an order line item
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ShopID    uuid.UUID       `json:"shop_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Size      string          `json:"size,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
}

// OrderResponse is the wire representation of an order
type OrderResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrderNumber    string              `json:"order_number"`
	CustomerID     uuid.UUID           `json:"customer_id"`
	CouponID       *uuid.UUID          `json:"coupon_id,omitempty"`
	Items          []OrderItemResponse `json:"items"`
	Subtotal       decimal.Decimal     `json:"subtotal"`
	Discount       decimal.Decimal     `json:"discount"`
	Total          decimal.Decimal     `json:"total"`
	TransactionRef string              `json:"transaction_ref"`
	PaymentStatus  string              `json:"payment_status"`
	Status         string              `json:"status"`
	DeliveredAt    *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

// CreateOrderResponse carries the created order and the payment redirect
type CreateOrderResponse struct {
	Order       OrderResponse `json:"order"`
	RedirectURL string        `json:"redirect_url"`
}

func newOrderResponse(oi order.OrderInfo) OrderResponse {
	items := make([]OrderItemResponse, len(oi.Items))
	for i, item := range oi.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ShopID:    item.ShopID,
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
		}
	}
	return OrderResponse{
		ID:             oi.ID,
		OrderNumber:    oi.OrderNumber,
		CustomerID:     oi.CustomerID,
		CouponID:       oi.CouponID,
		Items:          items,
		Subtotal:       oi.Subtotal,
		Discount:       oi.Discount,
		Total:          oi.Total,
		TransactionRef: oi.TransactionRef,
		PaymentStatus:  oi.PaymentStatus,
		Status:         oi.Status,
		DeliveredAt:    oi.DeliveredAt,
		CreatedAt:      oi.CreatedAt,
	}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customerOnly := middleware.RequireAnyRole(domainidentity.RoleCustomer.String())
	vendorOrAdmin := middleware.RequireAnyRole(
		domainidentity.RoleVendor.String(),
		domainidentity.RoleAdmin.String(),
	)
	adminOnly := middleware.RequireAnyRole(domainidentity.RoleAdmin.String())

	orders := rg.Group("/orders")
	{
		orders.POST("", customerOnly, h.Create)
		orders.GET("/my", customerOnly, h.ListMine)
		orders.GET("/vendor", middleware.RequireAnyRole(domainidentity.RoleVendor.String()), h.ListVendor)
		orders.GET("/:id", h.Get)
		orders.POST("/:id/advance", vendorOrAdmin, h.Advance)
	}

	rg.GET("/admin/orders", adminOnly, h.ListAll)
}

// orderFilter builds a repository filter from the list request and the
// order-specific query parameters
func orderFilter(c *gin.Context, req dto.ListRequest) shared.Filter {
	filter := req.ToFilter()
	if pending := c.Query("pending"); pending != "" {
		filter.Filters["pending"] = pending == "true"
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		filter.Filters["payment_status"] = paymentStatus
	}
	if orderNumber := c.Query("order_number"); orderNumber != "" {
		filter.Filters["order_number"] = orderNumber
	}
	return filter
}

// Create godoc
// @Summary      Place order
// @Description  Create an order and open a payment session; the response carries the gateway redirect URL
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request body CreateOrderRequest true "Order data"
// @Success      201 {object} dto.Response{data=CreateOrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      502 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	input := order.CreateOrderInput{
		CustomerUserID: userID,
		Discount:       req.Discount,
		Items:          make([]order.CreateOrderItemInput, len(req.Items)),
	}
	if req.CouponID != nil {
		couponID := uuid.MustParse(*req.CouponID)
		input.CouponID = &couponID
	}
	for i, item := range req.Items {
		input.Items[i] = order.CreateOrderItemInput{
			ShopID:    uuid.MustParse(item.ShopID),
			ProductID: uuid.MustParse(item.ProductID),
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Discount:  item.Discount,
		}
	}

	result, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, CreateOrderResponse{
		Order:       newOrderResponse(result.Order),
		RedirectURL: result.RedirectURL,
	})
}

// ListMine godoc
// @Summary      List own orders
// @Description  List the calling customer's orders; pending=true keeps only undelivered orders
// @Tags         orders
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        pending query bool false "Only undelivered orders"
// @Param        status query string false "Filter by status"
// @Param        payment_status query string false "Filter by payment status"
// @Success      200 {object} dto.Response{data=[]OrderResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /orders/my [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.orderService.ListMyOrders(c.Request.Context(), userID, orderFilter(c, req))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.respondOrderPage(c, result)
}

// ListVendor godoc
// @Summary      List vendor orders
// @Description  List orders containing items from the calling vendor's shops
// @Tags         orders
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        pending query bool false "Only undelivered orders"
// @Success      200 {object} dto.Response{data=[]OrderResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /orders/vendor [get]
func (h *OrderHandler) ListVendor(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.orderService.ListVendorOrders(c.Request.Context(), userID, orderFilter(c, req))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.respondOrderPage(c, result)
}

// ListAll godoc
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        pending query bool false "Only undelivered orders"
// @Param        customer_id query string false "Filter by customer"
// @Success      200 {object} dto.Response{data=[]OrderResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /admin/orders [get]
func (h *OrderHandler) ListAll(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := orderFilter(c, req)
	if customerID := c.Query("customer_id"); customerID != "" {
		filter.Filters["customer_id"] = customerID
	}

	result, err := h.orderService.ListAllOrders(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.respondOrderPage(c, result)
}

// Get godoc
// @Summary      Get order
// @Description  Customers see their own orders, vendors orders touching their shops, admins everything
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=OrderResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	info, err := h.orderService.GetOrder(c.Request.Context(), order.GetOrderInput{
		OrderID: uuid.MustParse(req.ID),
		UserID:  userID,
		Role:    getRole(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newOrderResponse(*info))
}

// Advance godoc
// @Summary      Advance order
// @Description  Move an order one step forward in fulfilment; advancing a delivered order is a no-op
// @Tags         orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.Response{data=OrderResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /orders/{id}/advance [post]
func (h *OrderHandler) Advance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	info, err := h.orderService.AdvanceOrder(c.Request.Context(), order.AdvanceOrderInput{
		OrderID: uuid.MustParse(req.ID),
		UserID:  userID,
		Role:    getRole(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newOrderResponse(*info))
}

func (h *OrderHandler) respondOrderPage(c *gin.Context, result *shared.Paginated[order.OrderInfo]) {
	orders := make([]OrderResponse, len(result.Items))
	for i, info := range result.Items {
		orders[i] = newOrderResponse(info)
	}
	h.SuccessWithMeta(c, orders, result.Total, result.Page, result.PageSize)
}
