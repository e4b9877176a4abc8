package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marketbay/backend/internal/application/order"
	"github.com/marketbay/backend/internal/infrastructure/payment"
)

// PaymentCallbackHandler handles server-to-server payment notifications
// from the hosted checkout gateway. The endpoint is unauthenticated; the
// gateway identifies the order through the transaction reference.
type PaymentCallbackHandler struct {
	BaseHandler
	orderService *order.OrderService
	adapter      *payment.CheckoutAdapter
	logger       *zap.Logger
}

// NewPaymentCallbackHandler creates a new payment callback handler
func NewPaymentCallbackHandler(orderService *order.OrderService, adapter *payment.CheckoutAdapter, logger *zap.Logger) *PaymentCallbackHandler {
	return &PaymentCallbackHandler{
		orderService: orderService,
		adapter:      adapter,
		logger:       logger,
	}
}

// RegisterRoutes registers the payment callback route
func (h *PaymentCallbackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/callback", h.Callback)
}

// Callback godoc
// @Summary      Payment notification
// @Description  Apply a gateway payment notification to the matching order
// @Tags         payments
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200 {object} dto.Response{data=OrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /payments/callback [post]
func (h *PaymentCallbackHandler) Callback(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.BadRequest(c, "Invalid callback payload")
		return
	}

	result, err := h.adapter.ParseCallback(c.Request.PostForm)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.logger.Info("payment callback received",
		zap.String("transaction_ref", result.TransactionRef),
		zap.Bool("succeeded", result.Succeeded),
		zap.String("ip", c.ClientIP()))

	info, err := h.orderService.HandlePaymentCallback(c.Request.Context(), result)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    newOrderResponse(*info),
	})
}
