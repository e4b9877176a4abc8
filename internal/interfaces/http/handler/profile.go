package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketbay/backend/internal/application/partner"
	domainidentity "github.com/marketbay/backend/internal/domain/identity"
	"github.com/marketbay/backend/internal/interfaces/http/dto"
	"github.com/marketbay/backend/internal/interfaces/http/middleware"
)

// ProfileHandler handles customer and vendor profile requests
type ProfileHandler struct {
	BaseHandler
	customerService *partner.CustomerService
	vendorService   *partner.VendorService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(customerService *partner.CustomerService, vendorService *partner.VendorService) *ProfileHandler {
	return &ProfileHandler{
		customerService: customerService,
		vendorService:   vendorService,
	}
}

// UpdateCustomerProfileRequest is the request body for customer profile updates
type UpdateCustomerProfileRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone           *string `json:"phone" binding:"omitempty,max=32"`
	ShippingAddress *string `json:"shipping_address" binding:"omitempty,max=500"`
}

// UpdateVendorProfileRequest is the request body for vendor profile updates
type UpdateVendorProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=32"`
}

// CustomerResponse is the wire representation of a customer profile
type CustomerResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	ShippingAddress string    `json:"shipping_address"`
	CreatedAt       time.Time `json:"created_at"`
}

// VendorResponse is the wire representation of a vendor profile
type VendorResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func newCustomerResponse(ci partner.CustomerInfo) CustomerResponse {
	return CustomerResponse{
		ID:              ci.ID,
		UserID:          ci.UserID,
		Email:           ci.Email,
		Name:            ci.Name,
		Phone:           ci.Phone,
		ShippingAddress: ci.ShippingAddress,
		CreatedAt:       ci.CreatedAt,
	}
}

func newVendorResponse(vi partner.VendorInfo) VendorResponse {
	return VendorResponse{
		ID:        vi.ID,
		UserID:    vi.UserID,
		Email:     vi.Email,
		Name:      vi.Name,
		Phone:     vi.Phone,
		CreatedAt: vi.CreatedAt,
	}
}

// RegisterRoutes registers profile routes. Customers and vendors manage
// their own profile; cross-profile listing is admin only.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customerOnly := middleware.RequireAnyRole(domainidentity.RoleCustomer.String())
	vendorOnly := middleware.RequireAnyRole(domainidentity.RoleVendor.String())
	adminOnly := middleware.RequireAnyRole(domainidentity.RoleAdmin.String())

	customers := rg.Group("/customers")
	{
		customers.GET("/me", customerOnly, h.GetCustomerProfile)
		customers.PUT("/me", customerOnly, h.UpdateCustomerProfile)
	}

	vendors := rg.Group("/vendors")
	{
		vendors.GET("/me", vendorOnly, h.GetVendorProfile)
		vendors.PUT("/me", vendorOnly, h.UpdateVendorProfile)
	}

	admin := rg.Group("/admin", adminOnly)
	{
		admin.GET("/customers", h.ListCustomers)
		admin.GET("/customers/:id", h.GetCustomer)
		admin.GET("/vendors", h.ListVendors)
		admin.GET("/vendors/:id", h.GetVendor)
	}
}

// GetCustomerProfile godoc
// @Summary      Get own customer profile
// @Tags         profiles
// @Produce      json
// @Success      200 {object} dto.Response{data=CustomerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers/me [get]
func (h *ProfileHandler) GetCustomerProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.customerService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCustomerResponse(*info))
}

// UpdateCustomerProfile godoc
// @Summary      Update own customer profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body UpdateCustomerProfileRequest true "Profile updates"
// @Success      200 {object} dto.Response{data=CustomerResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers/me [put]
func (h *ProfileHandler) UpdateCustomerProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateCustomerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.customerService.UpdateProfile(c.Request.Context(), partner.UpdateCustomerInput{
		UserID:          userID,
		Name:            req.Name,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCustomerResponse(*info))
}

// GetVendorProfile godoc
// @Summary      Get own vendor profile
// @Tags         profiles
// @Produce      json
// @Success      200 {object} dto.Response{data=VendorResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /vendors/me [get]
func (h *ProfileHandler) GetVendorProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	info, err := h.vendorService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newVendorResponse(*info))
}

// UpdateVendorProfile godoc
// @Summary      Update own vendor profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body UpdateVendorProfileRequest true "Profile updates"
// @Success      200 {object} dto.Response{data=VendorResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /vendors/me [put]
func (h *ProfileHandler) UpdateVendorProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateVendorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.vendorService.UpdateProfile(c.Request.Context(), partner.UpdateVendorInput{
		UserID: userID,
		Name:   req.Name,
		Phone:  req.Phone,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newVendorResponse(*info))
}

// ListCustomers godoc
// @Summary      List customers
// @Tags         profiles
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]CustomerResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /admin/customers [get]
func (h *ProfileHandler) ListCustomers(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	customers := make([]CustomerResponse, len(result.Items))
	for i, info := range result.Items {
		customers[i] = newCustomerResponse(info)
	}
	h.SuccessWithMeta(c, customers, result.Total, result.Page, result.PageSize)
}

// GetCustomer godoc
// @Summary      Get customer
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} dto.Response{data=CustomerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/customers/{id} [get]
func (h *ProfileHandler) GetCustomer(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	info, err := h.customerService.GetCustomer(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCustomerResponse(*info))
}

// ListVendors godoc
// @Summary      List vendors
// @Tags         profiles
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]VendorResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /admin/vendors [get]
func (h *ProfileHandler) ListVendors(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.vendorService.ListVendors(c.Request.Context(), req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	vendors := make([]VendorResponse, len(result.Items))
	for i, info := range result.Items {
		vendors[i] = newVendorResponse(info)
	}
	h.SuccessWithMeta(c, vendors, result.Total, result.Page, result.PageSize)
}

// GetVendor godoc
// @Summary      Get vendor
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Vendor ID"
// @Success      200 {object} dto.Response{data=VendorResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/vendors/{id} [get]
func (h *ProfileHandler) GetVendor(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	info, err := h.vendorService.GetVendor(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newVendorResponse(*info))
}
