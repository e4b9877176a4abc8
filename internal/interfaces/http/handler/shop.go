package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketbay/backend/internal/application/shop"
	domainidentity "github.com/marketbay/backend/internal/domain/identity"
	"github.com/marketbay/backend/internal/interfaces/http/dto"
	"github.com/marketbay/backend/internal/interfaces/http/middleware"
)

// ShopHandler handles shop management requests
type ShopHandler struct {
	BaseHandler
	shopService *shop.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *shop.ShopService) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

// CreateShopRequest is the request body for shop creation
type CreateShopRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// UpdateShopRequest is the request body for shop updates
type UpdateShopRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// BlacklistShopRequest is the request body for blacklisting a shop
type BlacklistShopRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}

// ShopResponse is the wire representation of a shop
type ShopResponse struct {
	ID              uuid.UUID `json:"id"`
	VendorID        uuid.UUID `json:"vendor_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Blacklisted     bool      `json:"blacklisted"`
	BlacklistReason string    `json:"blacklist_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newShopResponse(si shop.ShopInfo) ShopResponse {
	return ShopResponse{
		ID:              si.ID,
		VendorID:        si.VendorID,
		Name:            si.Name,
		Description:     si.Description,
		Blacklisted:     si.Blacklisted,
		BlacklistReason: si.BlacklistReason,
		CreatedAt:       si.CreatedAt,
		UpdatedAt:       si.UpdatedAt,
	}
}

// RegisterRoutes registers shop routes. Vendors manage their own shops;
// blacklisting is an admin operation.
func (h *ShopHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vendorOnly := middleware.RequireAnyRole(domainidentity.RoleVendor.String())
	adminOnly := middleware.RequireAnyRole(domainidentity.RoleAdmin.String())

	shops := rg.Group("/shops")
	{
		shops.POST("", vendorOnly, h.Create)
		shops.GET("", h.Browse)
		shops.GET("/my", vendorOnly, h.ListMine)
		shops.PUT("/:id", vendorOnly, h.Update)
		shops.GET("/:id", h.Get)
	}

	admin := rg.Group("/admin/shops", adminOnly)
	{
		admin.GET("", h.List)
		admin.POST("/:id/blacklist", h.Blacklist)
		admin.POST("/:id/unblacklist", h.Unblacklist)
	}
}

// Create godoc
// @Summary      Create shop
// @Description  Create a new shop owned by the calling vendor
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        request body CreateShopRequest true "Shop data"
// @Success      201 {object} dto.Response{data=ShopResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shops [post]
func (h *ShopHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.shopService.CreateShop(c.Request.Context(), shop.CreateShopInput{
		VendorUserID: userID,
		Name:         req.Name,
		Description:  req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newShopResponse(*info))
}

// Update godoc
// @Summary      Update shop
// @Description  Apply partial updates to a shop the caller owns
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        id path string true "Shop ID"
// @Param        request body UpdateShopRequest true "Shop updates"
// @Success      200 {object} dto.Response{data=ShopResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shops/{id} [put]
func (h *ShopHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var uriReq dto.IDRequest
	if err := c.ShouldBindUri(&uriReq); err != nil {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.shopService.UpdateShop(c.Request.Context(), shop.UpdateShopInput{
		VendorUserID: userID,
		ShopID:       uuid.MustParse(uriReq.ID),
		Name:         req.Name,
		Description:  req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newShopResponse(*info))
}

// Get godoc
// @Summary      Get shop
// @Tags         shops
// @Produce      json
// @Param        id path string true "Shop ID"
// @Success      200 {object} dto.Response{data=ShopResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shops/{id} [get]
func (h *ShopHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	info, err := h.shopService.GetShop(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newShopResponse(*info))
}

// ListMine godoc
// @Summary      List own shops
// @Tags         shops
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]ShopResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /shops/my [get]
func (h *ShopHandler) ListMine(c *gin.Context) {
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

	result, err := h.shopService.ListMyShops(c.Request.Context(), userID, req.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	shops := make([]ShopResponse, len(result.Items))
	for i, info := range result.Items {
		shops[i] = newShopResponse(info)
	}
	h.SuccessWithMeta(c, shops, result.Total, result.Page, result.PageSize)
}

// Browse godoc
// @Summary      Browse shops
// @Description  List shops open for ordering; blacklisted shops are excluded
// @Tags         shops
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        vendor_id query string false "Filter by vendor"
// @Success      200 {object} dto.Response{data=[]ShopResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /shops [get]
func (h *ShopHandler) Browse(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := req.ToFilter()
	// Blacklisted shops never show up in storefront browsing
	filter.Filters["blacklisted"] = false
	if vendorID := c.Query("vendor_id"); vendorID != "" {
		filter.Filters["vendor_id"] = vendorID
	}

	result, err := h.shopService.ListShops(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	shops := make([]ShopResponse, len(result.Items))
	for i, info := range result.Items {
		shops[i] = newShopResponse(info)
	}
	h.SuccessWithMeta(c, shops, result.Total, result.Page, result.PageSize)
}

// List godoc
// @Summary      List all shops
// @Tags         shops
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        blacklisted query bool false "Filter by blacklist flag"
// @Success      200 {object} dto.Response{data=[]ShopResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /admin/shops [get]
func (h *ShopHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := req.ToFilter()
	if blacklisted := c.Query("blacklisted"); blacklisted != "" {
		filter.Filters["blacklisted"] = blacklisted == "true"
	}
	if vendorID := c.Query("vendor_id"); vendorID != "" {
		filter.Filters["vendor_id"] = vendorID
	}

	result, err := h.shopService.ListShops(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	shops := make([]ShopResponse, len(result.Items))
	for i, info := range result.Items {
		shops[i] = newShopResponse(info)
	}
	h.SuccessWithMeta(c, shops, result.Total, result.Page, result.PageSize)
}

// Blacklist godoc
// @Summary      Blacklist shop
// @Description  Mark a shop as blacklisted; new orders reject its items
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        id path string true "Shop ID"
// @Param        request body BlacklistShopRequest true "Blacklist reason"
// @Success      200 {object} dto.Response{data=ShopResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/shops/{id}/blacklist [post]
func (h *ShopHandler) Blacklist(c *gin.Context) {
	var uriReq dto.IDRequest
	if err := c.ShouldBindUri(&uriReq); err != nil {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	var req BlacklistShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.shopService.BlacklistShop(c.Request.Context(), shop.BlacklistShopInput{
		ShopID: uuid.MustParse(uriReq.ID),
		Reason: req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newShopResponse(*info))
}

// Unblacklist godoc
// @Summary      Unblacklist shop
// @Tags         shops
// @Produce      json
// @Param        id path string true "Shop ID"
// @Success      200 {object} dto.Response{data=ShopResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/shops/{id}/unblacklist [post]
func (h *ShopHandler) Unblacklist(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid shop ID")
		return
	}

	info, err := h.shopService.UnblacklistShop(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newShopResponse(*info))
}
