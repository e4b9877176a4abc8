package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketbay/backend/internal/application/identity"
	domainidentity "github.com/marketbay/backend/internal/domain/identity"
	"github.com/marketbay/backend/internal/interfaces/http/dto"
	"github.com/marketbay/backend/internal/interfaces/http/middleware"
)

// UserHandler handles admin-facing account management requests
type UserHandler struct {
	BaseHandler
	userService *identity.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *identity.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ResetPasswordRequest is the request body for an admin password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// RegisterRoutes registers user management routes (admin only)
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/admin/users", middleware.RequireAnyRole(domainidentity.RoleAdmin.String()))
	{
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.POST("/:id/disable", h.Disable)
		users.POST("/:id/enable", h.Enable)
		users.POST("/:id/reset-password", h.ResetPassword)
	}
}

// List godoc
// @Summary      List accounts
// @Description  Paginated account listing for administrators
// @Tags         users
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]UserResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := req.ToFilter()
	if role := c.Query("role"); role != "" {
		filter.Filters["role"] = role
	}
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	result, err := h.userService.ListUsers(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	users := make([]UserResponse, len(result.Items))
	for i, u := range result.Items {
		users[i] = newUserResponse(u)
	}
	h.SuccessWithMeta(c, users, result.Total, result.Page, result.PageSize)
}

// Get godoc
// @Summary      Get account
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response{data=UserResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	info, err := h.userService.GetUser(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newUserResponse(*info))
}

// Disable godoc
// @Summary      Disable account
// @Description  Deactivate an account; admins cannot disable themselves
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/users/{id}/disable [post]
func (h *UserHandler) Disable(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	adminID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.userService.DisableUser(c.Request.Context(), adminID, uuid.MustParse(req.ID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "User disabled"})
}

// Enable godoc
// @Summary      Enable account
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/users/{id}/enable [post]
func (h *UserHandler) Enable(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	adminID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.userService.EnableUser(c.Request.Context(), adminID, uuid.MustParse(req.ID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "User enabled"})
}

// ResetPassword godoc
// @Summary      Reset account password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body ResetPasswordRequest true "New password"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/users/{id}/reset-password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var uriReq dto.IDRequest
	if err := c.ShouldBindUri(&uriReq); err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), identity.ResetPasswordInput{
		UserID:      uuid.MustParse(uriReq.ID),
		NewPassword: req.NewPassword,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password reset"})
}
