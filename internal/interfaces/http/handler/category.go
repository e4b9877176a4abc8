package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marketbay/backend/internal/application/catalog"
	domainidentity "github.com/marketbay/backend/internal/domain/identity"
	"github.com/marketbay/backend/internal/interfaces/http/dto"
	"github.com/marketbay/backend/internal/interfaces/http/middleware"
)

// CategoryHandler handles category management requests
type CategoryHandler struct {
	BaseHandler
	categoryService *catalog.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *catalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategoryRequest is the request body for category creation
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// UpdateCategoryRequest is the request body for category updates
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// CategoryResponse is the wire representation of a category
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newCategoryResponse(c catalog.CategoryInfo) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// RegisterRoutes registers category routes. Reads are open to any
// authenticated user; writes are admin only.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:id", h.Get)
		categories.GET("/slug/:slug", h.GetBySlug)
	}

	adminOnly := middleware.RequireAnyRole(domainidentity.RoleAdmin.String())
	categories.POST("", adminOnly, h.Create)
	categories.PUT("/:id", adminOnly, h.Update)
	categories.DELETE("/:id", adminOnly, h.Delete)
}

// Create godoc
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body CreateCategoryRequest true "Category data"
// @Success      201 {object} dto.Response{data=CategoryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.categoryService.CreateCategory(c.Request.Context(), catalog.CreateCategoryInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newCategoryResponse(*info))
}

// Update godoc
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID"
// @Param        request body UpdateCategoryRequest true "Category updates"
// @Success      200 {object} dto.Response{data=CategoryResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	var uriReq dto.IDRequest
	if err := c.ShouldBindUri(&uriReq); err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	info, err := h.categoryService.UpdateCategory(c.Request.Context(), catalog.UpdateCategoryInput{
		ID:          uuid.MustParse(uriReq.ID),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCategoryResponse(*info))
}

// Get godoc
// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200 {object} dto.Response{data=CategoryResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	info, err := h.categoryService.GetCategory(c.Request.Context(), uuid.MustParse(req.ID))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCategoryResponse(*info))
}

// GetBySlug godoc
// @Summary      Get category by slug
// @Tags         categories
// @Produce      json
// @Param        slug path string true "Category slug"
// @Success      200 {object} dto.Response{data=CategoryResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /categories/slug/{slug} [get]
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		h.BadRequest(c, "Missing category slug")
		return
	}

	info, err := h.categoryService.GetCategoryBySlug(c.Request.Context(), slug)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCategoryResponse(*info))
}

// List godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]CategoryResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := req.ToFilter()
	if active := c.Query("is_active"); active != "" {
		filter.Filters["is_active"] = active
	}

	result, err := h.categoryService.ListCategories(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	categories := make([]CategoryResponse, len(result.Items))
	for i, info := range result.Items {
		categories[i] = newCategoryResponse(info)
	}
	h.SuccessWithMeta(c, categories, result.Total, result.Page, result.PageSize)
}

// Delete godoc
// @Summary      Delete category
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      204
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), uuid.MustParse(req.ID)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
