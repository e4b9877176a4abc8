package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness and database connectivity
type HealthHandler struct {
	BaseHandler
	db      *gorm.DB
	started time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db:      db,
		started: time.Now(),
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      503 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status := gin.H{
		"status": "ok",
		"uptime": time.Since(h.started).String(),
	}

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"data":    status,
			})
			return
		}
		status["database"] = "ok"
	}

	h.Success(c, status)
}
