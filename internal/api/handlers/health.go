package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"espresso-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health answers as long as the process serves requests
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse "OK"
// @Router /healthcheck [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "OK"})
}

// Ready reports whether the document store answers
// @Summary Readiness check
// @Description Check if the application can reach the document store
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse "Application is ready"
// @Failure 503 {object} ReadyResponse "Application is not ready"
// @Router /healthcheck/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	response := ReadyResponse{
		Ready:     true,
		Timestamp: time.Now(),
		Services:  make(map[string]string),
	}

	if err := h.ping(c.Request.Context()); err != nil {
		logger.WithContext(c).WithLabel(logger.LabelDatabaseConnection).WithError(err).Warn("Store not ready")
		response.Ready = false
		response.Services["database"] = "not ready: " + err.Error()
	} else {
		response.Services["database"] = "ready"
	}

	statusCode := http.StatusOK
	if !response.Ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

var errStoreNotConfigured = errors.New("store is not configured")

func (h *HealthHandler) ping(ctx context.Context) error {
	if h.db == nil {
		return errStoreNotConfigured
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
