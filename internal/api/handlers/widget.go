package handlers

import (
	"net/http"

	"espresso-backend/internal/logger"
	"espresso-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WidgetHandler handles HTTP requests for widgets
type WidgetHandler struct {
	service service.WidgetServiceInterface
}

// NewWidgetHandler creates a new widget handler
func NewWidgetHandler(service service.WidgetServiceInterface) *WidgetHandler {
	return &WidgetHandler{service: service}
}

// WidgetIDResponse carries a resolved widget id
type WidgetIDResponse struct {
	WidgetID string `json:"widget_id"`
}

// CreateWidget handles POST /espresso/widget
// @Summary Create a widget
// @Description Create a widget under an existing company. The name is unique within the company.
// @Tags espresso
// @Accept json
// @Produce json
// @Param widget body service.CreateWidgetRequest true "Widget data"
// @Success 200 {object} service.CreateWidgetResponse "Generated widget id"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 422 {object} ErrorResponse "Widget name already exists"
// @Failure 500 {object} ErrorResponse "Error creating widget"
// @Security BearerAuth
// @Router /espresso/widget [post]
func (h *WidgetHandler) CreateWidget(c *gin.Context) {
	var req service.CreateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, logger.LabelStoreOperations, "Error creating widget")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetWidgetID handles GET /espresso/widget-id/:widget_name
// @Summary Resolve a widget name
// @Tags espresso
// @Produce json
// @Param widget_name path string true "Widget name"
// @Param company_id query string true "Company id"
// @Success 200 {object} WidgetIDResponse "Widget id"
// @Failure 404 {object} ErrorResponse "Company or widget not found"
// @Failure 500 {object} ErrorResponse "Error getting widget"
// @Router /espresso/widget-id/{widget_name} [get]
func (h *WidgetHandler) GetWidgetID(c *gin.Context) {
	id, err := h.service.GetIDByName(c.Request.Context(), c.Query("company_id"), c.Param("widget_name"))
	if err != nil {
		respondError(c, err, logger.LabelStoreOperations, "Error getting widget")
		return
	}

	c.JSON(http.StatusOK, WidgetIDResponse{WidgetID: id})
}
