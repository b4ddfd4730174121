package handlers

import (
	"net/http"

	"espresso-backend/internal/logger"
	"espresso-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BranchHandler handles HTTP requests for branches
type BranchHandler struct {
	service service.BranchServiceInterface
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(service service.BranchServiceInterface) *BranchHandler {
	return &BranchHandler{service: service}
}

// BranchEnvelope wraps a single branch
type BranchEnvelope struct {
	Branch *service.BranchResponse `json:"branch"`
}

// BranchIDResponse carries a resolved branch id
type BranchIDResponse struct {
	BranchID string `json:"branch_id"`
}

// CreateBranch handles POST /espresso/branch
// @Summary Create a branch
// @Description Create a branch under a widget. The deployment artifact must exist in the bucket.
// @Tags espresso
// @Accept json
// @Produce json
// @Param branch body service.CreateBranchRequest true "Branch data"
// @Success 200 {object} service.CreateBranchResponse "Generated branch id"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Company or widget not found"
// @Failure 422 {object} ErrorResponse "Deployment artifact not found or branch name already exists"
// @Failure 500 {object} ErrorResponse "Error creating branch"
// @Security BearerAuth
// @Router /espresso/branch [post]
func (h *BranchHandler) CreateBranch(c *gin.Context) {
	var req service.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, logger.LabelStoreOperations, "Error creating branch")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateBranch handles PATCH /espresso/branch/:branch_id
// @Summary Repoint a branch
// @Description Point an existing branch at another deployment artifact
// @Tags espresso
// @Accept json
// @Produce json
// @Param branch_id path string true "Branch id"
// @Param branch body service.UpdateBranchRequest true "New artifact and ancestors"
// @Success 200 {object} MessageResponse "Branch updated successfully"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Company, widget or branch not found"
// @Failure 422 {object} ErrorResponse "Deployment artifact not found"
// @Failure 500 {object} ErrorResponse "Error updating branch"
// @Security BearerAuth
// @Router /espresso/branch/{branch_id} [patch]
func (h *BranchHandler) UpdateBranch(c *gin.Context) {
	var req service.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("branch_id"), &req); err != nil {
		respondError(c, err, logger.LabelStoreOperations, "Error updating branch")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Branch updated successfully"})
}

// GetBranch handles GET /espresso/branch/:branch_id
// @Summary Get a branch
// @Tags espresso
// @Produce json
// @Param branch_id path string true "Branch id"
// @Param company_id query string true "Company id"
// @Param widget_id query string true "Widget id"
// @Success 200 {object} BranchEnvelope "Branch"
// @Failure 404 {object} ErrorResponse "Company, widget or branch not found"
// @Failure 500 {object} ErrorResponse "Error getting branch"
// @Router /espresso/branch/{branch_id} [get]
func (h *BranchHandler) GetBranch(c *gin.Context) {
	branch, err := h.service.Get(c.Request.Context(), c.Query("company_id"), c.Query("widget_id"), c.Param("branch_id"))
	if err != nil {
		respondError(c, err, logger.LabelStoreOperations, "Error getting branch")
		return
	}

	c.JSON(http.StatusOK, BranchEnvelope{Branch: branch})
}

// GetBranchID handles GET /espresso/branch-id/:branch_name
// @Summary Resolve a branch name
// @Tags espresso
// @Produce json
// @Param branch_name path string true "Branch name"
// @Param company_id query string true "Company id"
// @Param widget_id query string true "Widget id"
// @Success 200 {object} BranchIDResponse "Branch id"
// @Failure 404 {object} ErrorResponse "Company, widget or branch not found"
// @Failure 500 {object} ErrorResponse "Error getting branch"
// @Router /espresso/branch-id/{branch_name} [get]
func (h *BranchHandler) GetBranchID(c *gin.Context) {
	id, err := h.service.GetIDByName(c.Request.Context(), c.Query("company_id"), c.Query("widget_id"), c.Param("branch_name"))
	if err != nil {
		respondError(c, err, logger.LabelStoreOperations, "Error getting branch")
		return
	}

	c.JSON(http.StatusOK, BranchIDResponse{BranchID: id})
}
