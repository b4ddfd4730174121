package handlers

import (
	"net/http"

	"espresso-backend/internal/logger"
	"espresso-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for companies
type CompanyHandler struct {
	service service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(service service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// CompaniesResponse wraps the full company tree
type CompaniesResponse struct {
	Companies []service.CompanyNode `json:"companies"`
}

// CompanyIDResponse carries a resolved company id
type CompanyIDResponse struct {
	CompanyID string `json:"company_id"`
}

// CreateCompany handles POST /espresso/company
// @Summary Create a company
// @Description Create a company with a name that no other company uses
// @Tags espresso
// @Accept json
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 200 {object} service.CreateCompanyResponse "Generated company id"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ErrorResponse "Company name already exists"
// @Failure 500 {object} ErrorResponse "Error creating company"
// @Security BearerAuth
// @Router /espresso/company [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req service.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(c)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, logger.LabelStoreOperations, "Error creating company")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCompanies handles GET /espresso/companies
// @Summary List the company tree
// @Description Every company with its widgets and their branches. Not paginated.
// @Tags espresso
// @Produce json
// @Success 200 {object} CompaniesResponse "Company tree"
// @Failure 500 {object} ErrorResponse "Error getting companies"
// @Router /espresso/companies [get]
func (h *CompanyHandler) GetCompanies(c *gin.Context) {
	companies, err := h.service.GetTree(c.Request.Context())
	if err != nil {
		respondError(c, err, logger.LabelStoreOperations, "Error getting companies")
		return
	}

	c.JSON(http.StatusOK, CompaniesResponse{Companies: companies})
}

// GetCompanyID handles GET /espresso/company-id/:company_name
// @Summary Resolve a company name
// @Tags espresso
// @Produce json
// @Param company_name path string true "Company name"
// @Success 200 {object} CompanyIDResponse "Company id"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Error getting company"
// @Router /espresso/company-id/{company_name} [get]
func (h *CompanyHandler) GetCompanyID(c *gin.Context) {
	id, err := h.service.GetIDByName(c.Request.Context(), c.Param("company_name"))
	if err != nil {
		respondError(c, err, logger.LabelStoreOperations, "Error getting company")
		return
	}

	c.JSON(http.StatusOK, CompanyIDResponse{CompanyID: id})
}
