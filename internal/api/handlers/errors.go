package handlers

import (
	"net/http"

	apperrors "espresso-backend/internal/errors"
	"espresso-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"Company not found"`
}

// MessageResponse represents a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message" example:"OK"`
}

// respondError maps a service error to its HTTP status. Anything the taxonomy does
// not know is logged under label and answered with the fixed fallback message.
func respondError(c *gin.Context, err error, label logger.Label, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsUnprocessableEntity(err):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c).WithLabel(label).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

func respondInvalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}
