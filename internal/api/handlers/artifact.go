package handlers

import (
	"net/http"

	"espresso-backend/internal/artifact"
	"espresso-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ArtifactHandler exposes the artifact bucket listing
type ArtifactHandler struct {
	oracle artifact.Oracle
}

// NewArtifactHandler creates a new artifact handler
func NewArtifactHandler(oracle artifact.Oracle) *ArtifactHandler {
	return &ArtifactHandler{oracle: oracle}
}

// ArtifactsResponse maps artifact ids to their folder contents
type ArtifactsResponse struct {
	Artifacts map[string]artifact.Folder `json:"artifacts"`
}

// ListArtifacts handles GET /espresso/artifacts
// @Summary List deployment artifacts
// @Description Folders of the artifact bucket with their files
// @Tags espresso
// @Produce json
// @Success 200 {object} ArtifactsResponse "Artifact folders"
// @Failure 500 {object} ErrorResponse "Error getting artifacts"
// @Router /espresso/artifacts [get]
func (h *ArtifactHandler) ListArtifacts(c *gin.Context) {
	folders, err := h.oracle.Folders(c.Request.Context())
	if err != nil {
		respondError(c, err, logger.LabelArtifactBucket, "Error getting artifacts")
		return
	}

	c.JSON(http.StatusOK, ArtifactsResponse{Artifacts: folders})
}
