package repository

import (
	"context"
	"time"

	"espresso-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchRepository handles database operations for branches
type BranchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

// Create inserts a new branch inside a transaction
func (r *BranchRepository) Create(ctx context.Context, branch *models.Branch) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(branch).Error
	})
}

// GetByID retrieves a branch by ID within a widget
func (r *BranchRepository) GetByID(ctx context.Context, widgetID, id uuid.UUID) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.WithContext(ctx).First(&branch, "widget_id = ? AND id = ?", widgetID, id).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// GetByName retrieves a branch by name within a widget
func (r *BranchRepository) GetByName(ctx context.Context, widgetID uuid.UUID, name string) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.WithContext(ctx).First(&branch, "widget_id = ? AND branch_name = ?", widgetID, name).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// UpdateDeploymentArtifact points a branch at another artifact and stamps updated_at.
// No other column is touched. Returns gorm.ErrRecordNotFound when no row matched.
func (r *BranchRepository) UpdateDeploymentArtifact(ctx context.Context, widgetID, id uuid.UUID, deploymentArtifactID string, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.Branch{}).
		Where("widget_id = ? AND id = ?", widgetID, id).
		Updates(map[string]interface{}{
			"deployment_artifact_id": deploymentArtifactID,
			"updated_at":             updatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
