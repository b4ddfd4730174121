package repository

import (
	"context"

	"espresso-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WidgetRepository handles database operations for widgets
type WidgetRepository struct {
	db *gorm.DB
}

// NewWidgetRepository creates a new widget repository
func NewWidgetRepository(db *gorm.DB) *WidgetRepository {
	return &WidgetRepository{db: db}
}

// Create inserts a new widget inside a transaction
func (r *WidgetRepository) Create(ctx context.Context, widget *models.Widget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(widget).Error
	})
}

// GetByID retrieves a widget by ID within a company
func (r *WidgetRepository) GetByID(ctx context.Context, companyID, id uuid.UUID) (*models.Widget, error) {
	var widget models.Widget
	err := r.db.WithContext(ctx).First(&widget, "company_id = ? AND id = ?", companyID, id).Error
	if err != nil {
		return nil, err
	}
	return &widget, nil
}

// GetByName retrieves a widget by name within a company
func (r *WidgetRepository) GetByName(ctx context.Context, companyID uuid.UUID, name string) (*models.Widget, error) {
	var widget models.Widget
	err := r.db.WithContext(ctx).First(&widget, "company_id = ? AND widget_name = ?", companyID, name).Error
	if err != nil {
		return nil, err
	}
	return &widget, nil
}
