package repository

import (
	"context"

	"espresso-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create inserts a new company inside a transaction.
// A concurrent insert of the same name fails with gorm.ErrDuplicatedKey.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(company).Error
	})
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetByName retrieves a company by its name
func (r *CompanyRepository) GetByName(ctx context.Context, name string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "company_name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// GetAllWithWidgets retrieves every company with its widgets and their branches.
// There is no pagination: the cost grows with the total number of documents.
func (r *CompanyRepository) GetAllWithWidgets(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	err := r.db.WithContext(ctx).
		Preload("Widgets", orderByCreation).
		Preload("Widgets.Branches", orderByCreation).
		Order("created_at, id").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func orderByCreation(db *gorm.DB) *gorm.DB {
	return db.Order("created_at, id")
}
