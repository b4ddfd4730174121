package models

import (
	"github.com/google/uuid"
)

// Widget lives under a Company; its name is unique within that company
type Widget struct {
	DocumentModel
	CompanyID  uuid.UUID `json:"company_id" gorm:"type:uuid;not null;uniqueIndex:idx_company_widget_name,priority:1"`
	WidgetName string    `json:"widget_name" gorm:"not null;size:200;uniqueIndex:idx_company_widget_name,priority:2"`

	// Relationships
	Branches []Branch `json:"branches,omitempty" gorm:"foreignKey:WidgetID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Widget
func (Widget) TableName() string {
	return "widgets"
}
