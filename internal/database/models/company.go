package models

// Company is the root of the hierarchy
type Company struct {
	DocumentModel
	CompanyName string `json:"company_name" gorm:"uniqueIndex:idx_company_name;not null;size:200"`

	// Relationships
	Widgets []Widget `json:"widgets,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
