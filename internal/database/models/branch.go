package models

import (
	"github.com/google/uuid"
)

// Branch lives under a Widget and points at a deployment artifact
type Branch struct {
	DocumentModel
	WidgetID             uuid.UUID `json:"widget_id" gorm:"type:uuid;not null;uniqueIndex:idx_widget_branch_name,priority:1"`
	BranchName           string    `json:"branch_name" gorm:"not null;size:200;uniqueIndex:idx_widget_branch_name,priority:2"`
	DeploymentArtifactID string    `json:"deployment_artifact_id" gorm:"not null;size:200"`
}

// TableName returns the table name for Branch
func (Branch) TableName() string {
	return "branches"
}
