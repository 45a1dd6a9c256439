package models

import (
	"time"

	"gorm.io/gorm"
)

// Template represents a deployable smart contract template. Templates are
// seeded from the built-in catalog at startup and never mutated afterwards.
type Template struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Key         string         `gorm:"uniqueIndex;not null" json:"key"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Status      TemplateStatus `gorm:"default:soon" json:"status"`
	// ContractName is the name of the contract inside TemplateCode.
	ContractName string `json:"contract_name"`
	// TemplateCode is the Solidity source. Only templates with status
	// "live" carry code; "soon" templates cannot be deployed.
	TemplateCode string          `gorm:"type:text" json:"template_code,omitempty"`
	Parameters   []ParameterSpec `gorm:"serializer:json" json:"parameters"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

// Deployable reports whether a deployment can be initiated from this template.
func (t Template) Deployable() bool {
	return t.Status == TemplateStatusLive
}
