package models

import "time"

// Deployment represents one successfully deployed contract. Records are
// append-only: this system creates them once and never mutates or deletes
// them.
type Deployment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ContractName    string    `gorm:"not null" json:"contract_name"`
	ContractAddress string    `gorm:"not null" json:"contract_address"`
	DeployerAddress string    `gorm:"not null" json:"deployer_address"`
	TransactionHash string    `json:"transaction_hash,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
