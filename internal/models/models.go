package models

type TemplateStatus string

const (
	TemplateStatusLive TemplateStatus = "live"
	TemplateStatusSoon TemplateStatus = "soon"
)

type ParameterKind string

const (
	ParameterKindText    ParameterKind = "text"
	ParameterKindInteger ParameterKind = "integer"
	ParameterKindAddress ParameterKind = "address"
)

// ParameterSpec describes a single constructor parameter of a template.
// The order of parameters in a template is the positional order of the
// contract's constructor arguments.
type ParameterSpec struct {
	Name        string        `json:"name"`
	Label       string        `json:"label"`
	Kind        ParameterKind `json:"kind"`
	Placeholder string        `json:"placeholder"`
	// ScaleDecimals scales integer values by 10^n before encoding
	// (e.g. 18 for token amounts denominated in whole tokens).
	ScaleDecimals int `json:"scale_decimals,omitempty"`
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)
