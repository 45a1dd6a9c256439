package wizard

import (
	"context"
	"errors"

	"github.com/rxtech-lab/flowforge/internal/chain"
	"github.com/rxtech-lab/flowforge/internal/models"
	"github.com/rxtech-lab/flowforge/internal/services"
)

// Step is the observable state of a deployment wizard.
type Step string

const (
	StepNoWallet Step = "no_wallet"
	StepForm     Step = "form"
	StepPending  Step = "pending"
	StepSuccess  Step = "success"
	StepError    Step = "error"
)

var (
	ErrWrongStep           = errors.New("operation not allowed in current step")
	ErrWalletNotReady      = errors.New("wallet is not ready to submit")
	ErrTemplateUnavailable = errors.New("template is not yet available for deployment")
)

// ReceiptWaiter is the external confirmation boundary: it blocks until the
// transaction has a terminal receipt, its own timeout elapses
// (chain.ErrConfirmationTimeout), or the context is cancelled.
type ReceiptWaiter interface {
	WaitForReceipt(ctx context.Context, txHash string) (*chain.Receipt, error)
}

// DeploymentStore is the slice of the store facade the wizard needs: one
// append per successful deployment.
type DeploymentStore interface {
	CreateDeployment(req services.CreateDeploymentRequest) (*models.Deployment, error)
}

type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationWarning NotificationLevel = "warning"
	NotificationError   NotificationLevel = "error"
)

// Notifier receives out-of-band notifications that do not change the wizard
// step, such as a persistence failure after on-chain success.
type Notifier interface {
	Notify(level NotificationLevel, title, message string)
}

// Session is the mutable state of one wizard invocation. It is owned
// exclusively by the Wizard and reset whenever the wizard is opened or
// closed.
type Session struct {
	Step            Step
	TransactionHash string
	// Progress is a synthetic estimate in 0..100, monotonic while pending
	// and capped at 99 until the terminal receipt arrives.
	Progress      int
	ResultAddress string
	ErrorDetail   string
	FieldErrors   services.FieldErrors
}

// Snapshot is an immutable view of the wizard published to subscribers and
// rendered by the presentation layer.
type Snapshot struct {
	Step            Step                 `json:"step"`
	TemplateKey     string               `json:"template_key"`
	TemplateName    string               `json:"template_name"`
	TransactionHash string               `json:"transaction_hash,omitempty"`
	Progress        int                  `json:"progress"`
	StatusText      string               `json:"status_text,omitempty"`
	ResultAddress   string               `json:"result_address,omitempty"`
	ErrorDetail     string               `json:"error_detail,omitempty"`
	ExplorerTxURL   string               `json:"explorer_tx_url,omitempty"`
	FieldErrors     map[string]string    `json:"field_errors,omitempty"`
	CanSubmit       bool                 `json:"can_submit"`
	Connectors      []services.Connector `json:"connectors,omitempty"`
}
