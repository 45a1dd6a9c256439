package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rxtech-lab/flowforge/internal/chain"
	"github.com/rxtech-lab/flowforge/internal/models"
	"github.com/rxtech-lab/flowforge/internal/services"
	"github.com/rxtech-lab/flowforge/internal/utils"
)

// Config holds the wizard timing and link settings.
type Config struct {
	// ProgressInterval is the cadence of synthetic progress ticks while
	// awaiting confirmation.
	ProgressInterval time.Duration
	// ProgressStep is the amount added per tick, capped at 99.
	ProgressStep    int
	ExplorerBaseURL string
}

func (c Config) withDefaults() Config {
	if c.ProgressInterval <= 0 {
		c.ProgressInterval = 2 * time.Second
	}
	if c.ProgressStep <= 0 {
		c.ProgressStep = 3
	}
	return c
}

// Deps are the collaborators of a wizard instance.
type Deps struct {
	Validator services.ValidatorService
	Evm       services.EvmService
	Wallet    services.WalletService
	Waiter    ReceiptWaiter
	Store     DeploymentStore
	Notifier  Notifier
}

// Wizard drives the full lifecycle of one contract deployment: connect →
// form → submit → await confirmation → persist. Only one submission can be
// in flight; the form step is the only step submission is reachable from and
// is left synchronously on submit.
type Wizard struct {
	cfg      Config
	template models.Template
	schema   services.Schema
	deps     Deps

	mu      sync.Mutex
	session Session
	// generation invalidates in-flight goroutines of an abandoned
	// submission: they compare their captured generation before mutating
	// the session.
	generation    int
	cancelPending context.CancelFunc
	subscribers   []func(Snapshot)
}

// New creates a wizard for one template. Call Open before use.
func New(template models.Template, deps Deps, cfg Config) *Wizard {
	return &Wizard{
		cfg:      cfg.withDefaults(),
		template: template,
		schema:   deps.Validator.BuildSchema(template),
		deps:     deps,
	}
}

// Open resets the session and enters the form step, or no_wallet when no
// account is connected. Any in-flight submission is abandoned.
func (w *Wizard) Open(ctx context.Context) Snapshot {
	w.mu.Lock()
	w.resetLocked()
	if _, connected := w.deps.Wallet.Address(); connected {
		w.session.Step = StepForm
	} else {
		w.session.Step = StepNoWallet
	}
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.publish(snap)
	return snap
}

// Close abandons the session. Progress ticks and receipt polling stop; an
// already-submitted transaction is not cancelled.
func (w *Wizard) Close() {
	w.mu.Lock()
	w.resetLocked()
	w.mu.Unlock()
}

// Connect is the only action available in the no_wallet step. Connection
// failure is surfaced as an error and notified; the step does not change.
func (w *Wizard) Connect(ctx context.Context, connectorID string) error {
	w.mu.Lock()
	if w.session.Step != StepNoWallet {
		w.mu.Unlock()
		return ErrWrongStep
	}
	w.mu.Unlock()

	if err := w.deps.Wallet.Connect(ctx, connectorID); err != nil {
		w.notify(NotificationError, "Connection Failed", err.Error())
		return err
	}

	w.mu.Lock()
	if w.session.Step == StepNoWallet {
		w.session.Step = StepForm
	}
	snap := w.snapshotLocked()
	w.mu.Unlock()

	if address, ok := w.deps.Wallet.Address(); ok {
		w.notify(NotificationInfo, "Wallet Connected", shortAddress(address))
	}
	w.publish(snap)
	return nil
}

// Submit validates the inputs and, when accepted, transitions to pending
// synchronously before any external call is made. Validation failure keeps
// the form step with per-field errors.
func (w *Wizard) Submit(ctx context.Context, inputs map[string]string) error {
	w.mu.Lock()
	if w.session.Step != StepForm {
		w.mu.Unlock()
		return ErrWrongStep
	}
	if !w.template.Deployable() {
		w.mu.Unlock()
		return ErrTemplateUnavailable
	}

	values, fieldErrs := w.deps.Validator.Validate(w.schema, inputs)
	if len(fieldErrs) > 0 {
		w.session.FieldErrors = fieldErrs
		snap := w.snapshotLocked()
		w.mu.Unlock()
		w.publish(snap)
		return nil
	}

	deployer, connected := w.deps.Wallet.Address()
	if !connected || !w.deps.Wallet.Ready() {
		w.mu.Unlock()
		return ErrWalletNotReady
	}

	w.session = Session{Step: StepPending}
	gen := w.generation
	pendingCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	w.cancelPending = cancel
	snap := w.snapshotLocked()
	w.mu.Unlock()

	go w.run(pendingCtx, gen, deployer, values)

	w.publish(snap)
	return nil
}

// Retry returns from the error step to a cleared form for the same template.
func (w *Wizard) Retry() error {
	w.mu.Lock()
	if w.session.Step != StepError {
		w.mu.Unlock()
		return ErrWrongStep
	}
	w.session = Session{Step: StepForm}
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.publish(snap)
	return nil
}

// Snapshot returns the current view of the wizard.
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Subscribe registers an observer called after every state change.
func (w *Wizard) Subscribe(fn func(Snapshot)) {
	w.mu.Lock()
	w.subscribers = append(w.subscribers, fn)
	w.mu.Unlock()
}

// run drives the asynchronous part of a submission: build the transaction,
// submit it through the wallet, then await the receipt.
func (w *Wizard) run(ctx context.Context, gen int, deployer string, values map[string]string) {
	args, err := w.constructorArgs(values)
	if err != nil {
		w.fail(gen, err.Error())
		return
	}

	data, _, err := w.deps.Evm.BuildDeploymentFromSource(services.SourceDeploymentArgs{
		ContractName:    w.template.ContractName,
		ContractCode:    w.template.TemplateCode,
		ConstructorArgs: args,
	})
	if err != nil {
		w.fail(gen, fmt.Sprintf("failed to build deployment transaction: %v", err))
		return
	}

	// Awaiting signature: no handle yet, no synthetic progress. Bounded
	// only by the wallet's own prompt lifecycle.
	txHash, err := w.deps.Wallet.SubmitDeployment(ctx, data)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.fail(gen, submissionErrorDetail(err))
		return
	}

	snap, ok := w.markSubmitted(gen, txHash)
	if !ok {
		return
	}
	w.publish(snap)
	go w.advanceProgress(ctx, gen)

	receipt, err := w.deps.Waiter.WaitForReceipt(ctx, txHash)
	switch {
	case ctx.Err() != nil:
		// Abandoned; the transaction itself is not cancelled.
		return
	case errors.Is(err, chain.ErrConfirmationTimeout):
		w.fail(gen, timeoutErrorDetail(w.cfg.ExplorerBaseURL, txHash))
		return
	case err != nil:
		w.fail(gen, fmt.Sprintf("failed while waiting for confirmation: %v", err))
		return
	}

	if receipt.Status != models.TransactionStatusConfirmed || receipt.ContractAddress == "" {
		w.fail(gen, "The transaction was rejected on chain. Please check your parameters and wallet balance, then try again.")
		return
	}

	w.succeed(ctx, gen, deployer, txHash, receipt.ContractAddress)
}

// constructorArgs builds the positional constructor arguments from the
// validated values, in template parameter order, applying fixed-point
// scaling where the template calls for it.
func (w *Wizard) constructorArgs(values map[string]string) ([]any, error) {
	args := make([]any, 0, len(w.template.Parameters))
	for _, param := range w.template.Parameters {
		value := values[param.Name]
		if param.Kind == models.ParameterKindInteger && param.ScaleDecimals > 0 {
			scaled, err := utils.ScaleToBaseUnits(value, param.ScaleDecimals)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %w", param.Name, err)
			}
			args = append(args, scaled)
			continue
		}
		args = append(args, value)
	}
	return args, nil
}

// markSubmitted records the transaction handle, entering the
// awaiting-confirmation sub-phase. Returns false if the session was reset.
func (w *Wizard) markSubmitted(gen int, txHash string) (Snapshot, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.generation != gen || w.session.Step != StepPending {
		return Snapshot{}, false
	}
	w.session.TransactionHash = txHash
	return w.snapshotLocked(), true
}

// advanceProgress advances the synthetic estimate on a fixed cadence while
// the submission is pending with a handle. It stops on context cancellation
// or any step change.
func (w *Wizard) advanceProgress(ctx context.Context, gen int) {
	ticker := time.NewTicker(w.cfg.ProgressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		w.mu.Lock()
		if w.generation != gen || w.session.Step != StepPending || w.session.TransactionHash == "" {
			w.mu.Unlock()
			return
		}
		if w.session.Progress >= maxSyntheticProgress {
			w.mu.Unlock()
			continue
		}
		w.session.Progress += w.cfg.ProgressStep
		if w.session.Progress > maxSyntheticProgress {
			w.session.Progress = maxSyntheticProgress
		}
		snap := w.snapshotLocked()
		w.mu.Unlock()

		w.publish(snap)
	}
}

// succeed records the terminal success, appends the deployment record and
// transitions to the success step. A failed append is reported out-of-band
// and does not revert the on-chain success.
func (w *Wizard) succeed(ctx context.Context, gen int, deployer, txHash, contractAddress string) {
	w.mu.Lock()
	if w.generation != gen {
		w.mu.Unlock()
		return
	}
	w.stopPendingLocked()
	w.session.Progress = 100
	w.session.ResultAddress = contractAddress
	snap := w.snapshotLocked()
	w.mu.Unlock()
	w.publish(snap)

	_, err := w.deps.Store.CreateDeployment(services.CreateDeploymentRequest{
		ContractName:    w.template.Name,
		ContractAddress: contractAddress,
		DeployerAddress: deployer,
		TransactionHash: txHash,
	})
	if err != nil {
		w.notify(NotificationWarning, "Deployment not recorded",
			fmt.Sprintf("The contract was deployed at %s, but saving the record failed: %v", contractAddress, err))
	}

	w.mu.Lock()
	if w.generation != gen {
		w.mu.Unlock()
		return
	}
	w.session.Step = StepSuccess
	snap = w.snapshotLocked()
	w.mu.Unlock()
	w.publish(snap)
}

// fail transitions to the error step with a human-readable cause.
func (w *Wizard) fail(gen int, detail string) {
	w.mu.Lock()
	if w.generation != gen {
		w.mu.Unlock()
		return
	}
	w.stopPendingLocked()
	w.session.Step = StepError
	w.session.ErrorDetail = detail
	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.publish(snap)
}

// resetLocked abandons any in-flight submission and clears the session.
func (w *Wizard) resetLocked() {
	w.stopPendingLocked()
	w.generation++
	w.session = Session{}
}

func (w *Wizard) stopPendingLocked() {
	if w.cancelPending != nil {
		w.cancelPending()
		w.cancelPending = nil
	}
}

func (w *Wizard) snapshotLocked() Snapshot {
	snap := Snapshot{
		Step:            w.session.Step,
		TemplateKey:     w.template.Key,
		TemplateName:    w.template.Name,
		TransactionHash: w.session.TransactionHash,
		Progress:        w.session.Progress,
		ResultAddress:   w.session.ResultAddress,
		ErrorDetail:     w.session.ErrorDetail,
		CanSubmit:       w.session.Step == StepForm && w.deps.Wallet.Ready() && w.template.Deployable(),
	}
	if len(w.session.FieldErrors) > 0 {
		snap.FieldErrors = w.session.FieldErrors
	}
	if w.session.Step == StepNoWallet {
		snap.Connectors = w.deps.Wallet.Connectors()
	}
	if w.session.TransactionHash != "" {
		snap.ExplorerTxURL = utils.ExplorerTxURL(w.cfg.ExplorerBaseURL, w.session.TransactionHash)
		if w.session.Step == StepPending {
			snap.StatusText = StatusMessage(w.session.Progress)
		}
	}
	return snap
}

func (w *Wizard) publish(snap Snapshot) {
	w.mu.Lock()
	subscribers := make([]func(Snapshot), len(w.subscribers))
	copy(subscribers, w.subscribers)
	w.mu.Unlock()

	for _, fn := range subscribers {
		fn(snap)
	}
}

func (w *Wizard) notify(level NotificationLevel, title, message string) {
	if w.deps.Notifier != nil {
		w.deps.Notifier.Notify(level, title, message)
	}
}

func submissionErrorDetail(err error) string {
	if err == nil || err.Error() == "" {
		return "The deployment could not be submitted. Please try again."
	}
	return fmt.Sprintf("The deployment was not submitted: %v", err)
}

func timeoutErrorDetail(explorerBaseURL, txHash string) string {
	detail := "Confirmation timed out, but the transaction may still succeed on chain."
	if link := utils.ExplorerTxURL(explorerBaseURL, txHash); link != "" {
		return fmt.Sprintf("%s Check %s for its final status.", detail, link)
	}
	return detail + " Check the transaction status on a block explorer."
}

func shortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
