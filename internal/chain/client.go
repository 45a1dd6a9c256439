package chain

import (
	"context"
	"errors"
	"time"

	"github.com/rxtech-lab/flowforge/internal/models"
	"github.com/rxtech-lab/flowforge/internal/utils"
)

// ErrConfirmationTimeout signals that the confirmation wait exceeded its
// bound. It is distinct from on-chain failure: the transaction may still
// succeed later.
var ErrConfirmationTimeout = errors.New("confirmation wait timed out")

// Receipt is the terminal outcome of a submitted transaction.
type Receipt struct {
	Status          models.TransactionStatus
	ContractAddress string
}

// Client polls an Ethereum JSON-RPC endpoint for transaction receipts.
type Client struct {
	rpc          *utils.RPCClient
	pollInterval time.Duration
	timeout      time.Duration
}

// NewClient creates a receipt-polling client. The timeout bounds the whole
// confirmation wait; the poll interval is the cadence of receipt lookups.
func NewClient(rpcURL string, pollInterval, timeout time.Duration) *Client {
	return &Client{
		rpc:          utils.NewRPCClient(rpcURL),
		pollInterval: pollInterval,
		timeout:      timeout,
	}
}

// WaitForReceipt polls until the transaction has a receipt, the timeout
// elapses, or the context is cancelled. Timing out does not cancel the
// underlying transaction; that capability does not exist on-chain.
func (c *Client) WaitForReceipt(ctx context.Context, txHash string) (*Receipt, error) {
	deadline := time.NewTimer(c.timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.rpc.GetTransactionReceipt(txHash)
		if err == nil && receipt != nil {
			status := models.TransactionStatusFailed
			if receipt.Succeeded() {
				status = models.TransactionStatusConfirmed
			}
			return &Receipt{
				Status:          status,
				ContractAddress: receipt.ContractAddress,
			}, nil
		}
		// RPC errors while polling are transient until the timeout says
		// otherwise

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			return nil, ErrConfirmationTimeout
		case <-ticker.C:
		}
	}
}
