package services

import (
	"context"
	"fmt"
	"sync"
)

// Connector is a named method of establishing a wallet session.
type Connector struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WalletProvider is the external wallet boundary: it offers connectors,
// establishes sessions and signs/broadcasts deployment transactions for the
// connected account.
type WalletProvider interface {
	Connectors() []Connector
	// Connect establishes a session via the named connector and returns
	// the account address.
	Connect(ctx context.Context, connectorID string) (string, error)
	Disconnect(ctx context.Context) error
	// SubmitDeployment signs and broadcasts a contract-creation transaction
	// carrying the given payload data, returning the transaction hash.
	SubmitDeployment(ctx context.Context, from string, data string) (string, error)
}

// WalletService tracks the connected account address over a WalletProvider.
// It has exactly two observable states: no-address and address-present;
// transient connecting states belong to the wizard layer.
type WalletService interface {
	Address() (string, bool)
	Connectors() []Connector
	// Connect surfaces provider failure (e.g. a rejected prompt) as an
	// error; the session stays in the no-address state in that case.
	Connect(ctx context.Context, connectorID string) error
	Disconnect(ctx context.Context) error
	// Ready reports whether the session can submit transactions.
	Ready() bool
	SubmitDeployment(ctx context.Context, data string) (string, error)
}

type walletService struct {
	provider WalletProvider

	mu      sync.RWMutex
	address string
}

// NewWalletService creates a new WalletService over the given provider.
func NewWalletService(provider WalletProvider) WalletService {
	return &walletService{provider: provider}
}

func (s *walletService) Address() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address, s.address != ""
}

func (s *walletService) Connectors() []Connector {
	if s.provider == nil {
		return nil
	}
	return s.provider.Connectors()
}

func (s *walletService) Connect(ctx context.Context, connectorID string) error {
	if s.provider == nil {
		return fmt.Errorf("no wallet provider configured")
	}

	address, err := s.provider.Connect(ctx, connectorID)
	if err != nil {
		return fmt.Errorf("wallet connection failed: %w", err)
	}

	s.mu.Lock()
	s.address = address
	s.mu.Unlock()
	return nil
}

func (s *walletService) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	s.address = ""
	s.mu.Unlock()

	if s.provider == nil {
		return nil
	}
	return s.provider.Disconnect(ctx)
}

func (s *walletService) Ready() bool {
	_, connected := s.Address()
	return s.provider != nil && connected
}

func (s *walletService) SubmitDeployment(ctx context.Context, data string) (string, error) {
	address, connected := s.Address()
	if !connected || s.provider == nil {
		return "", fmt.Errorf("wallet not connected")
	}
	return s.provider.SubmitDeployment(ctx, address, data)
}
