package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWalletProvider struct {
	address    string
	connectErr error
	submitted  []string
	txHash     string
	submitErr  error
}

func (p *fakeWalletProvider) Connectors() []Connector {
	return []Connector{{ID: "fake", Name: "Fake Wallet"}}
}

func (p *fakeWalletProvider) Connect(ctx context.Context, connectorID string) (string, error) {
	if p.connectErr != nil {
		return "", p.connectErr
	}
	return p.address, nil
}

func (p *fakeWalletProvider) Disconnect(ctx context.Context) error {
	return nil
}

func (p *fakeWalletProvider) SubmitDeployment(ctx context.Context, from string, data string) (string, error) {
	if p.submitErr != nil {
		return "", p.submitErr
	}
	p.submitted = append(p.submitted, data)
	return p.txHash, nil
}

func TestWalletService(t *testing.T) {
	ctx := context.Background()

	t.Run("StartsDisconnected", func(t *testing.T) {
		service := NewWalletService(&fakeWalletProvider{address: "0xabc"})

		address, connected := service.Address()
		assert.False(t, connected)
		assert.Empty(t, address)
		assert.False(t, service.Ready())
	})

	t.Run("ConnectStoresAddress", func(t *testing.T) {
		service := NewWalletService(&fakeWalletProvider{address: "0xabc"})

		err := service.Connect(ctx, "fake")
		require.NoError(t, err)

		address, connected := service.Address()
		assert.True(t, connected)
		assert.Equal(t, "0xabc", address)
		assert.True(t, service.Ready())
	})

	t.Run("ConnectFailureKeepsDisconnected", func(t *testing.T) {
		service := NewWalletService(&fakeWalletProvider{connectErr: errors.New("user rejected")})

		err := service.Connect(ctx, "fake")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user rejected")

		_, connected := service.Address()
		assert.False(t, connected)
		assert.False(t, service.Ready())
	})

	t.Run("DisconnectClearsAddress", func(t *testing.T) {
		service := NewWalletService(&fakeWalletProvider{address: "0xabc"})
		require.NoError(t, service.Connect(ctx, "fake"))

		require.NoError(t, service.Disconnect(ctx))

		_, connected := service.Address()
		assert.False(t, connected)
	})

	t.Run("SubmitRequiresConnection", func(t *testing.T) {
		service := NewWalletService(&fakeWalletProvider{address: "0xabc"})

		_, err := service.SubmitDeployment(ctx, "0xdata")
		assert.Error(t, err)
	})

	t.Run("SubmitUsesConnectedAccount", func(t *testing.T) {
		provider := &fakeWalletProvider{address: "0xabc", txHash: "0xtx"}
		service := NewWalletService(provider)
		require.NoError(t, service.Connect(ctx, "fake"))

		txHash, err := service.SubmitDeployment(ctx, "0xdata")
		require.NoError(t, err)
		assert.Equal(t, "0xtx", txHash)
		assert.Equal(t, []string{"0xdata"}, provider.submitted)
	})

	t.Run("NoProvider", func(t *testing.T) {
		service := NewWalletService(nil)

		assert.Nil(t, service.Connectors())
		assert.False(t, service.Ready())
		assert.Error(t, service.Connect(ctx, "fake"))
		assert.NoError(t, service.Disconnect(ctx))
	})
}
