package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/rxtech-lab/flowforge/internal/services"
)

// LocalKeyConnectorID identifies the key-backed connector.
const LocalKeyConnectorID = "local-key"

const deploymentGasLimit = uint64(5000000)

// KeyedProvider is a wallet provider backed by a local private key. It
// signs contract-creation transactions and broadcasts them over JSON-RPC.
type KeyedProvider struct {
	rpcURL     string
	chainID    *big.Int
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// NewKeyedProvider creates a provider from a hex-encoded private key.
func NewKeyedProvider(rpcURL, privateKeyHex string, chainID int64) (*KeyedProvider, error) {
	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")

	privateKey, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &KeyedProvider{
		rpcURL:     rpcURL,
		chainID:    big.NewInt(chainID),
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

// Connectors implements services.WalletProvider.
func (p *KeyedProvider) Connectors() []services.Connector {
	return []services.Connector{
		{ID: LocalKeyConnectorID, Name: "Local Key"},
	}
}

// Connect implements services.WalletProvider.
func (p *KeyedProvider) Connect(ctx context.Context, connectorID string) (string, error) {
	if connectorID != "" && connectorID != LocalKeyConnectorID {
		return "", fmt.Errorf("unknown connector: %s", connectorID)
	}
	return p.address.Hex(), nil
}

// Disconnect implements services.WalletProvider.
func (p *KeyedProvider) Disconnect(ctx context.Context) error {
	return nil
}

// SubmitDeployment signs a contract-creation transaction carrying the given
// payload and broadcasts it, returning the transaction hash.
func (p *KeyedProvider) SubmitDeployment(ctx context.Context, from string, data string) (string, error) {
	if !strings.EqualFold(from, p.address.Hex()) {
		return "", fmt.Errorf("account %s is not managed by this provider", from)
	}

	client, err := ethclient.DialContext(ctx, p.rpcURL)
	if err != nil {
		return "", fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	nonce, err := client.PendingNonceAt(ctx, p.address)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get gas price: %w", err)
	}

	payload := common.FromHex(data)
	tx := types.NewContractCreation(nonce, big.NewInt(0), deploymentGasLimit, gasPrice, payload)

	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(p.chainID), p.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := client.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return signedTx.Hash().Hex(), nil
}
