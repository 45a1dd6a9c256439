package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplorerTxURL(t *testing.T) {
	t.Run("BuildsLink", func(t *testing.T) {
		url := ExplorerTxURL("https://sepolia.etherscan.io", "0xabc123")
		assert.Equal(t, "https://sepolia.etherscan.io/tx/0xabc123", url)
	})

	t.Run("TrailingSlash", func(t *testing.T) {
		url := ExplorerTxURL("https://sepolia.etherscan.io/", "0xabc123")
		assert.Equal(t, "https://sepolia.etherscan.io/tx/0xabc123", url)
	})

	t.Run("EmptyBaseURL", func(t *testing.T) {
		assert.Empty(t, ExplorerTxURL("", "0xabc123"))
	})

	t.Run("EmptyHash", func(t *testing.T) {
		assert.Empty(t, ExplorerTxURL("https://sepolia.etherscan.io", ""))
	})
}

func TestExplorerAddressURL(t *testing.T) {
	t.Run("BuildsLink", func(t *testing.T) {
		url := ExplorerAddressURL("https://sepolia.etherscan.io", "0xdef456")
		assert.Equal(t, "https://sepolia.etherscan.io/address/0xdef456", url)
	})

	t.Run("EmptyBaseURL", func(t *testing.T) {
		assert.Empty(t, ExplorerAddressURL("", "0xdef456"))
	})
}
