package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ExplorerTxURL builds a block-explorer link for a transaction hash. An
// empty base URL or hash yields an empty link; explorer links are a
// convenience and must never block the deployment flow.
func ExplorerTxURL(baseURL, txHash string) string {
	return explorerURL(baseURL, "tx", txHash)
}

// ExplorerAddressURL builds a block-explorer link for an address.
func ExplorerAddressURL(baseURL, address string) string {
	return explorerURL(baseURL, "address", address)
}

func explorerURL(baseURL, kind, ref string) string {
	if baseURL == "" || ref == "" {
		return ""
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + fmt.Sprintf("/%s/%s", kind, ref)
	return parsed.String()
}
