package utils

import (
	"fmt"
	"math/big"
	"strings"
)

// ScaleToBaseUnits converts a decimal string amount into an integer scaled
// by 10^decimals (e.g. "1.5" with 18 decimals becomes 1.5e18). The value
// must not carry more fractional digits than the scale allows.
func ScaleToBaseUnits(value string, decimals int) (*big.Int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("empty amount")
	}

	whole, frac := value, ""
	if idx := strings.Index(value, "."); idx >= 0 {
		whole, frac = value[:idx], value[idx+1:]
		if strings.Contains(frac, ".") {
			return nil, fmt.Errorf("invalid amount: %s", value)
		}
	}
	if whole == "" {
		whole = "0"
	}

	if len(frac) > decimals {
		return nil, fmt.Errorf("amount %s has more than %d decimal places", value, decimals)
	}
	frac += strings.Repeat("0", decimals-len(frac))

	scaled, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %s", value)
	}
	return scaled, nil
}
