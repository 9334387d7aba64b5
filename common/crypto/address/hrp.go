package address

import (
	"strings"

	"github.com/multiversx/mx-chain-sovereign-go/common/encoding/bech32"
)

// DefaultBech32HRP is the human readable part of mainnet account addresses.
const DefaultBech32HRP Bech32HRP = "erd"

// Bech32HRP is the human readable part (HRP) of Bech32 encoded addresses.
type Bech32HRP string

// String returns the string representation of a HRP of Bech32 encoded addresses.
func (hrp Bech32HRP) String() string {
	return string(hrp)
}

// NewBech32HRP validates and creates a new human readable part (HRP) of
// Bech32 encoded addresses. The result is always lowercase.
func NewBech32HRP(rawBech32HRP string) (Bech32HRP, error) {
	if err := bech32.ValidateHRP(rawBech32HRP); err != nil {
		return "", err
	}
	return Bech32HRP(strings.ToLower(rawBech32HRP)), nil
}
