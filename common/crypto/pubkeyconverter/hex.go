package pubkeyconverter

import (
	"encoding/hex"
	"fmt"

	"github.com/multiversx/mx-chain-sovereign-go/common/errors"
	"github.com/multiversx/mx-chain-sovereign-go/common/logging"
)

var _ PubkeyConverter = (*hexPubkeyConverter)(nil)

type hexPubkeyConverter struct {
	length int
}

// NewHexPubkeyConverter creates a converter rendering public keys of the
// given length as lowercase hex.
func NewHexPubkeyConverter(length int) (PubkeyConverter, error) {
	if length <= 0 {
		return nil, errors.WithContext(ErrInvalidLength, fmt.Sprintf("length %d", length))
	}
	return &hexPubkeyConverter{length: length}, nil
}

func (c *hexPubkeyConverter) Len() int {
	return c.length
}

func (c *hexPubkeyConverter) Decode(humanReadable string) ([]byte, error) {
	decoded, err := hex.DecodeString(humanReadable)
	if err != nil {
		return nil, fmt.Errorf("pubkeyconverter: malformed hex: %w", err)
	}
	if err = checkLength(decoded, c.length); err != nil {
		return nil, err
	}
	return decoded, nil
}

func (c *hexPubkeyConverter) Encode(pkBytes []byte) (string, error) {
	if err := checkLength(pkBytes, c.length); err != nil {
		return "", err
	}
	return hex.EncodeToString(pkBytes), nil
}

func (c *hexPubkeyConverter) SilentEncode(pkBytes []byte, logger *logging.Logger) string {
	return silentEncode(c, pkBytes, logger)
}

func (c *hexPubkeyConverter) EncodeSlice(pkBytesSlice [][]byte) ([]string, error) {
	return encodeSlice(c, pkBytesSlice)
}
