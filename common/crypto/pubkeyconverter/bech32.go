package pubkeyconverter

import (
	"fmt"
	"strings"

	"github.com/multiversx/mx-chain-sovereign-go/common/encoding/bech32"
	"github.com/multiversx/mx-chain-sovereign-go/common/errors"
	"github.com/multiversx/mx-chain-sovereign-go/common/logging"
)

var _ PubkeyConverter = (*bech32PubkeyConverter)(nil)

type bech32PubkeyConverter struct {
	length int
	hrp    string
	codec  bech32.Codec
}

// NewBech32PubkeyConverter creates a converter rendering public keys of the
// given length as Bech32 text with the given human readable part.
func NewBech32PubkeyConverter(length int, hrp string, codec bech32.Codec) (PubkeyConverter, error) {
	if length <= 0 {
		return nil, errors.WithContext(ErrInvalidLength, fmt.Sprintf("length %d", length))
	}
	if err := bech32.ValidateHRP(hrp); err != nil {
		return nil, fmt.Errorf("pubkeyconverter: %w", err)
	}

	return &bech32PubkeyConverter{
		length: length,
		hrp:    strings.ToLower(hrp),
		codec:  codec,
	}, nil
}

func (c *bech32PubkeyConverter) Len() int {
	return c.length
}

func (c *bech32PubkeyConverter) Decode(humanReadable string) ([]byte, error) {
	hrp, decoded, err := c.codec.Decode(humanReadable)
	if err != nil {
		return nil, fmt.Errorf("pubkeyconverter: %w", err)
	}
	if hrp != c.hrp {
		return nil, errors.WithContext(ErrWrongHRP, fmt.Sprintf("expected: %s, actual: %s", c.hrp, hrp))
	}
	if err = checkLength(decoded, c.length); err != nil {
		return nil, err
	}
	return decoded, nil
}

func (c *bech32PubkeyConverter) Encode(pkBytes []byte) (string, error) {
	if err := checkLength(pkBytes, c.length); err != nil {
		return "", err
	}
	encoded, err := c.codec.Encode(c.hrp, pkBytes)
	if err != nil {
		return "", fmt.Errorf("pubkeyconverter: %w", err)
	}
	return encoded, nil
}

func (c *bech32PubkeyConverter) SilentEncode(pkBytes []byte, logger *logging.Logger) string {
	return silentEncode(c, pkBytes, logger)
}

func (c *bech32PubkeyConverter) EncodeSlice(pkBytesSlice [][]byte) ([]string, error) {
	return encodeSlice(c, pkBytesSlice)
}
