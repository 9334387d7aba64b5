// Package pubkeyconverter converts raw public keys to and from their human
// readable representation, as configured for a node or tool.
package pubkeyconverter

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/multiversx/mx-chain-sovereign-go/common/encoding/bech32"
	"github.com/multiversx/mx-chain-sovereign-go/common/errors"
	"github.com/multiversx/mx-chain-sovereign-go/common/logging"
)

const (
	// ModuleName is the module name used for coded errors of this package.
	ModuleName = "pubkeyconverter"

	// TypeBech32 is the type of the Bech32 converter.
	TypeBech32 = "bech32"
	// TypeHex is the type of the hex converter.
	TypeHex = "hex"
)

var (
	// ErrUnknownType is the error returned when the converter type is unknown.
	ErrUnknownType = errors.New(ModuleName, 1, "pubkeyconverter: unknown converter type")
	// ErrInvalidLength is the error returned when the key length is invalid.
	ErrInvalidLength = errors.New(ModuleName, 2, "pubkeyconverter: invalid public key length")
	// ErrWrongHRP is the error returned when decoding an address with a
	// different human readable part than the converter's.
	ErrWrongHRP = errors.New(ModuleName, 3, "pubkeyconverter: wrong human readable part")
)

// PubkeyConverter converts public keys from their raw form to their human
// readable form and back.
type PubkeyConverter interface {
	// Len returns the length of the raw public keys.
	Len() int

	// Decode converts the human readable form into raw public key bytes.
	Decode(humanReadable string) ([]byte, error)

	// Encode converts raw public key bytes into their human readable form.
	Encode(pkBytes []byte) (string, error)

	// SilentEncode is Encode that logs failures (when logger is not nil)
	// and returns an empty string.
	SilentEncode(pkBytes []byte, logger *logging.Logger) string

	// EncodeSlice encodes every key, failing if any key fails.
	EncodeSlice(pkBytesSlice [][]byte) ([]string, error)
}

// Config is the public key converter configuration.
type Config struct {
	// Length is the length of the raw public keys in bytes.
	Length int `mapstructure:"length"`
	// Type is the converter type (bech32 or hex).
	Type string `mapstructure:"type"`
	// HRP is the human readable part used by the bech32 converter.
	HRP string `mapstructure:"hrp"`
}

// Validate validates the configuration settings.
func (c *Config) Validate() error {
	if c.Length <= 0 {
		return errors.WithContext(ErrInvalidLength, fmt.Sprintf("length %d", c.Length))
	}
	switch c.Type {
	case TypeBech32:
		if err := bech32.ValidateHRP(c.HRP); err != nil {
			return fmt.Errorf("pubkeyconverter: %w", err)
		}
	case TypeHex:
	default:
		return errors.WithContext(ErrUnknownType, c.Type)
	}
	return nil
}

// New creates a new public key converter from the given configuration. The
// codec is used by the bech32 converter only.
func New(cfg Config, codec bech32.Codec) (PubkeyConverter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case TypeBech32:
		return NewBech32PubkeyConverter(cfg.Length, cfg.HRP, codec)
	default:
		return NewHexPubkeyConverter(cfg.Length)
	}
}

func checkLength(pkBytes []byte, expected int) error {
	if len(pkBytes) != expected {
		return errors.WithContext(ErrInvalidLength,
			fmt.Sprintf("expected: %d, actual: %d", expected, len(pkBytes)),
		)
	}
	return nil
}

func silentEncode(c PubkeyConverter, pkBytes []byte, logger *logging.Logger) string {
	encoded, err := c.Encode(pkBytes)
	if err != nil {
		if logger == nil {
			return ""
		}
		logger.Warn("failed to encode public key",
			"err", err,
			"pk_len", len(pkBytes),
		)
		return ""
	}
	return encoded
}

func encodeSlice(c PubkeyConverter, pkBytesSlice [][]byte) ([]string, error) {
	var result *multierror.Error
	encoded := make([]string, 0, len(pkBytesSlice))
	for i, pkBytes := range pkBytesSlice {
		text, err := c.Encode(pkBytes)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("key %d: %w", i, err))
			continue
		}
		encoded = append(encoded, text)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return encoded, nil
}
