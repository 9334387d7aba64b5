// Package address implements account addresses: a public key together with
// the human readable part used when rendering it as Bech32 text.
package address

import (
	"encoding"
	"fmt"

	"github.com/multiversx/mx-chain-sovereign-go/common/encoding/bech32"
)

// ModuleName is the module name used for coded errors of this package.
const ModuleName = "address"

var (
	_ encoding.TextMarshaler   = Address{}
	_ encoding.TextUnmarshaler = (*Address)(nil)
	_ fmt.Stringer             = Address{}
)

// Address is an account public key and its human readable part.
//
// Address is a value type, none of its methods modify it.
type Address struct {
	pk  PublicKey
	hrp Bech32HRP
}

// NewAddress creates a new address.
func NewAddress(pk PublicKey, hrp Bech32HRP) Address {
	return Address{
		pk:  pk,
		hrp: hrp,
	}
}

// Parse decodes a Bech32-encoded address using the default codec.
func Parse(text string) (Address, error) {
	return ParseWithCodec(bech32.DefaultCodec(), text)
}

// ParseWithCodec decodes a Bech32-encoded address using the given codec.
func ParseWithCodec(codec bech32.Codec, text string) (Address, error) {
	hrp, payload, err := codec.Decode(text)
	if err != nil {
		return Address{}, fmt.Errorf("address: decoding from bech32 failed: %w", err)
	}

	pk, err := NewPublicKey(payload)
	if err != nil {
		return Address{}, err
	}

	// Decode only ever returns valid lowercase human readable parts.
	return NewAddress(pk, Bech32HRP(hrp)), nil
}

// PublicKey returns the public key of the address.
func (a Address) PublicKey() PublicKey {
	return a.pk
}

// HRP returns the human readable part of the address.
func (a Address) HRP() Bech32HRP {
	return a.hrp
}

// WithPrefix returns a copy of the address with the human readable part
// replaced.
func (a Address) WithPrefix(hrp Bech32HRP) Address {
	return NewAddress(a.pk, hrp)
}

// ToBech32 encodes the address into Bech32 text using the default codec.
func (a Address) ToBech32() (string, error) {
	return a.ToBech32WithCodec(bech32.DefaultCodec())
}

// ToBech32WithCodec encodes the address into Bech32 text using the given
// codec.
func (a Address) ToBech32WithCodec(codec bech32.Codec) (string, error) {
	text, err := codec.Encode(a.hrp.String(), a.pk[:])
	if err != nil {
		return "", fmt.Errorf("address: encoding to bech32 failed: %w", err)
	}
	return text, nil
}

// Equal compares vs another address for equality.
func (a Address) Equal(cmp Address) bool {
	return a.hrp == cmp.hrp && a.pk.Equal(cmp.pk)
}

// MarshalText encodes an address into Bech32 text form.
func (a Address) MarshalText() ([]byte, error) {
	text, err := a.ToBech32()
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalText decodes a Bech32 text marshaled address.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// String returns the Bech32 representation of the address.
func (a Address) String() string {
	text, err := a.ToBech32()
	if err != nil {
		return "[malformed]: " + a.hrp.String() + ":" + a.pk.String()
	}
	return text
}
