package address

import (
	"bytes"
	"encoding"
	"encoding/hex"
	"fmt"

	"github.com/multiversx/mx-chain-sovereign-go/common/errors"
)

// PublicKeySize is the size of an account public key in bytes.
const PublicKeySize = 32

var (
	// ErrInvalidKeyLength is the error every InvalidKeyLengthError unwraps to.
	ErrInvalidKeyLength = errors.New(ModuleName, 1, "address: invalid public key length")

	_ encoding.BinaryMarshaler   = PublicKey{}
	_ encoding.BinaryUnmarshaler = (*PublicKey)(nil)
)

// InvalidKeyLengthError is the error returned when a public key is
// constructed from a byte slice of the wrong size.
type InvalidKeyLengthError struct {
	Expected int
	Actual   int
}

func (e *InvalidKeyLengthError) Error() string {
	return fmt.Sprintf("address: invalid public key length (expected: %d, actual: %d)", e.Expected, e.Actual)
}

// Unwrap returns ErrInvalidKeyLength.
func (e *InvalidKeyLengthError) Unwrap() error {
	return ErrInvalidKeyLength
}

// PublicKey is an account public key.
type PublicKey [PublicKeySize]byte

// NewPublicKey creates a public key from a copy of the given bytes.
func NewPublicKey(data []byte) (PublicKey, error) {
	var k PublicKey
	if err := k.UnmarshalBinary(data); err != nil {
		return PublicKey{}, err
	}
	return k, nil
}

// MarshalBinary encodes a public key into binary form.
func (k PublicKey) MarshalBinary() (data []byte, err error) {
	data = append([]byte{}, k[:]...)
	return
}

// UnmarshalBinary decodes a binary marshaled public key.
func (k *PublicKey) UnmarshalBinary(data []byte) error {
	if len(data) != PublicKeySize {
		return &InvalidKeyLengthError{Expected: PublicKeySize, Actual: len(data)}
	}

	copy(k[:], data)

	return nil
}

// UnmarshalHex decodes a hexadecimal text string into the public key.
func (k *PublicKey) UnmarshalHex(text string) error {
	b, err := hex.DecodeString(text)
	if err != nil {
		return fmt.Errorf("address: malformed hex public key: %w", err)
	}

	return k.UnmarshalBinary(b)
}

// Bytes returns a copy of the public key bytes.
func (k PublicKey) Bytes() []byte {
	data, _ := k.MarshalBinary()
	return data
}

// Equal compares vs another public key for equality.
func (k PublicKey) Equal(cmp PublicKey) bool {
	return bytes.Equal(k[:], cmp[:])
}

// String returns the hex representation of the public key.
func (k PublicKey) String() string {
	return hex.EncodeToString(k[:])
}
