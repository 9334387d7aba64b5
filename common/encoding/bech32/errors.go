package bech32

import (
	"fmt"

	"github.com/multiversx/mx-chain-sovereign-go/common/errors"
)

// ModuleName is the module name used for coded errors of this package.
const ModuleName = "bech32"

// ErrMalformed is the error every FormatError unwraps to.
var ErrMalformed = errors.New(ModuleName, 1, "bech32: malformed string")

// Kind classifies a FormatError.
type Kind uint8

const (
	// KindInvalidLength is an empty string or one exceeding the maximum length.
	KindInvalidLength Kind = iota + 1
	// KindInvalidCharacter is a character outside of the printable ASCII
	// range, or a data character outside of the charset.
	KindInvalidCharacter
	// KindMixedCase is a string with both lower and upper case characters.
	KindMixedCase
	// KindInvalidSeparator is a missing or misplaced separator.
	KindInvalidSeparator
	// KindInvalidChecksum is a checksum that does not verify.
	KindInvalidChecksum
	// KindInvalidPadding is a data part that does not regroup into bytes.
	KindInvalidPadding
	// KindInvalidHRP is a human readable part that cannot be encoded.
	KindInvalidHRP
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidLength:
		return "invalid length"
	case KindInvalidCharacter:
		return "invalid character"
	case KindMixedCase:
		return "mixed case"
	case KindInvalidSeparator:
		return "invalid separator"
	case KindInvalidChecksum:
		return "invalid checksum"
	case KindInvalidPadding:
		return "invalid padding"
	case KindInvalidHRP:
		return "invalid human readable part"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// FormatError is the error returned when Bech32 text, or the input to
// encode, is malformed.
type FormatError struct {
	Kind Kind
	// Position is the offending byte index into the input, or -1.
	Position int
	Detail   string
}

func (e *FormatError) Error() string {
	msg := "bech32: " + e.Kind.String()
	if e.Position >= 0 {
		msg += fmt.Sprintf(" at position %d", e.Position)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns ErrMalformed.
func (e *FormatError) Unwrap() error {
	return ErrMalformed
}

func newFormatError(kind Kind, pos int, format string, args ...interface{}) *FormatError {
	return &FormatError{
		Kind:     kind,
		Position: pos,
		Detail:   fmt.Sprintf(format, args...),
	}
}
