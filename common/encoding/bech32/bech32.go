// Package bech32 provides implementation of Bech32 encoding specified in
// BIP 173: https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki.
//
// Unlike the reference implementation the maximum length of the encoded
// string is a property of the Codec, since account addresses wrapping longer
// payloads do not fit into the conventional 90 characters.
package bech32

import (
	"fmt"
	"strings"

	btcBech32 "github.com/btcsuite/btcutil/bech32"
)

const (
	// Charset is the Bech32 data character set, indexed by 5-bit value.
	Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	// Separator separates the human readable part from the data part.
	Separator = '1'
	// ChecksumLength is the number of checksum characters.
	ChecksumLength = 6
	// DefaultMaxLength is the BIP 173 limit on the length of the whole string.
	DefaultMaxLength = 90

	minHRPChar = 33
	maxHRPChar = 126
)

var (
	generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

	charsetRev [128]int8
)

// DefaultCodec returns the codec enforcing the BIP 173 length limit.
func DefaultCodec() Codec {
	return Codec{MaxLength: DefaultMaxLength}
}

// Codec encodes and decodes Bech32 strings.
//
// A MaxLength of zero or less disables the length check.
type Codec struct {
	MaxLength int
}

// NewCodec creates a new codec with the given maximum string length.
func NewCodec(maxLength int) Codec {
	return Codec{MaxLength: maxLength}
}

// Encode encodes 8-bits per byte byte-slice to a Bech32-encoded string using
// the default codec.
func Encode(hrp string, payload []byte) (string, error) {
	return DefaultCodec().Encode(hrp, payload)
}

// Decode decodes a Bech32-encoded string to its human readable part and
// 8-bits per byte byte-slice using the default codec.
func Decode(text string) (string, []byte, error) {
	return DefaultCodec().Decode(text)
}

// ValidateHRP checks that the human readable part is non-empty, consists of
// printable ASCII characters only and is not mixed case.
func ValidateHRP(hrp string) error {
	if len(hrp) == 0 {
		return newFormatError(KindInvalidHRP, -1, "empty human readable part")
	}

	var hasLower, hasUpper bool
	for i := 0; i < len(hrp); i++ {
		c := hrp[i]
		if c < minHRPChar || c > maxHRPChar {
			return newFormatError(KindInvalidHRP, i, "byte 0x%02x out of range", c)
		}
		hasLower = hasLower || (c >= 'a' && c <= 'z')
		hasUpper = hasUpper || (c >= 'A' && c <= 'Z')
	}
	if hasLower && hasUpper {
		return newFormatError(KindInvalidHRP, -1, "mixed case human readable part '%s'", hrp)
	}

	return nil
}

// Encode encodes 8-bits per byte byte-slice to a Bech32-encoded string.
//
// The human readable part is lowercased, as is the whole output.
func (c Codec) Encode(hrp string, payload []byte) (string, error) {
	if err := ValidateHRP(hrp); err != nil {
		return "", err
	}
	hrp = strings.ToLower(hrp)

	data, err := btcBech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("bech32: regrouping payload failed: %w", err)
	}

	total := len(hrp) + 1 + len(data) + ChecksumLength
	if c.MaxLength > 0 && total > c.MaxLength {
		return "", newFormatError(KindInvalidLength, -1,
			"encoded length %d exceeds maximum %d", total, c.MaxLength,
		)
	}

	var sb strings.Builder
	sb.Grow(total)
	sb.WriteString(hrp)
	sb.WriteByte(Separator)
	for _, v := range data {
		sb.WriteByte(Charset[v])
	}
	for _, v := range createChecksum(hrp, data) {
		sb.WriteByte(Charset[v])
	}

	return sb.String(), nil
}

// Decode decodes a Bech32-encoded string to its (lowercase) human readable
// part and 8-bits per byte byte-slice.
func (c Codec) Decode(text string) (string, []byte, error) {
	switch {
	case len(text) == 0:
		return "", nil, newFormatError(KindInvalidLength, -1, "empty string")
	case c.MaxLength > 0 && len(text) > c.MaxLength:
		return "", nil, newFormatError(KindInvalidLength, -1,
			"length %d exceeds maximum %d", len(text), c.MaxLength,
		)
	}

	var hasLower, hasUpper bool
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch < minHRPChar || ch > maxHRPChar {
			return "", nil, newFormatError(KindInvalidCharacter, i, "byte 0x%02x out of range", ch)
		}
		hasLower = hasLower || (ch >= 'a' && ch <= 'z')
		hasUpper = hasUpper || (ch >= 'A' && ch <= 'Z')
	}
	if hasLower && hasUpper {
		return "", nil, newFormatError(KindMixedCase, -1, "string not all lowercase or all uppercase")
	}
	text = strings.ToLower(text)

	// The human readable part may itself contain the separator.
	sep := strings.LastIndexByte(text, Separator)
	switch {
	case sep < 0:
		return "", nil, newFormatError(KindInvalidSeparator, -1, "separator '1' not found")
	case sep == 0:
		return "", nil, newFormatError(KindInvalidSeparator, sep, "empty human readable part")
	case len(text)-sep-1 < ChecksumLength:
		return "", nil, newFormatError(KindInvalidSeparator, sep, "data part shorter than checksum")
	}

	hrp := text[:sep]
	data := make([]byte, 0, len(text)-sep-1)
	for i := sep + 1; i < len(text); i++ {
		v := charsetRev[text[i]]
		if v < 0 {
			return "", nil, newFormatError(KindInvalidCharacter, i, "'%c' not part of charset", text[i])
		}
		data = append(data, byte(v))
	}

	payload5 := data[:len(data)-ChecksumLength]
	if !verifyChecksum(hrp, data) {
		return "", nil, newFormatError(KindInvalidChecksum, len(text)-ChecksumLength,
			"expected %s, got %s", toChars(createChecksum(hrp, payload5)), text[len(text)-ChecksumLength:],
		)
	}

	payload, err := btcBech32.ConvertBits(payload5, 5, 8, false)
	if err != nil {
		return "", nil, newFormatError(KindInvalidPadding, -1, "%v", err)
	}
	if payload == nil {
		payload = []byte{}
	}

	return hrp, payload, nil
}

func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i, g := range generator {
			if (top>>uint(i))&1 == 1 {
				chk ^= g
			}
		}
	}
	return chk
}

func hrpExpand(hrp string) []byte {
	ret := make([]byte, 0, 2*len(hrp)+1)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]>>5)
	}
	ret = append(ret, 0)
	for i := 0; i < len(hrp); i++ {
		ret = append(ret, hrp[i]&31)
	}
	return ret
}

func verifyChecksum(hrp string, data []byte) bool {
	return polymod(append(hrpExpand(hrp), data...)) == 1
}

func createChecksum(hrp string, data []byte) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, make([]byte, ChecksumLength)...)
	mod := polymod(values) ^ 1

	checksum := make([]byte, ChecksumLength)
	for i := range checksum {
		checksum[i] = byte(mod>>uint(5*(ChecksumLength-1-i))) & 31
	}
	return checksum
}

func toChars(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, v := range data {
		sb.WriteByte(Charset[v])
	}
	return sb.String()
}

func init() {
	for i := range charsetRev {
		charsetRev[i] = -1
	}
	for i := 0; i < len(Charset); i++ {
		charsetRev[Charset[i]] = int8(i)
	}
}
