package address

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/multiversx/mx-chain-sovereign-go/common/encoding/bech32"
	cmnErrors "github.com/multiversx/mx-chain-sovereign-go/common/errors"
)

const (
	testAddress       = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
	testAddressPubKey = "0139472eff6886771a982f3083da5d421f24c29181e63888228dc81ca60d69e1"
	testAddressAsTest = "test1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ss5hqhtr"

	// Valid Bech32, but wrapping a 20 byte payload.
	testShortAddress = "erd1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnmxwrf2"
)

func TestParse(t *testing.T) {
	require := require.New(t)

	addr, err := Parse(testAddress)
	require.NoError(err, "parsing a valid address should work")
	require.Equal(DefaultBech32HRP, addr.HRP())
	require.Equal(testAddressPubKey, addr.PublicKey().String())

	upper, err := Parse(strings.ToUpper(testAddress))
	require.NoError(err, "parsing an uppercase address should work")
	require.True(addr.Equal(upper), "uppercase and lowercase forms should parse to the same address")

	text, err := addr.ToBech32()
	require.NoError(err)
	require.Equal(testAddress, text)
	require.Equal(testAddress, addr.String())
}

func TestParseInvalid(t *testing.T) {
	require := require.New(t)

	_, err := Parse(testShortAddress)
	require.Error(err, "parsing an address with a short payload should fail")
	require.True(errors.Is(err, ErrInvalidKeyLength))
	var kle *InvalidKeyLengthError
	require.True(errors.As(err, &kle))
	require.Equal(PublicKeySize, kle.Expected)
	require.Equal(20, kle.Actual)
	module, code := cmnErrors.Code(err)
	require.Equal(ModuleName, module)
	require.EqualValues(1, code)

	for _, text := range []string{
		"",
		"erdqyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th",
		testAddress[:len(testAddress)-1] + "q",
	} {
		_, err = Parse(text)
		require.Error(err, "parsing malformed text '%s' should fail", text)
		require.True(errors.Is(err, bech32.ErrMalformed), "failure should be a format error")
		require.False(errors.Is(err, ErrInvalidKeyLength))
	}
}

func TestWithPrefix(t *testing.T) {
	require := require.New(t)

	addr, err := Parse(testAddress)
	require.NoError(err)

	hrp, err := NewBech32HRP("test")
	require.NoError(err)
	converted := addr.WithPrefix(hrp)
	require.Equal(DefaultBech32HRP, addr.HRP(), "original address should not be modified")
	require.Equal(hrp, converted.HRP())
	require.True(addr.PublicKey().Equal(converted.PublicKey()), "public key should be preserved")
	require.False(addr.Equal(converted))

	text, err := converted.ToBech32()
	require.NoError(err)
	require.Equal(testAddressAsTest, text)
	require.True(strings.HasPrefix(text, "test1"))

	reparsed, err := Parse(text)
	require.NoError(err)
	require.Equal(addr.PublicKey(), reparsed.PublicKey(), "decoded key should match the original")
	require.Equal(hrp, reparsed.HRP())

	back, err := reparsed.WithPrefix(DefaultBech32HRP).ToBech32()
	require.NoError(err)
	require.Equal(testAddress, back)
}

func TestToBech32WithCodec(t *testing.T) {
	require := require.New(t)

	addr, err := Parse(testAddress)
	require.NoError(err)

	longHRP, err := NewBech32HRP(strings.Repeat("x", 40))
	require.NoError(err)
	long := addr.WithPrefix(longHRP)

	_, err = long.ToBech32()
	require.Error(err, "default codec should enforce the length limit")
	require.True(errors.Is(err, bech32.ErrMalformed))
	require.True(strings.HasPrefix(long.String(), "[malformed]"))

	unlimited := bech32.NewCodec(0)
	text, err := long.ToBech32WithCodec(unlimited)
	require.NoError(err, "disabled length limit should allow long prefixes")

	_, err = Parse(text)
	require.Error(err, "default codec should reject the long address")
	reparsed, err := ParseWithCodec(unlimited, text)
	require.NoError(err)
	require.True(long.Equal(reparsed))
}

func TestZeroAddress(t *testing.T) {
	require := require.New(t)

	var addr Address
	_, err := addr.ToBech32()
	require.Error(err, "address without a human readable part should not encode")
	require.True(errors.Is(err, bech32.ErrMalformed))
}

func TestTextMarshaling(t *testing.T) {
	require := require.New(t)

	type account struct {
		Owner Address `json:"owner"`
	}

	var acct account
	err := json.Unmarshal([]byte(`{"owner":"`+testAddress+`"}`), &acct)
	require.NoError(err, "unmarshaling an address from JSON should work")
	require.Equal(testAddressPubKey, acct.Owner.PublicKey().String())

	raw, err := json.Marshal(acct)
	require.NoError(err)
	require.Equal(`{"owner":"`+testAddress+`"}`, string(raw))

	err = json.Unmarshal([]byte(`{"owner":"`+testShortAddress+`"}`), &acct)
	require.Error(err, "unmarshaling an invalid address should fail")
}

func TestNewBech32HRP(t *testing.T) {
	require := require.New(t)

	hrp, err := NewBech32HRP("TEST")
	require.NoError(err)
	require.Equal(Bech32HRP("test"), hrp, "human readable parts should be lowercased")

	for _, raw := range []string{"", "te st", "Test", "t\x00"} {
		_, err = NewBech32HRP(raw)
		require.Error(err, "'%s' should be rejected", raw)
		var fe *bech32.FormatError
		require.True(errors.As(err, &fe))
		require.Equal(bech32.KindInvalidHRP, fe.Kind)
	}
}
