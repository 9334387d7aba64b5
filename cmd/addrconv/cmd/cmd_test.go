package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/multiversx/mx-chain-sovereign-go/common/crypto/address"
	"github.com/multiversx/mx-chain-sovereign-go/common/encoding/bech32"
)

const (
	testAddress       = "erd1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ssycr6th"
	testAddressPubKey = "0139472eff6886771a982f3083da5d421f24c29181e63888228dc81ca60d69e1"
	testAddressAsTest = "test1qyu5wthldzr8wx5c9ucg8kjagg0jfs53s8nr3zpz3hypefsdd8ss5hqhtr"

	testShortAddress = "erd1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnmxwrf2"
)

var testLogFile string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "addrconv-test")
	if err != nil {
		panic(err)
	}

	// Logging is initialized once per process, by the first command run.
	testLogFile = filepath.Join(dir, "addrconv.log")
	cfgFile := filepath.Join(dir, "logging.yaml")
	cfg := "log:\n" +
		"  file: " + testLogFile + "\n" +
		"  level:\n" +
		"    default: warn\n" +
		"    cmd/convert: debug\n"
	if err = os.WriteFile(cfgFile, []byte(cfg), 0o600); err != nil {
		panic(err)
	}
	if _, err = runCommand("", "decode", "--config", cfgFile, testAddress); err != nil {
		panic(err)
	}

	code := m.Run()
	os.RemoveAll(dir) // nolint: errcheck
	os.Exit(code)
}

// longHRP makes re-encoded 32 byte keys exceed the default maximum length.
var longHRP = strings.Repeat("x", 32)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func runCommand(stdin string, args ...string) (string, error) {
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func requireLongAddress(require *require.Assertions, out string) {
	text := strings.TrimSpace(out)
	require.Len(text, len(longHRP)+1+52+bech32.ChecksumLength)
	require.True(strings.HasPrefix(text, longHRP+"1"))

	addr, err := address.ParseWithCodec(bech32.NewCodec(0), text)
	require.NoError(err, "re-encoded address should parse with the limit disabled")
	require.Equal(testAddressPubKey, addr.PublicKey().String())
}

func TestConvert(t *testing.T) {
	require := require.New(t)

	out, err := runCommand("", "convert", testAddress, "test")
	require.NoError(err, "convert")
	require.Equal(testAddressAsTest+"\n", out)

	out, err = runCommand("", "convert", strings.ToUpper(testAddress), "TEST")
	require.NoError(err, "convert uppercase")
	require.Equal(testAddressAsTest+"\n", out, "output should always be lowercase")

	out, err = runCommand("", "convert", testAddressAsTest, "erd")
	require.NoError(err, "convert back")
	require.Equal(testAddress+"\n", out)
}

func TestConvertErrors(t *testing.T) {
	require := require.New(t)

	corrupted := testAddress[:len(testAddress)-1] + "q"
	out, err := runCommand("", "convert", corrupted, "test")
	require.Error(err, "checksum mismatch")
	require.True(errors.Is(err, bech32.ErrMalformed))
	require.Empty(out, "nothing should be printed on failure")

	_, err = runCommand("", "convert", testShortAddress, "test")
	require.Error(err, "short public key")
	require.True(errors.Is(err, address.ErrInvalidKeyLength))

	_, err = runCommand("", "convert", testAddress, "TeSt")
	require.Error(err, "mixed case human readable part")
	require.True(errors.Is(err, bech32.ErrMalformed))

	_, err = runCommand("", "convert", testAddress)
	require.Error(err, "missing argument")

	_, err = runCommand("", "convert", testAddress, longHRP)
	require.Error(err, "result over the default maximum length")
	require.True(errors.Is(err, bech32.ErrMalformed))
}

func TestConvertMaxLength(t *testing.T) {
	require := require.New(t)

	out, err := runCommand("", "convert", "--codec.max_length", "0", testAddress, longHRP)
	require.NoError(err, "limit disabled by flag")
	requireLongAddress(require, out)
}

func TestConvertMaxLengthFromEnv(t *testing.T) {
	require := require.New(t)
	t.Setenv("ADDRCONV_CODEC_MAX_LENGTH", "0")

	out, err := runCommand("", "convert", testAddress, longHRP)
	require.NoError(err, "limit disabled by environment")
	requireLongAddress(require, out)
}

func TestConvertMaxLengthFromConfigFile(t *testing.T) {
	require := require.New(t)

	cfgFile := filepath.Join(t.TempDir(), "addrconv.yaml")
	err := os.WriteFile(cfgFile, []byte("codec:\n  max_length: 0\n"), 0o600)
	require.NoError(err, "WriteFile")

	out, err := runCommand("", "convert", "--config", cfgFile, testAddress, longHRP)
	require.NoError(err, "limit disabled by config file")
	requireLongAddress(require, out)

	_, err = runCommand("", "convert", "--config", filepath.Join(t.TempDir(), "missing.yaml"), testAddress, "test")
	require.Error(err, "missing config file")
}

func TestDecode(t *testing.T) {
	require := require.New(t)

	out, err := runCommand("", "decode", strings.ToUpper(testAddress))
	require.NoError(err, "decode")
	require.Equal(testAddressPubKey+"\n", out)

	out, err = runCommand("", "decode", "--json", testAddress)
	require.NoError(err, "decode --json")
	var decoded decodedAddress
	require.NoError(json.Unmarshal([]byte(out), &decoded))
	require.Equal(decodedAddress{
		HRP:       "erd",
		PublicKey: testAddressPubKey,
		Address:   testAddress,
	}, decoded)

	out, err = runCommand("", "decode", "-v", testAddressAsTest)
	require.NoError(err, "decode --verbose")
	require.Contains(out, testAddressPubKey)
	require.Contains(out, testAddressAsTest)

	_, err = runCommand("", "decode", testShortAddress)
	require.True(errors.Is(err, address.ErrInvalidKeyLength))
}

func TestEncode(t *testing.T) {
	require := require.New(t)

	out, err := runCommand("", "encode", testAddressPubKey)
	require.NoError(err, "encode")
	require.Equal(testAddress+"\n", out)

	out, err = runCommand("", "encode", "--pubkey.hrp", "test", testAddressPubKey)
	require.NoError(err, "encode with hrp")
	require.Equal(testAddressAsTest+"\n", out)

	out, err = runCommand("", "encode", "--pubkey.type", "hex", strings.ToUpper(testAddressPubKey))
	require.NoError(err, "encode as hex")
	require.Equal(testAddressPubKey+"\n", out)

	_, err = runCommand("", "encode", testAddressPubKey[:40])
	require.Error(err, "short public key")

	_, err = runCommand("", "encode", "zz"+testAddressPubKey[2:])
	require.Error(err, "malformed hex")

	_, err = runCommand("", "encode", "--pubkey.type", "base58", testAddressPubKey)
	require.Error(err, "unknown converter type")
}

func TestBulk(t *testing.T) {
	require := require.New(t)

	input := strings.Join([]string{
		"# addresses to migrate",
		testAddress,
		"",
		testShortAddress,
		"  " + strings.ToUpper(testAddress) + "  ",
		"not-an-address",
	}, "\n")

	out, err := runCommand(input, "bulk", "test")
	require.Equal(testAddressAsTest+"\n"+testAddressAsTest+"\n", out, "valid lines should still be converted")
	require.Error(err, "invalid lines")
	require.True(errors.Is(err, address.ErrInvalidKeyLength))
	require.True(errors.Is(err, bech32.ErrMalformed))
	require.Contains(err.Error(), "2 address(es) failed")
	require.Contains(err.Error(), "line 4: ")
	require.Contains(err.Error(), "line 6: ")
	require.NotContains(err.Error(), "\n", "diagnostic should fit on one line")

	inputFile := filepath.Join(t.TempDir(), "addresses.txt")
	require.NoError(os.WriteFile(inputFile, []byte(testAddressAsTest+"\n"), 0o600))
	out, err = runCommand("", "bulk", "--input", inputFile, "erd")
	require.NoError(err, "bulk from file")
	require.Equal(testAddress+"\n", out)

	_, err = runCommand("", "bulk", "--input", filepath.Join(t.TempDir(), "missing.txt"), "erd")
	require.Error(err, "missing input file")
}

func TestModuleLogLevels(t *testing.T) {
	require := require.New(t)

	_, err := runCommand("", "convert", testAddress, "test")
	require.NoError(err, "convert")
	_, err = runCommand(testAddress+"\n", "bulk", "test")
	require.NoError(err, "bulk")

	raw, err := os.ReadFile(testLogFile)
	require.NoError(err, "ReadFile")
	logs := string(raw)
	require.Contains(logs, "module=cmd/convert", "debug messages of cmd/convert should be logged")
	require.Contains(logs, `msg="converted address"`)
	require.Contains(logs, "to=test")
	require.NotContains(logs, "module=cmd/bulk", "other modules should keep the default level")
}

func TestErrorLine(t *testing.T) {
	require := require.New(t)

	cfgFile := filepath.Join(t.TempDir(), "addrconv.yaml")
	err := os.WriteFile(cfgFile, []byte("codec:\n  max_length: many\n"), 0o600)
	require.NoError(err, "WriteFile")

	_, err = runCommand("", "convert", "--config", cfgFile, testAddress, "test")
	require.Error(err, "undecodable config file")
	require.Contains(err.Error(), "\n", "decoding errors span several lines")

	line := errorLine(err)
	require.NotContains(line, "\n", "diagnostic should fit on one line")
	require.Contains(line, "max_length")
}
