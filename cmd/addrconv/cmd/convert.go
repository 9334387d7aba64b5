package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdCommon "github.com/multiversx/mx-chain-sovereign-go/cmd/addrconv/cmd/common"
	"github.com/multiversx/mx-chain-sovereign-go/common/crypto/address"
	"github.com/multiversx/mx-chain-sovereign-go/common/encoding/bech32"
	"github.com/multiversx/mx-chain-sovereign-go/common/logging"
)

var (
	convertCmd = &cobra.Command{
		Use:   "convert <bech32-address> <new-hrp>",
		Short: "re-encode an address under a different human readable part",
		Args:  cobra.ExactArgs(2),
		RunE:  doConvert,
	}

	convertLogger = logging.GetLogger("cmd/convert")
)

func doConvert(cmd *cobra.Command, args []string) error {
	cfg, err := cmdCommon.Init(cmd)
	if err != nil {
		return err
	}

	converted, err := convertAddress(cfg.Codec.Codec(), args[0], args[1])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), converted)
	return err
}

// convertAddress parses the Bech32 address and re-encodes its public key
// under the new human readable part.
func convertAddress(codec bech32.Codec, text, rawHRP string) (string, error) {
	hrp, err := address.NewBech32HRP(rawHRP)
	if err != nil {
		return "", fmt.Errorf("invalid human readable part '%s': %w", rawHRP, err)
	}

	addr, err := address.ParseWithCodec(codec, text)
	if err != nil {
		return "", err
	}

	converted, err := addr.WithPrefix(hrp).ToBech32WithCodec(codec)
	if err != nil {
		return "", err
	}

	convertLogger.Debug("converted address",
		"from", addr.HRP(),
		"to", hrp,
		"public_key", addr.PublicKey(),
	)

	return converted, nil
}

func registerConvertCmd(parentCmd *cobra.Command) {
	parentCmd.AddCommand(convertCmd)
}
