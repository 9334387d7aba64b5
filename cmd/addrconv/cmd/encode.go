package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	cmdCommon "github.com/multiversx/mx-chain-sovereign-go/cmd/addrconv/cmd/common"
	"github.com/multiversx/mx-chain-sovereign-go/common/crypto/pubkeyconverter"
	"github.com/multiversx/mx-chain-sovereign-go/config"
)

const (
	cfgPubkeyHRP  = "pubkey.hrp"
	cfgPubkeyType = "pubkey.type"
)

var (
	encodeCmd = &cobra.Command{
		Use:   "encode <hex-public-key>",
		Short: "render a raw public key as an address",
		Args:  cobra.ExactArgs(1),
		RunE:  doEncode,
	}

	encodeFlags = flag.NewFlagSet("", flag.ContinueOnError)
)

func doEncode(cmd *cobra.Command, args []string) error {
	cfg, err := cmdCommon.Init(cmd)
	if err != nil {
		return err
	}

	hexConverter, err := pubkeyconverter.NewHexPubkeyConverter(cfg.Pubkey.Length)
	if err != nil {
		return err
	}
	pk, err := hexConverter.Decode(args[0])
	if err != nil {
		return err
	}

	converter, err := pubkeyconverter.New(cfg.Pubkey, cfg.Codec.Codec())
	if err != nil {
		return err
	}
	encoded, err := converter.Encode(pk)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return err
}

func registerEncodeCmd(parentCmd *cobra.Command) {
	def := config.DefaultConfig()

	encodeFlags.String(cfgPubkeyHRP, def.Pubkey.HRP, "human readable part of the address")
	encodeFlags.String(cfgPubkeyType, def.Pubkey.Type, "output representation [bech32,hex]")
	encodeCmd.Flags().AddFlagSet(encodeFlags)

	parentCmd.AddCommand(encodeCmd)
}
