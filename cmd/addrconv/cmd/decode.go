package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	cmdCommon "github.com/multiversx/mx-chain-sovereign-go/cmd/addrconv/cmd/common"
	"github.com/multiversx/mx-chain-sovereign-go/common/crypto/address"
)

const (
	cfgVerbose = "verbose"
	cfgJSON    = "json"
)

var (
	decodeCmd = &cobra.Command{
		Use:   "decode <bech32-address>",
		Short: "print the public key wrapped by an address",
		Args:  cobra.ExactArgs(1),
		RunE:  doDecode,
	}

	decodeFlags = flag.NewFlagSet("", flag.ContinueOnError)
)

type decodedAddress struct {
	HRP       string `json:"hrp"`
	PublicKey string `json:"public_key"`
	Address   string `json:"address"`
}

func doDecode(cmd *cobra.Command, args []string) error {
	cfg, err := cmdCommon.Init(cmd)
	if err != nil {
		return err
	}

	codec := cfg.Codec.Codec()
	addr, err := address.ParseWithCodec(codec, args[0])
	if err != nil {
		return err
	}
	text, err := addr.ToBech32WithCodec(codec)
	if err != nil {
		return err
	}
	decoded := decodedAddress{
		HRP:       addr.HRP().String(),
		PublicKey: addr.PublicKey().String(),
		Address:   text,
	}

	w := cmd.OutOrStdout()
	flags := cmd.Flags()
	switch {
	case mustGetBool(flags, cfgJSON):
		raw, err := cmdCommon.PrettyJSONMarshal(decoded)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(raw))
		return err
	case mustGetBool(flags, cfgVerbose):
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"HRP", "Public key", "Address"})
		table.Append([]string{decoded.HRP, decoded.PublicKey, decoded.Address})
		table.Render()
		return nil
	default:
		_, err = fmt.Fprintln(w, decoded.PublicKey)
		return err
	}
}

func mustGetBool(flags *flag.FlagSet, name string) bool {
	v, err := flags.GetBool(name)
	if err != nil {
		panic(err)
	}
	return v
}

func registerDecodeCmd(parentCmd *cobra.Command) {
	decodeFlags.BoolP(cfgVerbose, "v", false, "print a table with every address component")
	decodeFlags.Bool(cfgJSON, false, "print the address components as JSON")
	decodeCmd.Flags().AddFlagSet(decodeFlags)

	parentCmd.AddCommand(decodeCmd)
}
