// Package cmd implements the commands for the addrconv executable.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	cmdCommon "github.com/multiversx/mx-chain-sovereign-go/cmd/addrconv/cmd/common"
)

var rootCmd = &cobra.Command{
	Use:           "addrconv",
	Short:         "account address conversion utilities",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// RootCommand returns the root (top level) cobra.Command.
func RootCommand() *cobra.Command {
	return rootCmd
}

// Execute spawns the main entry point after handling the config file
// and command line arguments.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", rootCmd.Name(), errorLine(err)) // nolint: errcheck
		os.Exit(1)
	}
}

// errorLine renders err as a single line diagnostic.
func errorLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}

func init() {
	rootCmd.PersistentFlags().AddFlagSet(cmdCommon.RootFlags)

	// Register all of the sub-commands.
	for _, v := range []func(*cobra.Command){
		registerConvertCmd,
		registerDecodeCmd,
		registerEncodeCmd,
		registerBulkCmd,
	} {
		v(rootCmd)
	}
}
