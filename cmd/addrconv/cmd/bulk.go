package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	cmdCommon "github.com/multiversx/mx-chain-sovereign-go/cmd/addrconv/cmd/common"
	"github.com/multiversx/mx-chain-sovereign-go/common/encoding/bech32"
	"github.com/multiversx/mx-chain-sovereign-go/common/logging"
)

const (
	cfgInput = "input"

	stdinInput = "-"
)

var (
	bulkCmd = &cobra.Command{
		Use:   "bulk <new-hrp>",
		Short: "re-encode one address per input line under a different human readable part",
		Args:  cobra.ExactArgs(1),
		RunE:  doBulk,
	}

	bulkFlags = flag.NewFlagSet("", flag.ContinueOnError)

	bulkLogger = logging.GetLogger("cmd/bulk")
)

func doBulk(cmd *cobra.Command, args []string) error {
	cfg, err := cmdCommon.Init(cmd)
	if err != nil {
		return err
	}

	input, err := cmd.Flags().GetString(cfgInput)
	if err != nil {
		return err
	}

	var r io.Reader
	switch input {
	case stdinInput, "":
		r = cmd.InOrStdin()
	default:
		f, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	return convertAll(cfg.Codec.Codec(), r, cmd.OutOrStdout(), args[0])
}

// convertAll converts every address read from r, writing the results to w.
// Blank lines and lines starting with '#' are skipped. All lines are tried,
// failures are reported together.
func convertAll(codec bech32.Codec, r io.Reader, w io.Writer, rawHRP string) error {
	var (
		result *multierror.Error
		lineNo int
		failed int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		converted, err := convertAddress(codec, line, rawHRP)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("line %d: %w", lineNo, err))
			failed++
			continue
		}
		if _, err = fmt.Fprintln(w, converted); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, fmt.Errorf("failed to read input: %w", err))
	}

	bulkLogger.Debug("processed input",
		"lines", lineNo,
		"failed", failed,
	)

	if result != nil {
		result.ErrorFormat = formatErrorList
	}
	return result.ErrorOrNil()
}

func formatErrorList(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d address(es) failed: %s", len(errs), strings.Join(msgs, "; "))
}

func registerBulkCmd(parentCmd *cobra.Command) {
	bulkFlags.StringP(cfgInput, "i", stdinInput, "input file, '-' reads standard input")
	bulkCmd.Flags().AddFlagSet(bulkFlags)

	parentCmd.AddCommand(bulkCmd)
}
