package common

import (
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/multiversx/mx-chain-sovereign-go/common/logging"
	"github.com/multiversx/mx-chain-sovereign-go/config"
)

const (
	cfgLogFile  = "log.file"
	cfgLogFmt   = "log.format"
	cfgLogLevel = "log.level"
)

var loggingFlags = flag.NewFlagSet("", flag.ContinueOnError)

func initLogging(cfg *config.LogConfig) error {
	// Commands may run more than once per process (tests), the first
	// initialization wins.
	if logging.IsInitialized() {
		return nil
	}

	// Per-module levels are only settable through the config file.
	logLevel, moduleLevels, err := cfg.Level.Parse()
	if err != nil {
		return err
	}
	var logFmt logging.Format
	if err = logFmt.Set(cfg.Format); err != nil {
		return err
	}

	// Standard output carries command results.
	var w io.Writer = os.Stderr
	if cfg.File != "" {
		if w, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err != nil {
			return err
		}
	}

	return logging.Initialize(w, logFmt, logLevel, moduleLevels)
}

func init() {
	logFmt := logging.FmtLogfmt
	logLevel := logging.LevelWarn

	loggingFlags.String(cfgLogFile, "", "log file")
	loggingFlags.Var(&logFmt, cfgLogFmt, "log format")
	loggingFlags.Var(&logLevel, cfgLogLevel, "log level")

	RootFlags.AddFlagSet(loggingFlags)
}
