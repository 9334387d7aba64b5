// Package common implements common things used across the addrconv
// sub-commands.
package common

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/multiversx/mx-chain-sovereign-go/config"
)

const (
	// CfgConfigFile is the flag used to specify a config file.
	CfgConfigFile = "config"
	// CfgCodecMaxLength configures the maximum Bech32 string length.
	CfgCodecMaxLength = "codec.max_length"

	envPrefix = "ADDRCONV"
)

// RootFlags has the flags that are common across all commands.
var RootFlags = flag.NewFlagSet("", flag.ContinueOnError)

// Init loads the configuration for the given command from (in order of
// precedence) its flags, the environment, the config file and the defaults,
// and initializes logging.
func Init(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	if cfgFile := v.GetString(CfgConfigFile); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", cfgFile, err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	if err = initLogging(&cfg.Log); err != nil {
		return nil, err
	}

	return cfg, nil
}

func init() {
	def := config.DefaultConfig()

	RootFlags.String(CfgConfigFile, "", "config file")
	RootFlags.Int(CfgCodecMaxLength, def.Codec.MaxLength, "maximum Bech32 string length (0 disables the limit)")
}
