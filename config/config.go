// Package config implements the configuration of the address tools.
package config

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/multiversx/mx-chain-sovereign-go/common/crypto/address"
	"github.com/multiversx/mx-chain-sovereign-go/common/crypto/pubkeyconverter"
	"github.com/multiversx/mx-chain-sovereign-go/common/encoding/bech32"
	"github.com/multiversx/mx-chain-sovereign-go/common/logging"
)

// Config is the top-level configuration structure.
type Config struct {
	Codec  CodecConfig            `mapstructure:"codec"`
	Pubkey pubkeyconverter.Config `mapstructure:"pubkey"`
	Log    LogConfig              `mapstructure:"log"`
}

// CodecConfig is the Bech32 codec configuration.
type CodecConfig struct {
	// MaxLength is the maximum length of Bech32 strings, 0 disables the check.
	MaxLength int `mapstructure:"max_length"`
}

// LogConfig is the logging configuration.
type LogConfig struct {
	// File is the log file, standard error is used when empty.
	File string `mapstructure:"file"`
	// Format is the log format (logfmt or JSON).
	Format string `mapstructure:"format"`
	// Level is the default log level (under the "default" key) plus
	// per-module log levels. A plain string sets the default level.
	Level LogLevels `mapstructure:"level"`
}

// DefaultLogLevelKey is the LogLevels key holding the default log level.
const DefaultLogLevelKey = "default"

// LogLevels maps module name prefixes to log levels.
type LogLevels map[string]string

// Parse returns the default log level and the per-module log levels.
func (l LogLevels) Parse() (logging.Level, map[string]logging.Level, error) {
	var defaultLvl logging.Level
	raw, ok := l[DefaultLogLevelKey]
	if !ok {
		return defaultLvl, nil, fmt.Errorf("missing '%s' log level", DefaultLogLevelKey)
	}
	if err := defaultLvl.Set(raw); err != nil {
		return defaultLvl, nil, err
	}

	moduleLvls := make(map[string]logging.Level)
	for module, v := range l {
		if module == DefaultLogLevelKey {
			continue
		}

		var lvl logging.Level
		if err := lvl.Set(v); err != nil {
			return defaultLvl, nil, fmt.Errorf("module '%s': %w", module, err)
		}
		moduleLvls[module] = lvl
	}
	return defaultLvl, moduleLvls, nil
}

// stringToLogLevelsHook decodes a plain log level into LogLevels.
func stringToLogLevelsHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(LogLevels{}) {
		return data, nil
	}
	return LogLevels{DefaultLogLevelKey: data.(string)}, nil
}

// Codec returns the Bech32 codec described by the configuration.
func (c *CodecConfig) Codec() bech32.Codec {
	return bech32.NewCodec(c.MaxLength)
}

// Validate validates the configuration settings.
func (c *CodecConfig) Validate() error {
	if c.MaxLength < 0 {
		return fmt.Errorf("max_length must not be negative: %d", c.MaxLength)
	}
	return nil
}

// Validate validates the configuration settings.
func (c *LogConfig) Validate() error {
	if _, _, err := c.Level.Parse(); err != nil {
		return err
	}
	var format logging.Format
	return format.Set(c.Format)
}

// Validate validates the configuration settings, reporting every invalid
// section.
func (c *Config) Validate() error {
	var err error
	if cerr := c.Codec.Validate(); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("codec: %w", cerr))
	}
	if perr := c.Pubkey.Validate(); perr != nil {
		err = multierr.Append(err, fmt.Errorf("pubkey: %w", perr))
	}
	if lerr := c.Log.Validate(); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("log: %w", lerr))
	}
	return err
}

// DefaultConfig returns the default configuration settings.
func DefaultConfig() Config {
	return Config{
		Codec: CodecConfig{
			MaxLength: bech32.DefaultMaxLength,
		},
		Pubkey: pubkeyconverter.Config{
			Length: address.PublicKeySize,
			Type:   pubkeyconverter.TypeBech32,
			HRP:    address.DefaultBech32HRP.String(),
		},
		Log: LogConfig{
			Format: "logfmt",
			Level: LogLevels{
				DefaultLogLevelKey: "WARN",
			},
		},
	}
}

// SetDefaults registers the default configuration settings with viper.
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("codec.max_length", def.Codec.MaxLength)
	v.SetDefault("pubkey.length", def.Pubkey.Length)
	v.SetDefault("pubkey.type", def.Pubkey.Type)
	v.SetDefault("pubkey.hrp", def.Pubkey.HRP)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.level", def.Log.Level[DefaultLogLevelKey])
}

// Load builds the configuration from viper (defaults, config file,
// environment and flags) and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToLogLevelsHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("config: failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
