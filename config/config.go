// Package config contains pluginaccount configuration definitions.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-pluginaccount/account/core"
	"github.com/spacemeshos/go-pluginaccount/filesystem"
)

const (
	defaultDataDirName = "pluginaccount"
	// StateFile is the name of the database file in the data directory.
	StateFile = "state.sql"
)

// Config defines the top level configuration.
type Config struct {
	BaseConfig `mapstructure:"main"`
	Limits     core.Limits  `mapstructure:"limits"`
	LOGGING    LoggerConfig `mapstructure:"logging"`
}

// BaseConfig defines the common options.
type BaseConfig struct {
	DataDir    string `mapstructure:"data-dir"`
	ConfigFile string `mapstructure:"config"`
	Preset     string `mapstructure:"preset"`

	// ChainID is the prefix of every signed message.
	ChainID    string `mapstructure:"chain-id"`
	NetworkHRP string `mapstructure:"network-hrp"`

	// Plugins are the names of the built-in plugins that are registered for accounts.
	Plugins []string `mapstructure:"plugins"`

	VerifierCacheSize   int  `mapstructure:"verifier-cache-size"`
	MaxCallDepth        int  `mapstructure:"max-call-depth"`
	DatabaseConnections int  `mapstructure:"db-connections"`
	DatabaseLatency     bool `mapstructure:"db-latency-metering"`

	MetricsPush string `mapstructure:"metrics-push"`
}

// StateDir is the canonical path to the data directory.
func (cfg *Config) StateDir() string {
	return filesystem.GetCanonicalPath(cfg.DataDir)
}

// StatePath is the path to the state database.
func (cfg *Config) StatePath() string {
	return filepath.Join(cfg.StateDir(), StateFile)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		Limits:     core.DefaultLimits(),
		LOGGING:    DefaultLoggingConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	return BaseConfig{
		DataDir:             filepath.Join("~", "."+defaultDataDirName),
		NetworkHRP:          "sm",
		Plugins:             []string{"sessionkey"},
		VerifierCacheSize:   1024,
		MaxCallDepth:        16,
		DatabaseConnections: 4,
	}
}

// LoadConfig reads the config file into viper. Empty location is not an error.
func LoadConfig(location string, vip *viper.Viper) error {
	if location == "" {
		return nil
	}
	vip.SetConfigFile(location)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", location, err)
	}
	return nil
}

// Unmarshal values loaded into viper on top of cfg.
func Unmarshal(vip *viper.Viper, cfg *Config) error {
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	)
	opts := []viper.DecoderConfigOption{
		viper.DecodeHook(hook),
		WithZeroFields(),
		WithIgnoreUntagged(),
		WithErrorUnused(),
	}
	if err := vip.Unmarshal(cfg, opts...); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

func WithZeroFields() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ZeroFields = true
	}
}

func WithIgnoreUntagged() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.IgnoreUntaggedFields = true
	}
}

func WithErrorUnused() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
	}
}

// Validate config values that can't be checked by the decoder.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.DataDir == "" {
		errs = append(errs, errors.New("data-dir is empty"))
	}
	if cfg.Limits.MaxCalls <= 0 {
		errs = append(errs, fmt.Errorf("limits.max-calls must be positive, got %d", cfg.Limits.MaxCalls))
	}
	if cfg.Limits.MaxBuffer <= 0 {
		errs = append(errs, fmt.Errorf("limits.max-buffer must be positive, got %d", cfg.Limits.MaxBuffer))
	}
	if cfg.VerifierCacheSize < 0 {
		errs = append(errs, fmt.Errorf("verifier-cache-size is negative: %d", cfg.VerifierCacheSize))
	}
	if cfg.MaxCallDepth <= 0 {
		errs = append(errs, fmt.Errorf("max-call-depth must be positive, got %d", cfg.MaxCallDepth))
	}
	if cfg.DatabaseConnections <= 0 {
		errs = append(errs, fmt.Errorf("db-connections must be positive, got %d", cfg.DatabaseConnections))
	}
	return errors.Join(errs...)
}
