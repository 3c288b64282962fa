package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-pluginaccount/log"
)

const defaultLoggingLevel = zapcore.InfoLevel

// LoggerConfig holds the logging level for each module.
type LoggerConfig struct {
	Encoder        string `mapstructure:"log-encoder"`
	AppLoggerLevel string `mapstructure:"app"`
	VMLoggerLevel  string `mapstructure:"vm"`
	AccountLevel   string `mapstructure:"account"`
	DatabaseLevel  string `mapstructure:"database"`
	EventsLevel    string `mapstructure:"events"`
}

// DefaultLoggingConfig returns default logging config.
func DefaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:        log.ConsoleEncoder,
		AppLoggerLevel: defaultLoggingLevel.String(),
		VMLoggerLevel:  defaultLoggingLevel.String(),
		AccountLevel:   zapcore.WarnLevel.String(),
		DatabaseLevel:  zapcore.WarnLevel.String(),
		EventsLevel:    zapcore.WarnLevel.String(),
	}
}

// SetLevel overwrites level of every module.
func (c *LoggerConfig) SetLevel(level string) {
	c.AppLoggerLevel = level
	c.VMLoggerLevel = level
	c.AccountLevel = level
	c.DatabaseLevel = level
	c.EventsLevel = level
}

// Loggers for every module.
type Loggers struct {
	App      *zap.Logger
	VM       *zap.Logger
	Account  *zap.Logger
	Database *zap.Logger
	Events   *zap.Logger
}

// Build loggers with configured levels.
func (c *LoggerConfig) Build() (*Loggers, error) {
	var (
		loggers Loggers
		err     error
	)
	for _, l := range []struct {
		logger **zap.Logger
		name   string
		level  string
	}{
		{&loggers.App, "app", c.AppLoggerLevel},
		{&loggers.VM, "vm", c.VMLoggerLevel},
		{&loggers.Account, "account", c.AccountLevel},
		{&loggers.Database, "database", c.DatabaseLevel},
		{&loggers.Events, "events", c.EventsLevel},
	} {
		*l.logger, err = log.New(l.name, l.level, c.Encoder)
		if err != nil {
			return nil, err
		}
	}
	return &loggers, nil
}
