// Package log builds zap loggers used by the account, vm and the command line tools.
package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/go-pluginaccount/common/types"
)

const (
	// ConsoleEncoder represents logging with plain text.
	ConsoleEncoder = "console"
	// JSONEncoder represents logging with JSON.
	JSONEncoder = "json"
)

// where logs go by default.
var logWriter io.Writer = os.Stderr

// New creates a logger with a fixed level and an encoder, either console or json.
func New(name, level, encoder string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	var enc zapcore.Encoder
	switch encoder {
	case "", ConsoleEncoder:
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	case JSONEncoder:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, fmt.Errorf("unknown log encoder %q", encoder)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(logWriter), zap.NewAtomicLevelAt(lvl))
	return zap.New(core).Named(name), nil
}

// Address returns a field with bech32 encoded address.
func Address(name string, address types.Address) zap.Field {
	return zap.Stringer(name, address)
}

// Felt returns a field with hex encoded felt.
func Felt(name string, f types.Felt) zap.Field {
	return zap.Stringer(name, f)
}

// Felts returns a field with an array of hex encoded felts.
func Felts(name string, felts []types.Felt) zap.Field {
	return zap.Array(name, types.Felts(felts))
}

// ShortHash returns a field with first characters of the hash.
func ShortHash(name string, hash types.Hash32) zap.Field {
	return zap.String(name, hash.ShortString())
}
