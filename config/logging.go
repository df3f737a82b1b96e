package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
)

var levels = map[string]slog.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
	"crit":  log.LevelCrit,
}

// NewLogger builds a logger writing to w with the configured level and format.
func (c Config) NewLogger(w io.Writer) (log.Logger, error) {
	level, ok := levels[strings.ToLower(c.LogLevel)]
	if !ok {
		return nil, errors.Errorf("unknown log level %q", c.LogLevel)
	}

	var handler slog.Handler
	switch c.LogFormat {
	case LogFormatTerminal:
		handler = log.NewTerminalHandlerWithLevel(w, level, false)
	case LogFormatJSON:
		handler = log.JSONHandlerWithLevel(w, level)
	default:
		return nil, errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return log.NewLogger(handler), nil
}
