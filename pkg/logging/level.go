package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity written by the wagon logger.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// zapLevels maps every accepted spelling, upper-cased, to its zap level.
// The empty level means INFO.
var zapLevels = map[string]zapcore.Level{
	"":        zapcore.InfoLevel,
	"DEBUG":   zapcore.DebugLevel,
	"INFO":    zapcore.InfoLevel,
	"WARN":    zapcore.WarnLevel,
	"WARNING": zapcore.WarnLevel,
	"ERROR":   zapcore.ErrorLevel,
}

// ParseLevel parses a case-insensitive level name. "warning" is accepted
// for WARN.
func ParseLevel(level string) (Level, error) {
	zl, ok := zapLevels[strings.ToUpper(level)]
	if !ok {
		return "", fmt.Errorf("unknown log level: %s", level)
	}
	return Level(strings.ToUpper(zl.String())), nil
}

// Validate reports an unknown level name.
func (l Level) Validate() error {
	_, err := ParseLevel(string(l))
	return err
}

func (l Level) String() string { return strings.ToUpper(string(l)) }

func (l Level) toZapCoreLevel() (zapcore.Level, error) {
	zl, ok := zapLevels[l.String()]
	if !ok {
		return zapcore.InfoLevel, fmt.Errorf("can't convert log level to zapcore.Level: %s", l)
	}
	return zl, nil
}

// toZapCoreLevel returns the effective level; debug mode wins over Level.
func (c *Config) toZapCoreLevel() (zapcore.Level, error) {
	if c.Debug {
		return zapcore.DebugLevel, nil
	}
	return c.Level.toZapCoreLevel()
}
