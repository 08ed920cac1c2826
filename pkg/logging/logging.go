package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger takes a logging config and returns a new Zap logger that writes to
// stderr and, when a filename is configured, to a rotating log file.
//
// Stdout is left alone so commands can print their results there.
func NewLogger(config *Config) (*zap.Logger, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}

	encoder, level, err := constructEncoderAndLevel(config)
	if err != nil {
		return nil, fmt.Errorf("constructing log encoder and level: %w", err)
	}

	var cores []zapcore.Core
	if config.Filename != "" {
		logFile := zapcore.AddSync(&config.Logger)
		cores = append(cores, zapcore.NewCore(encoder, logFile, level))
	}
	if !config.DisableConsoleOutput {
		console := zapcore.Lock(os.Stderr)
		cores = append(cores, zapcore.NewCore(encoder, console, level))
	}

	// Add caller information with proper skip level to show actual source file, not zap internal files
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)), nil
}

func constructEncoderAndLevel(config *Config) (zapcore.Encoder, zapcore.Level, error) {
	zapLevel, err := config.toZapCoreLevel()
	if err != nil {
		return nil, zapLevel, err
	}

	encoderConfig := getZapEncoderConfig(config)
	if config.Debug {
		return zapcore.NewConsoleEncoder(encoderConfig), zapLevel, nil
	}

	return zapcore.NewJSONEncoder(encoderConfig), zapLevel, nil
}

func getZapEncoderConfig(config *Config) zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	if config.Debug {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	if config.EncodeTimeAsRFC3339Nano {
		encoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	}

	return encoderConfig
}
