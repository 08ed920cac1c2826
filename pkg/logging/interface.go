package logging

import (
	"fmt"
)

// Interface decouples the wagon packages from the logging library in use.
// Production code gets a zap-backed implementation from Module, tests use
// ForZap(zaptest.NewLogger(t)), NewTestLogger or Discard.
//
// NOTE: Not intended to be fast (printf-like methods are really bad).
type Interface interface {
	WithField(key string, value interface{}) Interface
	WithError(err error) Interface

	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Fatal(msg string)

	// Avoid using Printf-like methods
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

func fmtMsg(format string, args []interface{}) string {
	msg := format
	if len(args) != 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return msg
}
