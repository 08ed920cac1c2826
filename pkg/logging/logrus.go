package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logrusWrapper adapts a logrus entry. Tests use it for readable text
// output next to go test's own lines.
type logrusWrapper struct {
	entry *logrus.Entry
}

func (l logrusWrapper) WithField(key string, value any) Interface {
	return logrusWrapper{entry: l.entry.WithField(key, value)}
}

func (l logrusWrapper) WithError(err error) Interface {
	return logrusWrapper{entry: l.entry.WithError(err)}
}

func (l logrusWrapper) Debug(msg string)                  { l.entry.Debug(msg) }
func (l logrusWrapper) Info(msg string)                   { l.entry.Info(msg) }
func (l logrusWrapper) Warn(msg string)                   { l.entry.Warn(msg) }
func (l logrusWrapper) Error(msg string)                  { l.entry.Error(msg) }
func (l logrusWrapper) Fatal(msg string)                  { l.entry.Fatal(msg) }
func (l logrusWrapper) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l logrusWrapper) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l logrusWrapper) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l logrusWrapper) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }
func (l logrusWrapper) Fatalf(format string, args ...any) { l.entry.Fatalf(format, args...) }

func ForLogrus(entry *logrus.Entry) Interface {
	return logrusWrapper{entry: entry}
}

// NewTestLogger logs every level as plain text to stderr.
func NewTestLogger() Interface {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return ForLogrus(logrus.NewEntry(l))
}
