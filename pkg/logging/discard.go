package logging

// discard drops every message. Fields and errors are ignored too, so the
// same value is returned from WithField and WithError.
type discard struct{}

func (d discard) WithField(string, any) Interface { return d }
func (d discard) WithError(error) Interface       { return d }
func (discard) Debug(string)                      {}
func (discard) Info(string)                       {}
func (discard) Warn(string)                       {}
func (discard) Error(string)                      {}
func (discard) Fatal(string)                      {}
func (discard) Debugf(string, ...any)             {}
func (discard) Infof(string, ...any)              {}
func (discard) Warnf(string, ...any)              {}
func (discard) Errorf(string, ...any)             {}
func (discard) Fatalf(string, ...any)             {}

// Discard returns a logger for callers that have nothing to report to,
// such as a Repository built without a logger.
func Discard() Interface {
	return discard{}
}
