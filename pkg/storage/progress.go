package storage

import (
	"io"
	"time"

	"github.com/sgl-project/abs-wagon/pkg/logging"
)

// NewProgressReader reports every byte read from r to reporter. A nil
// reporter returns r unchanged.
func NewProgressReader(r io.Reader, total int64, reporter ProgressReporter) io.Reader {
	if reporter == nil {
		return r
	}
	return &progressReader{reader: r, total: total, reporter: reporter}
}

type progressReader struct {
	reader   io.Reader
	total    int64
	read     int64
	reporter ProgressReporter
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.reader.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.reporter.Update(p.read, p.total)
	}
	return n, err
}

// LogProgress is a ProgressReporter writing to a logger. Updates are
// throttled to one per interval.
type LogProgress struct {
	logger     logging.Interface
	interval   time.Duration
	lastUpdate time.Time
	start      time.Time
	bytes      int64
}

// NewLogProgress creates a reporter that logs the progress of name at debug level
func NewLogProgress(logger logging.Interface, name string, interval time.Duration) *LogProgress {
	now := time.Now()
	return &LogProgress{
		logger:     logger.WithField("object", name),
		interval:   interval,
		lastUpdate: now,
		start:      now,
	}
}

// Update implements ProgressReporter
func (l *LogProgress) Update(bytesTransferred, totalBytes int64) {
	l.bytes = bytesTransferred
	now := time.Now()
	if now.Sub(l.lastUpdate) < l.interval && bytesTransferred != totalBytes {
		return
	}
	l.lastUpdate = now

	log := l.logger.WithField("bytes", bytesTransferred)
	if totalBytes > 0 {
		log = log.WithField("percent", bytesTransferred*100/totalBytes)
	}
	log.Debug("Transfer in progress")
}

// Done implements ProgressReporter
func (l *LogProgress) Done() {
	l.logger.WithField("bytes", l.bytes).
		WithField("elapsed", time.Since(l.start).String()).
		Debug("Transfer completed")
}

// Error implements ProgressReporter
func (l *LogProgress) Error(err error) {
	l.logger.WithError(err).
		WithField("bytes", l.bytes).
		Debug("Transfer failed")
}
