package goals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sgl-project/abs-wagon/pkg/auth"
	"github.com/sgl-project/abs-wagon/pkg/logging"
	"github.com/sgl-project/abs-wagon/pkg/storage"
)

// ProgressInterval throttles transfer progress logging.
const ProgressInterval = 5 * time.Second

// Goal is one runnable wagon goal.
type Goal interface {
	Run(ctx context.Context) error
}

// Connector opens connections to a blob container.
type Connector interface {
	Connect(ctx context.Context, containerName string, creds auth.Credentials) (storage.Connection, error)
}

// Session carries what every goal needs to reach the store.
type Session struct {
	Connector   Connector
	Credentials auth.Credentials
	Logger      logging.Interface
}

// NewSession creates a session
func NewSession(connector Connector, creds auth.Credentials, logger logging.Interface) Session {
	return Session{
		Connector:   connector,
		Credentials: creds,
		Logger:      logger,
	}
}

// RunLogger tags the session logger with the goal name and a fresh run id.
func (s Session) RunLogger(goal string) logging.Interface {
	return s.Logger.WithField("goal", goal).
		WithField("run_id", uuid.NewString())
}

// WithConnection connects to containerName, runs fn and disconnects, also
// when fn fails.
func (s Session) WithConnection(ctx context.Context, containerName string, fn func(storage.Connection) error) (err error) {
	conn, err := s.Connector.Connect(ctx, containerName, s.Credentials)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(conn)
}

// Progress returns a transfer option logging the progress of name.
func Progress(logger logging.Interface, name string) storage.TransferOption {
	return storage.WithProgress(storage.NewLogProgress(logger, name, ProgressInterval))
}
