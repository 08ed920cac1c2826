package storage

import (
	"context"
	"time"
)

// Connection is an open session against exactly one container.
//
// A connection is driven by a single caller, one operation at a time. Once
// Close has been called every other method fails with ErrNotConnected.
type Connection interface {
	// Container returns the name of the container this connection is bound to
	Container() string

	// Put uploads the local file at localPath to key, overwriting whatever
	// is stored there
	Put(ctx context.Context, localPath string, key string, opts ...TransferOption) error

	// Copy downloads key into the local file destination
	Copy(ctx context.Context, key string, destination string, opts ...TransferOption) error

	// Exists reports whether key is present in the container
	Exists(ctx context.Context, key string) (bool, error)

	// NewResourceAvailable reports whether key was modified strictly after since
	NewResourceAvailable(ctx context.Context, key string, since time.Time) (bool, error)

	// List returns the objects whose keys start with prefix
	List(ctx context.Context, prefix string) (Iterator[ObjectInfo], error)

	// Close releases the connection. Closing twice is a no-op.
	Close() error
}

// ObjectInfo represents metadata of a listed object
type ObjectInfo struct {
	Name         string
	Size         int64
	LastModified time.Time
	ETag         string
	ContentType  string
}

// ProgressReporter reports operation progress
type ProgressReporter interface {
	Update(bytesTransferred, totalBytes int64)
	Done()
	Error(err error)
}
