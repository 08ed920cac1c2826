package upload

import (
	"context"
	"fmt"

	"github.com/sgl-project/abs-wagon/internal/goals"
	"github.com/sgl-project/abs-wagon/pkg/afero"
	"github.com/sgl-project/abs-wagon/pkg/logging"
	"github.com/sgl-project/abs-wagon/pkg/storage"
)

// Uploader publishes a local file or directory tree to a container.
type Uploader struct {
	config  *Config
	session goals.Session
	fs      afero.Fs
}

var _ goals.Goal = (*Uploader)(nil)

// NewUploader creates an uploader reading local files through fs
func NewUploader(config *Config, session goals.Session, fs afero.Fs) *Uploader {
	return &Uploader{
		config:  config,
		session: session,
		fs:      fs,
	}
}

// Run uploads the configured path. A directory is walked and every file is
// stored under its path relative to the directory, below Key. A single file
// is stored at Key, or at its base name when Key is empty.
func (u *Uploader) Run(ctx context.Context) error {
	log := u.session.RunLogger("upload").
		WithField("container", u.config.Container).
		WithField("path", u.config.Path)

	info, err := u.fs.Stat(u.config.Path)
	if err != nil {
		return storage.NewError(storage.ErrInvalidPath, "upload", u.config.Container, u.config.Path, err)
	}

	return u.session.WithConnection(ctx, u.config.Container, func(conn storage.Connection) error {
		if !info.IsDir() {
			return u.put(ctx, conn, u.config.Path, log)
		}

		uploaded := 0
		for file, err := range storage.WalkFiles(u.fs, u.config.Path) {
			if err != nil {
				return fmt.Errorf("upload of %s aborted after %d files: %w", u.config.Path, uploaded, err)
			}
			if err := u.put(ctx, conn, file, log); err != nil {
				return err
			}
			uploaded++
		}

		log.WithField("files", uploaded).Info("Upload completed")
		return nil
	})
}

func (u *Uploader) put(ctx context.Context, conn storage.Connection, file string, log logging.Interface) error {
	key, err := storage.MapLocalToRemote(u.config.Path, file, u.config.Key)
	if err != nil {
		return err
	}

	log = log.WithField("key", key)
	if err := conn.Put(ctx, file, key, goals.Progress(log, key)); err != nil {
		return err
	}
	return nil
}
