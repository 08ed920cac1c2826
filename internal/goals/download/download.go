package download

import (
	"context"

	"github.com/sgl-project/abs-wagon/internal/goals"
	"github.com/sgl-project/abs-wagon/pkg/logging"
	"github.com/sgl-project/abs-wagon/pkg/storage"
)

// Downloader retrieves objects from a container into the local file system.
type Downloader struct {
	config  *Config
	session goals.Session
}

var _ goals.Goal = (*Downloader)(nil)

// NewDownloader creates a downloader
func NewDownloader(config *Config, session goals.Session) *Downloader {
	return &Downloader{
		config:  config,
		session: session,
	}
}

// Run downloads the configured keys. A single key names one object, which
// is written to DownloadPath itself. Several keys are prefixes: their
// listings are enumerated in the given order and every object is written
// to DownloadPath/<key>.
func (d *Downloader) Run(ctx context.Context) error {
	log := d.session.RunLogger("download").
		WithField("container", d.config.Container).
		WithField("downloadPath", d.config.DownloadPath)

	return d.session.WithConnection(ctx, d.config.Container, func(conn storage.Connection) error {
		if len(d.config.Keys) == 1 {
			return d.downloadSingle(ctx, conn, d.config.Keys[0], log)
		}
		return d.downloadPrefixes(ctx, conn, log)
	})
}

func (d *Downloader) downloadSingle(ctx context.Context, conn storage.Connection, key string, log logging.Interface) error {
	log = log.WithField("key", key)
	if err := conn.Copy(ctx, key, d.config.DownloadPath, goals.Progress(log, key)); err != nil {
		return err
	}
	log.Info("Download completed")
	return nil
}

func (d *Downloader) downloadPrefixes(ctx context.Context, conn storage.Connection, log logging.Interface) error {
	its := make([]storage.Iterator[storage.ObjectInfo], 0, len(d.config.Keys))
	for _, prefix := range d.config.Keys {
		it, err := conn.List(ctx, prefix)
		if err != nil {
			return err
		}
		its = append(its, it)
	}

	seen := make(map[string]struct{})
	downloaded := 0
	for item, err := range storage.All(ctx, storage.Concat(its...)) {
		if err != nil {
			return err
		}

		key := item.Name
		if storage.IsDirectoryKey(key) {
			log.WithField("key", key).Debug("Skipping directory placeholder")
			continue
		}
		// Overlapping prefixes list the same key more than once
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		dest, err := storage.LocalPathForKey(d.config.DownloadPath, key)
		if err != nil {
			return err
		}
		if err := conn.Copy(ctx, key, dest, goals.Progress(log.WithField("key", key), key)); err != nil {
			return err
		}
		downloaded++
	}

	log.WithField("files", downloaded).
		WithField("prefixes", len(d.config.Keys)).
		Info("Download completed")
	return nil
}
