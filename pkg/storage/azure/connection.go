package azure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"

	"github.com/sgl-project/abs-wagon/pkg/afero"
	"github.com/sgl-project/abs-wagon/pkg/logging"
	"github.com/sgl-project/abs-wagon/pkg/metrics"
	"github.com/sgl-project/abs-wagon/pkg/storage"
)

var errNoCredentials = errors.New("no credentials provided")

// Connection is a session bound to a single blob container. It is not safe
// for concurrent use.
type Connection struct {
	container string
	client    containerClient
	config    *Config
	fs        afero.Fs
	logger    logging.Interface
	metrics   *metrics.TransferMetrics
}

var _ storage.Connection = (*Connection)(nil)

// Container implements storage.Connection
func (c *Connection) Container() string {
	return c.container
}

// Put implements storage.Connection
func (c *Connection) Put(ctx context.Context, localPath string, key string, opts ...storage.TransferOption) (err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveOperation("put", err, time.Since(start)) }()

	client, err := c.open("put", key)
	if err != nil {
		return err
	}
	options := storage.ApplyTransferOptions(opts...)

	f, err := c.fs.Open(localPath)
	if err != nil {
		return c.transferFailed("put", key, fmt.Errorf("opening %s: %w", localPath, err))
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return c.transferFailed("put", key, fmt.Errorf("stat %s: %w", localPath, err))
	}
	if info.IsDir() {
		return c.transferFailed("put", key, fmt.Errorf("%s is a directory", localPath))
	}

	contentType := options.ContentType
	if contentType == "" {
		contentType = storage.DetectContentType(c.fs, localPath)
	}

	checksum, err := storage.FileMD5(c.fs, localPath)
	if err != nil {
		return c.transferFailed("put", key, err)
	}

	log := c.logger.WithField("key", key).
		WithField("localPath", localPath).
		WithField("size", info.Size()).
		WithField("contentType", contentType)
	log.Debug("Uploading file")

	body := storage.NewProgressReader(f, info.Size(), options.Progress)
	_, err = client.NewBlockBlobClient(key).UploadStream(ctx, body, &blockblob.UploadStreamOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
			BlobContentMD5:  checksum,
		},
	})
	if err != nil {
		if options.Progress != nil {
			options.Progress.Error(err)
		}
		return c.transferFailed("put", key, err)
	}
	if options.Progress != nil {
		options.Progress.Done()
	}

	c.metrics.AddBytes(metrics.DirectionUpload, info.Size())
	log.Info("Uploaded file")
	return nil
}

// Copy implements storage.Connection. The existence check and the download
// are separate requests, a blob removed in between fails with
// storage.ErrTransferFailed. Downloads are checked against the blob's
// Content-MD5 when it has one.
func (c *Connection) Copy(ctx context.Context, key string, destination string, opts ...storage.TransferOption) (err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveOperation("copy", err, time.Since(start)) }()

	client, err := c.open("copy", key)
	if err != nil {
		return err
	}
	options := storage.ApplyTransferOptions(opts...)

	blobClient := client.NewBlobClient(key)
	props, err := blobClient.GetProperties(ctx, nil)
	if err != nil {
		if isBlobNotFound(err) {
			return storage.NewError(storage.ErrResourceNotFound, "copy", c.container, key, err)
		}
		return c.transferFailed("copy", key, err)
	}

	log := c.logger.WithField("key", key).
		WithField("destination", destination)
	log.Debug("Downloading blob")

	resp, err := blobClient.DownloadStream(ctx, nil)
	if err != nil {
		return c.transferFailed("copy", key, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var size int64
	if resp.ContentLength != nil {
		size = *resp.ContentLength
	}

	// Content uploaded without Content-MD5 is not validated
	body := storage.NewValidatingReader(
		storage.NewProgressReader(resp.Body, size, options.Progress),
		props.ContentMD5,
	)
	n, err := afero.AtomicWriteReader(c.fs, destination, body, afero.DefaultFileMode, log)
	if err != nil {
		if options.Progress != nil {
			options.Progress.Error(err)
		}
		return c.transferFailed("copy", key, err)
	}
	if options.Progress != nil {
		options.Progress.Done()
	}

	c.metrics.AddBytes(metrics.DirectionDownload, n)
	log.WithField("size", n).Info("Downloaded blob")
	return nil
}

// Exists implements storage.Connection. Only a confirmed missing blob
// yields false, a missing container is an error.
func (c *Connection) Exists(ctx context.Context, key string) (exists bool, err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveOperation("exists", err, time.Since(start)) }()

	client, err := c.open("exists", key)
	if err != nil {
		return false, err
	}

	_, err = client.NewBlobClient(key).GetProperties(ctx, nil)
	switch {
	case err == nil:
		return true, nil
	case isBlobNotFound(err):
		return false, nil
	default:
		return false, c.transferFailed("exists", key, err)
	}
}

// NewResourceAvailable implements storage.Connection
func (c *Connection) NewResourceAvailable(ctx context.Context, key string, since time.Time) (available bool, err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveOperation("new_resource_available", err, time.Since(start)) }()

	client, err := c.open("newResourceAvailable", key)
	if err != nil {
		return false, err
	}

	props, err := client.NewBlobClient(key).GetProperties(ctx, nil)
	if err != nil {
		if isBlobNotFound(err) {
			return false, nil
		}
		return false, storage.NewError(storage.ErrResourceNotFound, "newResourceAvailable", c.container, key, err)
	}
	if props.LastModified == nil {
		return false, nil
	}

	available = props.LastModified.After(since)
	c.logger.WithField("key", key).
		WithField("lastModified", props.LastModified.UTC().Format(time.RFC3339)).
		WithField("since", since.UTC().Format(time.RFC3339)).
		WithField("newer", available).
		Debug("Checked blob freshness")
	return available, nil
}

// List implements storage.Connection
func (c *Connection) List(ctx context.Context, prefix string) (storage.Iterator[storage.ObjectInfo], error) {
	client, err := c.open("list", prefix)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("prefix", prefix).Debug("Listing blobs")
	it, err := newPrefixIterator(ctx, client, c.container, prefix, c.config, c.metrics)
	if err != nil {
		return nil, err
	}
	return it, nil
}

// Close implements storage.Connection
func (c *Connection) Close() error {
	if c.client == nil {
		return nil
	}
	c.client = nil
	c.logger.Debug("Disconnected from container")
	return nil
}

func (c *Connection) open(op string, key string) (containerClient, error) {
	if c.client == nil {
		return nil, storage.NewError(storage.ErrNotConnected, op, c.container, key, nil)
	}
	return c.client, nil
}

func (c *Connection) transferFailed(op string, key string, err error) error {
	return storage.NewError(storage.ErrTransferFailed, op, c.container, key, err)
}
