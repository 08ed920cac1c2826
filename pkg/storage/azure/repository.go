package azure

import (
	"context"
	"time"

	"github.com/sgl-project/abs-wagon/pkg/afero"
	"github.com/sgl-project/abs-wagon/pkg/auth"
	"github.com/sgl-project/abs-wagon/pkg/logging"
	"github.com/sgl-project/abs-wagon/pkg/metrics"
	"github.com/sgl-project/abs-wagon/pkg/storage"
)

// Repository opens connections to Azure Blob Storage containers.
type Repository struct {
	config    *Config
	fs        afero.Fs
	logger    logging.Interface
	metrics   *metrics.TransferMetrics
	newClient clientFactory
}

// NewRepository creates a repository reading and writing local files through fs
func NewRepository(config *Config, fs afero.Fs, logger logging.Interface, m *metrics.TransferMetrics) *Repository {
	if config == nil {
		config = DefaultConfig()
	}
	return &Repository{
		config:    config,
		fs:        fs,
		logger:    logger,
		metrics:   m,
		newClient: newContainerClient,
	}
}

// Connect binds a new connection to containerName. Missing, malformed or,
// with VerifyConnection set, rejected credentials fail with
// storage.ErrAuthentication.
func (r *Repository) Connect(ctx context.Context, containerName string, creds auth.Credentials) (storage.Connection, error) {
	start := time.Now()
	conn, err := r.connect(ctx, containerName, creds)
	r.metrics.ObserveOperation("connect", err, time.Since(start))
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (r *Repository) connect(ctx context.Context, containerName string, creds auth.Credentials) (*Connection, error) {
	if creds == nil {
		return nil, storage.NewError(storage.ErrAuthentication, "connect", containerName, "", errNoCredentials)
	}

	log := r.logger.WithField("container", containerName).
		WithField("credentials", creds.Redacted())

	client, err := r.newClient(creds, containerName)
	if err != nil {
		return nil, storage.NewError(storage.ErrAuthentication, "connect", containerName, "", err)
	}

	if r.config.VerifyConnection {
		if _, err := client.GetProperties(ctx, nil); err != nil {
			err = verificationError(err)
			log.WithError(err).Debug("Container verification failed")
			return nil, storage.NewError(storage.ErrAuthentication, "connect", containerName, "", err)
		}
	}

	log.Debug("Connected to container")
	return &Connection{
		container: containerName,
		client:    client,
		config:    r.config,
		fs:        r.fs,
		logger:    r.logger.WithField("container", containerName),
		metrics:   r.metrics,
	}, nil
}
