package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/sgl-project/abs-wagon/pkg/logging"
)

// Module provides *TransferMetrics on a private registry and writes the
// textfile, if configured, when the fx app stops.
var Module = fx.Options(
	fx.Provide(
		NewConfig,
		func() *TransferMetrics { return NewTransferMetrics(prometheus.NewRegistry()) },
	),
	fx.Invoke(registerTextfileExport),
)

func registerTextfileExport(lc fx.Lifecycle, config *Config, m *TransferMetrics, logger logging.Interface) {
	if config.Textfile == "" {
		return
	}

	lc.Append(fx.StopHook(func() error {
		if err := m.WriteTextfile(config.Textfile); err != nil {
			logger.WithError(err).WithField("path", config.Textfile).Error("Failed to write metrics textfile")
			return err
		}
		logger.WithField("path", config.Textfile).Debug("Wrote metrics textfile")
		return nil
	}))
}
