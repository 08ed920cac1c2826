package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sgl-project/abs-wagon/pkg/logging"
)

func TestTransferMetrics(t *testing.T) {
	m := NewTransferMetrics(prometheus.NewRegistry())

	m.ObserveOperation("put", nil, 20*time.Millisecond)
	m.ObserveOperation("put", nil, 30*time.Millisecond)
	m.ObserveOperation("copy", errors.New("boom"), time.Second)
	m.AddBytes(DirectionUpload, 100)
	m.AddBytes(DirectionUpload, 0)
	m.AddListed(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("put", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("copy", ResultError)))
	assert.Equal(t, 100.0, testutil.ToFloat64(m.bytesTransferred.WithLabelValues(DirectionUpload)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.objectsListed))
}

func TestTransferMetrics_Nil(t *testing.T) {
	var m *TransferMetrics
	assert.NotPanics(t, func() {
		m.ObserveOperation("put", nil, time.Second)
		m.AddBytes(DirectionDownload, 1)
		m.AddListed(1)
		assert.NoError(t, m.WriteTextfile("/nonexistent/metrics.prom"))
	})
}

func TestTransferMetrics_WriteTextfile(t *testing.T) {
	m := NewTransferMetrics(nil)
	m.ObserveOperation("exists", nil, time.Millisecond)

	path := filepath.Join(t.TempDir(), "wagon.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `abs_wagon_operations_total{operation="exists",result="success"} 1`))
}

func TestModule_WritesTextfileOnStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wagon.prom")
	v := viper.New()
	v.Set("metrics.textfile", path)

	var m *TransferMetrics
	app := fxtest.New(t,
		fx.Supply(v),
		fx.Provide(func() logging.Interface { return logging.Discard() }),
		Module,
		fx.Populate(&m),
	)
	app.RequireStart()
	m.ObserveOperation("put", nil, time.Millisecond)
	app.RequireStop()

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
