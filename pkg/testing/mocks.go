package testing

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sgl-project/abs-wagon/pkg/auth"
	"github.com/sgl-project/abs-wagon/pkg/logging"
	"github.com/sgl-project/abs-wagon/pkg/storage"
)

// MockConnector implements the goal connector for testing
type MockConnector struct {
	mock.Mock
}

func (m *MockConnector) Connect(ctx context.Context, containerName string, creds auth.Credentials) (storage.Connection, error) {
	args := m.Called(ctx, containerName, creds)
	conn, _ := args.Get(0).(storage.Connection)
	return conn, args.Error(1)
}

// MockConnection implements storage.Connection for testing
type MockConnection struct {
	mock.Mock
}

var _ storage.Connection = (*MockConnection)(nil)

func (m *MockConnection) Container() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockConnection) Put(ctx context.Context, localPath string, key string, opts ...storage.TransferOption) error {
	args := m.Called(ctx, localPath, key)
	return args.Error(0)
}

func (m *MockConnection) Copy(ctx context.Context, key string, destination string, opts ...storage.TransferOption) error {
	args := m.Called(ctx, key, destination)
	return args.Error(0)
}

func (m *MockConnection) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockConnection) NewResourceAvailable(ctx context.Context, key string, since time.Time) (bool, error) {
	args := m.Called(ctx, key, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockConnection) List(ctx context.Context, prefix string) (storage.Iterator[storage.ObjectInfo], error) {
	args := m.Called(ctx, prefix)
	it, _ := args.Get(0).(storage.Iterator[storage.ObjectInfo])
	return it, args.Error(1)
}

func (m *MockConnection) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockLogger implements logging.Interface for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(msg string) {
	m.Called(msg)
}

func (m *MockLogger) Debugf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Info(msg string) {
	m.Called(msg)
}

func (m *MockLogger) Infof(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(msg string) {
	m.Called(msg)
}

func (m *MockLogger) Warnf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Error(msg string) {
	m.Called(msg)
}

func (m *MockLogger) Errorf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) Fatal(msg string) {
	m.Called(msg)
}

func (m *MockLogger) Fatalf(format string, args ...interface{}) {
	m.Called(format, args)
}

func (m *MockLogger) WithField(key string, value interface{}) logging.Interface {
	args := m.Called(key, value)
	return args.Get(0).(logging.Interface)
}

func (m *MockLogger) WithError(err error) logging.Interface {
	args := m.Called(err)
	return args.Get(0).(logging.Interface)
}

// SetupMockLogger creates a mock logger that returns itself for chaining methods
func SetupMockLogger() *MockLogger {
	logger := &MockLogger{}
	logger.On("WithField", mock.Anything, mock.Anything).Return(logger)
	logger.On("WithError", mock.Anything).Return(logger)
	logger.On("Debug", mock.Anything).Return()
	logger.On("Debugf", mock.Anything, mock.Anything).Return()
	logger.On("Info", mock.Anything).Return()
	logger.On("Infof", mock.Anything, mock.Anything).Return()
	logger.On("Warn", mock.Anything).Return()
	logger.On("Warnf", mock.Anything, mock.Anything).Return()
	logger.On("Error", mock.Anything).Return()
	logger.On("Errorf", mock.Anything, mock.Anything).Return()
	return logger
}
