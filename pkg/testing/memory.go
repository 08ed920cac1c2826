package testing

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sgl-project/abs-wagon/pkg/afero"
	"github.com/sgl-project/abs-wagon/pkg/logging"
	"github.com/sgl-project/abs-wagon/pkg/storage"
)

// MemoryObject is an object held by a MemoryConnection
type MemoryObject struct {
	Data         []byte
	LastModified time.Time
}

// MemoryConnection is a storage.Connection over an in-memory container,
// reading and writing local files through Fs.
type MemoryConnection struct {
	ContainerName string
	Fs            afero.Fs
	Objects       map[string]MemoryObject
	Now           func() time.Time

	// Operation journal, in call order
	Puts   []string
	Copies []string
	Lists  []string

	closed bool
}

var _ storage.Connection = (*MemoryConnection)(nil)

// NewMemoryConnection creates an empty connection bound to containerName
func NewMemoryConnection(containerName string, fs afero.Fs) *MemoryConnection {
	return &MemoryConnection{
		ContainerName: containerName,
		Fs:            fs,
		Objects:       map[string]MemoryObject{},
		Now:           time.Now,
	}
}

// Closed reports whether Close was called
func (m *MemoryConnection) Closed() bool { return m.closed }

// Seed stores data at key
func (m *MemoryConnection) Seed(key string, data string) {
	m.Objects[key] = MemoryObject{Data: []byte(data), LastModified: m.Now()}
}

func (m *MemoryConnection) Container() string { return m.ContainerName }

func (m *MemoryConnection) Put(_ context.Context, localPath string, key string, _ ...storage.TransferOption) error {
	if m.closed {
		return storage.NewError(storage.ErrNotConnected, "put", m.ContainerName, key, nil)
	}
	data, err := afero.ReadFile(m.Fs, localPath)
	if err != nil {
		return storage.NewError(storage.ErrTransferFailed, "put", m.ContainerName, key, err)
	}
	m.Objects[key] = MemoryObject{Data: data, LastModified: m.Now()}
	m.Puts = append(m.Puts, key)
	return nil
}

func (m *MemoryConnection) Copy(_ context.Context, key string, destination string, _ ...storage.TransferOption) error {
	if m.closed {
		return storage.NewError(storage.ErrNotConnected, "copy", m.ContainerName, key, nil)
	}
	obj, ok := m.Objects[key]
	if !ok {
		return storage.NewError(storage.ErrResourceNotFound, "copy", m.ContainerName, key, nil)
	}
	if _, err := afero.AtomicWriteReader(m.Fs, destination, bytes.NewReader(obj.Data), afero.DefaultFileMode, logging.Discard()); err != nil {
		return storage.NewError(storage.ErrTransferFailed, "copy", m.ContainerName, key, err)
	}
	m.Copies = append(m.Copies, key)
	return nil
}

func (m *MemoryConnection) Exists(_ context.Context, key string) (bool, error) {
	if m.closed {
		return false, storage.NewError(storage.ErrNotConnected, "exists", m.ContainerName, key, nil)
	}
	_, ok := m.Objects[key]
	return ok, nil
}

func (m *MemoryConnection) NewResourceAvailable(_ context.Context, key string, since time.Time) (bool, error) {
	if m.closed {
		return false, storage.NewError(storage.ErrNotConnected, "newResourceAvailable", m.ContainerName, key, nil)
	}
	obj, ok := m.Objects[key]
	return ok && obj.LastModified.After(since), nil
}

func (m *MemoryConnection) List(_ context.Context, prefix string) (storage.Iterator[storage.ObjectInfo], error) {
	if m.closed {
		return nil, storage.NewError(storage.ErrNotConnected, "list", m.ContainerName, prefix, nil)
	}
	m.Lists = append(m.Lists, prefix)

	var items []storage.ObjectInfo
	for key, obj := range m.Objects {
		if strings.HasPrefix(key, prefix) {
			items = append(items, storage.ObjectInfo{
				Name:         key,
				Size:         int64(len(obj.Data)),
				LastModified: obj.LastModified,
			})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return storage.NewSliceIterator(items...), nil
}

func (m *MemoryConnection) Close() error {
	m.closed = true
	return nil
}
