package azure

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	"github.com/sgl-project/abs-wagon/pkg/metrics"
	"github.com/sgl-project/abs-wagon/pkg/storage"
)

// PrefixIterator walks a prefix-scoped flat listing of a container. Pages are
// requested one at a time, only once the previous page has been consumed,
// and each request is bounded by the page timeout. A failed page request
// ends the iteration with storage.ErrStorageList; it is not retried.
type PrefixIterator struct {
	container string
	prefix    string
	timeout   time.Duration
	pager     *runtime.Pager[container.ListBlobsFlatResponse]
	metrics   *metrics.TransferMetrics

	page    []*container.BlobItem
	pos     int
	current storage.ObjectInfo
	err     error
}

var _ storage.Iterator[storage.ObjectInfo] = (*PrefixIterator)(nil)

// newPrefixIterator starts the listing and fetches the first page before
// returning, so an unreachable store fails here rather than on first use.
func newPrefixIterator(
	ctx context.Context,
	client containerClient,
	containerName string,
	prefix string,
	config *Config,
	m *metrics.TransferMetrics,
) (*PrefixIterator, error) {
	opts := &container.ListBlobsFlatOptions{}
	if prefix != "" {
		opts.Prefix = &prefix
	}
	if config.PageSize > 0 {
		pageSize := config.PageSize
		opts.MaxResults = &pageSize
	}

	it := &PrefixIterator{
		container: containerName,
		prefix:    prefix,
		timeout:   config.PageTimeout,
		pager:     client.NewListBlobsFlatPager(opts),
		metrics:   m,
	}
	if err := it.fetch(ctx); err != nil {
		return nil, err
	}
	return it, nil
}

// Prefix returns the prefix this iterator lists
func (it *PrefixIterator) Prefix() string { return it.prefix }

// Next implements storage.Iterator
func (it *PrefixIterator) Next(ctx context.Context) bool {
	for it.err == nil {
		if it.pos < len(it.page) {
			item := it.page[it.pos]
			it.pos++
			if item == nil || item.Name == nil {
				continue
			}
			it.current = toObjectInfo(item)
			return true
		}

		it.page, it.pos = nil, 0
		if !it.pager.More() {
			break
		}
		if err := it.fetch(ctx); err != nil {
			it.err = err
		}
	}

	it.current = storage.ObjectInfo{}
	return false
}

// Item implements storage.Iterator
func (it *PrefixIterator) Item() storage.ObjectInfo { return it.current }

// Err implements storage.Iterator
func (it *PrefixIterator) Err() error { return it.err }

func (it *PrefixIterator) fetch(ctx context.Context) error {
	if it.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, it.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := it.pager.NextPage(ctx)
	it.metrics.ObserveOperation("list", err, time.Since(start))
	if err != nil {
		return storage.NewError(storage.ErrStorageList, "list", it.container, it.prefix, err)
	}

	if resp.Segment != nil {
		it.page = resp.Segment.BlobItems
	}
	it.pos = 0
	it.metrics.AddListed(len(it.page))
	return nil
}

func toObjectInfo(item *container.BlobItem) storage.ObjectInfo {
	info := storage.ObjectInfo{Name: *item.Name}
	if props := item.Properties; props != nil {
		if props.ContentLength != nil {
			info.Size = *props.ContentLength
		}
		if props.LastModified != nil {
			info.LastModified = *props.LastModified
		}
		if props.ETag != nil {
			info.ETag = string(*props.ETag)
		}
		if props.ContentType != nil {
			info.ContentType = *props.ContentType
		}
	}
	return info
}
