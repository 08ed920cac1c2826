package azure

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	"github.com/sgl-project/abs-wagon/pkg/auth"
)

type fakeBlob struct {
	data         []byte
	contentType  string
	contentMD5   []byte
	lastModified time.Time
}

// fakeContainer is an in-memory container serving the client seams.
type fakeContainer struct {
	blobs    map[string]*fakeBlob
	pageSize int
	now      func() time.Time

	containerErr error
	propsErr     error
	downloadErr  error
	uploadErr    error
	// listErrAt fails the n-th page request (1-based) when non-zero
	listErrAt int
	listErr   error

	listPrefixes []string
	pageRequests int
}

func newFakeContainer() *fakeContainer {
	return &fakeContainer{
		blobs:    map[string]*fakeBlob{},
		pageSize: 2,
		now:      time.Now,
	}
}

func (f *fakeContainer) put(key string, data string, modified time.Time) {
	f.blobs[key] = &fakeBlob{data: []byte(data), contentType: "text/plain", lastModified: modified}
}

func (f *fakeContainer) factory() clientFactory {
	return func(auth.Credentials, string) (containerClient, error) { return f, nil }
}

func (f *fakeContainer) GetProperties(context.Context, *container.GetPropertiesOptions) (container.GetPropertiesResponse, error) {
	return container.GetPropertiesResponse{}, f.containerErr
}

func (f *fakeContainer) NewBlobClient(name string) blobClient {
	return &fakeBlobClient{container: f, name: name}
}

func (f *fakeContainer) NewBlockBlobClient(name string) blockBlobClient {
	return &fakeBlobClient{container: f, name: name}
}

func (f *fakeContainer) NewListBlobsFlatPager(opts *container.ListBlobsFlatOptions) *runtime.Pager[container.ListBlobsFlatResponse] {
	var prefix string
	pageSize := f.pageSize
	if opts != nil {
		if opts.Prefix != nil {
			prefix = *opts.Prefix
		}
		if opts.MaxResults != nil {
			pageSize = int(*opts.MaxResults)
		}
	}
	f.listPrefixes = append(f.listPrefixes, prefix)

	var names []string
	for name := range f.blobs {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return runtime.NewPager(runtime.PagingHandler[container.ListBlobsFlatResponse]{
		More: func(resp container.ListBlobsFlatResponse) bool {
			return resp.NextMarker != nil && *resp.NextMarker != ""
		},
		Fetcher: func(ctx context.Context, cur *container.ListBlobsFlatResponse) (container.ListBlobsFlatResponse, error) {
			f.pageRequests++
			if f.listErrAt > 0 && f.pageRequests == f.listErrAt {
				return container.ListBlobsFlatResponse{}, f.listErr
			}
			if err := ctx.Err(); err != nil {
				return container.ListBlobsFlatResponse{}, err
			}

			start := 0
			if cur != nil && cur.NextMarker != nil {
				start, _ = strconv.Atoi(*cur.NextMarker)
			}
			end := min(start+pageSize, len(names))

			items := make([]*container.BlobItem, 0, end-start)
			for _, name := range names[start:end] {
				b := f.blobs[name]
				items = append(items, &container.BlobItem{
					Name: to.Ptr(name),
					Properties: &container.BlobProperties{
						ContentLength: to.Ptr(int64(len(b.data))),
						ContentType:   to.Ptr(b.contentType),
						LastModified:  to.Ptr(b.lastModified),
					},
				})
			}

			marker := ""
			if end < len(names) {
				marker = strconv.Itoa(end)
			}
			return container.ListBlobsFlatResponse{
				ListBlobsFlatSegmentResponse: container.ListBlobsFlatSegmentResponse{
					Segment:    &container.BlobFlatListSegment{BlobItems: items},
					NextMarker: to.Ptr(marker),
				},
			}, nil
		},
	})
}

type fakeBlobClient struct {
	container *fakeContainer
	name      string
}

func (b *fakeBlobClient) GetProperties(context.Context, *blob.GetPropertiesOptions) (blob.GetPropertiesResponse, error) {
	if b.container.propsErr != nil {
		return blob.GetPropertiesResponse{}, b.container.propsErr
	}
	fb, ok := b.container.blobs[b.name]
	if !ok {
		return blob.GetPropertiesResponse{}, responseError(http.StatusNotFound, bloberror.BlobNotFound)
	}
	return blob.GetPropertiesResponse{
		ContentLength: to.Ptr(int64(len(fb.data))),
		ContentType:   to.Ptr(fb.contentType),
		ContentMD5:    fb.contentMD5,
		LastModified:  to.Ptr(fb.lastModified),
	}, nil
}

func (b *fakeBlobClient) DownloadStream(context.Context, *blob.DownloadStreamOptions) (blob.DownloadStreamResponse, error) {
	if b.container.downloadErr != nil {
		return blob.DownloadStreamResponse{}, b.container.downloadErr
	}
	fb, ok := b.container.blobs[b.name]
	if !ok {
		return blob.DownloadStreamResponse{}, responseError(http.StatusNotFound, bloberror.BlobNotFound)
	}
	return blob.DownloadStreamResponse{
		DownloadResponse: blob.DownloadResponse{
			Body:          io.NopCloser(bytes.NewReader(fb.data)),
			ContentLength: to.Ptr(int64(len(fb.data))),
		},
	}, nil
}

func (b *fakeBlobClient) UploadStream(_ context.Context, body io.Reader, opts *blockblob.UploadStreamOptions) (blockblob.UploadStreamResponse, error) {
	if b.container.uploadErr != nil {
		return blockblob.UploadStreamResponse{}, b.container.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return blockblob.UploadStreamResponse{}, err
	}

	fb := &fakeBlob{data: data, lastModified: b.container.now()}
	if opts != nil && opts.HTTPHeaders != nil {
		if opts.HTTPHeaders.BlobContentType != nil {
			fb.contentType = *opts.HTTPHeaders.BlobContentType
		}
		fb.contentMD5 = opts.HTTPHeaders.BlobContentMD5
	}
	b.container.blobs[b.name] = fb
	return blockblob.UploadStreamResponse{}, nil
}

// responseError builds an SDK error that is safe to format.
func responseError(status int, code bloberror.Code) error {
	req, _ := http.NewRequest(http.MethodGet, "https://acct.blob.core.windows.net/artifacts", nil)
	return &azcore.ResponseError{
		ErrorCode:  string(code),
		StatusCode: status,
		RawResponse: &http.Response{
			Status:     http.StatusText(status),
			StatusCode: status,
			Request:    req,
			Header:     http.Header{},
			Body:       http.NoBody,
		},
	}
}
