package azure

import (
	"context"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"
)

// containerClientImpl implements containerClient on top of the SDK client
type containerClientImpl struct {
	client *container.Client
}

func (c *containerClientImpl) GetProperties(ctx context.Context, options *container.GetPropertiesOptions) (container.GetPropertiesResponse, error) {
	return c.client.GetProperties(ctx, options)
}

func (c *containerClientImpl) NewBlobClient(blobName string) blobClient {
	return &blobClientImpl{client: c.client.NewBlobClient(blobName)}
}

func (c *containerClientImpl) NewBlockBlobClient(blobName string) blockBlobClient {
	return &blockBlobClientImpl{client: c.client.NewBlockBlobClient(blobName)}
}

func (c *containerClientImpl) NewListBlobsFlatPager(options *container.ListBlobsFlatOptions) *runtime.Pager[container.ListBlobsFlatResponse] {
	return c.client.NewListBlobsFlatPager(options)
}

// blobClientImpl implements blobClient interface
type blobClientImpl struct {
	client *blob.Client
}

func (b *blobClientImpl) GetProperties(ctx context.Context, options *blob.GetPropertiesOptions) (blob.GetPropertiesResponse, error) {
	return b.client.GetProperties(ctx, options)
}

func (b *blobClientImpl) DownloadStream(ctx context.Context, options *blob.DownloadStreamOptions) (blob.DownloadStreamResponse, error) {
	return b.client.DownloadStream(ctx, options)
}

// blockBlobClientImpl implements blockBlobClient interface
type blockBlobClientImpl struct {
	client *blockblob.Client
}

func (b *blockBlobClientImpl) UploadStream(ctx context.Context, body io.Reader, options *blockblob.UploadStreamOptions) (blockblob.UploadStreamResponse, error) {
	return b.client.UploadStream(ctx, body, options)
}
