package azure

import (
	"context"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	"github.com/sgl-project/abs-wagon/pkg/auth"
)

// containerClient defines the container operations a connection needs
type containerClient interface {
	GetProperties(ctx context.Context, options *container.GetPropertiesOptions) (container.GetPropertiesResponse, error)
	NewBlobClient(blobName string) blobClient
	NewBlockBlobClient(blobName string) blockBlobClient
	NewListBlobsFlatPager(options *container.ListBlobsFlatOptions) *runtime.Pager[container.ListBlobsFlatResponse]
}

// blobClient defines the interface for blob client operations
type blobClient interface {
	GetProperties(ctx context.Context, options *blob.GetPropertiesOptions) (blob.GetPropertiesResponse, error)
	DownloadStream(ctx context.Context, options *blob.DownloadStreamOptions) (blob.DownloadStreamResponse, error)
}

// blockBlobClient defines the interface for block blob client operations
type blockBlobClient interface {
	UploadStream(ctx context.Context, body io.Reader, options *blockblob.UploadStreamOptions) (blockblob.UploadStreamResponse, error)
}

// clientFactory builds the container client for a set of credentials
type clientFactory func(creds auth.Credentials, containerName string) (containerClient, error)
