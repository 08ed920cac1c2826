package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"

	"github.com/sgl-project/abs-wagon/pkg/auth"
	"github.com/sgl-project/abs-wagon/pkg/version"
)

// clientOptions disables SDK retries, every remote call is issued exactly once.
func clientOptions() *service.ClientOptions {
	return &service.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{MaxRetries: -1},
			Telemetry: policy.TelemetryOptions{
				ApplicationID: "abs-wagon/" + version.GitVersion,
			},
		},
	}
}

// newContainerClient builds a client bound to containerName for one of the
// supported credential encodings. No request is sent.
func newContainerClient(creds auth.Credentials, containerName string) (containerClient, error) {
	var (
		svc *service.Client
		err error
	)

	switch c := creds.(type) {
	case auth.SASURL:
		svc, err = service.NewClientWithNoCredential(c.URL, clientOptions())
	case auth.ServicePrincipal:
		cred, credErr := c.TokenCredential()
		if credErr != nil {
			return nil, fmt.Errorf("failed to create client secret credential: %w", credErr)
		}
		svc, err = service.NewClient(c.Endpoint, cred, clientOptions())
	case auth.AccountKey:
		svc, err = service.NewClientFromConnectionString(c.ConnectionString(), clientOptions())
	case nil:
		return nil, fmt.Errorf("no credentials provided")
	default:
		return nil, fmt.Errorf("unsupported credentials type %T", creds)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create blob service client: %w", err)
	}

	return &containerClientImpl{client: svc.NewContainerClient(containerName)}, nil
}
