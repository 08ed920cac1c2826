package azure

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// isBlobNotFound reports whether err confirms that a blob is absent.
// A missing container is not a missing blob.
func isBlobNotFound(err error) bool {
	if err == nil {
		return false
	}
	if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ResourceNotFound) {
		return true
	}
	if bloberror.HasCode(err, bloberror.ContainerNotFound) {
		return false
	}

	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound && respErr.ErrorCode == ""
}

// isAuthFailure reports whether err means the credentials were rejected
func isAuthFailure(err error) bool {
	if err == nil {
		return false
	}

	var identityErr *azidentity.AuthenticationFailedError
	if errors.As(err, &identityErr) {
		return true
	}

	if bloberror.HasCode(err,
		bloberror.AuthenticationFailed,
		bloberror.AuthorizationFailure,
		bloberror.AuthorizationPermissionMismatch,
		bloberror.InsufficientAccountPermissions,
	) {
		return true
	}

	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) &&
		(respErr.StatusCode == http.StatusUnauthorized || respErr.StatusCode == http.StatusForbidden)
}

// verificationError names the reason a container check failed. All reasons
// still surface as storage.ErrAuthentication.
func verificationError(err error) error {
	switch {
	case isAuthFailure(err):
		return fmt.Errorf("credentials rejected: %w", err)
	case bloberror.HasCode(err, bloberror.ContainerNotFound):
		return fmt.Errorf("container does not exist: %w", err)
	default:
		return fmt.Errorf("verifying container: %w", err)
	}
}
