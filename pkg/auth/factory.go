package auth

import (
	"errors"
	"os"

	"github.com/sgl-project/abs-wagon/pkg/storage"
)

// Environment variables read by the environment fallback.
const (
	AccountNameEnvVar = "ACCOUNT_NAME"
	AccountKeyEnvVar  = "ACCOUNT_KEY"
)

// Credentials validates the configuration and builds the credentials it
// describes. Failures are reported as storage.ErrAuthentication.
func (c *Config) Credentials() (Credentials, error) {
	if err := c.Validate(); err != nil {
		return nil, storage.NewError(storage.ErrAuthentication, "resolve credentials", "", "", err)
	}

	switch c.Type {
	case KindSASURL:
		return SASURL{URL: c.SASURL}, nil
	case KindServicePrincipal:
		return ServicePrincipal{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			TenantID:     c.TenantID,
			Endpoint:     c.Endpoint,
		}, nil
	case KindAccountKey:
		return AccountKey{AccountName: c.AccountName, AccountKey: c.AccountKey}, nil
	default:
		return FromEnvironment()
	}
}

// FromEnvironment reads an account key from ACCOUNT_NAME and ACCOUNT_KEY.
func FromEnvironment() (AccountKey, error) {
	name := os.Getenv(AccountNameEnvVar)
	key := os.Getenv(AccountKeyEnvVar)
	if name == "" || key == "" {
		return AccountKey{}, storage.NewError(storage.ErrAuthentication, "resolve credentials", "", "",
			errors.New("no credentials configured and "+AccountNameEnvVar+" or "+AccountKeyEnvVar+" is not set"))
	}
	return AccountKey{AccountName: name, AccountKey: key}, nil
}
