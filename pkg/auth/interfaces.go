package auth

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// Kind names one of the supported credential encodings
type Kind string

const (
	KindSASURL           Kind = "sas_url"
	KindServicePrincipal Kind = "service_principal"
	KindAccountKey       Kind = "account_key"

	// KindEnvironment resolves to an AccountKey read from ACCOUNT_NAME and ACCOUNT_KEY
	KindEnvironment Kind = "environment"
)

// ConnectionStringTemplate is filled with the account name and key.
const ConnectionStringTemplate = "DefaultEndpointsProtocol=https;AccountName=%s;AccountKey=%s;EndpointSuffix=core.windows.net"

// Credentials is one of SASURL, ServicePrincipal or AccountKey.
type Credentials interface {
	Kind() Kind

	// Redacted describes the credentials without leaking secrets, for logs.
	Redacted() string

	sealed()
}

// SASURL is a service URL carrying a shared access signature
type SASURL struct {
	URL string
}

func (SASURL) Kind() Kind { return KindSASURL }

func (s SASURL) Redacted() string { return "sas_url(" + redactQuery(s.URL) + ")" }

func (SASURL) sealed() {}

// ServicePrincipal authenticates an Azure AD application with a client secret
// against the blob service at Endpoint.
type ServicePrincipal struct {
	ClientID     string
	ClientSecret string
	TenantID     string
	Endpoint     string
}

func (ServicePrincipal) Kind() Kind { return KindServicePrincipal }

func (s ServicePrincipal) Redacted() string {
	return fmt.Sprintf("service_principal(client_id=%s, tenant_id=%s, endpoint=%s)", s.ClientID, s.TenantID, s.Endpoint)
}

func (ServicePrincipal) sealed() {}

// TokenCredential builds the azidentity credential for this principal
func (s ServicePrincipal) TokenCredential() (azcore.TokenCredential, error) {
	return azidentity.NewClientSecretCredential(s.TenantID, s.ClientID, s.ClientSecret, nil)
}

// AccountKey is a storage account name and its shared key
type AccountKey struct {
	AccountName string
	AccountKey  string
}

func (AccountKey) Kind() Kind { return KindAccountKey }

func (a AccountKey) Redacted() string { return "account_key(account_name=" + a.AccountName + ")" }

func (AccountKey) sealed() {}

// ConnectionString renders the account as an Azure storage connection string
func (a AccountKey) ConnectionString() string {
	return fmt.Sprintf(ConnectionStringTemplate, a.AccountName, a.AccountKey)
}
