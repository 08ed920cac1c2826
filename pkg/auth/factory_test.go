package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgl-project/abs-wagon/pkg/storage"
)

func TestConfig_Credentials(t *testing.T) {
	t.Run("sas url", func(t *testing.T) {
		c := &Config{Type: KindSASURL, SASURL: "https://acct.blob.core.windows.net/?sig=abc"}
		creds, err := c.Credentials()
		require.NoError(t, err)
		assert.Equal(t, SASURL{URL: c.SASURL}, creds)
		assert.Equal(t, KindSASURL, creds.Kind())
		assert.NotContains(t, creds.Redacted(), "abc")
	})

	t.Run("service principal", func(t *testing.T) {
		c := &Config{
			Type: KindServicePrincipal, ClientID: "id", ClientSecret: "hunter2", TenantID: "tenant",
			Endpoint: "https://acct.blob.core.windows.net/",
		}
		creds, err := c.Credentials()
		require.NoError(t, err)

		sp, ok := creds.(ServicePrincipal)
		require.True(t, ok)
		assert.Equal(t, "tenant", sp.TenantID)
		assert.NotContains(t, sp.Redacted(), "hunter2")

		tokenCred, err := sp.TokenCredential()
		require.NoError(t, err)
		assert.NotNil(t, tokenCred)
	})

	t.Run("account key", func(t *testing.T) {
		c := &Config{Type: KindAccountKey, AccountName: "acct", AccountKey: "a2V5"}
		creds, err := c.Credentials()
		require.NoError(t, err)
		assert.Equal(t, AccountKey{AccountName: "acct", AccountKey: "a2V5"}, creds)
	})

	t.Run("invalid config is an authentication error", func(t *testing.T) {
		c := &Config{Type: KindAccountKey}
		_, err := c.Credentials()
		assert.True(t, storage.IsAuthentication(err))
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(AccountNameEnvVar, "envacct")
		t.Setenv(AccountKeyEnvVar, "envkey")

		creds, err := (&Config{Type: KindEnvironment}).Credentials()
		require.NoError(t, err)
		assert.Equal(t, AccountKey{AccountName: "envacct", AccountKey: "envkey"}, creds)
	})
}

func TestFromEnvironment_Missing(t *testing.T) {
	t.Setenv(AccountNameEnvVar, "acct")
	t.Setenv(AccountKeyEnvVar, "")

	_, err := FromEnvironment()
	assert.True(t, storage.IsAuthentication(err))
	assert.Contains(t, err.Error(), AccountKeyEnvVar)
}

func TestAccountKey_ConnectionString(t *testing.T) {
	a := AccountKey{AccountName: "acct", AccountKey: "a2V5"}
	assert.Equal(t,
		"DefaultEndpointsProtocol=https;AccountName=acct;AccountKey=a2V5;EndpointSuffix=core.windows.net",
		a.ConnectionString())
	assert.NotContains(t, a.Redacted(), "a2V5")
}

func TestSASURL_Redacted(t *testing.T) {
	s := SASURL{URL: "https://acct.blob.core.windows.net/?sv=1&sig=secret"}
	assert.Equal(t, "sas_url(https://acct.blob.core.windows.net/?REDACTED)", s.Redacted())
}
