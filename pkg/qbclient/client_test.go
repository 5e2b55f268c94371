package qbclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
	"github.com/fivetwenty-io/quickbooks-client/pkg/qbclient"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := qbclient.New(&qb.Config{
			RealmID:     "9130357849520000",
			AccessToken: "test-token",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := qbclient.New(nil)
		require.ErrorIs(t, err, qb.ErrConfigRequired)
	})

	t.Run("requires realm id", func(t *testing.T) {
		t.Parallel()

		_, err := qbclient.New(&qb.Config{AccessToken: "test-token"})
		require.ErrorIs(t, err, qb.ErrRealmIDRequired)
	})
}

func TestNewNormalizesEndpoint(t *testing.T) {
	t.Parallel()

	config := &qb.Config{
		RealmID:     "123",
		APIEndpoint: "api.example.com/",
		AccessToken: "test-token",
	}

	_, err := qbclient.New(config)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", config.APIEndpoint)
}

func TestNewWithToken(t *testing.T) {
	t.Parallel()

	client, err := qbclient.NewWithToken("9130357849520000", "test-token")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithOAuth2(t *testing.T) {
	t.Parallel()

	client, err := qbclient.NewWithOAuth2("9130357849520000", "client-id", "client-secret", "refresh-token")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithOAuth2RequiresRefreshToken(t *testing.T) {
	t.Parallel()

	client, err := qbclient.NewWithOAuth2("9130357849520000", "client-id", "client-secret", "")
	require.ErrorIs(t, err, qb.ErrRefreshTokenRequired)
	assert.Nil(t, client)
}

func TestNewSandbox(t *testing.T) {
	t.Parallel()

	client, err := qbclient.NewSandbox("9130357849520000", "client-id", "client-secret", "refresh-token")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientAgainstStubServer(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/company/123/companyinfo/123", r.URL.Path)

		_, _ = w.Write([]byte(`{"CompanyInfo":{"CompanyName":"Stub Co"}}`))
	}))
	defer server.Close()

	client, err := qbclient.New(&qb.Config{
		RealmID:     "123",
		APIEndpoint: server.URL,
		AccessToken: "test-token",
	})
	require.NoError(t, err)

	info, err := client.GetCompanyInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Stub Co", info.CompanyName)
}
