package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

const testRealmID = "9130357849520000"

// companyPath prefixes a path the way the accounting transport does.
func companyPath(path string) string {
	return "/v3/company/" + testRealmID + path
}

// newTestClient builds a client pointed at a stub server for both the
// accounting and payments APIs.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&qb.Config{
		RealmID:          testRealmID,
		APIEndpoint:      server.URL,
		PaymentsEndpoint: server.URL,
		AccessToken:      "test-token",
		MinorVersion:     65,
	})
	require.NoError(t, err)

	return client
}
