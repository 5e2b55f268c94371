package http_test

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/quickbooks-client/internal/http"
	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

type staticTokenManager struct {
	token     string
	refreshed atomic.Int32
}

func (m *staticTokenManager) GetToken(_ context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(_ context.Context) error {
	m.refreshed.Add(1)

	return nil
}

func (m *staticTokenManager) SetToken(token string, _ time.Time) {
	m.token = token
}

func TestClientGet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodGet, r.Method)
		assert.Equal(t, "/customer/42", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Customer":{"Id":"42"}}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, &staticTokenManager{token: "test-token"})

	resp, err := client.Get(context.Background(), "/customer/42", nil)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Body), `"Id":"42"`)
}

func TestClientPostBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, nethttp.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(nethttp.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, &staticTokenManager{token: "t"})

	_, err := client.Post(context.Background(), "/customer", map[string]string{"DisplayName": "Acme"})
	require.NoError(t, err)
}

func TestClientQueryEncoding(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "65", r.URL.Query().Get("minorversion"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	query := url.Values{}
	query.Set("minorversion", "65")

	_, err := client.Get(context.Background(), "/preferences", query)
	require.NoError(t, err)
}

func TestClientRawQuery(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "query=select%20*%20from%20Customer", r.URL.RawQuery)

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	_, err := client.Do(context.Background(), &internalhttp.Request{
		Method:   nethttp.MethodGet,
		Path:     "/query",
		RawQuery: "query=select%20*%20from%20Customer",
	})
	require.NoError(t, err)
}

func TestClientFaultError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(nethttp.StatusBadRequest)
		_, _ = w.Write([]byte(`{"Fault":{"Error":[{"Message":"Object Not Found","Detail":"Object Not Found: Customer","code":"610"}],"type":"ValidationFault"},"time":"2026-01-01T00:00:00.000-07:00"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, &staticTokenManager{token: "t"})

	_, err := client.Get(context.Background(), "/customer/missing", nil)
	require.Error(t, err)

	var respErr *qb.ResponseError

	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, nethttp.StatusBadRequest, respErr.StatusCode)
	assert.Equal(t, "610", respErr.Fault.Errors[0].Code)
	assert.True(t, qb.IsNotFound(err))
}

func TestClientNonJSONError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusForbidden)
		_, _ = w.Write([]byte("forbidden"))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	_, err := client.Get(context.Background(), "/customer/1", nil)
	require.Error(t, err)

	var respErr *qb.ResponseError

	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, nethttp.StatusForbidden, respErr.StatusCode)
	assert.Equal(t, "forbidden", respErr.Fault.Errors[0].Detail)
}

func TestClientRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(nethttp.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithRetryConfig(2, 10*time.Millisecond, 50*time.Millisecond))

	resp, err := client.Get(context.Background(), "/customer/1", nil)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		calls.Add(1)
		w.WriteHeader(nethttp.StatusBadRequest)
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithRetryConfig(3, 10*time.Millisecond, 50*time.Millisecond))

	_, err := client.Get(context.Background(), "/customer/1", nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClientRefreshesOnUnauthorized(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(nethttp.StatusUnauthorized)

			return
		}

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	manager := &staticTokenManager{token: "t"}
	client := internalhttp.NewClient(server.URL, manager)

	resp, err := client.Get(context.Background(), "/customer/1", nil)
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), manager.refreshed.Load())
}

func TestClientCustomHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))

		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Do(context.Background(), &internalhttp.Request{
		Method:  nethttp.MethodGet,
		Path:    "/invoice/1/pdf",
		Headers: map[string]string{"Accept": "application/pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(resp.Body))
}

func TestClientUserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		assert.Equal(t, "custom-agent/1.0", r.Header.Get("User-Agent"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil, internalhttp.WithUserAgent("custom-agent/1.0"))

	_, err := client.Get(context.Background(), "/companyinfo/1", nil)
	require.NoError(t, err)
}
