package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/quickbooks-client/internal/constants"
)

func TestCustomersQuery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, companyPath("/query"), r.URL.Path)
		// The statement arrives percent-escaped; the server decodes it.
		assert.Equal(t, "select * from Customer where DisplayName = 'Acme'", r.URL.Query().Get("query"))
		assert.Equal(t, "65", r.URL.Query().Get("minorversion"))

		_, _ = w.Write([]byte(`{"QueryResponse":{"Customer":[{"Id":"1"},{"Id":"2"}],"startPosition":1,"maxResults":2}}`))
	}))

	customers, err := client.Customers().Query(context.Background(), map[string]interface{}{
		"DisplayName": "Acme",
	})
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "1", customers[0].ID)
	assert.Equal(t, "2", customers[1].ID)
}

func TestQueryEscapesStatement(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Raw, before URL decoding: the fixed set is percent-escaped and
		// spaces become %20.
		assert.Contains(t, r.URL.RawQuery, "DisplayName%20%3D%20%27O%27Brien%27")

		_, _ = w.Write([]byte(`{"QueryResponse":{}}`))
	}))

	_, err := client.Customers().Query(context.Background(), map[string]interface{}{
		"DisplayName": "O'Brien",
	})
	require.NoError(t, err)
}

func TestQueryNoResults(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"QueryResponse":{}}`))
	}))

	customers, err := client.Customers().Query(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCustomersCount(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "select count(*) from Customer where Active = 'true'", r.URL.Query().Get("query"))

		_, _ = w.Write([]byte(`{"QueryResponse":{"totalCount":17}}`))
	}))

	count, err := client.Customers().Count(context.Background(), map[string]interface{}{
		"Active": true,
	})
	require.NoError(t, err)
	assert.Equal(t, 17, count)
}

func TestCustomersQueryAll(t *testing.T) {
	t.Parallel()

	pageSize := constants.QueryPageSize

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		statement := r.URL.Query().Get("query")

		switch statement {
		case fmt.Sprintf("select * from Customer maxresults %d startposition 1", pageSize):
			records := make([]string, pageSize)
			for i := range records {
				records[i] = fmt.Sprintf(`{"Id":"%d"}`, i+1)
			}

			fmt.Fprintf(w, `{"QueryResponse":{"Customer":[%s]}}`, strings.Join(records, ","))
		case fmt.Sprintf("select * from Customer maxresults %d startposition %d", pageSize, pageSize+1):
			_, _ = w.Write([]byte(`{"QueryResponse":{"Customer":[{"Id":"last"}]}}`))
		default:
			t.Errorf("unexpected query %q", statement)
		}
	}))

	customers, err := client.Customers().QueryAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, customers, pageSize+1)
	assert.Equal(t, "last", customers[pageSize].ID)
}

func TestRawQuery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "select Id, DisplayName from Customer", r.URL.Query().Get("query"))

		_, _ = w.Write([]byte(`{"QueryResponse":{"Customer":[{"Id":"1"}],"totalCount":1}}`))
	}))

	resp, err := client.Query().Raw(context.Background(), "select Id, DisplayName from Customer")
	require.NoError(t, err)
	assert.True(t, resp.Has("Customer"))
	assert.Equal(t, 1, resp.TotalCount)
}
