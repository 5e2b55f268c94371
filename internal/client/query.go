package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	internalhttp "github.com/fivetwenty-io/quickbooks-client/internal/http"
	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// baseQuery returns the standing accounting query parameters merged
// with extra.
func (c *Client) baseQuery(extra url.Values) url.Values {
	query := url.Values{}
	if c.minorVersion != "" {
		query.Set("minorversion", c.minorVersion)
	}

	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	return query
}

// runQuery executes a SELECT statement against the query endpoint and
// decodes the QueryResponse envelope. The statement is escaped with the
// endpoint's fixed character set rather than full URL encoding.
func (c *Client) runQuery(ctx context.Context, statement string) (*qb.QueryResponse, error) {
	rawQuery := "query=" + escapeStatement(statement)
	if c.minorVersion != "" {
		rawQuery += "&minorversion=" + c.minorVersion
	}

	resp, err := c.hc.Do(ctx, &internalhttp.Request{
		Method:   http.MethodGet,
		Path:     "/query",
		RawQuery: rawQuery,
	})
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}

	var envelope struct {
		QueryResponse qb.QueryResponse `json:"QueryResponse"`
	}

	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing query response: %w", err)
	}

	return &envelope.QueryResponse, nil
}

// escapeStatement makes a statement URL-safe: the endpoint's fixed
// escape set first, then spaces.
func escapeStatement(statement string) string {
	return strings.ReplaceAll(qb.EscapeQuery(statement), " ", "%20")
}

// queryClient implements qb.QueryClient.
type queryClient struct {
	client *Client
}

// Raw runs a full SELECT statement verbatim.
func (q *queryClient) Raw(ctx context.Context, query string) (*qb.QueryResponse, error) {
	return q.client.runQuery(ctx, query)
}
