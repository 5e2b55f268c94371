package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/quickbooks-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/quickbooks-client/internal/http"
)

// pdfEntityClient adds the PDF render and send endpoints to an entity
// client.
type pdfEntityClient[T any] struct {
	*entityClient[T]
}

// PDF renders the entity as a PDF document.
func (e *pdfEntityClient[T]) PDF(ctx context.Context, id string) ([]byte, error) {
	resp, err := e.client.hc.Do(ctx, &internalhttp.Request{
		Method:  http.MethodGet,
		Path:    e.path + "/" + id + "/pdf",
		Query:   e.client.baseQuery(nil),
		Headers: map[string]string{"Accept": constants.ContentTypePDF},
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s %s pdf: %w", e.entityName, id, err)
	}

	return resp.Body, nil
}

// Send emails the entity through the platform. An empty email address
// sends to the address already on the record.
func (e *pdfEntityClient[T]) Send(ctx context.Context, id, email string) (*T, error) {
	query := url.Values{}
	if email != "" {
		query.Set("sendTo", email)
	}

	return e.post(ctx, e.path+"/"+id+"/send", query, nil)
}
