package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/quickbooks-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/quickbooks-client/internal/http"
	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// entityRef is satisfied by every entity through the embedded base
// struct; Update and Delete read the id and sync token through it.
type entityRef interface {
	EntityRef() (id, syncToken string)
}

// entityClient implements qb.EntityCRUD for one entity type. The
// request path is the lowercased entity name; responses wrap the record
// in an envelope keyed by the capitalized name.
type entityClient[T any] struct {
	client     *Client
	entityName string
	path       string
}

func newEntityClient[T any](client *Client, entityName string) *entityClient[T] {
	return &entityClient[T]{
		client:     client,
		entityName: entityName,
		path:       "/" + strings.ToLower(entityName),
	}
}

// Create persists a new entity and returns the stored record with its
// server-assigned id and sync token.
func (e *entityClient[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, qb.ErrEntityRequired
	}

	return e.post(ctx, e.path, nil, entity)
}

// Get fetches one entity by id.
func (e *entityClient[T]) Get(ctx context.Context, id string) (*T, error) {
	resp, err := e.client.hc.Do(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   e.path + "/" + id,
		Query:  e.client.baseQuery(nil),
	})
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", e.entityName, id, err)
	}

	return e.unwrap(resp.Body)
}

// Update sends a sparse update. The entity must carry both Id and
// SyncToken; that is checked before any network traffic.
func (e *entityClient[T]) Update(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, qb.ErrEntityRequired
	}

	id, syncToken := any(entity).(entityRef).EntityRef()
	if id == "" || syncToken == "" {
		return nil, qb.ErrMissingIDAndSyncToken
	}

	return e.post(ctx, e.path, url.Values{"operation": {"update"}}, entity)
}

// Delete removes an entity. The full record is sent because the API
// requires at minimum the current Id and SyncToken.
func (e *entityClient[T]) Delete(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, qb.ErrEntityRequired
	}

	id, syncToken := any(entity).(entityRef).EntityRef()
	if id == "" || syncToken == "" {
		return nil, qb.ErrMissingIDAndSyncToken
	}

	return e.post(ctx, e.path, url.Values{"operation": {"delete"}}, entity)
}

// DeleteByID reads the current record first, then deletes it.
func (e *entityClient[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	entity, err := e.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return e.Delete(ctx, entity)
}

// Query runs a single SELECT built from criteria and returns one page
// of results.
func (e *entityClient[T]) Query(ctx context.Context, criteria interface{}) ([]T, error) {
	statement, err := qb.BuildQuery(e.entityName, criteria)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.runQuery(ctx, statement)
	if err != nil {
		return nil, err
	}

	return e.decodeResults(resp)
}

// QueryAll walks every result page. Paging clauses are appended per
// page, so criteria should not carry limit or offset.
func (e *entityClient[T]) QueryAll(ctx context.Context, criteria interface{}) ([]T, error) {
	statement, err := qb.BuildQuery(e.entityName, criteria)
	if err != nil {
		return nil, err
	}

	var all []T

	for start := 1; ; start += constants.QueryPageSize {
		paged := fmt.Sprintf("%s maxresults %d startposition %d",
			statement, constants.QueryPageSize, start)

		resp, err := e.client.runQuery(ctx, paged)
		if err != nil {
			return nil, err
		}

		page, err := e.decodeResults(resp)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)

		if len(page) < constants.QueryPageSize {
			return all, nil
		}
	}
}

// Count runs the count form of the query.
func (e *entityClient[T]) Count(ctx context.Context, criteria interface{}) (int, error) {
	statement, err := qb.BuildCountQuery(e.entityName, criteria)
	if err != nil {
		return 0, err
	}

	resp, err := e.client.runQuery(ctx, statement)
	if err != nil {
		return 0, err
	}

	return resp.TotalCount, nil
}

func (e *entityClient[T]) post(ctx context.Context, path string, query url.Values, body interface{}) (*T, error) {
	resp, err := e.client.hc.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   path,
		Query:  e.client.baseQuery(query),
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("posting %s: %w", e.entityName, err)
	}

	return e.unwrap(resp.Body)
}

// unwrap decodes a response that wraps the record under the entity type
// name. Bodies without the envelope decode as the record itself.
func (e *entityClient[T]) unwrap(body []byte) (*T, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", e.entityName, err)
	}

	raw, ok := envelope[e.entityName]
	if !ok {
		raw = body
	}

	entity := new(T)
	if err := json.Unmarshal(raw, entity); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", e.entityName, err)
	}

	return entity, nil
}

func (e *entityClient[T]) decodeResults(resp *qb.QueryResponse) ([]T, error) {
	if !resp.Has(e.entityName) {
		return []T{}, nil
	}

	var results []T
	if err := resp.Unmarshal(e.entityName, &results); err != nil {
		return nil, err
	}

	return results, nil
}
