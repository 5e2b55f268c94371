package qb

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Static errors for err113 compliance.
var (
	ErrBatchItemMissingPayload = errors.New("batch item carries neither an entity nor a query")
	ErrBatchItemFailed         = errors.New("batch item failed")
)

// Batch operation names.
const (
	BatchOperationCreate = "create"
	BatchOperationUpdate = "update"
	BatchOperationDelete = "delete"
)

// BatchItemRequest is one operation inside a batch request. Entity items
// carry Operation plus the payload keyed by its capitalized type name;
// query items carry only Query.
type BatchItemRequest struct {
	BID        string
	Operation  string
	EntityName string
	Entity     interface{}
	Query      string
}

// MarshalJSON implements json.Marshaler. The entity payload key is
// dynamic (the entity type name), so the envelope is assembled by hand.
func (r BatchItemRequest) MarshalJSON() ([]byte, error) {
	item := map[string]interface{}{
		"bId": r.BID,
	}

	switch {
	case r.Query != "":
		item["Query"] = r.Query
	case r.Entity != nil && r.EntityName != "":
		item["operation"] = r.Operation
		item[r.EntityName] = r.Entity
	default:
		return nil, fmt.Errorf("%w: bId %q", ErrBatchItemMissingPayload, r.BID)
	}

	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("marshaling batch item %q: %w", r.BID, err)
	}

	return data, nil
}

// BatchItemResponse is one correlated result. Exactly one of Fault,
// QueryResponse, or the entity payload is set; the entity stays encoded
// under its type name until unmarshaled by the caller.
type BatchItemResponse struct {
	BID           string
	Fault         *Fault
	QueryResponse *QueryResponse
	EntityName    string
	Entity        json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *BatchItemResponse) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing batch item response: %w", err)
	}

	for key, value := range raw {
		switch key {
		case "bId":
			if err := json.Unmarshal(value, &r.BID); err != nil {
				return fmt.Errorf("parsing batch item bId: %w", err)
			}
		case "Fault":
			r.Fault = &Fault{}
			if err := json.Unmarshal(value, r.Fault); err != nil {
				return fmt.Errorf("parsing batch item fault: %w", err)
			}
		case "QueryResponse":
			r.QueryResponse = &QueryResponse{}
			if err := json.Unmarshal(value, r.QueryResponse); err != nil {
				return fmt.Errorf("parsing batch item query response: %w", err)
			}
		default:
			r.EntityName = key
			r.Entity = value
		}
	}

	return nil
}

// Failed reports whether this item came back with a fault.
func (r *BatchItemResponse) Failed() bool {
	return r.Fault != nil
}

// Err converts a fault result into an error, or returns nil for
// successful items.
func (r *BatchItemResponse) Err() error {
	if r.Fault == nil {
		return nil
	}

	if len(r.Fault.Errors) > 0 {
		return fmt.Errorf("%w: bId %q: %s", ErrBatchItemFailed, r.BID, r.Fault.Errors[0].Error())
	}

	return fmt.Errorf("%w: bId %q", ErrBatchItemFailed, r.BID)
}

// Unmarshal decodes the entity payload into out.
func (r *BatchItemResponse) Unmarshal(out interface{}) error {
	if r.Entity == nil {
		return fmt.Errorf("%w: %s", ErrEntityNotInResponse, r.BID)
	}

	if err := json.Unmarshal(r.Entity, out); err != nil {
		return fmt.Errorf("parsing batch item %q entity: %w", r.BID, err)
	}

	return nil
}

// BatchBuilder helps build batch requests. Blank bIds are filled with
// generated UUIDs so results stay correlatable.
type BatchBuilder struct {
	items []BatchItemRequest
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		items: make([]BatchItemRequest, 0),
	}
}

// AddCreate adds an entity creation item.
func (b *BatchBuilder) AddCreate(bID, entityName string, entity interface{}) *BatchBuilder {
	b.items = append(b.items, BatchItemRequest{
		BID:        orGeneratedID(bID),
		Operation:  BatchOperationCreate,
		EntityName: entityName,
		Entity:     entity,
	})

	return b
}

// AddUpdate adds an entity update item.
func (b *BatchBuilder) AddUpdate(bID, entityName string, entity interface{}) *BatchBuilder {
	b.items = append(b.items, BatchItemRequest{
		BID:        orGeneratedID(bID),
		Operation:  BatchOperationUpdate,
		EntityName: entityName,
		Entity:     entity,
	})

	return b
}

// AddDelete adds an entity deletion item; the entity must carry Id and
// SyncToken.
func (b *BatchBuilder) AddDelete(bID, entityName string, entity interface{}) *BatchBuilder {
	b.items = append(b.items, BatchItemRequest{
		BID:        orGeneratedID(bID),
		Operation:  BatchOperationDelete,
		EntityName: entityName,
		Entity:     entity,
	})

	return b
}

// AddQuery adds a raw SELECT statement item.
func (b *BatchBuilder) AddQuery(bID, query string) *BatchBuilder {
	b.items = append(b.items, BatchItemRequest{
		BID:   orGeneratedID(bID),
		Query: query,
	})

	return b
}

// AddItem adds a custom item.
func (b *BatchBuilder) AddItem(item BatchItemRequest) *BatchBuilder {
	item.BID = orGeneratedID(item.BID)
	b.items = append(b.items, item)

	return b
}

// Build returns the built items.
func (b *BatchBuilder) Build() []BatchItemRequest {
	return b.items
}

func orGeneratedID(bID string) string {
	if bID != "" {
		return bID
	}

	return uuid.NewString()
}
