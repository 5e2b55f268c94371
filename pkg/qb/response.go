package qb

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Static errors for err113 compliance.
var (
	ErrEntityNotInResponse = errors.New("entity type not present in response")
)

// QueryResponse is the envelope the query endpoint wraps results in. The
// entity arrays stay encoded until asked for by type name, since the key
// is the capitalized entity type and varies per query.
type QueryResponse struct {
	StartPosition int
	MaxResults    int
	TotalCount    int
	Entities      map[string]json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler. Paging fields are lifted out
// and every remaining key is kept as a raw entity array.
func (r *QueryResponse) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing query response: %w", err)
	}

	r.Entities = make(map[string]json.RawMessage)

	for key, value := range raw {
		switch key {
		case "startPosition":
			if err := json.Unmarshal(value, &r.StartPosition); err != nil {
				return fmt.Errorf("parsing startPosition: %w", err)
			}
		case "maxResults":
			if err := json.Unmarshal(value, &r.MaxResults); err != nil {
				return fmt.Errorf("parsing maxResults: %w", err)
			}
		case "totalCount":
			if err := json.Unmarshal(value, &r.TotalCount); err != nil {
				return fmt.Errorf("parsing totalCount: %w", err)
			}
		default:
			r.Entities[key] = value
		}
	}

	return nil
}

// Unmarshal decodes the array for the named entity type into out, which
// should be a pointer to a slice of the matching entity struct.
func (r *QueryResponse) Unmarshal(entity string, out interface{}) error {
	raw, ok := r.Entities[entity]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEntityNotInResponse, entity)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s results: %w", entity, err)
	}

	return nil
}

// Has reports whether the response carries results for the entity type.
func (r *QueryResponse) Has(entity string) bool {
	_, ok := r.Entities[entity]

	return ok
}
