package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// cdcClient implements qb.CDCClient.
type cdcClient struct {
	client *Client
}

// Changes returns every record of the named entity types mutated since
// the given timestamp, including deletion tombstones.
func (c *cdcClient) Changes(ctx context.Context, entities []string, since time.Time) (*qb.ChangeSet, error) {
	params := url.Values{}
	params.Set("entities", strings.Join(entities, ","))
	params.Set("changedSince", since.UTC().Format(time.RFC3339))

	resp, err := c.client.hc.Get(ctx, "/cdc", c.client.baseQuery(params))
	if err != nil {
		return nil, fmt.Errorf("reading change data capture: %w", err)
	}

	var changes qb.ChangeSet
	if err := json.Unmarshal(resp.Body, &changes); err != nil {
		return nil, err
	}

	return &changes, nil
}
