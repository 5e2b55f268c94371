package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sourcegraph/conc/iter"

	"github.com/fivetwenty-io/quickbooks-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/quickbooks-client/internal/http"
	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// batchClient implements qb.BatchClient.
type batchClient struct {
	client *Client
}

// Execute runs the items in chunks of the server's per-request cap.
// Chunks go out concurrently; responses come back in item order. A
// failed item surfaces in its response, not as an Execute error.
func (b *batchClient) Execute(ctx context.Context, items []qb.BatchItemRequest) ([]qb.BatchItemResponse, error) {
	if len(items) == 0 {
		return nil, qb.ErrEmptyBatch
	}

	chunks := chunkItems(items, constants.BatchMaxItems)

	mapper := iter.Mapper[[]qb.BatchItemRequest, []qb.BatchItemResponse]{
		MaxGoroutines: constants.BatchConcurrency,
	}

	results, err := mapper.MapErr(chunks, func(chunk *[]qb.BatchItemRequest) ([]qb.BatchItemResponse, error) {
		return b.executeChunk(ctx, *chunk)
	})
	if err != nil {
		return nil, err
	}

	responses := make([]qb.BatchItemResponse, 0, len(items))
	for _, result := range results {
		responses = append(responses, result...)
	}

	return responses, nil
}

func (b *batchClient) executeChunk(ctx context.Context, chunk []qb.BatchItemRequest) ([]qb.BatchItemResponse, error) {
	resp, err := b.client.hc.Do(ctx, &internalhttp.Request{
		Method: http.MethodPost,
		Path:   "/batch",
		Query:  b.client.baseQuery(nil),
		Body: map[string]interface{}{
			"BatchItemRequest": chunk,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("executing batch: %w", err)
	}

	var envelope struct {
		BatchItemResponse []qb.BatchItemResponse `json:"BatchItemResponse"`
	}

	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing batch response: %w", err)
	}

	return envelope.BatchItemResponse, nil
}

func chunkItems(items []qb.BatchItemRequest, size int) [][]qb.BatchItemRequest {
	var chunks [][]qb.BatchItemRequest

	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}

		chunks = append(chunks, items[start:end])
	}

	return chunks
}
