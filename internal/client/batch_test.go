package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

func TestBatchExecute(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, companyPath("/batch"), r.URL.Path)

		var body struct {
			BatchItemRequest []map[string]interface{} `json:"BatchItemRequest"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.BatchItemRequest, 2)
		assert.Equal(t, "bid1", body.BatchItemRequest[0]["bId"])
		assert.Equal(t, "create", body.BatchItemRequest[0]["operation"])
		assert.Contains(t, body.BatchItemRequest[0], "Customer")
		assert.Equal(t, "select * from Vendor", body.BatchItemRequest[1]["Query"])

		_, _ = w.Write([]byte(`{"BatchItemResponse":[
			{"bId":"bid1","Customer":{"Id":"1","DisplayName":"Acme"}},
			{"bId":"bid2","QueryResponse":{"Vendor":[{"Id":"9"}]}}
		]}`))
	}))

	items := qb.NewBatchBuilder().
		AddCreate("bid1", "Customer", &qb.Customer{DisplayName: "Acme"}).
		AddQuery("bid2", "select * from Vendor").
		Build()

	responses, err := client.Batch().Execute(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, responses, 2)

	var customer qb.Customer

	require.NoError(t, responses[0].Unmarshal(&customer))
	assert.Equal(t, "Acme", customer.DisplayName)
	require.NotNil(t, responses[1].QueryResponse)
	assert.True(t, responses[1].QueryResponse.Has("Vendor"))
}

func TestBatchExecuteChunks(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		var body struct {
			BatchItemRequest []map[string]interface{} `json:"BatchItemRequest"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.LessOrEqual(t, len(body.BatchItemRequest), 30)

		responses := make([]string, len(body.BatchItemRequest))
		for i, item := range body.BatchItemRequest {
			responses[i] = fmt.Sprintf(`{"bId":%q,"Customer":{"Id":"1"}}`, item["bId"])
		}

		fmt.Fprintf(w, `{"BatchItemResponse":[%s]}`, strings.Join(responses, ","))
	}))

	builder := qb.NewBatchBuilder()
	for i := range 31 {
		builder.AddCreate(fmt.Sprintf("bid%d", i), "Customer", &qb.Customer{DisplayName: "X"})
	}

	responses, err := client.Batch().Execute(context.Background(), builder.Build())
	require.NoError(t, err)
	assert.Equal(t, int32(2), requests.Load())
	require.Len(t, responses, 31)

	// Responses stay in submission order across chunks.
	for i, resp := range responses {
		assert.Equal(t, fmt.Sprintf("bid%d", i), resp.BID)
	}
}

func TestBatchExecuteEmpty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	_, err := client.Batch().Execute(context.Background(), nil)
	require.ErrorIs(t, err, qb.ErrEmptyBatch)
}

func TestBatchItemFault(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"BatchItemResponse":[
			{"bId":"bid1","Fault":{"Error":[{"Message":"Duplicate Name Exists Error","code":"6240"}],"type":"ValidationFault"}}
		]}`))
	}))

	items := qb.NewBatchBuilder().
		AddCreate("bid1", "Customer", &qb.Customer{DisplayName: "Dup"}).
		Build()

	responses, err := client.Batch().Execute(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.True(t, responses[0].Failed())
	require.Error(t, responses[0].Err())
}
