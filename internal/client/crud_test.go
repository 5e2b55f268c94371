package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

func TestCustomersCreate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, companyPath("/customer"), r.URL.Path)
		assert.Equal(t, "65", r.URL.Query().Get("minorversion"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]interface{}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Acme Corp", body["DisplayName"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Customer":{"Id":"42","SyncToken":"0","DisplayName":"Acme Corp"},"time":"2026-01-01T00:00:00-07:00"}`))
	}))

	customer, err := client.Customers().Create(context.Background(), &qb.Customer{
		DisplayName: "Acme Corp",
	})
	require.NoError(t, err)
	assert.Equal(t, "42", customer.ID)
	assert.Equal(t, "0", customer.SyncToken)
	assert.Equal(t, "Acme Corp", customer.DisplayName)
}

func TestCustomersCreateNil(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	_, err := client.Customers().Create(context.Background(), nil)
	require.ErrorIs(t, err, qb.ErrEntityRequired)
}

func TestCustomersGet(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, companyPath("/customer/42"), r.URL.Path)

		_, _ = w.Write([]byte(`{"Customer":{"Id":"42","DisplayName":"Acme Corp"}}`))
	}))

	customer, err := client.Customers().Get(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", customer.ID)
}

func TestCustomersGetNotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"Fault":{"Error":[{"Message":"Object Not Found","code":"610"}],"type":"ValidationFault"}}`))
	}))

	_, err := client.Customers().Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, qb.IsNotFound(err))
}

func TestCustomersUpdate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, companyPath("/customer"), r.URL.Path)
		assert.Equal(t, "update", r.URL.Query().Get("operation"))

		_, _ = w.Write([]byte(`{"Customer":{"Id":"42","SyncToken":"1","DisplayName":"Acme Corp Ltd"}}`))
	}))

	customer := &qb.Customer{DisplayName: "Acme Corp Ltd"}
	customer.ID = "42"
	customer.SyncToken = "0"

	updated, err := client.Customers().Update(context.Background(), customer)
	require.NoError(t, err)
	assert.Equal(t, "1", updated.SyncToken)
}

func TestCustomersUpdateMissingSyncToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	customer := &qb.Customer{DisplayName: "Acme Corp"}
	customer.ID = "42"

	_, err := client.Customers().Update(context.Background(), customer)
	require.ErrorIs(t, err, qb.ErrMissingIDAndSyncToken)
}

func TestCustomersDelete(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "delete", r.URL.Query().Get("operation"))

		_, _ = w.Write([]byte(`{"Customer":{"Id":"42","status":"Deleted"}}`))
	}))

	customer := &qb.Customer{}
	customer.ID = "42"
	customer.SyncToken = "0"

	deleted, err := client.Customers().Delete(context.Background(), customer)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted())
	assert.Equal(t, int32(1), calls.Load())
}

func TestCustomersDeleteByID(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch calls.Add(1) {
		case 1:
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, companyPath("/customer/42"), r.URL.Path)

			_, _ = w.Write([]byte(`{"Customer":{"Id":"42","SyncToken":"3"}}`))
		case 2:
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "delete", r.URL.Query().Get("operation"))

			var body map[string]interface{}

			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "3", body["SyncToken"])

			_, _ = w.Write([]byte(`{"Customer":{"Id":"42","status":"Deleted"}}`))
		default:
			t.Error("unexpected extra request")
		}
	}))

	deleted, err := client.Customers().DeleteByID(context.Background(), "42")
	require.NoError(t, err)
	assert.True(t, deleted.Deleted())
	assert.Equal(t, int32(2), calls.Load())
}

func TestUnwrapWithoutEnvelope(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Id":"7","DisplayName":"Bare"}`))
	}))

	customer, err := client.Customers().Get(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "7", customer.ID)
	assert.Equal(t, "Bare", customer.DisplayName)
}

func TestVendorsUseLowercasePath(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, companyPath("/purchaseorder/5"), r.URL.Path)

		_, _ = w.Write([]byte(`{"PurchaseOrder":{"Id":"5"}}`))
	}))

	order, err := client.PurchaseOrders().Get(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, "5", order.ID)
}

func TestGetCompanyInfo(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, companyPath("/companyinfo/"+testRealmID), r.URL.Path)

		_, _ = w.Write([]byte(`{"CompanyInfo":{"CompanyName":"Acme Corp","Country":"US"}}`))
	}))

	info, err := client.GetCompanyInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", info.CompanyName)
}

func TestGetPreferences(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, companyPath("/preferences"), r.URL.Path)

		_, _ = w.Write([]byte(`{"Preferences":{"Id":"1"}}`))
	}))

	prefs, err := client.GetPreferences(context.Background())
	require.NoError(t, err)
	require.NotNil(t, prefs)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	require.ErrorIs(t, err, qb.ErrConfigRequired)

	_, err = New(&qb.Config{})
	require.ErrorIs(t, err, qb.ErrRealmIDRequired)
}

func TestRevokeTokenNotSupportedForStaticToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	err := client.RevokeToken(context.Background())
	require.ErrorIs(t, err, qb.ErrRevokeNotSupported)
}
