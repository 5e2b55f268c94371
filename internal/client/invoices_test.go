package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

func TestInvoicesPDF(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, companyPath("/invoice/88/pdf"), r.URL.Path)
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))

	pdf, err := client.Invoices().PDF(context.Background(), "88")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(pdf))
}

func TestInvoicesSend(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, companyPath("/invoice/88/send"), r.URL.Path)
		assert.Equal(t, "billing@example.com", r.URL.Query().Get("sendTo"))

		_, _ = w.Write([]byte(`{"Invoice":{"Id":"88","EmailStatus":"EmailSent"}}`))
	}))

	invoice, err := client.Invoices().Send(context.Background(), "88", "billing@example.com")
	require.NoError(t, err)
	assert.Equal(t, "88", invoice.ID)
}

func TestInvoicesSendWithoutAddress(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("sendTo"))

		_, _ = w.Write([]byte(`{"Invoice":{"Id":"88"}}`))
	}))

	_, err := client.Invoices().Send(context.Background(), "88", "")
	require.NoError(t, err)
}

func TestInvoicesVoid(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, companyPath("/invoice"), r.URL.Path)
		assert.Equal(t, "void", r.URL.Query().Get("operation"))

		_, _ = w.Write([]byte(`{"Invoice":{"Id":"88","SyncToken":"2","PrivateNote":"Voided"}}`))
	}))

	invoice := &qb.Invoice{}
	invoice.ID = "88"
	invoice.SyncToken = "1"

	voided, err := client.Invoices().Void(context.Background(), invoice)
	require.NoError(t, err)
	assert.Equal(t, "2", voided.SyncToken)
}

func TestInvoicesVoidMissingSyncToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	invoice := &qb.Invoice{}
	invoice.ID = "88"

	_, err := client.Invoices().Void(context.Background(), invoice)
	require.ErrorIs(t, err, qb.ErrMissingIDAndSyncToken)
}

func TestEstimatesPDF(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, companyPath("/estimate/12/pdf"), r.URL.Path)
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))

		_, _ = w.Write([]byte("%PDF-1.4"))
	}))

	_, err := client.Estimates().PDF(context.Background(), "12")
	require.NoError(t, err)
}
