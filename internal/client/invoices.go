package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// invoicesClient adds the void operation to the Invoice entity client.
type invoicesClient struct {
	pdfEntityClient[qb.Invoice]
}

// Void cancels an invoice while keeping the record. The invoice must
// carry Id and SyncToken.
func (e *invoicesClient) Void(ctx context.Context, invoice *qb.Invoice) (*qb.Invoice, error) {
	if invoice == nil {
		return nil, qb.ErrEntityRequired
	}

	id, syncToken := invoice.EntityRef()
	if id == "" || syncToken == "" {
		return nil, qb.ErrMissingIDAndSyncToken
	}

	return e.post(ctx, e.path, url.Values{"operation": {"void"}}, invoice)
}
