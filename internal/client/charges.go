package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	internalhttp "github.com/fivetwenty-io/quickbooks-client/internal/http"
	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// chargesClient implements qb.ChargesClient against the Payments API
// host. Every mutating call carries a Request-Id header so retries
// cannot double-charge.
type chargesClient struct {
	client *Client
}

// Charge authorizes (and by default captures) a card charge.
func (c *chargesClient) Charge(ctx context.Context, charge *qb.ChargeRequest) (*qb.Charge, error) {
	if charge == nil {
		return nil, qb.ErrChargeRequired
	}

	var result qb.Charge
	if err := c.post(ctx, "/charges", charge, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetCharge fetches a charge by id.
func (c *chargesClient) GetCharge(ctx context.Context, id string) (*qb.Charge, error) {
	resp, err := c.client.paymentsHC.Get(ctx, "/charges/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting charge %s: %w", id, err)
	}

	var charge qb.Charge
	if err := json.Unmarshal(resp.Body, &charge); err != nil {
		return nil, fmt.Errorf("parsing charge: %w", err)
	}

	return &charge, nil
}

// Capture settles a previously authorized charge.
func (c *chargesClient) Capture(ctx context.Context, id string, capture *qb.CaptureRequest) (*qb.Charge, error) {
	var result qb.Charge
	if err := c.post(ctx, "/charges/"+id+"/capture", capture, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Refund refunds all or part of a settled charge.
func (c *chargesClient) Refund(ctx context.Context, id string, refund *qb.RefundRequest) (*qb.ChargeRefund, error) {
	var result qb.ChargeRefund
	if err := c.post(ctx, "/charges/"+id+"/refunds", refund, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetRefund fetches one refund on a charge.
func (c *chargesClient) GetRefund(ctx context.Context, chargeID, refundID string) (*qb.ChargeRefund, error) {
	resp, err := c.client.paymentsHC.Get(ctx, "/charges/"+chargeID+"/refunds/"+refundID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting refund %s: %w", refundID, err)
	}

	var refund qb.ChargeRefund
	if err := json.Unmarshal(resp.Body, &refund); err != nil {
		return nil, fmt.Errorf("parsing refund: %w", err)
	}

	return &refund, nil
}

func (c *chargesClient) post(ctx context.Context, path string, body, out interface{}) error {
	resp, err := c.client.paymentsHC.Do(ctx, &internalhttp.Request{
		Method:  http.MethodPost,
		Path:    path,
		Body:    body,
		Headers: map[string]string{"Request-Id": uuid.NewString()},
	})
	if err != nil {
		return fmt.Errorf("posting %s: %w", path, err)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("parsing %s response: %w", path, err)
	}

	return nil
}
