package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// GetCompanyInfo fetches the company record for the client's realm.
func (c *Client) GetCompanyInfo(ctx context.Context) (*qb.CompanyInfo, error) {
	resp, err := c.hc.Get(ctx, "/companyinfo/"+c.realmID, c.baseQuery(nil))
	if err != nil {
		return nil, fmt.Errorf("getting company info: %w", err)
	}

	var envelope struct {
		CompanyInfo qb.CompanyInfo `json:"CompanyInfo"`
	}

	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing company info: %w", err)
	}

	return &envelope.CompanyInfo, nil
}

// GetPreferences fetches the company-wide preference singleton.
func (c *Client) GetPreferences(ctx context.Context) (*qb.Preferences, error) {
	resp, err := c.hc.Get(ctx, "/preferences", c.baseQuery(nil))
	if err != nil {
		return nil, fmt.Errorf("getting preferences: %w", err)
	}

	var envelope struct {
		Preferences qb.Preferences `json:"Preferences"`
	}

	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}

	return &envelope.Preferences, nil
}

// RevokeToken disconnects the company by revoking the refresh token.
func (c *Client) RevokeToken(ctx context.Context) error {
	if c.revoker == nil {
		return qb.ErrRevokeNotSupported
	}

	if err := c.revoker.Revoke(ctx); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}

	return nil
}
