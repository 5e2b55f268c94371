// Package qbclient provides the main entry point for creating QuickBooks API clients
package qbclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/quickbooks-client/internal/client"
	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// New creates a new QuickBooks API client for one company realm.
func New(config *qb.Config) (qb.Client, error) {
	if config == nil {
		return nil, qb.ErrConfigRequired
	}

	if config.RealmID == "" {
		return nil, qb.ErrRealmIDRequired
	}

	config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)
	config.PaymentsEndpoint = normalizeEndpoint(config.PaymentsEndpoint)
	config.TokenURL = normalizeEndpoint(config.TokenURL)
	config.RevokeURL = normalizeEndpoint(config.RevokeURL)

	qbClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return qbClient, nil
}

// normalizeEndpoint trims trailing slashes and defaults the scheme to
// https. Empty stays empty so the config defaults apply.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return ""
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithToken creates a client for a realm with a bearer token you
// already have. The token is not refreshed when it lapses.
func NewWithToken(realmID, token string) (qb.Client, error) {
	return New(&qb.Config{
		RealmID:     realmID,
		AccessToken: token,
	})
}

// NewWithOAuth2 creates a client that obtains and renews bearer tokens
// with the OAuth2 refresh_token grant.
func NewWithOAuth2(realmID, clientID, clientSecret, refreshToken string) (qb.Client, error) {
	if refreshToken == "" {
		return nil, qb.ErrRefreshTokenRequired
	}

	return New(&qb.Config{
		RealmID:      realmID,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
	})
}

// NewSandbox creates a client against the sandbox hosts.
func NewSandbox(realmID, clientID, clientSecret, refreshToken string) (qb.Client, error) {
	return New(&qb.Config{
		RealmID:      realmID,
		Sandbox:      true,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
	})
}
