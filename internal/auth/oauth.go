package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fivetwenty-io/quickbooks-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoRefreshToken     = errors.New("no refresh token available")
	ErrTokenRequestFailed = errors.New("token request failed")
)

// OAuth2Config configures the refresh-token grant against the Intuit
// token endpoint.
type OAuth2Config struct {
	// TokenURL is the token endpoint; defaults to the Intuit bearer
	// endpoint when empty.
	TokenURL string
	// RevokeURL is the revocation endpoint; defaults to the Intuit
	// revoke endpoint when empty.
	RevokeURL    string
	ClientID     string
	ClientSecret string
	RefreshToken string
	// AccessToken optionally seeds the manager with a current token.
	AccessToken string
	// ExpiresAt is the expiry of the seed token, if known.
	ExpiresAt time.Time
}

// OAuth2TokenManager obtains and renews bearer tokens with the
// refresh_token grant. The client id and secret authenticate via HTTP
// Basic auth, as the Intuit endpoint requires.
type OAuth2TokenManager struct {
	config     *OAuth2Config
	store      *TokenStore
	httpClient *http.Client
	mutex      sync.Mutex
}

// NewOAuth2TokenManager creates a token manager from config.
func NewOAuth2TokenManager(config *OAuth2Config) *OAuth2TokenManager {
	manager := &OAuth2TokenManager{
		config: config,
		store:  NewTokenStore(),
		httpClient: &http.Client{
			Timeout: constants.ShortHTTPTimeout,
		},
	}

	if config.AccessToken != "" {
		manager.store.Set(&Token{
			AccessToken:  config.AccessToken,
			RefreshToken: config.RefreshToken,
			ExpiresAt:    config.ExpiresAt,
		})
	}

	return manager
}

// GetToken returns a valid access token, refreshing first if the current
// one is missing or about to expire.
func (m *OAuth2TokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token.Valid() {
		return token.AccessToken, nil
	}

	if err := m.RefreshToken(ctx); err != nil {
		return "", err
	}

	return m.store.Get().AccessToken, nil
}

// RefreshToken forces a refresh using the current refresh token. The
// rotated refresh token replaces the old one in the store.
func (m *OAuth2TokenManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	// Another caller may have refreshed while we waited on the lock.
	if token := m.store.Get(); token.Valid() {
		return nil
	}

	refreshToken := m.currentRefreshToken()
	if refreshToken == "" {
		return ErrNoRefreshToken
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	token, err := m.requestToken(ctx, form)
	if err != nil {
		return err
	}

	m.store.Set(token)

	return nil
}

// SetToken installs a token obtained elsewhere.
func (m *OAuth2TokenManager) SetToken(accessToken string, expiresAt time.Time) {
	m.store.Set(&Token{
		AccessToken:  accessToken,
		RefreshToken: m.currentRefreshToken(),
		ExpiresAt:    expiresAt,
	})
}

// CurrentToken exposes the stored token so callers can persist the
// rotated refresh token.
func (m *OAuth2TokenManager) CurrentToken() *Token {
	return m.store.Get()
}

// Revoke invalidates the refresh token, disconnecting the company. The
// stored token pair is cleared on success.
func (m *OAuth2TokenManager) Revoke(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	refreshToken := m.currentRefreshToken()
	if refreshToken == "" {
		return ErrNoRefreshToken
	}

	payload, err := json.Marshal(map[string]string{"token": refreshToken})
	if err != nil {
		return fmt.Errorf("encoding revoke request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.revokeURL(),
		strings.NewReader(string(payload)))
	if err != nil {
		return fmt.Errorf("creating revoke request: %w", err)
	}

	req.Header.Set("Content-Type", constants.ContentTypeJSON)
	req.Header.Set("Accept", constants.ContentTypeJSON)
	req.SetBasicAuth(m.config.ClientID, m.config.ClientSecret)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("%w: status %d: %s", ErrTokenRequestFailed, resp.StatusCode, string(body))
	}

	m.store.Set(&Token{})
	m.config.RefreshToken = ""

	return nil
}

func (m *OAuth2TokenManager) revokeURL() string {
	if m.config.RevokeURL != "" {
		return m.config.RevokeURL
	}

	return constants.RevokeEndpoint
}

func (m *OAuth2TokenManager) currentRefreshToken() string {
	if token := m.store.Get(); token != nil && token.RefreshToken != "" {
		return token.RefreshToken
	}

	return m.config.RefreshToken
}

func (m *OAuth2TokenManager) tokenURL() string {
	if m.config.TokenURL != "" {
		return m.config.TokenURL
	}

	return constants.TokenEndpoint
}

func (m *OAuth2TokenManager) requestToken(ctx context.Context, form url.Values) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL(),
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", constants.ContentTypeJSON)
	req.SetBasicAuth(m.config.ClientID, m.config.ClientSecret)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrTokenRequestFailed, resp.StatusCode, string(body))
	}

	var token Token
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, fmt.Errorf("parsing token response: %w", err)
	}

	if token.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	}

	return &token, nil
}
