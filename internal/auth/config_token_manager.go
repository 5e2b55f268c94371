package auth

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// TokenPersister stores rotated tokens. Intuit invalidates the old
// refresh token on every refresh, so losing the rotated one strands the
// connection; CLI configs implement this to survive restarts.
type TokenPersister interface {
	UpdateTokens(accessToken string, expiresAt time.Time, refreshToken string) error
}

// PersistingTokenManager wraps OAuth2TokenManager and writes every
// rotated token through a TokenPersister.
type PersistingTokenManager struct {
	oauth2Manager *OAuth2TokenManager
	persister     TokenPersister
	mutex         sync.Mutex
	lastPersisted string
}

// NewPersistingTokenManager creates a persisting manager. The seed
// token, if any, comes from config.AccessToken.
func NewPersistingTokenManager(config *OAuth2Config, persister TokenPersister) *PersistingTokenManager {
	return &PersistingTokenManager{
		oauth2Manager: NewOAuth2TokenManager(config),
		persister:     persister,
		lastPersisted: config.AccessToken,
	}
}

// GetToken returns a valid access token, refreshing and persisting as
// needed.
func (m *PersistingTokenManager) GetToken(ctx context.Context) (string, error) {
	token, err := m.oauth2Manager.GetToken(ctx)
	if err != nil {
		return "", err
	}

	m.persistIfRotated()

	return token, nil
}

// RefreshToken forces a refresh and persists the rotated pair.
func (m *PersistingTokenManager) RefreshToken(ctx context.Context) error {
	if err := m.oauth2Manager.RefreshToken(ctx); err != nil {
		return err
	}

	m.persistIfRotated()

	return nil
}

// SetToken installs a token obtained elsewhere.
func (m *PersistingTokenManager) SetToken(token string, expiresAt time.Time) {
	m.oauth2Manager.SetToken(token, expiresAt)
}

// Revoke invalidates the refresh token. The caller is responsible for
// clearing any persisted credentials.
func (m *PersistingTokenManager) Revoke(ctx context.Context) error {
	return m.oauth2Manager.Revoke(ctx)
}

func (m *PersistingTokenManager) persistIfRotated() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	current := m.oauth2Manager.CurrentToken()
	if current == nil || current.AccessToken == m.lastPersisted {
		return
	}

	err := m.persister.UpdateTokens(current.AccessToken, current.ExpiresAt, current.RefreshToken)
	if err != nil {
		// A failed persist must not fail the request; the token still
		// works for this process lifetime.
		_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist refreshed token: %v\n", err)

		return
	}

	m.lastPersisted = current.AccessToken
}
