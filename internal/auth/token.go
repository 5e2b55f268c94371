package auth

import (
	"context"
	"sync"
	"time"

	"github.com/fivetwenty-io/quickbooks-client/internal/constants"
)

// TokenManager abstracts access token retrieval and refresh.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// Token holds an OAuth2 token and its refresh companion. Intuit rotates
// the refresh token on every refresh, so RefreshToken must be kept
// current alongside the access token.
type Token struct {
	AccessToken            string    `json:"access_token"`
	RefreshToken           string    `json:"refresh_token,omitempty"`
	TokenType              string    `json:"token_type,omitempty"`
	ExpiresIn              int       `json:"expires_in,omitempty"`
	XRefreshTokenExpiresIn int       `json:"x_refresh_token_expires_in,omitempty"`
	ExpiresAt              time.Time `json:"-"`
}

// Valid reports whether the token exists and is not within the
// expiration buffer of lapsing.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Add(constants.TokenExpirationBuffer).Before(t.ExpiresAt)
}

// TokenStore is a concurrency-safe holder for the current token.
type TokenStore struct {
	mutex sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token or nil.
func (s *TokenStore) Get() *Token {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// Set replaces the current token.
func (s *TokenStore) Set(token *Token) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}

// Clear drops the current token.
func (s *TokenStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = nil
}
