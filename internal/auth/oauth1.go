package auth

import (
	"net/http"

	"github.com/dghubble/oauth1"
)

// NewOAuth1Client returns an HTTP client that signs every request with
// OAuth 1.0a using the consumer key/secret and access token/secret
// pair. The transport layer swaps this in as its underlying client, so
// signing happens transparently on each attempt, retries included.
func NewOAuth1Client(consumerKey, consumerSecret, accessToken, accessSecret string) *http.Client {
	config := oauth1.NewConfig(consumerKey, consumerSecret)
	token := oauth1.NewToken(accessToken, accessSecret)

	return config.Client(oauth1.NoContext, token)
}
