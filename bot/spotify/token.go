package spotify

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/clientcredentials"
)

// TokenURL is the fixed client-credentials token endpoint.
const TokenURL = "https://accounts.spotify.com/api/token"

// TokenProvider exchanges client credentials for a bearer token.
// No caching is performed: every Fetch issues a network call, matching the
// catalog's short-lived per-request token usage in this bot.
type TokenProvider struct {
	conf *clientcredentials.Config
}

// NewTokenProvider creates a provider for the given application credentials.
func NewTokenProvider(clientID, clientSecret string) *TokenProvider {
	return &TokenProvider{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     TokenURL,
		},
	}
}

// Fetch obtains a fresh bearer token. A failed exchange or an empty token
// maps to ErrAuth; callers must treat that as "cannot proceed".
func (p *TokenProvider) Fetch(ctx context.Context) (string, error) {
	token, err := p.conf.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuth, err)
	}
	if token == nil || token.AccessToken == "" {
		return "", ErrAuth
	}
	return token.AccessToken, nil
}
