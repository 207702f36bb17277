package spotify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ananevdm/SpotInfoBot-Go/bot"
)

// Resolver expands shortened catalog links to their canonical form by
// following redirects.
type Resolver struct {
	client *http.Client
	logger bot.Logger
}

// NewResolver creates a short-link resolver.
func NewResolver(logger bot.Logger) *Resolver {
	return &Resolver{
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

// Resolve follows redirects and returns the final URL. Network failures map
// to ErrResolve; callers surface a user-facing apology and stop.
func (r *Resolver) Resolve(ctx context.Context, shortURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shortURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResolve, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if r.logger != nil {
			r.logger.Error("short link resolution failed", "url", shortURL, "error", err)
		}
		return "", fmt.Errorf("%w: %v", ErrResolve, err)
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}
