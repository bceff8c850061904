package gpapi

import (
	"context"
	"sync"
	"time"
)

// tokenExpiryMargin is subtracted from the processor's lifetime so a cached
// token is never sent in its last seconds.
const tokenExpiryMargin = 60 * time.Second

// tokenCache holds the bearer token used for transaction calls. Fetches are
// serialized so concurrent requests share one token request.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time

	fetch func(ctx context.Context) (*accessTokenResponse, error)
	now   func() time.Time
}

func newTokenCache(fetch func(ctx context.Context) (*accessTokenResponse, error)) *tokenCache {
	return &tokenCache{
		fetch: fetch,
		now:   time.Now,
	}
}

func (c *tokenCache) get(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt) {
		return c.token, nil
	}

	resp, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}

	lifetime := time.Duration(resp.SecondsToExpire)*time.Second - tokenExpiryMargin
	if lifetime < 0 {
		lifetime = 0
	}
	c.token = resp.Token
	c.expiresAt = c.now().Add(lifetime)

	return c.token, nil
}

// invalidate drops the cached token if it is still the one given.
func (c *tokenCache) invalidate(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token == token {
		c.token = ""
		c.expiresAt = time.Time{}
	}
}
