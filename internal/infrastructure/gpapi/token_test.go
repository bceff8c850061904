package gpapi

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTokenCache_CachesUntilExpiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	fetches := 0
	cache := newTokenCache(func(ctx context.Context) (*accessTokenResponse, error) {
		fetches++
		return &accessTokenResponse{Token: "tok", SecondsToExpire: 600}, nil
	})
	cache.now = clock.Now

	for i := 0; i < 3; i++ {
		token, err := cache.get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
	}
	assert.Equal(t, 1, fetches)

	clock.Advance(600*time.Second - tokenExpiryMargin)

	_, err := cache.get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestTokenCache_FetchErrorNotCached(t *testing.T) {
	fetches := 0
	cache := newTokenCache(func(ctx context.Context) (*accessTokenResponse, error) {
		fetches++
		if fetches == 1 {
			return nil, errors.New("unreachable")
		}
		return &accessTokenResponse{Token: "tok", SecondsToExpire: 600}, nil
	})

	_, err := cache.get(context.Background())
	require.Error(t, err)

	token, err := cache.get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestTokenCache_Invalidate(t *testing.T) {
	fetches := 0
	cache := newTokenCache(func(ctx context.Context) (*accessTokenResponse, error) {
		fetches++
		return &accessTokenResponse{Token: "tok", SecondsToExpire: 600}, nil
	})

	_, err := cache.get(context.Background())
	require.NoError(t, err)

	cache.invalidate("other")
	_, err = cache.get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetches)

	cache.invalidate("tok")
	_, err = cache.get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestTokenCache_ConcurrentCallersShareOneFetch(t *testing.T) {
	var mu sync.Mutex
	fetches := 0
	cache := newTokenCache(func(ctx context.Context) (*accessTokenResponse, error) {
		mu.Lock()
		fetches++
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		return &accessTokenResponse{Token: "tok", SecondsToExpire: 600}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := cache.get(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "tok", token)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fetches)
}

func TestTokenSecret(t *testing.T) {
	secret := tokenSecret("nonce", "key")

	assert.Len(t, secret, 128)
	assert.Equal(t, secret, tokenSecret("nonce", "key"))
	assert.NotEqual(t, secret, tokenSecret("nonce2", "key"))
}
