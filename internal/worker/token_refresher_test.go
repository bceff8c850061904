package worker_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DanielPopoola/gp-payment-gateway/internal/worker"
	"github.com/stretchr/testify/assert"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type countingWarmer struct {
	calls atomic.Int32
	err   error
}

func (w *countingWarmer) WarmToken(ctx context.Context) error {
	w.calls.Add(1)
	return w.err
}

func TestTokenRefresher_WarmsImmediatelyAndOnTick(t *testing.T) {
	warmer := &countingWarmer{}
	refresher := worker.NewTokenRefresher(warmer, 10*time.Millisecond, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		refresher.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return warmer.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop after cancellation")
	}
}

func TestTokenRefresher_LogsFailures(t *testing.T) {
	logs := &lockedBuffer{}
	warmer := &countingWarmer{err: errors.New("processor unreachable")}
	refresher := worker.NewTokenRefresher(warmer, time.Hour, slog.New(slog.NewJSONHandler(logs, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		refresher.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "token refresh failed")
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, int32(1), warmer.calls.Load())
	assert.Contains(t, logs.String(), "processor unreachable")
}
