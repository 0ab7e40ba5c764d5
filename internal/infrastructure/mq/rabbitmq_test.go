package mq

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-accounts-api/config"
)

// A service goroutine may still be finishing a request when the worker
// shuts down, so the input channel must stay open and accept the send.
func TestPublisherWorker_ShutdownLeavesInputUsable(t *testing.T) {
	r := New(config.MQ{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.PublisherWorker(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher worker did not stop")
	}

	require.NotPanics(t, func() {
		r.GetInputChan() <- Event{Method: "POST"}
	})
}
