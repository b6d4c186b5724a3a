package latency_test

import (
	"context"
	"testing"
	"time"

	"github.com/kirinyoku/smartpark/internal/latency"
	"github.com/stretchr/testify/require"
)

func TestWait(t *testing.T) {
	t.Parallel()

	t.Run("zero returns immediately", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, latency.Wait(context.Background(), 0))
	})

	t.Run("elapses", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		require.NoError(t, latency.Wait(context.Background(), 20*time.Millisecond))
		require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := latency.Wait(ctx, time.Hour)
		require.ErrorIs(t, err, context.Canceled)
	})
}
