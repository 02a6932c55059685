package cli

// Notes:
// - NotifyContext: only observable behavior is tested (creation, stop(), and
//   parent propagation). Real signal delivery is not exercised because it is
//   non-deterministic across platforms.

import (
	"context"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestNotifyContext - Context creation and cancellation behavior
// ---------------------------------------------------------------------------

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("starts not cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, stop := NotifyContext(context.Background())
		defer stop()

		select {
		case <-ctx.Done():
			t.Fatal("context should not be cancelled yet")
		default:
		}
	})

	t.Run("stop cancels context", func(t *testing.T) {
		t.Parallel()

		ctx, stop := NotifyContext(context.Background())
		stop()

		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("context should be cancelled after stop()")
		}
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := NotifyContext(parent)
		defer stop()

		cancel()

		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Fatal("context should be cancelled when parent is")
		}
	})
}
