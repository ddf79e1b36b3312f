package main

// Notes:
// - Real signal delivery is not exercised: it is process-wide and would
//   interfere with parallel tests.

import (
	"context"
	"os"
	"slices"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("live until stop", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		if ctx.Err() != nil {
			t.Fatal("context cancelled before any signal")
		}
		stop()
		if ctx.Err() == nil {
			t.Fatal("context not cancelled after stop()")
		}
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()
		<-ctx.Done()
	})
}

func TestShutdownSignals_IncludeInterrupt(t *testing.T) {
	t.Parallel()

	if !slices.Contains(shutdownSignals, os.Interrupt) {
		t.Errorf("shutdownSignals = %v, want os.Interrupt", shutdownSignals)
	}
}
