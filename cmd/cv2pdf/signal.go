package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context cancelled by the first shutdown signal.
// A running serve drains in-flight renders; a batch stops handing out files.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
