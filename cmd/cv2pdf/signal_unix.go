//go:build !windows

package main

import (
	"os"
	"syscall"
)

// Container runtimes stop the render host with SIGTERM.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
