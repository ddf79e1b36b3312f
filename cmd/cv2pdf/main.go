package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// maxprocs.Set only fails on an invalid GOMAXPROCS value; the runtime
	// default then applies.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		env.Logger.Debug(fmt.Sprintf(format, args...))
	}))

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args[1:], env)
	stop()
	os.Exit(code)
}
