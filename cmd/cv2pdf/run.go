package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/hints"
)

// ErrUnknownCommand is returned for an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

// errReported wraps an error whose details were already printed.
// run only maps it to an exit code.
type errReported struct{ err error }

func (e errReported) Error() string { return e.err.Error() }
func (e errReported) Unwrap() error { return e.err }

// run dispatches a command line (without the program name) and returns the exit code.
// A first argument that is a CV file or directory runs convert.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "convert":
		err = runConvert(ctx, rest, env)
	case "serve":
		err = runServe(ctx, rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "cv2pdf %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		return runHelp(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	default:
		if strings.HasPrefix(cmd, "-") || isCVFile(cmd) {
			err = runConvert(ctx, args, env)
		} else {
			err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
			fmt.Fprintln(env.Stderr, err)
			printUsage(env.Stderr)
			return exitCodeFor(err)
		}
	}

	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	var reported errReported
	if !errors.As(err, &reported) {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for common failures, or "".
func hintFor(err error) string {
	switch {
	case cv2pdf.IsBackendError(err):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, cv2pdf.ErrConfigInvalid):
		return hints.ForInvalidCV()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, cv2pdf.ErrStyleNotFound):
		return hints.ForStyleNotFound(availableStyles())
	case errors.Is(err, syscall.EADDRINUSE):
		return hints.ForAddrInUse()
	}
	return ""
}

// triedPaths extracts the comma-separated paths from a config-not-found message.
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}

func availableStyles() []string {
	loader, err := cv2pdf.NewAssetLoader("")
	if err != nil {
		return nil
	}
	names, err := loader.ListStyles()
	if err != nil {
		return nil
	}
	return names
}
