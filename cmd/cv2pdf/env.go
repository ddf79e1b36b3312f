package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/server"
)

// Pool lends converters to batch workers and to the HTTP host.
type Pool interface {
	server.Source
	Size() int
	Close() error
}

// converterPool adapts cv2pdf.ConverterPool to Pool.
type converterPool struct {
	server.PoolSource
}

func (p converterPool) Size() int    { return p.Pool.Size() }
func (p converterPool) Close() error { return p.Pool.Close() }

func newConverterPool(size int, opts ...cv2pdf.Option) (Pool, error) {
	pool, err := cv2pdf.NewConverterPool(size, opts...)
	if err != nil {
		return nil, err
	}
	return converterPool{server.PoolSource{Pool: pool}}, nil
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	NewPool func(size int, opts ...cv2pdf.Option) (Pool, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  newLogger(os.Stderr, false, false),
		NewPool: newConverterPool,
	}
}

// newLogger builds the diagnostic logger: warnings by default, info with
// --verbose, errors only with --quiet.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
