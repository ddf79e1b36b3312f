package main

// Notes:
// - Shared fakes for the convert and serve tests. fakePool hands out a
//   single fakeConverter, so no browser is started.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/server"
)

const anaJSON = `{
  "language": "EN",
  "personal": {"name": "Ana Silva", "email": "ana@example.com"},
  "sections": {"skills": ["Go", "PostgreSQL"]}
}`

const noLangYAML = `personal:
  name: Rui Costa
`

// fakeConverter records inputs and returns canned output.
type fakeConverter struct {
	mu     sync.Mutex
	inputs []cv2pdf.Input
	err    error
}

func (f *fakeConverter) Convert(_ context.Context, in cv2pdf.Input) (*cv2pdf.ConvertResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	res := &cv2pdf.ConvertResult{HTML: []byte("<html>" + in.CV.Personal.Name + "</html>")}
	if !in.HTMLOnly {
		res.PDF = []byte("%PDF-1.4 " + in.CV.Personal.Name)
	}
	return res, nil
}

func (f *fakeConverter) recorded() []cv2pdf.Input {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]cv2pdf.Input(nil), f.inputs...)
}

// fakePool implements Pool around one fakeConverter.
type fakePool struct {
	conv       *fakeConverter
	size       int
	acquireErr error

	mu       sync.Mutex
	released int
	closed   bool
	opts     int
}

var _ Pool = (*fakePool)(nil)

func (p *fakePool) Acquire(ctx context.Context) (server.Converter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.conv, nil
}

func (p *fakePool) Release(server.Converter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.released++
}

func (p *fakePool) Size() int { return p.size }

func (p *fakePool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// testEnv returns an Environment writing to buffers and lending pool.
// The requested pool size is recorded in *gotSize when non-nil.
func testEnv(pool *fakePool, gotSize *int) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
		Logger: newLogger(&stderr, false, false),
		NewPool: func(size int, opts ...cv2pdf.Option) (Pool, error) {
			if pool == nil {
				return nil, errors.New("no pool in this test")
			}
			if gotSize != nil {
				*gotSize = size
			}
			pool.opts = len(opts)
			if pool.size == 0 {
				pool.size = size
			}
			return pool, nil
		},
	}
	return env, &stdout, &stderr
}

func newFakePool() *fakePool {
	return &fakePool{conv: &fakeConverter{}}
}

// writeFile writes content under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// clearCV2PDFEnv unsets every CV2PDF_* variable for the test.
func clearCV2PDFEnv(t *testing.T) {
	t.Helper()
	for name := range knownEnvVars {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

// cv2pdfInput parses anaJSON into an HTML-only input.
func cv2pdfInput(t *testing.T) cv2pdf.Input {
	t.Helper()
	cv, err := cv2pdf.ParseCV([]byte(anaJSON))
	if err != nil {
		t.Fatalf("ParseCV() error = %v", err)
	}
	return cv2pdf.Input{CV: cv, HTMLOnly: true}
}
