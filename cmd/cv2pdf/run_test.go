package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"
	"testing"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestRun_Dispatch
// ---------------------------------------------------------------------------

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"no args", nil, ExitUsage, "", "Usage: cv2pdf <command>"},
		{"version", []string{"version"}, ExitSuccess, "cv2pdf " + Version, ""},
		{"--version", []string{"--version"}, ExitSuccess, "cv2pdf " + Version, ""},
		{"help", []string{"help"}, ExitSuccess, "Usage: cv2pdf <command>", ""},
		{"-h", []string{"-h"}, ExitSuccess, "Usage: cv2pdf <command>", ""},
		{"help for command", []string{"help", "serve"}, ExitSuccess, "Usage: cv2pdf serve", ""},
		{"unknown command", []string{"render"}, ExitUsage, "", "unknown command: render"},
		{"markdown is not a CV", []string{"notes.md"}, ExitUsage, "", "unknown command: notes.md"},
		{"convert --help", []string{"convert", "--help"}, ExitSuccess, "", "Usage: cv2pdf convert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil, nil)
			if code := run(context.Background(), tt.args, env); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want containing %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want containing %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

// Errors already printed by the command are not repeated.
func TestRun_ReportedErrorsPrintedOnce(t *testing.T) {
	clearCV2PDFEnv(t)

	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.json", `{"personal": {}}`)

	env, _, stderr := testEnv(newFakePool(), nil)
	code := run(context.Background(), []string{"convert", bad}, env)

	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if n := strings.Count(stderr.String(), "invalid CV config"); n > 1 {
		t.Errorf("error printed %d times: %q", n, stderr.String())
	}
	if strings.Contains(stderr.String(), "error: ") {
		t.Errorf("reported error repeated with error prefix: %q", stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestHintFor
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"backend", fmt.Errorf("x: %w", cv2pdf.ErrPageLoad), "--html"},
		{"timeout", context.DeadlineExceeded, "--timeout"},
		{"invalid cv", cv2pdf.ErrConfigInvalid, "personal"},
		{"config not found", fmt.Errorf("%w: tried a.yaml, /home/u/.config/go-cv2pdf/a.yaml", config.ErrConfigNotFound), "create /home/u/.config/go-cv2pdf/a.yaml"},
		{"style not found", cv2pdf.ErrStyleNotFound, "default"},
		{"address in use", fmt.Errorf("serving on :8080: listen tcp :8080: %w", syscall.EADDRINUSE), "--addr"},
		{"other", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want containing %q", got, tt.want)
			}
		})
	}
}

func TestTriedPaths(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: tried a.yaml, a.yml", config.ErrConfigNotFound)
	got := triedPaths(err)
	if len(got) != 2 || got[0] != "a.yaml" || got[1] != "a.yml" {
		t.Errorf("triedPaths() = %v", got)
	}
	if got := triedPaths(errors.New("plain")); got != nil {
		t.Errorf("triedPaths(plain) = %v, want nil", got)
	}
}
