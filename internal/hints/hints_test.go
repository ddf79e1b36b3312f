package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel() because they use t.Setenv()
//   and swap the package-level IsInContainer variable.

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestForBrowserConnect - Environment-dependent suggestions
// ---------------------------------------------------------------------------

func stubContainer(t *testing.T, inContainer bool) {
	t.Helper()
	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return inContainer }
}

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name        string
		inContainer bool
		ci          string
		noSandbox   string
		browserBin  string
		want        []string
		wantNot     []string
	}{
		{
			name:    "in CI",
			ci:      "true",
			want:    []string{"ROD_NO_SANDBOX", "ROD_BROWSER_BIN", "--html-only"},
			wantNot: nil,
		},
		{
			name:        "in Docker",
			inContainer: true,
			want:        []string{"ROD_NO_SANDBOX"},
		},
		{
			name:        "sandbox already disabled",
			inContainer: true,
			noSandbox:   "1",
			wantNot:     []string{"ROD_NO_SANDBOX"},
		},
		{
			name:       "browser bin already set",
			browserBin: "/usr/bin/chromium",
			wantNot:    []string{"ROD_BROWSER_BIN", "ROD_NO_SANDBOX"},
		},
		{
			name:        "all configured",
			inContainer: true,
			ci:          "true",
			noSandbox:   "1",
			browserBin:  "/usr/bin/chromium",
			want:        []string{"--html-only", "format=html"},
			wantNot:     []string{"ROD_NO_SANDBOX", "ROD_BROWSER_BIN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubContainer(t, tt.inContainer)
			t.Setenv("CI", tt.ci)
			t.Setenv("GITHUB_ACTIONS", "")
			t.Setenv("GITLAB_CI", "")
			t.Setenv("JENKINS_URL", "")
			t.Setenv("ROD_NO_SANDBOX", tt.noSandbox)
			t.Setenv("ROD_BROWSER_BIN", tt.browserBin)

			hint := ForBrowserConnect()

			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint format inconsistent: %q", hint)
			}
			for _, s := range tt.want {
				if !strings.Contains(hint, s) {
					t.Errorf("hint %q missing %q", hint, s)
				}
			}
			for _, s := range tt.wantNot {
				if strings.Contains(hint, s) {
					t.Errorf("hint %q should not contain %q", hint, s)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Static hints
// ---------------------------------------------------------------------------

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join("/home/ana", ".config", "go-cv2pdf", "work.yaml")

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{"no paths", nil, "--config"},
		{"suggests user config", []string{"work.yaml", userPath}, "or create " + userPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("hint = %q, want containing %q", hint, tt.contains)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if hint := ForStyleNotFound(nil); hint != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", hint)
	}
	hint := ForStyleNotFound([]string{"compact", "default"})
	if !strings.Contains(hint, "available: compact, default") {
		t.Errorf("hint = %q, want style list", hint)
	}
}

func TestForImage(t *testing.T) {
	t.Parallel()

	if hint := ForImage(""); hint != "" {
		t.Errorf("ForImage(\"\") = %q, want empty", hint)
	}
	hint := ForImage("photos/ana.tiff")
	if !strings.Contains(hint, "photos/ana.tiff") || !strings.Contains(hint, "PNG") {
		t.Errorf("hint = %q, want path and formats", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := map[string]string{
		"ForTimeout":         ForTimeout(),
		"ForOutputDirectory": ForOutputDirectory(),
		"ForInvalidCV":       ForInvalidCV(),
		"ForImage":           ForImage("logo.svg"),
		"ForConfigNotFound":  ForConfigNotFound(nil),
		"ForAddrInUse":       ForAddrInUse(),
	}

	for name, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("%s format inconsistent: %q", name, h)
		}
	}

	if !strings.Contains(ForTimeout(), "--timeout") {
		t.Error("ForTimeout should mention --timeout")
	}
	if !strings.Contains(ForInvalidCV(), "personal") {
		t.Error("ForInvalidCV should mention personal.name")
	}
}
