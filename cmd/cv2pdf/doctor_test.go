package main

// Notes:
// - Tests go through runDoctorCmd and inspect its output.
// - Container and CI detection read the environment, so those tests use
//   t.Setenv and do not run in parallel.
// - Chrome detection depends on the machine; only the ROD_BROWSER_BIN
//   override is asserted exactly.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"testing"
)

// doctorJSON runs doctor --json and decodes the result.
func doctorJSON(t *testing.T) (doctorResult, int) {
	t.Helper()

	var stdout bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &bytes.Buffer{}}
	code := runDoctorCmd([]string{"--json"}, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON: %v\noutput: %s", err, stdout.String())
	}
	return result, code
}

// clearDoctorEnv unsets container and CI signals for the test.
func clearDoctorEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CV2PDF_CONTAINER", "container", "KUBERNETES_SERVICE_HOST",
		"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI",
		"ROD_NO_SANDBOX", "CV2PDF_CONFIG",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_JSONOutput
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	t.Parallel()

	result, code := doctorJSON(t)

	switch result.Status {
	case statusReady, statusWarnings:
		if code != ExitSuccess {
			t.Errorf("exit code = %d for status %q, want %d", code, result.Status, ExitSuccess)
		}
	case statusErrors:
		if code != ExitGeneral {
			t.Errorf("exit code = %d for errors, want %d", code, ExitGeneral)
		}
	default:
		t.Errorf("invalid status %q", result.Status)
	}

	if result.Env.OS != runtime.GOOS || result.Env.Arch != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s", result.Env.OS, result.Env.Arch, runtime.GOOS, runtime.GOARCH)
	}
	if !result.Render.TempWritable {
		t.Error("temp directory should be writable")
	}
	if !strings.Contains(strings.Join(result.Render.Styles, ","), "default") {
		t.Errorf("Styles = %v, want the built-in default", result.Render.Styles)
	}
	if result.Render.SampleBytes == 0 {
		t.Error("sample CV did not render")
	}
	if result.Config != nil {
		t.Errorf("Config = %+v without -c", result.Config)
	}
}

func TestRunDoctorCmd_HumanOutput(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	runDoctorCmd(nil, &Environment{Stdout: &stdout, Stderr: &bytes.Buffer{}})

	out := stdout.String()
	for _, section := range []string{"cv2pdf doctor", "Browser (PDF output)", "Environment", "Rendering (HTML output)", "Styles:", "Sample CV:", "Status:"} {
		if !strings.Contains(out, section) {
			t.Errorf("output missing %q", section)
		}
	}
	if !strings.Contains(out, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("output missing platform")
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_ContainerDetection
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_ContainerDetection(t *testing.T) {
	tests := []struct {
		name     string
		envVar   string
		envVal   string
		wantHint string
	}{
		{"explicit override", "CV2PDF_CONTAINER", "1", "CV2PDF_CONTAINER=1"},
		{"kubernetes", "KUBERNETES_SERVICE_HOST", "10.0.0.1", "KUBERNETES_SERVICE_HOST"},
		{"podman", "container", "podman", "container=podman"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearDoctorEnv(t)
			if tt.envVar != "CV2PDF_CONTAINER" {
				if _, err := os.Stat("/.dockerenv"); err == nil {
					t.Skip("/.dockerenv takes priority on this machine")
				}
			}
			t.Setenv(tt.envVar, tt.envVal)

			result, _ := doctorJSON(t)
			if !result.Env.Container {
				t.Error("Container = false, want true")
			}
			if result.Env.ContainerHint != tt.wantHint {
				t.Errorf("ContainerHint = %q, want %q", result.Env.ContainerHint, tt.wantHint)
			}
		})
	}
}

func TestRunDoctorCmd_ContainerPriority(t *testing.T) {
	clearDoctorEnv(t)
	t.Setenv("CV2PDF_CONTAINER", "1")
	t.Setenv("KUBERNETES_SERVICE_HOST", "10.0.0.1")

	result, _ := doctorJSON(t)
	if result.Env.ContainerHint != "CV2PDF_CONTAINER=1" {
		t.Errorf("ContainerHint = %q, want CV2PDF_CONTAINER=1", result.Env.ContainerHint)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_CIAndSandbox
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_CIDetection(t *testing.T) {
	for _, name := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		t.Run(name, func(t *testing.T) {
			clearDoctorEnv(t)
			t.Setenv("ROD_NO_SANDBOX", "1")
			t.Setenv(name, "true")

			result, _ := doctorJSON(t)
			if !result.Env.CI {
				t.Errorf("CI = false with %s set", name)
			}
		})
	}
}

func TestRunDoctorCmd_SandboxWarning(t *testing.T) {
	tests := []struct {
		name      string
		noSandbox string
		wantWarn  bool
	}{
		{"sandbox enabled in CI", "", true},
		{"sandbox disabled in CI", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearDoctorEnv(t)
			t.Setenv("CI", "true")
			if tt.noSandbox != "" {
				t.Setenv("ROD_NO_SANDBOX", tt.noSandbox)
			}

			result, _ := doctorJSON(t)

			warned := false
			for _, w := range result.Warnings {
				if strings.Contains(w, "ROD_NO_SANDBOX") {
					warned = true
				}
			}
			if warned != tt.wantWarn {
				t.Errorf("sandbox warning = %v, want %v (warnings: %v)", warned, tt.wantWarn, result.Warnings)
			}
			if tt.wantWarn && result.Status == statusReady {
				t.Error("Status = ready with warnings present")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_BrowserBin
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_BrowserBinMissing(t *testing.T) {
	clearDoctorEnv(t)
	t.Setenv("ROD_BROWSER_BIN", "/custom/chrome/path")

	result, code := doctorJSON(t)

	if result.Env.BrowserBin != "/custom/chrome/path" {
		t.Errorf("BrowserBin = %q", result.Env.BrowserBin)
	}
	if result.Browser.Found {
		t.Error("Browser.Found = true for a missing binary")
	}
	if result.Status != statusErrors || code != ExitGeneral {
		t.Errorf("status/code = %q/%d, want errors/%d", result.Status, code, ExitGeneral)
	}
}

// ---------------------------------------------------------------------------
// TestRunDoctorCmd_Config
// ---------------------------------------------------------------------------

func TestRunDoctorCmd_Config(t *testing.T) {
	clearDoctorEnv(t)
	clearCV2PDFEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name      string
		content   string
		wantValid bool
		wantWarn  string
	}{
		{"valid", "locale: PT\npage:\n  size: letter\n", true, ""},
		{"missing logo warns", "assets:\n  logo: /nowhere/logo.png\n", true, "placeholder mark"},
		{"bad page size", "page:\n  size: a3\n", false, ""},
		{"unknown field", "footer: true\n", false, ""},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, fmt.Sprintf("cfg%d.yaml", i), tt.content)

			var stdout bytes.Buffer
			runDoctorCmd([]string{"--json", "-c", path}, &Environment{Stdout: &stdout, Stderr: &bytes.Buffer{}})

			var result doctorResult
			if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if result.Config == nil || result.Config.Name != path {
				t.Fatalf("Config = %+v, want name %s", result.Config, path)
			}
			if result.Config.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (errors: %v)", result.Config.Valid, tt.wantValid, result.Errors)
			}
			if !tt.wantValid && result.Status != statusErrors {
				t.Errorf("Status = %q, want errors", result.Status)
			}
			if tt.wantWarn != "" && !strings.Contains(strings.Join(result.Warnings, "\n"), tt.wantWarn) {
				t.Errorf("Warnings = %v, want %q", result.Warnings, tt.wantWarn)
			}
		})
	}
}

func TestRunDoctorCmd_ConfigFromEnv(t *testing.T) {
	clearDoctorEnv(t)
	clearCV2PDFEnv(t)
	path := writeFile(t, t.TempDir(), "cv2pdf.yaml", "locale: EN\n")
	t.Setenv("CV2PDF_CONFIG", path)

	result, _ := doctorJSON(t)
	if result.Config == nil || !result.Config.Valid {
		t.Errorf("Config = %+v, want CV2PDF_CONFIG checked", result.Config)
	}
}

func TestRunDoctorCmd_BadFlag(t *testing.T) {
	t.Parallel()

	env := &Environment{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	if code := runDoctorCmd([]string{"--yaml"}, env); code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
}
