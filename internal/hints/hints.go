// Package hints builds the follow-up lines printed under CLI errors.
// Every hint renders as "\n  hint: <text>" so it can be appended to err.Error().
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

const prefix = "\n  hint: "

// IsInContainer reports whether the process runs under Docker.
// Tests replace it.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciVars are set by the CI systems whose runners usually forbid the Chrome sandbox.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

func runningInCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests the Chrome settings a PDF render is most
// likely missing. HTML output needs no browser, so it is always offered.
func ForBrowserConnect() string {
	var parts []string
	if os.Getenv("ROD_NO_SANDBOX") != "1" && (runningInCI() || IsInContainer()) {
		parts = append(parts, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		parts = append(parts, "set ROD_BROWSER_BIN to use custom Chrome")
	}
	parts = append(parts, "use --html-only (or ?format=html) to skip the browser")
	return join(parts)
}

func ForTimeout() string {
	return line("for CVs with large photos, use --timeout flag")
}

// ForInvalidCV shows the smallest document the parser accepts.
func ForInvalidCV() string {
	return line(`a CV needs at least {"personal": {"name": "..."}}`)
}

// ForConfigNotFound points at --config and, when one of the searched paths
// is in the user config directory, offers to create it there.
func ForConfigNotFound(searchedPaths []string) string {
	userDir := filepath.Join(".config", "go-cv2pdf")
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) {
			return line("use --config /path/to/file.yaml or create " + p)
		}
	}
	return line("use --config /path/to/file.yaml")
}

func ForAddrInUse() string {
	return line("another process is listening there; pick a free one with --addr or CV2PDF_ADDR")
}

func ForOutputDirectory() string {
	return line("check parent directory exists and is writable")
}

// ForStyleNotFound lists the styles that do exist, or nothing when none are known.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return line("available: " + strings.Join(available, ", "))
}

// ForImage explains why a photo or logo is absent from the output.
// Images that cannot be embedded are dropped rather than failing the render.
func ForImage(path string) string {
	if path == "" {
		return ""
	}
	return line(path + " was skipped; supported formats: JPG, PNG, GIF, WebP up to 10MB, relative to the CV file")
}

func line(text string) string {
	if text == "" {
		return ""
	}
	return prefix + text
}

func join(parts []string) string {
	return line(strings.Join(parts, "; "))
}
