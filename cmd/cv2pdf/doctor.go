package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// Doctor status values.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorSampleName is rendered by the HTML check.
const doctorSampleName = "Doctor Check"

type doctorResult struct {
	Status   string      `json:"status"`
	Browser  browserInfo `json:"browser"`
	Env      envInfo     `json:"environment"`
	Render   renderInfo  `json:"render"`
	Config   *configInfo `json:"config,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

type browserInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// renderInfo covers everything HTML output needs; none of it needs Chrome.
type renderInfo struct {
	TempWritable bool     `json:"temp_writable"`
	Styles       []string `json:"styles"`
	SampleBytes  int      `json:"sample_html_bytes"`
}

type configInfo struct {
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
}

type doctorFlags struct {
	json   bool
	config string
}

func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.BoolVar(&f.json, "json", false, "machine-readable output")
	fs.StringVarP(&f.config, "config", "c", "", "also check this config file")
	return fs
}

// runDoctorCmd runs every check and returns ExitGeneral when any failed.
// Warnings alone still exit 0.
func runDoctorCmd(args []string, env *Environment) int {
	var f doctorFlags
	fs := newDoctorFlagSet(&f)
	fs.SetOutput(env.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}
	if f.config == "" {
		f.config = os.Getenv("CV2PDF_CONFIG")
	}

	result := runDoctor(f.config)

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

func runDoctor(configName string) *doctorResult {
	r := &doctorResult{
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkBrowser(r)
	checkEnvironment(r)
	checkRender(r)
	if configName != "" {
		checkConfig(r, configName)
	}

	switch {
	case len(r.Errors) > 0:
		r.Status = statusErrors
	case len(r.Warnings) > 0:
		r.Status = statusWarnings
	default:
		r.Status = statusReady
	}
	return r
}

func (r *doctorResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *doctorResult) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// checkBrowser locates Chrome. A missing browser fails PDF output only.
func checkBrowser(r *doctorResult) {
	path := r.Env.BrowserBin
	if path == "" {
		var found bool
		if path, found = launcher.LookPath(); !found {
			r.fail("Chrome/Chromium not found. Install it or set ROD_BROWSER_BIN (--html-only works without it)")
			return
		}
	}
	if !fileutil.FileExists(path) {
		r.fail("Chrome not found at %s", path)
		return
	}

	r.Browser = browserInfo{Found: true, Path: path, Sandbox: r.Env.NoSandbox != "1"}

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- detected browser path
	if err != nil {
		r.warn("Could not get Chrome version: %v", err)
		return
	}
	r.Browser.Version = strings.TrimSpace(string(out))
}

func checkEnvironment(r *doctorResult) {
	r.Env.Container, r.Env.ContainerHint = detectContainer()

	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			r.Env.CI = true
			break
		}
	}

	if (r.Env.Container || r.Env.CI) && r.Env.NoSandbox != "1" {
		r.warn("Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// detectContainer returns the first container signal found, in priority order.
func detectContainer() (bool, string) {
	switch {
	case os.Getenv("CV2PDF_CONTAINER") == "1":
		return true, "CV2PDF_CONTAINER=1"
	case fileutil.FileExists("/.dockerenv"):
		return true, "/.dockerenv"
	case os.Getenv("container") != "":
		return true, "container=" + os.Getenv("container")
	case os.Getenv("KUBERNETES_SERVICE_HOST") != "":
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkRender verifies the temp directory the PDF step writes to, the
// built-in styles, and renders a sample CV to HTML.
func checkRender(r *doctorResult) {
	if _, cleanup, err := fileutil.WriteTempFile("doctor", "html"); err != nil {
		r.fail("Temp directory not writable: %s", os.TempDir())
	} else {
		cleanup()
		r.Render.TempWritable = true
	}

	loader, err := cv2pdf.NewAssetLoader("")
	if err == nil {
		r.Render.Styles, err = loader.ListStyles()
	}
	if err != nil || len(r.Render.Styles) == 0 {
		r.fail("Built-in styles unavailable")
	}

	conv, err := cv2pdf.NewConverter()
	if err != nil {
		r.fail("Renderer unavailable: %v", err)
		return
	}
	defer conv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sample := &cv2pdf.CV{Personal: cv2pdf.Personal{Name: doctorSampleName}}
	res, err := conv.Convert(ctx, cv2pdf.Input{CV: sample, HTMLOnly: true})
	if err != nil {
		r.fail("Sample CV did not render to HTML: %v", err)
		return
	}
	if !strings.Contains(string(res.HTML), doctorSampleName) {
		r.fail("Sample CV rendered without its name")
		return
	}
	r.Render.SampleBytes = len(res.HTML)
}

// checkConfig loads the named config and checks the values only used at render time.
func checkConfig(r *doctorResult, name string) {
	r.Config = &configInfo{Name: name}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		r.fail("Config %s: %v", name, err)
		return
	}
	if _, err := buildPageSettings(cfg); err != nil {
		r.fail("Config %s: %v", name, err)
		return
	}
	if _, err := buildWatermark(cfg); err != nil {
		r.fail("Config %s: %v", name, err)
		return
	}
	r.Config.Valid = true

	if cfg.Assets.Logo != "" && !fileutil.FileExists(cfg.Assets.Logo) {
		r.warn("Logo %s not found; the placeholder mark will be drawn", cfg.Assets.Logo)
	}
	if dir := cfg.Assets.ImageDir; dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			r.warn("Image directory %s not found; served CVs will render without photos", dir)
		}
	}
}

func printDoctorResult(w io.Writer, r *doctorResult) {
	line := func(tag, format string, args ...any) {
		fmt.Fprintf(w, "  [%s] %s\n", tag, fmt.Sprintf(format, args...))
	}

	fmt.Fprintln(w, "cv2pdf doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Browser (PDF output)")
	if r.Browser.Found {
		line("OK", "Found at %s", r.Browser.Path)
		if r.Browser.Version != "" {
			line("OK", "Version: %s", r.Browser.Version)
		}
		if r.Browser.Sandbox {
			line("OK", "Sandbox: enabled")
		} else {
			line("OK", "Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		line("ERROR", "Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	line("OK", "Platform: %s/%s", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		line("OK", "Container: detected (%s)", r.Env.ContainerHint)
	}
	if r.Env.CI {
		line("OK", "CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Rendering (HTML output)")
	if r.Render.TempWritable {
		line("OK", "Temp directory: writable")
	} else {
		line("ERROR", "Temp directory: not writable")
	}
	if len(r.Render.Styles) > 0 {
		line("OK", "Styles: %s", strings.Join(r.Render.Styles, ", "))
	}
	if r.Render.SampleBytes > 0 {
		line("OK", "Sample CV: %d bytes of HTML", r.Render.SampleBytes)
	}
	fmt.Fprintln(w)

	if r.Config != nil {
		fmt.Fprintln(w, "Config")
		if r.Config.Valid {
			line("OK", "%s: valid", r.Config.Name)
		} else {
			line("ERROR", "%s: invalid", r.Config.Name)
		}
		fmt.Fprintln(w)
	}

	for _, group := range []struct {
		title, tag string
		items      []string
	}{
		{"Warnings:", "WARN", r.Warnings},
		{"Errors:", "ERROR", r.Errors},
	} {
		if len(group.items) == 0 {
			continue
		}
		fmt.Fprintln(w, group.title)
		for _, item := range group.items {
			line(group.tag, "%s", item)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to convert")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
