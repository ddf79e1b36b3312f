package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-cv2pdf/internal/locale"
)

// ErrInvalidFlag wraps flag parsing failures so they exit with ExitUsage.
var ErrInvalidFlag = errors.New("invalid flag")

// watermarkAngleSentinel detects if --wm-angle was explicitly set.
// Since 0 is a valid angle (horizontal), we use an out-of-range sentinel.
const watermarkAngleSentinel = -999.0

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds flags that shape the rendered CV.
type renderFlags struct {
	lang  string
	logo  string
	draft bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// watermarkFlags holds draft overlay styling flags.
type watermarkFlags struct {
	color   string
	opacity float64
	angle   float64
}

// assetFlags holds style and asset directory flags.
type assetFlags struct {
	style     string // name, CSS file path, or inline CSS
	assetPath string // custom styles directory
}

// outputFlags holds output mode flags.
type outputFlags struct {
	html     bool // HTML alongside PDF
	htmlOnly bool // HTML only, skip PDF
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	timeout    string
	render     renderFlags
	page       pageFlags
	watermark  watermarkFlags
	assets     assetFlags
	outputMode outputFlags
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common       commonFlags
	addr         string
	workers      int
	timeout      string
	maxBodyBytes int64
	imageDir     string
	render       renderFlags
	page         pageFlags
	watermark    watermarkFlags
	assets       assetFlags
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and diagnostics")
}

func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.lang, "lang", "", "label language: "+strings.Join(locale.Supported(), " or "))
	fs.StringVar(&f.logo, "logo", "", "logo image for CVs without logoPath")
	fs.BoolVar(&f.draft, "draft", false, "add the draft watermark")
}

func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in millimetres (5-50)")
}

func addWatermarkFlags(fs *flag.FlagSet, f *watermarkFlags) {
	fs.StringVar(&f.color, "wm-color", "", "draft watermark color (hex)")
	fs.Float64Var(&f.opacity, "wm-opacity", 0, "draft watermark opacity (0.0-1.0)")
	fs.Float64Var(&f.angle, "wm-angle", watermarkAngleSentinel, "draft watermark angle in degrees")
}

func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "write HTML alongside the PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")
}

// newConvertFlagSet registers every convert flag on a fresh FlagSet.
// Shared by parseConvertFlags and shell completion.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output PDF file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout per CV (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addPageFlags(fs, &f.page)
	addWatermarkFlags(fs, &f.watermark)
	addAssetFlags(fs, &f.assets)
	addOutputFlags(fs, &f.outputMode)

	return fs
}

// newServeFlagSet registers every serve flag on a fresh FlagSet.
func newServeFlagSet(f *serveFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default \":8080\")")
	fs.IntVarP(&f.workers, "workers", "w", 0, "browser pool size (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-request render timeout (e.g., 60s)")
	fs.Int64Var(&f.maxBodyBytes, "max-body", 0, "request body limit in bytes (default 1MB)")
	fs.StringVar(&f.imageDir, "image-dir", "", "directory photos and logos may be read from")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addPageFlags(fs, &f.page)
	addWatermarkFlags(fs, &f.watermark)
	addAssetFlags(fs, &f.assets)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapParseError(err)
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags.
func parseServeFlags(args []string, usage io.Writer) (*serveFlags, error) {
	f := &serveFlags{}
	fs := newServeFlagSet(f)
	fs.SetOutput(usage)
	fs.Usage = func() { printServeUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, wrapParseError(err)
	}
	return f, nil
}

// wrapParseError tags parse failures; --help passes through untouched.
func wrapParseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
}
