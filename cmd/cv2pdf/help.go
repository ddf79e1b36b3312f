package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Render CV files (JSON or YAML) to PDF")
	fmt.Fprintln(w, "  serve       Run the HTTP render service")
	fmt.Fprintln(w, "  doctor      Check Chrome and the environment")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "'cv2pdf cv.json' is short for 'cv2pdf convert cv.json'.")
	fmt.Fprintln(w, "Run 'cv2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf convert <cv.json|cv.yaml|dir>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Europass-style CVs to PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output path (single CV): -o, then the CV's outputPdf, then config")
	fmt.Fprintln(w, "output.defaultPath, then cv-europass.pdf. With several CVs, -o is a")
	fmt.Fprintln(w, "directory and each PDF defaults to <name>.pdf next to its input.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF timeout per CV (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "      --lang <EN|PT>        Label language (overrides the CV language)")
	fmt.Fprintln(w, "      --logo <path>         Logo for CVs without logoPath")
	fmt.Fprintln(w, "      --draft               Add the draft watermark")
	fmt.Fprintln(w)
	printLayoutUsage(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --html                Write HTML alongside the PDF")
	fmt.Fprintln(w, "      --html-only           Write HTML only (no browser needed)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and skipped images")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve CV rendering over HTTP.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Routes:")
	fmt.Fprintln(w, "  POST /v1/render           CV JSON body; ?format=html, ?draft=true, ?lang=EN")
	fmt.Fprintln(w, "  GET  /healthz             Liveness check")
	fmt.Fprintln(w, "  GET  /metrics             Prometheus metrics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -a, --addr <addr>         Listen address (default :8080)")
	fmt.Fprintln(w, "  -w, --workers <n>         Browser pool size (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-request timeout (default 60s)")
	fmt.Fprintln(w, "      --max-body <bytes>    Request body limit (default 1MB)")
	fmt.Fprintln(w, "      --image-dir <dir>     Directory request photos and logos are read from")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only log errors")
	fmt.Fprintln(w, "  -v, --verbose             Log debug details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Defaults for requests:")
	fmt.Fprintln(w, "      --lang <EN|PT>        Label language for CVs without one")
	fmt.Fprintln(w, "      --logo <path>         Logo for CVs without logoPath")
	fmt.Fprintln(w, "      --draft               Watermark every render (?draft=false opts out)")
	fmt.Fprintln(w)
	printLayoutUsage(w)
}

func printLayoutUsage(w io.Writer) {
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <mm>         Margin in millimetres (5-50)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Draft watermark:")
	fmt.Fprintln(w, "      --wm-color <hex>      Color (default #888888)")
	fmt.Fprintln(w, "      --wm-opacity <f>      Opacity 0.0-1.0 (default 0.15)")
	fmt.Fprintln(w, "      --wm-angle <deg>      Angle -90 to 90 (default 0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name|path>   CSS style name (default, compact) or file")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/<name>.css overrides")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: cv2pdf doctor [--json] [-c <config>]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome, sandbox settings, the temp directory, built-in styles,")
		fmt.Fprintln(env.Stdout, "and render a sample CV to HTML. With -c (or CV2PDF_CONFIG), also")
		fmt.Fprintln(env.Stdout, "validate that config file.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: cv2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: cv2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
