package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-cv2pdf/internal/locale"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota
	flagBool
	flagInt
	flagFloat
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string // enum flags
	FileGlob string   // file flags, comma-separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool
	FilePattern string // comma-separated globs for file arguments
}

// valueKinds maps pflag value types to completion types. Unlisted types
// (string, duration) complete as free text.
var valueKinds = map[string]flagType{
	"bool":    flagBool,
	"int":     flagInt,
	"int64":   flagInt,
	"float64": flagFloat,
}

// flagArgs refines completion for flags whose argument has a known shape:
// a fixed set of words, files matching globs, or a directory.
var flagArgs = map[string]func(*flagDef){
	"page-size":   enumOf("a4", "letter", "legal"),
	"orientation": enumOf("portrait", "landscape"),
	"lang":        enumOf(locale.Supported()...),

	"config": filesOf("*.yaml,*.yml"),
	"style":  filesOf("*.css"),
	"logo":   filesOf("*.png,*.jpg,*.jpeg,*.gif,*.webp"),

	"output":     dirArg,
	"asset-path": dirArg,
	"image-dir":  dirArg,
}

func enumOf(values ...string) func(*flagDef) {
	return func(fd *flagDef) { fd.Type, fd.Values = flagEnum, values }
}

func filesOf(glob string) func(*flagDef) {
	return func(fd *flagDef) { fd.Type, fd.FileGlob = flagFile, glob }
}

func dirArg(fd *flagDef) { fd.Type = flagDir }

// extractFlagsFromFlagSet reads completion data from the flag set the command
// actually parses, so scripts cannot drift from the real flags.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var defs []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage, Type: valueKinds[f.Value.Type()]}
		if refine, ok := flagArgs[f.Name]; ok {
			refine(&fd)
		}
		defs = append(defs, fd)
	})
	return defs
}

// getCommands returns the command registry for completion.
// Flags are extracted from the real FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Render CV files to PDF",
			Flags:       extractFlagsFromFlagSet(newConvertFlagSet(&convertFlags{})),
			TakesFiles:  true,
			FilePattern: "*.json,*.yaml,*.yml",
		},
		{
			Name:  "serve",
			Desc:  "Run the HTTP render service",
			Flags: extractFlagsFromFlagSet(newServeFlagSet(&serveFlags{})),
		},
		{
			Name:  "doctor",
			Desc:  "Check Chrome and the environment",
			Flags: extractFlagsFromFlagSet(newDoctorFlagSet(&doctorFlags{})),
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
		{Name: "completion", Desc: "Generate shell completion script"},
	}
}

// GenerateCompletion writes shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()
	switch shell {
	case ShellBash:
		return generateBash(w, cmds)
	case ShellZsh:
		return generateZsh(w, cmds)
	case ShellFish:
		return generateFish(w, cmds)
	case ShellPowerShell:
		return generatePowerShell(w, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(cv2pdf completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (before compinit):")
	fmt.Fprintln(w, "    eval \"$(cv2pdf completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    cv2pdf completion fish > ~/.config/fish/completions/cv2pdf.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    cv2pdf completion powershell | Out-String | Invoke-Expression")
}
