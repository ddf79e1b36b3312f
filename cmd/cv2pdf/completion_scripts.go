package main

import (
	"fmt"
	"io"
	"strings"
)

// globExts turns "*.json,*.yaml" into ["json", "yaml"].
func globExts(globs string) []string {
	var exts []string
	for _, g := range strings.Split(globs, ",") {
		if g = strings.TrimPrefix(strings.TrimSpace(g), "*."); g != "" {
			exts = append(exts, g)
		}
	}
	return exts
}

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

// flagWords lists --long and -short spellings of every flag.
func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// quoteSingle escapes s for a single-quoted shell string.
func quoteSingle(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(w io.Writer, cmds []commandDef) error {
	var b strings.Builder

	b.WriteString("# bash completion for cv2pdf\n")
	b.WriteString("_cv2pdf_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	fmt.Fprintf(&b, "    if [[ $COMP_CWORD -eq 1 ]]; then\n        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n        return\n    fi\n\n",
		strings.Join(commandNames(cmds), " "))

	b.WriteString("    case \"$prev\" in\n")
	seen := map[string]bool{}
	for _, c := range cmds {
		for _, f := range c.Flags {
			if seen[f.Long] {
				continue
			}
			seen[f.Long] = true
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n            return ;;\n",
					pattern, strings.Join(f.Values, " "))
			case flagFile:
				fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\"))\n            return ;;\n",
					pattern, strings.Join(globExts(f.FileGlob), "|"))
			case flagDir:
				fmt.Fprintf(&b, "        %s)\n            COMPREPLY=($(compgen -d -- \"$cur\"))\n            return ;;\n", pattern)
			}
		}
	}
	b.WriteString("    esac\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && !c.TakesFiles {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		fmt.Fprintf(&b, "            if [[ \"$cur\" == -* ]]; then\n                COMPREPLY=($(compgen -W %q -- \"$cur\"))\n",
			strings.Join(flagWords(c.Flags), " "))
		if c.TakesFiles {
			fmt.Fprintf(&b, "            else\n                COMPREPLY=($(compgen -f -X '!*.@(%s)' -- \"$cur\") $(compgen -d -- \"$cur\"))\n",
				strings.Join(globExts(c.FilePattern), "|"))
		}
		b.WriteString("            fi ;;\n")
	}
	fmt.Fprintf(&b, "        help)\n            COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        completion)\n            COMPREPLY=($(compgen -W \"bash zsh fish powershell\" -- \"$cur\")) ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("shopt -s extglob\n")
	b.WriteString("complete -F _cv2pdf_completions cv2pdf\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func zshFlagSpec(f flagDef) string {
	desc := quoteSingle(strings.NewReplacer("[", `\[`, "]", `\]`, ":", `\:`).Replace(f.Desc))

	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files -g '(" + strings.ReplaceAll(quoteSingle(f.FileGlob), ",", "|") + ")'"
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ":"
	}

	if f.Short != "" {
		return fmt.Sprintf("    '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("    '--%s[%s]%s'", f.Long, desc, action)
}

func generateZsh(w io.Writer, cmds []commandDef) error {
	var b strings.Builder

	b.WriteString("#compdef cv2pdf\n\n")
	b.WriteString("_cv2pdf() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, quoteSingle(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"${words[2]}\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && !c.TakesFiles {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n            _arguments \\\n", c.Name)
		for _, f := range c.Flags {
			b.WriteString(zshFlagSpec(f) + " \\\n")
		}
		if c.TakesFiles {
			fmt.Fprintf(&b, "                '*:CV file:_files -g \"(%s)\"'\n", strings.ReplaceAll(c.FilePattern, ",", "|"))
		} else {
			b.WriteString("                && return\n")
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("        help)\n            _describe 'command' commands ;;\n")
	b.WriteString("        completion)\n            _values 'shell' bash zsh fish powershell ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _cv2pdf cv2pdf\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func generateFish(w io.Writer, cmds []commandDef) error {
	var b strings.Builder
	names := strings.Join(commandNames(cmds), " ")

	b.WriteString("# fish completion for cv2pdf\n")
	b.WriteString("function __fish_cv2pdf_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_cv2pdf_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c cv2pdf -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c cv2pdf -n '__fish_cv2pdf_needs_command' -a %s -d '%s'\n", c.Name, quoteSingle(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("-n '__fish_cv2pdf_using_command %s'", c.Name)
		for _, f := range c.Flags {
			line := fmt.Sprintf("complete -c cv2pdf %s -l %s", cond, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += " -x -a '" + strings.Join(f.Values, " ") + "'"
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -r -x -a '(__fish_complete_directories)'"
			default:
				line += " -r"
			}
			line += " -d '" + quoteSingle(f.Desc) + "'"
			b.WriteString(line + "\n")
		}
		if c.TakesFiles {
			fmt.Fprintf(&b, "complete -c cv2pdf %s -F\n", cond)
		}
	}

	fmt.Fprintf(&b, "complete -c cv2pdf -n '__fish_cv2pdf_using_command help' -a '%s'\n", names)
	b.WriteString("complete -c cv2pdf -n '__fish_cv2pdf_using_command completion' -a 'bash zsh fish powershell'\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func generatePowerShell(w io.Writer, cmds []commandDef) error {
	var b strings.Builder

	b.WriteString("# PowerShell completion for cv2pdf\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName cv2pdf -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $elements = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n")
	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		quoted := make([]string, 0, len(c.Flags))
		for _, word := range flagWords(c.Flags) {
			quoted = append(quoted, "'"+word+"'")
		}
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, strings.Join(quoted, ", "))
	}
	b.WriteString("    }\n\n")
	b.WriteString("    if ($elements.Count -le 1 -or ($elements.Count -eq 2 -and $wordToComplete)) {\n")
	b.WriteString("        $candidates = @(")
	for i, c := range cmds {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("'" + c.Name + "'")
	}
	b.WriteString(")\n")
	b.WriteString("    } else {\n")
	b.WriteString("        $candidates = $flags[$elements[1]]\n")
	b.WriteString("    }\n\n")
	b.WriteString("    $candidates | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
