package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long   string   // long flag name without "--" (e.g., "help")
	Short  string   // short flag without "-" (e.g., "h")
	Help   string   // description text
	Values []string // suggested completion values (nil = boolean/no suggestions)
	IsFile bool     // true if the flag takes a file path
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "verbose", Short: "v", Help: "Log diagnostics to standard error"},
	{Long: "quiet", Short: "q", Help: "Print only the count"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "metrics-file", Help: "Write Prometheus metrics to a file", IsFile: true},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}},
}

// GenerateCompletion generates a shell completion script for the specified shell.
// The second positional argument completes to the given algorithm names.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - algorithms: List of accepted algorithm names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, algorithms)
	case "zsh":
		return generateZshCompletion(out, algorithms)
	case "fish":
		return generateFishCompletion(out, algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// flagNames returns every spelling of every flag ("--help", "-h", ...).
func flagNames() []string {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}
	return opts
}

func generateBashCompletion(out io.Writer, algorithms []string) error {
	var cases strings.Builder
	for _, f := range flagRegistry {
		switch {
		case f.IsFile:
			fmt.Fprintf(&cases, "        --%s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n", f.Long)
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        --%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n", f.Long, strings.Join(f.Values, " "))
		}
	}

	_, err := fmt.Fprintf(out, `# bash completion for countnums
_countnums() {
    local cur prev opts algorithms positional i
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"
    algorithms="%s"

    case "${prev}" in
%s    esac

    if [[ ${cur} == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi

    positional=0
    for (( i=1; i<COMP_CWORD; i++ )); do
        case "${COMP_WORDS[i]}" in
            --metrics-file|--completion) (( i++ )) ;;
            -*) ;;
            *) (( positional++ )) ;;
        esac
    done

    case ${positional} in
        0) COMPREPLY=( $(compgen -f -- "${cur}") ) ;;
        1) COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") ) ;;
    esac
    return 0
}
complete -F _countnums countnums
`, strings.Join(flagNames(), " "), strings.Join(algorithms, " "), cases.String())
	return err
}

func generateZshCompletion(out io.Writer, algorithms []string) error {
	var args strings.Builder
	for _, f := range flagRegistry {
		spec := ""
		switch {
		case f.IsFile:
			spec = ":file:_files"
		case len(f.Values) > 0:
			spec = fmt.Sprintf(":value:(%s)", strings.Join(f.Values, " "))
		}
		if f.Short != "" {
			fmt.Fprintf(&args, "    '(-%s --%s)'{-%s,--%s}'[%s]%s' \\\n", f.Short, f.Long, f.Short, f.Long, f.Help, spec)
		} else {
			fmt.Fprintf(&args, "    '--%s[%s]%s' \\\n", f.Long, f.Help, spec)
		}
	}

	_, err := fmt.Fprintf(out, `#compdef countnums

_countnums() {
    _arguments \
%s    '1:input file:_files' \
    '2:algorithm:(%s)' \
    '3:threshold:'
}

_countnums "$@"
`, args.String(), strings.Join(algorithms, " "))
	return err
}

func generateFishCompletion(out io.Writer, algorithms []string) error {
	var b strings.Builder
	b.WriteString("# fish completion for countnums\n")
	for _, f := range flagRegistry {
		line := "complete -c countnums"
		if f.Short != "" {
			line += " -s " + f.Short
		}
		line += " -l " + f.Long
		switch {
		case f.IsFile:
			line += " -r -F"
		case len(f.Values) > 0:
			line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
		}
		line += fmt.Sprintf(" -d '%s'\n", f.Help)
		b.WriteString(line)
	}
	fmt.Fprintf(&b, "complete -c countnums -n '__fish_is_nth_token 2' -x -a '%s' -d 'Algorithm'\n", strings.Join(algorithms, " "))
	_, err := io.WriteString(out, b.String())
	return err
}
