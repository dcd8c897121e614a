// Command velac is the driver for the Vela semantic-analysis core: it loads
// a module pool rooted at a configured directory, runs it through macro
// expansion, symbol resolution, and bidirectional type checking (§4.2-§4.8),
// and reports the result.
//
// Grounded on the teacher's cmd/ailang/main.go (flag-based command dispatch,
// color.New(...).SprintFunc() palette, read-file-then-report-errors shape),
// adapted from ailang's run/repl/test/watch commands to this compiler's own
// check/explore commands since there is no execution stage here (§1 scope).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/pipeline"
)

var (
	Version = "dev"
	Commit  = "unknown"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

func init() {
	// The teacher's palette is always-on; we gate it on an actual tty so
	// `velac check x.cw > report.txt` doesn't embed escape codes in a file.
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func main() {
	var (
		versionFlag = flag.Bool("version", false, "print version information")
		rootFlag    = flag.String("root", "", "module search-path root (defaults to VELAC_ROOT, else the entry file's directory)")
		formatFlag  = flag.String("format", "text", "diagnostic output format: text, json, or yaml")
		compactFlag = flag.Bool("compact", false, "emit -format=json diagnostics as a single line")
		uintFlag    = flag.String("uint", "u64", "machine width bound to the uint scalar (u32 or u64)")
		sintFlag    = flag.String("sint", "s64", "machine width bound to the sint scalar (s32 or s64)")
	)
	flag.Parse()
	verrors.SetCompactJSON(*compactFlag)

	if *versionFlag {
		printVersion()
		return
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "check":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: velac check <file.cw>")
			os.Exit(1)
		}
		runCheck(flag.Arg(1), *rootFlag, *formatFlag, *uintFlag, *sintFlag)

	case "explore":
		seed := ""
		if flag.NArg() >= 2 {
			seed = flag.Arg(1)
		}
		runExplore(seed, *rootFlag, *uintFlag, *sintFlag)

	case "help":
		printHelp()

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), flag.Arg(0))
		printHelp()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("velac %s\n", bold(Version))
	if Commit != "unknown" {
		fmt.Printf("commit: %s\n", Commit)
	}
}

func printHelp() {
	fmt.Println(bold("velac - the Vela semantic analysis core"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  velac <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <file>      load, resolve and type-check a module and its imports\n", cyan("check"))
	fmt.Printf("  %s [file]    open an interactive REPL over a compiled module pool\n", cyan("explore"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -root <dir>      module search-path root")
	fmt.Println("  -format <f>      diagnostic format: text, json, or yaml")
	fmt.Println("  -compact         emit -format=json diagnostics as a single line")
	fmt.Println("  -uint/-sint <t>  machine scalar widths bound to uint/sint")
	fmt.Println("  -version         print version information")
}

// resolveRoot applies the documented Config precedence (§ AMBIENT STACK
// "Configuration"): an explicit -root flag wins, then VELAC_ROOT, then the
// entry file's own directory.
func resolveRoot(flagRoot, entryFile string) string {
	if flagRoot != "" {
		return flagRoot
	}
	if env := os.Getenv("VELAC_ROOT"); env != "" {
		return env
	}
	return dirOf(entryFile)
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return "."
}

func widthKind(s string) ast.BaseTypeKind {
	switch s {
	case "u32":
		return ast.U32
	case "u64":
		return ast.U64
	case "s32":
		return ast.S32
	case "s64":
		return ast.S64
	default:
		return ast.U64
	}
}

func runCheck(file, root, format, uintWidth, sintWidth string) {
	resolvedRoot := resolveRoot(root, file)
	cfg := pipeline.Config{
		Root:      resolvedRoot,
		Seeds:     []string{file},
		UintWidth: widthKind(uintWidth),
		SintWidth: widthKind(sintWidth),
	}

	result, err := pipeline.Compile(cfg)
	if err != nil {
		reportError(err, format)
		os.Exit(1)
	}

	if format != "text" {
		return
	}
	fmt.Printf("%s %s\n", green("✓"), fmt.Sprintf("%d module(s) checked with no errors", len(result.Modules)))
	for _, name := range result.ModuleNames() {
		fmt.Printf("  %s %s\n", cyan("·"), name)
	}
}

func reportError(err error, format string) {
	diag, ok := verrors.AsDiagnostic(err)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		return
	}
	switch format {
	case "json":
		data, _ := diag.ToDeterministicJSON()
		fmt.Fprintln(os.Stderr, string(data))
	case "yaml":
		data, _ := diag.ToYAML()
		fmt.Fprint(os.Stderr, string(data))
	default:
		fmt.Fprintf(os.Stderr, "%s %s: %s: %s\n", red("Error"), yellow(diag.Code), diag.Pos.String(), diag.Message)
		if snippet, ok := sourceLine(diag.Pos.File, diag.Pos.Line); ok {
			fmt.Fprintf(os.Stderr, "  %s\n", dim(verrors.FormatSnippet(snippet, 80)))
		}
	}
}

// sourceLine returns the 1-indexed line from file, for the text-format
// diagnostic's snippet display.
func sourceLine(file string, line int) (string, bool) {
	if file == "" || line <= 0 {
		return "", false
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", false
	}
	lines := strings.Split(string(data), "\n")
	if line > len(lines) {
		return "", false
	}
	return lines[line-1], true
}
