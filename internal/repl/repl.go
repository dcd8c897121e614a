// Package repl implements `velac explore`: a line-editing debug REPL over a
// compiled module pool (§6 "the produced artifact is an in-memory annotated
// AST") — not an evaluator, since this compiler has no execution stage
// (§1 scope). A user browses the corpus, a module's symbol table, and a
// module's own top-level declarations instead of running code.
//
// Grounded on the teacher's internal/repl (liner-backed prompt loop, command
// dispatch on a leading ':', persistent on-disk history, fatih/color
// palette), rewritten to browse the typecheck/typecorpus/symtab outputs
// this compiler actually produces rather than evaluate expressions.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/velalang/velac/internal/pipeline"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// Explore is one `velac explore` session, holding the last compiled
// pipeline.Result so commands can inspect it across prompts.
type Explore struct {
	Version string
	result  *pipeline.Result
	current string // name of the module :module currently focuses on
}

// New creates an Explore session, optionally preloaded with a compiled
// result (e.g. `velac explore file.cw` compiles file.cw before the first
// prompt; `velac explore` with no seed starts empty, and no command loads a
// module pool afterwards).
func New(version string, result *pipeline.Result) *Explore {
	if version == "" {
		version = "dev"
	}
	return &Explore{Version: version, result: result}
}

func (e *Explore) prompt() string {
	if e.current != "" {
		return fmt.Sprintf("velac[%s]> ", e.current)
	}
	return "velac> "
}

// Start runs the read-eval-print loop against out until the user quits or
// input reaches EOF.
func (e *Explore) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".velac_explore_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	line.SetCompleter(func(in string) (c []string) {
		if !strings.HasPrefix(in, ":") {
			return nil
		}
		for _, cmd := range []string{":help", ":quit", ":modules", ":module", ":symbols", ":type"} {
			if strings.HasPrefix(cmd, in) {
				c = append(c, cmd)
			}
		}
		return c
	})

	fmt.Fprintf(out, "%s %s\n", bold("velac explore"), bold(e.Version))
	fmt.Fprintln(out, dim("Type :help for commands, :quit to exit"))
	fmt.Fprintln(out)

	if e.result != nil {
		if names := e.result.ModuleNames(); len(names) > 0 {
			e.current = names[0]
		}
	}

	for {
		input, err := line.Prompt(e.prompt())
		if err == io.EOF {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == ":quit" || input == ":q" {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		e.handle(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func (e *Explore) handle(input string, out io.Writer) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case ":help":
		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  :help                 show this help")
		fmt.Fprintln(out, "  :quit                 exit")
		fmt.Fprintln(out, "  :modules              list every compiled module")
		fmt.Fprintln(out, "  :module <name>        focus subsequent commands on a module")
		fmt.Fprintln(out, "  :symbols [name]       list a module's declared symbols")
		fmt.Fprintln(out, "  :type <corpus-name>   print a type corpus entry's shape")

	case ":modules":
		if e.result == nil {
			fmt.Fprintln(out, yellow("no module pool loaded"))
			return
		}
		for _, name := range e.result.ModuleNames() {
			fmt.Fprintf(out, "  %s %s\n", cyan("·"), name)
		}

	case ":module":
		if len(parts) < 2 {
			fmt.Fprintln(out, "usage: :module <name>")
			return
		}
		if e.result == nil {
			fmt.Fprintln(out, yellow("no module pool loaded"))
			return
		}
		if _, ok := e.result.ModuleByName(parts[1]); !ok {
			fmt.Fprintf(out, "%s: unknown module %q\n", red("Error"), parts[1])
			return
		}
		e.current = parts[1]

	case ":symbols":
		name := e.current
		if len(parts) >= 2 {
			name = parts[1]
		}
		e.printSymbols(name, out)

	case ":type":
		if len(parts) < 2 {
			fmt.Fprintln(out, "usage: :type <corpus-name>")
			return
		}
		e.printType(parts[1], out)

	default:
		fmt.Fprintf(out, "unknown command %q, type :help\n", parts[0])
	}
}

func (e *Explore) printSymbols(name string, out io.Writer) {
	if e.result == nil {
		fmt.Fprintln(out, yellow("no module pool loaded"))
		return
	}
	inst, ok := e.result.ModuleByName(name)
	if !ok {
		fmt.Fprintf(out, "%s: unknown module %q\n", red("Error"), name)
		return
	}
	tab, ok := inst.Mod.XSymtab.(interface{ Names() []string })
	if !ok {
		fmt.Fprintln(out, yellow("module has no symbol table"))
		return
	}
	names := tab.Names()
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(out, "  %s\n", n)
	}
}

func (e *Explore) printType(name string, out io.Writer) {
	if e.result == nil {
		fmt.Fprintln(out, yellow("no module pool loaded"))
		return
	}
	entry, ok := e.result.Corpus.Lookup(name)
	if !ok {
		fmt.Fprintf(out, "%s: unknown type %q\n", red("Error"), name)
		return
	}
	fmt.Fprintf(out, "  %s (kind %d)\n", entry.Name, entry.Kind)
}
