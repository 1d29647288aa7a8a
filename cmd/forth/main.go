// Command forth is the interactive Forth interpreter CLI: an interactive
// session reading from the terminal, a non-interactive run over a file
// given as a single positional argument, or, when stdin is piped rather
// than a terminal, a non-interactive run over stdin.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/edestcroix/forthrb-go/internal/source"
	"github.com/edestcroix/forthrb-go/pkg/forth"
)

func main() {
	var (
		historyPath = flag.String("history", "", "optional SQLite path to log the session transcript (write-only, never replayed)")
		noColor     = flag.Bool("no-color", false, "disable ANSI coloring of diagnostics even on a TTY")
		dumpOnExit  = flag.Bool("dump-on-exit", false, "print a final stack dump when the interpreter exits")
	)
	flag.Parse()

	opts := []forth.Option{
		forth.WithColor(term.IsTerminal(int(os.Stderr.Fd())) && !*noColor),
	}
	if *dumpOnExit {
		opts = append(opts, forth.WithDumpOnExit(true))
	}
	if *historyPath != "" {
		opts = append(opts, forth.WithHistoryPath(*historyPath))
	}

	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[BAD LOAD] File '%s' not found\n", path)
			os.Exit(1)
		}
		opts = append(opts, forth.WithSource(source.NewFile(f, os.Stdout)))
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, forth.WithSource(source.NewInteractive(os.Stdin, os.Stdout)))
	} else {
		opts = append(opts, forth.WithSource(source.NewFile(os.Stdin, os.Stdout)))
	}

	rt := forth.New(opts...)
	defer rt.Close()
	rt.Run()
}
