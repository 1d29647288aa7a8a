// Package forth is the embeddable public API for the interpreter: a small
// wrapper around internal/interp for programs that want to drive the stack
// machine without going through the cmd/forth CLI.
package forth

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/edestcroix/forthrb-go/internal/history"
	"github.com/edestcroix/forthrb-go/internal/interp"
)

// Runtime owns one interpreter session plus whatever history log it opened
// for itself (so Close can release it without the caller having to track
// the file/db handle separately).
type Runtime struct {
	in      *interp.Interp
	history history.Log
}

// New builds a Runtime with an empty stack, heap, and dictionary, applying
// opts in order.
func New(opts ...Option) *Runtime {
	cfg := &runtimeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Runtime{history: cfg.history}
	if cfg.historyPath != "" && r.history == nil {
		log, err := history.NewSQLite(cfg.historyPath)
		if err == nil {
			r.history = log
		}
	}
	if r.history != nil {
		cfg.interpOpts = append(cfg.interpOpts, interp.WithHistory(r.history))
	}

	r.in = interp.New(cfg.interpOpts...)
	return r
}

// Run drives the interpreter's read-eval loop to completion: an interactive
// session by default, or whatever Source was set with WithSource (e.g. a
// file being loaded non-interactively).
func (r *Runtime) Run() {
	r.in.Run()
}

// Eval interprets a single line as the read loop would, except that
// `quit`/`exit` are not treated specially and the line itself is not
// recorded in the history log (diagnostics still are).
func (r *Runtime) Eval(line string) {
	r.in.EvalLine(line)
}

// EvalReader interprets every line of reader in turn, in source order.
func (r *Runtime) EvalReader(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		r.in.EvalLine(scanner.Text())
	}
	return scanner.Err()
}

// EvalFile opens path and interprets it line by line.
func (r *Runtime) EvalFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return r.EvalReader(f)
}

// Stack exposes the data stack, for embedders that want to inspect results
// after Eval/EvalReader returns.
func (r *Runtime) Stack() *interp.Stack { return r.in.Stack() }

// Close releases the history log, if one was opened.
func (r *Runtime) Close() error {
	if r.history != nil {
		return r.history.Close()
	}
	return nil
}
