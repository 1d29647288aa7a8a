// Package interp implements the stack machine, heap, dictionary, and
// token-dispatch loop of the interpreter.
package interp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edestcroix/forthrb-go/internal/history"
	"github.com/edestcroix/forthrb-go/internal/source"
	"github.com/edestcroix/forthrb-go/internal/token"
)

// errHalt is returned by Node.Eval to signal that evaluation hit an
// unresolved word ("Bad word"). It is never a real failure: diagnostics
// for every error kind, including this one, are already emitted by the
// time errHalt is returned. It unwinds the current evalBody call and every
// IF, DO/BEGIN loop and user-word call that contains it, up to the
// interpret call for the line that triggered it.
var errHalt = errors.New("halt")

// Interp owns every piece of mutable interpreter state and is never shared
// across goroutines: the data stack, heap, dictionary/constants,
// output flags, and the current input Source.
type Interp struct {
	stack *Stack
	heap  *Heap
	dict  *Dictionary
	out   *OutputState

	stdout io.Writer
	stderr io.Writer
	color  bool

	source source.Source

	history    history.Log
	dumpOnExit bool
}

// Option configures an Interp at construction time.
type Option func(*Interp)

// WithStdout sets the runtime-output writer (default os.Stdout).
func WithStdout(w io.Writer) Option {
	return func(in *Interp) { in.stdout = w }
}

// WithStderr sets the diagnostic writer (default os.Stderr).
func WithStderr(w io.Writer) Option {
	return func(in *Interp) { in.stderr = w }
}

// WithSource sets the initial input Source (default: an interactive Source
// over os.Stdin/os.Stdout).
func WithSource(s source.Source) Option {
	return func(in *Interp) { in.source = s }
}

// WithColor enables ANSI-red diagnostic tags.
func WithColor(enabled bool) Option {
	return func(in *Interp) { in.color = enabled }
}

// WithHistory attaches a write-only transcript log.
func WithHistory(h history.Log) Option {
	return func(in *Interp) { in.history = h }
}

// WithDumpOnExit prints a final stack dump when Run returns.
func WithDumpOnExit(enabled bool) Option {
	return func(in *Interp) { in.dumpOnExit = enabled }
}

// New builds an Interp with empty stack, heap, and dictionary.
func New(opts ...Option) *Interp {
	in := &Interp{
		stack:  NewStack(),
		heap:   NewHeap(),
		dict:   NewDictionary(),
		out:    &OutputState{},
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.source == nil {
		in.source = source.NewInteractive(os.Stdin, in.stdout)
	}
	return in
}

// Stack exposes the data stack, for embedders that want to inspect
// results after EvalLine/Run returns.
func (in *Interp) Stack() *Stack { return in.stack }

// Run is the top-level READING → EVALUATING loop: it reads lines
// with prompt=true until `quit`/`exit` (either case) or end-of-input, and
// prints a final stack dump if WithDumpOnExit was set.
func (in *Interp) Run() {
	in.runLoop()
	if in.dumpOnExit {
		in.out.Dump(in.stdout, in.stack.Snapshot())
	}
}

// runLoop is the core of Run, shared with load() — load() must not trigger
// the dump-on-exit behavior, which belongs only to the program's own exit.
func (in *Interp) runLoop() {
	for {
		line, ok := in.source.ReadLine(true)
		if !ok {
			return
		}
		if in.history != nil {
			in.history.Append(line)
		}
		trimmed := strings.TrimSpace(line)
		if strings.EqualFold(trimmed, "quit") || strings.EqualFold(trimmed, "exit") {
			return
		}
		in.interpret(line)
		in.out.FlushLine(in.stdout)
	}
}

// EvalLine interprets a single line directly, for embedders that drive the
// interpreter without Source/Run (the `quit`/`exit` sentinel is not
// special-cased here — that belongs to the interactive Run loop).
func (in *Interp) EvalLine(line string) {
	in.interpret(line)
	in.out.FlushLine(in.stdout)
}

// interpret consumes line word by word. It returns true once the
// line is fully consumed, false if an unresolved word halted it early.
func (in *Interp) interpret(line string) bool {
	cur := NewCursor(line)
	for {
		w, ok := cur.GetWord()
		if !ok {
			return true
		}
		node := classify(w, cur, in.source)
		if err := node.Eval(in); err == errHalt {
			return false
		}
	}
}

// evalBody runs a pre-parsed Body (a user word, or an IF/DO/BEGIN branch).
// halted is true iff an unresolved word was hit partway through.
func (in *Interp) evalBody(body Body) (halted bool, err error) {
	for _, node := range body {
		e := node.Eval(in)
		if e == errHalt {
			return true, nil
		}
		if e != nil {
			return false, e
		}
	}
	return false, nil
}

// load replaces Source with a file-backed Source, runs it to completion,
// then restores the previous Source: the file handle is always closed
// when load returns.
func (in *Interp) load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		in.diag("BAD LOAD", fmt.Sprintf("File '%s' not found", filename))
		return nil
	}
	fileSrc := source.NewFile(f, in.stdout)
	defer fileSrc.Close()

	prev := in.source
	in.source = fileSrc
	in.runLoop()
	in.source = prev
	return nil
}

// diag emits a tagged diagnostic, coloring the bracketed tag red
// when color is enabled.
func (in *Interp) diag(tag, msg string) {
	text := fmt.Sprintf("[%s] %s", tag, msg)
	if in.color {
		text = "\x1b[31m[" + tag + "]\x1b[0m " + msg
	}
	in.out.Err(in.stderr, text)
	if in.history != nil {
		in.history.Append("! " + text)
	}
}

// diagUnderflow emits a STACK_UNDERFLOW diagnostic naming the operation and
// the available/required counts.
func (in *Interp) diagUnderflow(op string, need, have int) {
	in.diag("STACK UNDERFLOW", fmt.Sprintf("'%s' needs %d, has %d", op, need, have))
}

// isBuiltinName reports whether name resolves against the built-in tables,
// used by the BAD_DEF collision checks in VARIABLE/CONSTANT/WordDef.
func (in *Interp) isBuiltinName(name string) bool {
	_, ok := token.Resolve(name)
	return ok
}
