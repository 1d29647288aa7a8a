package forth

import (
	"io"

	"github.com/edestcroix/forthrb-go/internal/history"
	"github.com/edestcroix/forthrb-go/internal/interp"
	"github.com/edestcroix/forthrb-go/internal/source"
)

// runtimeConfig accumulates interp.Options plus the one Runtime-level
// concern (where/whether to open a history log) before New builds the
// Interp.
type runtimeConfig struct {
	interpOpts  []interp.Option
	history     history.Log
	historyPath string
}

// Option configures a Runtime at construction time.
type Option func(*runtimeConfig)

// WithStdout sets the runtime-output writer (default os.Stdout).
func WithStdout(w io.Writer) Option {
	return func(c *runtimeConfig) { c.interpOpts = append(c.interpOpts, interp.WithStdout(w)) }
}

// WithStderr sets the diagnostic writer (default os.Stderr).
func WithStderr(w io.Writer) Option {
	return func(c *runtimeConfig) { c.interpOpts = append(c.interpOpts, interp.WithStderr(w)) }
}

// WithSource sets the initial input Source (default: an interactive Source
// over os.Stdin/os.Stdout).
func WithSource(s source.Source) Option {
	return func(c *runtimeConfig) { c.interpOpts = append(c.interpOpts, interp.WithSource(s)) }
}

// WithColor enables ANSI-red diagnostic tags.
func WithColor(enabled bool) Option {
	return func(c *runtimeConfig) { c.interpOpts = append(c.interpOpts, interp.WithColor(enabled)) }
}

// WithDumpOnExit prints a final stack dump when Run returns.
func WithDumpOnExit(enabled bool) Option {
	return func(c *runtimeConfig) { c.interpOpts = append(c.interpOpts, interp.WithDumpOnExit(enabled)) }
}

// WithHistory attaches an already-open transcript Log (e.g. history.NewMemory
// for tests), taking precedence over WithHistoryPath.
func WithHistory(h history.Log) Option {
	return func(c *runtimeConfig) { c.history = h }
}

// WithHistoryPath has the Runtime open a SQLite-backed transcript log at
// path itself; Runtime.Close releases it. Opening failures are silent (the
// session simply runs without a log) since a transcript is a debugging aid,
// never required for correct interpretation.
func WithHistoryPath(path string) Option {
	return func(c *runtimeConfig) { c.historyPath = path }
}
