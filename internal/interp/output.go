package interp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// OutputState tracks the two flags that govern how runtime output and
// diagnostics interleave on a line: pendingNewline is set by any
// print site that suppresses its own trailing newline, and pendingSpace
// controls inter-value spacing between consecutive `.`/EMIT outputs.
type OutputState struct {
	pendingNewline bool
	pendingSpace   bool
}

// PendingNewline reports whether a newline is owed before the next
// unrelated output (a fresh prompt, a diagnostic, or end-of-line flush).
func (o *OutputState) PendingNewline() bool {
	return o.pendingNewline
}

// Reset clears both flags, used at the end of a fully-processed line.
func (o *OutputState) Reset() {
	o.pendingNewline = false
	o.pendingSpace = false
}

// Dot prints v (Dot / `.`), inserting a leading space if pendingSpace.
func (o *OutputState) Dot(w io.Writer, v Cell) {
	if o.pendingSpace {
		fmt.Fprint(w, " ")
	}
	fmt.Fprint(w, v)
	o.pendingSpace = true
	o.pendingNewline = true
}

// Emit prints the decimal codepoint of the first character of v's decimal
// representation — a compatibility-preserving oddity.
func (o *OutputState) Emit(w io.Writer, v Cell) {
	s := strconv.FormatInt(v, 10)
	first := rune(s[0])
	if o.pendingSpace {
		fmt.Fprint(w, " ")
	}
	fmt.Fprint(w, int(first))
	o.pendingSpace = true
	o.pendingNewline = true
}

// FString prints text verbatim.
func (o *OutputState) FString(w io.Writer, text string) {
	fmt.Fprint(w, text)
	o.pendingNewline = true
	o.pendingSpace = false
}

// CR prints a newline and clears both flags.
func (o *OutputState) CR(w io.Writer) {
	fmt.Fprintln(w)
	o.pendingNewline = false
	o.pendingSpace = false
}

// Dump prints the stack bottom-to-top as `[v1, v2, …]`, flushing a pending
// newline first.
func (o *OutputState) Dump(w io.Writer, vals []Cell) {
	if o.pendingNewline {
		fmt.Fprintln(w)
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	fmt.Fprintf(w, "[%s]\n", strings.Join(parts, ", "))
	o.pendingNewline = false
	o.pendingSpace = false
}

// FlushLine emits a trailing newline iff pendingNewline, then resets — the
// end-of-line behavior of run().
func (o *OutputState) FlushLine(w io.Writer) {
	if o.pendingNewline {
		fmt.Fprintln(w)
	}
	o.Reset()
}

// Err writes a diagnostic message, prefixing a newline if one is owed so it
// never runs on the same line as preceding output.
func (o *OutputState) Err(w io.Writer, message string) {
	if o.pendingNewline {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, message)
	o.pendingNewline = false
}
