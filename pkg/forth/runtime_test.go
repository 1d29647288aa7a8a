package forth

import (
	"strings"
	"testing"

	"github.com/edestcroix/forthrb-go/internal/history"
)

func TestEvalRunsOneLine(t *testing.T) {
	var out strings.Builder
	rt := New(WithStdout(&out))
	defer rt.Close()

	rt.Eval("1 2 + .")
	got := rt.Stack().Snapshot()
	if len(got) != 0 {
		t.Fatalf("stack = %v, want empty (the . popped the sum)", got)
	}
	if !strings.Contains(out.String(), "3") {
		t.Fatalf("stdout = %q, want it to contain \"3\"", out.String())
	}
}

func TestEvalReaderRunsEveryLine(t *testing.T) {
	rt := New()
	defer rt.Close()

	r := strings.NewReader(": double DUP + ;\n5 double\n")
	if err := rt.EvalReader(r); err != nil {
		t.Fatalf("EvalReader: %v", err)
	}
	got := rt.Stack().Snapshot()
	if len(got) != 1 || got[0] != 10 {
		t.Fatalf("stack = %v, want [10]", got)
	}
}

func TestEvalFileMissing(t *testing.T) {
	rt := New()
	defer rt.Close()

	if err := rt.EvalFile("/no/such/forth/file.fs"); err == nil {
		t.Fatal("EvalFile on a missing path should return an error")
	}
}

// History is tied to diagnostics wherever interpretation happens, and to
// every line read once a Source is driving the loop (Run), not to one-off
// EvalLine calls that bypass Source entirely.
func TestWithHistoryRecordsDiagnostics(t *testing.T) {
	mem := history.NewMemory()
	rt := New(WithHistory(mem))
	defer rt.Close()

	rt.Eval("NOTAWORD")
	lines := mem.Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "BAD WORD") {
		t.Fatalf("history lines = %v, want a single BAD WORD entry", lines)
	}

	if err := rt.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
