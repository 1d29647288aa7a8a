package source

import (
	"io"
	"strings"
	"testing"
)

type nopCloser struct{ io.Reader }

func (nopCloser) Close() error { return nil }

func TestInteractivePromptsBeforeRead(t *testing.T) {
	var out strings.Builder
	s := NewInteractive(strings.NewReader("one\ntwo\n"), &out)

	line, ok := s.ReadLine(true)
	if !ok || line != "one" {
		t.Fatalf("ReadLine = (%q, %v), want (\"one\", true)", line, ok)
	}
	if out.String() != "> " {
		t.Fatalf("prompt output = %q, want \"> \"", out.String())
	}

	out.Reset()
	line, ok = s.ReadLine(false)
	if !ok || line != "two" {
		t.Fatalf("ReadLine = (%q, %v), want (\"two\", true)", line, ok)
	}
	if out.String() != "" {
		t.Fatalf("prompt=false must not print a prompt, got %q", out.String())
	}
}

func TestInteractiveEndOfInput(t *testing.T) {
	s := NewInteractive(strings.NewReader(""), io.Discard)
	if _, ok := s.ReadLine(false); ok {
		t.Fatal("ReadLine on empty input should report end-of-input")
	}
}

func TestInteractiveLastLineWithoutTrailingNewline(t *testing.T) {
	s := NewInteractive(strings.NewReader("last"), io.Discard)
	line, ok := s.ReadLine(false)
	if !ok || line != "last" {
		t.Fatalf("ReadLine = (%q, %v), want (\"last\", true)", line, ok)
	}
}

func TestFileEchoesRegardlessOfPrompt(t *testing.T) {
	var out strings.Builder
	f := NewFile(nopCloser{strings.NewReader("foo bar\n")}, &out)

	line, ok := f.ReadLine(true)
	if !ok || line != "foo bar" {
		t.Fatalf("ReadLine = (%q, %v), want (\"foo bar\", true)", line, ok)
	}
	if out.String() != "> foo bar\n" {
		t.Fatalf("echo = %q, want \"> foo bar\\n\"", out.String())
	}

	out.Reset()
	f2 := NewFile(nopCloser{strings.NewReader("baz\n")}, &out)
	if _, ok := f2.ReadLine(false); !ok {
		t.Fatal("expected a line")
	}
	if out.String() != "> baz\n" {
		t.Fatalf("echo with prompt=false = %q, want \"> baz\\n\"", out.String())
	}
}

func TestFileCloseClosesUnderlying(t *testing.T) {
	closed := false
	f := NewFile(fakeCloser{strings.NewReader(""), func() { closed = true }}, io.Discard)
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !closed {
		t.Fatal("Close did not close the underlying reader")
	}
}

type fakeCloser struct {
	io.Reader
	onClose func()
}

func (f fakeCloser) Close() error {
	f.onClose()
	return nil
}
