package token

import "testing"

func TestResolveSymbols(t *testing.T) {
	cases := map[string]Kind{
		"+": Add, "-": Sub, "*": Mul, "/": Div,
		".": Dot, "=": Equal, "<": Lesser, ">": Greater,
		`."`: FString, "(": Comment, "!": SetVar, "@": GetVar,
		":": WordDef, "::": Load,
	}
	for w, want := range cases {
		got, ok := Resolve(w)
		if !ok || got != want {
			t.Errorf("Resolve(%q) = (%v, %v), want (%v, true)", w, got, ok, want)
		}
	}
}

func TestResolveRejectsAlphabeticSpellingOfSymbolKinds(t *testing.T) {
	for _, name := range []string{"add", "sub", "mul", "div", "dot", "equal", "lesser", "greater"} {
		if _, ok := Resolve(name); ok {
			t.Errorf("Resolve(%q) should not resolve; only the symbol spelling should dispatch", name)
		}
	}
}

func TestResolveAlphabeticIsCaseInsensitive(t *testing.T) {
	for _, w := range []string{"DUP", "Dup", "dup", "DuP"} {
		got, ok := Resolve(w)
		if !ok || got != Dup {
			t.Errorf("Resolve(%q) = (%v, %v), want (Dup, true)", w, got, ok)
		}
	}
}

func TestResolveUnknownWord(t *testing.T) {
	if _, ok := Resolve("notaword"); ok {
		t.Error("Resolve(\"notaword\") should not resolve")
	}
}

func TestIsTerminator(t *testing.T) {
	for _, w := range []string{";", "then", "Then", "ELSE", "loop", "until", `"`, ")"} {
		if !IsTerminator(w) {
			t.Errorf("IsTerminator(%q) = false, want true", w)
		}
	}
	if IsTerminator("dup") {
		t.Error("IsTerminator(\"dup\") should be false")
	}
}

func TestNeedsContinuation(t *testing.T) {
	for _, k := range []Kind{FString, Comment, If, Do, Begin, WordDef} {
		if !k.NeedsContinuation() {
			t.Errorf("%v.NeedsContinuation() = false, want true", k)
		}
	}
	for _, k := range []Kind{Add, Dup, CR, Variable} {
		if k.NeedsContinuation() {
			t.Errorf("%v.NeedsContinuation() = true, want false", k)
		}
	}
}
