package interp

import (
	"strconv"
	"strings"

	"github.com/edestcroix/forthrb-go/internal/source"
	"github.com/edestcroix/forthrb-go/internal/token"
)

// isNumeric reports whether s is a decimal integer literal with an
// optional leading '-'.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		i = 1
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// classify turns a single already-extracted word into a Node. Structured
// words recursively consume further tokens (and, if needed, further lines
// from src) before returning.
func classify(w string, cur *Cursor, src source.Source) Node {
	kind, ok := token.Resolve(w)
	if !ok {
		if isNumeric(w) {
			v, _ := strconv.ParseInt(w, 10, 64)
			return literalNode{value: v}
		}
		return rawNode(w)
	}
	switch kind {
	case token.FString:
		return parseFString(cur, src)
	case token.Comment:
		return parseComment(cur, src)
	case token.If:
		return parseIf(cur, src)
	case token.Do:
		return parseDo(cur, src)
	case token.Begin:
		return parseBegin(cur, src)
	case token.WordDef:
		return parseWordDef(cur, src)
	case token.Variable:
		return parseVariable(cur, src)
	case token.Constant:
		return parseConstant(cur, src)
	case token.Load:
		return parseLoad(cur, src)
	default:
		return builtinNode{kind: kind}
	}
}

// nextWord returns the next token, pulling further lines from src if the
// cursor is currently empty. ok is false if src is exhausted first.
func nextWord(cur *Cursor, src source.Source) (string, bool) {
	for {
		if w, ok := cur.GetWord(); ok {
			return w, true
		}
		line, ok := src.ReadLine(true)
		if !ok {
			return "", false
		}
		cur.SetRemainder(line)
	}
}

// parseBody accumulates tokens into a Body until one (case-insensitively)
// matches a key in terms, pulling further lines from src as needed.
// good is false if src is exhausted first, or if a foreign terminator
// (one belonging to some other, unrelated construct) is encountered —
// meaning this body's own terminator was never found.
func parseBody(cur *Cursor, src source.Source, terms map[string]bool) (body Body, hit string, good bool) {
	for {
		w, ok := cur.GetWord()
		if !ok {
			line, ok := src.ReadLine(true)
			if !ok {
				return body, "", false
			}
			cur.SetRemainder(line)
			continue
		}
		lw := strings.ToLower(w)
		if terms[lw] {
			return body, lw, true
		}
		if token.IsTerminator(w) {
			return body, lw, false
		}
		body = append(body, classify(w, cur, src))
	}
}

// scanUntil accumulates raw characters (not tokens) up to the first byte
// equal to term, pulling further lines from src as needed and preserving
// embedded newlines. Used by FString and Comment, which read literally
// instead of word-by-word. The cursor's remainder after a successful scan
// is the text following term, with leading/trailing whitespace trimmed.
func scanUntil(cur *Cursor, src source.Source, term byte) (text string, ok bool) {
	var b strings.Builder
	rest := cur.Remainder()
	for {
		if idx := strings.IndexByte(rest, term); idx >= 0 {
			b.WriteString(rest[:idx])
			cur.SetRemainder(strings.TrimSpace(rest[idx+1:]))
			return b.String(), true
		}
		b.WriteString(rest)
		line, ok := src.ReadLine(true)
		if !ok {
			cur.SetRemainder("")
			return b.String(), false
		}
		b.WriteString("\n")
		rest = line
	}
}

func parseFString(cur *Cursor, src source.Source) Node {
	text, ok := scanUntil(cur, src, '"')
	if !ok {
		return fstringNode{good: false}
	}
	if len(text) > 0 && text[0] == ' ' {
		text = text[1:]
	}
	return fstringNode{text: text, good: true}
}

func parseComment(cur *Cursor, src source.Source) Node {
	_, ok := scanUntil(cur, src, ')')
	return commentNode{good: ok}
}

func parseIf(cur *Cursor, src source.Source) Node {
	trueBody, hit, good := parseBody(cur, src, map[string]bool{"else": true, "then": true})
	if !good {
		return ifNode{good: false}
	}
	if hit == "else" {
		falseBody, _, good2 := parseBody(cur, src, map[string]bool{"then": true})
		return ifNode{trueBody: trueBody, falseBody: falseBody, good: good2}
	}
	return ifNode{trueBody: trueBody, good: true}
}

func parseDo(cur *Cursor, src source.Source) Node {
	body, _, good := parseBody(cur, src, map[string]bool{"loop": true})
	return doNode{body: body, good: good}
}

func parseBegin(cur *Cursor, src source.Source) Node {
	body, _, good := parseBody(cur, src, map[string]bool{"until": true})
	return beginNode{body: body, good: good}
}

func parseWordDef(cur *Cursor, src source.Source) Node {
	name, ok := nextWord(cur, src)
	if !ok {
		return wordDefNode{good: false}
	}
	body, _, good := parseBody(cur, src, map[string]bool{";": true})
	return wordDefNode{name: strings.ToLower(name), body: body, good: good}
}

func parseVariable(cur *Cursor, src source.Source) Node {
	name, _ := nextWord(cur, src)
	return variableDefNode{name: name}
}

func parseConstant(cur *Cursor, src source.Source) Node {
	name, _ := nextWord(cur, src)
	return constantDefNode{name: name}
}

func parseLoad(cur *Cursor, src source.Source) Node {
	name, _ := nextWord(cur, src)
	return loadNode{filename: name}
}

// substituteIndex returns a copy of body with every raw "i" token (case
// insensitive) replaced by the literal i. Other elements are shared,
// not deep-copied — they are immutable once parsed.
func substituteIndex(body Body, i Cell) Body {
	out := make(Body, len(body))
	for idx, n := range body {
		if rn, ok := n.(rawNode); ok && strings.EqualFold(string(rn), "i") {
			out[idx] = literalNode{value: i}
		} else {
			out[idx] = n
		}
	}
	return out
}
