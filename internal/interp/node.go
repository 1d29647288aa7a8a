package interp

import "github.com/edestcroix/forthrb-go/internal/token"

// Node is a parsed, ready-to-run word (WordNode). Raw, not-yet-resolved
// tokens inside a Body are represented as rawNode values — they are
// re-resolved against the user words, variables and constants on every
// invocation, which is what lets a user word reference its own name before
// its definition finishes (forward recursion).
type Node interface {
	Eval(in *Interp) error
}

// literalNode pushes a pre-parsed integer constant.
type literalNode struct{ value Cell }

func (n literalNode) Eval(in *Interp) error {
	in.stack.Push(n.value)
	return nil
}

// builtinNode is any single-token built-in whose behavior needs no further
// parsing (arithmetic, stack shuffling, `!`/`@`, ALLOT, CELLS, output).
type builtinNode struct{ kind token.Kind }

func (n builtinNode) Eval(in *Interp) error {
	return in.evalBuiltin(n.kind)
}

// fstringNode is a `." ... "` literal. good is false if input exhausted
// before the closing quote.
type fstringNode struct {
	text string
	good bool
}

func (n fstringNode) Eval(in *Interp) error {
	if !n.good {
		in.diag("SYNTAX", `No closing '"' found`)
		return nil
	}
	in.out.FString(in.stdout, n.text)
	return nil
}

// commentNode is a `( ... )` comment; it evaluates to nothing.
type commentNode struct{ good bool }

func (n commentNode) Eval(in *Interp) error {
	if !n.good {
		in.diag("SYNTAX", "No closing ')' found")
	}
	return nil
}

// ifNode is `IF ... [ELSE ...] THEN`.
type ifNode struct {
	trueBody  Body
	falseBody Body
	good      bool
}

func (n ifNode) Eval(in *Interp) error {
	if !n.good {
		in.diag("SYNTAX", "No matching 'then' found for 'if'")
		return nil
	}
	v, ok := in.stack.Pop()
	if !ok {
		in.diagUnderflow("IF", 1, 0)
		return nil
	}
	body := n.trueBody
	if v == 0 {
		body = n.falseBody
	}
	halted, err := in.evalBody(body)
	if halted {
		return errHalt
	}
	return err
}

// doNode is `DO ... LOOP`.
type doNode struct {
	body Body
	good bool
}

func (n doNode) Eval(in *Interp) error {
	if !n.good {
		in.diag("SYNTAX", "No matching 'loop' found for 'do'")
		return nil
	}
	vals, ok := in.stack.PopN(2)
	if !ok {
		in.diagUnderflow("DO", 2, in.stack.Len())
		return nil
	}
	limit, start := vals[0], vals[1]
	if start < 0 || limit < 0 || start > limit {
		in.diag("BAD LOOP", "DO requires 0 <= start <= limit")
		return nil
	}
	for i := start; i < limit; i++ {
		halted, err := in.evalBody(substituteIndex(n.body, i))
		if err != nil {
			return err
		}
		if halted {
			return errHalt
		}
	}
	return nil
}

// beginNode is `BEGIN ... UNTIL`.
type beginNode struct {
	body Body
	good bool
}

func (n beginNode) Eval(in *Interp) error {
	if !n.good {
		in.diag("SYNTAX", "No matching 'until' found for 'begin'")
		return nil
	}
	for {
		halted, err := in.evalBody(n.body)
		if err != nil {
			return err
		}
		if halted {
			return errHalt
		}
		v, ok := in.stack.Pop()
		if !ok {
			in.diagUnderflow("UNTIL", 1, 0)
			break
		}
		if v != 0 {
			break
		}
	}
	return nil
}

// wordDefNode is `: name ... ;`. Name validation and dictionary collision
// checks are deferred to Eval, since parsing never touches interpreter
// state.
type wordDefNode struct {
	name string
	body Body
	good bool
}

func (n wordDefNode) Eval(in *Interp) error {
	if !n.good {
		in.diag("SYNTAX", "No matching ';' found for ':'")
		return nil
	}
	if n.name == "" {
		in.diag("BAD DEF", "word definition is missing a name")
		return nil
	}
	if isNumeric(n.name) {
		in.diag("BAD DEF", "'"+n.name+"' is not a valid word name")
		return nil
	}
	if in.heap.Defined(n.name) || in.dict.isConstant(n.name) || in.isBuiltinName(n.name) {
		in.diag("BAD DEF", "'"+n.name+"' collides with an existing name")
		return nil
	}
	in.dict.DefineWord(n.name, n.body)
	return nil
}

// variableDefNode is `VARIABLE name`.
type variableDefNode struct{ name string }

func (n variableDefNode) Eval(in *Interp) error {
	if n.name == "" {
		in.diag("BAD DEF", "VARIABLE is missing a name")
		return nil
	}
	if isNumeric(n.name) {
		in.diag("BAD DEF", "'"+n.name+"' is not a valid word name")
		return nil
	}
	if in.dict.Defined(n.name) || in.heap.Defined(n.name) || in.isBuiltinName(n.name) {
		in.diag("BAD DEF", "'"+n.name+"' collides with an existing name")
		return nil
	}
	in.heap.Create(n.name)
	return nil
}

// constantDefNode is `CONSTANT name`.
type constantDefNode struct{ name string }

func (n constantDefNode) Eval(in *Interp) error {
	if n.name == "" {
		in.diag("BAD DEF", "CONSTANT is missing a name")
		return nil
	}
	if isNumeric(n.name) {
		in.diag("BAD DEF", "'"+n.name+"' is not a valid word name")
		return nil
	}
	v, ok := in.stack.Pop()
	if !ok {
		in.diagUnderflow("CONSTANT", 1, 0)
		return nil
	}
	if in.dict.Defined(n.name) || in.heap.Defined(n.name) || in.isBuiltinName(n.name) {
		in.diag("BAD DEF", "'"+n.name+"' collides with an existing name")
		return nil
	}
	in.dict.DefineConstant(n.name, v)
	return nil
}

// rawNode is an identifier that could not be classified while parsing — a
// forward-referenced user word, a loop index placeholder ("i"), a variable
// or constant name, or a genuinely unknown word. It carries its original
// case so diagnostics can echo exactly what the user typed; resolution
// against the dictionary/heap is always case-insensitive.
type rawNode string

func (n rawNode) Eval(in *Interp) error {
	w := string(n)
	if body, ok := in.dict.Word(w); ok {
		halted, err := in.evalBody(body)
		if err != nil {
			return err
		}
		if halted {
			return errHalt
		}
		return nil
	}
	if addr, ok := in.heap.AddressOf(w); ok {
		in.stack.Push(addr)
		return nil
	}
	if v, ok := in.dict.Constant(w); ok {
		in.stack.Push(v)
		return nil
	}
	if token.IsTerminator(w) {
		in.diag("SYNTAX", "unexpected '"+w+"'")
		return nil
	}
	in.diag("BAD WORD", "Unknown word '"+w+"'")
	return errHalt
}

// loadNode is `:: filename`.
type loadNode struct{ filename string }

func (n loadNode) Eval(in *Interp) error {
	if n.filename == "" {
		in.diag("BAD LOAD", "no file given")
		return nil
	}
	return in.load(n.filename)
}
