package interp

import "strings"

// Body is the parsed, ordered sequence of nodes that make up a user-defined
// word. It is built once at definition time and re-run on every invocation.
type Body []Node

// Dictionary holds user-defined words (from WORDDEF) and constants (from
// CONSTANT). Word lookup and constant lookup are separate namespaces from
// the heap's variable names, but all three are checked together when
// resolving a bare identifier: a name collision across word/constant/
// variable is rejected as BAD_DEF.
type Dictionary struct {
	words     map[string]Body
	constants map[string]Cell
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		words:     make(map[string]Body),
		constants: make(map[string]Cell),
	}
}

// DefineWord binds name to body. Rebinding an existing user word is
// permitted; ok is false only if name is already a constant, which the
// caller must surface as BAD_DEF.
func (d *Dictionary) DefineWord(name string, body Body) (ok bool) {
	key := strings.ToLower(name)
	if _, isConst := d.constants[key]; isConst {
		return false
	}
	d.words[key] = body
	return true
}

// isConstant reports whether name is bound as a constant.
func (d *Dictionary) isConstant(name string) bool {
	_, ok := d.constants[strings.ToLower(name)]
	return ok
}

// DefineConstant binds name to v. ok is false if name is already bound.
func (d *Dictionary) DefineConstant(name string, v Cell) (ok bool) {
	key := strings.ToLower(name)
	if d.Defined(key) {
		return false
	}
	d.constants[key] = v
	return true
}

// Word returns the body bound to name, if it is a user word.
func (d *Dictionary) Word(name string) (Body, bool) {
	b, ok := d.words[strings.ToLower(name)]
	return b, ok
}

// Constant returns the value bound to name, if it is a constant.
func (d *Dictionary) Constant(name string) (Cell, bool) {
	v, ok := d.constants[strings.ToLower(name)]
	return v, ok
}

// Defined reports whether name is already bound as a word or constant. It
// does not know about heap variable names — callers that must check across
// all three namespaces (word, constant, variable) combine this with
// Heap.Defined.
func (d *Dictionary) Defined(name string) bool {
	key := strings.ToLower(name)
	if _, ok := d.words[key]; ok {
		return true
	}
	_, ok := d.constants[key]
	return ok
}
