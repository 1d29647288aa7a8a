package interp

import (
	"fmt"

	"github.com/edestcroix/forthrb-go/internal/token"
)

// evalBuiltin runs a single-token built-in.
func (in *Interp) evalBuiltin(kind token.Kind) error {
	switch kind {
	case token.Add, token.Sub, token.Mul, token.Div, token.Mod:
		return in.binOp(kind)
	case token.Equal, token.Lesser, token.Greater:
		return in.cmpOp(kind)
	case token.And, token.Or, token.Xor:
		return in.bitOp(kind)
	case token.Dot:
		v, ok := in.stack.Pop()
		if !ok {
			in.diagUnderflow(".", 1, 0)
			return nil
		}
		in.out.Dot(in.stdout, v)
	case token.Emit:
		v, ok := in.stack.Pop()
		if !ok {
			in.diagUnderflow("EMIT", 1, 0)
			return nil
		}
		in.out.Emit(in.stdout, v)
	case token.CR:
		in.out.CR(in.stdout)
	case token.Dump:
		in.out.Dump(in.stdout, in.stack.Snapshot())
	case token.Dup:
		v, ok := in.stack.Pop()
		if !ok {
			in.diagUnderflow("DUP", 1, 0)
			return nil
		}
		in.stack.Push(v)
		in.stack.Push(v)
	case token.Drop:
		if _, ok := in.stack.Pop(); !ok {
			in.diagUnderflow("DROP", 1, 0)
		}
	case token.Invert:
		v, ok := in.stack.Pop()
		if !ok {
			in.diagUnderflow("INVERT", 1, 0)
			return nil
		}
		in.stack.Push(^v)
	case token.Swap:
		vals, ok := in.stack.PopN(2)
		if !ok {
			in.diagUnderflow("SWAP", 2, in.stack.Len())
			return nil
		}
		in.stack.Push(vals[1])
		in.stack.Push(vals[0])
	case token.Over:
		vals, ok := in.stack.PopN(2)
		if !ok {
			in.diagUnderflow("OVER", 2, in.stack.Len())
			return nil
		}
		in.stack.Push(vals[0])
		in.stack.Push(vals[1])
		in.stack.Push(vals[0])
	case token.Rot:
		vals, ok := in.stack.PopN(3)
		if !ok {
			in.diagUnderflow("ROT", 3, in.stack.Len())
			return nil
		}
		in.stack.Push(vals[1])
		in.stack.Push(vals[2])
		in.stack.Push(vals[0])
	case token.SetVar:
		vals, ok := in.stack.PopN(2)
		if !ok {
			in.diagUnderflow("!", 2, in.stack.Len())
			return nil
		}
		addr, val := vals[1], vals[0]
		if !in.heap.Set(addr, val) {
			in.diag("BAD ADDRESS", fmt.Sprintf("address %d out of range", addr))
		}
	case token.GetVar:
		addr, ok := in.stack.Pop()
		if !ok {
			in.diagUnderflow("@", 1, 0)
			return nil
		}
		v, ok, _ := in.heap.Get(addr)
		if !ok {
			in.diag("BAD ADDRESS", fmt.Sprintf("address %d out of range", addr))
			return nil
		}
		in.stack.Push(v)
	case token.Allot:
		n, ok := in.stack.Pop()
		if !ok {
			in.diagUnderflow("ALLOT", 1, 0)
			return nil
		}
		in.heap.Allot(n)
	case token.Cells:
		// no-op: this implementation uses cell-size 1.
	}
	return nil
}

// binOp pops v2 then v1 (v1 earlier push, v2 on top) and pushes v1 OP v2.
func (in *Interp) binOp(kind token.Kind) error {
	vals, ok := in.stack.PopN(2)
	if !ok {
		in.diagUnderflow(kind.String(), 2, in.stack.Len())
		return nil
	}
	v1, v2 := vals[0], vals[1]
	var result Cell
	switch kind {
	case token.Add:
		result = v1 + v2
	case token.Sub:
		result = v1 - v2
	case token.Mul:
		result = v1 * v2
	case token.Div:
		if v2 == 0 {
			result = 0
		} else {
			result = v1 / v2
		}
	case token.Mod:
		if v2 == 0 {
			result = 0
		} else {
			result = v1 % v2
		}
	}
	in.stack.Push(result)
	return nil
}

// cmpOp pops v2 then v1 and pushes the truth value of v1 OP v2.
func (in *Interp) cmpOp(kind token.Kind) error {
	vals, ok := in.stack.PopN(2)
	if !ok {
		in.diagUnderflow(kind.String(), 2, in.stack.Len())
		return nil
	}
	v1, v2 := vals[0], vals[1]
	var truth bool
	switch kind {
	case token.Equal:
		truth = v1 == v2
	case token.Lesser:
		truth = v1 < v2
	case token.Greater:
		truth = v1 > v2
	}
	if truth {
		in.stack.Push(-1)
	} else {
		in.stack.Push(0)
	}
	return nil
}

func (in *Interp) bitOp(kind token.Kind) error {
	vals, ok := in.stack.PopN(2)
	if !ok {
		in.diagUnderflow(kind.String(), 2, in.stack.Len())
		return nil
	}
	v1, v2 := vals[0], vals[1]
	var result Cell
	switch kind {
	case token.And:
		result = v1 & v2
	case token.Or:
		result = v1 | v2
	case token.Xor:
		result = v1 ^ v2
	}
	in.stack.Push(result)
	return nil
}
