package interp

import "strings"

// Base is the fixed address of the first heap cell. User programs compute
// addresses directly, so the value and its encoding are a stable contract.
const Base Cell = 1000

// slot is one heap cell: a Cell value plus whether it has ever been written.
// An unwritten cell is observably uninitialized.
type slot struct {
	val     Cell
	written bool
}

// Heap is a dense, linear store of Cells addressed from Base, plus a
// name→address map for variables created with VARIABLE (via Create).
type Heap struct {
	cells []slot
	names map[string]Cell
}

// NewHeap returns an empty Heap with its frontier at Base.
func NewHeap() *Heap {
	return &Heap{names: make(map[string]Cell)}
}

// Frontier returns the first unallocated address.
func (h *Heap) Frontier() Cell {
	return Base + Cell(len(h.cells))
}

// Create allocates one cell and binds name (case-folded) to its address.
// ok is false if name is already bound — the caller is responsible for
// surfacing that as a BAD_DEF diagnostic; Create itself never rebinds.
func (h *Heap) Create(name string) (addr Cell, ok bool) {
	key := strings.ToLower(name)
	if _, exists := h.names[key]; exists {
		return 0, false
	}
	addr = h.Frontier()
	h.cells = append(h.cells, slot{})
	h.names[key] = addr
	return addr, true
}

// Allot advances the frontier by n cells without binding a name. n may be
// any non-negative integer; negative n is a no-op.
func (h *Heap) Allot(n Cell) {
	for i := Cell(0); i < n; i++ {
		h.cells = append(h.cells, slot{})
	}
}

// AddressOf returns the address bound to name, if any.
func (h *Heap) AddressOf(name string) (addr Cell, ok bool) {
	addr, ok = h.names[strings.ToLower(name)]
	return addr, ok
}

// Defined reports whether name is already bound to a heap address.
func (h *Heap) Defined(name string) bool {
	_, ok := h.names[strings.ToLower(name)]
	return ok
}

// valid reports whether addr falls within [Base, Base+len(cells)).
func (h *Heap) valid(addr Cell) bool {
	return addr >= Base && addr < Base+Cell(len(h.cells))
}

// Get reads the cell at addr. ok is false (BadAddress) if addr is
// below Base or at/above the frontier. A never-written cell reads as
// (0, true, false) — zero value, valid address, but uninitialized.
func (h *Heap) Get(addr Cell) (v Cell, ok bool, initialized bool) {
	if !h.valid(addr) {
		return 0, false, false
	}
	s := h.cells[addr-Base]
	return s.val, true, s.written
}

// Set writes val at addr. ok is false (BadAddress) if addr is invalid.
func (h *Heap) Set(addr, val Cell) (ok bool) {
	if !h.valid(addr) {
		return false
	}
	h.cells[addr-Base] = slot{val: val, written: true}
	return true
}
