package program

// Program is an ordered, immutable sequence of Operations constructed
// once and walked by the lowering engine. Construction is pure and
// total: jump-target validity is a runtime property (resolved through
// the jump table at §4.4), not a construction-time one.
type Program struct {
	ops []Operation
}

// New constructs a Program from an ordered sequence of Operations. It
// performs no validation beyond accepting whatever is syntactically a
// well-formed Operation slice; duplicate JUMPDEST PCs are detected during
// lowering, and a JUMP to an unregistered PC reverts at runtime.
func New(ops []Operation) *Program {
	cp := make([]Operation, len(ops))
	copy(cp, ops)
	return &Program{ops: cp}
}

// Operations returns the program's operations in order. The returned
// slice is owned by the caller; Program keeps its own copy.
func (p *Program) Operations() []Operation {
	cp := make([]Operation, len(p.ops))
	copy(cp, p.ops)
	return cp
}

// Len returns the number of operations in the program.
func (p *Program) Len() int {
	return len(p.ops)
}

// At returns the operation at index i.
func (p *Program) At(i int) Operation {
	return p.ops[i]
}
