//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package irgen

import "tinygo.org/x/go-llvm"

// lowerAdd lowers ADD: pops a, b; pushes (a + b) mod 2^256. Guard:
// depth >= 2, else revert. LLVM's fixed-width i256 add wraps on overflow
// by construction, giving the required modular semantics for free.
func (c *OperationCtx) lowerAdd() error {
	c.requireDepth(2, "add")
	c.lowerBinOp(func(a, b llvm.Value) llvm.Value {
		return c.Builder.CreateAdd(a, b, "add.result")
	})
	return nil
}

// lowerMul lowers MUL: pops a, b; pushes (a * b) mod 2^256.
func (c *OperationCtx) lowerMul() error {
	c.requireDepth(2, "mul")
	c.lowerBinOp(func(a, b llvm.Value) llvm.Value {
		return c.Builder.CreateMul(a, b, "mul.result")
	})
	return nil
}

// lowerBinOp implements the common pop-two-push-one shape shared by ADD
// and MUL: load the top two words, apply op, overwrite the new top word,
// and decrement depth by one net.
func (c *OperationCtx) lowerBinOp(op func(a, b llvm.Value) llvm.Value) {
	depth := c.stack.loadDepth(c.Builder)
	one := c.stack.constDepth(1)
	two := c.stack.constDepth(2)

	bIdx := c.Builder.CreateSub(depth, one, "binop.bidx")
	aIdx := c.Builder.CreateSub(depth, two, "binop.aidx")

	a := c.stack.loadWord(c.Builder, aIdx)
	b := c.stack.loadWord(c.Builder, bIdx)
	result := op(a, b)

	c.stack.storeWord(c.Builder, aIdx, result)
	c.stack.storeDepth(c.Builder, bIdx) // bIdx == depth-1, the new depth
}
