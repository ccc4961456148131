//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package irgen

import "tinygo.org/x/go-llvm"

// lowerByte lowers BYTE: pops offset, value. Interprets value as 32
// bytes big-endian; if offset >= 32 pushes zero, otherwise pushes the
// byte at index offset (0 = most significant byte) zero-extended to 256
// bits. Guard: depth >= 2, else revert.
func (c *OperationCtx) lowerByte() error {
	c.requireDepth(2, "byte")

	depth := c.stack.loadDepth(c.Builder)
	one := c.stack.constDepth(1)
	two := c.stack.constDepth(2)
	offIdx := c.Builder.CreateSub(depth, one, "byte.offidx")
	valIdx := c.Builder.CreateSub(depth, two, "byte.validx")

	offset := c.stack.loadWord(c.Builder, offIdx)
	value := c.stack.loadWord(c.Builder, valIdx)

	wt := c.stack.wordType
	zero := llvm.ConstInt(wt, 0, false)
	thirtyOne := llvm.ConstInt(wt, 31, false)
	eight := llvm.ConstInt(wt, 8, false)
	mask := llvm.ConstInt(wt, 0xFF, false)
	thirtyTwo := llvm.ConstInt(wt, 32, false)

	// Big-endian byte index `offset` of a 256-bit word is found at bit
	// position (31-offset)*8 counting from the least-significant bit.
	bitsFromLSB := c.Builder.CreateSub(thirtyOne, offset, "byte.bitsfromlsb")
	shiftAmt := c.Builder.CreateMul(bitsFromLSB, eight, "byte.shiftamt")
	shifted := c.Builder.CreateLShr(value, shiftAmt, "byte.shifted")
	extracted := c.Builder.CreateAnd(shifted, mask, "byte.extracted")

	outOfBounds := c.Builder.CreateICmp(llvm.IntUGE, offset, thirtyTwo, "byte.oob")
	result := c.Builder.CreateSelect(outOfBounds, zero, extracted, "byte.result")

	c.stack.storeWord(c.Builder, valIdx, result)
	c.stack.storeDepth(c.Builder, offIdx) // offIdx == depth-1, the new depth
	return nil
}
