//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package irgen

import (
	"fmt"

	"github.com/malik672/evm-mlir/compileerr"
	"github.com/malik672/evm-mlir/program"
	"tinygo.org/x/go-llvm"
)

// lowerPush lowers PUSH(word), which covers PUSH0 (word == 0) through
// PUSH32 — there is no per-width opcode, only the one Push variant (spec
// §4.3). Guard: depth+1 <= 1024, else revert.
func (c *OperationCtx) lowerPush(op program.Operation, loc Location) error {
	c.requirePushCapacity()

	word := op.Word
	if word == nil {
		return fmt.Errorf("%w: %s: push with nil word", compileerr.ErrMalformedInput, loc)
	}
	// word is already guaranteed in [0, 2^256) by its *uint256.Int type
	// (spec §4.3: "words are already in range").
	val := llvm.ConstIntFromString(c.stack.wordType, word.Dec(), 10)

	depth := c.stack.loadDepth(c.Builder)
	c.stack.storeWord(c.Builder, depth, val)
	newDepth := c.Builder.CreateAdd(depth, c.stack.constDepth(1), "push.depth")
	c.stack.storeDepth(c.Builder, newDepth)
	return nil
}

// lowerPop lowers POP. Guard: depth >= 1, else revert.
func (c *OperationCtx) lowerPop(loc Location) error {
	c.requireDepth(1, "pop")

	depth := c.stack.loadDepth(c.Builder)
	newDepth := c.Builder.CreateSub(depth, c.stack.constDepth(1), "pop.depth")
	c.stack.storeDepth(c.Builder, newDepth)
	return nil
}
