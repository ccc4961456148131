//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package irgen

import (
	"fmt"

	"github.com/malik672/evm-mlir/program"
)

// lowerJumpdest lowers JUMPDEST{pc}: no guard. Creates a fresh block,
// branches the current block into it unconditionally, makes it the new
// current block, and registers pc -> block in the jump destination
// registry (spec §4.3).
func (c *OperationCtx) lowerJumpdest(op program.Operation, loc Location) error {
	next := c.Context.AddBasicBlock(c.Fn, fmt.Sprintf("jumpdest.%d", op.PC))
	c.Builder.CreateBr(next)
	c.moveTo(next)
	if err := c.registerJumpDestination(op.PC, next); err != nil {
		return fmt.Errorf("%s: %w", loc, err)
	}
	return nil
}

// lowerJump lowers JUMP: pops target; branches to jumptable_block with
// target as the forwarded value (realized as a phi incoming edge — see
// emitDynamicJump). Guard: depth >= 1, else revert. The current block is
// terminated.
func (c *OperationCtx) lowerJump(loc Location) error {
	c.requireDepth(1, "jump")

	depth := c.stack.loadDepth(c.Builder)
	targetIdx := c.Builder.CreateSub(depth, c.stack.constDepth(1), "jump.targetidx")
	target := c.stack.loadWord(c.Builder, targetIdx)
	c.stack.storeDepth(c.Builder, targetIdx) // pop: new depth == old depth-1

	if err := c.emitDynamicJump(target, loc); err != nil {
		return err
	}

	// JUMP terminates the current block. Any operations between this one
	// and the next JUMPDEST are unreachable at runtime (e.g. spec §8
	// scenario 11's skipped PUSH); give them a fresh, predecessor-less
	// block to lower into so the IR stays well-formed (every block ends
	// in exactly one terminator).
	dead := c.Context.AddBasicBlock(c.Fn, "after.jump")
	c.moveTo(dead)
	return nil
}
