//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package irgen

import "tinygo.org/x/go-llvm"

// finalizeJumpTable populates jumptable_block after the entire program has
// been walked and the PC->block registry is complete (spec §4.4, §9: this
// converts JUMP's potential forward reference into a one-pass lowering
// with a deferred terminator). It:
//
//  1. Builds the phi node realizing the block's 256-bit `target` argument,
//     fed by one incoming edge per JUMP site.
//  2. Emits one `target == pc` case per registered jumpdest, in ascending
//     pc order, so identical inputs produce byte-identical IR across runs.
//  3. Falls through to revert_block by default.
func (c *OperationCtx) finalizeJumpTable() (int64, error) {
	c.Builder.SetInsertPointAtEnd(c.JumptableBlock)

	target := c.Builder.CreatePHI(c.stack.wordType, "jumptable.target")
	if len(c.phiIncoming) > 0 {
		vals := make([]llvm.Value, len(c.phiIncoming))
		blocks := make([]llvm.BasicBlock, len(c.phiIncoming))
		for i, e := range c.phiIncoming {
			vals[i] = e.value
			blocks[i] = e.block
		}
		target.AddIncoming(vals, blocks)
	}

	sw := c.Builder.CreateSwitch(target, c.RevertBlock, len(c.jumpdestBlocks))
	for _, e := range c.jumpdestBlocks { // already ascending by pc; see jumpdestEntry
		caseVal := llvm.ConstInt(c.stack.wordType, e.pc, false)
		sw.AddCase(caseVal, e.block)
	}

	return int64(len(c.jumpdestBlocks)), nil
}
