//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package irgen

import (
	"fmt"

	"github.com/malik672/evm-mlir/compileerr"
	"github.com/malik672/evm-mlir/program"
	"tinygo.org/x/go-llvm"
)

// jumpdestEntry is one (pc, block) pair in the jump destination registry.
// Kept as an ordered slice rather than a map so ascending-PC iteration at
// jump-table finalization (spec §4.4, §5) never needs a separate sort
// step — insertion already maintains the order.
type jumpdestEntry struct {
	pc    uint64
	block llvm.BasicBlock
}

// OperationCtx is the mutable lowering state threaded through the
// per-opcode translators, scoped to exactly one program (spec §3).
type OperationCtx struct {
	Context llvm.Context // the MLIR-style IR builder's top-level handle
	Module  llvm.Module
	Builder llvm.Builder
	Fn      llvm.Value // the single function all opcodes lower into

	Program *program.Program // read-only borrow of the program being lowered

	RevertBlock    llvm.BasicBlock // the unique terminal revert block
	JumptableBlock llvm.BasicBlock // receives the target PC, dispatches by switch

	jumpdestBlocks []jumpdestEntry // ordered by pc ascending; see jumpdestEntry
	phiIncoming    []phiEdge       // one entry per JUMP site, for the jump table's phi node

	stack   *stack
	current llvm.BasicBlock // the block lowering is currently appending to

	jumpSites int64 // number of JUMP opcodes lowered; == jumptable incoming edges
}

// Location pins a lowering error to the operation that caused it. It has
// no effect on codegen — it only improves diagnostics.
type Location struct {
	OpIndex int
}

func (l Location) String() string {
	return fmt.Sprintf("operation #%d", l.OpIndex)
}

// registerJumpDestination inserts pc -> block into the registry. Fails
// with compileerr.ErrDuplicateJumpDest if pc is already present (spec §4.2).
func (c *OperationCtx) registerJumpDestination(pc uint64, block llvm.BasicBlock) error {
	for _, e := range c.jumpdestBlocks {
		if e.pc == pc {
			return fmt.Errorf("%w: pc=%d", compileerr.ErrDuplicateJumpDest, pc)
		}
	}
	// Insertion sort keeps jumpdestBlocks ordered by pc ascending at all
	// times, which is what jump-table finalization iterates over.
	i := 0
	for ; i < len(c.jumpdestBlocks); i++ {
		if c.jumpdestBlocks[i].pc > pc {
			break
		}
	}
	c.jumpdestBlocks = append(c.jumpdestBlocks, jumpdestEntry{})
	copy(c.jumpdestBlocks[i+1:], c.jumpdestBlocks[i:])
	c.jumpdestBlocks[i] = jumpdestEntry{pc: pc, block: block}
	return nil
}

// emitDynamicJump appends to the current block an unconditional branch to
// jumptable_block, forwarding pcValue as the block's argument (realized
// as a phi-node incoming edge, finalized later in finalizeJumpTable; see
// SPEC_FULL.md §1). The branch is not verified here; it is checked with
// the rest of the module by llvm.VerifyModule in GenerateExecutable.
func (c *OperationCtx) emitDynamicJump(pcValue llvm.Value, loc Location) error {
	c.Builder.CreateBr(c.JumptableBlock)
	c.jumpSites++
	c.phiIncoming = append(c.phiIncoming, phiEdge{value: pcValue, block: c.current})
	return nil
}

// phiEdge records one JUMP site's contribution to the jump table's
// target-pc phi node.
type phiEdge struct {
	value llvm.Value
	block llvm.BasicBlock
}

// moveTo repoints the builder's insertion point at bb and records it as
// the block lowering is currently appending to.
func (c *OperationCtx) moveTo(bb llvm.BasicBlock) {
	c.Builder.SetInsertPointAtEnd(bb)
	c.current = bb
}

// requireDepth emits an underflow guard (depth >= k, else revert) and
// moves lowering onto the continuation block.
func (c *OperationCtx) requireDepth(k uint64, label string) {
	ok := c.stack.emitUnderflowGuard(c.Builder, c.Context, c.Fn, k, c.RevertBlock, label)
	c.moveTo(ok)
}

// requirePushCapacity emits a push overflow guard (depth+1 <= 1024, else
// revert) and moves lowering onto the continuation block.
func (c *OperationCtx) requirePushCapacity() {
	ok := c.stack.emitPushOverflowGuard(c.Builder, c.Context, c.Fn, c.RevertBlock)
	c.moveTo(ok)
}
