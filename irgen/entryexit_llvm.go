//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package irgen

import (
	"github.com/malik672/evm-mlir/program"
	"tinygo.org/x/go-llvm"
)

// buildRevertBlock fills in the unique terminal revert block: it simply
// returns the revert exit code (spec §4.5, §6). It has no predecessors
// wired here — every potentially-failing opcode branches to it directly,
// plus the jump table's default edge.
func buildRevertBlock(ctx llvm.Context, b llvm.Builder, revertBlock llvm.BasicBlock) {
	b.SetInsertPointAtEnd(revertBlock)
	code := llvm.ConstInt(ctx.Int32Type(), program.RevertExitCode, false)
	b.CreateRet(code)
}

// buildNaturalExit reads the low byte of the stack top (zero if the
// stack is empty) and returns it as the process exit code — the natural
// program exit reached by falling off the end of the operation sequence
// without a terminating control-flow opcode (spec §4.5, §9 Open
// Question: empty-stack exit is 0).
func buildNaturalExit(ctx llvm.Context, b llvm.Builder, s *stack) {
	depth := s.loadDepth(b)
	empty := b.CreateICmp(llvm.IntEQ, depth, s.constDepth(0), "exit.empty")

	// depth-1 underflows to all-ones when depth == 0; select the index
	// to a known-valid slot (0) first so the load never issues an
	// out-of-bounds GEP, then let the value-level select below discard
	// whatever it read.
	rawTopIdx := b.CreateSub(depth, s.constDepth(1), "exit.rawtopidx")
	topIdx := b.CreateSelect(empty, s.constDepth(0), rawTopIdx, "exit.topidx")
	top := s.loadWord(b, topIdx)
	zeroWord := llvm.ConstInt(s.wordType, 0, false)
	value := b.CreateSelect(empty, zeroWord, top, "exit.value")

	lowByte := b.CreateTrunc(value, ctx.Int8Type(), "exit.lowbyte")
	code := b.CreateZExt(lowByte, ctx.Int32Type(), "exit.code")
	b.CreateRet(code)
}
