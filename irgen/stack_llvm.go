//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package irgen

import (
	"github.com/malik672/evm-mlir/program"
	"tinygo.org/x/go-llvm"
)

// stack is the canonical 1024-slot in-memory stack of 256-bit words plus
// its depth counter (spec §3/§4.3). It is allocated once in the function
// entry block and shared by every basic block the lowering engine
// creates, so it correctly represents stack state across control-flow
// merges (JUMPDESTs and the jump table) without needing a separate
// abstract, per-block value-vector representation — see DESIGN.md's
// Open Question resolution on this point.
type stack struct {
	array    llvm.Value // alloca [1024 x i256]
	depth    llvm.Value // alloca i64
	wordType llvm.Type  // i256
	arrType  llvm.Type  // [1024 x i256]
	i64Type  llvm.Type
}

// newStack allocates the stack's backing storage at the builder's
// current insertion point (the function's entry block) and initializes
// depth to zero.
func newStack(ctx llvm.Context, b llvm.Builder) *stack {
	wordType := ctx.IntType(program.WordBits)
	arrType := llvm.ArrayType(wordType, program.MaxStackDepth)
	i64Type := ctx.Int64Type()

	s := &stack{
		array:    b.CreateAlloca(arrType, "stack"),
		depth:    b.CreateAlloca(i64Type, "depth"),
		wordType: wordType,
		arrType:  arrType,
		i64Type:  i64Type,
	}
	b.CreateStore(llvm.ConstInt(i64Type, 0, false), s.depth)
	return s
}

func (s *stack) loadDepth(b llvm.Builder) llvm.Value {
	return b.CreateLoad(s.i64Type, s.depth, "depth.val")
}

func (s *stack) storeDepth(b llvm.Builder, v llvm.Value) {
	b.CreateStore(v, s.depth)
}

// elemPtr returns a pointer to stack slot idx (an i64 value).
func (s *stack) elemPtr(b llvm.Builder, idx llvm.Value) llvm.Value {
	zero := llvm.ConstInt(s.i64Type, 0, false)
	return b.CreateGEP(s.arrType, s.array, []llvm.Value{zero, idx}, "stack.elem")
}

func (s *stack) loadWord(b llvm.Builder, idx llvm.Value) llvm.Value {
	return b.CreateLoad(s.wordType, s.elemPtr(b, idx), "stack.load")
}

func (s *stack) storeWord(b llvm.Builder, idx llvm.Value, v llvm.Value) {
	b.CreateStore(v, s.elemPtr(b, idx))
}

// constDepth builds an i64 constant.
func (s *stack) constDepth(v uint64) llvm.Value {
	return llvm.ConstInt(s.i64Type, v, false)
}

// emitUnderflowGuard requires depth >= k, branching to revertBlock
// otherwise. Returns the new current block (the "ok" continuation),
// with the builder's insertion point already moved there.
func (s *stack) emitUnderflowGuard(b llvm.Builder, ctx llvm.Context, fn llvm.Value, k uint64, revertBlock llvm.BasicBlock, label string) llvm.BasicBlock {
	depth := s.loadDepth(b)
	ok := ctx.AddBasicBlock(fn, label+".ok")
	cond := b.CreateICmp(llvm.IntUGE, depth, s.constDepth(k), label+".underflow.cmp")
	b.CreateCondBr(cond, ok, revertBlock)
	b.SetInsertPointAtEnd(ok)
	return ok
}

// emitPushOverflowGuard requires depth+1 <= 1024 (i.e. depth < 1024),
// branching to revertBlock otherwise.
func (s *stack) emitPushOverflowGuard(b llvm.Builder, ctx llvm.Context, fn llvm.Value, revertBlock llvm.BasicBlock) llvm.BasicBlock {
	depth := s.loadDepth(b)
	ok := ctx.AddBasicBlock(fn, "push.ok")
	cond := b.CreateICmp(llvm.IntULT, depth, s.constDepth(program.MaxStackDepth), "push.overflow.cmp")
	b.CreateCondBr(cond, ok, revertBlock)
	b.SetInsertPointAtEnd(ok)
	return ok
}
