//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package irgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/malik672/evm-mlir/compileerr"
	"github.com/malik672/evm-mlir/program"
	"tinygo.org/x/go-llvm"
)

// GenerateExecutable lowers prog through the full bytecode->IR engine
// (spec §2's "Flow") and emits an object file. It does not link; call
// LinkExecutable with the result to produce a runnable binary.
func GenerateExecutable(prog *program.Program, opts Options) (*NativeCode, error) {
	llvm.InitializeAllTargetInfos()
	llvm.InitializeAllTargets()
	llvm.InitializeAllTargetMCs()
	llvm.InitializeAllAsmParsers()
	llvm.InitializeAllAsmPrinters()

	ctx := llvm.NewContext()
	defer ctx.Dispose()

	module := ctx.NewModule("evm_program")
	defer module.Dispose()

	builder := ctx.NewBuilder()
	defer builder.Dispose()

	mainType := llvm.FunctionType(ctx.Int32Type(), nil, false)
	fn := llvm.AddFunction(module, "main", mainType)

	entry := ctx.AddBasicBlock(fn, "entry")
	revertBlock := ctx.AddBasicBlock(fn, "revert")
	jumptableBlock := ctx.AddBasicBlock(fn, "jumptable")

	builder.SetInsertPointAtEnd(entry)
	st := newStack(ctx, builder)

	opCtx := &OperationCtx{
		Context:        ctx,
		Module:         module,
		Builder:        builder,
		Fn:             fn,
		Program:        prog,
		RevertBlock:    revertBlock,
		JumptableBlock: jumptableBlock,
		stack:          st,
	}

	body := ctx.AddBasicBlock(fn, "body.0")
	builder.CreateBr(body)
	opCtx.moveTo(body)

	ops := prog.Operations()
	for i, op := range ops {
		loc := Location{OpIndex: i}
		if err := lowerOperation(opCtx, op, loc); err != nil {
			return nil, err
		}
	}

	// Fall off the end of the sequence: natural exit (spec §4.5).
	buildNaturalExit(ctx, builder, st)
	buildRevertBlock(ctx, builder, revertBlock)

	jumpCases, err := opCtx.finalizeJumpTable()
	if err != nil {
		return nil, err
	}

	if err := llvm.VerifyModule(module, llvm.ReturnStatusAction); err != nil {
		return nil, fmt.Errorf("%w: %v", compileerr.ErrIRVerification, err)
	}

	triple := TripleFor(opts.TargetOS, opts.TargetArch)
	target, err := llvm.GetTargetFromTriple(triple)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve target %q: %v", compileerr.ErrBackendEmit, triple, err)
	}

	machine := target.CreateTargetMachine(
		triple,
		"generic",
		"",
		codeGenLevel(opts.OptimizationLevel),
		llvm.RelocDefault,
		llvm.CodeModelDefault,
	)
	defer machine.Dispose()

	targetData := machine.CreateTargetData()
	defer targetData.Dispose()
	module.SetDataLayout(targetData.String())
	module.SetTarget(triple)

	memBuf, err := machine.EmitToMemoryBuffer(module, llvm.ObjectFile)
	if err != nil {
		return nil, fmt.Errorf("%w: emit object: %v", compileerr.ErrBackendEmit, err)
	}
	defer memBuf.Dispose()

	objectDir, err := os.MkdirTemp("", "evm_program")
	if err != nil {
		return nil, fmt.Errorf("%w: create object file directory: %v", compileerr.ErrBackendEmit, err)
	}
	objectFile := filepath.Join(objectDir, "evm_program.o")
	if err := os.WriteFile(objectFile, memBuf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("%w: write object file: %v", compileerr.ErrBackendEmit, err)
	}

	return &NativeCode{
		ObjectFile: objectFile,
		EntryPoint: "main",
		Stats: Stats{
			NativeInstructions: int64(len(ops)),
			JumpTableCases:     jumpCases,
		},
	}, nil
}

// lowerOperation dispatches a single Operation to its per-opcode lowering
// function (spec §4.3).
func lowerOperation(c *OperationCtx, op program.Operation, loc Location) error {
	switch op.Kind {
	case program.OpPush:
		return c.lowerPush(op, loc)
	case program.OpPop:
		return c.lowerPop(loc)
	case program.OpAdd:
		return c.lowerAdd()
	case program.OpMul:
		return c.lowerMul()
	case program.OpByte:
		return c.lowerByte()
	case program.OpJump:
		return c.lowerJump(loc)
	case program.OpJumpdest:
		return c.lowerJumpdest(op, loc)
	default:
		return fmt.Errorf("%w: %s: unknown opcode %v", compileerr.ErrMalformedInput, loc, op.Kind)
	}
}

func codeGenLevel(optimizationLevel int) llvm.CodeGenOptLevel {
	switch {
	case optimizationLevel <= 0:
		return llvm.CodeGenLevelNone
	case optimizationLevel == 1:
		return llvm.CodeGenLevelDefault
	default:
		return llvm.CodeGenLevelAggressive
	}
}
