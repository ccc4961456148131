package analysis

import (
	"github.com/malik672/evm-mlir/program"
)

// ConstantFoldPass is the pipeline slot for folding ADD/MUL over two
// immediately-preceding PUSH operations into a single PUSH of the result.
// Apply performs no folding and returns the program unchanged: the
// subset's PUSH operands are already *uint256.Int, and folding would
// need wraparound-aware arithmetic duplicated from the lowering engine's
// LLVM-level add/mul.
type ConstantFoldPass struct{}

func NewConstantFoldPass() *ConstantFoldPass { return &ConstantFoldPass{} }

func (p *ConstantFoldPass) Name() string { return "ConstantFold" }

func (p *ConstantFoldPass) IsEnabled(level int) bool { return level >= 2 }

func (p *ConstantFoldPass) Apply(prog *program.Program) (*program.Program, error) {
	return prog, nil
}

// DeadJumpdestReportPass doesn't rewrite the program; it exists as a
// pipeline slot for a future reachability analysis that would flag
// JUMPDESTs no JUMP in the program can ever target. Reporting-only
// passes like this are intentionally kept separate from rewriting
// passes so AnalyzeAndOptimize's Report can grow without touching the
// program.Program contract.
type DeadJumpdestReportPass struct{}

func NewDeadJumpdestReportPass() *DeadJumpdestReportPass { return &DeadJumpdestReportPass{} }

func (p *DeadJumpdestReportPass) Name() string { return "DeadJumpdestReport" }

func (p *DeadJumpdestReportPass) IsEnabled(level int) bool { return level >= 1 }

func (p *DeadJumpdestReportPass) Apply(prog *program.Program) (*program.Program, error) {
	return prog, nil
}
