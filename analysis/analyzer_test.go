package analysis

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/malik672/evm-mlir/program"
)

func TestConstantFoldPassIsANoOp(t *testing.T) {
	prog := program.New([]program.Operation{
		program.Push(uint256.NewInt(1)),
		program.Push(uint256.NewInt(2)),
		program.Add(),
	})

	pass := NewConstantFoldPass()
	out, err := pass.Apply(prog)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if out.Len() != prog.Len() {
		t.Errorf("expected ConstantFoldPass to leave the program unchanged, got %d operations, want %d", out.Len(), prog.Len())
	}
}

func TestStaticAnalyzerScansJumpDestinations(t *testing.T) {
	prog := program.New([]program.Operation{
		program.Jumpdest(0),
		program.Push(uint256.NewInt(0)),
		program.Jump(),
		program.Jumpdest(5),
	})

	a := NewStaticAnalyzer()
	_, report, err := a.AnalyzeAndOptimize(prog, 1)
	if err != nil {
		t.Fatalf("AnalyzeAndOptimize returned error: %v", err)
	}
	if len(report.JumpDestinations) != 2 {
		t.Fatalf("expected 2 jump destinations, got %d", len(report.JumpDestinations))
	}
	if report.JumpDestinations[5] != 3 {
		t.Errorf("expected pc 5 at operation index 3, got %d", report.JumpDestinations[5])
	}
}

func TestStaticAnalyzerRespectsOptimizationLevel(t *testing.T) {
	prog := program.New([]program.Operation{
		program.Push(uint256.NewInt(1)),
		program.Pop(),
	})

	a := NewStaticAnalyzer()
	out, report, err := a.AnalyzeAndOptimize(prog, 0)
	if err != nil {
		t.Fatalf("AnalyzeAndOptimize returned error: %v", err)
	}
	if out.Len() != 2 {
		t.Errorf("expected no passes to run at level 0, got %d operations", out.Len())
	}
	if len(report.PassesApplied) != 0 {
		t.Errorf("expected no passes applied at level 0, got %v", report.PassesApplied)
	}
}
