//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package compiler

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/holiman/uint256"
	"github.com/malik672/evm-mlir/program"
)

// TestMain skips this package's tests when no C linker is available: like
// irgen's end-to-end tests, Compile drives real native code generation and
// linking, not a fake.
func TestMain(m *testing.M) {
	if _, err := exec.LookPath("clang"); err != nil {
		if _, err := exec.LookPath("cc"); err != nil {
			os.Exit(0) // no linker available in this environment
		}
	}
	os.Exit(m.Run())
}

func TestCompileSimpleProgram(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "evm_program")

	prog := program.New([]program.Operation{
		program.Push(uint256.NewInt(5)),
		program.Push(uint256.NewInt(10)),
		program.Add(),
	})

	options := DefaultOptions()
	options.OutputPath = outputPath
	c := New(options)

	if err := c.Compile(prog); err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if _, err := os.Stat(outputPath); os.IsNotExist(err) {
		t.Fatalf("executable not created at %s", outputPath)
	}

	stats := c.Stats()
	if stats.SourceOperations != 3 {
		t.Errorf("expected 3 source operations, got %d", stats.SourceOperations)
	}
	if stats.CompileTime == 0 {
		t.Error("expected non-zero compile time")
	}
	if stats.ExecutableSize == 0 {
		t.Error("expected non-zero executable size")
	}
}

func TestCompileAppliesOptimizations(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "evm_program_opt")

	prog := program.New([]program.Operation{
		program.Jumpdest(0),
		program.Push(uint256.NewInt(7)),
	})

	options := DefaultOptions()
	options.OutputPath = outputPath
	c := New(options)

	if err := c.Compile(prog); err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	stats := c.Stats()
	found := false
	for _, pass := range stats.OptimizationsApplied {
		if pass == "DeadJumpdestReport" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected DeadJumpdestReport in applied passes, got %v", stats.OptimizationsApplied)
	}
}

func TestCompileOptimizationLevelZeroSkipsPasses(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "evm_program_o0")

	prog := program.New([]program.Operation{program.Push(uint256.NewInt(1))})

	options := DefaultOptions()
	options.OutputPath = outputPath
	options.OptimizationLevel = 0
	c := New(options)

	if err := c.Compile(prog); err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if len(c.Stats().OptimizationsApplied) != 0 {
		t.Errorf("expected no passes applied at level 0, got %v", c.Stats().OptimizationsApplied)
	}
}
