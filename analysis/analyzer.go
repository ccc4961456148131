// Package analysis performs whole-program static analysis and
// optimization over a program.Program before it is handed to the
// lowering engine.
package analysis

import (
	"fmt"

	"github.com/malik672/evm-mlir/program"
)

// OptimizationPass represents a single program-to-program transformation.
type OptimizationPass interface {
	Name() string
	Apply(prog *program.Program) (*program.Program, error)
	IsEnabled(level int) bool
}

// Report carries the analysis-phase findings separately from the
// optimized program itself, for callers (the CLI's verbose mode, or
// compiler.Stats) that want visibility into what ran.
type Report struct {
	JumpDestinations map[uint64]int // pc -> operation index
	PassesApplied    []string
}

// StaticAnalyzer runs a fixed pipeline of optimization passes gated by an
// optimization level.
type StaticAnalyzer struct {
	passes []OptimizationPass
}

// NewStaticAnalyzer builds the default pass pipeline.
func NewStaticAnalyzer() *StaticAnalyzer {
	return &StaticAnalyzer{
		passes: []OptimizationPass{
			NewConstantFoldPass(),
			NewDeadJumpdestReportPass(),
		},
	}
}

// AnalyzeAndOptimize scans prog for jump destinations and runs every
// pass enabled at level, returning the (possibly rewritten) program.
func (a *StaticAnalyzer) AnalyzeAndOptimize(prog *program.Program, level int) (*program.Program, *Report, error) {
	report := &Report{
		JumpDestinations: scanJumpDestinations(prog),
	}

	optimized := prog
	for _, pass := range a.passes {
		if !pass.IsEnabled(level) {
			continue
		}
		result, err := pass.Apply(optimized)
		if err != nil {
			return nil, nil, fmt.Errorf("optimization pass %s failed: %w", pass.Name(), err)
		}
		optimized = result
		report.PassesApplied = append(report.PassesApplied, pass.Name())
	}

	return optimized, report, nil
}

// scanJumpDestinations builds a pc -> operation-index map without
// validating uniqueness; duplicate detection happens at lowering time
// where it can be reported with a precise Location.
func scanJumpDestinations(prog *program.Program) map[uint64]int {
	ops := prog.Operations()
	dests := make(map[uint64]int)
	for i, op := range ops {
		if op.Kind == program.OpJumpdest {
			dests[op.PC] = i
		}
	}
	return dests
}
