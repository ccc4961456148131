// Package compiler orchestrates the full pipeline from a program.Program
// to a linked native executable: static analysis, IR generation, and
// linking.
package compiler

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/malik672/evm-mlir/analysis"
	"github.com/malik672/evm-mlir/irgen"
	"github.com/malik672/evm-mlir/program"
)

// Options configures a single compilation run.
type Options struct {
	OutputPath        string
	OptimizationLevel int
	TargetOS          string
	TargetArch        string
	Logger            *slog.Logger
}

// DefaultOptions returns options with basic optimization enabled and a
// logger writing to stderr at info level.
func DefaultOptions() Options {
	return Options{
		OptimizationLevel: 1,
		Logger:            slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// Stats reports how long each pipeline stage took and what it produced.
type Stats struct {
	CompileTime          time.Duration
	AnalysisTime         time.Duration
	CodeGenTime          time.Duration
	LinkTime             time.Duration
	SourceOperations     int64
	NativeInstructions   int64
	JumpTableCases       int64
	OptimizationsApplied []string
	ExecutableSize       int64
}

// Compiler runs the analyze -> generate -> link pipeline over a single
// program.Program.
type Compiler struct {
	analyzer *analysis.StaticAnalyzer
	options  Options
	stats    Stats
	logger   *slog.Logger
}

// New builds a Compiler with the default analysis pass pipeline.
func New(options Options) *Compiler {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Compiler{
		analyzer: analysis.NewStaticAnalyzer(),
		options:  options,
		logger:   logger,
	}
}

// Compile runs prog through analysis, native code generation, and
// linking, producing an executable at c.options.OutputPath.
func (c *Compiler) Compile(prog *program.Program) error {
	start := time.Now()
	defer func() { c.stats.CompileTime = time.Since(start) }()

	c.stats.SourceOperations = int64(prog.Len())
	c.logger.Info("compiling program", "operations", prog.Len(), "optimization_level", c.options.OptimizationLevel)

	analysisStart := time.Now()
	optimized, report, err := c.analyzer.AnalyzeAndOptimize(prog, c.options.OptimizationLevel)
	if err != nil {
		return fmt.Errorf("static analysis: %w", err)
	}
	c.stats.AnalysisTime = time.Since(analysisStart)
	c.stats.OptimizationsApplied = report.PassesApplied
	c.logger.Debug("analysis complete", "jump_destinations", len(report.JumpDestinations), "passes", report.PassesApplied)

	codeGenStart := time.Now()
	native, err := irgen.GenerateExecutable(optimized, irgen.Options{
		OutputPath:        c.options.OutputPath,
		OptimizationLevel: c.options.OptimizationLevel,
		TargetOS:          c.options.TargetOS,
		TargetArch:        c.options.TargetArch,
	})
	if err != nil {
		return fmt.Errorf("native code generation: %w", err)
	}
	c.stats.CodeGenTime = time.Since(codeGenStart)
	c.stats.NativeInstructions = native.Stats.NativeInstructions
	c.stats.JumpTableCases = native.Stats.JumpTableCases
	c.logger.Debug("code generation complete", "object_file", native.ObjectFile, "jump_table_cases", native.Stats.JumpTableCases)

	linkStart := time.Now()
	if err := irgen.LinkExecutable(native.ObjectFile, c.options.OutputPath); err != nil {
		return fmt.Errorf("linking: %w", err)
	}
	c.stats.LinkTime = time.Since(linkStart)

	if stat, err := os.Stat(c.options.OutputPath); err == nil {
		c.stats.ExecutableSize = stat.Size()
	}

	c.logger.Info("compilation finished", "output", c.options.OutputPath, "total_time", time.Since(start))
	return nil
}

// Stats returns the statistics gathered by the most recent Compile call.
func (c *Compiler) Stats() Stats {
	return c.stats
}
