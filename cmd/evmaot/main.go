// Command evmaot ahead-of-time compiles an EVM-subset assembly text
// file into a native executable.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/malik672/evm-mlir/compiler"
	"github.com/urfave/cli/v2"
)

var (
	optimizationFlag = &cli.IntFlag{
		Name:  "optimize",
		Usage: "optimization level: 0=none, 1=basic, 2=aggressive",
		Value: 1,
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output executable path",
	}
	targetOSFlag = &cli.StringFlag{
		Name:  "target-os",
		Usage: "cross-compilation target OS (empty = host)",
	}
	targetArchFlag = &cli.StringFlag{
		Name:  "target-arch",
		Usage: "cross-compilation target architecture (empty = host)",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "enable debug-level logging",
	}
)

var compileCommand = &cli.Command{
	Name:      "compile",
	Usage:     "compile an assembly source file to a native executable",
	ArgsUsage: "<source.asm>",
	Flags:     []cli.Flag{optimizationFlag, outputFlag, targetOSFlag, targetArchFlag, verboseFlag},
	Action:    runCompile,
}

var disasmCommand = &cli.Command{
	Name:      "disasm",
	Usage:     "print the operations an assembly source file parses to",
	ArgsUsage: "<source.asm>",
	Action:    runDisasm,
}

func main() {
	app := &cli.App{
		Name:     "evmaot",
		Usage:    "ahead-of-time compile EVM-subset bytecode to a native executable",
		Commands: []*cli.Command{compileCommand, disasmCommand},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runCompile(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one source file argument")
	}
	sourcePath := c.Args().Get(0)

	f, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	prog, err := ParseAssembly(f)
	if err != nil {
		return fmt.Errorf("parse assembly: %w", err)
	}

	level := slog.LevelInfo
	if c.Bool(verboseFlag.Name) {
		level = slog.LevelDebug
	}

	options := compiler.DefaultOptions()
	options.OptimizationLevel = c.Int(optimizationFlag.Name)
	options.TargetOS = c.String(targetOSFlag.Name)
	options.TargetArch = c.String(targetArchFlag.Name)
	options.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	options.OutputPath = c.String(outputFlag.Name)
	if options.OutputPath == "" {
		options.OutputPath = defaultOutputPath(sourcePath)
	}

	comp := compiler.New(options)
	if err := comp.Compile(prog); err != nil {
		return fmt.Errorf("compile %s: %w", sourcePath, err)
	}

	stats := comp.Stats()
	fmt.Printf("compiled %s -> %s (%d operations, %d native instructions, %d jump table cases, %v)\n",
		sourcePath, options.OutputPath, stats.SourceOperations, stats.NativeInstructions, stats.JumpTableCases, stats.CompileTime)
	return nil
}

func runDisasm(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one source file argument")
	}
	sourcePath := c.Args().Get(0)

	f, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	prog, err := ParseAssembly(f)
	if err != nil {
		return fmt.Errorf("parse assembly: %w", err)
	}

	return Disassemble(os.Stdout, prog)
}

func defaultOutputPath(sourcePath string) string {
	base := sourcePath
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			base = base[:i]
			break
		}
	}
	if base == sourcePath {
		return sourcePath + ".out"
	}
	return base
}
