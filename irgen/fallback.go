//go:build !llvm14 && !llvm15 && !llvm16 && !llvm17 && !llvm18 && !llvm19 && !llvm20

package irgen

import (
	"fmt"

	"github.com/malik672/evm-mlir/program"
)

// GenerateExecutable is the no-LLVM build's stand-in: the real
// implementation requires cgo bindings to a built LLVM, gated behind a
// version build tag (see generate_llvm.go).
func GenerateExecutable(prog *program.Program, opts Options) (*NativeCode, error) {
	return nil, fmt.Errorf("AOT compilation not available: build with -tags llvm18 (or another supported LLVM version)")
}

// LinkExecutable is the no-LLVM build's stand-in for the clang-based
// linking step.
func LinkExecutable(objectFile, outputPath string) error {
	return fmt.Errorf("AOT compilation not available: build with -tags llvm18 (or another supported LLVM version)")
}

// TripleFor is the no-LLVM build's stand-in for target triple
// resolution; it has no LLVM to query defaults from.
func TripleFor(targetOS, targetArch string) string {
	return targetOS + "-" + targetArch
}
