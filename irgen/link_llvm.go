//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package irgen

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/malik672/evm-mlir/compileerr"
)

// LinkExecutable invokes the system C compiler driver to link objectFile
// into a standalone executable at outputPath. Using clang/cc as the
// linker driver (rather than driving the platform linker directly)
// mirrors how most LLVM-backed AOT pipelines hand off object code —
// it resolves the C runtime startup files for us.
func LinkExecutable(objectFile, outputPath string) error {
	driver, err := linkerDriver()
	if err != nil {
		return fmt.Errorf("%w: %v", compileerr.ErrBackendEmit, err)
	}

	cmd := exec.Command(driver, objectFile, "-o", outputPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: link %s: %v: %s", compileerr.ErrBackendEmit, objectFile, err, out)
	}
	return nil
}

func linkerDriver() (string, error) {
	for _, candidate := range []string{"clang", "cc", "gcc"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no C compiler driver found on PATH (tried clang, cc, gcc)")
}

// TripleFor resolves an LLVM target triple for the given OS/arch pair.
// Each of targetOS and targetArch that is left empty takes the host's
// value, so both empty yields the host triple (spec's "native
// executable" requirement, generalized to support cross-compilation when
// the caller supplies an explicit target). A targetOS other than linux,
// darwin or windows yields the host triple.
func TripleFor(targetOS, targetArch string) string {
	if targetOS == "" && targetArch == "" {
		return defaultTargetTriple()
	}

	hostArch, hostRest, _ := strings.Cut(defaultTargetTriple(), "-")
	arch := targetArch
	if arch == "" {
		arch = hostArch
	}

	switch targetOS {
	case "":
		return arch + "-" + hostRest
	case "linux":
		return arch + "-unknown-linux-gnu"
	case "darwin":
		return arch + "-apple-darwin"
	case "windows":
		return arch + "-pc-windows-msvc"
	default:
		return defaultTargetTriple()
	}
}
