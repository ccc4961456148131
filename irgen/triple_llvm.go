//go:build llvm14 || llvm15 || llvm16 || llvm17 || llvm18 || llvm19 || llvm20

package irgen

import "tinygo.org/x/go-llvm"

func defaultTargetTriple() string {
	return llvm.DefaultTargetTriple()
}
