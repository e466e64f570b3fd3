// Command sigscope runs one denoising session and reports how well each
// filter recovers the clean signal.
//
// Usage:
//
//	sigscope run [flags]
//	sigscope filters [flags]
//
// Examples:
//
//	sigscope run
//	sigscope run --filter bessel --cutoff 3 --order 4
//	sigscope run -c sigscope.yaml --format yaml --samples
//	SIGSCOPE_NOISE__VARIANCE=0.5 sigscope run --metrics
//	sigscope filters --cutoff 8
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
