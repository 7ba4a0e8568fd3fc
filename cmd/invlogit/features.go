package main

import (
	"fmt"
	"io"

	"golang.org/x/sys/cpu"
)

// feature is a named CPU capability flag.
type feature struct {
	name string
	has  bool
}

// cpuFeatures returns the floating-point and vector features relevant to
// exp-heavy kernels for the given architecture.
func cpuFeatures(goarch string) []feature {
	switch goarch {
	case "amd64", "386":
		return []feature{
			{"SSE2", cpu.X86.HasSSE2},
			{"SSE41", cpu.X86.HasSSE41},
			{"AVX", cpu.X86.HasAVX},
			{"AVX2", cpu.X86.HasAVX2},
			{"FMA", cpu.X86.HasFMA},
			{"AVX512F", cpu.X86.HasAVX512F},
		}
	case "arm64":
		return []feature{
			{"FP", cpu.ARM64.HasFP},
			{"ASIMD", cpu.ARM64.HasASIMD},
			{"FPHP", cpu.ARM64.HasFPHP},
			{"ASIMDHP", cpu.ARM64.HasASIMDHP},
			{"SVE", cpu.ARM64.HasSVE},
		}
	}
	return nil
}

func printFeatures(w io.Writer, goarch string) {
	features := cpuFeatures(goarch)
	if len(features) == 0 {
		fmt.Fprintf(w, "cpu features: none reported for %s\n", goarch)
		return
	}
	fmt.Fprintf(w, "cpu features (%s):\n", goarch)
	for _, f := range features {
		fmt.Fprintf(w, "  %-8s %v\n", f.name+":", f.has)
	}
}
