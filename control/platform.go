// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Platform probes: CPU count and the SIMD features x/sys/cpu detected.

package control

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// RegisterPlatformProbes adds platform.* probes to dp.
func RegisterPlatformProbes(dp *DebugProbes) {
	dp.RegisterProbe("platform.cpus", func() any {
		return runtime.NumCPU()
	})
	dp.RegisterProbe("platform.arch", func() any {
		return runtime.GOOS + "/" + runtime.GOARCH
	})
	dp.RegisterProbe("platform.cpu_features", func() any {
		return map[string]bool{
			"x86.avx2":    cpu.X86.HasAVX2,
			"x86.sse42":   cpu.X86.HasSSE42,
			"arm64.asimd": cpu.ARM64.HasASIMD,
		}
	})
}
