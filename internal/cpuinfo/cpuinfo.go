// SPDX-License-Identifier: MIT

// Package cpuinfo reports the execution resources the multiplier can count on:
// the number of logical cores and the best SIMD instruction set the host
// exposes. Detection runs once at init; LVMAT_SIMD overrides it.
package cpuinfo

import (
	"os"
	"runtime"
	"strings"
)

// EnvSIMD names the environment variable that pins the active ISA.
// Values: generic, neon, sve2, avx2, avx512. Unknown or unavailable
// values are ignored and auto-detection applies.
const EnvSIMD = "LVMAT_SIMD"

// ISA identifies a SIMD instruction set.
type ISA uint8

const (
	// Generic means no usable SIMD; pure Go loops only.
	Generic ISA = iota
	// NEON is ARM64 Advanced SIMD (128-bit).
	NEON
	// SVE2 is ARM64 scalable vectors.
	SVE2
	// AVX2 is x86-64 AVX2 together with FMA.
	AVX2
	// AVX512 is x86-64 AVX-512 F+BW.
	AVX512
)

// String returns the lower-case name of the ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses a case-insensitive ISA name.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "neon":
		return NEON, true
	case "sve2":
		return SVE2, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// Set by the platform init before initCapabilities runs.
var (
	activeISA   ISA
	hasOverride bool

	hasASIMD    bool
	hasSVE2     bool
	hasAVX2     bool
	hasAVX512F  bool
	hasAVX512BW bool
)

func initCapabilities() {
	if override := os.Getenv(EnvSIMD); override != "" {
		if isa, ok := ParseISA(override); ok && Available(isa) {
			hasOverride = true
			activeISA = isa
			return
		}
	}
	activeISA = selectBest()
}

// Available reports whether isa can run on this CPU.
func Available(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return hasASIMD
	case SVE2:
		return hasSVE2
	case AVX2:
		return hasAVX2
	case AVX512:
		return hasAVX512F && hasAVX512BW
	default:
		return false
	}
}

func selectBest() ISA {
	switch runtime.GOARCH {
	case "arm64":
		// Apple cores run NEON faster than their SVE2 path.
		if hasSVE2 && runtime.GOOS != "darwin" {
			return SVE2
		}
		if hasASIMD {
			return NEON
		}
	case "amd64":
		if hasAVX512F && hasAVX512BW {
			return AVX512
		}
		if hasAVX2 {
			return AVX2
		}
	}
	return Generic
}

// Active returns the selected ISA.
func Active() ISA { return activeISA }

// IsOverridden reports whether LVMAT_SIMD picked the active ISA.
func IsOverridden() bool { return hasOverride }

// HasSIMD reports whether any vector ISA is active.
func HasSIMD() bool { return activeISA != Generic }

// LogicalCores returns the number of logical execution units
// (physical cores × hardware threads per core) visible to the process.
func LogicalCores() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
