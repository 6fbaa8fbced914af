package cpuinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseISARoundTrip covers ParseISA and ISA.String.
func TestParseISARoundTrip(t *testing.T) {
	for _, isa := range []ISA{Generic, NEON, SVE2, AVX2, AVX512} {
		got, ok := ParseISA(isa.String())
		require.True(t, ok, isa.String())
		require.Equal(t, isa, got)
	}

	got, ok := ParseISA("  AVX2 ")
	require.True(t, ok)
	require.Equal(t, AVX2, got)

	_, ok = ParseISA("mmx")
	require.False(t, ok)
	require.Equal(t, "unknown", ISA(200).String())
}

// TestActiveIsAvailable verifies the active ISA runs on this host.
func TestActiveIsAvailable(t *testing.T) {
	require.True(t, Available(Active()))
	require.True(t, Available(Generic))
	require.Equal(t, Active() != Generic, HasSIMD())
}

// TestLogicalCores verifies at least one logical core is reported.
func TestLogicalCores(t *testing.T) {
	require.GreaterOrEqual(t, LogicalCores(), 1)
}
