//go:build amd64

// Package simd provides SIMD-accelerated byte scanning for searchers that
// need to jump straight to the next occurrence of a single byte (the
// rare-byte heuristic RareByteSearcher builds on). It automatically
// selects the best implementation based on available CPU features
// (AVX2 on x86-64) and falls back to an optimized pure Go implementation
// on other platforms.
package simd

import "golang.org/x/sys/cpu"

// CPU feature detection flags set at package initialization.
var (
	// hasAVX2 indicates whether the CPU supports AVX2 instructions (256-bit SIMD).
	hasAVX2 = cpu.X86.HasAVX2
)

// memchrAVX2 is implemented in memchr_amd64.s and uses 256-bit vector
// operations.
//
//go:noescape
func memchrAVX2(haystack []byte, needle byte) int

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// This function is equivalent to bytes.IndexByte but uses SIMD instructions
// (AVX2) when available on x86-64 platforms, falling back to a pure Go
// implementation on other architectures or small inputs.
//
// Example:
//
//	haystack := []byte("hello world")
//	pos := simd.Memchr(haystack, 'o')
//	if pos != -1 {
//	    fmt.Printf("Found 'o' at position %d\n", pos) // Output: Found 'o' at position 4
//	}
func Memchr(haystack []byte, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}

	// Use AVX2 implementation if available and input is large enough to amortize overhead.
	// For small inputs (< 32 bytes), the setup cost of SIMD outweighs the benefits.
	if hasAVX2 && len(haystack) >= 32 {
		return memchrAVX2(haystack, needle)
	}

	return memchrGeneric(haystack, needle)
}
