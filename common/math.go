package common

import "cmp"

// Clamp limits v to the closed range [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Premultiply scales an 8-bit channel by an 8-bit alpha.
func Premultiply(c, a uint8) uint8 {
	return uint8(uint16(c) * uint16(a) / 0xFF)
}
