// Package wordbits converts tag payloads to and from a canonical
// machine-word bit pattern.
//
// A tagged reference stores its payload typed, but callers that route tags
// through untyped storage (indexes, logs, wire-adjacent buffers) need one
// canonical word per payload. This package provides that word: every
// conversion is a bit reinterpretation, never a numeric conversion, so NaN
// payloads, signed zeros and negative integers survive a round trip exactly.
//
// The 64-bit conversions assume a 64-bit target; on 32-bit targets a Pattern
// cannot hold them and the high bits are lost.
package wordbits

import "math"

// Pattern is the raw machine-word bit pattern of a tag payload.
type Pattern uintptr

// FromFloat32 packs an IEEE-754 binary32 value into the low 32 bits.
func FromFloat32(f float32) Pattern {
	return Pattern(math.Float32bits(f))
}

// Float32 reinterprets the low 32 bits as an IEEE-754 binary32 value.
func Float32(p Pattern) float32 {
	return math.Float32frombits(uint32(p))
}

// FromFloat64 packs an IEEE-754 binary64 value into the full word.
func FromFloat64(f float64) Pattern {
	return Pattern(math.Float64bits(f))
}

// Float64 reinterprets the word as an IEEE-754 binary64 value.
func Float64(p Pattern) float64 {
	return math.Float64frombits(uint64(p))
}

// FromRune packs a Unicode scalar value into the low 32 bits.
func FromRune(r rune) Pattern {
	return Pattern(uint32(r))
}

// Rune reinterprets the low 32 bits as a Unicode scalar value.
func Rune(p Pattern) rune {
	return rune(uint32(p))
}

// FromBool packs a boolean as 0 or 1.
func FromBool(b bool) Pattern {
	if b {
		return 1
	}
	return 0
}

// Bool reports whether the pattern is non-zero.
func Bool(p Pattern) bool {
	return p != 0
}

// FromUint64 packs an unsigned 64-bit integer into the word.
func FromUint64(v uint64) Pattern {
	return Pattern(v)
}

// Uint64 reinterprets the word as an unsigned 64-bit integer.
func Uint64(p Pattern) uint64 {
	return uint64(p)
}

// FromInt64 packs a signed 64-bit integer into the word, two's complement.
func FromInt64(v int64) Pattern {
	return Pattern(uint64(v))
}

// Int64 reinterprets the word as a signed 64-bit integer.
func Int64(p Pattern) int64 {
	return int64(uint64(p))
}
