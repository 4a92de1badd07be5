package board

import "math/bits"

// uint128 is a 128-bit unsigned integer made of two 64-bit halves.
// It only backs Bitboard, so it carries just the operations bitboards need.
type uint128 struct {
	hi uint64
	lo uint64
}

func (x uint128) not() uint128 {
	return uint128{hi: ^x.hi, lo: ^x.lo}
}

func (x uint128) and(y uint128) uint128 {
	return uint128{hi: x.hi & y.hi, lo: x.lo & y.lo}
}

func (x uint128) or(y uint128) uint128 {
	return uint128{hi: x.hi | y.hi, lo: x.lo | y.lo}
}

func (x uint128) andNot(y uint128) uint128 {
	return uint128{hi: x.hi &^ y.hi, lo: x.lo &^ y.lo}
}

// lsh shifts left by n bits. A negative n shifts right.
func (x uint128) lsh(n int) uint128 {
	switch {
	case n < 0:
		return x.rsh(-n)
	case n == 0:
		return x
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{hi: x.lo << (n - 64)}
	}
	return uint128{
		hi: x.hi<<n | x.lo>>(64-n),
		lo: x.lo << n,
	}
}

// rsh shifts right by n bits. A negative n shifts left.
func (x uint128) rsh(n int) uint128 {
	switch {
	case n < 0:
		return x.lsh(-n)
	case n == 0:
		return x
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{lo: x.hi >> (n - 64)}
	}
	return uint128{
		hi: x.hi >> n,
		lo: x.lo>>n | x.hi<<(64-n),
	}
}

func (x uint128) isZero() bool {
	return x.hi == 0 && x.lo == 0
}

func (x uint128) onesCount() int {
	return bits.OnesCount64(x.hi) + bits.OnesCount64(x.lo)
}

// trailingZeros returns 128 for zero.
func (x uint128) trailingZeros() int {
	if x.lo != 0 {
		return bits.TrailingZeros64(x.lo)
	}
	return 64 + bits.TrailingZeros64(x.hi)
}
