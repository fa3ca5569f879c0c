// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !purego

package ryu

import "math/bits"

// mulShift64 computes floor(m*t / 2^j), where t = hi*2^64+lo <= 2^125,
// m < 2^55, and j is in [116, 180]. The full product is at most 180 bits;
// after the shift, the result fits in 64 bits.
//
// This is the "64-bit intrinsic" backend of spec.md §4.B: a 64x64->128
// multiply via bits.Mul64, combined into the high 64 bits of m*t by hand
// (the low limb of m*t never affects the result once j >= 116 drops it),
// then shifted right by j-64.
func mulShift64(m uint64, lo, hi uint64, j uint) uint64 {
	// b0 = m*lo, b2 = m*hi (each 128 bits, as hi:lo pairs).
	b0hi, _ := bits.Mul64(m, lo)
	b2hi, b2lo := bits.Mul64(m, hi)
	sum, carry := bits.Add64(b2lo, b0hi, 0)
	b2hi += carry
	// The 192-bit product m*t is (b2hi:sum:b0lo) in 64-bit limbs, with
	// b0lo discarded (j-64 >= 52 always shifts past it). We only need
	// the top 128 bits: hi128 = b2hi:sum.
	return shiftRight128(sum, b2hi, j-64)
}

// shiftRight128 returns floor((hi*2^64+lo) / 2^n) truncated to 64 bits,
// for 0 <= n < 128 and a result that is known to fit in 64 bits.
func shiftRight128(lo, hi uint64, n uint) uint64 {
	if n < 64 {
		if n == 0 {
			return lo
		}
		return (hi << (64 - n)) | (lo >> n)
	}
	return hi >> (n - 64)
}

// mulShiftAll64 computes the three rounding-interval bounds at once:
// v = mulShift64(4m, t, j), vp = mulShift64(4m+2, t, j),
// vm = mulShift64(4m-1-mmShift, t, j).
func mulShiftAll64(m uint64, lo, hi uint64, j uint, mmShift uint64) (v, vp, vm uint64) {
	v = mulShift64(4*m, lo, hi, j)
	vp = mulShift64(4*m+2, lo, hi, j)
	vm = mulShift64(4*m-1-mmShift, lo, hi, j)
	return
}
