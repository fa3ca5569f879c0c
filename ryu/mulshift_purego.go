// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build purego

package ryu

// mulShift64 is the pure 64-bit backend of spec.md §4.B: four 32x32->64
// partial products with manual carry propagation, for targets where the
// compiler has no single-instruction 64x64->128 multiply to lower
// bits.Mul64 to. Produces bit-identical results to the default backend.
func mulShift64(m uint64, lo, hi uint64, j uint) uint64 {
	b0hi := mul64hi(m, lo)
	b2hi, b2lo := mul64full(m, hi)
	sum := b2lo + b0hi
	if sum < b2lo {
		b2hi++
	}
	return shiftRight128(sum, b2hi, j-64)
}

func shiftRight128(lo, hi uint64, n uint) uint64 {
	if n < 64 {
		if n == 0 {
			return lo
		}
		return (hi << (64 - n)) | (lo >> n)
	}
	return hi >> (n - 64)
}

// mul64full computes the full 128-bit product of two uint64 values as
// (hi, lo) using four 32x32->64 partial products.
func mul64full(a, b uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32

	t0 := aLo * bLo
	t1 := aHi*bLo + t0>>32
	t2 := aLo*bHi + t1&mask32
	lo = t2<<32 | t0&mask32
	hi = aHi*bHi + t1>>32 + t2>>32
	return
}

// mul64hi returns the high 64 bits of a*b.
func mul64hi(a, b uint64) uint64 {
	hi, _ := mul64full(a, b)
	return hi
}

func mulShiftAll64(m uint64, lo, hi uint64, j uint, mmShift uint64) (v, vp, vm uint64) {
	v = mulShift64(4*m, lo, hi, j)
	vp = mulShift64(4*m+2, lo, hi, j)
	vm = mulShift64(4*m-1-mmShift, lo, hi, j)
	return
}
