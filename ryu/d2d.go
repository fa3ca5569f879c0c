// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

import "math"

const (
	maxUint64 = ^uint64(0)

	// Modular inverse of 5 mod 2^64, and floor(2^64/5): used by
	// pow5Factor to count factors of 5 without division.
	inv5  = 14757395258967641293
	div5n = maxUint64 / 5
)

// Shortest returns the shortest decimal (mantissa, exponent) such that
// mantissa * 10**exponent equals f, for a finite, non-zero f. Ties round
// to even. The sign of f is not reflected in the result; callers that need
// it should test math.Signbit(f) themselves.
func Shortest(f float64) (mantissa uint64, exponent int32) {
	bits := math.Float64bits(f)
	_, ieeeExponent, ieeeMantissa := decodeBits(bits)
	return shortestFromBits(ieeeExponent, ieeeMantissa)
}

func shortestFromBits(ieeeExponent uint32, ieeeMantissa uint64) (mantissa uint64, exponent int32) {
	var e2 int32
	var m2 uint64
	if ieeeExponent == 0 {
		e2 = 1 - bias - mantissaBits - 2
		m2 = ieeeMantissa
	} else {
		e2 = int32(ieeeExponent) - bias - mantissaBits - 2
		m2 = uint64(1)<<mantissaBits | ieeeMantissa
	}

	// Component E: small-integer fast path. An exact integer in
	// [1, 2^53) needs no general conversion; strip its trailing zeros
	// directly.
	if m, e, ok := smallIntFastPath(m2, e2, ieeeExponent); ok {
		return m, e
	}

	acceptBounds := ieeeMantissa&1 == 0
	mv := 4 * m2
	var mmShift uint64
	if ieeeMantissa != 0 || ieeeExponent <= 1 {
		mmShift = 1
	}

	var vr, vp, vm uint64
	var e10 int32
	var vrTrailingZeros, vmTrailingZeros bool

	if e2 >= 0 {
		q := log10Pow2(e2)
		if e2 > 3 {
			q--
		}
		e10 = q
		k := int32(pow5InvBitCount) + pow5bits(q) - 1
		j := -e2 + q + k
		entry := pow5InvTable[q]
		vr, vp, vm = mulShiftAll64(m2, entry.lo, entry.hi, uint(j), mmShift)
		if q <= 21 {
			mvMod5 := uint32(mv % 5)
			switch {
			case mvMod5 == 0:
				vrTrailingZeros = multipleOfPowerOf5(mv, q)
			case acceptBounds:
				vmTrailingZeros = multipleOfPowerOf5(mv-1-mmShift, q)
			default:
				if multipleOfPowerOf5(mv+2, q) {
					vp--
				}
			}
		}
	} else {
		nq := -e2
		q := log10Pow5(nq)
		if nq > 1 {
			q--
		}
		e10 = q + e2
		i := nq - q
		k := pow5bits(i) - int32(pow5BitCount)
		j := q - k
		entry := pow5Table[i]
		vr, vp, vm = mulShiftAll64(m2, entry.lo, entry.hi, uint(j), mmShift)
		switch {
		case q <= 1:
			vrTrailingZeros = true
			if acceptBounds {
				vmTrailingZeros = mmShift == 1
			} else {
				vp--
			}
		case q < 63:
			vrTrailingZeros = multipleOfPowerOf2(mv, q)
		}
	}

	removed := int32(0)
	var lastRemovedDigit uint64
	var output uint64

	if vmTrailingZeros || vrTrailingZeros {
		for vp/10 > vm/10 {
			vmTrailingZeros = vmTrailingZeros && vm%10 == 0
			vrTrailingZeros = vrTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = vr % 10
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		if vmTrailingZeros {
			for vm%10 == 0 {
				vrTrailingZeros = vrTrailingZeros && lastRemovedDigit == 0
				lastRemovedDigit = vr % 10
				vr /= 10
				vp /= 10
				vm /= 10
				removed++
			}
		}
		if vrTrailingZeros && lastRemovedDigit == 5 && vr%2 == 0 {
			lastRemovedDigit = 4
		}
		output = vr
		if (vr == vm && !(acceptBounds && vmTrailingZeros)) || lastRemovedDigit >= 5 {
			output++
		}
	} else {
		roundUp := false
		for vp/100 > vm/100 {
			roundUp = vr%100 >= 50
			vr /= 100
			vp /= 100
			vm /= 100
			removed += 2
		}
		for vp/10 > vm/10 {
			roundUp = vr%10 >= 5
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		output = vr
		if vr == vm || roundUp {
			output++
		}
	}

	return output, e10 + removed
}

// smallIntFastPath implements spec.md §4.E: an exact integer in [1, 2^53)
// skips the general algorithm. m2 must be as computed for the
// normal/subnormal case above; e2 is that same call's scaled exponent (it
// carries the extra -2 used by the mv=4*m2 trick elsewhere in d2d), so the
// natural, unscaled exponent this section's bounds are stated in terms of
// is e2+2. ieeeExponent distinguishes a genuine subnormal (which can never
// qualify) from a normal value with a small natural exponent.
func smallIntFastPath(m2 uint64, e2 int32, ieeeExponent uint32) (mantissa uint64, exponent int32, ok bool) {
	if ieeeExponent == 0 {
		return 0, 0, false
	}
	naturalE2 := e2 + 2
	if naturalE2 > 0 || naturalE2 < -mantissaBits {
		return 0, 0, false
	}
	mask := uint64(1)<<uint(-naturalE2) - 1
	if m2&mask != 0 {
		// Non-zero fraction: not an exact integer.
		return 0, 0, false
	}
	mantissa = m2 >> uint(-naturalE2)
	exponent = 0
	for mantissa%10 == 0 {
		mantissa /= 10
		exponent++
	}
	return mantissa, exponent, true
}

// pow5Factor returns the number of times 5 divides value, using repeated
// multiplication by the modular inverse of 5 mod 2^64 (spec.md §4.D).
func pow5Factor(value uint64) int32 {
	var count int32
	for {
		value *= inv5
		if value > div5n {
			return count
		}
		count++
	}
}

func multipleOfPowerOf5(value uint64, p int32) bool {
	return pow5Factor(value) >= p
}

func multipleOfPowerOf2(value uint64, p int32) bool {
	return value&(uint64(1)<<uint(p)-1) == 0
}
