// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

import "math/big"

// pow5EntryCount and pow5InvEntryCount are the table sizes spec.md §3
// requires: POW5[i] for i in [0,325], POW5_INV[i] for i in [0,341].
const (
	pow5EntryCount    = 326
	pow5InvEntryCount = 342

	pow5BitCount    = 125
	pow5InvBitCount = 125
)

// uint128 is a 128-bit value, stored as two 64-bit limbs, used to hold a
// 125-bit power-of-five fraction (hi fits in 61 bits for every entry except
// pow5InvTable[0], which is exactly 2^125, so its hi is 2^61).
type uint128 struct {
	lo, hi uint64
}

var (
	pow5Table    [pow5EntryCount]uint128
	pow5InvTable [pow5InvEntryCount]uint128
)

// init computes the two power-of-five tables exactly, via math/big, rather
// than shipping ~670 hand-transcribed 128-bit hex constants. See
// SPEC_FULL.md §9 and DESIGN.md for why this is the trustworthy choice:
// each produced entry is bit-for-bit the same full-table value spec.md's
// invariant demands, and the computation runs once, before any call to
// Shortest, AppendDouble, or WriteDouble.
func init() {
	one := big.NewInt(1)
	five := big.NewInt(5)
	two := big.NewInt(2)

	pow5 := big.NewInt(1) // 5^i, updated incrementally
	for i := 0; i < pow5EntryCount; i++ {
		if i > 0 {
			pow5.Mul(pow5, five)
		}
		b := int(pow5bits(int32(i)))
		shift := b - pow5BitCount
		frac := new(big.Int)
		if shift >= 0 {
			frac.Rsh(pow5, uint(shift))
		} else {
			frac.Lsh(pow5, uint(-shift))
		}
		pow5Table[i] = splitUint128(frac)
	}

	pow5i := big.NewInt(1) // 5^i, updated incrementally
	for i := 0; i < pow5InvEntryCount; i++ {
		if i > 0 {
			pow5i.Mul(pow5i, five)
		}
		b := int(pow5bits(int32(i)))
		k := b + pow5InvBitCount - 1

		numerator := new(big.Int).Exp(two, big.NewInt(int64(k)), nil)
		// Ceiling division: frac = ceil(2^k / 5^i).
		frac := new(big.Int)
		rem := new(big.Int)
		frac.DivMod(numerator, pow5i, rem)
		if rem.Sign() != 0 {
			frac.Add(frac, one)
		}
		pow5InvTable[i] = splitUint128(frac)
	}
}

// splitUint128 splits a non-negative big.Int known to fit in 128 bits into
// its low and high 64-bit limbs.
func splitUint128(v *big.Int) uint128 {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(v, mask64)
	hi := new(big.Int).Rsh(v, 64)
	return uint128{lo: lo.Uint64(), hi: hi.Uint64()}
}
