// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

// IEEE-754 binary64 layout.
const (
	mantissaBits = 52
	exponentBits = 11
	bias         = 1023
)

// decodeBits splits the raw bit pattern of a float64 into sign,
// biased exponent, and mantissa fields.
func decodeBits(bits uint64) (sign bool, ieeeExponent uint32, ieeeMantissa uint64) {
	sign = (bits>>(mantissaBits+exponentBits))&1 != 0
	ieeeExponent = uint32(bits>>mantissaBits) & (1<<exponentBits - 1)
	ieeeMantissa = bits & (uint64(1)<<mantissaBits - 1)
	return
}
