// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

// pow5bits returns ceil(log2(5^e)) for e >= 1, and 1 for e == 0.
// Valid for 0 <= e <= 3528.
func pow5bits(e int32) int32 {
	return int32((uint32(e)*1217359)>>19) + 1
}

// log10Pow2 returns floor(log10(2^e)). Valid for 0 <= e <= 1650.
func log10Pow2(e int32) int32 {
	return int32((uint32(e) * 78913) >> 18)
}

// log10Pow5 returns floor(log10(5^e)). Valid for 0 <= e <= 2620.
func log10Pow5(e int32) int32 {
	return int32((uint32(e) * 732923) >> 20)
}
