// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ryu converts IEEE-754 binary64 floating-point values to the
// shortest decimal string that round-trips back to the same value, using
// the Ryū algorithm (Adams, "Ryū: fast float-to-string conversion", PLDI
// 2018).
//
// Shortest returns the decimal mantissa and exponent directly. AppendDouble
// and WriteDouble format that decimal in scientific ('e'/'E') or plain
// ('f') presentation, the latter into a caller-supplied fixed buffer with
// truncation semantics suitable for a C-style bounded write.
//
// The package does no heap allocation on the hot path, keeps no mutable
// global state, and is safe for concurrent use: the two power-of-five
// lookup tables are computed once at init and never written again.
package ryu
