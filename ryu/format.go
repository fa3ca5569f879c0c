// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

import (
	"bytes"
	"math"
)

// AppendDouble appends the decimal form of f to dst in the requested
// format ('e', 'E', or 'f') and returns the extended buffer. Any other
// format byte leaves dst unchanged, per spec.md §4.H.
//
// This is the Go-native, growable-buffer counterpart of WriteDouble, in
// the shape strconv.AppendFloat uses.
func AppendDouble(dst []byte, f float64, format byte) []byte {
	if format != 'f' && format != 'e' && format != 'E' {
		return dst
	}

	var canon [32]byte
	c := canon[:0]
	if special, ok := appendSpecial(c, f); ok {
		return reformat(dst, special, format)
	}

	mantissa, exponent := Shortest(f)
	c = appendCanonical(c, math.Signbit(f), mantissa, exponent)
	return reformat(dst, c, format)
}

// WriteDouble writes the decimal form of f, in the requested format, into
// dst[:nbytes], truncating and always null-terminating when nbytes >= 1.
// It returns the length that would have been written regardless of
// nbytes, so a caller can size a buffer with a first WriteDouble(nil, f,
// format, 0) call (spec.md §6's sizing law).
//
// dst may be nil only when nbytes == 0.
func WriteDouble(dst []byte, f float64, format byte, nbytes int) int {
	var buf [400]byte
	full := AppendDouble(buf[:0], f, format)
	n := len(full)
	if nbytes <= 0 {
		return n
	}
	limit := n
	if limit > nbytes-1 {
		limit = nbytes - 1
	}
	copy(dst[:limit], full[:limit])
	dst[limit] = 0
	return n
}

// reformat rewrites a canonical scientific buffer (component F/G's output:
// "NaN", "[-]Infinity", or "[-]d(.ddd)E[-]d{1,3}") into the requested
// presentation. It is pure string rewriting, the boundary spec.md §6
// describes: 'e'/'E' only ever swap the exponent marker's case, and 'f'
// re-derives digit placement from the already-computed mantissa digits
// and exponent.
func reformat(dst []byte, canon []byte, format byte) []byte {
	i := bytes.IndexByte(canon, 'E')
	if i < 0 {
		// NaN or Infinity: outside the grammar H rewrites, passed
		// through unchanged regardless of the requested format.
		return append(dst, canon...)
	}

	if format != 'f' {
		start := len(dst)
		dst = append(dst, canon...)
		dst[start+i] = format
		return dst
	}

	sign := canon[0] == '-'
	digitsStart := 0
	if sign {
		digitsStart = 1
	}
	var digits [17]byte
	nd := 0
	for _, ch := range canon[digitsStart:i] {
		if ch != '.' {
			digits[nd] = ch
			nd++
		}
	}
	exp := parseBoundedExp(canon[i+1:])
	return appendFixed(dst, sign, digits[:nd], exp)
}

// appendFixed renders digits (most significant first, no decimal point)
// with canonical-scientific exponent exp into plain decimal form
// (spec.md §4.H's 'f' rule), trimming a trailing '.'/'.0'/all-zero
// fractional tail so integers print as e.g. "1" or "5000", not "1." or
// "5000.0".
func appendFixed(dst []byte, sign bool, digits []byte, exp int) []byte {
	if sign {
		dst = append(dst, '-')
	}
	start := len(dst)
	nd := len(digits)

	if exp < 0 {
		dst = append(dst, '0', '.')
		for i := 0; i < -exp-1; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, digits...)
		return trimFixedTail(dst, start)
	}

	point := exp + 1
	if point >= nd {
		dst = append(dst, digits...)
		for i := 0; i < point-nd; i++ {
			dst = append(dst, '0')
		}
		return dst
	}
	dst = append(dst, digits[:point]...)
	dst = append(dst, '.')
	dst = append(dst, digits[point:]...)
	return trimFixedTail(dst, start)
}

// trimFixedTail removes a trailing run of zero digits after the decimal
// point within dst[start:], and the point itself if nothing is left
// after it.
func trimFixedTail(dst []byte, start int) []byte {
	dot := bytes.IndexByte(dst[start:], '.')
	if dot < 0 {
		return dst
	}
	end := len(dst)
	for end > start && dst[end-1] == '0' {
		end--
	}
	if end > start && dst[end-1] == '.' {
		end--
	}
	return dst[:end]
}

// parseBoundedExp parses the canonical exponent, which is always in
// [-324, 308] (spec.md's design notes call for a bounded parse here
// rather than a general atoi, since overflow can never legitimately
// occur).
func parseBoundedExp(b []byte) int {
	neg := false
	if len(b) > 0 && b[0] == '-' {
		neg = true
		b = b[1:]
	}
	n := 0
	for _, c := range b {
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n
}
