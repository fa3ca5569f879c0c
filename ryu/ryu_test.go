// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ryu

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Concrete scenarios from spec.md §8.
var formatScenarios = []struct {
	format byte
	input  float64
	want   string
}{
	{'f', 212123123.123188832, "212123123.12318882"},
	{'e', 212123123.123188832, "2.1212312312318882e8"},
	{'E', 212123123.123188832, "2.1212312312318882E8"},
	{'f', 9223372036854775808.0, "9223372036854776000"},
	{'f', 0.000123123001, "0.000123123001"},
	{'f', 1.0, "1"},
	{'f', math.Copysign(0, -1), "-0"},
	{'f', -0.015, "-0.015"},
	{'f', 5000.0, "5000"},
}

func TestFormatScenarios(t *testing.T) {
	for _, tt := range formatScenarios {
		got := string(AppendDouble(nil, tt.input, tt.format))
		if got != tt.want {
			t.Errorf("AppendDouble(%v, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}

func TestUnsupportedFormat(t *testing.T) {
	for _, format := range []byte{'g', 'G', 0, 'd'} {
		if got := AppendDouble([]byte("x"), 1.5, format); string(got) != "x" {
			t.Errorf("AppendDouble with format %q appended something: %q", format, got)
		}
	}
}

func TestSpecialValues(t *testing.T) {
	cases := []struct {
		f    float64
		want string
	}{
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
		{math.Copysign(math.NaN(), -1), "NaN"},
		{0, "0E0"},
		{math.Copysign(0, -1), "-0E0"},
	}
	for _, tt := range cases {
		got := string(AppendDouble(nil, tt.f, 'E'))
		if got != tt.want {
			t.Errorf("AppendDouble(%v, 'E') = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestSign(t *testing.T) {
	for _, f := range []float64{1, -1, 0, math.Copysign(0, -1), math.Inf(1), math.Inf(-1)} {
		got := string(AppendDouble(nil, f, 'E'))
		want := math.Signbit(f)
		if got[0] == '-' != want {
			t.Errorf("AppendDouble(%v): sign mismatch in %q", f, got)
		}
	}
}

// TestRoundTrip checks that formatting a value with 'e' and reparsing it
// with the standard library yields exactly the original bit pattern, for
// boundary values and a large population of random bit patterns
// (spec.md §8, "Round-trip (universal)").
func TestRoundTrip(t *testing.T) {
	check := func(f float64) {
		t.Helper()
		s := string(AppendDouble(nil, f, 'e'))
		got, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q) from %v (%#x): %v", s, f, math.Float64bits(f), err)
		}
		if math.Float64bits(got) != math.Float64bits(f) {
			t.Fatalf("round-trip failed: %v -> %q -> %v (bits %#x != %#x)", f, s, got, math.Float64bits(got), math.Float64bits(f))
		}
	}

	boundary := []float64{
		0,
		math.Copysign(0, -1),
		math.SmallestNonzeroFloat64,
		-math.SmallestNonzeroFloat64,
		math.MaxFloat64,
		-math.MaxFloat64,
		1e-323,
		1e308,
	}
	for k := 0; k <= 53; k++ {
		boundary = append(boundary, math.Ldexp(1, k))
	}
	for _, f := range boundary {
		check(f)
	}

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1_000_000; i++ {
		bits := rnd.Uint64()
		f := math.Float64frombits(bits)
		if math.IsNaN(f) {
			continue
		}
		check(f)
	}
}

// TestShortest checks that no decimal with fewer significant digits also
// round-trips, for a sample of values (spec.md §8, "Shortest"). It uses
// the standard library's fixed-precision formatter and parser, at one
// digit short of what Shortest produced, as an independent oracle: if
// that shorter rendering still parses back to f, Shortest failed to find
// the minimal representation.
func TestShortest(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 20_000; i++ {
		f := math.Float64frombits(rnd.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
			continue
		}
		mantissa, _ := Shortest(f)
		nd := decimalLength17(mantissa)
		if nd <= 1 {
			continue
		}
		shorter := strconv.FormatFloat(f, 'e', nd-2, 64) // nd-1 significant digits
		got, err := strconv.ParseFloat(shorter, 64)
		if err == nil && got == f {
			t.Errorf("Shortest(%v) used %d digits, but %q (%d digits) already round-trips", f, nd, shorter, nd-1)
		}
	}
}

func TestTruncationLaw(t *testing.T) {
	f := -112.89123883
	want := "-112.89123883"
	if got := string(AppendDouble(nil, f, 'f')); got != want {
		t.Fatalf("AppendDouble = %q, want %q", got, want)
	}

	cases := []struct {
		nbytes int
		text   string
	}{
		{0, ""},
		{1, ""},
		{2, "-"},
		{6, "-112."},
		{5, "-112"},
		{14, "-112.89123883"},
	}
	for _, tt := range cases {
		buf := make([]byte, max(tt.nbytes, 1))
		n := WriteDouble(buf, f, 'f', tt.nbytes)
		if n != len(want) {
			t.Errorf("WriteDouble(nbytes=%d) returned %d, want %d", tt.nbytes, n, len(want))
		}
		if tt.nbytes == 0 {
			continue
		}
		limit := min(n, tt.nbytes-1)
		if got := string(buf[:limit]); got != tt.text {
			t.Errorf("WriteDouble(nbytes=%d) wrote %q, want %q", tt.nbytes, got, tt.text)
		}
		if buf[limit] != 0 {
			t.Errorf("WriteDouble(nbytes=%d) did not null-terminate at %d", tt.nbytes, limit)
		}
	}
}

func TestSizingLaw(t *testing.T) {
	for _, f := range []float64{1.5, -112.89123883, math.Pi, 0, math.Inf(1)} {
		for _, format := range []byte{'f', 'e', 'E'} {
			sized := WriteDouble(nil, f, format, 0)
			buf := make([]byte, 4096)
			full := WriteDouble(buf, f, format, len(buf))
			if sized != full {
				t.Errorf("WriteDouble(%v, %q): sizing call returned %d, full call returned %d", f, format, sized, full)
			}
		}
	}
}

func TestSmallIntegers(t *testing.T) {
	for k := 0; k <= 53; k++ {
		f := math.Ldexp(1, k)
		mantissa, exponent := Shortest(f)
		got := string(AppendDouble(nil, f, 'f'))
		want := strconv.FormatFloat(f, 'f', -1, 64)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("2^%d: AppendDouble mismatch (-want +got):\n%s", k, diff)
		}
		if mantissa%10 == 0 {
			t.Errorf("2^%d: trailing zero not stripped: mantissa=%d exponent=%d", k, mantissa, exponent)
		}
	}
}

// TestAgainstStdlib cross-checks a large random sample against the
// standard library's own shortest-round-trip formatter, which is also
// Ryū-based (see other_examples' stdlib-derived port in the retrieval
// pack) but independently implemented.
func TestAgainstStdlib(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 200_000; i++ {
		bits := rnd.Uint64()
		f := math.Float64frombits(bits)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		mantissa, exponent := Shortest(f)
		if f == 0 {
			continue
		}
		want := strconv.FormatFloat(math.Abs(f), 'e', -1, 64)
		wantMantissa, wantExp := parseStdlibSci(t, want)
		if mantissa != wantMantissa || exponent+int32(decimalLength17(mantissa))-1 != wantExp {
			t.Fatalf("Shortest(%#x) = %d e%d, stdlib says %d e%d", bits, mantissa, exponent, wantMantissa, wantExp)
		}
	}
}

// parseStdlibSci parses the output of strconv.FormatFloat(f, 'e', -1, 64)
// into a (mantissa, exponent) pair directly comparable with Shortest's
// canonical-exponent convention.
func parseStdlibSci(t *testing.T, s string) (mantissa uint64, exp int32) {
	t.Helper()
	mantissaStr, expStr, ok := cutByte(s, 'e')
	if !ok {
		t.Fatalf("malformed stdlib output: %q", s)
	}
	var digits []byte
	for i := 0; i < len(mantissaStr); i++ {
		if mantissaStr[i] != '.' {
			digits = append(digits, mantissaStr[i])
		}
	}
	m, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		t.Fatalf("malformed stdlib mantissa: %q", mantissaStr)
	}
	e, err := strconv.ParseInt(expStr, 10, 32)
	if err != nil {
		t.Fatalf("malformed stdlib exponent: %q", expStr)
	}
	return m, int32(e)
}

func cutByte(s string, b byte) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
