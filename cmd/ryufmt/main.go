// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ryufmt formats floating-point values using the shortest round-tripping
// decimal, via the ryu package.
//
// Usage:
//
//	ryufmt [-f fmt] [-w width] [value...]
//
// Each value is parsed as a float64 and printed in the requested format.
// With no values on the command line, ryufmt reads one float per line
// from standard input.
//
// The -f flag selects the presentation: 'e' or 'E' for scientific
// notation, 'f' for plain decimal (the default).
//
// The -w flag demonstrates the fixed-buffer, truncating form of the
// formatter (spec.md §7): it writes into a buffer of the given size and
// reports both the truncated text and the full length that would have
// been written.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/tidwall/ryu/ryu"
)

var (
	format = flag.String("f", "f", "output format: f, e, or E")
	width  = flag.Int("w", 0, "demonstrate WriteDouble with a fixed buffer of this many bytes (0 disables)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: ryufmt [-f fmt] [-w width] [value...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ryufmt: ")
	flag.Usage = usage
	flag.Parse()

	if len(*format) != 1 || ((*format)[0] != 'f' && (*format)[0] != 'e' && (*format)[0] != 'E') {
		log.Fatalf("invalid -f %q: must be f, e, or E", *format)
	}
	fb := (*format)[0]

	args := flag.Args()
	if len(args) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			printValue(scanner.Text(), fb)
		}
		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, arg := range args {
		printValue(arg, fb)
	}
}

func printValue(arg string, format byte) {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		log.Printf("%s: %v", arg, err)
		return
	}
	if *width > 0 {
		buf := make([]byte, *width)
		n := ryu.WriteDouble(buf, f, format, *width)
		trunc := n >= *width
		fmt.Printf("%s (len=%d, truncated=%v)\n", buf[:min(n, *width-1)], n, trunc)
		return
	}
	fmt.Println(string(ryu.AppendDouble(nil, f, format)))
}
