package ucdparse

import (
	"bytes"
	"fmt"
	"unicode"
)

// RangeTableCollector is a type to collect character ranges during iteration of
// UCD files, and later output them to Go source code. Ranges have to be
// appended in ascending order.
type RangeTableCollector struct {
	Name   string // variable name of the table
	ranges [][2]rune
}

// NewRangeTableCollector creates a collector for a table with variable name.
func NewRangeTableCollector(name string) *RangeTableCollector {
	return &RangeTableCollector{Name: name}
}

// Append a range of runes to a range table collector. A single
// character is denoted by l == r. Adjacent ranges are merged.
func (rt *RangeTableCollector) Append(l, r rune) {
	if n := len(rt.ranges); n > 0 && l <= rt.ranges[n-1][1]+1 {
		if r > rt.ranges[n-1][1] {
			rt.ranges[n-1][1] = r // range extends previous range
		}
		return
	}
	rt.ranges = append(rt.ranges, [2]rune{l, r})
}

// Len returns the number of ranges collected so far.
func (rt *RangeTableCollector) Len() int {
	return len(rt.ranges)
}

// Table creates a unicode.RangeTable from the collected ranges.
func (rt *RangeTableCollector) Table() *unicode.RangeTable {
	table := &unicode.RangeTable{}
	for _, r := range rt.ranges {
		if r[1] <= 0xFFFF {
			table.R16 = append(table.R16, unicode.Range16{Lo: uint16(r[0]), Hi: uint16(r[1]), Stride: 1})
			if r[1] <= unicode.MaxLatin1 {
				table.LatinOffset++
			}
		} else {
			table.R32 = append(table.R32, unicode.Range32{Lo: uint32(r[0]), Hi: uint32(r[1]), Stride: 1})
		}
	}
	return table
}

// Output creates Go source code for a range table.
func (rt *RangeTableCollector) Output(buf *bytes.Buffer) {
	table := rt.Table()
	fmt.Fprintf(buf, "var %s = &unicode.RangeTable{ // %d entries\n", rt.Name, len(rt.ranges))
	if len(table.R16) > 0 {
		fmt.Fprintf(buf, "\tR16: []unicode.Range16{\n")
		for _, r := range table.R16 {
			fmt.Fprintf(buf, "\t\t{%#04x, %#04x, 1},\n", r.Lo, r.Hi)
		}
		fmt.Fprintf(buf, "\t},\n")
	}
	if len(table.R32) > 0 {
		fmt.Fprintf(buf, "\tR32: []unicode.Range32{\n")
		for _, r := range table.R32 {
			fmt.Fprintf(buf, "\t\t{%#04x, %#04x, 1},\n", r.Lo, r.Hi)
		}
		fmt.Fprintf(buf, "\t},\n")
	}
	if table.LatinOffset > 0 {
		fmt.Fprintf(buf, "\tLatinOffset: %d,\n", table.LatinOffset)
	}
	fmt.Fprintf(buf, "}\n\n")
}
