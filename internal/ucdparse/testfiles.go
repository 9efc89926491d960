package ucdparse

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
)

// VectorFile reads test vectors from a file. Every non-comment line holds
// three fields separated by ';': input code units, an options value and
// expected code units. Code units are written as space-separated hex numbers.
//
//     0633 0644 0627 0645 ; 0x100008 ; FEB3 FEFC FEE1   # comment
//
type VectorFile struct {
	in      *os.File
	scanner *bufio.Scanner
	lineno  int
	text    string
	comment string
}

// OpenVectorFile opens a test vector file. Errors are reported to t, which may
// be nil.
func OpenVectorFile(filename string, t *testing.T) *VectorFile {
	f, err := os.Open(filename)
	if err != nil {
		if t != nil {
			t.Errorf("ERROR loading %s: %v", filename, err)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR loading %s: %v\n", filename, err)
		}
		return nil
	}
	vf := &VectorFile{}
	vf.in = f
	vf.scanner = bufio.NewScanner(f)
	return vf
}

// Scan advances to the next data line, skipping comment lines and empty lines.
func (vf *VectorFile) Scan() bool {
	for vf.scanner.Scan() {
		vf.lineno++
		text := strings.TrimSpace(vf.scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		vf.text, vf.comment = text, ""
		if i := strings.IndexByte(text, '#'); i >= 0 {
			vf.text, vf.comment = strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:])
		}
		return true
	}
	return false
}

// Text returns the data part of the current line.
func (vf *VectorFile) Text() string {
	return vf.text
}

// Comment returns the comment of the current line.
func (vf *VectorFile) Comment() string {
	return vf.comment
}

// LineNo returns the line number of the current line.
func (vf *VectorFile) LineNo() int {
	return vf.lineno
}

// Err returns the first error encountered.
func (vf *VectorFile) Err() error {
	return vf.scanner.Err()
}

// Close closes the underlying file.
func (vf *VectorFile) Close() {
	vf.in.Close()
}

// Vector returns the fields of the current line.
func (vf *VectorFile) Vector() (input []uint16, opts uint32, expected []uint16, err error) {
	parts := strings.Split(vf.text, ";")
	if len(parts) != 3 {
		err = fmt.Errorf("%w: line %d: expected 3 fields, have %d", ErrSyntax, vf.lineno, len(parts))
		return
	}
	if input, err = ParseUnits(parts[0]); err != nil {
		return
	}
	o, e := strconv.ParseUint(strings.TrimSpace(parts[1]), 0, 32)
	if e != nil {
		err = fmt.Errorf("%w: line %d: options: %v", ErrSyntax, vf.lineno, e)
		return
	}
	opts = uint32(o)
	expected, err = ParseUnits(parts[2])
	return
}

// ParseUnits reads a sequence of space-separated hex numbers as UTF-16 code
// units.
func ParseUnits(s string) ([]uint16, error) {
	fields := strings.Fields(s)
	units := make([]uint16, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: code unit %q: %v", ErrSyntax, f, err)
		}
		units = append(units, uint16(n))
	}
	return units, nil
}
