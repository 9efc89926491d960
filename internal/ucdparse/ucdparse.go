/*
Package ucdparse provides a parser for Unicode Character Database files.

The format of UCD files is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files. Every data
line holds semicolon-separated fields, the first of which is a code point or
a range of code points. Comments start with '#'.

UnicodeData.txt denotes large ranges by pairs of lines with names
"<…, First>" and "<…, Last>". Parse combines them into a single range token.

The package also reads the test-vector files of this module, which share the
UCD line format (see VectorFile).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrSyntax is returned for malformed lines of a data file.
var ErrSyntax = errors.New("ucdparse: syntax error")

// Token holds the content of a single data line.
type Token struct {
	LineNo   int      // line number within the input source, starting at 1
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // fields of the line, whitespace trimmed; Fields[0] is the code point range
	Comment  string   // rest-of-line comment
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d %#U..%#U %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Field gets field #i (1…n) from the data item. Field #0 is the code point
// range.
func (token *Token) Field(i int) string {
	if i >= 0 && i < len(token.Fields) {
		return token.Fields[i]
	}
	return ""
}

// Range gets the character range from the data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// Parse iterates over each data line of r and calls callback f on it.
// Empty lines and comment lines are skipped.
func Parse(r io.Reader, f func(token *Token)) error {
	if r == nil {
		return fmt.Errorf("%w: no input present", ErrSyntax)
	}
	sc := bufio.NewScanner(r)
	var first *Token // pending "<…, First>" line
	lineno := 0
	for sc.Scan() {
		lineno++
		token, err := parseLine(sc.Text(), lineno)
		if err != nil {
			return err
		}
		if token == nil {
			continue
		}
		name := token.Field(1)
		switch {
		case strings.HasSuffix(name, ", First>"):
			first = token
			continue
		case strings.HasSuffix(name, ", Last>") && first != nil:
			first.runeTo = token.runeFrom
			token, first = first, nil
		}
		f(token)
	}
	return sc.Err()
}

// parseLine splits a line into fields. It returns nil for lines without data.
func parseLine(line string, lineno int) (*Token, error) {
	token := &Token{LineNo: lineno}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		token.Comment = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}
	for _, field := range strings.Split(line, ";") {
		token.Fields = append(token.Fields, strings.TrimSpace(field))
	}
	var err error
	token.runeFrom, token.runeTo, err = ParseRange(token.Fields[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lineno, err)
	}
	return token, nil
}

// ParseRange parses a code point ("0041") or a range of code points
// ("0041..005A").
func ParseRange(s string) (from, to rune, err error) {
	lo, hi := s, s
	if i := strings.Index(s, ".."); i >= 0 {
		lo, hi = s[:i], s[i+2:]
	}
	if from, err = parseHexRune(lo); err != nil {
		return
	}
	if to, err = parseHexRune(hi); err != nil {
		return
	}
	if to < from {
		err = fmt.Errorf("%w: empty range %q", ErrSyntax, s)
	}
	return
}

func parseHexRune(s string) (rune, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: hex decoding of %q: %v", ErrSyntax, s, err)
	}
	return rune(n), nil
}
