package bidi

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/gorgo/lr/scanner"
)

const (
	lf = 0x000A
	cr = 0x000D
)

// span is a half-open interval of code unit positions.
type span struct {
	start, end int
}

// chunk is a sequence of runs of a line, with their resolved direction.
// Merging chunks concatenates their spans, which need not be adjacent in the
// line.
type chunk struct {
	spans []span
	dir   Direction
}

func (c chunk) String() string {
	var b strings.Builder
	b.WriteString(c.dir.String())
	for _, s := range c.spans {
		fmt.Fprintf(&b, "[%d:%d]", s.start, s.end)
	}
	return b.String()
}

// Reorder converts text from logical to visual order. Lines are reordered
// independently and joined by LF; empty lines and the original line
// separators are dropped.
func Reorder(input []uint16) []uint16 {
	return ReorderLines(input, false)
}

// ReorderLines converts text from logical to visual order. With keepBreaks
// set, the line separators of input (including empty lines and separators at
// the start or end of input) are copied to the output, which then has the
// length of input. Otherwise lines are joined by a single LF.
func ReorderLines(input []uint16, keepBreaks bool) []uint16 {
	out := make([]uint16, 0, len(input))
	lines := splitLines(input)
	T().Debugf("bidi: reordering %d code units in %d lines", len(input), len(lines))
	prev := 0
	for i, l := range lines {
		if keepBreaks {
			out = append(out, input[prev:l.start]...)
		} else if i > 0 {
			out = append(out, lf)
		}
		out = reorderLine(input[l.start:l.end], out)
		prev = l.end
	}
	if keepBreaks {
		out = append(out, input[prev:]...)
	}
	return out
}

// splitLines returns the non-empty lines of input, separated by LF or CR.
func splitLines(input []uint16) []span {
	var lines []span
	start, end := 0, 0
	for i, u := range input {
		if u == lf || u == cr {
			if start == end {
				start = i + 1
			} else {
				lines = append(lines, span{start, i})
				start = i + 1
			}
		}
		end = i + 1
	}
	if start < len(input) {
		lines = append(lines, span{start, len(input)})
	}
	return lines
}

// reorderLine appends the visual order of a single line to out.
func reorderLine(line []uint16, out []uint16) []uint16 {
	sc := NewRunScanner(line)
	dominant := sc.Dominant()
	chunks := arraylist.New()
	for {
		tok, _, pos, length := sc.NextToken(nil)
		if tok == scanner.EOF {
			break
		}
		chunks.Add(chunk{[]span{{int(pos), int(pos + length)}}, Direction(tok)})
	}
	resolveChunks(chunks, dominant)
	mergeChunks(chunks)
	if dominant == RTL {
		reverseChunks(chunks)
	}
	T().Debugf("bidi: line of dominant direction %s has chunks %v", dominant, chunks.Values())
	it := chunks.Iterator()
	for it.Next() {
		c := it.Value().(chunk)
		if c.dir != RTL {
			for _, s := range c.spans {
				out = append(out, line[s.start:s.end]...)
			}
			continue
		}
		for j := len(c.spans) - 1; j >= 0; j-- {
			for i := c.spans[j].end - 1; i >= c.spans[j].start; i-- {
				m, _ := Mirror(line[i])
				out = append(out, m)
			}
		}
	}
	return out
}

func chunkAt(chunks *arraylist.List, i int) chunk {
	v, _ := chunks.Get(i)
	return v.(chunk)
}

// resolveChunks assigns a strong direction to neutral chunks and moves weak
// chunks in front of a preceding RTL chunk if the line is LTR. A neutral chunk
// at the end of a line keeps its direction.
func resolveChunks(chunks *arraylist.List, dominant Direction) {
	n := chunks.Size()
	for i := 0; i < n; i++ {
		c := chunkAt(chunks, i)
		switch c.dir {
		case Neutral:
			switch {
			case i == 0:
				if n > 1 {
					c.dir = chunkAt(chunks, 1).dir
				}
			case i == n-1:
				continue
			case chunkAt(chunks, i-1).dir == chunkAt(chunks, i+1).dir:
				c.dir = chunkAt(chunks, i-1).dir
			default:
				c.dir = dominant
			}
			chunks.Set(i, c)
		case Weak:
			if i > 0 && dominant != RTL && chunkAt(chunks, i-1).dir == RTL {
				chunks.Swap(i, i-1)
			}
		}
	}
}

// mergeChunks merges neighbouring chunks of equal direction. After weak
// chunks have been swapped, the spans of a merged chunk may be apart in the
// line; they are kept in order.
func mergeChunks(chunks *arraylist.List) {
	for i := 0; i < chunks.Size()-1; {
		a, b := chunkAt(chunks, i), chunkAt(chunks, i+1)
		if a.dir == b.dir {
			a.spans = append(a.spans[:len(a.spans):len(a.spans)], b.spans...)
			chunks.Set(i, a)
			chunks.Remove(i + 1)
			continue
		}
		i++
	}
}

func reverseChunks(chunks *arraylist.List) {
	for i, j := 0, chunks.Size()-1; i < j; i, j = i+1, j-1 {
		chunks.Swap(i, j)
	}
}
