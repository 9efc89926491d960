package bidi

import (
	"errors"
	"fmt"

	"github.com/npillmayer/gorgo/lr/scanner"
)

// ErrUnexpectedRun is reported to a scanner's error handler when a run does
// not match the tokens a client expects.
var ErrUnexpectedRun = errors.New("bidi: unexpected direction run")

// RunScanner splits a line of text into runs of code units with identical
// direction. It implements the gorgo scanner.Tokenizer interface.
//
// A line starting with a weak or neutral code unit is reported as if it
// started with the line's dominant direction. This yields an empty leading
// run if the first code unit is not strong.
type RunScanner struct {
	line         []uint16
	dominant     Direction
	current      Direction // direction of the run in progress
	start        int       // start of the run in progress
	pos          int       // position of next code unit to read
	done         bool      // at EOF?
	errorHandler func(error)
}

// NewRunScanner creates a scanner for one line of text.
func NewRunScanner(line []uint16) *RunScanner {
	sc := &RunScanner{
		line:     line,
		dominant: DominantDirection(line),
	}
	if len(line) > 0 {
		sc.current = DirectionOf(line[0])
		if !sc.current.IsStrong() {
			sc.current = sc.dominant
		}
	}
	return sc
}

// Dominant returns the dominant direction of the scanner's line.
func (sc *RunScanner) Dominant() Direction {
	return sc.dominant
}

// NextToken reads the next run of code units with identical direction. The
// token is the run's Direction, the token value is the run itself, followed by
// its position and length. At the end of the line NextToken returns scanner.EOF.
//
// If expected is not empty and does not contain the run's direction, the
// error handler is called. The run is returned nevertheless.
func (sc *RunScanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if sc.done {
		return scanner.EOF, nil, uint64(len(sc.line)), 0
	}
	for sc.pos < len(sc.line) {
		d := DirectionOf(sc.line[sc.pos])
		if d != sc.current {
			run, start, dir := sc.line[sc.start:sc.pos], sc.start, sc.current
			sc.start, sc.current = sc.pos, d
			sc.pos++
			return sc.emit(dir, run, start, expected)
		}
		sc.pos++
	}
	sc.done = true
	if sc.start < len(sc.line) {
		return sc.emit(sc.current, sc.line[sc.start:], sc.start, expected)
	}
	return scanner.EOF, nil, uint64(len(sc.line)), 0
}

func (sc *RunScanner) emit(dir Direction, run []uint16, start int, expected []int) (int, interface{}, uint64, uint64) {
	T().Debugf("bidi scanner: run %s at %d, length %d", dir, start, len(run))
	if len(expected) > 0 && sc.errorHandler != nil && !contains(expected, int(dir)) {
		sc.errorHandler(fmt.Errorf("%w: %s at position %d", ErrUnexpectedRun, dir, start))
	}
	return int(dir), run, uint64(start), uint64(len(run))
}

// SetErrorHandler sets an error handler function, which receives an error
// whenever a run's direction has not been expected.
func (sc *RunScanner) SetErrorHandler(h func(error)) {
	sc.errorHandler = h
}

func contains(tokens []int, t int) bool {
	for _, x := range tokens {
		if x == t {
			return true
		}
	}
	return false
}
