/*
Command dirgen generates the direction tables of package bidi.

Tables are derived either from UnicodeData.txt (see internal/testdata/download.go)
or from the Bidi_Class property of golang.org/x/text/unicode/bidi:

    dirgen -from ucd -f UnicodeData.txt -o _dirtables.go
    dirgen -from xtext -o _dirtables.go

Bidi classes R and AL are collected as right-to-left, B, S, WS and ON as
neutral, and EN, ES, ET, AN, CS, NSM and BN as weak. Only the Basic
Multilingual Plane is covered, as package bidi works on UTF-16 code units.
Mirror pairs are not generated.

The tables of package bidi are curated and differ from Bidi_Class for a number
of code points. dirgen reports these differences; generated tables replace
the curated ones only deliberately.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/ushape/bidi"
	"github.com/npillmayer/ushape/internal/testdata"
	"github.com/npillmayer/ushape/internal/ucdparse"
	xbidi "golang.org/x/text/unicode/bidi"
)

func main() {
	tlevel := flag.String("trace", "I", "Trace level [D|I|E]")
	from := flag.String("from", "ucd", "Source of bidi classes [ucd|xtext]")
	ucdFile := flag.String("f", testdata.UCDPath("UnicodeData.txt"), "UnicodeData.txt file")
	outf := flag.String("o", "_dirtables.go", "Output file name")
	pkg := flag.String("pkg", "bidi", "Package name to use in output file")
	flag.Parse()
	logAdapter := gologadapter.GetAdapter()
	trace := logAdapter()
	trace.SetTraceLevel(traceLevel(*tlevel))
	tracing.SetTraceSelector(mytrace{tracer: trace})
	tracing.Infof("Generating direction tables from %s", *from)
	tables := newDirTables()
	var err error
	switch *from {
	case "ucd":
		err = tables.readUCD(*ucdFile)
	case "xtext":
		tables.readXText()
	default:
		err = fmt.Errorf("unknown source %q", *from)
	}
	if err != nil {
		tracing.Errorf(err.Error())
		os.Exit(1)
	}
	if n := tables.compare(); n > 0 {
		tracing.Errorf("Generated tables differ from package bidi for %d code points", n)
	}
	src, err := tables.generate(*pkg, *from)
	if err != nil {
		tracing.Errorf(err.Error())
		os.Exit(2)
	}
	if err = os.WriteFile(*outf, src, 0644); err != nil {
		tracing.Errorf(err.Error())
		os.Exit(3)
	}
	tracing.Infof("Wrote %s", *outf)
}

type dirTables struct {
	rtl, neutral, weak *ucdparse.RangeTableCollector
}

func newDirTables() *dirTables {
	return &dirTables{
		rtl:     ucdparse.NewRangeTableCollector("rtlTable"),
		neutral: ucdparse.NewRangeTableCollector("neutralTable"),
		weak:    ucdparse.NewRangeTableCollector("weakTable"),
	}
}

// collectorFor returns the table for a bidi class name, or nil for LTR.
func (dt *dirTables) collectorFor(class string) *ucdparse.RangeTableCollector {
	switch class {
	case "R", "AL":
		return dt.rtl
	case "B", "S", "WS", "ON":
		return dt.neutral
	case "EN", "ES", "ET", "AN", "CS", "NSM", "BN":
		return dt.weak
	}
	return nil
}

func (dt *dirTables) readUCD(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	tracing.Infof("Found file %s ...", filename)
	return ucdparse.Parse(f, func(t *ucdparse.Token) {
		from, to := t.Range()
		if from > 0xFFFF {
			return
		}
		if to > 0xFFFF {
			to = 0xFFFF
		}
		if c := dt.collectorFor(t.Field(4)); c != nil {
			c.Append(from, to)
		}
	})
}

var xtextClasses = map[xbidi.Class]string{
	xbidi.R: "R", xbidi.AL: "AL",
	xbidi.B: "B", xbidi.S: "S", xbidi.WS: "WS", xbidi.ON: "ON",
	xbidi.EN: "EN", xbidi.ES: "ES", xbidi.ET: "ET", xbidi.AN: "AN",
	xbidi.CS: "CS", xbidi.NSM: "NSM", xbidi.BN: "BN",
}

func (dt *dirTables) readXText() {
	for r := rune(0); r <= 0xFFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF { // surrogates
			continue
		}
		props, sz := xbidi.LookupRune(r)
		if sz == 0 {
			continue
		}
		if c := dt.collectorFor(xtextClasses[props.Class()]); c != nil {
			c.Append(r, r)
		}
	}
}

// compare counts the code points which the collected tables put into another
// direction class than package bidi does.
func (dt *dirTables) compare() int {
	rtl, neutral, weak := dt.rtl.Table(), dt.neutral.Table(), dt.weak.Table()
	n := 0
	for r := rune(0); r <= 0xFFFF; r++ {
		d := bidi.LTR
		switch {
		case unicode.Is(rtl, r):
			d = bidi.RTL
		case unicode.Is(neutral, r):
			d = bidi.Neutral
		case unicode.Is(weak, r):
			d = bidi.Weak
		}
		if cur := bidi.DirectionOf(uint16(r)); cur != d {
			tracing.Debugf("%04X is %s in package bidi, generated as %s", r, cur, d)
			n++
		}
	}
	return n
}

func (dt *dirTables) generate(pkg, from string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by dirgen -from %s. DO NOT EDIT.\n\n", from)
	fmt.Fprintf(&buf, "package %s\n\nimport \"unicode\"\n\n", pkg)
	for _, c := range []*ucdparse.RangeTableCollector{dt.rtl, dt.neutral, dt.weak} {
		tracing.Infof("Table %s has %d ranges", c.Name, c.Len())
		c.Output(&buf)
	}
	return format.Source(buf.Bytes())
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "E":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

type mytrace struct {
	tracer tracing.Trace
}

func (t mytrace) Select(string) tracing.Trace {
	return t.tracer
}
