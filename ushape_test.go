package ushape

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/ushape/internal/testdata"
	"github.com/npillmayer/ushape/internal/ucdparse"
)

func equal(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestShapeVectors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	vf := ucdparse.OpenVectorFile(testdata.VectorPath("shape.txt"), t)
	if vf == nil {
		t.Fatal("cannot open test vectors")
	}
	defer vf.Close()
	count := 0
	for vf.Scan() {
		input, opts, expected, err := vf.Vector()
		if err != nil {
			t.Fatal(err)
		}
		out := ShapeUnicode(input, Options(opts))
		if !equal(out, expected) {
			t.Errorf("line %d (%s): expected %04X, have %04X", vf.LineNo(), vf.Comment(), expected, out)
		}
		count++
	}
	if err := vf.Err(); err != nil {
		t.Fatal(err)
	}
	t.Logf("%d test vectors checked", count)
	if count < 20 {
		t.Errorf("expected at least 20 test vectors, found %d", count)
	}
}

func TestSourceUnchanged(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	source := []uint16{0x1019, 0x103C, 0x0633, 0x0644, 0x0627, 0x0645}
	saved := append([]uint16(nil), source...)
	ShapeUnicode(source, DefaultOptions)
	if !equal(source, saved) {
		t.Errorf("expected source to be left unchanged, is %04X", source)
	}
}

func TestShapeString(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tests := []struct {
		input, expected string
		opts            Options
	}{
		{"مطروح\nMatrouh Governorate", "\uFEA1\uFEED\uFEAE\uFEC4\uFEE3\nMatrouh Governorate", DefaultOptions},
		{"ישראל", "לארשי", DefaultOptions},
		{"normal latin text", "normal latin text", DefaultOptions},
		{"Hello, 你好", "Hello, 你好", DefaultOptions},
		{"", "", DefaultOptions},
		{"سلام", "\uFEB3\uFEFC\uFEE1", DefaultOptionsWithoutBidi},
	}
	for _, test := range tests {
		if out := ShapeString(test.input, test.opts); out != test.expected {
			t.Errorf("expected %q, have %q", test.expected, out)
		}
	}
}

func TestValidate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	valid := []Options{
		DefaultOptions,
		DefaultOptionsWithoutBidi,
		LettersShapeTashkeelIsolated | AggregateTashkeel | DirectionOutputBidi,
		LettersShape | TashkeelReplaceByTatweel | TextDirectionVisualLTR,
		LettersUnshape | LamAlefAuto,
	}
	for _, opts := range valid {
		if err := Validate(opts); err != nil {
			t.Errorf("expected options %s to be valid, have %v", opts, err)
		}
	}
	invalid := []Options{
		DefaultOptions | LamAlefNear,
		DefaultOptions | LamAlefBegin,
		DefaultOptions | DigitsEN2AN,
		DefaultOptions | DigitTypeANExtended,
		DefaultOptions | SeenTwocellNear,
		DefaultOptions | YehHamzaTwocellNear,
		DefaultOptions | SpacesRelativeToTextBeginEnd,
		DefaultOptions | TailNewUnicode,
	}
	for _, opts := range invalid {
		if err := Validate(opts); !errors.Is(err, ErrUnsupportedOption) {
			t.Errorf("expected options %s to be reported as unsupported, have %v", opts, err)
		}
	}
}

func TestUnimplementedOptionsFallBack(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	input := []uint16{0x0633, 0x0644, 0x0627, 0x0645}
	expected := ShapeUnicode(input, DefaultOptionsWithoutBidi)
	for _, opts := range []Options{LamAlefNear, LamAlefEnd, DigitsEN2AN, SeenTwocellNear} {
		if out := ShapeUnicode(input, DefaultOptionsWithoutBidi|opts); !equal(out, expected) {
			t.Errorf("expected option %#x to behave like resize, have %04X", uint32(opts), out)
		}
	}
}

func TestClassification(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if !IsRTL(0x05C3) || IsRTL(0x01) {
		t.Errorf("IsRTL misclassifies 05C3 or 0001")
	}
	if !IsCJK(0x4E00) || IsCJK(0x01) {
		t.Errorf("IsCJK misclassifies 4E00 or 0001")
	}
	for _, u := range []uint16{0x3000, 0x303F, 0x31C0, 0xFF01, 0xFE10, 0x33FF} {
		if !IsCJK(u) {
			t.Errorf("expected %04X to be CJK", u)
		}
	}
	for _, u := range []uint16{'a', 0x0633, 0x2FE0, 0xFFF0} {
		if IsCJK(u) {
			t.Errorf("expected %04X not to be CJK", u)
		}
	}
}

func TestContext(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if opts := ContextForLocale("he-IL").Options(); opts != LettersNoop|DirectionOutputBidi {
		t.Errorf("expected Hebrew preset to be bidi only, is %s", opts)
	}
	if opts := ArabicContext.Options(); opts != DefaultOptions {
		t.Errorf("expected Arabic preset to be default options, is %s", opts)
	}
	if LatinContext.Script.String() != "Latn" {
		t.Errorf("expected Latin context to have script Latn, has %s", LatinContext.Script)
	}
	var ctx *Context
	if ctx.Options() != DefaultOptions {
		t.Errorf("expected nil context to yield default options")
	}
	env := ContextFromEnvironment()
	if env == nil || env.Locale == "" {
		t.Errorf("expected a context with a locale from the environment")
	}
}
