package arabic

import (
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func u16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

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

var shapeCfg = Config{Letters: ShapeLetters}

func TestLinks(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if Link(0x0644)&LamType == 0 {
		t.Errorf("expected Lam to have link type LAM")
	}
	if Link(0x0627)&AlefType == 0 {
		t.Errorf("expected Alef to have link type ALEF")
	}
	if Link(0x0651)&Combine != Shadda {
		t.Errorf("expected Shadda to be of combine class SHADDA, is %#x", Link(0x0651))
	}
	if Link(0x064E)&Combine != CShadda {
		t.Errorf("expected Fatha to be of combine class CSHADDA, is %#x", Link(0x064E))
	}
	if Link('A') != 0 || Link(0x200D) != 3 {
		t.Errorf("unexpected link values for 'A' or ZWJ")
	}
}

func TestShapeLamAlef(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	out := Shape(u16("سلام۳۹"), shapeCfg)
	expected := []uint16{0xFEB3, 0xFEFC, 0xFEE1, 0x06F3, 0x06F9}
	if !equal(out, expected) {
		t.Errorf("expected %04X, have %04X", expected, out)
	}
	if out = Shape(u16("لا"), shapeCfg); !equal(out, []uint16{0xFEFB}) {
		t.Errorf("expected isolated Lam-Alef ligature FEFB, have %04X", out)
	}
}

func TestShapeTashkeel(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	input := u16("بِسْمِ")
	tests := []struct {
		name     string
		cfg      Config
		expected []uint16
	}{
		{"medial", Config{Letters: ShapeLetters},
			[]uint16{0xFE91, 0xFE7B, 0xFEB4, 0xFE7F, 0xFEE2, 0xFE7A}},
		{"isolated", Config{Letters: ShapeTashkeelIsolated},
			[]uint16{0xFE91, 0xFE7A, 0xFEB4, 0xFE7E, 0xFEE2, 0xFE7A}},
		{"removed", Config{Letters: ShapeLetters, Tashkeel: TashkeelResize},
			[]uint16{0xFE91, 0xFEB4, 0xFEE2}},
		{"tatweel", Config{Letters: ShapeLetters, Tashkeel: TashkeelReplaceByTatweel},
			[]uint16{0x0020, 0xFE91, 0x0640, 0xFEB4, 0x0640, 0xFEE2}},
	}
	for _, test := range tests {
		out := Shape(input, test.cfg)
		if !equal(out, test.expected) {
			t.Errorf("%s: expected %04X, have %04X", test.name, test.expected, out)
		}
	}
}

func TestShapeEdges(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if out := Shape(nil, shapeCfg); len(out) != 0 {
		t.Errorf("expected empty output for empty input, have %04X", out)
	}
	spaces := u16("   ")
	if out := Shape(spaces, shapeCfg); !equal(out, spaces) {
		t.Errorf("expected spaces to be left alone, have %04X", out)
	}
	out := Shape(u16(" سلام "), shapeCfg)
	expected := []uint16{0x0020, 0xFEB3, 0xFEFC, 0xFEE1, 0x0020}
	if !equal(out, expected) {
		t.Errorf("expected %04X, have %04X", expected, out)
	}
	out = Shape(u16("abc سلام"), shapeCfg)
	expected = []uint16{'a', 'b', 'c', ' ', 0xFEB3, 0xFEFC, 0xFEE1}
	if !equal(out, expected) {
		t.Errorf("expected %04X, have %04X", expected, out)
	}
	latin := u16("normal latin text")
	if out = Shape(latin, shapeCfg); !equal(out, latin) {
		t.Errorf("expected latin text to be unchanged, have %04X", out)
	}
}

func TestShapeVisual(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	// "سلام" in visual LTR order has no Lam followed by Alef
	out := Shape(u16("سلام"), Config{Letters: ShapeLetters, VisualLTR: true})
	expected := []uint16{0xFEB2, 0xFEDF, 0xFE8E, 0xFEE3}
	if !equal(out, expected) {
		t.Errorf("expected %04X, have %04X", expected, out)
	}
}

func TestAggregateTashkeel(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := []uint16{0x0628, 0x0651, 0x0650} // Beh, Shadda, Kasra
	out := Shape(input, Config{Letters: ShapeTashkeelIsolated, Aggregate: true})
	expected := []uint16{0xFE8F, 0xFC62}
	if !equal(out, expected) {
		t.Errorf("expected %04X, have %04X", expected, out)
	}
	agg := aggregateTashkeel(input, Config{Letters: ShapeLetters, Aggregate: true})
	if !equal(agg, input) {
		t.Errorf("expected no aggregation outside of isolated tashkeel mode, have %04X", agg)
	}
	agg = aggregateTashkeel([]uint16{0x0650, 0x0651, 0x0628}, Config{
		Letters: ShapeTashkeelIsolated, Aggregate: true, VisualLTR: true})
	if !equal(agg, []uint16{0xFC62, 0x0628}) {
		t.Errorf("expected visual aggregation to yield [FC62 0628], have %04X", agg)
	}
}

func TestOutputSize(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	if n := OutputSize(u16("سلام"), shapeCfg); n != 3 {
		t.Errorf("expected output size of 3, is %d", n)
	}
	if n := OutputSize([]uint16{0xFEFB}, Config{Letters: UnshapeLetters}); n != 2 {
		t.Errorf("expected unshaped Lam-Alef to need 2 code units, is %d", n)
	}
}

func TestUnshape(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	shaped := Shape(u16("سلام"), shapeCfg)
	out := Shape(shaped, Config{Letters: UnshapeLetters})
	if !equal(out, u16("سلام")) {
		t.Errorf("expected unshaping to restore 'سلام', have %04X", out)
	}
	out = Shape([]uint16{0xFEFB}, Config{Letters: UnshapeLetters, LamAlef: LamAlefNear})
	if !equal(out, []uint16{0xFEFB}) {
		t.Errorf("expected ligature to be kept without resize, have %04X", out)
	}
}

func TestNoop(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	input := u16("سلام")
	if out := Shape(input, Config{}); !equal(out, input) {
		t.Errorf("expected letters mode noop to leave text unchanged, have %04X", out)
	}
}
