package shaping

import (
	"fmt"
	"sort"
	"sync"
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

func shaped(input []uint16, script *Script) []uint16 {
	out := make([]uint16, len(input))
	copy(out, input)
	Shape(out, script)
	return out
}

var scriptTests = []struct {
	name     string
	script   *Script
	input    []uint16
	expected []uint16
}{
	{"myanmar kinzi", Myanmar,
		[]uint16{0x1004, 0x103A, 0x1039, 0x1000, 0x1039, 0x1000, 0x103B, 0x103C,
			0x103D, 0x1031, 0x1031, 0x102D, 0x102F, 0x1036, 0x102C, 0x1036},
		[]uint16{0x1031, 0x1031, 0x103C, 0x1000, 0x1004, 0x103A, 0x1039, 0x1039,
			0x1000, 0x103B, 0x103D, 0x102D, 0x1036, 0x102F, 0x102C, 0x1036}},
	{"myanmar long", Myanmar, u16("င်္က္ကျြွှေို့်ာှီ့ၤဲံ့းႍ"),
		[]uint16{4145, 4156, 4096, 4100, 4154, 4153, 4153, 4096, 4155, 4157, 4158, 4141,
			4143, 4151, 4154, 4140, 4158, 4142, 4151, 4196, 4146, 4150, 4151, 4152, 4237}},
	{"myanmar medial ra", Myanmar, u16("မြန်မာ"),
		[]uint16{4156, 4121, 4116, 4154, 4121, 4140}},
	{"tibetan", Tibetan, u16("བོད་རང་སྐྱོང་ལྗོངས།"),
		[]uint16{3964, 3926, 3921, 3851, 3938, 3908, 3851, 3964, 3942, 3984, 4017, 3908,
			3851, 3964, 3939, 3991, 3908, 3942, 3853}},
	{"tibetan vowel below", Tibetan, u16("གུསར"),
		[]uint16{3956, 3906, 3942, 3938}},
	{"tibetan compound vowel", Tibetan,
		[]uint16{0x0F42, 0x0F73, 0x0F66, 0x0F62},
		[]uint16{0x0F73, 0x0F42, 0x0F66, 0x0F62}},
	{"buginese joined vowels", Buginese,
		[]uint16{0x1A00, 0x1A19, 0x034F, 0x1A19, 0x034F, 0x1A17},
		[]uint16{0x1A19, 0x034F, 0x1A19, 0x034F, 0x1A17, 0x1A00}},
	{"buginese word", Buginese, u16("ᨔᨗᨔᨗᨊᨗᨊ"),
		[]uint16{6679, 6676, 6679, 6676, 6679, 6666, 6666}},
	{"buginese two words", Buginese, u16("ᨑᨗ ᨍᨍᨗᨕᨂᨗ"),
		[]uint16{6679, 6673, 32, 6679, 6669, 6669, 6679, 6677, 6658}},
	{"javanese pre-base", Javanese,
		[]uint16{0xA98F, 0xA9C0, 0xA98F, 0xA9BF, 0xA9BE, 0xA9BA, 0xA9BA, 0xA9B7},
		[]uint16{0xA9BA, 0xA9BA, 0xA98F, 0xA9C0, 0xA98F, 0xA9BF, 0xA9BE, 0xA9B7}},
	{"javanese word", Javanese, u16("ꦧꦺꦲꦏ꧀ꦠꦸꦩꦿꦥ꧀ꦲ"),
		[]uint16{43450, 43431, 43442, 43407, 43456, 43424, 43448, 43433, 43455, 43429,
			43456, 43442}},
	{"khmer ignores buginese", Khmer,
		[]uint16{0x1A00, 0x1A19, 0x034F, 0x1A19, 0x034F, 0x1A17},
		[]uint16{0x1A00, 0x1A19, 0x034F, 0x1A19, 0x034F, 0x1A17}},
	{"myanmar pre-base in order", Myanmar,
		[]uint16{0x1000, 0x1031, 0x1084},
		[]uint16{0x1031, 0x1084, 0x1000}},
	{"myanmar anusvara before below-vowels", Myanmar,
		[]uint16{0x1000, 0x102F, 0x1030, 0x1036},
		[]uint16{0x1000, 0x1036, 0x102F, 0x1030}},
	{"myanmar anusvara at cluster start", Myanmar,
		[]uint16{0x102F, 0x1036},
		[]uint16{0x1036, 0x102F}},
	{"javanese pre-base in order", Javanese,
		[]uint16{0xA98F, 0xA9BA, 0xA990, 0xA9BB},
		[]uint16{0xA9BA, 0xA9BB, 0xA98F, 0xA990}},
	{"buginese pre-base in order", Buginese,
		[]uint16{0x1A00, 0x1A19, 0x1A01, 0x1A19, 0x034F},
		[]uint16{0x1A19, 0x1A19, 0x034F, 0x1A00, 0x1A01}},
	{"khmer pre-base in order", Khmer,
		[]uint16{0x1780, 0x17C1, 0x1781, 0x17C2},
		[]uint16{0x17C1, 0x17C2, 0x1780, 0x1781}},
	{"khmer pre-base", Khmer,
		[]uint16{0x1780, 0x17C1, 0x0020, 0x1781, 0x17C2},
		[]uint16{0x17C1, 0x1780, 0x0020, 0x17C2, 0x1781}},
}

func TestScripts(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, test := range scriptTests {
		out := shaped(test.input, test.script)
		if !equal(out, test.expected) {
			t.Errorf("%s: expected %04X, have %04X", test.name, test.expected, out)
		}
	}
}

func TestDefinitionsPartitionInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, test := range scriptTests {
		defs := BuildDefinitions(test.input, test.script)
		pos := 0
		for _, d := range defs {
			if d.Start != pos || d.Len < 1 {
				t.Fatalf("%s: definition %v does not continue at %d", test.name, d, pos)
			}
			pos = d.End()
		}
		if pos != len(test.input) {
			t.Errorf("%s: definitions cover %d of %d code units", test.name, pos, len(test.input))
		}
	}
}

func TestShapeIsPermutation(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	sorted := func(u []uint16) []uint16 {
		s := append([]uint16(nil), u...)
		sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
		return s
	}
	input := u16("ေက ြမ ႄ ါ် abc‌េក")
	for _, script := range []*Script{Myanmar, Javanese, Buginese, Khmer, Tibetan} {
		out := shaped(input, script)
		if !equal(sorted(out), sorted(input)) {
			t.Errorf("%s: output is not a permutation of input: %04X", script.Name, out)
		}
	}
}

func TestMyanmarDefinitions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	defs := BuildDefinitions([]uint16{0x1004, 0x103A, 0x1039, 0x1000, 0x0020, 0x1004}, Myanmar)
	if len(defs) != 4 {
		t.Fatalf("expected 4 definitions, have %v", defs)
	}
	if defs[0].Category != Kinzi || defs[0].Len != 3 {
		t.Errorf("expected kinzi of length 3, have %v", defs[0])
	}
	if defs[3].Category != Consonant {
		t.Errorf("expected trailing Nga without Asat to be a consonant, have %v", defs[3])
	}
	clusters := BuildClusters(defs, Myanmar)
	if len(clusters) != 2 || !clusters[0].HasBreak || clusters[1].HasBreak {
		t.Errorf("expected two clusters, first one with a break, have %v", clusters)
	}
}

func TestJoinerExtendsRun(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	defs := BuildDefinitions([]uint16{0xA98F, 0x200D, 0xA990, 0x200C, 0xA9BA}, Javanese)
	if len(defs) != 3 || defs[0].Len != 3 || defs[1].Category != NonJoiner {
		t.Errorf("expected ZWJ to extend a consonant run, have %v", defs)
	}
	clusters := BuildClusters(defs, Javanese)
	if len(clusters) != 2 || clusters[0].Break.Category != NonJoiner {
		t.Errorf("expected ZWNJ to break clusters, have %v", clusters)
	}
}

func TestTibetanWithoutHead(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	input := []uint16{0x0F20, 0x0F72, 0x0F0B}
	if out := shaped(input, Tibetan); !equal(out, input) {
		t.Errorf("expected vowel without head letter to stay, have %04X", out)
	}
}

func TestEmptyAndLatin(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	Shape(nil, Myanmar)
	latin := u16("normal latin text")
	for _, script := range []*Script{Myanmar, Javanese, Buginese, Khmer, Tibetan} {
		if out := shaped(latin, script); !equal(out, latin) {
			t.Errorf("%s: expected latin text to be unchanged, have %q", script.Name,
				string(utf16.Decode(out)))
		}
	}
}

func TestTamil(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	input := []uint16{0x0B95, 0x0BC6, 0x0B9F, 0x0BBF}
	ShapeTamil(input)
	expected := []uint16{0x0BC6, 0x0B95, 0x0BBF, 0x0B9F}
	if !equal(input, expected) {
		t.Errorf("expected %04X, have %04X", expected, input)
	}
	first := []uint16{0x0BBE, 'a'}
	ShapeTamil(first)
	if !equal(first, []uint16{0x0BBE, 'a'}) {
		t.Errorf("expected vowel sign at position 0 to stay, have %04X", first)
	}
}

func TestConcurrentShaping(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	input := u16("မြန်မာ")
	expected := []uint16{4156, 4121, 4116, 4154, 4121, 4140}
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if out := shaped(input, Myanmar); !equal(out, expected) {
				errs <- fmt.Sprintf("%04X", out)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Errorf("concurrent shaping produced %s", e)
	}
}

func ExampleShape() {
	text := utf16.Encode([]rune("မြန်မာ"))
	Shape(text, Myanmar)
	fmt.Printf("%04X\n", text)
	// Output: [103C 1019 1014 103A 1019 102C]
}
