package ushape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/ushape/arabic"
)

// Options is a bitmask selecting the transformations of ShapeUnicode. It
// consists of several fields, each with a mask and a set of values.
type Options uint32

// LamAlef (length) options. Only LengthGrowShrink is implemented; the other
// values behave like it.
const (
	LengthGrowShrink             Options = 0
	LamAlefResize                Options = 0
	LengthFixedSpacesNear        Options = 1
	LamAlefNear                  Options = 1
	LengthFixedSpacesAtEnd       Options = 2
	LamAlefEnd                   Options = 2
	LengthFixedSpacesAtBeginning Options = 3
	LamAlefBegin                 Options = 3
	LamAlefAuto                  Options = 0x10000
	LengthMask                   Options = 0x10003
	LamAlefMask                  Options = 0x10003
)

// Text direction of the input.
const (
	TextDirectionLogical   Options = 0
	TextDirectionVisualRTL Options = 0
	TextDirectionVisualLTR Options = 4
	TextDirectionMask      Options = 4
)

// Letter options. Any letter option other than LettersNoop enables the
// complex script passes as well.
const (
	LettersNoop                  Options = 0
	LettersShape                 Options = 8
	LettersUnshape               Options = 0x10
	LettersShapeTashkeelIsolated Options = 0x18
	LettersMask                  Options = 0x18
)

// Digit options. Digit shaping is reserved and not implemented.
const (
	DigitsNoop          Options = 0
	DigitsEN2AN         Options = 0x20
	DigitsAN2EN         Options = 0x40
	DigitsALEN2ANInitLR Options = 0x60
	DigitsALEN2ANInitAL Options = 0x80
	DigitsReserved      Options = 0xA0
	DigitsMask          Options = 0xE0
	DigitTypeAN         Options = 0
	DigitTypeANExtended Options = 0x100
	DigitTypeReserved   Options = 0x200
	DigitTypeMask       Options = 0x300
)

// Tashkeel options.
const (
	AggregateTashkeel        Options = 0x4000 // combine Shadda + vowel mark, with LettersShapeTashkeelIsolated
	AggregateTashkeelNoop    Options = 0
	AggregateTashkeelMask    Options = 0x4000
	PreservePresentation     Options = 0x8000
	PreservePresentationNoop Options = 0
	PreservePresentationMask Options = 0x8000
	TashkeelBegin            Options = 0x40000
	TashkeelEnd              Options = 0x60000
	TashkeelResize           Options = 0x80000
	TashkeelReplaceByTatweel Options = 0xC0000
	TashkeelMask             Options = 0xE0000
)

// DirectionOutputBidi enables bidirectional reordering of the output.
const DirectionOutputBidi Options = 1 << 20

// Two-cell and tail options. None of them is implemented.
const (
	SeenTwocellNear              Options = 0x200000
	SeenMask                     Options = 0x700000
	YehHamzaTwocellNear          Options = 0x1000000
	YehHamzaMask                 Options = 0x3800000
	SpacesRelativeToTextBeginEnd Options = 0x4000000
	SpacesRelativeToTextMask     Options = 0x4000000
	TailNewUnicode               Options = 0x8000000
	TailTypeMask                 Options = 0x8000000
)

// Option presets.
const (
	DefaultOptions            = LettersShape | TextDirectionLogical | DirectionOutputBidi
	DefaultOptionsWithoutBidi = LettersShape | TextDirectionLogical
)

// ErrUnsupportedOption is returned by Validate for option fields which are
// reserved or not implemented.
var ErrUnsupportedOption = errors.New("ushape: unsupported option")

// Validate checks opts for fields ShapeUnicode does not implement. ShapeUnicode
// ignores them and falls back to LengthGrowShrink and no digit shaping.
func Validate(opts Options) error {
	var unsupported []string
	switch opts & LamAlefMask {
	case LamAlefNear, LamAlefEnd, LamAlefBegin:
		unsupported = append(unsupported, fmt.Sprintf("LamAlef mode %#x", uint32(opts&LamAlefMask)))
	}
	if opts&DigitsMask != 0 {
		unsupported = append(unsupported, "digit shaping")
	}
	if opts&DigitTypeMask != 0 {
		unsupported = append(unsupported, "digit type")
	}
	if opts&SeenMask&^DirectionOutputBidi != 0 {
		unsupported = append(unsupported, "Seen two-cell")
	}
	if opts&YehHamzaMask != 0 {
		unsupported = append(unsupported, "YehHamza two-cell")
	}
	if opts&SpacesRelativeToTextMask != 0 {
		unsupported = append(unsupported, "spaces relative to text")
	}
	if opts&TailTypeMask != 0 {
		unsupported = append(unsupported, "tail type")
	}
	if len(unsupported) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedOption, strings.Join(unsupported, ", "))
}

func (opts Options) String() string {
	var s []string
	switch opts & LettersMask {
	case LettersShape:
		s = append(s, "shape")
	case LettersUnshape:
		s = append(s, "unshape")
	case LettersShapeTashkeelIsolated:
		s = append(s, "shape-isolated")
	}
	if opts&TextDirectionMask == TextDirectionVisualLTR {
		s = append(s, "visual")
	}
	if opts&AggregateTashkeel != 0 {
		s = append(s, "aggregate")
	}
	if opts&TashkeelMask != 0 {
		s = append(s, fmt.Sprintf("tashkeel=%#x", uint32(opts&TashkeelMask)))
	}
	if opts&DirectionOutputBidi != 0 {
		s = append(s, "bidi")
	}
	return fmt.Sprintf("%#x[%s]", uint32(opts), strings.Join(s, " "))
}

// arabicConfig translates opts to the parameters of the Arabic shaper.
func arabicConfig(opts Options) arabic.Config {
	cfg := arabic.Config{
		VisualLTR: opts&TextDirectionMask == TextDirectionVisualLTR,
		Aggregate: opts&AggregateTashkeelMask == AggregateTashkeel,
	}
	switch opts & LettersMask {
	case LettersShape:
		cfg.Letters = arabic.ShapeLetters
	case LettersUnshape:
		cfg.Letters = arabic.UnshapeLetters
	case LettersShapeTashkeelIsolated:
		cfg.Letters = arabic.ShapeTashkeelIsolated
	}
	switch opts & LamAlefMask {
	case LamAlefNear:
		cfg.LamAlef = arabic.LamAlefNear
	case LamAlefEnd:
		cfg.LamAlef = arabic.LamAlefEnd
	case LamAlefBegin:
		cfg.LamAlef = arabic.LamAlefBegin
	case LamAlefAuto:
		cfg.LamAlef = arabic.LamAlefAuto
	}
	switch opts & TashkeelMask {
	case TashkeelBegin:
		cfg.Tashkeel = arabic.TashkeelBegin
	case TashkeelEnd:
		cfg.Tashkeel = arabic.TashkeelEnd
	case TashkeelResize:
		cfg.Tashkeel = arabic.TashkeelResize
	case TashkeelReplaceByTatweel:
		cfg.Tashkeel = arabic.TashkeelReplaceByTatweel
	}
	return cfg
}
