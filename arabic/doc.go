/*
Package arabic implements contextual shaping of Arabic text into presentation forms.

Arabic letters have up to four visual forms: isolated, initial, medial and final.
Which form is correct depends on the joining behaviour of a letter's neighbours.
Display devices without a shaping engine expect text to already consist of
presentation form code points (Unicode blocks FB50–FDFF and FE70–FEFF). Shape
performs this conversion on UTF-16 code units:

▪︎ every letter is replaced by its presentation form, selected from the link
values of the letter and of its nearest joining neighbours;

▪︎ Lam followed by Alef is composed to a Lam-Alef ligature, shortening the text
by one code unit;

▪︎ tashkeel (diacritics) are shaped, removed or replaced by Tatweel, depending
on the tashkeel mode;

▪︎ pairs of Shadda and a vowel mark may be aggregated into a single precomposed
presentation form.

Shaping operates on whole buffers and never fails. Text in logical order is
reversed internally (leading and trailing spaces excluded), as the link walk
works in visual order, and restored afterwards.

Unshaping (Config.Letters == Unshape) maps presentation forms back to the
Arabic block.

Near/begin/end placement of the space freed by a ligature is not
implemented; all LamAlef and tashkeel memory modes behave like Resize.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arabic

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
