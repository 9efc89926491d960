/*
Package shaping reorders the code units of complex scripts into visual order.

Scripts like Myanmar, Javanese, Buginese, Khmer and Tibetan write some vowel
signs and medials before (or around) the consonant they belong to, while
Unicode stores them after it. Without an OpenType shaping engine a renderer
draws code units in storage order, which puts these marks at the wrong place.
This package moves them to where they are drawn:

▪︎ text is split into definitions: runs of code units of the same script
category (see BuildDefinitions);

▪︎ definitions are grouped into clusters, delimited by break definitions like
whitespace (see BuildClusters);

▪︎ every cluster is rearranged by the rules of its script, and the result is
written back into the input buffer (see Shape).

Reordering is a permutation: the output has the same length and contains the
same code units as the input. Tamil uses a simpler scheme of swapping a vowel
sign with its predecessor (see ShapeTamil).

Arabic is handled by package arabic, bidirectional reordering by package bidi.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shaping

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
