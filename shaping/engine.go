package shaping

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
)

// Definition is a run of code units of a single category, located at
// input[Start:Start+Len].
type Definition struct {
	Category Category
	Start    int
	Len      int
}

// End returns the position after the last code unit of d.
func (d Definition) End() int {
	return d.Start + d.Len
}

func (d Definition) String() string {
	return fmt.Sprintf("%s[%d:%d]", d.Category, d.Start, d.End())
}

// Cluster is a sequence of definitions between two break definitions. A
// cluster terminated by a break definition carries it as Break; it is not
// part of reordering.
type Cluster struct {
	Defs     []Definition
	Break    Definition
	HasBreak bool
}

// Script describes how a complex script is segmented and reordered.
type Script struct {
	Name string
	// Classify returns the category of input[at].
	Classify func(input []uint16, at int) Category
	// Span returns the number of code units the definition starting at
	// input[at] covers. If Span is nil, consecutive code units of the same
	// category are merged into one definition, and joiners extend a run.
	Span func(input []uint16, at int, c Category) int
	// IsBreak tells if a category terminates a cluster.
	IsBreak func(c Category) bool
	// Reorder rearranges the definitions of a cluster, held in a list of
	// Definition values.
	Reorder func(defs *arraylist.List)
}

// BuildDefinitions splits input into definitions. The definitions partition
// input: they are contiguous, non-empty and cover every code unit.
func BuildDefinitions(input []uint16, script *Script) []Definition {
	defs := make([]Definition, 0, len(input)/2+1)
	for i := 0; i < len(input); {
		c := script.Classify(input, i)
		n := 1
		if script.Span != nil {
			n = script.Span(input, i, c)
		} else {
			for i+n < len(input) {
				next := script.Classify(input, i+n)
				if next != c && next != Joiner {
					break
				}
				n++
			}
		}
		if n < 1 {
			n = 1
		} else if i+n > len(input) {
			n = len(input) - i
		}
		defs = append(defs, Definition{Category: c, Start: i, Len: n})
		i += n
	}
	return defs
}

// BuildClusters groups definitions into clusters. Every break definition ends
// the current cluster. A trailing run of definitions without a break forms a
// cluster of its own.
func BuildClusters(defs []Definition, script *Script) []Cluster {
	var clusters []Cluster
	start := 0
	for i, d := range defs {
		if script.IsBreak(d.Category) {
			clusters = append(clusters, Cluster{Defs: defs[start:i], Break: d, HasBreak: true})
			start = i + 1
		}
	}
	if start < len(defs) {
		clusters = append(clusters, Cluster{Defs: defs[start:]})
	}
	return clusters
}

// Shape reorders input in place, cluster by cluster, following the rules of
// script. The content of input is permuted, its length does not change.
func Shape(input []uint16, script *Script) {
	if len(input) == 0 || script == nil {
		return
	}
	defs := BuildDefinitions(input, script)
	clusters := BuildClusters(defs, script)
	tracer().Debugf("shaping: %s: %d definitions in %d clusters", script.Name, len(defs), len(clusters))
	src := make([]uint16, len(input))
	copy(src, input)
	list := borrowList()
	defer releaseList(list)
	w := 0
	for _, cl := range clusters {
		list.Clear()
		for _, d := range cl.Defs {
			list.Add(d)
		}
		if script.Reorder != nil {
			script.Reorder(list)
		}
		it := list.Iterator()
		for it.Next() {
			d := it.Value().(Definition)
			w += copy(input[w:], src[d.Start:d.End()])
		}
		if cl.HasBreak {
			w += copy(input[w:], src[cl.Break.Start:cl.Break.End()])
		}
	}
}

// --- Helpers for reordering rules ------------------------------------------

func categoryAt(defs *arraylist.List, i int) Category {
	v, ok := defs.Get(i)
	if !ok {
		return Other
	}
	return v.(Definition).Category
}

// moveTo removes the definition at position from and inserts it at position
// to. Positions outside of the list leave it unchanged.
func moveTo(defs *arraylist.List, from, to int) {
	if from == to || to < 0 || to >= defs.Size() {
		return
	}
	v, ok := defs.Get(from)
	if !ok {
		return
	}
	defs.Remove(from)
	defs.Insert(to, v)
}

// preBaseToFront moves the pre-base vowels of a cluster to its front, keeping
// them in the order they were encountered.
func preBaseToFront(defs *arraylist.List) {
	ins := 0
	for i := 0; i < defs.Size(); i++ {
		if categoryAt(defs, i) == VowelPre {
			moveTo(defs, i, ins)
			ins++
		}
	}
}

// backToBase searches backwards from position i for a definition satisfying
// isBase. It returns -1 if there is none.
func backToBase(defs *arraylist.List, i int, isBase func(Category) bool) int {
	for ; i >= 0; i-- {
		if isBase(categoryAt(defs, i)) {
			return i
		}
	}
	return -1
}

func breakOn(cats ...Category) func(Category) bool {
	return func(c Category) bool {
		for _, b := range cats {
			if c == b {
				return true
			}
		}
		return false
	}
}
