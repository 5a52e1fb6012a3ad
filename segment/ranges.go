package segment

import "sort"

// Kind selects which segmentation rule set Boundaries, PrevBreak,
// NextBreak, AtBreak, Range, and Ranges operate over. Line-allowed
// segmentation is not representable here since it additionally needs
// a width budget and extent function (see AllowedLineBreaks); use
// KindLineHard for the parameterless line case.
type Kind int

const (
	KindGrapheme Kind = iota
	KindWord
	KindSentence
	KindParagraph
	KindLineHard
)

// Boundaries returns every break position for kind over cps, as
// code-point indices in [0, len(cps)] — the batch construction used
// internally by Range/Ranges instead of re-scanning from the start on
// every step (SPEC_FULL.md's supplemented "all_breaks" feature).
func Boundaries(kind Kind, cps []rune) []int {
	switch kind {
	case KindGrapheme:
		return GraphemeBoundaries(cps)
	case KindWord:
		return WordBoundaries(cps, nil, nil)
	case KindSentence:
		return SentenceBoundaries(cps)
	case KindParagraph:
		return ParagraphBoundaries(cps)
	case KindLineHard:
		return HardLineBoundaries(cps)
	default:
		return GraphemeBoundaries(cps)
	}
}

// PrevBreak returns the nearest break position <= it.
func PrevBreak(breaks []int, it int) int {
	i := sort.Search(len(breaks), func(i int) bool { return breaks[i] > it })
	if i == 0 {
		return breaks[0]
	}
	return breaks[i-1]
}

// NextBreak returns the nearest break position > first, i.e. the
// smallest boundary strictly greater than first.
func NextBreak(breaks []int, first int) int {
	i := sort.Search(len(breaks), func(i int) bool { return breaks[i] > first })
	if i == len(breaks) {
		return breaks[len(breaks)-1]
	}
	return breaks[i]
}

// AtBreak reports whether it is itself a break position (it == last
// is always treated as a break, per spec §4.F).
func AtBreak(breaks []int, it int) bool {
	i := sort.Search(len(breaks), func(i int) bool { return breaks[i] >= it })
	return i < len(breaks) && breaks[i] == it
}

// Subrange is a contiguous code-point range [Start, End) produced by
// the range adaptors.
type Subrange struct {
	Start, End int
}

// Range returns the subrange of kind containing position it (spec
// §4.F.6 "X(first, it, last) -> subrange").
func Range(kind Kind, cps []rune, it int) Subrange {
	breaks := Boundaries(kind, cps)
	start := PrevBreak(breaks, it)
	end := NextBreak(breaks, start)
	return Subrange{Start: start, End: end}
}

// Ranges returns every subrange of kind across cps, in order (spec
// §4.F.6 "Xs(first, last)").
func Ranges(kind Kind, cps []rune) []Subrange {
	breaks := Boundaries(kind, cps)
	if len(breaks) < 2 {
		return nil
	}
	out := make([]Subrange, 0, len(breaks)-1)
	for i := 0; i+1 < len(breaks); i++ {
		out = append(out, Subrange{Start: breaks[i], End: breaks[i+1]})
	}
	return out
}

// RangesReversed returns the same subranges as Ranges but in reverse
// order, supporting the "lazy, reversible sequence" requirement of
// spec §4.F.6 without a second, backward-scanning implementation.
func RangesReversed(kind Kind, cps []rune) []Subrange {
	fwd := Ranges(kind, cps)
	out := make([]Subrange, len(fwd))
	for i, r := range fwd {
		out[len(fwd)-1-i] = r
	}
	return out
}
