// Package segment implements the SegmentationEngine and RangeViews
// (spec §4.F, §4.F.6 — components F and H): break-finders and range
// adaptors for grapheme clusters, words, sentences, lines, and
// paragraphs.
//
// Grounded on original_source/include/boost/text/grapheme_break.hpp,
// word_break.hpp, sentence_break.hpp, and line_break.hpp for the rule
// shapes (skip rules, two-sided context window, tailoring hooks), and
// on boxesandglue/textshape's table-driven classify-then-branch style
// (ot/unicode_category.go) for how each rule function reads.
package segment

import "github.com/boxesandglue/unitext/proptables"

// GraphemeBoundaries returns every grapheme cluster boundary position
// in cps, as code-point indices in [0, len(cps)] (always including 0
// and len(cps)). Implements UAX #29 GB1-GB999, including the Regional
// Indicator backward-parity rule (GB12/GB13) and the
// Extended_Pictographic ZWJ sequence rule (GB11).
func GraphemeBoundaries(cps []rune) []int {
	n := len(cps)
	if n == 0 {
		return []int{0}
	}
	breaks := make([]int, 0, n/2+2)
	breaks = append(breaks, 0) // GB1: break at start of text

	for i := 1; i <= n; i++ {
		if i == n {
			breaks = append(breaks, n) // GB2: break at end of text
			break
		}
		if !isGraphemeBreak(cps, i) {
			continue
		}
		breaks = append(breaks, i)
	}
	return breaks
}

// isGraphemeBreak decides whether a grapheme boundary exists between
// cps[i-1] and cps[i].
func isGraphemeBreak(cps []rune, i int) bool {
	prev := proptables.Grapheme(cps[i-1])
	curr := proptables.Grapheme(cps[i])

	// GB3: CR x LF never breaks.
	if prev == proptables.GraphemeCR && curr == proptables.GraphemeLF {
		return false
	}
	// GB4/GB5: break after/before Control/CR/LF, except the GB3 case above.
	if prev == proptables.GraphemeCR || prev == proptables.GraphemeLF || prev == proptables.GraphemeControl {
		return true
	}
	if curr == proptables.GraphemeCR || curr == proptables.GraphemeLF || curr == proptables.GraphemeControl {
		return true
	}
	// GB6: L x (L|V|LV|LVT)
	if prev == proptables.GraphemeL && (curr == proptables.GraphemeL || curr == proptables.GraphemeV ||
		curr == proptables.GraphemeLV || curr == proptables.GraphemeLVT) {
		return false
	}
	// GB7: (LV|V) x (V|T)
	if (prev == proptables.GraphemeLV || prev == proptables.GraphemeV) &&
		(curr == proptables.GraphemeV || curr == proptables.GraphemeT) {
		return false
	}
	// GB8: (LVT|T) x T
	if (prev == proptables.GraphemeLVT || prev == proptables.GraphemeT) && curr == proptables.GraphemeT {
		return false
	}
	// GB9: x (Extend | ZWJ)
	if curr == proptables.GraphemeExtend || curr == proptables.GraphemeZWJ {
		return false
	}
	// GB9a: x SpacingMark
	if curr == proptables.GraphemeSpacingMark {
		return false
	}
	// GB9b: Prepend x
	if prev == proptables.GraphemePrepend {
		return false
	}
	// GB11: Extended_Pictographic Extend* ZWJ x Extended_Pictographic.
	// The ZWJ x (base) transition itself is already covered by GB9
	// above (x ZWJ never breaks, and ZWJ x anything falls through to
	// here); this only needs to confirm the ZWJ was reached from a
	// pictographic base, skipping any intervening Extend, before
	// allowing the no-break to apply to an Extended_Pictographic
	// continuation specifically.
	if prev == proptables.GraphemeZWJ && proptables.IsExtendedPictographic(cps[i]) {
		j := i - 2
		for j >= 0 && proptables.Grapheme(cps[j]) == proptables.GraphemeExtend {
			j--
		}
		if j >= 0 && proptables.IsExtendedPictographic(cps[j]) {
			return false
		}
	}
	// GB12/GB13: Regional Indicator pairing by backward parity count.
	if prev == proptables.GraphemeRegionalIndicator && curr == proptables.GraphemeRegionalIndicator {
		count := 0
		for j := i - 1; j >= 0 && proptables.Grapheme(cps[j]) == proptables.GraphemeRegionalIndicator; j-- {
			count++
		}
		// An odd run length ending at i-1 means cps[i-1] is itself
		// unpaired (the tail of an odd-length run), so it pairs with
		// the next RI (cps[i]): no break. An even run length means
		// cps[i-1] completed a pair, so cps[i] starts a fresh one.
		return count%2 == 0
	}
	// GB999: otherwise, break.
	return true
}
