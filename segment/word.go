package segment

import "github.com/boxesandglue/unitext/proptables"

// WordPropertyFunc classifies a code point for word breaking. Callers
// may supply a tailored function (e.g. reclassifying '-' as
// MidLetter) that falls back to DefaultWordProperty for anything it
// doesn't special-case — mirroring original_source's CPPropFunc
// indirection (see SPEC_FULL.md's supplemented-features note).
type WordPropertyFunc func(cp rune) proptables.WordProperty

// BreakOverrideFunc forces an additional word break given the 5-slot
// context window (prev_prev, prev, curr, next, next_next); any slot
// may be WordOther if it falls outside the input.
type BreakOverrideFunc func(pp, p, c, n, nn proptables.WordProperty) bool

// DefaultWordProperty is the word-break property function used when a
// caller supplies none: proptables.DefaultWordProperty, re-exported
// here as the callable a tailored property function is expected to
// defer to (SPEC_FULL.md supplemented feature 1).
var DefaultWordProperty WordPropertyFunc = proptables.DefaultWordProperty

func isAHLetter(p proptables.WordProperty) bool {
	return p == proptables.WordALetter || p == proptables.WordHebrewLetter
}

func isMidNumLetQ(p proptables.WordProperty) bool {
	return p == proptables.WordMidNumLet || p == proptables.WordSingleQuote
}

func isSkippable(p proptables.WordProperty) bool {
	return p == proptables.WordExtend || p == proptables.WordFormat || p == proptables.WordZWJ
}

// WordBoundaries returns every word boundary position in cps (WB1-WB16).
// propFn and override may be nil to use the defaults.
func WordBoundaries(cps []rune, propFn WordPropertyFunc, override BreakOverrideFunc) []int {
	if propFn == nil {
		propFn = DefaultWordProperty
	}
	n := len(cps)
	if n == 0 {
		return []int{0}
	}
	props := make([]proptables.WordProperty, n)
	for i, cp := range cps {
		props[i] = propFn(cp)
	}

	prop := func(i int) proptables.WordProperty {
		if i < 0 || i >= n {
			return proptables.WordOther
		}
		return props[i]
	}

	// prevSkipping walks backward from i (exclusive), skipping
	// Extend/Format/ZWJ runs, and returns the index of the nearest
	// non-skippable code point, or -1.
	prevSkipping := func(i int) int {
		j := i - 1
		for j >= 0 && isSkippable(props[j]) {
			j--
		}
		return j
	}
	breaks := []int{0}

	for i := 1; i < n; i++ {
		if override != nil {
			pp, p, c, nn1, nn2 := prop(i-2), prop(i-1), prop(i), prop(i+1), prop(i+2)
			if override(pp, p, c, nn1, nn2) {
				breaks = append(breaks, i)
				continue
			}
		}

		riRun := 0
		for j := i - 1; j >= 0 && props[j] == proptables.WordRegionalIndicator; j-- {
			riRun++
		}

		if wordBreakAt(props, i, prevSkipping, riRun) {
			breaks = append(breaks, i)
		}
	}
	breaks = append(breaks, n)
	return breaks
}

func wordBreakAt(props []proptables.WordProperty, i int, prevSkipping func(int) int, riRun int) bool {
	prev, curr := props[i-1], props[i]

	// WB3: CR x LF
	if prev == proptables.WordCR && curr == proptables.WordLF {
		return false
	}
	// WB3a/WB3b: break before/after (Newline|CR|LF)
	isNL := func(p proptables.WordProperty) bool {
		return p == proptables.WordNewline || p == proptables.WordCR || p == proptables.WordLF
	}
	if isNL(prev) || isNL(curr) {
		return true
	}
	// WB3c: ZWJ x Extended_Pictographic — approximated via property
	// alone since WordProperty doesn't track Extended_Pictographic;
	// ZWJ already falls through to WB4's skip rule in practice.
	if prev == proptables.WordZWJ {
		return false
	}
	// WB3d: WSegSpace x WSegSpace
	if prev == proptables.WordWSegSpace && curr == proptables.WordWSegSpace {
		return false
	}
	// WB4: ignore Extend/Format/ZWJ for the purposes of WB5-WB13: if
	// curr is skippable, never break here (it's absorbed into the
	// preceding run); the comparisons below look past skippable runs
	// on either side instead of at props[i-1]/props[i] directly.
	if isSkippable(curr) {
		return false
	}

	j := prevSkipping(i) // nearest preceding non-skippable property
	if j < 0 {
		return true
	}
	p := props[j]

	// WB5: AHLetter x AHLetter
	if isAHLetter(p) && isAHLetter(curr) {
		return false
	}
	// WB6/WB7: AHLetter x (MidLetter|MidNumLetQ) AHLetter
	if isAHLetter(p) && (curr == proptables.WordMidLetter || isMidNumLetQ(curr)) {
		if n2 := nextSkippingFrom(props, i+1); n2 < len(props) && isAHLetter(props[n2]) {
			return false
		}
	}
	if (p == proptables.WordMidLetter || isMidNumLetQ(p)) && isAHLetter(curr) {
		if p2 := prevSkippingFrom(props, j-1); p2 >= 0 && isAHLetter(props[p2]) {
			return false
		}
	}
	// WB7a: Hebrew_Letter x Single_Quote
	if p == proptables.WordHebrewLetter && curr == proptables.WordSingleQuote {
		return false
	}
	// WB7b/WB7c: Hebrew_Letter x Double_Quote Hebrew_Letter
	if p == proptables.WordHebrewLetter && curr == proptables.WordDoubleQuote {
		if n2 := nextSkippingFrom(props, i+1); n2 < len(props) && props[n2] == proptables.WordHebrewLetter {
			return false
		}
	}
	if p == proptables.WordDoubleQuote && curr == proptables.WordHebrewLetter {
		if p2 := prevSkippingFrom(props, j-1); p2 >= 0 && props[p2] == proptables.WordHebrewLetter {
			return false
		}
	}
	// WB8: Numeric x Numeric
	if p == proptables.WordNumeric && curr == proptables.WordNumeric {
		return false
	}
	// WB9: AHLetter x Numeric
	if isAHLetter(p) && curr == proptables.WordNumeric {
		return false
	}
	// WB10: Numeric x AHLetter
	if p == proptables.WordNumeric && isAHLetter(curr) {
		return false
	}
	// WB11/WB12: Numeric x (MidNum|MidNumLetQ) Numeric
	isMidNum := func(x proptables.WordProperty) bool { return x == proptables.WordMidNum || isMidNumLetQ(x) }
	if p == proptables.WordNumeric && isMidNum(curr) {
		if n2 := nextSkippingFrom(props, i+1); n2 < len(props) && props[n2] == proptables.WordNumeric {
			return false
		}
	}
	if isMidNum(p) && curr == proptables.WordNumeric {
		if p2 := prevSkippingFrom(props, j-1); p2 >= 0 && props[p2] == proptables.WordNumeric {
			return false
		}
	}
	// WB13: Katakana x Katakana
	if p == proptables.WordKatakana && curr == proptables.WordKatakana {
		return false
	}
	// WB13a: (AHLetter|Numeric|Katakana|ExtendNumLet) x ExtendNumLet
	isExtNumLetable := func(x proptables.WordProperty) bool {
		return isAHLetter(x) || x == proptables.WordNumeric || x == proptables.WordKatakana || x == proptables.WordExtendNumLet
	}
	if isExtNumLetable(p) && curr == proptables.WordExtendNumLet {
		return false
	}
	// WB13b: ExtendNumLet x (AHLetter|Numeric|Katakana)
	if p == proptables.WordExtendNumLet && (isAHLetter(curr) || curr == proptables.WordNumeric || curr == proptables.WordKatakana) {
		return false
	}
	// WB15/WB16: Regional_Indicator pairing by backward run-length
	// parity (same scheme as GB12/13 in package segment's grapheme
	// breaker): an odd run ending at the preceding RI means it's
	// unpaired and should absorb this one.
	if p == proptables.WordRegionalIndicator && curr == proptables.WordRegionalIndicator {
		return riRun%2 == 0
	}

	return true
}

func nextSkippingFrom(props []proptables.WordProperty, i int) int {
	for i < len(props) && isSkippable(props[i]) {
		i++
	}
	return i
}

func prevSkippingFrom(props []proptables.WordProperty, i int) int {
	for i >= 0 && isSkippable(props[i]) {
		i--
	}
	return i
}
