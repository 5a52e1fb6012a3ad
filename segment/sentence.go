package segment

import "github.com/boxesandglue/unitext/proptables"

func isSentenceSkippable(p proptables.SentenceProperty) bool {
	return p == proptables.SentenceExtend || p == proptables.SentenceFormat
}

// SentenceBoundaries returns every sentence boundary position in cps
// (UAX #29 SB1-SB11), using beforeCloseSp to resolve the
// ATerm/STerm-conditional rules (SB8, SB8a, SB9, SB10, SB11).
func SentenceBoundaries(cps []rune) []int {
	n := len(cps)
	if n == 0 {
		return []int{0}
	}
	props := make([]proptables.SentenceProperty, n)
	for i, cp := range cps {
		props[i] = proptables.Sentence(cp)
	}

	breaks := []int{0}
	for i := 1; i < n; i++ {
		if sentenceBreakAt(props, i) {
			breaks = append(breaks, i)
		}
	}
	breaks = append(breaks, n)
	return breaks
}

// beforeCloseSp walks backward from position i (inclusive) through
// any Extend/Format (always skipped), then any Sp run (only if
// skipSps is set), then any Close run (always skipped), and reports
// whether pred holds on the first property actually reached.
// Grounded on original_source/sentence_break.hpp's before_close_sp.
func beforeCloseSp(props []proptables.SentenceProperty, i int, skipSps bool, pred func(proptables.SentenceProperty) bool) bool {
	j := i
	for j >= 0 && isSentenceSkippable(props[j]) {
		j--
	}
	if skipSps {
		for j >= 0 && props[j] == proptables.SentenceSp {
			j--
		}
		for j >= 0 && isSentenceSkippable(props[j]) {
			j--
		}
	}
	for j >= 0 && props[j] == proptables.SentenceClose {
		j--
		for j >= 0 && isSentenceSkippable(props[j]) {
			j--
		}
	}
	if j < 0 {
		return false
	}
	return pred(props[j])
}

func sentenceBreakAt(props []proptables.SentenceProperty, i int) bool {
	prev, curr := props[i-1], props[i]

	// SB3: CR x LF
	if prev == proptables.SentenceCR && curr == proptables.SentenceLF {
		return false
	}
	// SB4: break after paragraph separators (CR, LF, Sep)
	isParaSep := func(p proptables.SentenceProperty) bool {
		return p == proptables.SentenceCR || p == proptables.SentenceLF || p == proptables.SentenceSep
	}
	if isParaSep(prev) {
		return true
	}
	// SB5: ignore Extend/Format (they never break, and are transparent
	// to the rules below).
	if isSentenceSkippable(curr) {
		return false
	}

	// Find the nearest preceding non-skippable property for the
	// context-sensitive rules (SB6-SB11 look at "the ATerm/STerm
	// before any skip run").
	j := i - 1
	for j >= 0 && isSentenceSkippable(props[j]) {
		j--
	}
	if j < 0 {
		return true
	}
	p := props[j]

	// SB6: ATerm x Numeric
	if p == proptables.SentenceATerm && curr == proptables.SentenceNumeric {
		return false
	}
	// SB7: Upper ATerm x Upper (look back past the ATerm to what precedes it)
	if p == proptables.SentenceATerm && curr == proptables.SentenceUpper {
		k := j - 1
		for k >= 0 && isSentenceSkippable(props[k]) {
			k--
		}
		if k >= 0 && props[k] == proptables.SentenceUpper {
			return false
		}
	}
	if isSTermOrATerm(p) {
		// SB8a: STerm/ATerm Close* Sp* x (SContinue|STerm|ATerm)
		if curr == proptables.SentenceSContinue || isSTermOrATerm(curr) {
			if beforeCloseSp(props, i-1, true, isSTermOrATerm) {
				return false
			}
		}
	}
	// SB8: ATerm Close* Sp* x (not {OLetter, Upper, Lower, Sep, CR, LF, STerm, ATerm})* Lower
	// Scan forward from i past everything outside that set; no break if
	// the scan stops at a Lower.
	if beforeCloseSp(props, i-1, true, func(q proptables.SentenceProperty) bool { return q == proptables.SentenceATerm }) {
		k := i
		for k < len(props) && props[k] != proptables.SentenceOLetter && props[k] != proptables.SentenceUpper &&
			props[k] != proptables.SentenceLower && !isParaSep(props[k]) && !isSTermOrATerm(props[k]) {
			k++
		}
		if k < len(props) && props[k] == proptables.SentenceLower {
			return false
		}
	}
	// SB9: (STerm|ATerm) Close* x (Close|Sp|CR|LF|Sep)
	if beforeCloseSp(props, i-1, false, isSTermOrATerm) {
		if curr == proptables.SentenceClose || curr == proptables.SentenceSp || isParaSep(curr) {
			return false
		}
	}
	// SB10: (STerm|ATerm) Close* Sp* x (Sp|paragraph separators)
	if beforeCloseSp(props, i-1, true, isSTermOrATerm) {
		if curr == proptables.SentenceSp || isParaSep(curr) {
			return false
		}
	}
	// SB11: (STerm|ATerm) Close* Sp* — always a break, once we get here.
	if beforeCloseSp(props, i-1, true, isSTermOrATerm) {
		return true
	}

	// SB998/SB999: otherwise, no break unless nothing else applied
	// (the default UAX #29 behavior is "do not break").
	return false
}

func isSTermOrATerm(p proptables.SentenceProperty) bool {
	return p == proptables.SentenceSTerm || p == proptables.SentenceATerm
}
