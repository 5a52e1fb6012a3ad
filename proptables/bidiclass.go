package proptables

import "golang.org/x/text/unicode/bidi"

// BidiClass is the UAX #9 Bidi_Class property value a code point
// carries. Values mirror golang.org/x/text/unicode/bidi's own Class
// constants so callers (package bidi, this module's) can pass them
// straight through without a second translation table.
type BidiClass = bidi.Class

// Re-exported for readability at call sites; these are exactly
// bidi.L, bidi.R, etc.
const (
	BidiL   = bidi.L
	BidiR   = bidi.R
	BidiAL  = bidi.AL
	BidiEN  = bidi.EN
	BidiES  = bidi.ES
	BidiET  = bidi.ET
	BidiAN  = bidi.AN
	BidiCS  = bidi.CS
	BidiNSM = bidi.NSM
	BidiBN  = bidi.BN
	BidiB   = bidi.B
	BidiS   = bidi.S
	BidiWS  = bidi.WS
	BidiON  = bidi.ON
	BidiLRE = bidi.LRE
	BidiLRO = bidi.LRO
	BidiRLE = bidi.RLE
	BidiRLO = bidi.RLO
	BidiPDF = bidi.PDF
	BidiLRI = bidi.LRI
	BidiRLI = bidi.RLI
	BidiFSI = bidi.FSI
	BidiPDI = bidi.PDI
)

// Bidi returns the Bidi_Class of cp, using
// golang.org/x/text/unicode/bidi's own property lookup rather than a
// hand-curated table: Bidi_Class assignment is dense and
// script-spanning enough (every code point has one, defaulted by
// block per DerivedBidiClass.txt) that a partial curated table would
// misclassify far more code points than it got right, unlike the
// sparse break-property tables above.
func Bidi(cp rune) BidiClass {
	p, _ := bidi.LookupRune(cp)
	return p.Class()
}

// IsBidiBracket reports whether cp is listed in BidiBrackets.txt as an
// opening or closing bracket pair member, used by the bidi engine's
// N0 bracket-pairing rule. golang.org/x/text/unicode/bidi does not
// expose BidiBrackets.txt directly, so this is a curated subset of the
// common ASCII and CJK bracket pairs; see DESIGN.md.
func IsBidiBracket(cp rune) (pair rune, opening bool, ok bool) {
	switch cp {
	case '(':
		return ')', true, true
	case ')':
		return '(', false, true
	case '[':
		return ']', true, true
	case ']':
		return '[', false, true
	case '{':
		return '}', true, true
	case '}':
		return '{', false, true
	case 0x3008:
		return 0x3009, true, true
	case 0x3009:
		return 0x3008, false, true
	case 0x300A:
		return 0x300B, true, true
	case 0x300B:
		return 0x300A, false, true
	}
	return 0, false, false
}

// canonicalBracket maps a bracket's canonical-equivalence partner for
// N0's "treat canonically equivalent brackets as the same" clause
// (e.g. U+2329/U+3008). Curated subset covering the common cases.
func canonicalBracket(cp rune) rune {
	switch cp {
	case 0x2329:
		return 0x3008
	case 0x232A:
		return 0x3009
	}
	return cp
}
