package proptables

import "unicode"

// LineBreakClass is the UAX #14 Line_Break property value a code
// point carries, used by the line segmenter to decide mandatory vs.
// allowed vs. forbidden break opportunities.
type LineBreakClass uint8

const (
	LineXX LineBreakClass = iota // Unknown: treated as AL
	LineBK                       // Mandatory break
	LineCR
	LineLF
	LineNL
	LineSP // Space
	LineWJ // Word joiner: never break
	LineGL // Non-breaking glue
	LineCL // Closing punctuation
	LineCP // Closing parenthesis
	LineEX // Exclamation/interrogation
	LineIS // Infix numeric separator
	LineSY // Symbols allowing break after
	LineOP // Opening punctuation
	LineQU // Quotation
	LineID // Ideographic
	LineAL // Alphabetic
	LineNU // Numeric
	LineIN // Inseparable
	LineNS // Nonstarter
	LineBA // Break after
	LineBB // Break before
	LineB2 // Break both
	LineHY // Hyphen
	LineCB // Contingent break
	LineCJ // Conditional Japanese starter
	LineSA // Complex context (South/Southeast Asian scripts)
	LineSG // Surrogate
	LineCM // Combining mark
	LineZW // Zero width space
)

var lineBreakTable *table

func init() {
	t := newTable(uint8(LineXX))

	t.addSingle('\n', uint8(LineLF))
	t.addSingle('\r', uint8(LineCR))
	t.addSingle(0x85, uint8(LineNL))
	t.addSingle(0x0B, uint8(LineBK))
	t.addSingle(0x0C, uint8(LineBK))
	t.addSingle(0x2028, uint8(LineBK))
	t.addSingle(0x2029, uint8(LineBK))

	t.addSingle(' ', uint8(LineSP))
	t.addRangeTable(unicode.Zs, uint8(LineSP))
	t.addSingle(0x2060, uint8(LineWJ)) // WORD JOINER
	t.addSingle(0xFEFF, uint8(LineWJ)) // ZERO WIDTH NO-BREAK SPACE
	t.addSingle(0x200B, uint8(LineZW)) // ZERO WIDTH SPACE

	t.addSingle(0x00A0, uint8(LineGL)) // NO-BREAK SPACE
	t.addSingle(0x202F, uint8(LineGL)) // NARROW NO-BREAK SPACE
	t.addSingle(0x2007, uint8(LineGL)) // FIGURE SPACE

	for _, cp := range []rune{')', ']', '}', 0x3009, 0x300B, 0x300D, 0x300F, 0xFF09, 0xFF3D} {
		t.addSingle(cp, uint8(LineCL))
	}
	for _, cp := range []rune{'(', 0xFF08} {
		t.addSingle(cp, uint8(LineCP))
	}
	for _, cp := range []rune{'!', '?'} {
		t.addSingle(cp, uint8(LineEX))
	}
	for _, cp := range []rune{'.', ','} {
		t.addSingle(cp, uint8(LineIS))
	}
	t.addSingle('/', uint8(LineSY))

	for _, cp := range []rune{'(', '[', '{', 0x3008, 0x300A, 0x300C, 0x300E, 0xFF08, 0xFF3B} {
		t.addSingle(cp, uint8(LineOP))
	}
	for _, cp := range []rune{'"', '\'', 0x2018, 0x2019, 0x201C, 0x201D} {
		t.addSingle(cp, uint8(LineQU))
	}

	t.addRangeTable(unicode.L, uint8(LineAL))

	// Ideographic: CJK Unified Ideographs and common CJK punctuation
	// blocks (curated subset of the much larger UAX #14 ID set).
	t.addRange(0x4E00, 0x9FFF, uint8(LineID))
	t.addRange(0x3040, 0x30FF, uint8(LineID)) // hiragana/katakana
	t.addRange(0xAC00, 0xD7A3, uint8(LineID)) // hangul syllables

	t.addRangeTable(unicode.Nd, uint8(LineNU))

	t.addSingle('-', uint8(LineHY))
	t.addSingle(0x2014, uint8(LineB2)) // EM DASH

	t.addRangeTable(unicode.Mn, uint8(LineCM))
	t.addRangeTable(unicode.Mc, uint8(LineCM))

	t.finalize()
	lineBreakTable = t
}

// LineBreak returns the Line_Break class of cp.
func LineBreak(cp rune) LineBreakClass {
	return LineBreakClass(lineBreakTable.lookup(cp))
}
