package proptables

import "unicode"

// SentenceProperty is the UAX #29 Sentence_Break property value a
// code point carries, used by the sentence segmenter's SB3-SB11
// rules.
type SentenceProperty uint8

const (
	SentenceOther SentenceProperty = iota
	SentenceCR
	SentenceLF
	SentenceExtend
	SentenceSep
	SentenceFormat
	SentenceSp
	SentenceLower
	SentenceUpper
	SentenceOLetter
	SentenceNumeric
	SentenceATerm
	SentenceSContinue
	SentenceSTerm
	SentenceClose
)

var sentenceTable *table

func init() {
	t := newTable(uint8(SentenceOther))

	t.addSingle('\r', uint8(SentenceCR))
	t.addSingle('\n', uint8(SentenceLF))
	t.addSingle(0x85, uint8(SentenceSep))
	t.addSingle(0x2028, uint8(SentenceSep))
	t.addSingle(0x2029, uint8(SentenceSep))

	t.addRangeTable(unicode.Mn, uint8(SentenceExtend))
	t.addRangeTable(unicode.Me, uint8(SentenceExtend))
	t.addRangeTable(unicode.Mc, uint8(SentenceExtend))
	t.addRangeTable(unicode.Cf, uint8(SentenceFormat))

	t.addRangeTable(unicode.Zs, uint8(SentenceSp))
	t.addSingle('\t', uint8(SentenceSp))

	t.addRangeTable(unicode.Ll, uint8(SentenceLower))
	t.addRangeTable(unicode.Lu, uint8(SentenceUpper))
	t.addRangeTable(unicode.Lt, uint8(SentenceUpper))
	t.addRangeTable(unicode.Lo, uint8(SentenceOLetter))
	t.addRangeTable(unicode.Lm, uint8(SentenceOLetter))

	t.addRangeTable(unicode.Nd, uint8(SentenceNumeric))
	t.addRangeTable(unicode.Nl, uint8(SentenceNumeric))
	t.addRangeTable(unicode.No, uint8(SentenceNumeric))

	t.addSingle('.', uint8(SentenceATerm))
	for _, cp := range []rune{',', ';', ':'} {
		t.addSingle(cp, uint8(SentenceSContinue))
	}
	for _, cp := range []rune{'!', '?', 0x0589, 0x061D, 0x061E, 0x061F, 0x06D4, 0x203C, 0x203D} {
		t.addSingle(cp, uint8(SentenceSTerm))
	}
	for _, cp := range []rune{')', ']', '}', '"', '\'', 0x2019, 0x201D, 0x00BB} {
		t.addSingle(cp, uint8(SentenceClose))
	}

	t.finalize()
	sentenceTable = t
}

// Sentence returns the Sentence_Break property of cp.
func Sentence(cp rune) SentenceProperty {
	return SentenceProperty(sentenceTable.lookup(cp))
}
