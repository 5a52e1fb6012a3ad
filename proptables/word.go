package proptables

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// WordProperty is the UAX #29 Word_Break property value a code point
// carries, used by the word segmenter's WB3-WB15 rules.
type WordProperty uint8

const (
	WordOther WordProperty = iota
	WordCR
	WordLF
	WordNewline
	WordExtend
	WordZWJ
	WordRegionalIndicator
	WordFormat
	WordKatakana
	WordHebrewLetter
	WordALetter
	WordSingleQuote
	WordDoubleQuote
	WordMidNumLet
	WordMidLetter
	WordMidNum
	WordNumeric
	WordExtendNumLet
	WordWSegSpace
)

var wordTable *table

func init() {
	t := newTable(uint8(WordOther))

	t.addSingle('\r', uint8(WordCR))
	t.addSingle('\n', uint8(WordLF))
	t.addSingle(0x0B, uint8(WordNewline))
	t.addSingle(0x0C, uint8(WordNewline))
	t.addSingle(0x85, uint8(WordNewline))
	t.addSingle(0x2028, uint8(WordNewline))
	t.addSingle(0x2029, uint8(WordNewline))

	t.addRangeTable(unicode.Mn, uint8(WordExtend))
	t.addRangeTable(unicode.Me, uint8(WordExtend))
	t.addRangeTable(unicode.Mc, uint8(WordExtend))
	t.addRangeTable(unicode.Cf, uint8(WordFormat))
	t.addSingle(0x200D, uint8(WordZWJ))

	t.addRange(0x1F1E6, 0x1F1FF, uint8(WordRegionalIndicator))

	t.addRangeTable(unicode.Katakana, uint8(WordKatakana))

	t.addRangeTable(rangeTableFor(unicode.Hebrew, unicode.L), uint8(WordHebrewLetter))

	// ALetter: every Letter, except the Thai, Lao, Myanmar and Khmer
	// letters, which stay Other here (segment.DefaultWordProperty
	// supplies their fallback), and Katakana/Hebrew, re-staked below.
	t.addRangeTable(unicode.L, uint8(WordALetter))
	for _, script := range []*unicode.RangeTable{unicode.Thai, unicode.Lao, unicode.Myanmar, unicode.Khmer} {
		t.addRangeTable(rangeTableFor(script, unicode.L), uint8(WordOther))
	}
	// Re-apply the narrower Katakana/Hebrew classifications since L is
	// broader and was added after them; table.lookup lets the most
	// recently added matching interval win, so adding them again after
	// L restores their classification.
	t.addRangeTable(unicode.Katakana, uint8(WordKatakana))
	t.addRangeTable(rangeTableFor(unicode.Hebrew, unicode.L), uint8(WordHebrewLetter))

	t.addSingle('\'', uint8(WordSingleQuote))
	t.addSingle(0x2019, uint8(WordSingleQuote)) // RIGHT SINGLE QUOTATION MARK
	t.addSingle('"', uint8(WordDoubleQuote))
	t.addSingle(0x201C, uint8(WordDoubleQuote))
	t.addSingle(0x201D, uint8(WordDoubleQuote))

	for _, cp := range []rune{'.', 0x2018, 0x2019, 0x2024, 0xFE52, 0xFF07, 0xFF0E} {
		t.addSingle(cp, uint8(WordMidNumLet))
	}
	for _, cp := range []rune{':', 0xFE13, 0xFE55, 0xFF1A, 0x00B7, 0x0387, 0x05F4, 0x2027} {
		t.addSingle(cp, uint8(WordMidLetter))
	}
	for _, cp := range []rune{',', ';', 0x037E, 0x0589, 0x060D, 0x066C, 0xFE10, 0xFE14, 0xFF0C, 0xFF1B} {
		t.addSingle(cp, uint8(WordMidNum))
	}

	t.addRangeTable(unicode.Nd, uint8(WordNumeric))

	t.addSingle(0x202F, uint8(WordExtendNumLet)) // underscore-like connectors
	t.addSingle('_', uint8(WordExtendNumLet))

	t.addSingle(' ', uint8(WordWSegSpace))
	t.addSingle(0x3000, uint8(WordWSegSpace))

	t.finalize()
	wordTable = t
}

// rangeTableFor intersects a script table with a category table (e.g.
// "Letter in Hebrew"), used to approximate a combined property this
// package doesn't otherwise have a table for. Built with
// golang.org/x/text/unicode/rangetable.New so the result reads and
// merges exactly like the stdlib's own tables do.
func rangeTableFor(script, category *unicode.RangeTable) *unicode.RangeTable {
	var runes []rune
	walk(script, func(cp rune) {
		if unicode.Is(category, cp) {
			runes = append(runes, cp)
		}
	})
	return rangetable.New(runes...)
}

func walk(rt *unicode.RangeTable, f func(rune)) {
	for _, r := range rt.R16 {
		for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
			f(cp)
			if r.Stride == 0 {
				break
			}
		}
	}
	for _, r := range rt.R32 {
		for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
			f(cp)
			if r.Stride == 0 {
				break
			}
		}
	}
}

// Word returns the Word_Break property of cp.
func Word(cp rune) WordProperty {
	return WordProperty(wordTable.lookup(cp))
}

// DefaultWordProperty applies the tailoring fallback described for
// scripts without dictionary-based word segmentation (spec's
// supplemented "default word boundary heuristic" for South/Southeast
// Asian scripts lacking explicit spacing): any code point not
// otherwise classified but carrying a Letter/Mark general category is
// treated as ALetter, so word segmentation degrades to "one run per
// script change" instead of leaving everything as WordOther.
func DefaultWordProperty(cp rune) WordProperty {
	if p := Word(cp); p != WordOther {
		return p
	}
	if unicode.IsLetter(cp) || unicode.IsMark(cp) {
		return WordALetter
	}
	return WordOther
}
