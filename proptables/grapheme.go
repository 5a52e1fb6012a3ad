package proptables

import "unicode"

// GraphemeProperty is the UAX #29 Grapheme_Cluster_Break property
// value a code point carries, used by the grapheme segmenter's GB1-GB999
// rules.
type GraphemeProperty uint8

const (
	GraphemeOther GraphemeProperty = iota
	GraphemeCR
	GraphemeLF
	GraphemeControl
	GraphemeExtend
	GraphemeZWJ
	GraphemeRegionalIndicator
	GraphemePrepend
	GraphemeSpacingMark
	GraphemeL
	GraphemeV
	GraphemeT
	GraphemeLV
	GraphemeLVT
)

var graphemeTable *table

func init() {
	t := newTable(uint8(GraphemeOther))

	t.addSingle('\r', uint8(GraphemeCR))
	t.addSingle('\n', uint8(GraphemeLF))

	// Control: Cc, Cf (except the ZWJ/ZWNJ format chars below), Zl, Zp.
	// Noncharacters and unassigned code points are not folded into
	// Control; they read as Other.
	t.addRangeTable(unicode.Cc, uint8(GraphemeControl))
	t.addRangeTable(unicode.Zl, uint8(GraphemeControl))
	t.addRangeTable(unicode.Zp, uint8(GraphemeControl))
	t.addRangeTable(unicode.Cf, uint8(GraphemeControl))

	// Extend: nonspacing and enclosing marks (Mn, Me); every spacing
	// combining mark (Mc) is SpacingMark.
	t.addRangeTable(unicode.Mn, uint8(GraphemeExtend))
	t.addRangeTable(unicode.Me, uint8(GraphemeExtend))
	t.addRangeTable(unicode.Mc, uint8(GraphemeSpacingMark))

	t.addSingle(0x200D, uint8(GraphemeZWJ))    // ZERO WIDTH JOINER
	t.addSingle(0x200C, uint8(GraphemeExtend)) // ZERO WIDTH NON-JOINER

	t.addRange(0x1F1E6, 0x1F1FF, uint8(GraphemeRegionalIndicator))

	// Prepend: Arabic number sign and a handful of other prepended
	// format controls (curated subset; full UAX #29 Prepend set is
	// small and dominated by South/Southeast Asian preposed vowel
	// signs not covered here).
	t.addSingle(0x0600, uint8(GraphemePrepend))
	t.addSingle(0x0601, uint8(GraphemePrepend))
	t.addSingle(0x0602, uint8(GraphemePrepend))
	t.addSingle(0x0603, uint8(GraphemePrepend))
	t.addSingle(0x06DD, uint8(GraphemePrepend))
	t.addSingle(0x110BD, uint8(GraphemePrepend))

	// Hangul jamo, overriding the Extend/Other defaults above for
	// this range.
	t.addRange(0x1100, 0x1112, uint8(GraphemeL))
	t.addRange(0xA960, 0xA97C, uint8(GraphemeL))
	t.addRange(0x1161, 0x1175, uint8(GraphemeV))
	t.addRange(0xD7B0, 0xD7C6, uint8(GraphemeV))
	t.addRange(0x11A8, 0x11C2, uint8(GraphemeT))
	t.addRange(0xD7CB, 0xD7FB, uint8(GraphemeT))
	for s := rune(0xAC00); s < 0xAC00+11172; s += 28 {
		t.addRange(s, s, uint8(GraphemeLV))
	}
	// The loop above only covers the first code point of every
	// 28-wide syllable block (T index 0, i.e. LV); the remaining 27
	// in each block are LVT.
	for base := rune(0xAC00); base < 0xAC00+11172; base += 28 {
		t.addRange(base+1, base+27, uint8(GraphemeLVT))
	}

	t.finalize()
	graphemeTable = t
}

// Grapheme returns the Grapheme_Cluster_Break property of cp.
func Grapheme(cp rune) GraphemeProperty {
	return GraphemeProperty(graphemeTable.lookup(cp))
}

// extendedPictographicRanges is a curated subset of Extended_Pictographic
// (emoji-presentation base characters), enough to drive GB11's
// "Extended_Pictographic Extend* ZWJ x Extended_Pictographic" rule for
// common ZWJ emoji sequences. The full Unicode emoji-data.txt property
// is generated, not hand-maintained; see DESIGN.md.
var extendedPictographicRanges = []interval{
	{0x2600, 0x27BF, 1},
	{0x1F300, 0x1FAFF, 1},
	{0x2190, 0x21FF, 1},
}

// IsExtendedPictographic reports whether cp carries the
// Extended_Pictographic property (used by GB11 emoji ZWJ sequences).
func IsExtendedPictographic(cp rune) bool {
	for _, r := range extendedPictographicRanges {
		if cp >= r.lo && cp <= r.hi {
			return true
		}
	}
	return false
}
