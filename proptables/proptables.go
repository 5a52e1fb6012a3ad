// Package proptables implements PropertyTables (spec §4.E, component
// E): per-code-point classification into the property enumerations
// the segmentation engines (package segment) switch on — UAX #29
// grapheme/word/sentence break properties and UAX #14 line break
// classes. Bidi_Class classification lives in bidiclass.go, backed
// directly by golang.org/x/text/unicode/bidi rather than a curated
// table, since that package already ships a complete, correct
// implementation of exactly this lookup.
//
// Grounded on boxesandglue/textshape's ot/unicode_category.go for the
// "classify by checking a sequence of unicode.RangeTable membership
// tests, falling through to a default" shape, generalized from
// General_Category to the break-property enumerations this module
// needs. Script-and-Letter intersections (word.go's rangeTableFor) are
// built at init time with golang.org/x/text/unicode/rangetable; the
// other curated sets (e.g. Extended_Pictographic) are plain interval
// lists.
package proptables

import "unicode"

// interval is one contiguous run of code points sharing a property
// value.
type interval struct {
	lo, hi rune
	val    uint8
}

// table is an insertion-ordered list of possibly overlapping intervals
// (the most recently added match wins, see lookup) plus a singleton
// overlay for individual code points that don't belong to a wider
// run — mirroring the two-tier shape of the corpus's own
// "hash map for the odd ones out, range list for everything else"
// designs (package ucptrie's block table is the same idea at a
// different granularity).
type table struct {
	singles   map[rune]uint8
	intervals []interval
	def       uint8
}

func newTable(def uint8) *table {
	return &table{singles: make(map[rune]uint8), def: def}
}

func (t *table) addSingle(cp rune, val uint8) { t.singles[cp] = val }

func (t *table) addRange(lo, hi rune, val uint8) {
	t.intervals = append(t.intervals, interval{lo, hi, val})
}

// addRangeTable pulls every run out of an *unicode.RangeTable (stdlib
// category tables, or one built by golang.org/x/text/unicode/rangetable)
// into this table under a single property value. A run with Stride 1
// is kept as a single interval; a strided run (rare — a handful of
// stdlib tables alternate code points) is expanded one code point at a
// time so the interval list stays exact without ballooning for the
// overwhelmingly common unstrided case.
func (t *table) addRangeTable(rt *unicode.RangeTable, val uint8) {
	for _, r := range rt.R16 {
		if r.Stride == 1 {
			t.intervals = append(t.intervals, interval{rune(r.Lo), rune(r.Hi), val})
			continue
		}
		for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
			t.intervals = append(t.intervals, interval{cp, cp, val})
		}
	}
	for _, r := range rt.R32 {
		if r.Stride == 1 {
			t.intervals = append(t.intervals, interval{rune(r.Lo), rune(r.Hi), val})
			continue
		}
		for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
			t.intervals = append(t.intervals, interval{cp, cp, val})
		}
	}
}

// finalize is a no-op placeholder kept so call sites read the same
// "build, then finalize" shape as package normdata's build(); this
// table's lookup scans in reverse insertion order instead of relying
// on a sorted, non-overlapping layout (see lookup).
func (t *table) finalize() {}

// lookup walks intervals from most- to least-recently added so a
// later, narrower addRange/addRangeTable call (e.g. re-staking
// Katakana out of a broader Letter range) takes priority over an
// earlier, wider one — "last write wins" for overlapping ranges,
// same as a map assignment would give for the singles overlay. With
// this package's curated, sub-UCD-sized tables a linear scan is cheap
// enough; see DESIGN.md.
func (t *table) lookup(cp rune) uint8 {
	if v, ok := t.singles[cp]; ok {
		return v
	}
	for i := len(t.intervals) - 1; i >= 0; i-- {
		if t.intervals[i].lo <= cp && cp <= t.intervals[i].hi {
			return t.intervals[i].val
		}
	}
	return t.def
}
