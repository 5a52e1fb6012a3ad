package normdata

import (
	"sort"

	"github.com/boxesandglue/unitext/ucptrie"
)

// Mapping is a decomposition: a short sequence of code points replacing
// a no-no code point, plus the combining classes of its first and last
// members (spec §3 "Decomposition mapping").
type Mapping struct {
	CPs     []rune
	LeadCC  uint8
	TrailCC uint8
}

// CompEntry is one (trail, composite) pair in a starter's composition
// list (spec §3 "Composition list").
type CompEntry struct {
	Trail     rune
	Composite rune
}

// Data is the typed view over a code point trie plus its auxiliary
// mapping/composition tables — component B, NormalizationData.
type Data struct {
	trie         *ucptrie.Trie
	mappings     []Mapping
	deltas       []int32 // algorithmic-no-no signed deltas, indexed by (norm16-LimitNoNo)
	compositions map[rune][]CompEntry

	// MinCompNoMaybeCP is the lowest code point that is not trivially
	// yes-and-zero-cc; the Normalizer's fast scan compares against it
	// before falling back to a full norm16 lookup (spec §4.D).
	MinCompNoMaybeCP rune
}

type ccEntry struct {
	lo, hi rune
	cc     uint8
}

type decompEntry struct {
	cp      rune
	mapping []rune
}

type algoEntry struct {
	cp    rune
	delta int32
}

// builderInput bundles the curated per-form data tables (data_nfc.go,
// data_nfkc.go) so build can assemble the trie, mappings, and
// composition lists from them.
type builderInput struct {
	ccs    []ccEntry
	decomp []decompEntry
	algo   []algoEntry
}

func build(in builderInput) *Data {
	tb := ucptrie.NewBuilder(0, uint32(Inert))

	d := &Data{
		mappings:     nil,
		compositions: make(map[rune][]CompEntry),
	}

	ccOf := func(cp rune) uint8 {
		for _, e := range in.ccs {
			if cp >= e.lo && cp <= e.hi {
				return e.cc
			}
		}
		return 0
	}

	// Combining marks: yes-yes-with-cc, norm16 = MinYesNo + cc.
	for _, e := range in.ccs {
		for cp := e.lo; cp <= e.hi; cp++ {
			tb.Set(cp, uint32(MinYesNo)+uint32(e.cc))
		}
	}

	// Jamo ranges: sentinel values, independent of the cc table.
	tb.SetRange(LBase, LBase+LCount-1, uint32(JamoL))
	tb.SetRange(0xA960, 0xA97C, uint32(JamoL))
	tb.SetRange(VBase, VBase+VCount-1, uint32(JamoVT))
	tb.SetRange(TBase+1, TBase+TCount-1, uint32(JamoVT))
	tb.SetRange(0xD7B0, 0xD7C6, uint32(JamoVT))
	tb.SetRange(0xD7CB, 0xD7FB, uint32(JamoVT))

	// Table-driven (no-no) canonical/compatibility decompositions.
	minCompNoMaybe := rune(-1)
	for _, e := range in.decomp {
		mapping := Mapping{CPs: e.mapping}
		mapping.LeadCC = ccOf(e.mapping[0])
		mapping.TrailCC = ccOf(e.mapping[len(e.mapping)-1])
		idx := len(d.mappings)
		d.mappings = append(d.mappings, mapping)
		tb.Set(e.cp, uint32(MinNoNo)+uint32(idx))

		if minCompNoMaybe < 0 || e.cp < minCompNoMaybe {
			minCompNoMaybe = e.cp
		}

		// A canonical singleton/pair decomposition whose first member
		// has cc 0 recomposes: register the composite in its base's
		// composition list (spec §3 "Composition list", §4.D recompose).
		if len(e.mapping) == 2 && mapping.LeadCC == 0 {
			base, mark := e.mapping[0], e.mapping[1]
			d.compositions[base] = append(d.compositions[base], CompEntry{Trail: mark, Composite: e.cp})
		}
	}

	// Algorithmic-no-no entries: norm16 = LimitNoNo + index, delta
	// stored out of band (spec §4.B mapAlgorithmic).
	for _, e := range in.algo {
		idx := len(d.deltas)
		d.deltas = append(d.deltas, e.delta)
		tb.Set(e.cp, uint32(LimitNoNo)+uint32(idx))
		if minCompNoMaybe < 0 || e.cp < minCompNoMaybe {
			minCompNoMaybe = e.cp
		}
	}

	if minCompNoMaybe < 0 {
		minCompNoMaybe = 0x110000
	}
	// Combining marks are themselves "not obviously yes" for the fast
	// scan too.
	for _, e := range in.ccs {
		if e.lo < minCompNoMaybe {
			minCompNoMaybe = e.lo
		}
	}
	d.MinCompNoMaybeCP = minCompNoMaybe

	for base, list := range d.compositions {
		sort.Slice(list, func(i, j int) bool { return list[i].Trail < list[j].Trail })
		d.compositions[base] = list
	}

	d.trie = tb.Build(ucptrie.ValueWidth32)
	return d
}

// Norm16 returns the packed category value for cp. Lead surrogates are
// forced to Inert (spec §4.B); other surrogates and out-of-range code
// points pass through the trie's own error handling.
func (d *Data) Norm16(cp rune) Norm16 {
	if cp >= 0xD800 && cp <= 0xDBFF {
		return Inert
	}
	return d.trie.Get(cp)
}

// LeadCC returns the combining class of the first code point a no-no
// mapping decomposes to, or the direct cc for a yes-yes-with-cc value.
func (d *Data) LeadCC(n Norm16) uint8 {
	if IsDecompNoAlgorithmic(n) {
		return d.mappings[n-MinNoNo].LeadCC
	}
	return CC(n)
}

// TrailCC mirrors LeadCC for the last code point of a mapping.
func (d *Data) TrailCC(n Norm16) uint8 {
	if IsDecompNoAlgorithmic(n) {
		return d.mappings[n-MinNoNo].TrailCC
	}
	return CC(n)
}

// GetMapping returns the decomposition mapping for a table-driven
// no-no norm16 value.
func (d *Data) GetMapping(n Norm16) Mapping {
	if IsDecompNoAlgorithmic(n) {
		return d.mappings[n-MinNoNo]
	}
	return Mapping{}
}

// MapAlgorithmic applies the signed delta encoded in an
// algorithmic-no-no norm16 value to cp.
func (d *Data) MapAlgorithmic(cp rune, n Norm16) rune {
	if !IsAlgorithmicNoNo(n) {
		return cp
	}
	return cp + rune(d.deltas[n-LimitNoNo])
}

// HasCompBoundaryBefore reports whether a composition boundary exists
// immediately before a code point of this norm16 category (spec
// §4.B): the composer never needs to look further back across it.
func (d *Data) HasCompBoundaryBefore(n Norm16) bool {
	switch {
	case IsCompYesAndZeroCC(n):
		return true
	case IsDecompNoAlgorithmic(n):
		return d.mappings[n-MinNoNo].LeadCC == 0
	case IsAlgorithmicNoNo(n):
		return true
	default:
		return false
	}
}

// HasCompBoundaryAfter reports whether a composition boundary exists
// immediately after a code point of this norm16 category. In
// onlyContiguous (FCC) mode the boundary additionally requires a zero
// trailing combining class.
func (d *Data) HasCompBoundaryAfter(n Norm16, onlyContiguous bool) bool {
	switch {
	case IsCompYesAndZeroCC(n):
		return true
	case IsDecompNoAlgorithmic(n):
		m := d.mappings[n-MinNoNo]
		if onlyContiguous {
			return m.TrailCC == 0
		}
		return true
	case IsAlgorithmicNoNo(n):
		return true
	default:
		return false
	}
}

// CompositionsList returns the sorted (trail, composite) list for a
// starter code point, or nil if cp never combines forward.
func (d *Data) CompositionsList(cp rune) []CompEntry {
	return d.compositions[cp]
}
