// Package normalize implements the Normalizer (spec §4.D, component
// D): NFC, FCC, and (by analogy, spec §9) NFKC composition over
// UTF-8, UTF-16, and UTF-32 code point sequences, plus the
// isNormalized quick check.
//
// Grounded on original_source's normalizer2impl.hpp for the
// fast-scan/slow-path/recompose pipeline shape, and on the
// reorderBuffer.compose()/combineHangul() logic in other_examples'
// x/text-predecessor composition.go for the recomposition scan.
package normalize

import (
	"sort"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/boxesandglue/unitext/normdata"
	"github.com/boxesandglue/unitext/reorder"
)

// Form selects the normalization form a Normalizer produces.
type Form int

const (
	FormNFC Form = iota
	FormFCC
	FormNFKC
)

// Normalizer performs NFC/FCC/NFKC composition. It owns no mutable
// per-call state beyond a ReorderingBuffer allocated per call (spec
// §3 "Lifecycle"); the same Normalizer value is safe for concurrent
// use across goroutines once constructed, since its tables are
// read-only (spec §5).
type Normalizer struct {
	data           *normdata.Data
	onlyContiguous bool
}

// New constructs a Normalizer for the given form. Table construction
// happens once, here; the returned Normalizer is reentrant.
func New(form Form) *Normalizer {
	var data *normdata.Data
	if form == FormNFKC {
		data = normdata.BuildNFKC()
	} else {
		data = normdata.BuildNFC()
	}
	return &Normalizer{data: data, onlyContiguous: form == FormFCC}
}

// NormalizeRunes normalizes a UTF-32 (decoded code point) sequence.
func (n *Normalizer) NormalizeRunes(src []rune) []rune {
	result := make([]rune, 0, len(src))
	rb := reorder.New(reorder.SinkFunc(func(r rune) { result = append(result, r) }))

	var (
		haveAnchor     bool
		anchorCP       rune
		anchorResultLen int
	)

	i := 0
	for i < len(src) {
		cp := src[i]
		norm16 := n.data.Norm16(cp)

		if cp < n.data.MinCompNoMaybeCP || normdata.IsCompYesAndZeroCC(norm16) {
			if normdata.IsHangulLV(cp) && i+1 < len(src) && normdata.IsJamoTRune(src[i+1]) {
				if composed, ok := normdata.ComposeHangulLVWithT(cp, src[i+1]); ok {
					anchorResultLen = len(result)
					result = append(result, composed)
					anchorCP, haveAnchor = composed, true
					i += 2
					continue
				}
			}
			if normdata.IsJamoLRune(cp) && i+1 < len(src) && normdata.IsJamoVRune(src[i+1]) {
				var t rune
				consumed := 2
				if i+2 < len(src) && normdata.IsJamoTRune(src[i+2]) {
					t = src[i+2]
					consumed = 3
				}
				if composed, ok := normdata.ComposeHangul(cp, src[i+1], t); ok {
					anchorResultLen = len(result)
					result = append(result, composed)
					anchorCP, haveAnchor = composed, true
					i += consumed
					continue
				}
			}
			anchorResultLen = len(result)
			result = append(result, cp)
			anchorCP, haveAnchor = cp, true
			i++
			continue
		}

		// Slow path (spec §4.D): roll back the last fast-scanned
		// starter, if any, so it's available to recompose against,
		// then decompose forward to the next composition boundary.
		release := rb.InhibitFlush()
		if haveAnchor {
			result = result[:anchorResultLen]
			n.decomposeOne(rb, anchorCP, n.data.Norm16(anchorCP))
			haveAnchor = false
		}
		for i < len(src) {
			c := src[i]
			n.decomposeOne(rb, c, n.data.Norm16(c))
			i++
			if i < len(src) {
				nextN := n.data.Norm16(src[i])
				if normdata.IsCompYesAndZeroCC(nextN) && n.data.HasCompBoundaryBefore(nextN) {
					break
				}
			}
		}
		n.recompose(rb)
		release()
		rb.Flush()

		if len(result) > 0 {
			anchorCP = result[len(result)-1]
			anchorResultLen = len(result) - 1
			haveAnchor = true
		}
	}
	return result
}

// decomposeOne expands cp into rb (spec §4.D "Decompose-to-buffer").
func (n *Normalizer) decomposeOne(rb *reorder.Buffer, cp rune, norm16 normdata.Norm16) {
	switch {
	case normdata.IsHangulSyllable(cp):
		l, v, t, hasT := normdata.DecomposeHangul(cp)
		rb.Append(l, 0)
		rb.Append(v, 0)
		if hasT {
			rb.Append(t, 0)
		}
	case normdata.IsAlgorithmicNoNo(norm16):
		mapped := n.data.MapAlgorithmic(cp, norm16)
		n.decomposeOne(rb, mapped, n.data.Norm16(mapped))
	case normdata.IsDecompNoAlgorithmic(norm16):
		m := n.data.GetMapping(norm16)
		ccs := make([]uint8, len(m.CPs))
		for i, c := range m.CPs {
			ccs[i] = normdata.CC(n.data.Norm16(c))
		}
		if !rb.AppendDecomposition(m.CPs, ccs, m.LeadCC, m.TrailCC) {
			// Unreachable given the 1024-slot scratch and the bounded
			// mapping lengths in this module's tables (spec §4.D
			// "Failure model"); fall back to per-character append so
			// behavior stays total rather than silently dropping data.
			for i, c := range m.CPs {
				rb.Append(c, ccs[i])
			}
		}
	default:
		rb.Append(cp, normdata.CC(norm16))
	}
}

// recompose scans a decomposed, canonically ordered buffer segment
// and recombines starter+combining-mark runs (spec §4.D "Recompose").
func (n *Normalizer) recompose(rb *reorder.Buffer) {
	starterIdx := -1
	if rb.Len() > 0 && rb.CCAt(0) == 0 {
		starterIdx = 0
	}
	var prevCC uint8

	i := 1
	for i < rb.Len() {
		c := rb.At(i)
		cc := rb.CCAt(i)
		canCombine := starterIdx >= 0 && (prevCC < cc || prevCC == 0)

		if canCombine {
			starter := rb.At(starterIdx)
			if normdata.IsJamoVRune(c) && normdata.IsJamoLRune(starter) {
				if composed, ok := normdata.ComposeHangul(starter, c, 0); ok {
					rb.Replace(starterIdx, composed)
					rb.Remove(i)
					continue
				}
			}
			if normdata.IsJamoTRune(c) && normdata.IsHangulLV(starter) {
				if composed, ok := normdata.ComposeHangulLVWithT(starter, c); ok {
					rb.Replace(starterIdx, composed)
					rb.Remove(i)
					continue
				}
			}
			if list := n.data.CompositionsList(starter); len(list) > 0 {
				if comp, ok := findComposite(list, c); ok {
					rb.Replace(starterIdx, comp)
					rb.Remove(i)
					continue
				}
			}
		}

		if cc == 0 {
			starterIdx = i
			prevCC = 0
			i++
			continue
		}
		if n.onlyContiguous {
			// FCC: an intervening character that didn't recompose
			// breaks contiguity; stop tracking the starter.
			starterIdx = -1
		}
		prevCC = cc
		i++
	}
}

func findComposite(list []normdata.CompEntry, trail rune) (rune, bool) {
	idx := sort.Search(len(list), func(i int) bool { return list[i].Trail >= trail })
	if idx < len(list) && list[idx].Trail == trail {
		return list[idx].Composite, true
	}
	return 0, false
}

// IsNormalizedRunes reports whether src is already in this
// Normalizer's form (spec §8 invariant 3: is_normalized(X) ==
// (normalize(X) == X)).
func (n *Normalizer) IsNormalizedRunes(src []rune) bool {
	out := n.NormalizeRunes(src)
	if len(out) != len(src) {
		return false
	}
	for i := range src {
		if out[i] != src[i] {
			return false
		}
	}
	return true
}

// NormalizeUTF8 decodes, normalizes, and re-encodes a UTF-8 byte
// sequence. Ill-formed sequences decode to U+FFFD (spec §7's
// "substitute trie error value ... treated as inert", surfaced to
// callers as the standard replacement character, per §7's optional
// U+FFFD behavior).
func (n *Normalizer) NormalizeUTF8(src []byte) []byte {
	runes := make([]rune, 0, len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		runes = append(runes, r)
		i += size
	}
	out := n.NormalizeRunes(runes)
	buf := make([]byte, 0, len(src))
	var tmp [utf8.UTFMax]byte
	for _, r := range out {
		n := utf8.EncodeRune(tmp[:], r)
		buf = append(buf, tmp[:n]...)
	}
	return buf
}

// IsNormalizedUTF8 mirrors IsNormalizedRunes for UTF-8 input.
func (n *Normalizer) IsNormalizedUTF8(src []byte) bool {
	return string(n.NormalizeUTF8(src)) == string(src)
}

// NormalizeUTF16 decodes, normalizes, and re-encodes a UTF-16 code
// unit sequence. Unpaired surrogates decode to U+FFFD.
func (n *Normalizer) NormalizeUTF16(src []uint16) []uint16 {
	runes := utf16.Decode(src)
	out := n.NormalizeRunes(runes)
	return utf16.Encode(out)
}

// IsNormalizedUTF16 mirrors IsNormalizedRunes for UTF-16 input.
func (n *Normalizer) IsNormalizedUTF16(src []uint16) bool {
	out := n.NormalizeUTF16(src)
	if len(out) != len(src) {
		return false
	}
	for i := range src {
		if out[i] != src[i] {
			return false
		}
	}
	return true
}
