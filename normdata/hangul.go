package normdata

// Hangul jamo/syllable arithmetic (spec §3 "Hangul syllables",
// §4.B isJamoL/isJamoVT/isHangulLV/isHangulLVT, §4.D step 2/3).
//
// Grounded on boxesandglue/textshape's ot/hangul.go (jamo range
// constants and composition arithmetic) and on the Hangul handling in
// the Go x/text-derived reorderBuffer (other_examples
// .../composition.go's decomposeHangul/combineHangul), adapted from
// UTF-8 byte arithmetic to direct rune arithmetic since this module
// operates on decoded code points, not raw UTF-8 bytes.
const (
	LBase = 0x1100
	VBase = 0x1161
	TBase = 0x11A7
	SBase = 0xAC00

	LCount = 19
	VCount = 21
	TCount = 28
	NCount = VCount * TCount // 588
	SCount = LCount * NCount // 11172
)

// IsJamoLRune reports whether cp is one of the 19 composable Leading Jamo.
func IsJamoLRune(cp rune) bool { return cp >= LBase && cp < LBase+LCount }

// IsJamoVRune reports whether cp is one of the 21 composable Vowel Jamo.
func IsJamoVRune(cp rune) bool { return cp >= VBase && cp < VBase+VCount }

// IsJamoTRune reports whether cp is one of the 27 composable Trailing
// Jamo (T index 0 means "no trailing jamo" and is not itself a
// character).
func IsJamoTRune(cp rune) bool { return cp > TBase && cp < TBase+TCount }

// IsHangulLV reports whether cp is a precomposed LV syllable (trailing
// jamo index 0): these can still combine forward with a following
// Jamo T.
func IsHangulLV(cp rune) bool {
	if cp < SBase || cp >= SBase+SCount {
		return false
	}
	return (cp-SBase)%TCount == 0
}

// IsHangulLVT reports whether cp is a precomposed LVT syllable.
func IsHangulLVT(cp rune) bool {
	if cp < SBase || cp >= SBase+SCount {
		return false
	}
	return (cp-SBase)%TCount != 0
}

// IsHangulSyllable reports whether cp is any precomposed Hangul
// syllable (LV or LVT).
func IsHangulSyllable(cp rune) bool { return cp >= SBase && cp < SBase+SCount }

// ComposeHangul composes an L, V, and optional T jamo into a
// precomposed syllable. ok is false if l/v are not in the composable
// jamo ranges.
func ComposeHangul(l, v, t rune) (cp rune, ok bool) {
	if !IsJamoLRune(l) || !IsJamoVRune(v) {
		return 0, false
	}
	lIndex := l - LBase
	vIndex := v - VBase
	var tIndex rune
	if t != 0 {
		if !IsJamoTRune(t) {
			return 0, false
		}
		tIndex = t - TBase
	}
	return SBase + lIndex*NCount + vIndex*TCount + tIndex, true
}

// ComposeHangulLVWithT composes a Hangul LV syllable with a following
// Jamo T into an LVT syllable.
func ComposeHangulLVWithT(lv, t rune) (cp rune, ok bool) {
	if !IsHangulLV(lv) || !IsJamoTRune(t) {
		return 0, false
	}
	return lv + (t - TBase), true
}

// DecomposeHangul splits a precomposed Hangul syllable into its L, V,
// and (if present) T jamo. hasT is false for LV syllables.
func DecomposeHangul(cp rune) (l, v, t rune, hasT bool) {
	sIndex := cp - SBase
	l = LBase + sIndex/NCount
	v = VBase + (sIndex%NCount)/TCount
	tIndex := sIndex % TCount
	if tIndex == 0 {
		return l, v, 0, false
	}
	return l, v, TBase + tIndex, true
}
