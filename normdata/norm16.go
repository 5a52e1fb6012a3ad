// Package normdata implements typed accessors over a code point trie
// of packed "norm16" values plus the auxiliary decomposition and
// composition tables the Normalizer (package normalize) needs.
//
// Grounded on original_source/include/boost/text/detail/icu/normalizer2impl.hpp
// for the quick-check category scheme, and on
// boxesandglue/textshape's ot/hangul.go for the Hangul arithmetic.
package normdata

// Norm16 is the packed per-code-point value looked up in the trie. Its
// numeric ranges partition it into quick-check categories, as described
// in spec §3.
type Norm16 = uint32

// Sentinel values (spec §3).
const (
	Inert  Norm16 = 1
	JamoL  Norm16 = 2
	JamoVT Norm16 = 3
)

// Threshold constants partitioning the norm16 value space (spec §3,
// §4.B). hasCompBoundaryBefore/After are tracked per mapping-table
// entry rather than via two further threshold constants
// (minNoNoCompBoundaryBefore, minNoNoCompNoMaybeCC) — see DESIGN.md;
// MinNoNoCompBoundaryBefore and MinNoNoCompNoMaybeCC are kept as named
// aliases so callers that reason about the spec's six thresholds still
// find them, but they do not further subdivide the no-no range here.
const (
	MinYesNo   Norm16 = 0x0100 // [MinYesNo, MinNoNo): yes, nonzero cc
	MinNoNo    Norm16 = 0x0200 // [MinNoNo, LimitNoNo): no-no, table mapping
	LimitNoNo  Norm16 = 0x0280 // [LimitNoNo, MinMaybeYes): algorithmic no-no
	MinMaybeYes Norm16 = 0x0300 // [MinMaybeYes, ..): maybe-yes (may combine backward)

	MinNoNoCompBoundaryBefore = MinNoNo
	MinNoNoCompNoMaybeCC      = LimitNoNo
)

// IsCompYesAndZeroCC reports whether norm16 denotes a code point that
// is already composed and has combining class zero: such code points
// may be copied to the output unchanged by the composer's fast scan.
func IsCompYesAndZeroCC(n Norm16) bool {
	return n < MinYesNo
}

// IsMaybeOrNonZeroCC reports whether norm16 denotes either a
// maybe-combining starter or a code point with nonzero combining
// class (both participate in the slow path / reordering).
func IsMaybeOrNonZeroCC(n Norm16) bool {
	return n >= MinMaybeYes || (n >= MinYesNo && n < MinNoNo)
}

// IsDecompNoAlgorithmic reports whether norm16 denotes a table-driven
// (non-algorithmic) no-no mapping.
func IsDecompNoAlgorithmic(n Norm16) bool {
	return n >= MinNoNo && n < LimitNoNo
}

// IsAlgorithmicNoNo reports whether norm16 denotes an algorithmic-no-no
// (decomposition by signed delta rather than table lookup).
func IsAlgorithmicNoNo(n Norm16) bool {
	return n >= LimitNoNo && n < MinMaybeYes
}

// IsMaybeYes reports whether norm16 denotes a maybe-combining starter.
func IsMaybeYes(n Norm16) bool {
	return n >= MinMaybeYes
}

// IsJamoL reports the jamoL sentinel.
func IsJamoL(n Norm16) bool { return n == JamoL }

// IsJamoVT reports the jamoVT sentinel (covers both V and T jamos,
// which never need to be told apart by norm16 alone — IsJamoVRune and
// IsJamoTRune in this package disambiguate by code point when needed).
func IsJamoVT(n Norm16) bool { return n == JamoVT }

// CC returns the canonical combining class encoded directly in a
// yes-yes-with-cc norm16 value, or 0 for any other category.
func CC(n Norm16) uint8 {
	if n >= MinYesNo && n < MinNoNo {
		return uint8(n - MinYesNo)
	}
	return 0
}
