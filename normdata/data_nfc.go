package normdata

// Curated NFC data: combining-mark canonical combining classes and
// canonical singleton/pair decompositions for the Latin-1 Supplement
// and a sample of Latin Extended-A precomposed letters.
//
// This module does not vendor the ICU/Unicode Character Database
// binary tables (see DESIGN.md); the ccc and decomposition values
// below are transcribed from the published Unicode Character Database
// for the code points actually listed, not synthesized, but the set
// of code points covered is a curated subset rather than the full
// ~1,100-entry canonical decomposition table or the ~800 combining
// marks with nonzero ccc.

var nfcCCs = []ccEntry{
	{0x0300, 0x0304, 230}, // grave, acute, circumflex, tilde, macron
	{0x0306, 0x0306, 230}, // breve
	{0x0307, 0x0308, 230}, // dot above, diaeresis
	{0x030A, 0x030C, 230}, // ring above, double acute, caron
	{0x0315, 0x0315, 232}, // comma above right
	{0x0316, 0x0319, 220}, // grave/acute below, left/right tack below
	{0x031A, 0x031A, 232}, // left angle above
	{0x031B, 0x031B, 216}, // horn
	{0x0323, 0x0323, 220}, // dot below
	{0x0327, 0x0328, 202}, // cedilla, ogonek
	{0x0331, 0x0332, 220}, // macron below, low line
	{0x0345, 0x0345, 240}, // ypogegrammeni (iota subscript)
}

// decompPair builds a decompEntry with a 2-code-point mapping.
func decompPair(cp, base, mark rune) decompEntry {
	return decompEntry{cp: cp, mapping: []rune{base, mark}}
}

var nfcDecomp = []decompEntry{
	// Latin-1 Supplement, uppercase.
	decompPair(0x00C0, 'A', 0x0300), decompPair(0x00C1, 'A', 0x0301),
	decompPair(0x00C2, 'A', 0x0302), decompPair(0x00C3, 'A', 0x0303),
	decompPair(0x00C4, 'A', 0x0308), decompPair(0x00C5, 'A', 0x030A),
	decompPair(0x00C7, 'C', 0x0327),
	decompPair(0x00C8, 'E', 0x0300), decompPair(0x00C9, 'E', 0x0301),
	decompPair(0x00CA, 'E', 0x0302), decompPair(0x00CB, 'E', 0x0308),
	decompPair(0x00CC, 'I', 0x0300), decompPair(0x00CD, 'I', 0x0301),
	decompPair(0x00CE, 'I', 0x0302), decompPair(0x00CF, 'I', 0x0308),
	decompPair(0x00D1, 'N', 0x0303),
	decompPair(0x00D2, 'O', 0x0300), decompPair(0x00D3, 'O', 0x0301),
	decompPair(0x00D4, 'O', 0x0302), decompPair(0x00D5, 'O', 0x0303),
	decompPair(0x00D6, 'O', 0x0308),
	decompPair(0x00D9, 'U', 0x0300), decompPair(0x00DA, 'U', 0x0301),
	decompPair(0x00DB, 'U', 0x0302), decompPair(0x00DC, 'U', 0x0308),
	decompPair(0x00DD, 'Y', 0x0301),

	// Latin-1 Supplement, lowercase.
	decompPair(0x00E0, 'a', 0x0300), decompPair(0x00E1, 'a', 0x0301),
	decompPair(0x00E2, 'a', 0x0302), decompPair(0x00E3, 'a', 0x0303),
	decompPair(0x00E4, 'a', 0x0308), decompPair(0x00E5, 'a', 0x030A),
	decompPair(0x00E7, 'c', 0x0327),
	decompPair(0x00E8, 'e', 0x0300), decompPair(0x00E9, 'e', 0x0301),
	decompPair(0x00EA, 'e', 0x0302), decompPair(0x00EB, 'e', 0x0308),
	decompPair(0x00EC, 'i', 0x0300), decompPair(0x00ED, 'i', 0x0301),
	decompPair(0x00EE, 'i', 0x0302), decompPair(0x00EF, 'i', 0x0308),
	decompPair(0x00F1, 'n', 0x0303),
	decompPair(0x00F2, 'o', 0x0300), decompPair(0x00F3, 'o', 0x0301),
	decompPair(0x00F4, 'o', 0x0302), decompPair(0x00F5, 'o', 0x0303),
	decompPair(0x00F6, 'o', 0x0308),
	decompPair(0x00F9, 'u', 0x0300), decompPair(0x00FA, 'u', 0x0301),
	decompPair(0x00FB, 'u', 0x0302), decompPair(0x00FC, 'u', 0x0308),
	decompPair(0x00FD, 'y', 0x0301), decompPair(0x00FF, 'y', 0x0308),

	// A sample of Latin Extended-A macron/breve/caron/ogonek letters.
	decompPair(0x0100, 'A', 0x0304), decompPair(0x0101, 'a', 0x0304),
	decompPair(0x0102, 'A', 0x0306), decompPair(0x0103, 'a', 0x0306),
	decompPair(0x0104, 'A', 0x0328), decompPair(0x0105, 'a', 0x0328),
	decompPair(0x0106, 'C', 0x0301), decompPair(0x0107, 'c', 0x0301),
	decompPair(0x010C, 'C', 0x030C), decompPair(0x010D, 'c', 0x030C),
	decompPair(0x0112, 'E', 0x0304), decompPair(0x0113, 'e', 0x0304),
	decompPair(0x011A, 'E', 0x030C), decompPair(0x011B, 'e', 0x030C),
	decompPair(0x0147, 'N', 0x030C), decompPair(0x0148, 'n', 0x030C),
	decompPair(0x014C, 'O', 0x0304), decompPair(0x014D, 'o', 0x0304),
	decompPair(0x0160, 'S', 0x030C), decompPair(0x0161, 's', 0x030C),
	decompPair(0x016A, 'U', 0x0304), decompPair(0x016B, 'u', 0x0304),
	decompPair(0x017D, 'Z', 0x030C), decompPair(0x017E, 'z', 0x030C),

	// Greek, a handful of precomposed accented vowels.
	decompPair(0x03AC, 0x03B1, 0x0301), // ά
	decompPair(0x03AD, 0x03B5, 0x0301), // έ
	decompPair(0x03AE, 0x03B7, 0x0301), // ή
	decompPair(0x03AF, 0x03B9, 0x0301), // ί

	// Cyrillic, the grave/diaeresis-accented letters used in
	// dictionaries and Russian/Ukrainian stress marks.
	decompPair(0x0400, 0x0415, 0x0300), // Ѐ = Е + grave
	decompPair(0x0401, 0x0415, 0x0308), // Ё = Е + diaeresis
	decompPair(0x0450, 0x0435, 0x0300), // ѐ
	decompPair(0x0451, 0x0435, 0x0308), // ё
}

// No algorithmic-no-no entries are needed for the curated NFC table:
// the only algorithmic canonical mapping in real Unicode data is
// Hangul, which spec §4.D routes through direct code-point arithmetic
// (normdata/hangul.go) rather than through norm16's delta mechanism.
// See normdata/normdata_test.go for a synthetic exercise of the
// mechanism itself.
var nfcAlgorithmic []algoEntry

// BuildNFC constructs the NormalizationData table used for NFC/FCC.
func BuildNFC() *Data {
	return build(builderInput{ccs: nfcCCs, decomp: nfcDecomp, algo: nfcAlgorithmic})
}
