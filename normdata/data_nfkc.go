package normdata

// Curated NFKC data: every NFC canonical entry plus a sample of
// compatibility decompositions (spec §9 Open Question: "NFKC ... A
// faithful re-implementation should either implement NFKC by analogy
// to NFC using the NFKC data tables or explicitly mark NFKC as
// unsupported" — this module takes the first option). Compatibility
// decompositions are multi-code-point mappings to plain-text
// equivalents; composition lists are not built from them, since
// compatibility mappings are one-way (spec's composition list only
// ever holds canonical equivalents).

var nfkcOnlyDecomp = []decompEntry{
	{cp: 0xFB00, mapping: []rune{'f', 'f'}},           // ﬀ
	{cp: 0xFB01, mapping: []rune{'f', 'i'}},            // ﬁ
	{cp: 0xFB02, mapping: []rune{'f', 'l'}},            // ﬂ
	{cp: 0xFB03, mapping: []rune{'f', 'f', 'i'}},       // ﬃ
	{cp: 0xFB04, mapping: []rune{'f', 'f', 'l'}},       // ﬄ
	{cp: 0x00BC, mapping: []rune{'1', 0x2044, '4'}},    // ¼
	{cp: 0x00BD, mapping: []rune{'1', 0x2044, '2'}},    // ½
	{cp: 0x00BE, mapping: []rune{'3', 0x2044, '4'}},    // ¾
	{cp: 0x00B2, mapping: []rune{'2'}},                 // ²
	{cp: 0x00B3, mapping: []rune{'3'}},                 // ³
	{cp: 0x00B9, mapping: []rune{'1'}},                 // ¹
	{cp: 0xFF21, mapping: []rune{'A'}},                 // fullwidth A
	{cp: 0xFF41, mapping: []rune{'a'}},                 // fullwidth a
	{cp: 0x2160, mapping: []rune{'I'}},                 // ROMAN NUMERAL ONE
	{cp: 0x2170, mapping: []rune{'i'}},                 // small roman numeral one
}

// BuildNFKC constructs the NormalizationData table used for NFKC,
// layering the compatibility-only mappings on top of every canonical
// NFC entry (NFKC's table is a superset of NFC's, spec §9).
func BuildNFKC() *Data {
	decomp := make([]decompEntry, 0, len(nfcDecomp)+len(nfkcOnlyDecomp))
	decomp = append(decomp, nfcDecomp...)
	decomp = append(decomp, nfkcOnlyDecomp...)
	d := build(builderInput{ccs: nfcCCs, decomp: decomp, algo: nfcAlgorithmic})
	// build registers every two-code-point mapping as a composition;
	// drop the ones that came from compatibility mappings.
	for _, e := range nfkcOnlyDecomp {
		if len(e.mapping) == 2 {
			list := d.compositions[e.mapping[0]]
			kept := list[:0]
			for _, c := range list {
				if c.Composite != e.cp {
					kept = append(kept, c)
				}
			}
			d.compositions[e.mapping[0]] = kept
		}
	}
	return d
}
