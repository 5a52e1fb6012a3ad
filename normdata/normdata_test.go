package normdata

import "testing"

func TestBuildNFCBasicLookups(t *testing.T) {
	d := BuildNFC()

	// 'A' is an ordinary starter: default norm16, yes-and-zero-cc.
	if n := d.Norm16('A'); !IsCompYesAndZeroCC(n) {
		t.Fatalf("Norm16('A') = %#x, want yes-and-zero-cc", n)
	}

	// U+0301 (combining acute) must carry ccc 230 and participate in
	// reordering.
	n := d.Norm16(0x0301)
	if !IsMaybeOrNonZeroCC(n) {
		t.Fatalf("Norm16(U+0301) = %#x, want yes-yes-with-cc", n)
	}
	if cc := CC(n); cc != 230 {
		t.Fatalf("CC(U+0301) = %d, want 230", cc)
	}

	// U+00E9 (é) decomposes to e + U+0301.
	n = d.Norm16(0x00E9)
	if !IsDecompNoAlgorithmic(n) {
		t.Fatalf("Norm16(U+00E9) = %#x, want no-no", n)
	}
	m := d.GetMapping(n)
	if len(m.CPs) != 2 || m.CPs[0] != 'e' || m.CPs[1] != 0x0301 {
		t.Fatalf("GetMapping(U+00E9) = %v, want [e, U+0301]", m.CPs)
	}
	if m.LeadCC != 0 || m.TrailCC != 230 {
		t.Fatalf("GetMapping(U+00E9) LeadCC/TrailCC = %d/%d, want 0/230", m.LeadCC, m.TrailCC)
	}

	// 'e' must combine forward with U+0301 to form é.
	list := d.CompositionsList('e')
	found := false
	for _, e := range list {
		if e.Trail == 0x0301 && e.Composite == 0x00E9 {
			found = true
		}
	}
	if !found {
		t.Fatalf("CompositionsList('e') = %v, want an entry for (U+0301 -> U+00E9)", list)
	}
}

func TestAlgorithmicNoNoMechanism(t *testing.T) {
	// Synthetic table exercising the algorithmic-no-no path directly,
	// since no entry in the curated NFC data needs it (Hangul is
	// handled by direct arithmetic instead, see data_nfc.go).
	d := build(builderInput{
		algo: []algoEntry{{cp: 0x2460, delta: -0x242F}}, // ① -> '1' (0x0031)
	})
	n := d.Norm16(0x2460)
	if !IsAlgorithmicNoNo(n) {
		t.Fatalf("Norm16(U+2460) = %#x, want algorithmic-no-no", n)
	}
	if got := d.MapAlgorithmic(0x2460, n); got != '1' {
		t.Fatalf("MapAlgorithmic(U+2460) = %#x, want '1'", got)
	}
}

func TestHangulArithmetic(t *testing.T) {
	cp, ok := ComposeHangul(0x1100, 0x1161, 0)
	if !ok || cp != 0xAC00 {
		t.Fatalf("ComposeHangul(L,V) = (%#x, %v), want (0xAC00, true)", cp, ok)
	}
	if !IsHangulLV(cp) {
		t.Fatalf("IsHangulLV(0xAC00) = false, want true")
	}
	cp2, ok2 := ComposeHangulLVWithT(cp, 0x11A8)
	if !ok2 || cp2 != 0xAC01 {
		t.Fatalf("ComposeHangulLVWithT = (%#x, %v), want (0xAC01, true)", cp2, ok2)
	}
	if !IsHangulLVT(cp2) {
		t.Fatalf("IsHangulLVT(0xAC01) = false, want true")
	}
	l, v, tr, hasT := DecomposeHangul(cp2)
	if l != 0x1100 || v != 0x1161 || tr != 0x11A8 || !hasT {
		t.Fatalf("DecomposeHangul(0xAC01) = (%#x,%#x,%#x,%v), want (0x1100,0x1161,0x11A8,true)", l, v, tr, hasT)
	}
}
