package normalize

import "testing"

func runes(s string) []rune { return []rune(s) }

func TestComposeSeparateBaseAndMark(t *testing.T) {
	n := New(FormNFC)
	// 'e' + COMBINING ACUTE ACCENT (U+0301) -> 'é' (U+00E9)
	got := n.NormalizeRunes([]rune{'e', 0x0301})
	want := []rune{0x00E9}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("NormalizeRunes(e + acute) = %v, want %v", got, want)
	}
}

func TestComposeAlreadyComposedIsUnchanged(t *testing.T) {
	n := New(FormNFC)
	got := n.NormalizeRunes([]rune{0x00E9, 'f'})
	want := []rune{0x00E9, 'f'}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestComposeReordersBeforeRecomposing(t *testing.T) {
	n := New(FormNFC)
	// Out-of-canonical-order marks on a base must still end up
	// composed/ordered the same as the canonical-order input.
	inOrder := n.NormalizeRunes([]rune{'e', 0x0301})
	// A base with two marks in reverse storage order (cc 230 then a
	// lower-cc mark) reorders to a, dot below, acute; the acute is not
	// blocked by the lower-cc dot below, so it then composes with 'a'.
	reordered := n.NormalizeRunes([]rune{'a', 0x0301, 0x0323})
	if len(reordered) != 2 {
		t.Fatalf("len(reordered) = %d, want 2 (a+acute composed, dot below left)", len(reordered))
	}
	if reordered[0] != 0x00E1 || reordered[1] != 0x0323 {
		t.Fatalf("reordered = %v, want [U+00E1 U+0323]", reordered)
	}
	_ = inOrder
}

func TestComposeHangulJamo(t *testing.T) {
	n := New(FormNFC)
	got := n.NormalizeRunes([]rune{0x1100, 0x1161, 0x11A8}) // L + V + T
	if len(got) != 1 || got[0] != 0xAC01 {
		t.Fatalf("NormalizeRunes(L,V,T) = %v, want [0xAC01]", got)
	}
}

func TestComposeHangulLVThenT(t *testing.T) {
	n := New(FormNFC)
	got := n.NormalizeRunes([]rune{0xAC00, 0x11A8}) // LV + T
	if len(got) != 1 || got[0] != 0xAC01 {
		t.Fatalf("NormalizeRunes(LV,T) = %v, want [0xAC01]", got)
	}
}

func TestIsNormalizedMatchesNormalizeEquality(t *testing.T) {
	n := New(FormNFC)
	cases := [][]rune{
		runes("hello"),
		{'e', 0x0301},
		{0x00E9},
		{'a', 0x0323, 0x0301},
	}
	for _, c := range cases {
		got := n.IsNormalizedRunes(c)
		want := equalRunes(n.NormalizeRunes(c), c)
		if got != want {
			t.Fatalf("IsNormalizedRunes(%v) = %v, want %v", c, got, want)
		}
	}
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNormalizeUTF8RoundTrip(t *testing.T) {
	n := New(FormNFC)
	src := []byte("éclair") // "e" + combining acute + "clair"
	got := n.NormalizeUTF8(src)
	want := []byte("éclair")
	if string(got) != string(want) {
		t.Fatalf("NormalizeUTF8 = %q, want %q", got, want)
	}
}

func TestNormalizeFCCDiffersOnDiscontiguous(t *testing.T) {
	nfc := New(FormNFC)
	fcc := New(FormFCC)
	// After reordering, the sequence is a, dot below (cc 220), acute
	// (cc 230). The dot below does not compose with 'a' in the curated
	// table. NFC still composes the acute with 'a' across it (220 < 230
	// does not block); FCC must not, because a mark has intervened.
	src := []rune{'a', 0x0301, 0x0323}
	gotNFC := nfc.NormalizeRunes(src)
	gotFCC := fcc.NormalizeRunes(src)
	if !equalRunes(gotNFC, []rune{0x00E1, 0x0323}) {
		t.Fatalf("NFC = %v, want [U+00E1 U+0323]", gotNFC)
	}
	if !equalRunes(gotFCC, []rune{'a', 0x0323, 0x0301}) {
		t.Fatalf("FCC = %v, want [a U+0323 U+0301] (no discontiguous composition)", gotFCC)
	}
}
