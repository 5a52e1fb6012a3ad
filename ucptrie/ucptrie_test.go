package ucptrie

import "testing"

func TestBuilderSparseValues(t *testing.T) {
	b := NewBuilder(0, 0xFFFFFFFF)
	b.Set('A', 42)
	b.SetRange(0x0300, 0x036F, 7)
	b.Set(0x1F600, 99) // supplementary plane (emoji)

	trie := b.Build(ValueWidth16)

	if got := trie.Get('A'); got != 42 {
		t.Errorf("Get('A') = %d, want 42", got)
	}
	if got := trie.Get('B'); got != 0 {
		t.Errorf("Get('B') = %d, want 0 (default)", got)
	}
	if got := trie.Get(0x0310); got != 7 {
		t.Errorf("Get(U+0310) = %d, want 7", got)
	}
	if got := trie.Get(0x1F600); got != 99 {
		t.Errorf("Get(U+1F600) = %d, want 99", got)
	}
	if got := trie.Get(-1); got != 0xFFFFFFFF {
		t.Errorf("Get(-1) = %d, want error value", got)
	}
	if got := trie.Get(0x110000); got != 0xFFFFFFFF {
		t.Errorf("Get(0x110000) = %d, want error value", got)
	}
}

func TestASCIIFastPath(t *testing.T) {
	b := NewBuilder(0, 0)
	for cp := rune(0); cp < 0x80; cp++ {
		b.Set(cp, uint32(cp)*2)
	}
	trie := b.Build(ValueWidth16)
	for cp := rune(0); cp < 0x80; cp++ {
		if got := trie.ASCIIGet(cp); got != uint32(cp)*2 {
			t.Fatalf("ASCIIGet(%d) = %d, want %d", cp, got, cp*2)
		}
	}
}

func TestFastU16NextPrevSurrogates(t *testing.T) {
	b := NewBuilder(0, 0xFFFF)
	b.Set(0x1F600, 5)
	trie := b.Build(ValueWidth16)

	units := []uint16{0xD83D, 0xDE00} // U+1F600 surrogate pair
	cp, val, next := trie.FastU16Next(units, 0)
	if cp != 0x1F600 || val != 5 || next != 2 {
		t.Fatalf("FastU16Next = (%#x, %d, %d), want (0x1f600, 5, 2)", cp, val, next)
	}
	cp2, val2, prev := trie.FastU16Prev(units, 2)
	if cp2 != 0x1F600 || val2 != 5 || prev != 0 {
		t.Fatalf("FastU16Prev = (%#x, %d, %d), want (0x1f600, 5, 0)", cp2, val2, prev)
	}

	// Unpaired lead surrogate.
	lone := []uint16{0xD83D, 0x0041}
	cp3, val3, next3 := trie.FastU16Next(lone, 0)
	if cp3 != 0xD83D || val3 != 0xFFFF || next3 != 1 {
		t.Fatalf("FastU16Next(unpaired) = (%#x, %d, %d), want error", cp3, val3, next3)
	}
}

func TestFastU8NextPrev(t *testing.T) {
	b := NewBuilder(0, 0xFFFF)
	b.Set(0x00E9, 3)  // é, 2-byte UTF-8
	b.Set(0x4E2D, 11) // 中, 3-byte UTF-8
	trie := b.Build(ValueWidth16)

	buf := []byte{0xC3, 0xA9, 0xE4, 0xB8, 0xAD} // "é中"
	v, next := trie.FastU8Next(buf, 0)
	if v != 3 || next != 2 {
		t.Fatalf("FastU8Next = (%d, %d), want (3, 2)", v, next)
	}
	v2, next2 := trie.FastU8Next(buf, next)
	if v2 != 11 || next2 != 5 {
		t.Fatalf("FastU8Next = (%d, %d), want (11, 5)", v2, next2)
	}

	v3, prev3 := trie.FastU8Prev(buf, 5)
	if v3 != 11 || prev3 != 2 {
		t.Fatalf("FastU8Prev = (%d, %d), want (11, 2)", v3, prev3)
	}
	v4, prev4 := trie.FastU8Prev(buf, 2)
	if v4 != 3 || prev4 != 0 {
		t.Fatalf("FastU8Prev = (%d, %d), want (3, 0)", v4, prev4)
	}

	// Ill-formed: lone continuation byte.
	illFormed := []byte{0x80, 0x41}
	v5, next5 := trie.FastU8Next(illFormed, 0)
	if v5 != 0xFFFF || next5 != 1 {
		t.Fatalf("FastU8Next(ill-formed) = (%d, %d), want error at +1", v5, next5)
	}
}
