package proptables

import "testing"

func TestGraphemeProperties(t *testing.T) {
	cases := []struct {
		cp   rune
		want GraphemeProperty
	}{
		{'\r', GraphemeCR},
		{'\n', GraphemeLF},
		{0x0301, GraphemeExtend},  // combining acute
		{0x200D, GraphemeZWJ},
		{0x1F1E6, GraphemeRegionalIndicator},
		{0x1100, GraphemeL},
		{0x1161, GraphemeV},
		{0xAC00, GraphemeLV},
		{0xAC01, GraphemeLVT},
		{'a', GraphemeOther},
	}
	for _, c := range cases {
		if got := Grapheme(c.cp); got != c.want {
			t.Errorf("Grapheme(%#x) = %v, want %v", c.cp, got, c.want)
		}
	}
}

func TestWordPropertiesOverrideLetterRange(t *testing.T) {
	if got := Word('a'); got != WordALetter {
		t.Errorf("Word('a') = %v, want ALetter", got)
	}
	// A Katakana code point must read back as Katakana, not the
	// broader ALetter classification also covering it.
	if got := Word(0x30A2); got != WordKatakana { // KATAKANA LETTER A
		t.Errorf("Word(KATAKANA A) = %v, want Katakana", got)
	}
	if got := Word(' '); got != WordWSegSpace {
		t.Errorf("Word(' ') = %v, want WSegSpace", got)
	}
}

func TestDefaultWordPropertyFallsBackToALetter(t *testing.T) {
	// A letter from a script with no dedicated Word_Break override
	// (e.g. Thai) must still classify as ALetter via the fallback,
	// not Other.
	thaiKo := rune(0x0E01)
	if got := Word(thaiKo); got != WordOther {
		t.Fatalf("precondition failed: Word(Thai Ko Kai) = %v, want Other", got)
	}
	if got := DefaultWordProperty(thaiKo); got != WordALetter {
		t.Errorf("DefaultWordProperty(Thai Ko Kai) = %v, want ALetter", got)
	}
}

func TestSentenceProperties(t *testing.T) {
	if got := Sentence('.'); got != SentenceATerm {
		t.Errorf("Sentence('.') = %v, want ATerm", got)
	}
	if got := Sentence('A'); got != SentenceUpper {
		t.Errorf("Sentence('A') = %v, want Upper", got)
	}
	if got := Sentence('a'); got != SentenceLower {
		t.Errorf("Sentence('a') = %v, want Lower", got)
	}
}

func TestLineBreakClasses(t *testing.T) {
	if got := LineBreak('('); got != LineOP {
		t.Errorf("LineBreak('(') = %v, want OP", got)
	}
	if got := LineBreak(')'); got != LineCL {
		t.Errorf("LineBreak(')') = %v, want CL", got)
	}
	if got := LineBreak('\n'); got != LineLF {
		t.Errorf("LineBreak(LF) = %v, want LF", got)
	}
	if got := LineBreak(0x4E2D); got != LineID { // 中
		t.Errorf("LineBreak(CJK) = %v, want ID", got)
	}
}

func TestBidiClassAndBrackets(t *testing.T) {
	if got := Bidi('A'); got != BidiL {
		t.Errorf("Bidi('A') = %v, want L", got)
	}
	if got := Bidi(0x05D0); got != BidiR { // Hebrew Alef
		t.Errorf("Bidi(Alef) = %v, want R", got)
	}
	if got := Bidi(0x0627); got != BidiAL { // Arabic Alef
		t.Errorf("Bidi(Arabic Alef) = %v, want AL", got)
	}
	if pair, opening, ok := IsBidiBracket('('); !ok || !opening || pair != ')' {
		t.Errorf("IsBidiBracket('(') = (%v,%v,%v), want (')',true,true)", pair, opening, ok)
	}
}
