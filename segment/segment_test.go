package segment

import (
	"reflect"
	"testing"

	"github.com/boxesandglue/unitext/proptables"
)

func TestGraphemeBoundariesCRLF(t *testing.T) {
	got := GraphemeBoundaries([]rune("a\r\nb"))
	want := []int{0, 1, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GraphemeBoundaries(a\\r\\nb) = %v, want %v", got, want)
	}
}

func TestGraphemeBoundariesRegionalIndicatorPairs(t *testing.T) {
	// Four Regional Indicators: two flags, one boundary in the middle.
	flags := []rune{0x1F1FA, 0x1F1F8, 0x1F1EC, 0x1F1E7} // US, GB
	got := GraphemeBoundaries(flags)
	want := []int{0, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GraphemeBoundaries(flags) = %v, want %v", got, want)
	}
}

func TestGraphemeBoundariesHangul(t *testing.T) {
	got := GraphemeBoundaries([]rune{0x1100, 0x1161, 'a'})
	want := []int{0, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GraphemeBoundaries(L,V,a) = %v, want %v", got, want)
	}
}

func TestWordBoundariesSimpleSentence(t *testing.T) {
	got := WordBoundaries([]rune("It's a test."), nil, nil)
	var words []string
	cps := []rune("It's a test.")
	for i := 0; i+1 < len(got); i++ {
		words = append(words, string(cps[got[i]:got[i+1]]))
	}
	want := []string{"It's", " ", "a", " ", "test", "."}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("words = %v, want %v", words, want)
	}
}

func TestWordBoundariesSymmetry(t *testing.T) {
	cps := []rune("multi-part words")
	breaks := WordBoundaries(cps, nil, nil)
	for _, b := range breaks {
		if b == 0 || b == len(cps) {
			continue
		}
		prev := PrevBreak(breaks, b)
		if prev != b {
			t.Fatalf("PrevBreak(%d) = %d, want %d (symmetry)", b, prev, b)
		}
	}
}

func TestWordBoundariesTailoredHyphen(t *testing.T) {
	cps := []rune("multi-part words")
	tailored := func(cp rune) proptables.WordProperty {
		if cp == '-' {
			return proptables.WordMidLetter
		}
		return DefaultWordProperty(cp)
	}
	breaks := WordBoundaries(cps, tailored, nil)
	var words []string
	for i := 0; i+1 < len(breaks); i++ {
		words = append(words, string(cps[breaks[i]:breaks[i+1]]))
	}
	want := []string{"multi-part", " ", "words"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("words = %v, want %v", words, want)
	}
}

func TestWordBoundariesNumericPeriod(t *testing.T) {
	// WB11/WB12: a MidNumLet between two Numeric runs joins them into
	// one word, matching UAX #29's treatment of "3.14" as a single
	// decimal number rather than three separate words.
	cps := []rune("3.14")
	got := WordBoundaries(cps, nil, nil)
	want := []int{0, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WordBoundaries(3.14) = %v, want %v", got, want)
	}
}

func TestSentenceBoundariesBasic(t *testing.T) {
	cps := []rune("Hello world. How are you? Fine!")
	breaks := SentenceBoundaries(cps)
	if len(breaks) < 4 {
		t.Fatalf("SentenceBoundaries found too few breaks: %v", breaks)
	}
	if breaks[0] != 0 || breaks[len(breaks)-1] != len(cps) {
		t.Fatalf("SentenceBoundaries = %v, want to start at 0 and end at %d", breaks, len(cps))
	}
}

func TestParagraphBoundaries(t *testing.T) {
	cps := []rune("one\r\ntwo\nthree")
	got := ParagraphBoundaries(cps)
	want := []int{0, 5, 9, 14}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParagraphBoundaries = %v, want %v", got, want)
	}
}

func TestAllowedLineBreaksWidthBudget(t *testing.T) {
	cps := []rune("a b c")
	extent := func(cps []rune, from, to int) int { return to - from }

	lines := AllowedLineBreaks(cps, extent, 80, true)
	if len(lines) != 1 || lines[0].Start != 0 || lines[0].End != 5 {
		t.Fatalf("budget 80: lines = %v, want one line [0,5)", lines)
	}

	lines = AllowedLineBreaks(cps, extent, 1, true)
	if len(lines) != 5 {
		t.Fatalf("budget 1, overlong on: lines = %v, want 5 lines", lines)
	}
}

// TestAllowedLineBreaksZeroWidthSpaceScenario is spec's ZWSP/SPACE/DIGIT
// concrete scenario: it distinguishes emitOverlong's two behaviors,
// which must not produce identical output.
func TestAllowedLineBreaksZeroWidthSpaceScenario(t *testing.T) {
	cps := []rune{0x200B, 0x0020, 0x0030}
	extent := func(cps []rune, from, to int) int { return to - from }

	lines := AllowedLineBreaks(cps, extent, 80, true)
	if len(lines) != 1 || lines[0].Start != 0 || lines[0].End != 3 {
		t.Fatalf("budget 80: lines = %v, want one line [0,3)", lines)
	}

	lines = AllowedLineBreaks(cps, extent, 2, true)
	want2 := []Line{{Start: 0, End: 2}, {Start: 2, End: 3}}
	if len(lines) != 2 || lines[0].Start != want2[0].Start || lines[0].End != want2[0].End ||
		lines[1].Start != want2[1].Start || lines[1].End != want2[1].End {
		t.Fatalf("budget 2: lines = %v, want [0,2),[2,3)", lines)
	}

	lines = AllowedLineBreaks(cps, extent, 1, true)
	wantOn := []Line{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 3}}
	if len(lines) != 3 {
		t.Fatalf("budget 1, overlong on: lines = %v, want 3 one-cp lines", lines)
	}
	for i, w := range wantOn {
		if lines[i].Start != w.Start || lines[i].End != w.End {
			t.Fatalf("budget 1, overlong on: lines = %v, want %v", lines, wantOn)
		}
	}

	lines = AllowedLineBreaks(cps, extent, 1, false)
	wantOff := []Line{{Start: 0, End: 2}, {Start: 2, End: 3}}
	if len(lines) != 2 || lines[0].Start != wantOff[0].Start || lines[0].End != wantOff[0].End ||
		lines[1].Start != wantOff[1].Start || lines[1].End != wantOff[1].End {
		t.Fatalf("budget 1, overlong off: lines = %v, want %v", lines, wantOff)
	}
}

func TestRangesAndRangeAgree(t *testing.T) {
	cps := []rune("It's a test.")
	all := Ranges(KindWord, cps)
	for _, r := range all {
		mid := (r.Start + r.End) / 2
		got := Range(KindWord, cps, mid)
		if got != r {
			t.Fatalf("Range(%d) = %v, want %v", mid, got, r)
		}
	}
}
