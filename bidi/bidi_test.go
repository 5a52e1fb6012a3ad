package bidi

import (
	"reflect"
	"testing"

	"github.com/boxesandglue/unitext/proptables"
)

const (
	hebrewAlef = 0x05D0
	hebrewBet  = 0x05D1
	hebrewGim  = 0x05D2
	arabicAlef = 0x0627
	rle        = 0x202B
	pdf        = 0x202C
	rli        = 0x2067
	pdi        = 0x2069
)

func TestParagraphLevelAutodetect(t *testing.T) {
	if got := ParagraphLevel([]rune("abc"), LevelAuto); got != LevelLTR {
		t.Fatalf("ParagraphLevel(abc) = %d, want LTR", got)
	}
	hebrew := []rune{hebrewAlef, hebrewBet, hebrewGim}
	if got := ParagraphLevel(hebrew, LevelAuto); got != LevelRTL {
		t.Fatalf("ParagraphLevel(hebrew) = %d, want RTL", got)
	}
	// P2 skips the interior of an isolate: the first strong character
	// outside any isolate is the trailing Latin 'z', even though a
	// Hebrew letter appears earlier inside the isolate.
	mixed := []rune{rli, hebrewAlef, pdi, 'z'}
	if got := ParagraphLevel(mixed, LevelAuto); got != LevelLTR {
		t.Fatalf("ParagraphLevel(isolate-then-z) = %d, want LTR", got)
	}
}

func TestResolveSimpleLTR(t *testing.T) {
	runs := Resolve([]rune("abc"), LevelAuto)
	want := []ReorderedRun{{Start: 0, End: 3, Reversed: false}}
	if !reflect.DeepEqual(runs, want) {
		t.Fatalf("Resolve(abc) = %+v, want %+v", runs, want)
	}
}

func TestResolveSimpleRTL(t *testing.T) {
	runs := Resolve([]rune{hebrewAlef, hebrewBet, hebrewGim}, LevelAuto)
	want := []ReorderedRun{{Start: 0, End: 3, Reversed: true}}
	if !reflect.DeepEqual(runs, want) {
		t.Fatalf("Resolve(hebrew) = %+v, want %+v", runs, want)
	}
}

// TestResolveMixedEmbedding is UAX #9's canonical "Latin word, Hebrew
// word, Latin word" example: the Hebrew run reorders internally while
// staying in its logical position between the two Latin runs.
func TestResolveMixedEmbedding(t *testing.T) {
	cps := []rune{'a', 'b', 'c', ' ', hebrewAlef, hebrewBet, hebrewGim, ' ', 'd', 'e', 'f'}
	runs := Resolve(cps, LevelAuto)
	want := []ReorderedRun{
		{Start: 0, End: 4, Reversed: false},
		{Start: 4, End: 7, Reversed: true},
		{Start: 7, End: 11, Reversed: false},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Fatalf("Resolve(mixed) = %+v, want %+v", runs, want)
	}
}

// TestFindLevelRunsAcrossEmbeddings is grounded directly on
// original_source/test/detail_bidi.cpp's find_all_runs test: four
// runs of Latin text, the middle two each wrapped in RLE/PDF, form
// three level runs; the two embedded runs collapse into one level run
// in the middle despite the embedding controls sitting at its center,
// because X9-removed characters never split a run.
func TestFindLevelRunsAcrossEmbeddings(t *testing.T) {
	cps := []rune{
		'a', 'a', 'a', // text1
		rle,
		'a', 'a', 'a', // text2
		pdf,
		rle,
		'a', 'a', 'a', // text3
		pdf,
		'a', 'a', 'a', // text4
	}
	states := computeExplicitLevels(cps, LevelLTR)
	runs := findLevelRuns(states)
	if len(runs) != 3 {
		t.Fatalf("findLevelRuns = %d runs, want 3: %+v", len(runs), runs)
	}
	wantBounds := [][2]int{{0, 4}, {4, 13}, {13, 16}}
	for i, r := range runs {
		if r.start != wantBounds[i][0] || r.end != wantBounds[i][1] {
			t.Fatalf("runs[%d] = [%d,%d), want [%d,%d)", i, r.start, r.end, wantBounds[i][0], wantBounds[i][1])
		}
	}
}

// TestFindRunSequencesAcrossIsolates mirrors detail_bidi.cpp's second
// find_run_sequences case: two RLI/PDI isolates chain their level
// runs together via BD13 into one sequence, plus the two isolated
// interiors as standalone sequences (3 total).
func TestFindRunSequencesAcrossIsolates(t *testing.T) {
	cps := []rune{
		'a', 'a', 'a', // text1
		rli,
		'a', 'a', 'a', // text2 (isolated)
		pdi,
		rli,
		'a', 'a', 'a', // text3 (isolated)
		pdi,
		'a', 'a', 'a', // text4
	}
	states := computeExplicitLevels(cps, LevelLTR)
	runs := findLevelRuns(states)
	if len(runs) != 5 {
		t.Fatalf("findLevelRuns = %d runs, want 5: %+v", len(runs), runs)
	}
	sequences := findRunSequences(states, runs, LevelLTR)
	if len(sequences) != 3 {
		t.Fatalf("findRunSequences = %d sequences, want 3", len(sequences))
	}
	// The outer sequence should chain all three non-isolated runs.
	var outer *runSequence
	for i := range sequences {
		if len(sequences[i].runs) == 3 {
			outer = &sequences[i]
		}
	}
	if outer == nil {
		t.Fatalf("no 3-run sequence found among %+v", sequences)
	}
	if outer.runs[0].start != 0 || outer.runs[2].end != 16 {
		t.Fatalf("outer sequence bounds = %+v, want to span [0,16)", outer.runs)
	}
}

func TestResolveBracketPairOpposingDirection(t *testing.T) {
	// "he said (HEBREW) to me" in an LTR paragraph: the bracket pair
	// contains only opposing-direction (R) strong text and is preceded
	// by L context, so N0 resolves both brackets to L (the embedding
	// direction), matching UAX #9's "only opposite-direction strong
	// text inside, context before not opposite -> embedding direction"
	// branch.
	cps := []rune{'a', 'b', ' ', '(', hebrewAlef, hebrewBet, ')', ' ', 'c'}
	states := Analyze(cps, LevelAuto)
	if states[3].Class != proptables.BidiL || states[6].Class != proptables.BidiL {
		t.Fatalf("bracket classes = %v, %v, want both L", states[3].Class, states[6].Class)
	}
}

func TestResolveWithNumbers(t *testing.T) {
	// An Arabic-letter run followed by a European number: W2 turns the
	// EN into AN (Arabic number) because the nearest preceding strong
	// type is AL.
	cps := []rune{arabicAlef, '1', '2'}
	states := Analyze(cps, LevelAuto)
	if states[1].Class != states[2].Class {
		t.Fatalf("digits after AL resolved inconsistently: %v vs %v", states[1].Class, states[2].Class)
	}
}

func TestResolveLineRespectsLineBoundary(t *testing.T) {
	cps := []rune{'a', 'b', ' ', hebrewAlef, hebrewBet}
	whole := Resolve(cps, LevelAuto)
	line0 := ResolveLine(cps, LevelAuto, 0, 3)
	line1 := ResolveLine(cps, LevelAuto, 3, 5)
	if len(whole) == 0 || len(line0) == 0 || len(line1) == 0 {
		t.Fatalf("expected non-empty runs: whole=%v line0=%v line1=%v", whole, line0, line1)
	}
	if line1[0].Start != 3 || line1[len(line1)-1].End != 5 {
		t.Fatalf("line1 runs = %+v, want to span [3,5)", line1)
	}
}
