// Package bidi implements the Unicode Bidirectional Algorithm (UAX #9):
// paragraph-level detection, explicit embedding levels, weak and neutral
// type resolution, implicit level assignment, and visual reordering.
//
// The engine operates on one paragraph at a time (per spec, no
// cross-paragraph state) and is total: malformed embedding/isolate
// sequences never produce an error, only overflow counters and
// unmatched-PDI flags, exactly as UAX #9 requires.
package bidi

import "github.com/boxesandglue/unitext/proptables"

// Level is a UAX #9 embedding level. Even levels are left-to-right, odd
// levels right-to-left. Level -1 (LevelAuto) requests P2/P3
// autodetection instead of an explicit paragraph level.
type Level int8

const (
	LevelLTR  Level = 0
	LevelRTL  Level = 1
	LevelAuto Level = -1

	maxDepth = 125
)

// Class is this package's alias for the Bidi_Class values produced by
// proptables.Bidi, kept local so call sites read as "bidi.Class"
// rather than reaching back into proptables.
type Class = proptables.BidiClass

// cpState is the per-code-point working state threaded through the
// whole pipeline (spec's "PropEmbedding"): the resolved class mutates
// as W1-W7/N0-N2 run, the level mutates at I1/I2 and L1, and the
// removed flag marks X9 format characters that are skipped by every
// later rule but still present for the final output indices.
type cpState struct {
	class         Class
	origClass     Class
	level         Level
	removed       bool // X9: BN or embedding/override control (not isolate controls), skipped by W/N/I rules
	unmatchedPDI  bool
	isIsolateInit bool
	matchIdx      int // for an isolate initiator: index of its matching PDI, or -1; for a PDI: index of its matching initiator, or -1
}

func isIsolateInitiator(c Class) bool {
	return c == proptables.BidiLRI || c == proptables.BidiRLI || c == proptables.BidiFSI
}

// directionOf returns L for even levels and R for odd levels, used
// throughout as the "embedding direction" of a level.
func directionOf(level Level) Class {
	if level%2 == 0 {
		return proptables.BidiL
	}
	return proptables.BidiR
}

// ParagraphLevel implements P2/P3: scan cps for the first strong
// character (L, R, or AL), skipping the interior of isolates (an
// isolate initiator pushes a skip until its matching PDI, or the end
// of the text if unmatched), and return the paragraph level that
// strong character implies. If none is found, returns LevelLTR (P3's
// default). explicitLevel overrides autodetection unless it is
// LevelAuto.
func ParagraphLevel(cps []rune, explicitLevel Level) Level {
	if explicitLevel != LevelAuto {
		return explicitLevel
	}
	depth := 0
	for _, cp := range cps {
		class := proptables.Bidi(cp)
		if isIsolateInitiator(class) {
			depth++
			continue
		}
		if class == proptables.BidiPDI {
			if depth > 0 {
				depth--
			}
			continue
		}
		if depth > 0 {
			continue
		}
		switch class {
		case proptables.BidiL:
			return LevelLTR
		case proptables.BidiR, proptables.BidiAL:
			return LevelRTL
		}
	}
	return LevelLTR
}

// ReorderedRun is one contiguous code-point range in final visual
// order; Reversed marks ranges whose code points must be iterated
// back-to-front to read left-to-right on screen. Isolate/embedding
// format characters are never included in the output (X9 removal +
// the UAX #9 "retaining BN" convention is collapsed away at this
// layer; callers needing original indices unchanged can still map back
// through Start/End).
type ReorderedRun struct {
	Start, End int
	Reversed   bool
}

// analyzeBeforeL1 runs P2/P3 through I1/I2 (everything but L1's
// whitespace-level reset and L2's reordering), the shared core of
// Resolve, ResolveLine, and Analyze — each applies L1 at a different
// scope (whole paragraph vs. one line).
func analyzeBeforeL1(cps []rune, explicitLevel Level) ([]cpState, Level) {
	paragraphLevel := ParagraphLevel(cps, explicitLevel)
	states := computeExplicitLevels(cps, paragraphLevel)
	runs := findLevelRuns(states)
	sequences := findRunSequences(states, runs, paragraphLevel)
	for _, seq := range sequences {
		resolveWeak(states, seq)
		resolveBrackets(cps, states, seq)
		resolveNeutral(states, seq)
	}
	resolveImplicit(states)
	return states, paragraphLevel
}

// analyze additionally applies L1 over the whole paragraph.
func analyze(cps []rune, explicitLevel Level) ([]cpState, Level) {
	states, paragraphLevel := analyzeBeforeL1(cps, explicitLevel)
	resetWhitespaceLevels(states, paragraphLevel)
	return states, paragraphLevel
}

// Resolve runs the full UAX #9 pipeline over cps (one paragraph) and
// returns the resulting runs in final visual order. explicitLevel
// selects LevelAuto (run P2/P3), or pins LevelLTR/LevelRTL.
func Resolve(cps []rune, explicitLevel Level) []ReorderedRun {
	if len(cps) == 0 {
		return nil
	}
	states, _ := analyze(cps, explicitLevel)
	return reorder(states)
}

// PerCodePoint is one code point's resolved state after the full
// pipeline (short of L2 reordering), mirroring spec's per-code-point
// "PropEmbedding" data model: (level, resolved bidi class, unmatched
// PDI flag).
type PerCodePoint struct {
	Level        Level
	Class        Class
	UnmatchedPDI bool
}

// Analyze exposes the per-code-point resolved state for diagnostics
// and conformance testing, where Resolve's run-oriented output is
// harder to assert against directly.
func Analyze(cps []rune, explicitLevel Level) []PerCodePoint {
	states, _ := analyze(cps, explicitLevel)
	out := make([]PerCodePoint, len(states))
	for i, s := range states {
		out[i] = PerCodePoint{Level: s.level, Class: s.class, UnmatchedPDI: s.unmatchedPDI}
	}
	return out
}

// ResolveLine is Resolve restricted to one line [start,end) of a
// paragraph already analysed by Resolve's earlier stages: L1/L2 are
// reapplied per line (spec §4.G pipeline step 12), since line breaking
// can change which trailing whitespace/separators are "at the end of
// the line" versus mid-paragraph.
func ResolveLine(cps []rune, explicitLevel Level, start, end int) []ReorderedRun {
	if start >= end {
		return nil
	}
	full, paragraphLevel := analyzeBeforeL1(cps, explicitLevel)

	line := make([]cpState, end-start)
	copy(line, full[start:end])
	resetWhitespaceLevels(line, paragraphLevel)
	out := reorder(line)
	for i := range out {
		out[i].Start += start
		out[i].End += start
	}
	return out
}
