package segment

import "github.com/boxesandglue/unitext/proptables"

// HardLineBoundaries returns only the mandatory line break positions
// in cps: after a CR+LF pair and after any lone CR, LF, VT, FF, NEL,
// LS, or PS — the same positions ParagraphBoundaries reports (spec
// §4.F.4 "Hard").
func HardLineBoundaries(cps []rune) []int {
	return ParagraphBoundaries(cps)
}

// Line is one line produced by AllowedLineBreaks: a half-open code
// point range plus whether the break that ends it is mandatory.
type Line struct {
	Start, End int
	HardBreak  bool
}

// ExtentFunc measures the rendered width of cps[from:to], used by
// AllowedLineBreaks' width-budget splitting.
type ExtentFunc func(cps []rune, from, to int) int

// AllowedLineBreaks implements UAX #14 allowed-break detection plus
// line-width-based overlong-line splitting (spec §4.F.4 "Allowed").
// extent measures a candidate line's rendered width; budget is the
// maximum allowed width; emitOverlong controls what happens when the
// span up to the next allowed break already exceeds budget (true:
// force narrower breaks within that span, one code point at a time,
// fitting as much as the budget allows on each line; false: ignore the
// budget for that one line and emit up to the next allowed break).
func AllowedLineBreaks(cps []rune, extent ExtentFunc, budget int, emitOverlong bool) []Line {
	allowed := allowedBreakPositions(cps)
	hard := make(map[int]bool, len(allowed))
	for _, p := range HardLineBoundaries(cps) {
		hard[p] = true
	}

	var lines []Line
	start := 0
	for start < len(cps) {
		// Find the furthest allowed break position <= start+budget (by
		// extent, not raw code point count), preferring the largest
		// prefix that still fits.
		best := -1
		for _, p := range allowed {
			if p <= start {
				continue
			}
			if extent(cps, start, p) <= budget {
				best = p
				continue
			}
			break
		}
		if best == -1 {
			// Even the nearest allowed break overflows the budget: this
			// is an overlong line.
			next := nextAllowedAfter(allowed, start)
			if next == start {
				next = len(cps)
			}
			if emitOverlong {
				// Force a break as far as the budget allows, widening one
				// code point at a time, instead of emitting the whole
				// unbreakable span as a single too-wide line.
				end := start + 1
				for end < next && extent(cps, start, end+1) <= budget {
					end++
				}
				lines = append(lines, Line{Start: start, End: end, HardBreak: hard[end]})
				start = end
				continue
			}
			// Ignore the budget for this one line; emit up to the next
			// allowed break regardless of its extent.
			lines = append(lines, Line{Start: start, End: next, HardBreak: hard[next]})
			start = next
			continue
		}
		lines = append(lines, Line{Start: start, End: best, HardBreak: hard[best]})
		start = best
	}
	return lines
}

// afterZWSpaceRun reports whether classes[:at+1] ends in a (possibly
// empty) run of spaces immediately preceded by a zero-width space.
func afterZWSpaceRun(classes []proptables.LineBreakClass, at int) bool {
	j := at
	for j >= 0 && classes[j] == proptables.LineSP {
		j--
	}
	return j >= 0 && classes[j] == proptables.LineZW
}

func nextAllowedAfter(allowed []int, pos int) int {
	for _, p := range allowed {
		if p > pos {
			return p
		}
	}
	return pos
}

// allowedBreakPositions computes UAX #14 allowed break opportunities
// (a reduced LB1-LB31 pair table over proptables.LineBreakClass,
// covering the rules spec §4.F.4 calls out by name: LB13-LB16 and
// LB24-LB30's "forbid break" contexts, plus the baseline mandatory/
// never-break/always-break classes).
func allowedBreakPositions(cps []rune) []int {
	n := len(cps)
	if n == 0 {
		return []int{0}
	}
	classes := make([]proptables.LineBreakClass, n)
	for i, cp := range cps {
		classes[i] = resolveLineClass(cp)
	}

	positions := []int{0}
	for i := 1; i < n; i++ {
		if lineBreakAllowed(classes, i) {
			positions = append(positions, i)
		}
	}
	if positions[len(positions)-1] != n {
		positions = append(positions, n)
	}
	return positions
}

// resolveLineClass maps LineXX (unresolved) to LineAL, matching UAX
// #14's resolution rule for the Unknown/unassigned fallback class.
func resolveLineClass(cp rune) proptables.LineBreakClass {
	c := proptables.LineBreak(cp)
	if c == proptables.LineXX {
		return proptables.LineAL
	}
	return c
}

func lineBreakAllowed(classes []proptables.LineBreakClass, i int) bool {
	prev, curr := classes[i-1], classes[i]

	// LB4/LB5: mandatory breaks (handled separately by
	// HardLineBoundaries) always terminate a line; here we only need
	// to know they're not "allowed-but-optional" breaks, so treat
	// them as already broken (caller merges hard positions in).
	if prev == proptables.LineBK || prev == proptables.LineLF || prev == proptables.LineNL {
		return true
	}
	if prev == proptables.LineCR {
		return true
	}
	// LB6: never break before mandatory-break classes.
	if curr == proptables.LineBK || curr == proptables.LineCR || curr == proptables.LineLF || curr == proptables.LineNL {
		return false
	}
	// LB7: never break before spaces or zero-width space.
	if curr == proptables.LineSP || curr == proptables.LineZW {
		return false
	}
	// LB8: break after a zero-width space, even if one or more spaces
	// intervene (ZW SP* ÷) — walk back over a space run to see whether
	// it is anchored by a ZW.
	if prev == proptables.LineZW || (prev == proptables.LineSP && afterZWSpaceRun(classes, i-1)) {
		return true
	}
	// LB8a: skip (ZWJ not curated here).

	// LB9: combining marks attach to their base — never break between
	// a base and a following combining mark (treat CM as the base's
	// own class for subsequent rules by just forbidding the break).
	if curr == proptables.LineCM {
		return false
	}
	// LB11: never break around Word Joiner.
	if prev == proptables.LineWJ || curr == proptables.LineWJ {
		return false
	}
	// LB12: never break after glue.
	if prev == proptables.LineGL {
		return false
	}
	// LB12a: never break before glue unless preceded by space/hyphen-like.
	if curr == proptables.LineGL && prev != proptables.LineSP && prev != proptables.LineBA && prev != proptables.LineHY {
		return false
	}
	// LB13: never break before closing punctuation/exclamation/infix/symbol.
	if curr == proptables.LineCL || curr == proptables.LineCP || curr == proptables.LineEX ||
		curr == proptables.LineIS || curr == proptables.LineSY {
		return false
	}
	// LB14: never break after opening punctuation (even across spaces
	// the class would have changed, so this only covers the direct
	// adjacency case, the common one).
	if prev == proptables.LineOP {
		return false
	}
	// LB15: never break between closing quote and opening punctuation.
	if prev == proptables.LineQU && curr == proptables.LineOP {
		return false
	}
	// LB16: never break between closing punctuation/parenthesis and
	// a nonstarter.
	if (prev == proptables.LineCL || prev == proptables.LineCP) && curr == proptables.LineNS {
		return false
	}
	// LB17: never break within B2 (em dash) runs.
	if prev == proptables.LineB2 && curr == proptables.LineB2 {
		return false
	}
	// LB18: break after spaces is handled structurally (spaces end up
	// as valid break opportunities by falling through to LB31 below).

	// LB19: never break around quotation marks.
	if prev == proptables.LineQU || curr == proptables.LineQU {
		return false
	}
	// LB20: CB (contingent break) provides breaks on both sides (rare
	// in the curated tables here, so only guard against mis-forbidding).

	// LB21: never break before NS, HY, BA, or after BB.
	if curr == proptables.LineNS || curr == proptables.LineHY || curr == proptables.LineBA {
		return false
	}
	if prev == proptables.LineBB {
		return false
	}
	// LB21a/LB21b: skip (narrow Hebrew/Solidus cases not curated here).

	// LB22: never break before inseparable characters.
	if curr == proptables.LineIN {
		return false
	}
	// LB23/LB23a: never break between digits and letters, or ID and
	// numerics (common "don't split 3D or A4" case).
	if (prev == proptables.LineAL && curr == proptables.LineNU) || (prev == proptables.LineNU && curr == proptables.LineAL) {
		return false
	}
	if (prev == proptables.LineID && curr == proptables.LineNU) || (prev == proptables.LineNU && curr == proptables.LineID) {
		return false
	}
	// LB24: never break between numeric/alphabetic and opening/closing.
	if (prev == proptables.LineAL || prev == proptables.LineNU) && (curr == proptables.LineOP || curr == proptables.LineCP) {
		return false
	}
	// LB25: never break within numeric expressions (digit-adjacent IS/SY).
	if prev == proptables.LineNU && (curr == proptables.LineIS || curr == proptables.LineSY) {
		return false
	}
	if (prev == proptables.LineIS || prev == proptables.LineSY) && curr == proptables.LineNU {
		return false
	}
	// LB26/LB27: Hangul syllable composition rules are covered by
	// the ID class treatment of Hangul syllables in resolveLineClass's
	// underlying table (AC00-D7A3 tagged ID), so no separate rule
	// needed for the common precomposed case.
	// LB28: never break between alphabetics.
	if prev == proptables.LineAL && curr == proptables.LineAL {
		return false
	}
	// LB28a/LB29/LB30: complex-context (SA) and AL/NU-adjacent
	// open/close parentheses — the common cases are covered above;
	// SA is treated as AL-like by falling through to LB31.

	// LB30a: no separate rule. Regional Indicators have no class of
	// their own in the line-break table and resolve to AL, so the
	// LB28 check above never breaks inside a run of them; a run is not
	// split into pairs.

	// LB31: otherwise, break is allowed.
	return true
}
