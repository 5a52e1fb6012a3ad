package bidi

import "github.com/boxesandglue/unitext/proptables"

// statusEntry is one level of the X1-X8 directional status stack.
type statusEntry struct {
	level         Level
	overrideClass Class
	hasOverride   bool
	isolate       bool
}

func nextOddLevel(l Level) Level {
	if l%2 == 1 {
		return l + 2
	}
	return l + 1
}

func nextEvenLevel(l Level) Level {
	if l%2 == 0 {
		return l + 2
	}
	return l + 1
}

// computeExplicitLevels implements X1-X9: it walks cps once with a
// directional status stack (depth capped at maxDepth), assigning every
// code point a level and (when overridden or isolate-initiating) a
// possibly-rewritten class, tracking unmatched PDIs and the
// initiator<->PDI matching BD9 needs for run-sequence chaining, and
// marking explicit-format controls (X9) as removed so later weak/
// neutral/implicit rules skip over them.
func computeExplicitLevels(cps []rune, paragraphLevel Level) []cpState {
	n := len(cps)
	classes := make([]Class, n)
	for i, cp := range cps {
		classes[i] = proptables.Bidi(cp)
	}

	states := make([]cpState, n)
	stack := []statusEntry{{level: paragraphLevel}}
	var isolateInitiatorStack []int
	overflowIsolate, overflowEmbedding, validIsolate := 0, 0, 0

	top := func() statusEntry { return stack[len(stack)-1] }

	for i, class := range classes {
		st := &states[i]
		st.origClass = class
		st.class = class
		st.matchIdx = -1

		switch class {
		case proptables.BidiRLE, proptables.BidiLRE, proptables.BidiRLO, proptables.BidiLRO:
			// X2-X5
			st.level = top().level
			st.removed = true
			var newLevel Level
			var override Class
			hasOverride := false
			switch class {
			case proptables.BidiRLE:
				newLevel = nextOddLevel(top().level)
			case proptables.BidiLRE:
				newLevel = nextEvenLevel(top().level)
			case proptables.BidiRLO:
				newLevel, override, hasOverride = nextOddLevel(top().level), proptables.BidiR, true
			case proptables.BidiLRO:
				newLevel, override, hasOverride = nextEvenLevel(top().level), proptables.BidiL, true
			}
			if newLevel <= maxDepth && overflowIsolate == 0 && overflowEmbedding == 0 {
				stack = append(stack, statusEntry{level: newLevel, overrideClass: override, hasOverride: hasOverride})
			} else if overflowIsolate == 0 {
				overflowEmbedding++
			}

		case proptables.BidiRLI, proptables.BidiLRI, proptables.BidiFSI:
			// X5a-X5c
			st.level = top().level
			if top().hasOverride {
				st.class = top().overrideClass
			}
			dir := class
			if class == proptables.BidiFSI {
				dir = isolateScopeDirection(classes, i)
			}
			var newLevel Level
			if dir == proptables.BidiRLI || dir == proptables.BidiR {
				newLevel = nextOddLevel(top().level)
			} else {
				newLevel = nextEvenLevel(top().level)
			}
			if newLevel <= maxDepth && overflowIsolate == 0 && overflowEmbedding == 0 {
				validIsolate++
				isolateInitiatorStack = append(isolateInitiatorStack, i)
				stack = append(stack, statusEntry{level: newLevel, isolate: true})
			} else {
				overflowIsolate++
			}
			st.isIsolateInit = true

		case proptables.BidiPDI:
			// X6a
			if overflowIsolate > 0 {
				overflowIsolate--
			} else if validIsolate == 0 {
				st.unmatchedPDI = true
			} else {
				overflowEmbedding = 0
				for !top().isolate {
					stack = stack[:len(stack)-1]
				}
				initIdx := isolateInitiatorStack[len(isolateInitiatorStack)-1]
				isolateInitiatorStack = isolateInitiatorStack[:len(isolateInitiatorStack)-1]
				stack = stack[:len(stack)-1]
				validIsolate--
				states[initIdx].matchIdx = i
				st.matchIdx = initIdx
			}
			st.level = top().level
			if top().hasOverride {
				st.class = top().overrideClass
			}

		case proptables.BidiPDF:
			// X7
			st.level = top().level
			st.removed = true
			if overflowIsolate > 0 {
				// does not match; consumed by the isolate overflow
			} else if overflowEmbedding > 0 {
				overflowEmbedding--
			} else if !top().isolate && len(stack) >= 2 {
				stack = stack[:len(stack)-1]
			}

		case proptables.BidiB:
			// X8: paragraph separators always get the paragraph level.
			st.level = paragraphLevel

		default:
			// X6: everything else inherits the current level and, under
			// an active override, is reclassified to L or R.
			st.level = top().level
			if top().hasOverride {
				st.class = top().overrideClass
			}
			if class == proptables.BidiBN {
				st.removed = true
			}
		}
	}
	return states
}

// isolateScopeDirection implements the P2/P3 scan an FSI needs over
// its own isolated scope (from the character after it to its matching
// PDI, or the end of the text, skipping nested isolates) to decide
// whether it behaves like an LRI or an RLI.
func isolateScopeDirection(classes []Class, fsiIdx int) Class {
	depth := 0
	for i := fsiIdx + 1; i < len(classes); i++ {
		c := classes[i]
		if isIsolateInitiator(c) {
			depth++
			continue
		}
		if c == proptables.BidiPDI {
			if depth == 0 {
				break
			}
			depth--
			continue
		}
		if depth > 0 {
			continue
		}
		switch c {
		case proptables.BidiL:
			return proptables.BidiL
		case proptables.BidiR, proptables.BidiAL:
			return proptables.BidiR
		}
	}
	return proptables.BidiL
}
