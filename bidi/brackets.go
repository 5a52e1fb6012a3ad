package bidi

import (
	"sort"

	"github.com/boxesandglue/unitext/proptables"
)

// resolveBrackets implements N0: it finds bracket pairs with a bounded
// stack (BD16, capped at 63 opens per the spec), then for each pair
// (processed in text order of the opening bracket) inspects the
// interior for a strong type matching or opposing the run sequence's
// embedding direction and resolves the pair's own type accordingly.
func resolveBrackets(cps []rune, states []cpState, seq runSequence) {
	idx := seq.indices(states)
	n := len(idx)
	if n == 0 {
		return
	}
	e := directionOf(seq.runs[0].level)
	o := oppositeClass(e)

	type stackEntry struct {
		closing rune
		k       int
	}
	type pair struct{ openK, closeK int }

	var stack []stackEntry
	var pairs []pair

	for k := 0; k < n; k++ {
		i := idx[k]
		if states[i].class != proptables.BidiON {
			continue
		}
		cp := cps[i]
		partner, opening, ok := proptables.IsBidiBracket(cp)
		if !ok {
			continue
		}
		if opening {
			if len(stack) >= 63 {
				break
			}
			stack = append(stack, stackEntry{closing: partner, k: k})
			continue
		}
		for s := len(stack) - 1; s >= 0; s-- {
			if stack[s].closing == cp {
				pairs = append(pairs, pair{openK: stack[s].k, closeK: k})
				stack = stack[:s]
				break
			}
		}
	}

	sort.Slice(pairs, func(a, b int) bool { return pairs[a].openK < pairs[b].openK })

	for _, pr := range pairs {
		foundE, foundO := false, false
		for k := pr.openK + 1; k < pr.closeK; k++ {
			d, ok := strongDirectionOf(states[idx[k]].class)
			if !ok {
				continue
			}
			if d == e {
				foundE = true
				break
			}
			foundO = true
		}

		var resolved Class
		switch {
		case foundE:
			resolved = e
		case foundO:
			ctx := precedingStrongOrSos(states, idx, pr.openK, seq.sos)
			if ctx == o {
				resolved = o
			} else {
				resolved = e
			}
		default:
			continue
		}
		states[idx[pr.openK]].class = resolved
		states[idx[pr.closeK]].class = resolved
	}
}

// strongDirectionOf reports the N0 "direction" a resolved class
// counts as: L stays L, and R/EN/AN all count as R (N0 explicitly
// treats EN/AN as R for bracket-interior scanning).
func strongDirectionOf(c Class) (Class, bool) {
	switch c {
	case proptables.BidiL:
		return proptables.BidiL, true
	case proptables.BidiR, proptables.BidiEN, proptables.BidiAN:
		return proptables.BidiR, true
	}
	return 0, false
}

func oppositeClass(e Class) Class {
	if e == proptables.BidiL {
		return proptables.BidiR
	}
	return proptables.BidiL
}

// precedingStrongOrSos walks backward from just before the opening
// bracket looking for a strong-or-EN/AN type, falling back to sos when
// none exists (N0's "context before the bracket pair" clause).
func precedingStrongOrSos(states []cpState, idx []int, openK int, sos Class) Class {
	for k := openK - 1; k >= 0; k-- {
		if d, ok := strongDirectionOf(states[idx[k]].class); ok {
			return d
		}
	}
	return sos
}
