package bidi

import "github.com/boxesandglue/unitext/proptables"

// resolveImplicit implements I1/I2: even levels advance by one for R
// and by two for AN/EN; odd levels advance by one for L, EN, or AN.
// X9-removed positions are left untouched — they never carry a
// resolved class to act on.
func resolveImplicit(states []cpState) {
	for i := range states {
		if states[i].removed {
			continue
		}
		lvl := states[i].level
		if lvl%2 == 0 {
			switch states[i].class {
			case proptables.BidiR:
				states[i].level = lvl + 1
			case proptables.BidiAN, proptables.BidiEN:
				states[i].level = lvl + 2
			}
		} else {
			switch states[i].class {
			case proptables.BidiL, proptables.BidiEN, proptables.BidiAN:
				states[i].level = lvl + 1
			}
		}
	}
}

func isWSOrIsolateFormat(c Class) bool {
	switch c {
	case proptables.BidiWS, proptables.BidiFSI, proptables.BidiLRI, proptables.BidiRLI, proptables.BidiPDI:
		return true
	}
	return false
}

func isIsolateInitiatorOrPDI(c Class) bool {
	switch c {
	case proptables.BidiLRI, proptables.BidiRLI, proptables.BidiFSI, proptables.BidiPDI:
		return true
	}
	return false
}

// resetWhitespaceLevels implements L1 over one line (or the whole
// paragraph, if called with the full state slice): segment and
// paragraph separators, any whitespace/isolate-format run preceding
// one, and any such run at the end of the line all reset to the
// paragraph level. Uses each state's original (pre-W/N) class, since
// L1 is defined in terms of the character's original type regardless
// of what W1-N2 resolved it to.
func resetWhitespaceLevels(states []cpState, paragraphLevel Level) {
	n := len(states)
	i := n - 1
	for i >= 0 && (states[i].removed || isWSOrIsolateFormat(states[i].origClass)) {
		states[i].level = paragraphLevel
		i--
	}
	for k := 0; k < n; k++ {
		if states[k].origClass != proptables.BidiS && states[k].origClass != proptables.BidiB {
			continue
		}
		states[k].level = paragraphLevel
		j := k - 1
		for j >= 0 && (states[j].removed || isWSOrIsolateFormat(states[j].origClass)) {
			states[j].level = paragraphLevel
			j--
		}
	}
}

// reorder implements L2: visual reordering by successively reversing
// maximal same-or-higher-level runs from the highest level down to the
// lowest odd level. Isolate initiators, PDI, and X9-removed format
// characters are suppressed from the output per the engine's output
// contract. Runs are emitted as ReorderedRuns over original code-point
// indices rather than by physically moving code points, so a reversed
// run's contents can still be read out directly from the source slice.
func reorder(states []cpState) []ReorderedRun {
	n := len(states)
	visible := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if states[i].removed || isIsolateInitiatorOrPDI(states[i].origClass) {
			continue
		}
		visible = append(visible, i)
	}
	if len(visible) == 0 {
		return nil
	}

	var maxLvl Level
	minOdd := Level(-1)
	for _, i := range visible {
		l := states[i].level
		if l > maxLvl {
			maxLvl = l
		}
		if l%2 == 1 && (minOdd == -1 || l < minOdd) {
			minOdd = l
		}
	}

	order := make([]int, len(visible))
	for i := range order {
		order[i] = i
	}
	if minOdd != -1 {
		for level := maxLvl; level >= minOdd; level-- {
			k := 0
			for k < len(order) {
				if states[visible[order[k]]].level < level {
					k++
					continue
				}
				j := k
				for j < len(order) && states[visible[order[j]]].level >= level {
					j++
				}
				for a, b := k, j-1; a < b; a, b = a+1, b-1 {
					order[a], order[b] = order[b], order[a]
				}
				k = j
			}
		}
	}

	var runs []ReorderedRun
	p := 0
	for p < len(order) {
		start := visible[order[p]]
		q := p + 1
		if q < len(order) && visible[order[q]] == start-1 {
			for q < len(order) && visible[order[q]] == visible[order[q-1]]-1 {
				q++
			}
			runs = append(runs, ReorderedRun{Start: visible[order[q-1]], End: start + 1, Reversed: true})
		} else {
			for q < len(order) && visible[order[q]] == visible[order[q-1]]+1 {
				q++
			}
			runs = append(runs, ReorderedRun{Start: start, End: visible[order[q-1]] + 1, Reversed: false})
		}
		p = q
	}
	return runs
}
