package bidi

import "github.com/boxesandglue/unitext/proptables"

func isNI(c Class) bool {
	switch c {
	case proptables.BidiB, proptables.BidiS, proptables.BidiWS, proptables.BidiON,
		proptables.BidiFSI, proptables.BidiLRI, proptables.BidiRLI, proptables.BidiPDI:
		return true
	}
	return false
}

// resolveNeutral implements N1/N2: a maximal run of neutral-or-isolate
// types takes the direction shared by the strong text on both sides
// (N1, EN/AN counting as R), or the run sequence's embedding direction
// when the two sides disagree (N2).
func resolveNeutral(states []cpState, seq runSequence) {
	idx := seq.indices(states)
	n := len(idx)
	if n == 0 {
		return
	}
	e := directionOf(seq.runs[0].level)

	for k := 0; k < n; {
		if !isNI(states[idx[k]].class) {
			k++
			continue
		}
		j := k
		for j < n && isNI(states[idx[j]].class) {
			j++
		}

		left := seq.sos
		if k > 0 {
			if d, ok := strongDirectionOf(states[idx[k-1]].class); ok {
				left = d
			}
		}
		right := seq.eos
		if j < n {
			if d, ok := strongDirectionOf(states[idx[j]].class); ok {
				right = d
			}
		}

		resolved := e
		if left == right {
			resolved = left
		}
		for t := k; t < j; t++ {
			states[idx[t]].class = resolved
		}
		k = j
	}
}
