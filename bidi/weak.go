package bidi

import "github.com/boxesandglue/unitext/proptables"

// resolveWeak runs W1-W7 over one run sequence's non-removed code
// points, in order, mutating states[i].class in place. sos stands in
// for "the character before the sequence" and is itself either L or R
// (BD13), so every backward search below can simply start from it
// instead of special-casing the sequence boundary.
func resolveWeak(states []cpState, seq runSequence) {
	idx := seq.indices(states)
	n := len(idx)
	if n == 0 {
		return
	}

	// W1: NSM takes the type of the preceding character, ON if that
	// character is an isolate initiator or PDI, or sos at the start of
	// the sequence.
	prev := seq.sos
	for _, i := range idx {
		if states[i].class == proptables.BidiNSM {
			switch prev {
			case proptables.BidiLRI, proptables.BidiRLI, proptables.BidiFSI, proptables.BidiPDI:
				states[i].class = proptables.BidiON
			default:
				states[i].class = prev
			}
		}
		prev = states[i].class
	}

	// W2: EN takes AN when the last strong type seen is AL.
	lastStrong := seq.sos
	for _, i := range idx {
		switch states[i].class {
		case proptables.BidiL, proptables.BidiR, proptables.BidiAL:
			lastStrong = states[i].class
		case proptables.BidiEN:
			if lastStrong == proptables.BidiAL {
				states[i].class = proptables.BidiAN
			}
		}
	}

	// W3: AL becomes R.
	for _, i := range idx {
		if states[i].class == proptables.BidiAL {
			states[i].class = proptables.BidiR
		}
	}

	// W4: a single ES/CS between two EN becomes EN; a single CS
	// between two AN becomes AN.
	for k, i := range idx {
		c := states[i].class
		if c != proptables.BidiES && c != proptables.BidiCS {
			continue
		}
		if k == 0 || k == n-1 {
			continue
		}
		left, right := states[idx[k-1]].class, states[idx[k+1]].class
		if left == proptables.BidiEN && right == proptables.BidiEN {
			states[i].class = proptables.BidiEN
		} else if c == proptables.BidiCS && left == proptables.BidiAN && right == proptables.BidiAN {
			states[i].class = proptables.BidiAN
		}
	}

	// W5: a run of ET adjacent to an EN becomes EN.
	for k := 0; k < n; {
		if states[idx[k]].class != proptables.BidiET {
			k++
			continue
		}
		j := k
		for j < n && states[idx[j]].class == proptables.BidiET {
			j++
		}
		prevIsEN := k > 0 && states[idx[k-1]].class == proptables.BidiEN
		nextIsEN := j < n && states[idx[j]].class == proptables.BidiEN
		if prevIsEN || nextIsEN {
			for t := k; t < j; t++ {
				states[idx[t]].class = proptables.BidiEN
			}
		}
		k = j
	}

	// W6: remaining separators/terminators become ON.
	for _, i := range idx {
		switch states[i].class {
		case proptables.BidiES, proptables.BidiET, proptables.BidiCS:
			states[i].class = proptables.BidiON
		}
	}

	// W7: EN takes L when the last strong type seen is L.
	lastStrong = seq.sos
	for _, i := range idx {
		switch states[i].class {
		case proptables.BidiL, proptables.BidiR:
			lastStrong = states[i].class
		case proptables.BidiEN:
			if lastStrong == proptables.BidiL {
				states[i].class = proptables.BidiL
			}
		}
	}
}
