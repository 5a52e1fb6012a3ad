package segment

// ParagraphBoundaries returns every paragraph boundary position in
// cps: breaks after CR+LF, CR, LF, NEL (U+0085), LS (U+2028),
// PS (U+2029), and FF/VT (spec §4.F.5).
func ParagraphBoundaries(cps []rune) []int {
	n := len(cps)
	if n == 0 {
		return []int{0}
	}
	breaks := []int{0}
	for i := 0; i < n; i++ {
		switch cps[i] {
		case '\r':
			if i+1 < n && cps[i+1] == '\n' {
				breaks = append(breaks, i+2)
				i++
				continue
			}
			breaks = append(breaks, i+1)
		case '\n', 0x0B, 0x0C, 0x85, 0x2028, 0x2029:
			breaks = append(breaks, i+1)
		}
	}
	if breaks[len(breaks)-1] != n {
		breaks = append(breaks, n)
	}
	return breaks
}
