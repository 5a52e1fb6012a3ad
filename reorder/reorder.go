// Package reorder implements the normalizer's bounded scratch buffer
// for canonical-ordering insertion of combining marks (spec §3, §4.C
// — component C, ReorderingBuffer).
//
// Grounded on the reorderBuffer type in other_examples'
// .../exp/norm/composition.go (Go's own x/text-predecessor
// normalization package), adapted from a UTF-8 byte buffer to a
// code-point buffer since this module's Normalizer works in decoded
// code points end to end (package normalize handles the UTF-8/UTF-16
// boundary).
package reorder

// Capacity is the maximum number of code points the buffer can hold
// before a flush is required. Spec §5 documents the bound as 1024
// UTF-16 units; since this buffer holds decoded code points rather
// than UTF-16 code units, 1024 code-point slots is a superset of that
// bound (a surrogate pair would have needed two UTF-16 slots for one
// code point) — see DESIGN.md.
const Capacity = 1024

// Sink receives the buffer's canonically ordered output, one code
// point at a time, in order (spec §6 "append the bytes/units to the
// user's sink in order").
type Sink interface {
	AppendRune(r rune)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(r rune)

// AppendRune implements Sink.
func (f SinkFunc) AppendRune(r rune) { f(r) }

// Buffer is the mutable scratch the Normalizer uses to canonically
// reorder a run of combining marks before flushing it to a Sink.
type Buffer struct {
	runes []rune
	ccs   []uint8

	reorderStart int
	lastCC       uint8
	inhibitDepth int

	sink Sink
}

// New creates a Buffer that flushes to sink.
func New(sink Sink) *Buffer {
	b := &Buffer{sink: sink}
	b.runes = make([]rune, 0, Capacity)
	b.ccs = make([]uint8, 0, Capacity)
	return b
}

// Reset discards all buffered code points without flushing them.
func (b *Buffer) Reset() {
	b.runes = b.runes[:0]
	b.ccs = b.ccs[:0]
	b.reorderStart = 0
	b.lastCC = 0
}

// SetSink redirects future flushes. Used by the Normalizer when
// recomposing a segment that must not reach the caller's sink.
func (b *Buffer) SetSink(sink Sink) { b.sink = sink }

// Len reports the number of code points currently buffered.
func (b *Buffer) Len() int { return len(b.runes) }

// At returns the code point at buffer position i.
func (b *Buffer) At(i int) rune { return b.runes[i] }

// CCAt returns the combining class at buffer position i.
func (b *Buffer) CCAt(i int) uint8 { return b.ccs[i] }

// LastCC returns the combining class of the final buffered code
// point, or 0 if the buffer is empty.
func (b *Buffer) LastCC() uint8 { return b.lastCC }

// Replace overwrites the code point at position i, keeping its cc.
func (b *Buffer) Replace(i int, r rune) { b.runes[i] = r }

// Truncate drops every buffered code point from position n onward.
func (b *Buffer) Truncate(n int) {
	b.runes = b.runes[:n]
	b.ccs = b.ccs[:n]
	if b.reorderStart > n {
		b.reorderStart = n
	}
}

// InhibitFlush disables automatic flushing on a zero-cc append until
// the returned function is called, for composing a segment that will
// be recomputed in place (spec §4.C). Calls nest.
func (b *Buffer) InhibitFlush() (release func()) {
	b.inhibitDepth++
	return func() { b.inhibitDepth-- }
}

func (b *Buffer) inhibited() bool { return b.inhibitDepth > 0 }

// Append inserts cp (with combining class cc) in canonical order. If
// cc is zero (or the buffer is already monotonically non-decreasing
// through cc) it is appended at the end; otherwise it is inserted just
// after the nearest preceding code point whose cc is <= cc, scanning
// back only as far as reorderStart. Returns false if the buffer is
// full (spec §4.D: unreachable given the default flush discipline).
func (b *Buffer) Append(cp rune, cc uint8) bool {
	if len(b.runes) >= Capacity {
		return false
	}
	if cc == 0 || b.lastCC <= cc {
		b.runes = append(b.runes, cp)
		b.ccs = append(b.ccs, cc)
		b.lastCC = cc
	} else {
		i := len(b.runes)
		for i > b.reorderStart && b.ccs[i-1] > cc {
			i--
		}
		b.runes = append(b.runes, 0)
		b.ccs = append(b.ccs, 0)
		copy(b.runes[i+1:], b.runes[i:len(b.runes)-1])
		copy(b.ccs[i+1:], b.ccs[i:len(b.ccs)-1])
		b.runes[i] = cp
		b.ccs[i] = cc
	}
	if cc == 0 {
		b.reorderStart = len(b.runes)
		if !b.inhibited() {
			b.Flush()
		}
	}
	return true
}

// AppendZeroCC bulk-appends a known all-zero-cc run. All but the
// final code point are emitted straight to the sink; the last one is
// kept buffered so a following combining mark can still reorder
// against it (spec §4.C).
func (b *Buffer) AppendZeroCC(seq []rune) {
	if len(seq) == 0 {
		return
	}
	b.Flush()
	for _, r := range seq[:len(seq)-1] {
		b.sink.AppendRune(r)
	}
	b.runes = append(b.runes, seq[len(seq)-1])
	b.ccs = append(b.ccs, 0)
	b.lastCC = 0
	b.reorderStart = 1
}

// AppendDecomposition bulk-appends a pre-decomposed, already
// cc-ordered sequence. When lastCC <= leadCC or leadCC == 0 the whole
// sequence can be appended directly without per-character reordering;
// otherwise it falls back to Append for each code point (spec §4.C).
func (b *Buffer) AppendDecomposition(cps []rune, ccs []uint8, leadCC, trailCC uint8) bool {
	if len(cps) == 0 {
		return true
	}
	if b.lastCC <= leadCC || leadCC == 0 {
		if len(b.runes)+len(cps) > Capacity {
			return false
		}
		b.runes = append(b.runes, cps...)
		b.ccs = append(b.ccs, ccs...)
		b.lastCC = trailCC
		if trailCC == 0 {
			b.reorderStart = len(b.runes)
			if !b.inhibited() {
				b.Flush()
			}
		}
		return true
	}
	for i, r := range cps {
		if !b.Append(r, ccs[i]) {
			return false
		}
	}
	return true
}

// Flush emits every buffered code point to the sink, in order, and
// clears the buffer.
func (b *Buffer) Flush() {
	for _, r := range b.runes {
		b.sink.AppendRune(r)
	}
	b.Reset()
}

// Remove deletes the code point at position i, shifting later entries
// left. Used by recompose (package normalize) when a combining mark
// is absorbed into a composite.
func (b *Buffer) Remove(i int) {
	copy(b.runes[i:], b.runes[i+1:])
	copy(b.ccs[i:], b.ccs[i+1:])
	b.runes = b.runes[:len(b.runes)-1]
	b.ccs = b.ccs[:len(b.ccs)-1]
	if b.reorderStart > i {
		b.reorderStart--
	}
}
