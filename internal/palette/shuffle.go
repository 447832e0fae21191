package palette

import "math"

// Seq is the deterministic pseudo-random sequence behind the shuffle and
// the mesh arrangement. Not cryptographic and not statistically strong;
// its one job is to turn a small integer seed into a repeatable stream so
// the same seed always yields the same composition.
type Seq struct {
	state int64
}

// NewSeq returns a sequence positioned at seed. Successive seeds produce
// unrelated-looking streams, which is what the randomize action (seed+1)
// relies on.
func NewSeq(seed int64) *Seq {
	return &Seq{state: seed}
}

// Next advances the sequence and returns a value in [0,1).
func (s *Seq) Next() float64 {
	s.state++
	v := math.Sin(float64(s.state)) * 10000
	return v - math.Floor(v)
}

// Shuffle returns a seeded permutation of colors, padded to at least Size
// entries by repetition. The input is never modified. Identical
// (colors, seed) pairs always produce the same arrangement.
func Shuffle(colors []string, seed int64) []string {
	src := colors
	if len(src) == 0 {
		src = fallbackColors[:]
	}

	n := len(src)
	if n < Size {
		n = Size
	}
	out := make([]string, n)
	for i := range out {
		out[i] = src[i%len(src)]
	}

	seq := NewSeq(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(seq.Next() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
