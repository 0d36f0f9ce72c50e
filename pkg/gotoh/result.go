// 15 Oct 2026

package gotoh

import "strings"

const gapChar = '-'

// Strings gives the two aligned strings with '-' at gaps. s and t
// must be the sequences that were aligned. It is mainly for printing
// when debugging or being verbose.
func (r *Result) Strings(s, t []byte) (string, string) {
	var outs1, outs2 strings.Builder
	outs1.Grow(len(r.Pairs))
	outs2.Grow(len(r.Pairs))
	for _, p := range r.Pairs {
		if p.A == Gap {
			outs1.WriteByte(gapChar)
		} else {
			outs1.WriteByte(s[p.A])
		}
		if p.B == Gap {
			outs2.WriteByte(gapChar)
		} else {
			outs2.WriteByte(t[p.B])
		}
	}
	return outs1.String(), outs2.String()
}

// Span returns the first and last aligned positions in each sequence.
// The ends of a local alignment are never gaps, so these are just the
// first and last pair.
func (r *Result) Span() (aFirst, aLast, bFirst, bLast int) {
	if len(r.Pairs) == 0 {
		return Gap, Gap, Gap, Gap
	}
	first, last := r.Pairs[0], r.Pairs[len(r.Pairs)-1]
	return first.A, last.A, first.B, last.B
}

// Counts tallies identical pairs, mismatched pairs and gap positions.
func (r *Result) Counts(s, t []byte) (nMatch, nMismatch, nGap int) {
	for _, p := range r.Pairs {
		switch {
		case p.A == Gap || p.B == Gap:
			nGap++
		case s[p.A] == t[p.B]:
			nMatch++
		default:
			nMismatch++
		}
	}
	return
}
