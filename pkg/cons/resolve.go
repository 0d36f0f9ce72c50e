// 15 Oct 2026

package cons

import (
	"github.com/andrew-torda/exoncons/pkg/gotoh"
	"github.com/andrew-torda/exoncons/pkg/read"
	"github.com/andrew-torda/exoncons/pkg/seq/common"
)

// Source says which read gave us a base.
type Source byte

const (
	NoSrc Source = iota // neither, only for a broken pair
	FromA               // read A, the forward read
	FromB               // read B, the reverse read
	Agree               // both reads had the same base
)

func (s Source) String() string {
	switch s {
	case FromA:
		return "A"
	case FromB:
		return "B"
	case Agree:
		return "AB"
	}
	return "-"
}

// Call is one position in the consensus.
type Call struct {
	Base byte
	Qual uint8
	Src  Source
	Pair gotoh.Pair // where in the two reads it came from
}

// Resolve decides the base and quality at one aligned position.
// At a gap we take the other read. If the bases agree, we take the
// better quality. If they disagree, the better quality wins and, if
// the qualities are equal, read A wins.
func Resolve(p gotoh.Pair, a, b *read.Read) Call {
	switch {
	case p.A == gotoh.Gap && p.B == gotoh.Gap:
		return Call{Base: common.GapChar, Src: NoSrc, Pair: p}
	case p.A == gotoh.Gap:
		return Call{Base: b.Seq[p.B], Qual: b.Qual[p.B], Src: FromB, Pair: p}
	case p.B == gotoh.Gap:
		return Call{Base: a.Seq[p.A], Qual: a.Qual[p.A], Src: FromA, Pair: p}
	}
	baseA, qA := a.Seq[p.A], a.Qual[p.A]
	baseB, qB := b.Seq[p.B], b.Qual[p.B]
	if baseA == baseB {
		return Call{Base: baseA, Qual: max(qA, qB), Src: Agree, Pair: p}
	}
	if qB > qA {
		return Call{Base: baseB, Qual: qB, Src: FromB, Pair: p}
	}
	return Call{Base: baseA, Qual: qA, Src: FromA, Pair: p}
}
