// 15 Oct 2026

// Package cons builds a consensus for one exon from a forward and a
// reverse read. The reads are aligned locally, and each aligned
// position is given to Resolve. The result only covers the part
// where the reads overlap. Tails that only one read saw are dropped,
// since nothing checks them.
package cons

import (
	"errors"

	"github.com/andrew-torda/exoncons/pkg/gotoh"
	"github.com/andrew-torda/exoncons/pkg/read"
)

// ExonCons is the consensus for an exon.
type ExonCons struct {
	Exon  read.ExonID
	Calls []Call
	Score float32      // alignment score
	Aln   gotoh.Result // kept for writing out alignments
}

// Seq returns the consensus bases.
func (e *ExonCons) Seq() []byte {
	s := make([]byte, len(e.Calls))
	for i, c := range e.Calls {
		s[i] = c.Base
	}
	return s
}

// Qual returns the quality at each consensus base.
func (e *ExonCons) Qual() []uint8 {
	q := make([]uint8, len(e.Calls))
	for i, c := range e.Calls {
		q[i] = c.Qual
	}
	return q
}

// Len is the number of consensus positions.
func (e *ExonCons) Len() int { return len(e.Calls) }

// Build checks the two reads, aligns them and resolves each position.
// a is the forward read and b the reverse read, already turned round
// so both run the same way. Errors are a *read.DataError or a
// *gotoh.AlignmentError, with the exon filled in.
func Build(exon read.ExonID, a, b *read.Read, scr *gotoh.Scoring) (*ExonCons, error) {
	for _, x := range []struct {
		r   *read.Read
		dir read.Direction
	}{{a, read.Fwd}, {b, read.Rev}} {
		if err := read.Validate(x.r, x.dir); err != nil {
			var de *read.DataError
			if errors.As(err, &de) {
				de.Exon = exon
			}
			return nil, err
		}
	}

	aln, err := gotoh.Align(a.Seq, b.Seq, scr)
	if err != nil {
		var ae *gotoh.AlignmentError
		if errors.As(err, &ae) {
			ae.Exon = exon
		}
		return nil, err
	}

	calls := make([]Call, len(aln.Pairs))
	for i, p := range aln.Pairs {
		calls[i] = Resolve(p, a, b)
	}
	return &ExonCons{Exon: exon, Calls: calls, Score: aln.Score, Aln: aln}, nil
}
