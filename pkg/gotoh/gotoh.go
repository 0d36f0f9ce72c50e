// Feb 2018, local affine version Oct 2026

// Package gotoh implements the Gotoh version of pair-wise alignments,
// here only the local (Smith-Waterman) flavour.
// We use a full matrix of summed scores and a byte matrix of
// directions for the traceback. The gap score is affine. The first
// position of a gap costs GapOpen and each further position GapExtend.
//
// Ties are broken the same way every time. In a cell, the diagonal
// beats a gap in the second sequence, which beats a gap in the
// first. A gap is only extended if that is strictly better than
// opening it again. The traceback starts at the first best cell met
// when scanning row by row, rows being positions in the first
// sequence.
package gotoh

import (
	"fmt"

	"github.com/andrew-torda/exoncons/pkg/read"
	"github.com/andrew-torda/matrix"
)

// Gap marks a position in a Pair with no partner.
const Gap = -1

// Pair has the indices of two aligned positions. One of them may be Gap.
type Pair struct {
	A, B int
}

// Scoring is the scoring scheme. Penalties are negative numbers.
type Scoring struct {
	Match     float32 // matched characters
	Mismatch  float32 // mismatched
	GapOpen   float32 // first position of a gap
	GapExtend float32 // each further position
}

// DefaultScoring is tuned for two reads of the same region. It wants
// long matching stretches and few, short gaps.
func DefaultScoring() Scoring {
	return Scoring{Match: 2, Mismatch: -1, GapOpen: -10, GapExtend: -0.1}
}

// Check says if a scheme can give a sensible local alignment. A match
// must pay and gaps must cost something.
func (scr *Scoring) Check() error {
	switch {
	case scr.Match <= 0:
		return fmt.Errorf("match score %g must be positive", scr.Match)
	case scr.Mismatch >= scr.Match:
		return fmt.Errorf("mismatch score %g should be below match %g", scr.Mismatch, scr.Match)
	case scr.GapOpen > 0 || scr.GapExtend > 0:
		return fmt.Errorf("gap penalties %g and %g must not be positive", scr.GapOpen, scr.GapExtend)
	}
	return nil
}

// Result is an alignment. Pairs are in increasing order and never empty.
type Result struct {
	Pairs []Pair
	Score float32
}

// AlignmentError means there was nothing worth aligning.
type AlignmentError struct {
	Exon       read.ExonID // filled in by the caller, if it knows
	Score      float32     // best score found, zero or less
	LenA, LenB int
}

func (e *AlignmentError) Error() string {
	if e.LenA == 0 || e.LenB == 0 {
		return fmt.Sprintf("exon %d: no overlap detected, sequence lengths %d and %d",
			e.Exon, e.LenA, e.LenB)
	}
	return fmt.Sprintf("exon %d: no overlap detected", e.Exon)
}

// The bottom two bits are where we came from in the H matrix.
// The next two say if the gap running down (P) or across (Q) was
// extended rather than opened in this cell.
const (
	stop byte = iota // traceback stops
	diag             // diagonal movement
	pway             // along the P direction, vertical, over rows
	qway             // Q direction, horizontal, over columns
)

const (
	dirMask byte = 3
	pExt    byte = 1 << 2
	qExt    byte = 1 << 3
)

const bigf float32 = -1e+38

// pairScr is the score for putting c against d
func (scr *Scoring) pairScr(c, d byte) float32 {
	if c == d {
		return scr.Match
	}
	return scr.Mismatch
}

// Align aligns s against t. The s positions appear as Pair.A, t as
// Pair.B. If no cell scores above zero, we return an AlignmentError.
func Align(s, t []byte, scr *Scoring) (Result, error) {
	if len(s) == 0 || len(t) == 0 {
		return Result{}, &AlignmentError{LenA: len(s), LenB: len(t)}
	}
	nrow, ncol := len(s)+1, len(t)+1 // Row and column 0 are zero
	hmat := matrix.NewFMatrix2d(nrow, ncol)
	dmat := matrix.NewBMatrix2d(nrow, ncol) // stop is zero, so borders are set
	h, dir := hmat.Mat, dmat.Mat

	p := make([]float32, ncol) // best score ending in a vertical gap
	for j := range p {
		p[j] = bigf
	}
	opn, ext := scr.GapOpen, scr.GapExtend
	for i := 1; i < nrow; i++ { // Walk along each row, left to right.
		q := bigf
		hprev, hrow := h[i-1], h[i]
		for j := 1; j < ncol; j++ {
			var d byte
			if x := p[j] + ext; x > hprev[j]+opn {
				p[j] = x
				d |= pExt
			} else {
				p[j] = hprev[j] + opn
			}
			if x := q + ext; x > hrow[j-1]+opn {
				q = x
				d |= qExt
			} else {
				q = hrow[j-1] + opn
			}
			best := hprev[j-1] + scr.pairScr(s[i-1], t[j-1])
			drctn := diag
			if p[j] > best {
				best, drctn = p[j], pway
			}
			if q > best {
				best, drctn = q, qway
			}
			if best <= 0 {
				best, drctn = 0, stop
			}
			hrow[j] = best
			dir[i][j] = d | drctn
		}
	}
	pairs, maxScr := traceback(h, dir)
	if pairs == nil {
		return Result{}, &AlignmentError{Score: maxScr, LenA: len(s), LenB: len(t)}
	}
	return Result{Pairs: pairs, Score: maxScr}, nil
}

// traceback finds the best cell and walks back until a cell says stop.
// It returns nil if nothing scored above zero.
func traceback(h [][]float32, dir [][]byte) (pairlist []Pair, maxScr float32) {
	var maxI, maxJ int
	for i := 1; i < len(h); i++ {
		for j := 1; j < len(h[i]); j++ {
			if h[i][j] > maxScr {
				maxScr, maxI, maxJ = h[i][j], i, j
			}
		}
	}
	if maxScr <= 0 {
		return nil, maxScr
	}
	bigger := maxI // a guess at the space we need
	if maxJ > bigger {
		bigger = maxJ
	}
	pairlist = make([]Pair, 0, bigger+bigger/10)

	const (
		inH = iota
		inP
		inQ
	)
	state := inH
	i, j := maxI, maxJ
walk:
	for {
		switch state {
		case inH:
			switch dir[i][j] & dirMask {
			case stop:
				break walk
			case diag:
				pairlist = append(pairlist, Pair{i - 1, j - 1})
				i--
				j--
			case pway:
				state = inP
			case qway:
				state = inQ
			}
		case inP:
			pairlist = append(pairlist, Pair{i - 1, Gap})
			if dir[i][j]&pExt == 0 {
				state = inH
			}
			i--
		case inQ:
			pairlist = append(pairlist, Pair{Gap, j - 1})
			if dir[i][j]&qExt == 0 {
				state = inH
			}
			j--
		}
	}

	for i, j := 0, len(pairlist)-1; i < j; i, j = i+1, j-1 {
		pairlist[i], pairlist[j] = pairlist[j], pairlist[i]
	}
	return pairlist, maxScr
}
