// 15 Oct 2026

// Package wrtsam writes the read pairs behind each consensus as SAM,
// so they can be looked at in a genome browser. Each forward read is
// a reference sequence and the reverse read is mapped onto it.
package wrtsam

import (
	"fmt"
	"io"

	"github.com/biogo/hts/sam"

	"github.com/andrew-torda/exoncons/pkg/cons"
	"github.com/andrew-torda/exoncons/pkg/gotoh"
	"github.com/andrew-torda/exoncons/pkg/read"
)

const mapQ = 60

// Name is how a read is called in the output, like sample_2F.
func Name(sample string, exon read.ExonID, dir read.Direction) string {
	k := read.Key{Exon: exon, Dir: dir}.String()
	if sample == "" {
		return k
	}
	return sample + "_" + k
}

// Cigar turns aligned pairs into CIGAR operations, with A as the
// reference and B as the query. lenB is needed for the clip at the
// end. Gaps in B are deletions, gaps in A are insertions.
func Cigar(pairs []gotoh.Pair, lenB int) []sam.CigarOp {
	var ops []sam.CigarOp
	add := func(t sam.CigarOpType, n int) {
		if n == 0 {
			return
		}
		if last := len(ops) - 1; last >= 0 && ops[last].Type() == t {
			ops[last] = sam.NewCigarOp(t, ops[last].Len()+n)
			return
		}
		ops = append(ops, sam.NewCigarOp(t, n))
	}
	bFirst, bLast := -1, -1
	for _, p := range pairs {
		if p.B != gotoh.Gap {
			if bFirst < 0 {
				bFirst = p.B
			}
			bLast = p.B
		}
	}
	if bFirst < 0 {
		return []sam.CigarOp{sam.NewCigarOp(sam.CigarSoftClipped, lenB)}
	}
	add(sam.CigarSoftClipped, bFirst)
	for _, p := range pairs {
		switch {
		case p.A == gotoh.Gap:
			add(sam.CigarInsertion, 1)
		case p.B == gotoh.Gap:
			add(sam.CigarDeletion, 1)
		default:
			add(sam.CigarMatch, 1)
		}
	}
	add(sam.CigarSoftClipped, lenB-1-bLast)
	return ops
}

// record builds the SAM line for the reverse read of one exon
func record(e *cons.ExonCons, j *cons.Job, ref *sam.Reference) (*sam.Record, error) {
	aFirst, _, _, _ := e.Aln.Span()
	if aFirst == gotoh.Gap {
		aFirst = 0
	}
	name := Name(j.Sample, j.Exon, read.Rev)
	co := Cigar(e.Aln.Pairs, j.Rev.Len())
	rec, err := sam.NewRecord(name, ref, nil, aFirst, -1, 0, mapQ, co, j.Rev.Seq, j.Rev.Qual, nil)
	if err != nil {
		return nil, fmt.Errorf("exon %d: %w", j.Exon, err)
	}
	rec.Flags = sam.Reverse
	as, err := sam.NewAux(sam.NewTag("AS"), int32(e.Score))
	if err != nil {
		return nil, err
	}
	rec.AuxFields = append(rec.AuxFields, as)
	return rec, nil
}

// Write puts every successful outcome into w as SAM. Failed exons are
// left out.
func Write(w io.Writer, outcomes []cons.Outcome) error {
	var refs []*sam.Reference
	var done []cons.Outcome
	for _, o := range outcomes {
		if o.Err != nil || o.Cons == nil {
			continue
		}
		j := o.Job
		ref, err := sam.NewReference(Name(j.Sample, j.Exon, read.Fwd), "", "", j.Fwd.Len(), nil, nil)
		if err != nil {
			return fmt.Errorf("exon %d: %w", j.Exon, err)
		}
		refs = append(refs, ref)
		done = append(done, o)
	}
	h, err := sam.NewHeader(nil, refs)
	if err != nil {
		return err
	}
	sw, err := sam.NewWriter(w, h, sam.FlagDecimal)
	if err != nil {
		return err
	}
	for i, o := range done {
		rec, err := record(o.Cons, o.Job, refs[i])
		if err != nil {
			return err
		}
		if err := sw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
