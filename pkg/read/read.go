// 14 Oct 2026

// Package read has the sequencing read, a set of bases with one
// Phred quality per base, and the little types used to say which
// exon and which direction a read belongs to.
package read

import (
	"fmt"
	"strconv"
)

// ExonID is the exon number. Ingestion makes sure it is positive.
type ExonID int

func (e ExonID) String() string { return strconv.Itoa(int(e)) }

// Direction says if a read came from the forward or reverse primer.
type Direction byte

const (
	Fwd Direction = iota // forward read
	Rev                  // reverse read
)

// String gives the letter used in file names.
func (d Direction) String() string {
	if d == Rev {
		return "R"
	}
	return "F"
}

// Key is how we look up a read. It replaces gluing exon numbers and
// direction letters into strings.
type Key struct {
	Exon ExonID
	Dir  Direction
}

func (k Key) String() string { return k.Exon.String() + k.Dir.String() }

// Read is a sequence of bases and the quality of each base.
// Once made, nobody should change the contents.
type Read struct {
	Name string  // where it came from, file or record name
	Seq  []byte  // bases, A, C, G, T or N
	Qual []uint8 // Phred quality, one per base
}

// New makes a read from a string and a quality slice. It is mostly
// for tests and does not copy the qualities.
func New(name, s string, qual []uint8) Read {
	return Read{Name: name, Seq: []byte(s), Qual: qual}
}

// Len is the number of bases.
func (r *Read) Len() int { return len(r.Seq) }

// Copy returns a read with its own storage.
func (r *Read) Copy() Read {
	t := Read{Name: r.Name}
	t.Seq = append([]byte(nil), r.Seq...)
	t.Qual = append([]uint8(nil), r.Qual...)
	return t
}

// What went wrong in a read
type Check byte

const (
	LenMismatch Check = iota // bases and qualities differ in length
	BadSym                   // symbol outside ACGTN
	Empty                    // no bases at all
)

// DataError says that a read is broken. Exon is filled in by whoever
// knows which exon we were working on.
type DataError struct {
	Exon  ExonID
	Dir   Direction
	Check Check
	NSeq  int  // number of bases
	NQual int  // number of quality values
	Pos   int  // position of bad symbol
	Sym   byte // the bad symbol
}

func (e *DataError) Error() string {
	s := fmt.Sprintf("exon %d, read %s: ", e.Exon, e.Dir)
	switch e.Check {
	case LenMismatch:
		return s + fmt.Sprintf("%d bases but %d quality values", e.NSeq, e.NQual)
	case BadSym:
		return s + fmt.Sprintf("bad symbol %q at position %d", e.Sym, e.Pos)
	}
	return s + "empty sequence"
}

// okSym is the alphabet we accept
var okSym = [256]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}

// Validate checks the read is usable. dir only goes into the error.
func Validate(r *Read, dir Direction) error {
	if len(r.Seq) != len(r.Qual) {
		return &DataError{Dir: dir, Check: LenMismatch, NSeq: len(r.Seq), NQual: len(r.Qual)}
	}
	if len(r.Seq) == 0 {
		return &DataError{Dir: dir, Check: Empty}
	}
	for i, c := range r.Seq {
		if !okSym[c] {
			return &DataError{Dir: dir, Check: BadSym, NSeq: len(r.Seq),
				NQual: len(r.Qual), Pos: i, Sym: c}
		}
	}
	return nil
}
