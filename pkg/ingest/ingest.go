// 15 Oct 2026

// Package ingest finds the reads in a directory, works out which exon
// and direction each belongs to, turns the reverse reads round and
// pairs them up.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/andrew-torda/exoncons/pkg/abif"
	"github.com/andrew-torda/exoncons/pkg/cons"
	"github.com/andrew-torda/exoncons/pkg/fastq"
	"github.com/andrew-torda/exoncons/pkg/read"
)

// Options controls how reads are cleaned up on the way in.
type Options struct {
	AmbigToN bool // replace IUPAC codes with N
}

const (
	extAbif  = ".ab1"
	extAbi   = ".abi"
	extFq    = ".fq"
	extFastq = ".fastq"
)

// isReadFile says if a name ends with something we know how to read
func isReadFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case extAbif, extAbi, extFq, extFastq:
		return true
	}
	return false
}

// Orient returns a read in the forward sense. A reverse read is
// reverse complemented. A forward read is copied.
func Orient(r *read.Read, dir read.Direction) read.Read {
	if dir == read.Rev {
		return r.RevComp()
	}
	return r.Copy()
}

// entry is a read we have seen and where it came from
type entry struct {
	sample string
	src    string
	r      read.Read
}

// Set holds oriented reads, by exon and direction. There may be more
// than one read under a key. That is only an error when we pair.
type Set struct {
	reads  map[read.Key][]entry
	nAmbig int
}

// NewSet returns an empty Set.
func NewSet() *Set { return &Set{reads: make(map[read.Key][]entry)} }

// Add cleans up r, orients it and stores it. src is only for error
// messages.
func (s *Set) Add(meta Meta, r read.Read, src string, opts Options) {
	r = r.Copy()
	r.Upper()
	if opts.AmbigToN {
		s.nAmbig += r.AmbigToN()
	}
	k := read.Key{Exon: meta.Exon, Dir: meta.Dir}
	o := Orient(&r, meta.Dir)
	s.reads[k] = append(s.reads[k], entry{sample: meta.Sample, src: src, r: o})
}

// Len is the number of reads stored.
func (s *Set) Len() (n int) {
	for _, e := range s.reads {
		n += len(e)
	}
	return n
}

// NAmbig is how many symbols were changed to N.
func (s *Set) NAmbig() int { return s.nAmbig }

// PairError is a problem with the reads for an exon, rather than with
// the data in a read.
type PairError struct {
	Exon read.ExonID
	Dir  read.Direction
	Srcs []string // empty if the read is missing
}

func (e *PairError) Error() string {
	if len(e.Srcs) == 0 {
		return fmt.Sprintf("exon %d: no %s read", e.Exon, e.Dir)
	}
	return fmt.Sprintf("exon %d: %d %s reads (%s)", e.Exon, len(e.Srcs), e.Dir,
		strings.Join(e.Srcs, ", "))
}

// one checks there is exactly one read under k
func (s *Set) one(k read.Key) (*entry, error) {
	e := s.reads[k]
	if len(e) == 1 {
		return &e[0], nil
	}
	perr := &PairError{Exon: k.Exon, Dir: k.Dir}
	for _, x := range e {
		perr.Srcs = append(perr.Srcs, x.src)
	}
	return nil, perr
}

// Pairs makes a job for every exon with exactly one read in each
// direction. Jobs come in ascending exon order. Exons with a missing
// or extra read give an error instead.
func (s *Set) Pairs() ([]cons.Job, []error) {
	var exons []read.ExonID
	for k := range s.reads {
		if !slices.Contains(exons, k.Exon) {
			exons = append(exons, k.Exon)
		}
	}
	slices.Sort(exons)
	var jobs []cons.Job
	var errs []error
	for _, x := range exons {
		f, errF := s.one(read.Key{Exon: x, Dir: read.Fwd})
		r, errR := s.one(read.Key{Exon: x, Dir: read.Rev})
		if errF != nil || errR != nil {
			for _, err := range []error{errF, errR} {
				if err != nil {
					errs = append(errs, err)
				}
			}
			continue
		}
		jobs = append(jobs, cons.Job{Sample: f.sample, Exon: x, Fwd: f.r, Rev: r.r})
	}
	return jobs, errs
}

// loadAbif adds one trace file, named by its file name
func (s *Set) loadAbif(path string, opts Options) error {
	meta, err := ParseName(path)
	if err != nil {
		return err
	}
	seq, qual, err := abif.ReadFile(path)
	if err != nil {
		return err
	}
	s.Add(meta, read.Read{Name: filepath.Base(path), Seq: seq, Qual: qual}, path, opts)
	return nil
}

// loadFastq adds every record in a file. Records are named by their
// own names, so one file can hold a whole sample.
func (s *Set) loadFastq(path string, opts Options) []error {
	recs, err := fastq.ReadFile(path)
	if err != nil {
		return []error{err}
	}
	var errs []error
	for _, rec := range recs {
		meta, err := ParseName(rec.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		r := read.Read{Name: rec.Name, Seq: rec.Seq, Qual: rec.Qual}
		s.Add(meta, r, path+":"+rec.Name, opts)
	}
	return errs
}

// LoadDir reads every trace and fastq file in dir. Other files are
// ignored. A broken file is reported and skipped, so the returned Set
// is usable even if there are errors.
func LoadDir(dir string, opts Options) (*Set, []error) {
	s := NewSet()
	ents, err := os.ReadDir(dir)
	if err != nil {
		return s, []error{err}
	}
	var errs []error
	for _, e := range ents { // ReadDir sorts by name
		if e.IsDir() || !isReadFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		switch strings.ToLower(filepath.Ext(path)) {
		case extAbif, extAbi:
			if err := s.loadAbif(path, opts); err != nil {
				errs = append(errs, err)
			}
		default:
			errs = append(errs, s.loadFastq(path, opts)...)
		}
	}
	return s, errs
}
