// 31 July 2020

package randseq_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/exoncons/pkg/brokenio"
	"github.com/andrew-torda/exoncons/pkg/fastq"
	"github.com/andrew-torda/exoncons/pkg/ingest"
	"github.com/andrew-torda/exoncons/pkg/randseq"
	"github.com/andrew-torda/exoncons/pkg/read"
)

func TestSimple(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{
		Iseed:   1637,
		Wrtr:    &sb,
		Cmmt:    "testing",
		Nexon:   500,
		Len:     160,
		MutRate: 0.02,
		Del:     true,
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	recs, err := fastq.Read(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2*args.Nexon {
		t.Fatal("got", len(recs), "records, expected", 2*args.Nexon)
	}
	for i, r := range recs {
		meta, err := ingest.ParseName(r.Name)
		if err != nil {
			t.Fatal(err)
		}
		if int(meta.Exon) != i/2+1 || meta.Sample != "testing" {
			t.Fatalf("record %d is %+v", i, meta)
		}
	}
}

func TestSame(t *testing.T) {
	args := randseq.RandSeqArgs{Iseed: 99, Nexon: 20, Len: 50, MutRate: 0.1}
	a, b := randseq.Pairs(&args), randseq.Pairs(&args)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatal("same seed, different pairs", diff)
	}
	args.Iseed++
	if c := randseq.Pairs(&args); cmp.Equal(a, c) {
		t.Fatal("different seeds, same pairs")
	}
}

// TestReads checks the reverse read really is the reverse complement
// of the core, with one base gone.
func TestReads(t *testing.T) {
	args := randseq.RandSeqArgs{Iseed: 5, Nexon: 10, Len: 40, Flank: 6, Del: true}
	for _, p := range randseq.Pairs(&args) {
		if !bytes.Contains(p.Fwd.Seq, p.Core) {
			t.Fatal("forward read does not have the core")
		}
		if len(p.Fwd.Seq) != len(p.Fwd.Qual) || len(p.Rev.Seq) != len(p.Rev.Qual) {
			t.Fatal("length mismatch in", p.Exon)
		}
		r := read.Read{Seq: p.Rev.Seq, Qual: p.Rev.Qual}
		back := r.RevComp()
		if n := len(back.Seq); n < len(p.Core)-1 || n > len(p.Core)-1+2*args.Flank {
			t.Fatal("reverse read length", n)
		}
		for _, q := range back.Qual {
			if q < 20 || q > 40 {
				t.Fatal("quality out of range", q)
			}
		}
	}
}

func TestBadArgs(t *testing.T) {
	var sb strings.Builder
	if err := randseq.RandSeqMain(&randseq.RandSeqArgs{Wrtr: &sb, Nexon: 3}); err == nil {
		t.Fatal("zero length should fail")
	}
}

// TestBrokenWriter makes sure a failed write comes back and the
// generator is not left blocked.
func TestBrokenWriter(t *testing.T) {
	args := randseq.RandSeqArgs{Wrtr: brokenio.NewWriter(nil, 10), Nexon: 50, Len: 30}
	if err := randseq.RandSeqMain(&args); !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("wanted ErrBroken, got", err)
	}
}
