// 15 Oct 2026

package ingest_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/exoncons/pkg/abif"
	"github.com/andrew-torda/exoncons/pkg/ingest"
	"github.com/andrew-torda/exoncons/pkg/read"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		in   string
		want ingest.Meta
	}{
		{"sample_A_2F.ab1", ingest.Meta{Sample: "sample_A", Exon: 2, Dir: read.Fwd}},
		{"/some/dir/sample_A_2r.AB1", ingest.Meta{Sample: "sample_A", Exon: 2, Dir: read.Rev}},
		{"p7_12R_run3.fastq", ingest.Meta{Sample: "p7", Exon: 12, Dir: read.Rev}},
		{"3F", ingest.Meta{Exon: 3, Dir: read.Fwd}},
		{"s.1_4F extra words", ingest.Meta{Sample: "s.1", Exon: 4, Dir: read.Fwd}},
		{"x_1F_2R", ingest.Meta{Sample: "x_1F", Exon: 2, Dir: read.Rev}},
	}
	for _, tt := range tests {
		got, err := ingest.ParseName(tt.in)
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: got %+v want %+v", tt.in, got, tt.want)
		}
	}
	for _, s := range []string{"sample.ab1", "sample_2X.ab1", "sample_0F.ab1", "F", ""} {
		if _, err := ingest.ParseName(s); err == nil {
			t.Errorf("%q should not parse", s)
		}
	}
}

func TestOrient(t *testing.T) {
	r := read.New("r", "AACGT", []uint8{1, 2, 3, 4, 5})
	rev := ingest.Orient(&r, read.Rev)
	if string(rev.Seq) != "ACGTT" {
		t.Error("revcomp got", string(rev.Seq))
	}
	if diff := cmp.Diff([]uint8{5, 4, 3, 2, 1}, rev.Qual); diff != "" {
		t.Error("qualities", diff)
	}
	fwd := ingest.Orient(&r, read.Fwd)
	fwd.Seq[0] = 'T'
	if r.Seq[0] != 'A' {
		t.Error("forward orient should copy")
	}
}

func TestPairs(t *testing.T) {
	s := ingest.NewSet()
	q := []uint8{30, 30, 30, 30}
	add := func(name, seq string) {
		meta, err := ingest.ParseName(name)
		if err != nil {
			t.Fatal(err)
		}
		s.Add(meta, read.New(name, seq, q), name, ingest.Options{AmbigToN: true})
	}
	add("s_3F", "acgt")
	add("s_3R", "ACGT")
	add("s_1F", "ACRT")
	add("s_1R", "AAAA")
	add("s_2F", "ACGT")
	add("s_4R", "ACGT")
	add("s_4R_again", "ACGT")
	add("s_4F", "ACGT")
	if s.Len() != 8 {
		t.Fatal("wanted 8 reads, got", s.Len())
	}
	if s.NAmbig() != 1 {
		t.Error("wanted one ambiguity code, got", s.NAmbig())
	}
	jobs, errs := s.Pairs()
	if len(jobs) != 2 || jobs[0].Exon != 1 || jobs[1].Exon != 3 {
		t.Fatalf("wrong jobs %+v", jobs)
	}
	if string(jobs[0].Fwd.Seq) != "ACNT" || string(jobs[0].Rev.Seq) != "TTTT" {
		t.Error("exon 1 reads", string(jobs[0].Fwd.Seq), string(jobs[0].Rev.Seq))
	}
	if string(jobs[1].Fwd.Seq) != "ACGT" || jobs[1].Sample != "s" {
		t.Error("exon 3", string(jobs[1].Fwd.Seq), jobs[1].Sample)
	}
	if len(errs) != 2 {
		t.Fatal("wanted two errors, got", errs)
	}
	var perr *ingest.PairError
	if !errors.As(errs[0], &perr) || perr.Exon != 2 || perr.Dir != read.Rev || len(perr.Srcs) != 0 {
		t.Error("missing mate, got", errs[0])
	}
	if !errors.As(errs[1], &perr) || perr.Exon != 4 || len(perr.Srcs) != 2 {
		t.Error("duplicate, got", errs[1])
	}
}

// mkDir writes a small run: exon 1 as trace files, exon 2 in a fastq
// file, a file we ignore and a broken trace.
func mkDir(t *testing.T) string {
	dir := t.TempDir()
	wrt := func(name string, b []byte) {
		if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	ab1 := func(seq string, qual []uint8) []byte {
		var buf bytes.Buffer
		if err := abif.Write(&buf, []byte(seq), qual); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	wrt("pat_1F.ab1", ab1("GATTACA", []uint8{10, 11, 12, 13, 14, 15, 16}))
	wrt("pat_1R.ab1", ab1("TGTAATC", []uint8{20, 21, 22, 23, 24, 25, 26}))
	wrt("pat.fq", []byte("@pat_2F\nCCGGA\n+\nIIIII\n@pat_2R\nTCCGG\n+\n+++++\n@nonsense\nA\n+\nI\n"))
	wrt("notes.txt", []byte("not a read"))
	wrt("pat_3F.ab1", []byte("rubbish"))
	return dir
}

func TestLoadDir(t *testing.T) {
	dir := mkDir(t)
	set, errs := ingest.LoadDir(dir, ingest.Options{})
	if len(errs) != 2 {
		t.Fatal("wanted errors for nonsense and the broken trace, got", errs)
	}
	if !errors.Is(errs[1], abif.ErrMagic) {
		t.Error("broken trace gave", errs[1])
	}
	if set.Len() != 4 {
		t.Fatal("wanted 4 reads got", set.Len())
	}
	jobs, perrs := set.Pairs()
	if len(perrs) != 0 || len(jobs) != 2 {
		t.Fatal("pairing", jobs, perrs)
	}
	if string(jobs[0].Fwd.Seq) != "GATTACA" || string(jobs[0].Rev.Seq) != "GATTACA" {
		t.Error("exon 1", string(jobs[0].Fwd.Seq), string(jobs[0].Rev.Seq))
	}
	if diff := cmp.Diff([]uint8{26, 25, 24, 23, 22, 21, 20}, jobs[0].Rev.Qual); diff != "" {
		t.Error("reverse qualities", diff)
	}
	if string(jobs[1].Rev.Seq) != "CCGGA" || jobs[1].Rev.Qual[0] != 10 || jobs[1].Sample != "pat" {
		t.Error("exon 2", jobs[1])
	}
	if _, errs := ingest.LoadDir(filepath.Join(dir, "not_there"), ingest.Options{}); len(errs) != 1 {
		t.Error("missing directory should give one error")
	}
}
