// 15 Oct 2026

package fastq_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/exoncons/pkg/brokenio"
	"github.com/andrew-torda/exoncons/pkg/fastq"
	"github.com/andrew-torda/exoncons/pkg/seq/common"
)

const twoRecs = `@s1_2F some comment
ACGTN
+
!+5?I

@s1_2R
GGA
+s1_2R
@@@
`

var wantTwo = []fastq.Record{
	{Name: "s1_2F some comment", Seq: []byte("ACGTN"), Qual: []uint8{0, 10, 20, 30, 40}},
	{Name: "s1_2R", Seq: []byte("GGA"), Qual: []uint8{31, 31, 31}},
}

func TestParse(t *testing.T) {
	recs, err := fastq.Read(strings.NewReader(twoRecs))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantTwo, recs); diff != "" {
		t.Fatalf("records (-want +got):\n%s", diff)
	}
	crlf := strings.ReplaceAll(twoRecs, "\n", "\r\n")
	if recs, err = fastq.Read(strings.NewReader(crlf)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantTwo, recs); diff != "" {
		t.Fatalf("crlf records (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		line int
	}{
		{"ACGT\n+\nIIII\n", 1},
		{"@a\nACGT\nIIII\nIIII\n", 3},
		{"@a\nACGT\n+\nIII\n", 4},
		{"@a\nAC\n+\nI\x1f\n", 4},
		{"@a\nACGT\n", 3},
	}
	for _, tt := range tests {
		_, err := fastq.Read(strings.NewReader(tt.in))
		var pe *fastq.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q wanted ParseError got %v", tt.in, err)
		}
		if pe.Line != tt.line {
			t.Errorf("%q error on line %d wanted %d", tt.in, pe.Line, tt.line)
		}
	}
}

func TestFile(t *testing.T) {
	fname, err := common.WrtTempExt(twoRecs, ".fq")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	recs, err := fastq.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantTwo, recs); diff != "" {
		t.Fatalf("records (-want +got):\n%s", diff)
	}

	empty, err := common.WrtTempExt("", ".fq")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(empty)
	if recs, err = fastq.ReadFile(empty); err != nil || len(recs) != 0 {
		t.Fatal("empty file gave", recs, err)
	}
}

func TestWrite(t *testing.T) {
	var sb strings.Builder
	recs := []fastq.Record{{Name: "x", Seq: []byte("ACG"), Qual: []uint8{0, 93, 120}}}
	if err := fastq.Write(&sb, recs); err != nil {
		t.Fatal(err)
	}
	if want := "@x\nACG\n+\n!~~\n"; sb.String() != want {
		t.Fatalf("got %q want %q", sb.String(), want)
	}
	back, err := fastq.Read(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if back[0].Qual[2] != 93 {
		t.Fatal("quality not capped", back[0].Qual)
	}
}

func TestBrokenIO(t *testing.T) {
	if _, err := fastq.Read(brokenio.NewReader(strings.NewReader(twoRecs), 20)); !errors.Is(err, brokenio.ErrBroken) {
		t.Error("broken reader gave", err)
	}
	if err := fastq.Write(brokenio.NewWriter(nil, 3), wantTwo); !errors.Is(err, brokenio.ErrBroken) {
		t.Error("broken writer gave", err)
	}
}
