// 15 Oct 2026

package abif_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/andrew-torda/exoncons/pkg/abif"
	"github.com/andrew-torda/exoncons/pkg/seq/common"
)

func mkAbif(t *testing.T, seq string, qual []uint8) []byte {
	var buf bytes.Buffer
	if err := abif.Write(&buf, []byte(seq), qual); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		seq  string
		qual []uint8
	}{
		{"ACGTTGCANNAC", []uint8{10, 20, 30, 40, 50, 60, 1, 2, 3, 4, 5, 6}},
		{"ACG", []uint8{7, 8, 9}}, // short enough to sit in the entry
		{"ACGT", []uint8{7, 8, 9, 10}},
	}
	for _, tt := range tests {
		b := mkAbif(t, tt.seq, tt.qual)
		seq, qual, err := abif.Read(bytes.NewReader(b))
		if err != nil {
			t.Fatal(tt.seq, err)
		}
		if string(seq) != tt.seq || !bytes.Equal(qual, tt.qual) {
			t.Errorf("got %s %v want %s %v", seq, qual, tt.seq, tt.qual)
		}
	}
}

// TestTagOne renames the entries so only the original calls, number
// 1, are there.
func TestTagOne(t *testing.T) {
	b := mkAbif(t, "GATTACAGATTACA", make([]uint8, 14))
	dirOff := len(b) - 2*28
	b[dirOff+7] = 1
	b[dirOff+28+7] = 1
	seq, _, err := abif.Read(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if string(seq) != "GATTACAGATTACA" {
		t.Fatal("got", string(seq))
	}
}

func TestBroken(t *testing.T) {
	good := mkAbif(t, "ACGTACGTAC", make([]uint8, 10))
	notAbif := append([]byte("ABIX"), good[4:]...)
	if _, _, err := abif.Read(bytes.NewReader(notAbif)); !errors.Is(err, abif.ErrMagic) {
		t.Error("bad magic, got", err)
	}
	if _, _, err := abif.Read(bytes.NewReader(good[:10])); !errors.Is(err, abif.ErrMagic) {
		t.Error("tiny file, got", err)
	}
	if _, _, err := abif.Read(bytes.NewReader(good[:len(good)-5])); err == nil {
		t.Error("truncated directory should fail")
	}
	noQual := append([]byte(nil), good...)
	copy(noQual[len(noQual)-28:], "XXXX")
	if _, _, err := abif.Read(bytes.NewReader(noQual)); err == nil {
		t.Error("missing PCON should fail")
	}
	if err := abif.Write(&bytes.Buffer{}, []byte("AC"), []uint8{1}); err == nil {
		t.Error("write with length mismatch should fail")
	}
}

func TestReadFile(t *testing.T) {
	b := mkAbif(t, "CCGGTTAA", []uint8{1, 2, 3, 4, 5, 6, 7, 8})
	fname, err := common.WrtTempExt(string(b), ".ab1")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	seq, qual, err := abif.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(seq) != "CCGGTTAA" || qual[7] != 8 {
		t.Fatal("got", string(seq), qual)
	}
	if _, _, err := abif.ReadFile(fname + "not_there"); err == nil {
		t.Fatal("missing file should fail")
	}
}
