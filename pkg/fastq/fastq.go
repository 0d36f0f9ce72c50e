// 15 Oct 2026

// Package fastq reads and writes fastq files. Qualities are stored
// with an offset of 33 in the file and as plain Phred values in a
// Record. Files are memory mapped, since we look at every byte once
// and do not want to copy them through a buffer.
package fastq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/exoncons/pkg/seq/common"
)

const qualOffset = 33

// Record is one fastq entry.
type Record struct {
	Name string // without the leading @
	Seq  []byte
	Qual []uint8
}

// ParseError says where the input went wrong.
type ParseError struct {
	Line int
	Desc string
}

func (e *ParseError) Error() string { return fmt.Sprintf("fastq line %d: %s", e.Line, e.Desc) }

// nextLine returns the line at the start of b, without the newline or
// a carriage return, and what is left.
func nextLine(b []byte) (line, rest []byte) {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		line, rest = b[:i], b[i+1:]
	} else {
		line, rest = b, nil
	}
	return bytes.TrimSuffix(line, []byte{'\r'}), rest
}

// Parse breaks b into records. Sequences must sit on one line. The
// records own their storage, so b can be unmapped afterwards.
func Parse(b []byte) ([]Record, error) {
	var recs []Record
	var line []byte
	n := 0
	for len(b) > 0 {
		line, b = nextLine(b)
		n++
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if line[0] != '@' {
			return nil, &ParseError{n, "expected '@' at start of record"}
		}
		r := Record{Name: string(bytes.TrimSpace(line[1:]))}
		var seq, plus, qual []byte
		seq, b = nextLine(b)
		plus, b = nextLine(b)
		qual, b = nextLine(b)
		n += 3
		if len(plus) == 0 || plus[0] != '+' {
			return nil, &ParseError{n - 1, "expected '+' line after sequence"}
		}
		if len(seq) != len(qual) {
			return nil, &ParseError{n, fmt.Sprintf("%d bases but %d qualities in %s",
				len(seq), len(qual), r.Name)}
		}
		r.Seq = append([]byte(nil), seq...)
		r.Qual = make([]uint8, len(qual))
		for i, c := range qual {
			if c < qualOffset || c > qualOffset+common.MaxQual {
				return nil, &ParseError{n, fmt.Sprintf("bad quality character %q", c)}
			}
			r.Qual[i] = c - qualOffset
		}
		recs = append(recs, r)
	}
	return recs, nil
}

// Read slurps a reader and parses it. It is for standard input and
// things we cannot map.
func Read(rdr io.Reader) ([]Record, error) {
	b, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// ReadFile maps a file and parses it.
func ReadFile(fname string) ([]Record, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	if fi, err := fp.Stat(); err != nil {
		return nil, err
	} else if fi.Size() == 0 { // mmap refuses empty files
		return nil, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mm.Unmap()
	recs, err := Parse(mm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return recs, nil
}

// Write writes records. Qualities above 93 are written as 93.
func Write(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		bw.WriteByte('@')
		bw.WriteString(r.Name)
		bw.WriteByte('\n')
		bw.Write(r.Seq)
		bw.WriteString("\n+\n")
		for _, q := range r.Qual {
			bw.WriteByte(min(q, common.MaxQual) + qualOffset)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
