// 15 Oct 2026

// Package abif reads the base calls and qualities from an ABIF
// (.ab1) trace file, as written by Applied Biosystems sequencers.
// We only look at the directory and two tags. Everything else, the
// traces themselves included, is ignored.
//
// Layout, all big-endian: "ABIF", a two byte version, then a 28 byte
// directory entry which says where the real directory is. Each
// directory entry is
//
//	name    [4]byte
//	number  int32
//	eltype  int16
//	elsize  int16
//	nelem   int32
//	size    int32
//	offset  int32  (the data itself if size <= 4)
//	handle  int32
package abif

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	magic      = "ABIF"
	dirEntLen  = 28
	rootOffset = 6
	maxEntries = 1 << 16 // any more and the file is broken
)

// ErrMagic is returned when the file does not start with "ABIF".
var ErrMagic = errors.New("not an ABIF file")

type dirEnt struct {
	name   [4]byte
	number int32
	nelem  int32
	size   int32
	offset int32
	inline [4]byte // data, if size <= 4
}

// tag is a name and number, as in PBAS 2
type tag struct {
	name   string
	number int32
}

func (t tag) String() string { return fmt.Sprintf("%s%d", t.name, t.number) }

// base calls and qualities. Number 2 is what the base caller wrote
// last, 1 the original. We prefer 2.
var (
	seqTags  = []tag{{"PBAS", 2}, {"PBAS", 1}}
	qualTags = []tag{{"PCON", 2}, {"PCON", 1}}
)

// readAt fills b. A ReaderAt may say EOF even when it filled the
// buffer, so only a short read is an error.
func readAt(r io.ReaderAt, b []byte, off int64) error {
	n, err := r.ReadAt(b, off)
	if n == len(b) {
		return nil
	}
	if err == nil || err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// parseEnt unpacks one directory entry from b
func parseEnt(b []byte) dirEnt {
	var d dirEnt
	be := binary.BigEndian
	copy(d.name[:], b[0:4])
	d.number = int32(be.Uint32(b[4:8]))
	d.nelem = int32(be.Uint32(b[12:16]))
	d.size = int32(be.Uint32(b[16:20]))
	d.offset = int32(be.Uint32(b[20:24]))
	copy(d.inline[:], b[20:24])
	return d
}

// readDir reads the root entry and then the directory it points to.
func readDir(r io.ReaderAt) ([]dirEnt, error) {
	var head [rootOffset + dirEntLen]byte
	if err := readAt(r, head[:], 0); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrMagic
		}
		return nil, err
	}
	if string(head[:4]) != magic {
		return nil, ErrMagic
	}
	root := parseEnt(head[rootOffset:])
	if root.nelem < 0 || root.nelem > maxEntries || root.offset < 0 {
		return nil, fmt.Errorf("abif: broken root directory entry, %d entries at %d",
			root.nelem, root.offset)
	}
	buf := make([]byte, int(root.nelem)*dirEntLen)
	if err := readAt(r, buf, int64(root.offset)); err != nil {
		return nil, fmt.Errorf("abif: reading directory: %w", err)
	}
	ents := make([]dirEnt, root.nelem)
	for i := range ents {
		ents[i] = parseEnt(buf[i*dirEntLen:])
	}
	return ents, nil
}

// find returns the first entry matching one of the tags, trying them
// in order.
func find(ents []dirEnt, tags []tag) (dirEnt, bool) {
	for _, t := range tags {
		for _, d := range ents {
			if string(d.name[:]) == t.name && d.number == t.number {
				return d, true
			}
		}
	}
	return dirEnt{}, false
}

// data returns the bytes belonging to an entry
func data(r io.ReaderAt, d dirEnt) ([]byte, error) {
	if d.size < 0 {
		return nil, fmt.Errorf("abif: %s%d has negative size", d.name[:], d.number)
	}
	if d.size <= 4 {
		return d.inline[:d.size], nil
	}
	b := make([]byte, d.size)
	if err := readAt(r, b, int64(d.offset)); err != nil {
		return nil, fmt.Errorf("abif: reading %s%d: %w", d.name[:], d.number, err)
	}
	return b, nil
}

// Read gets base calls and Phred qualities from an ABIF file.
func Read(r io.ReaderAt) (seq []byte, qual []uint8, err error) {
	ents, err := readDir(r)
	if err != nil {
		return nil, nil, err
	}
	sEnt, ok := find(ents, seqTags)
	if !ok {
		return nil, nil, fmt.Errorf("abif: no base calls, tag %v", seqTags[0])
	}
	qEnt, ok := find(ents, qualTags)
	if !ok {
		return nil, nil, fmt.Errorf("abif: no qualities, tag %v", qualTags[0])
	}
	if seq, err = data(r, sEnt); err != nil {
		return nil, nil, err
	}
	if qual, err = data(r, qEnt); err != nil {
		return nil, nil, err
	}
	return seq, qual, nil
}

// ReadFile opens name and calls Read.
func ReadFile(name string) (seq []byte, qual []uint8, err error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer fp.Close()
	if seq, qual, err = Read(fp); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}
	return seq, qual, nil
}
