// 15 Oct 2026

package abif

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	version  = 101
	headLen  = 128 // real files pad the header to this
	eltChar  = 2   // element type for char arrays
	eltDir   = 1023
	nWritten = 2 // entries we write
)

// putEnt packs a directory entry into b. If the data fit in four
// bytes, it goes where the offset would be.
func putEnt(b []byte, name string, number int32, eltype, elsize int16, data []byte, offset int) {
	be := binary.BigEndian
	copy(b[0:4], name)
	be.PutUint32(b[4:8], uint32(number))
	be.PutUint16(b[8:10], uint16(eltype))
	be.PutUint16(b[10:12], uint16(elsize))
	be.PutUint32(b[12:16], uint32(len(data)/int(elsize)))
	be.PutUint32(b[16:20], uint32(len(data)))
	if len(data) <= 4 {
		copy(b[20:24], data)
	} else {
		be.PutUint32(b[20:24], uint32(offset))
	}
}

// Write writes a minimal ABIF file with just base calls (PBAS 2) and
// qualities (PCON 2). There are no traces, so it is only good for
// testing and for handing reads to programs that only want the calls.
func Write(w io.Writer, seq []byte, qual []uint8) error {
	if len(seq) != len(qual) {
		return fmt.Errorf("abif: %d bases but %d qualities", len(seq), len(qual))
	}
	sOff := headLen
	qOff := sOff + len(seq)
	dirOff := qOff + len(qual)
	out := make([]byte, dirOff+nWritten*dirEntLen)

	copy(out, magic)
	binary.BigEndian.PutUint16(out[4:6], version)
	dirBytes := make([]byte, nWritten*dirEntLen)
	putEnt(out[rootOffset:], "tdir", 1, eltDir, dirEntLen, dirBytes, dirOff)
	copy(out[sOff:], seq)
	copy(out[qOff:], qual)
	putEnt(out[dirOff:], "PBAS", 2, eltChar, 1, seq, sOff)
	putEnt(out[dirOff+dirEntLen:], "PCON", 2, eltChar, 1, qual, qOff)
	_, err := w.Write(out)
	return err
}
