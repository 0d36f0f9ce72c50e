// 14 Oct 2026

package read

// cmpl maps a base to its complement. Anything we do not know about
// goes to N.
var cmpl = [256]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'N': 'N',
	'a': 't', 'c': 'g', 'g': 'c', 't': 'a', 'n': 'n',
}

// RevComp returns a new read with the bases reverse complemented and
// the qualities reversed, so quality i still belongs to base i.
func (r *Read) RevComp() Read {
	n := len(r.Seq)
	t := Read{Name: r.Name, Seq: make([]byte, n), Qual: make([]uint8, len(r.Qual))}
	for i, c := range r.Seq {
		if d := cmpl[c]; d != 0 {
			t.Seq[n-1-i] = d
		} else {
			t.Seq[n-1-i] = 'N'
		}
	}
	for i, q := range r.Qual {
		t.Qual[len(r.Qual)-1-i] = q
	}
	return t
}

// Upper changes bases to upper case, in place. Only call it on a read
// you own, before handing it on.
func (r *Read) Upper() {
	const diff = 'a' - 'A'
	for i, c := range r.Seq {
		if 'a' <= c && c <= 'z' {
			r.Seq[i] = c - diff
		}
	}
}

// AmbigToN replaces anything outside ACGT with N, in place. Base
// callers like to write IUPAC codes for mixed peaks. It returns how
// many symbols were changed.
func (r *Read) AmbigToN() (n int) {
	for i, c := range r.Seq {
		switch c {
		case 'A', 'C', 'G', 'T', 'N':
		default:
			r.Seq[i] = 'N'
			n++
		}
	}
	return n
}
