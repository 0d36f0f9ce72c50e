// 31 July 2020
// 15 Oct 2026 now makes forward and reverse reads for exons

// Package randseq makes random read pairs for testing. Each exon has
// a random core. The forward read is the core with random flanks. The
// reverse read is a mutated copy of the core, maybe with a base
// deleted, with its own flanks, and is stored reverse complemented,
// just as it comes off the sequencer.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/exoncons/pkg/fastq"
	"github.com/andrew-torda/exoncons/pkg/read"
)

const (
	minQual = 20
	maxQual = 40
)

var letters = []byte{'A', 'C', 'G', 'T'}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed   int64     // random number seed
	Wrtr    io.Writer // where we write to
	Cmmt    string    // start of each read name
	Nexon   int       // number of exons
	Len     int       // length of the core of each exon
	Flank   int       // longest flank, default Len/4
	MutRate float64   // chance of changing each base in the reverse read
	Del     bool      // delete one base from the reverse read
}

// Pair is one exon, the reads and the core they were made from.
type Pair struct {
	Exon int
	Core []byte
	Fwd  fastq.Record
	Rev  fastq.Record // reverse complemented
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	return ret
}

// getqual returns random qualities
func getqual(n int, rnd *rand.Rand) []uint8 {
	q := make([]uint8, n)
	for i := range q {
		q[i] = uint8(minQual + rnd.Intn(maxQual-minQual+1))
	}
	return q
}

// mutate returns a copy of s with each base changed with probability
// rate. A changed base is always different.
func mutate(s []byte, rate float64, rnd *rand.Rand) []byte {
	t := append([]byte(nil), s...)
	for i, c := range t {
		if rnd.Float64() >= rate {
			continue
		}
		for t[i] == c {
			t[i] = letters[rnd.Intn(len(letters))]
		}
	}
	return t
}

// flank puts up to n random bases either side of core
func flank(core []byte, n int, rnd *rand.Rand) []byte {
	l, r := rnd.Intn(n+1), rnd.Intn(n+1)
	s := getseq(l, rnd)
	s = append(s, core...)
	return append(s, getseq(r, rnd)...)
}

// mkPair makes the reads for exon number n
func mkPair(n int, args *RandSeqArgs, rnd *rand.Rand) Pair {
	nFlank := args.Flank
	if nFlank <= 0 {
		nFlank = args.Len / 4
	}
	core := getseq(args.Len, rnd)
	fwd := flank(core, nFlank, rnd)
	revCore := mutate(core, args.MutRate, rnd)
	if args.Del && len(revCore) > 3 { // keep the deletion away from the ends
		pos := len(revCore)/4 + rnd.Intn(len(revCore)/2)
		revCore = append(revCore[:pos], revCore[pos+1:]...)
	}
	rev := read.Read{Seq: flank(revCore, nFlank, rnd)}
	rev.Qual = getqual(rev.Len(), rnd)
	rev = rev.RevComp()
	name := fmt.Sprintf("%s_%d", args.Cmmt, n)
	return Pair{
		Exon: n,
		Core: core,
		Fwd:  fastq.Record{Name: name + read.Fwd.String(), Seq: fwd, Qual: getqual(len(fwd), rnd)},
		Rev:  fastq.Record{Name: name + read.Rev.String(), Seq: rev.Seq, Qual: rev.Qual},
	}
}

// generate sends pairs down the channel and closes it
func generate(args *RandSeqArgs, pChan chan<- Pair) {
	rnd := rand.New(rand.NewSource(args.Iseed))
	for i := 1; i <= args.Nexon; i++ {
		pChan <- mkPair(i, args, rnd)
	}
	close(pChan)
}

// Pairs returns all the pairs. The same seed gives the same pairs.
func Pairs(args *RandSeqArgs) []Pair {
	pChan := make(chan Pair)
	go generate(args, pChan)
	var ret []Pair
	for p := range pChan {
		ret = append(ret, p)
	}
	return ret
}

// writePairs takes pairs off the channel and writes them. After an
// error, it keeps reading so the sender is not left hanging.
func writePairs(pChan <-chan Pair, args *RandSeqArgs, wg *sync.WaitGroup, err *error) {
	defer wg.Done()
	for p := range pChan {
		if *err != nil {
			continue
		}
		*err = fastq.Write(args.Wrtr, []fastq.Record{p.Fwd, p.Rev})
	}
}

// RandSeqMain writes random read pairs to args.Wrtr as fastq.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Nexon < 0 || args.Len < 1 {
		return fmt.Errorf("need a positive length and number of exons, got %d and %d", args.Len, args.Nexon)
	}
	var wg sync.WaitGroup
	var err error
	pChan := make(chan Pair)
	wg.Add(1)
	go writePairs(pChan, args, &wg, &err)
	generate(args, pChan)
	wg.Wait()
	return err
}
