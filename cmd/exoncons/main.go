// 15 Oct 2026
// Read up the forward and reverse reads of a set of exons and write
// a consensus sequence for each exon.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/exoncons/pkg/exoncons"
	"github.com/andrew-torda/exoncons/pkg/gotoh"
	. "github.com/andrew-torda/exoncons/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] indir outfile")
	long := `Every .ab1, .abi, .fastq and .fq file in indir is read. Names must end
in an exon number and direction, like patient7_3F.ab1 or patient7_3R.
Consensus sequences are written as fastq to outfile, or stdout if it is "-".`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags exoncons.CmdFlag
	dflt := gotoh.DefaultScoring()
	var match, mismatch, open, extend float64

	flag.StringVar(&flags.Csv, "c", "", "filename to write every consensus call to, as csv")
	flag.StringVar(&flags.Sam, "s", "", "filename to write the read pairs to, as sam")
	flag.IntVar(&flags.NThread, "t", 0, "number of threads, 0 for one per cpu")
	flag.IntVar(&flags.Vbsty, "v", 0, "verbosity, 1 for a line per exon, 2 for alignments")
	flag.BoolVar(&flags.AmbigToN, "n", false, "change ambiguity codes like R or Y to N")
	flag.BoolVar(&flags.Time, "T", false, "print out timing information")
	flag.Float64Var(&match, "match", float64(dflt.Match), "score for a match")
	flag.Float64Var(&mismatch, "mismatch", float64(dflt.Mismatch), "score for a mismatch")
	flag.Float64Var(&open, "open", float64(dflt.GapOpen), "first position of a gap")
	flag.Float64Var(&extend, "extend", float64(dflt.GapExtend), "each further gap position")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	flags.Scr = gotoh.Scoring{Match: float32(match), Mismatch: float32(mismatch),
		GapOpen: float32(open), GapExtend: float32(extend)}

	if err := exoncons.Mymain(&flags, flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	} else {
		os.Exit(ExitSuccess)
	}
}
