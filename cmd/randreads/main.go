// 31 July 2020
// 15 Oct 2026 random read pairs instead of random proteins

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/andrew-torda/exoncons/pkg/randseq"
	. "github.com/andrew-torda/exoncons/pkg/seq/common"
)

func main() {
	f := flag.NewFlagSet("randreads", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs

	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	f.Float64Var(&args.MutRate, "m", 0, "mutation rate in the reverse reads")
	f.BoolVar(&args.Del, "d", false, "delete a base from each reverse read")
	f.StringVar(&args.Cmmt, "c", "sim", "sample name at the start of each read")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandreads [..] file nexon length")
		f.Usage()
		os.Exit(ExitUsageError)
	}

	fname := f.Arg(0)
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		if ft, err := os.Create(fname); err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		} else {
			defer ft.Close()
			args.Wrtr = ft
		}
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nexon, err := strconv.ParseUint(f.Arg(1), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(1))
		os.Exit(ExitUsageError)
	} else {
		args.Nexon = int(nexon)
	}
	if nlen, err := strconv.ParseUint(f.Arg(2), 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(2))
		os.Exit(ExitUsageError)
	} else {
		args.Len = int(nlen)
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}
