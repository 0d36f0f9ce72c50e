// 15 Oct 2026
package exoncons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andrew-torda/exoncons/pkg/cons"
	"github.com/andrew-torda/exoncons/pkg/fastq"
	"github.com/andrew-torda/exoncons/pkg/gotoh"
	"github.com/andrew-torda/exoncons/pkg/ingest"
	"github.com/andrew-torda/exoncons/pkg/read"
	"github.com/andrew-torda/exoncons/pkg/wrtsam"
)

// ErrNoExon is returned when not a single consensus could be built.
var ErrNoExon = errors.New("no exon consensus could be built")

type CmdFlag struct {
	Csv      string        // write every call to this csv file
	Sam      string        // write the read pairs as sam
	NThread  int           // number of threads, 0 for one per cpu
	Vbsty    int           // verbosity, 2 prints alignments
	AmbigToN bool          // change IUPAC codes to N when reading
	Time     bool          // do we want to print out run time ?
	Scr      gotoh.Scoring // zero value means the default
}

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// create opens a file for writing. "-" and "" mean standard output,
// which we must not close.
func create(fname string) (io.Writer, func() error, error) {
	if fname == "" || fname == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	warnExists(fname)
	fp, err := os.Create(fname)
	if err != nil {
		return nil, nil, err
	}
	return fp, fp.Close, nil
}

// consName is what we call the consensus for an exon
func consName(sample string, exon read.ExonID) string {
	if sample == "" {
		return "exon" + exon.String()
	}
	return sample + "_exon" + exon.String()
}

// writeCons writes each successful consensus as a fastq record
func writeCons(fname string, outcomes []cons.Outcome) error {
	var recs []fastq.Record
	for _, o := range outcomes {
		if o.Err == nil {
			recs = append(recs, fastq.Record{Name: consName(o.Job.Sample, o.Job.Exon),
				Seq: o.Cons.Seq(), Qual: o.Cons.Qual()})
		}
	}
	w, closer, err := create(fname)
	if err != nil {
		return fmt.Errorf("consensus output file %v: %w", fname, err)
	}
	if err = fastq.Write(w, recs); err != nil {
		closer()
		return err
	}
	return closer()
}

// csvPos gives a 1-based position, or nothing for a gap
func csvPos(i int) string {
	if i == gotoh.Gap {
		return ""
	}
	return fmt.Sprint(i + 1)
}

// writeCsv writes one line per call, for plotting or checking by
// hand.
func writeCsv(fname string, outcomes []cons.Outcome) error {
	w, closer, err := create(fname)
	if err != nil {
		return fmt.Errorf("csv output file %v: %w", fname, err)
	}
	fmt.Fprintln(w, `"exon","pos","base","qual","src","a_pos","b_pos"`)
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		for i, c := range o.Cons.Calls {
			if _, err = fmt.Fprintf(w, "%d,%d,%c,%d,%s,%s,%s\n", o.Job.Exon, i+1, c.Base, c.Qual,
				c.Src, csvPos(c.Pair.A), csvPos(c.Pair.B)); err != nil {
				closer()
				return err
			}
		}
	}
	return closer()
}

// writeSam hands the outcomes to the sam writer
func writeSam(fname string, outcomes []cons.Outcome) error {
	w, closer, err := create(fname)
	if err != nil {
		return fmt.Errorf("sam output file %v: %w", fname, err)
	}
	if err = wrtsam.Write(w, outcomes); err != nil {
		closer()
		return err
	}
	return closer()
}

// report says how each exon went. Failures are always printed.
func report(o *cons.Outcome, vbsty int) {
	if o.Err != nil {
		fmt.Fprintln(os.Stderr, o.Err)
		return
	}
	if vbsty < 1 {
		return
	}
	j, e := o.Job, o.Cons
	nMatch, nMis, nGap := e.Aln.Counts(j.Fwd.Seq, j.Rev.Seq)
	fmt.Fprintf(os.Stderr, "exon %d: length %d score %g, %d match %d mismatch %d gap\n",
		j.Exon, e.Len(), e.Score, nMatch, nMis, nGap)
	if vbsty > 1 {
		a, b := e.Aln.Strings(j.Fwd.Seq, j.Rev.Seq)
		fmt.Fprintf(os.Stderr, "  F %s\n  R %s\n  C %s\n", a, b, e.Seq())
	}
}

// Mymain reads every trace and fastq file in indir, builds a consensus
// for each exon and writes them to outfile.
func Mymain(flags *CmdFlag, indir, outfile string) error {
	if flags.Time {
		startTime := time.Now()
		end := func() { // Wrapping in a closure is helpful. Gives the right time.
			fmt.Fprintln(os.Stderr, "finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}
	scr := flags.Scr
	if scr == (gotoh.Scoring{}) {
		scr = gotoh.DefaultScoring()
	}
	if err := scr.Check(); err != nil {
		return err
	}

	set, errs := ingest.LoadDir(indir, ingest.Options{AmbigToN: flags.AmbigToN})
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	if set.Len() == 0 {
		return fmt.Errorf("no reads found in %s", indir)
	}
	if flags.Vbsty > 0 {
		fmt.Fprintln(os.Stderr, set.Len(), "reads,", set.NAmbig(), "ambiguity codes changed to N")
	}
	jobs, perrs := set.Pairs()
	for _, err := range perrs {
		fmt.Fprintln(os.Stderr, err)
	}

	outcomes := cons.BuildAll(context.Background(), jobs, flags.NThread, &scr)
	for i := range outcomes {
		report(&outcomes[i], flags.Vbsty)
	}
	nOk, nFail := cons.Tally(outcomes)
	nFail += len(perrs)
	fmt.Fprintf(os.Stderr, "built %d / failed %d\n", nOk, nFail)

	if err := writeCons(outfile, outcomes); err != nil {
		return err
	}
	if flags.Csv != "" {
		if err := writeCsv(flags.Csv, outcomes); err != nil {
			return err
		}
	}
	if flags.Sam != "" {
		if err := writeSam(flags.Sam, outcomes); err != nil {
			return err
		}
	}
	if nOk == 0 {
		return ErrNoExon
	}
	return nil
}
