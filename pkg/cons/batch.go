// 15 Oct 2026

package cons

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/exoncons/pkg/gotoh"
	"github.com/andrew-torda/exoncons/pkg/read"
)

// Job has the two reads for one exon.
type Job struct {
	Sample string
	Exon   read.ExonID
	Fwd    read.Read
	Rev    read.Read // already reverse complemented
}

// Outcome is what happened to one Job. Exactly one of Cons and Err is set.
type Outcome struct {
	Job  *Job
	Cons *ExonCons
	Err  error
}

// BuildAll runs Build on each job, using up to nThread goroutines.
// If nThread < 1, we use one per cpu. Outcomes are in the same order
// as the jobs. A failed exon does not stop the others. If ctx is
// cancelled, jobs that have not started get ctx.Err() as their error.
func BuildAll(ctx context.Context, jobs []Job, nThread int, scr *gotoh.Scoring) []Outcome {
	if nThread < 1 {
		nThread = runtime.NumCPU()
	}
	out := make([]Outcome, len(jobs))
	var g errgroup.Group
	g.SetLimit(nThread)
	for i := range jobs {
		out[i].Job = &jobs[i]
		if err := ctx.Err(); err != nil {
			out[i].Err = err
			continue
		}
		g.Go(func() error { // each goroutine only touches out[i]
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			j := &jobs[i]
			out[i].Cons, out[i].Err = Build(j.Exon, &j.Fwd, &j.Rev, scr)
			return nil
		})
	}
	g.Wait()
	return out
}

// Tally counts how many exons were built and how many failed.
func Tally(outcomes []Outcome) (nOk, nFail int) {
	for _, o := range outcomes {
		if o.Err != nil {
			nFail++
		} else {
			nOk++
		}
	}
	return nOk, nFail
}
