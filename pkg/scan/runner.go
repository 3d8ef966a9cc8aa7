package scan

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bytegrep/bytegrep/pkg/types"
)

// Result pairs one source's outcome with its error, if any. Exactly one
// of Source and Err is set.
type Result struct {
	Source *types.SourceResult
	Err    error
}

// ScanAll scans every source, in parallel up to Options.Jobs, and returns
// results in input order. Per-source read errors land in the matching
// Result and never abort the other sources.
func (s *Scanner) ScanAll(ctx context.Context, sources []Source) []Result {
	jobs := s.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Err: err}
				return nil
			}
			res, err := s.ScanSource(src)
			results[i] = Result{Source: res, Err: err}
			return nil
		})
	}

	// Goroutines only report through the results slice.
	_ = g.Wait()

	return results
}
