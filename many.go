package opustag

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// EditFiles applies the same edit plan to multiple files in place,
// concurrently.
//
// Files are processed in parallel using up to WithJobs (default
// runtime.NumCPU()) goroutines. Each file is committed independently
// through the usual staging discipline, so a failure in one file never
// corrupts another; files already committed when an error occurs stay
// edited. The first error is returned, prefixed with its file path.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
//	defer cancel()
//
//	err := opustag.EditFiles(ctx, plan, paths, opustag.WithJobs(4))
func EditFiles(ctx context.Context, plan *EditPlan, paths []string, opts ...EditOption) error {
	if len(paths) == 0 {
		return nil
	}

	o := defaultEditOptions()
	for _, opt := range opts {
		opt(o)
	}

	g, ctx := errgroup.WithContext(ctx)
	limit := o.jobs
	if limit < 1 {
		limit = runtime.NumCPU()
	}
	g.SetLimit(limit)

	// In-place editing always replaces the input file.
	fileOpts := append(slices.Clone(opts), WithOverwrite())

	for _, path := range paths {
		path := path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if err := EditFile(path, path, plan, fileOpts...); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}

	return g.Wait()
}
