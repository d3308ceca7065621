package driver

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// BatchOptions governs a multi-file parse, mirroring the per-file
// MaxDiagnostics cap with a per-run MaxFiles cap: a run handed more
// paths than that is rejected outright rather than silently truncated,
// since dropping files a caller asked for would misreport coverage.
type BatchOptions struct {
	MaxDiagnostics int
	MaxFiles       int
	Jobs           int
}

// ParseFiles parses every path concurrently, one independent FileSet,
// Builder, and diagnostic Bag per file — no Heap or Parser is ever
// touched by more than one goroutine, matching the core's single-owner
// heap model. Results are returned in the same order as paths.
func ParseFiles(paths []string, opts BatchOptions) ([]*ParseResult, error) {
	if opts.MaxFiles > 0 && len(paths) > opts.MaxFiles {
		return nil, fmt.Errorf("driver: %d files exceeds the %d-file batch limit", len(paths), opts.MaxFiles)
	}

	results := make([]*ParseResult, len(paths))
	g := new(errgroup.Group)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			r, err := ParseFile(p, opts.MaxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
