// Package search implements linear membership search.
//
// Every function here only reads its inputs. They are safe to call from
// multiple goroutines at once as long as callers do not mutate the slice
// concurrently.
package search

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome reports a single scan.
// Index is the position of the first match, or -1 when the target is absent.
type Outcome struct {
	Found       bool
	Index       int
	Comparisons int
}

// Contains reports whether target occurs in seq. It walks seq from the
// first element and stops at the first match.
func Contains[T comparable](seq []T, target T) bool {
	for _, v := range seq {
		if v == target {
			return true
		}
	}
	return false
}

// Scan is Contains with bookkeeping: it returns where the first match was
// and how many elements were compared before stopping.
func Scan[T comparable](seq []T, target T) Outcome {
	for i, v := range seq {
		if v == target {
			return Outcome{Found: true, Index: i, Comparisons: i + 1}
		}
	}
	return Outcome{Index: -1, Comparisons: len(seq)}
}

// ScanAll scans seq once per target, running up to limit scans at a time
// (limit <= 0 means unbounded). Outcomes are returned in target order.
// If ctx is cancelled, pending targets are skipped and ctx.Err() is returned.
func ScanAll[T comparable](ctx context.Context, seq []T, targets []T, limit int) ([]Outcome, error) {
	out := make([]Outcome, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, target := range targets {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Scan(seq, target)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
