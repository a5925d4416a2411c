package usecase

import (
	"context"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/search"
)

// DefaultCheckConcurrency bounds parallel scans in CheckTargets.
const DefaultCheckConcurrency = 8

type CheckTargets struct {
	limit int
}

func NewCheckTargets(limit int) *CheckTargets {
	if limit <= 0 {
		limit = DefaultCheckConcurrency
	}
	return &CheckTargets{limit: limit}
}

// Execute reports membership of every target in values, in target order.
func (uc *CheckTargets) Execute(ctx context.Context, values domain.Sequence, targets []int) ([]domain.SearchResult, error) {
	if len(targets) == 0 {
		return nil, domain.InvalidInput("usecase.check_targets", "at least one target is required")
	}

	outs, err := search.ScanAll(ctx, []int(values), targets, uc.limit)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, len(outs))
	for i, o := range outs {
		results[i] = domain.SearchResult{
			Target:      targets[i],
			Found:       o.Found,
			Index:       o.Index,
			Comparisons: o.Comparisons,
		}
	}
	return results, nil
}
