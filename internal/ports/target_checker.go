package ports

import (
	"context"

	"github.com/aalvaropc/seek/internal/domain"
)

// TargetChecker reports membership of each target in values, in target order.
type TargetChecker interface {
	Execute(ctx context.Context, values domain.Sequence, targets []int) ([]domain.SearchResult, error)
}
