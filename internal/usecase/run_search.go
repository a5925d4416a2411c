package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/ports"
	"github.com/aalvaropc/seek/internal/search"
)

type RunSearch struct {
	gen    ports.SequenceGenerator
	store  ports.ArtifactStore
	limits domain.GeneratorConfig
	seed   *uint64

	now   func() time.Time
	newID func() string
}

type RunSearchOption func(*RunSearch)

// WithClock overrides time.Now (useful for tests).
func WithClock(now func() time.Time) RunSearchOption {
	return func(uc *RunSearch) { uc.now = now }
}

// WithIDs overrides artifact ID generation (useful for tests).
func WithIDs(gen func() string) RunSearchOption {
	return func(uc *RunSearch) { uc.newID = gen }
}

// WithSeed records the generator seed on every artifact.
func WithSeed(seed uint64) RunSearchOption {
	return func(uc *RunSearch) { uc.seed = &seed }
}

// NewRunSearch wires a search run. store may be nil to skip persistence.
func NewRunSearch(gen ports.SequenceGenerator, store ports.ArtifactStore, limits domain.GeneratorConfig, opts ...RunSearchOption) *RunSearch {
	uc := &RunSearch{
		gen:    gen,
		store:  store,
		limits: limits,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute obtains the sequence, scans it and optionally persists the artifact.
// When saving fails the artifact is still returned alongside the error.
func (uc *RunSearch) Execute(ctx context.Context, req domain.SearchRequest) (domain.RunArtifact, string, error) {
	run := domain.RunArtifact{
		ID:        uc.newID(),
		StartedAt: uc.now(),
		Seed:      uc.seed,
	}

	if err := ctx.Err(); err != nil {
		run.EndedAt = uc.now()
		return run, "", err
	}

	seq, err := uc.sequence(req)
	if err != nil {
		run.EndedAt = uc.now()
		return run, "", err
	}
	run.Sequence = seq
	run.Length = len(seq)
	if req.Values != nil {
		run.Source = domain.SourceInput
		run.Seed = nil
	} else {
		run.Source = domain.SourceRandom
	}

	out := search.Scan(seq, req.Target)
	run.Result = domain.SearchResult{
		Target:      req.Target,
		Found:       out.Found,
		Index:       out.Index,
		Comparisons: out.Comparisons,
	}
	run.EndedAt = uc.now()

	if uc.store == nil {
		return run, "", nil
	}

	id, err := uc.store.SaveRun(run)
	if err != nil {
		return run, "", err
	}
	return run, id, nil
}

func (uc *RunSearch) sequence(req domain.SearchRequest) (domain.Sequence, error) {
	if req.Values != nil {
		if uc.limits.MaxLength > 0 && len(req.Values) > uc.limits.MaxLength {
			return nil, domain.InvalidInput("usecase.run_search", "%d values exceed max length %d", len(req.Values), uc.limits.MaxLength)
		}
		return req.Values.Clone(), nil
	}

	if req.Length < 0 {
		return nil, domain.InvalidInput("usecase.run_search", "length %d is negative", req.Length)
	}
	if uc.limits.MaxLength > 0 && req.Length > uc.limits.MaxLength {
		return nil, domain.InvalidInput("usecase.run_search", "length %d exceeds max length %d", req.Length, uc.limits.MaxLength)
	}

	vals, err := uc.gen.Generate(req.Length)
	if err != nil {
		return nil, err
	}
	return domain.Sequence(vals), nil
}
