package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/ports"
)

type fixedGenerator struct {
	vals  []int
	calls int
	err   error
}

func (g *fixedGenerator) Generate(n int) ([]int, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	out := make([]int, n)
	copy(out, g.vals)
	return out, nil
}

type fakeStore struct {
	saved bool
	last  domain.RunArtifact
	err   error
}

func (s *fakeStore) SaveRun(run domain.RunArtifact) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = true
	s.last = run
	return "run-123", nil
}

var (
	_ ports.SequenceGenerator = (*fixedGenerator)(nil)
	_ ports.ArtifactStore     = (*fakeStore)(nil)
)

func fixedClock() func() time.Time {
	t0 := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Millisecond)
	}
}

func newTestRunSearch(gen ports.SequenceGenerator, store ports.ArtifactStore, opts ...RunSearchOption) *RunSearch {
	limits := domain.DefaultConfig().Generator
	opts = append([]RunSearchOption{WithClock(fixedClock()), WithIDs(func() string { return "id-1" })}, opts...)
	return NewRunSearch(gen, store, limits, opts...)
}

func TestRunSearch_RandomSequenceFound(t *testing.T) {
	gen := &fixedGenerator{vals: []int{9, 3, 7, 3, 1}}
	store := &fakeStore{}
	uc := newTestRunSearch(gen, store, WithSeed(42))

	run, id, err := uc.Execute(context.Background(), domain.SearchRequest{Length: 5, Target: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "run-123" {
		t.Fatalf("expected store id, got %q", id)
	}

	seed := uint64(42)
	want := domain.RunArtifact{
		ID:        "id-1",
		StartedAt: time.Date(2026, 2, 3, 10, 11, 12, int(time.Millisecond), time.UTC),
		EndedAt:   time.Date(2026, 2, 3, 10, 11, 12, int(2*time.Millisecond), time.UTC),
		Source:    domain.SourceRandom,
		Seed:      &seed,
		Length:    5,
		Sequence:  domain.Sequence{9, 3, 7, 3, 1},
		Result:    domain.SearchResult{Target: 3, Found: true, Index: 1, Comparisons: 2},
	}
	if diff := cmp.Diff(want, run); diff != "" {
		t.Fatalf("run mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, store.last); diff != "" {
		t.Fatalf("stored run mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSearch_ExplicitValuesSkipGenerator(t *testing.T) {
	gen := &fixedGenerator{}
	uc := newTestRunSearch(gen, nil, WithSeed(1))

	values := domain.Sequence{1, 2, 3, 4}
	run, id, err := uc.Execute(context.Background(), domain.SearchRequest{Length: 99, Target: 7, Values: values})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "" {
		t.Fatalf("expected no id without store, got %q", id)
	}
	if gen.calls != 0 {
		t.Fatalf("expected generator unused, got %d calls", gen.calls)
	}
	if run.Source != domain.SourceInput || run.Seed != nil || run.Length != 4 {
		t.Fatalf("unexpected run metadata: %+v", run)
	}
	if run.Result != (domain.SearchResult{Target: 7, Found: false, Index: -1, Comparisons: 4}) {
		t.Fatalf("unexpected result: %+v", run.Result)
	}

	run.Sequence[0] = 100
	if values[0] != 1 {
		t.Fatalf("expected caller's values untouched")
	}
}

func TestRunSearch_EmptyValues(t *testing.T) {
	uc := newTestRunSearch(&fixedGenerator{}, nil)

	run, _, err := uc.Execute(context.Background(), domain.SearchRequest{Target: 5, Values: domain.Sequence{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if run.Result.Found {
		t.Fatalf("expected empty sequence to never match")
	}
}

func TestRunSearch_ZeroLength(t *testing.T) {
	gen := &fixedGenerator{}
	uc := newTestRunSearch(gen, nil)

	run, _, err := uc.Execute(context.Background(), domain.SearchRequest{Length: 0, Target: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.calls != 1 || run.Length != 0 || run.Result.Found {
		t.Fatalf("unexpected run: %+v", run)
	}
}

func TestRunSearch_Validation(t *testing.T) {
	gen := &fixedGenerator{}
	limits := domain.GeneratorConfig{Min: 0, Max: 100, MaxLength: 3}
	uc := NewRunSearch(gen, nil, limits)

	cases := []domain.SearchRequest{
		{Length: -1},
		{Length: 4},
		{Values: domain.Sequence{1, 2, 3, 4}},
	}
	for _, req := range cases {
		_, _, err := uc.Execute(context.Background(), req)
		if !domain.IsKind(err, domain.KindInvalidInput) {
			t.Fatalf("request %+v: expected invalid_input, got %v", req, err)
		}
	}
	if gen.calls != 0 {
		t.Fatalf("expected generator never called, got %d", gen.calls)
	}
}

func TestRunSearch_GeneratorError(t *testing.T) {
	boom := errors.New("boom")
	store := &fakeStore{}
	uc := newTestRunSearch(&fixedGenerator{err: boom}, store)

	_, _, err := uc.Execute(context.Background(), domain.SearchRequest{Length: 2})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if store.saved {
		t.Fatalf("expected nothing saved")
	}
}

func TestRunSearch_SaveErrorStillReturnsRun(t *testing.T) {
	boom := errors.New("disk full")
	uc := newTestRunSearch(&fixedGenerator{vals: []int{5}}, &fakeStore{err: boom})

	run, id, err := uc.Execute(context.Background(), domain.SearchRequest{Length: 1, Target: 5})
	if !errors.Is(err, boom) {
		t.Fatalf("expected save error, got %v", err)
	}
	if id != "" || !run.Result.Found {
		t.Fatalf("expected computed run without id, got id=%q run=%+v", id, run)
	}
}

func TestRunSearch_StopsOnContextCancel(t *testing.T) {
	gen := &fixedGenerator{}
	store := &fakeStore{}
	uc := newTestRunSearch(gen, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, id, err := uc.Execute(ctx, domain.SearchRequest{Length: 3})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if id != "" || gen.calls != 0 || store.saved {
		t.Fatalf("expected no work after cancel")
	}
	if out.StartedAt.IsZero() || out.EndedAt.Before(out.StartedAt) {
		t.Fatalf("expected timestamps set, got %+v", out)
	}
}

func TestRunSearch_DefaultIDsAreUUIDs(t *testing.T) {
	uc := NewRunSearch(&fixedGenerator{}, nil, domain.DefaultConfig().Generator)

	a, _, _ := uc.Execute(context.Background(), domain.SearchRequest{})
	b, _, _ := uc.Execute(context.Background(), domain.SearchRequest{})
	if len(a.ID) != 36 || a.ID == b.ID {
		t.Fatalf("expected distinct uuids, got %q and %q", a.ID, b.ID)
	}
}
