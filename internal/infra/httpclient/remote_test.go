package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/infra/httpapi"
	"github.com/aalvaropc/seek/internal/usecase"
)

func newTestRemote(t *testing.T) *Remote {
	t.Helper()
	srv := httptest.NewServer(httpapi.NewServer(httpapi.DefaultConfig(), usecase.NewCheckTargets(2), nil).Handler())
	t.Cleanup(srv.Close)

	r, err := NewRemote(srv.URL + "/")
	if err != nil {
		t.Fatalf("NewRemote error: %v", err)
	}
	return r
}

func TestRemote_CheckRoundTrip(t *testing.T) {
	r := newTestRemote(t)

	got, err := r.Execute(context.Background(), domain.Sequence{9, 3, 7, 3, 1}, []int{3, 8})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	want := []domain.SearchResult{
		{Target: 3, Found: true, Index: 1, Comparisons: 2},
		{Target: 8, Found: false, Index: -1, Comparisons: 5},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRemote_EmptySequence(t *testing.T) {
	r := newTestRemote(t)

	got, err := r.Execute(context.Background(), nil, []int{5})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(got) != 1 || got[0].Found {
		t.Fatalf("expected not found, got %+v", got)
	}
}

func TestRemote_BadRequestIsInvalidInput(t *testing.T) {
	r := newTestRemote(t)

	_, err := r.Execute(context.Background(), domain.Sequence{1}, nil)
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestRemote_Health(t *testing.T) {
	r := newTestRemote(t)
	if err := r.Health(context.Background()); err != nil {
		t.Fatalf("Health error: %v", err)
	}
}

func TestRemote_ServerErrorIsExecution(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r, err := NewRemote(srv.URL)
	if err != nil {
		t.Fatalf("NewRemote error: %v", err)
	}
	if err := r.Health(context.Background()); !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution error, got %v", err)
	}
}

func TestRemote_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond
	r, err := NewRemote(srv.URL, WithConfig(cfg))
	if err != nil {
		t.Fatalf("NewRemote error: %v", err)
	}
	if err := r.Health(context.Background()); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestNewRemote_RejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "ftp://host", "http://"} {
		if _, err := NewRemote(raw); !domain.IsKind(err, domain.KindInvalidInput) {
			t.Errorf("NewRemote(%q) expected invalid_input, got %v", raw, err)
		}
	}
}
