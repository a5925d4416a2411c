package usecase

import (
	"errors"
	"testing"

	"github.com/aalvaropc/seek/internal/domain"
)

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
	calls int
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.calls++
	f.spec = spec
	f.force = force
	return f.err
}

func TestInitWorkspace_Delegates(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.spec.Root != "/tmp/ws" || !fi.force {
		t.Fatalf("unexpected call: %+v force=%v", fi.spec, fi.force)
	}
}

func TestInitWorkspace_EmptyRoot(t *testing.T) {
	fi := &fakeInitializer{}
	err := NewInitWorkspace(fi).Execute("  ", false)
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
	if fi.calls != 0 {
		t.Fatalf("expected initializer not called")
	}
}

func TestInitWorkspace_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := NewInitWorkspace(&fakeInitializer{err: boom}).Execute("/x", false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
