package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/ports"
)

// Searcher runs one search; *usecase.RunSearch satisfies it.
type Searcher interface {
	Execute(ctx context.Context, req domain.SearchRequest) (domain.RunArtifact, string, error)
}

type Deps struct {
	WorkspaceLocator ports.WorkspaceLocator
	Searcher         Searcher
	Limits           domain.GeneratorConfig

	Logger *slog.Logger
	Debug  bool
}
