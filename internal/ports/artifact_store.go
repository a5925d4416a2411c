package ports

import "github.com/aalvaropc/seek/internal/domain"

// ArtifactStore persists run artifacts for reproducibility.
type ArtifactStore interface {
	SaveRun(run domain.RunArtifact) (id string, err error)
}

// RunCatalog reads back what an ArtifactStore wrote.
type RunCatalog interface {
	ListRuns() ([]domain.RunRef, error)
	LoadRun(id string) ([]byte, error)
}
