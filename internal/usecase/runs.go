package usecase

import (
	"strings"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/ports"
	"github.com/aalvaropc/seek/internal/usecase/extract"
)

type BrowseRuns struct {
	catalog ports.RunCatalog
}

func NewBrowseRuns(catalog ports.RunCatalog) *BrowseRuns {
	return &BrowseRuns{catalog: catalog}
}

// List returns stored runs, newest first, capped at limit when limit > 0.
func (uc *BrowseRuns) List(limit int) ([]domain.RunRef, error) {
	refs, err := uc.catalog.ListRuns()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(refs) > limit {
		refs = refs[:limit]
	}
	return refs, nil
}

// Show returns a stored run document. With a JSONPath query only the
// selected value is returned.
func (uc *BrowseRuns) Show(id, query string) (string, error) {
	doc, err := uc.catalog.LoadRun(id)
	if err != nil {
		return "", err
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return string(doc), nil
	}
	return extract.Query(doc, q)
}
