package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/infra/config"
	"github.com/aalvaropc/seek/internal/infra/runstore"
	"github.com/aalvaropc/seek/internal/infra/workspacefinder"
	"github.com/aalvaropc/seek/internal/ports"
)

type workspaceCtx struct {
	// root is empty when running outside a workspace.
	root string
	cfg  domain.Config

	store *runstore.JSONStore
}

// loadWorkspace resolves the workspace and its config. When required is
// false, a missing workspace degrades to defaults without persistence.
func loadWorkspace(workspaceFlag string, required bool) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		if required || strings.TrimSpace(workspaceFlag) != "" {
			return nil, err
		}
		root = ""
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{root: root, cfg: cfg}
	if root != "" {
		ws.store = runstore.NewJSONStore(root, cfg)
	}
	return ws, nil
}

// artifactStore returns nil (not a typed nil) when runs should not be saved.
func (ws *workspaceCtx) artifactStore(noSave bool) ports.ArtifactStore {
	if noSave || ws.store == nil {
		return nil
	}
	return ws.store
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `seek init`): %w", wd, err)
	}
	return root, nil
}
