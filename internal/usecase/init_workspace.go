package usecase

import (
	"strings"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute creates (or, with force, refreshes) the workspace at root.
func (uc *InitWorkspace) Execute(root string, force bool) error {
	if strings.TrimSpace(root) == "" {
		return domain.InvalidInput("usecase.init_workspace", "workspace root is empty")
	}
	return uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force)
}
