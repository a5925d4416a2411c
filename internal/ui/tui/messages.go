package tui

import "github.com/aalvaropc/seek/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type searchDoneMsg struct {
	run domain.RunArtifact
	id  string
	err error
}
