package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/seek/internal/domain"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

// cmdSearch runs the search off the update loop and reports back with searchDoneMsg.
func cmdSearch(ctx context.Context, deps Deps, req domain.SearchRequest) tea.Cmd {
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return func() tea.Msg {
		if deps.Searcher == nil {
			return searchDoneMsg{err: errors.New("Searcher is nil")}
		}

		log.Info("search.start", "length", req.Length, "target", req.Target, "debug", deps.Debug)

		run, id, err := deps.Searcher.Execute(ctx, req)
		if err != nil {
			log.Error("search.failed", "err", err, "saved_id", id)
			return searchDoneMsg{run: run, id: id, err: err}
		}

		log.Info("search.done",
			"saved_id", id,
			"found", run.Result.Found,
			"comparisons", run.Result.Comparisons,
		)
		if deps.Debug {
			log.Debug("search.sequence", "values", run.Sequence.String())
		}
		return searchDoneMsg{run: run, id: id}
	}
}
