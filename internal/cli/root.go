package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/seek/internal/buildinfo"
	"github.com/aalvaropc/seek/internal/infra/logger"
	"github.com/aalvaropc/seek/internal/infra/randgen"
	"github.com/aalvaropc/seek/internal/infra/workspacefinder"
	"github.com/aalvaropc/seek/internal/ui/tui"
	"github.com/aalvaropc/seek/internal/usecase"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "seek",
		Short:        "Look for a number in a random list",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			root, err := resolveWorkspaceRoot(workspace)
			if err != nil {
				return
			}
			cleanup, _ = logger.Setup(logger.Config{
				Root:    root,
				Debug:   debug,
				Command: cmd.CommandPath(),
				Version: buildinfo.Version,
			})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, false)
			if err != nil {
				return err
			}

			gen, err := randgen.New(ws.cfg.Generator)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				WorkspaceLocator: workspacefinder.NewFinder(),
				Searcher:         usecase.NewRunSearch(gen, ws.artifactStore(false), ws.cfg.Generator),
				Limits:           ws.cfg.Generator,
				Logger:           logger.L(),
				Debug:            debug,
			}

			return tui.Run(cmd.Context(), deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .seek/logs/seek.log")
	cmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		searchCmd(&workspace),
		checkCmd(),
		runsCmd(&workspace),
		initCmd(),
		serveCmd(&workspace),
		versionCmd(),
	)
	return cmd
}
