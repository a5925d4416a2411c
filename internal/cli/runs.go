package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/seek/internal/usecase"
)

func runsCmd(workspace *string) *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved search runs",
	}

	c.AddCommand(runsListCmd(workspace), runsShowCmd(workspace))
	return c
}

func loadBrowser(workspace string) (*usecase.BrowseRuns, string, error) {
	ws, err := loadWorkspace(workspace, true)
	if err != nil {
		return nil, "", err
	}
	if ws.store == nil {
		return nil, "", errors.New("no run store configured")
	}
	return usecase.NewBrowseRuns(ws.store), ws.root, nil
}

func runsListCmd(workspace *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs (newest first)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			browse, root, err := loadBrowser(*workspace)
			if err != nil {
				return err
			}

			refs, err := browse.List(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no runs found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", root)
			for _, r := range refs {
				verdict := "missing"
				if r.Found {
					verdict = "found"
				}
				fmt.Fprintf(out, "- %s  target=%d len=%d %s  (%s)\n",
					r.ID, r.Target, r.Length, verdict, r.StartedAt.Local().Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to show (0 = all)")
	return cmd
}

func runsShowCmd(workspace *string) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Print a saved run, optionally narrowed with a JSONPath query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			browse, _, err := loadBrowser(*workspace)
			if err != nil {
				return err
			}

			out, err := browse.Show(args[0], query)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "JSONPath expression, e.g. $.result.found")
	return cmd
}
