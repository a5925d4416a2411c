package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/seek/internal/infra/httpapi"
	"github.com/aalvaropc/seek/internal/infra/logger"
	"github.com/aalvaropc/seek/internal/usecase"
)

func serveCmd(workspace *string) *cobra.Command {
	var addr string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose search over HTTP (GET/POST /search, POST /check)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*workspace, false)
			if err != nil {
				return err
			}

			cfg := httpapi.DefaultConfig()
			cfg.Addr = ws.cfg.Server.Addr
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			srv := httpapi.NewServer(cfg, usecase.NewCheckTargets(concurrency), logger.L())
			cmd.Printf("Listening on %s\n", cfg.Addr)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr in seek.yaml)")
	cmd.Flags().IntVar(&concurrency, "concurrency", usecase.DefaultCheckConcurrency, "Maximum scans running at once per request")
	return cmd
}
