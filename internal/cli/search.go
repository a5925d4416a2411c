package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/infra/httpclient"
	"github.com/aalvaropc/seek/internal/infra/logger"
	"github.com/aalvaropc/seek/internal/infra/randgen"
	"github.com/aalvaropc/seek/internal/ports"
	"github.com/aalvaropc/seek/internal/usecase"
)

func searchCmd(workspace *string) *cobra.Command {
	var length int
	var target int
	var values string
	var seed uint64
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "search",
		Short: "Generate a random list (or use --values) and look for a target",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*workspace, false)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				format = ws.cfg.Output.Format
			}
			if err := checkFormat(format); err != nil {
				return err
			}
			if !cmd.Flags().Changed("length") {
				length = ws.cfg.Generator.DefaultLength
			}

			var genOpts []randgen.Option
			var ucOpts []usecase.RunSearchOption
			if cmd.Flags().Changed("seed") {
				genOpts = append(genOpts, randgen.WithSeed(seed))
				ucOpts = append(ucOpts, usecase.WithSeed(seed))
			}

			gen, err := randgen.New(ws.cfg.Generator, genOpts...)
			if err != nil {
				return err
			}

			req := domain.SearchRequest{Length: length, Target: target}
			if cmd.Flags().Changed("values") {
				if req.Values, err = domain.ParseSequence(values); err != nil {
					return err
				}
			}

			uc := usecase.NewRunSearch(gen, ws.artifactStore(noSave), ws.cfg.Generator, ucOpts...)
			run, runID, err := uc.Execute(cmd.Context(), req)

			log := logger.L()
			if err != nil {
				log.Error("search.failed", "err", err, "target", target)
				if run.Length > 0 || run.Sequence != nil {
					_ = printRun(cmd.OutOrStdout(), run, runID, format)
				}
				return err
			}
			log.Info("search.done",
				"target", target,
				"length", run.Length,
				"found", run.Result.Found,
				"comparisons", run.Result.Comparisons,
				"run_id", runID,
			)

			return printRun(cmd.OutOrStdout(), run, runID, format)
		},
	}

	c.Flags().IntVarP(&length, "length", "n", 0, "How many random values to generate (defaults to generator.default_length)")
	c.Flags().IntVarP(&target, "target", "t", 0, "The number to look for (required)")
	c.Flags().StringVar(&values, "values", "", "Search this comma-separated list instead of a random one (\"\" for an empty list)")
	c.Flags().Uint64Var(&seed, "seed", 0, "Seed the random generator for a reproducible list")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("target")
	c.MarkFlagsMutuallyExclusive("values", "length")
	c.MarkFlagsMutuallyExclusive("values", "seed")
	return c
}

func checkCmd() *cobra.Command {
	var values string
	var targets []int
	var format string
	var strict bool
	var concurrency int
	var remote string

	c := &cobra.Command{
		Use:   "check",
		Short: "Check several targets against one list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			seq, err := domain.ParseSequence(values)
			if err != nil {
				return err
			}

			var checker ports.TargetChecker = usecase.NewCheckTargets(concurrency)
			if remote != "" {
				r, err := httpclient.NewRemote(remote)
				if err != nil {
					return err
				}
				checker = r
			}

			results, err := checker.Execute(cmd.Context(), seq, targets)
			if err != nil {
				return err
			}

			if err := printResults(cmd.OutOrStdout(), seq, results, format); err != nil {
				return err
			}

			if missing := countMissing(results); strict && missing > 0 {
				return fmt.Errorf("%d of %d target(s) not in the list", missing, len(results))
			}
			return nil
		},
	}

	c.Flags().StringVar(&values, "values", "", "Comma-separated list to search (required)")
	c.Flags().IntSliceVar(&targets, "targets", nil, "Comma-separated targets to look for (required)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any target is missing")
	c.Flags().IntVar(&concurrency, "concurrency", usecase.DefaultCheckConcurrency, "Maximum scans running at once")
	c.Flags().StringVar(&remote, "remote", "", "Base URL of a running seek server to check against")

	_ = c.MarkFlagRequired("values")
	_ = c.MarkFlagRequired("targets")
	return c
}
