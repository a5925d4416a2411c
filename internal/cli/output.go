package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aalvaropc/seek/internal/domain"
)

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printRun(w io.Writer, run domain.RunArtifact, runID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"run_id": runID,
			"run":    run,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyRun(w, run, runID)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyRun(w io.Writer, run domain.RunArtifact, runID string) {
	fmt.Fprintln(w, run.Sequence.String())
	fmt.Fprintln(w, run.Result.Sentence())
	if runID != "" {
		fmt.Fprintf(w, "Run ID: %s\n", runID)
	}
}

func printResults(w io.Writer, values domain.Sequence, results []domain.SearchResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"values":  values,
			"results": results,
		})
	case "pretty", "":
		fmt.Fprintln(w, values.String())
		for _, r := range results {
			mark := "✗"
			detail := fmt.Sprintf("%d comparisons", r.Comparisons)
			if r.Found {
				mark = "✓"
				detail = fmt.Sprintf("index %d, %d comparisons", r.Index, r.Comparisons)
			}
			fmt.Fprintf(w, "  %s %s (%s)\n", mark, r.Sentence(), detail)
		}
		return nil
	default:
		return checkFormat(format)
	}
}

func countMissing(results []domain.SearchResult) int {
	n := 0
	for _, r := range results {
		if !r.Found {
			n++
		}
	}
	return n
}
