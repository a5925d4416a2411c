package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/seek/internal/domain"
)

// maxSequenceRunes bounds how much of a long list is drawn on screen.
const maxSequenceRunes = 2000

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderRunDetails(run domain.RunArtifact, id string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Length: %d  Source: %s\n", run.Length, run.Source)
	if run.Result.Found {
		fmt.Fprintf(&b, "First match at index %d after %d comparisons\n", run.Result.Index, run.Result.Comparisons)
	} else {
		fmt.Fprintf(&b, "Scanned all %d values\n", run.Result.Comparisons)
	}
	if id != "" {
		fmt.Fprintf(&b, "Saved as %s\n", id)
	}
	return b.String()
}
