package domain

import (
	"strconv"
	"strings"
)

// Sequence is an ordered, finite list of integers. Duplicates are allowed.
type Sequence []int

// String renders the sequence as a bracketed, comma-separated list: [9, 3, 7].
func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

// Clone returns an independent copy. A nil sequence clones to an empty one.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// SequenceSource tells where a run's sequence came from.
type SequenceSource string

const (
	SourceRandom SequenceSource = "random"
	SourceInput  SequenceSource = "input"
)

// SearchRequest describes one membership search.
//
// When Values is non-nil it is searched as-is and Length is ignored.
// Otherwise Length random values are generated.
type SearchRequest struct {
	Length int
	Target int
	Values Sequence
}

// SearchResult is the outcome of scanning a sequence for a target.
type SearchResult struct {
	Target      int  `json:"target"`
	Found       bool `json:"found"`
	Index       int  `json:"index"`
	Comparisons int  `json:"comparisons"`
}

// Sentence is the human-readable verdict printed after a search.
func (r SearchResult) Sentence() string {
	verb := "is not"
	if r.Found {
		verb = "is"
	}
	return "The element " + strconv.Itoa(r.Target) + " " + verb + " in the list"
}

// ParseSequence parses a comma-separated list of integers ("9, 3,7").
// Blank input yields an empty sequence.
func ParseSequence(s string) (Sequence, error) {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "[]"))
	if s == "" {
		return Sequence{}, nil
	}

	parts := strings.Split(s, ",")
	out := make(Sequence, 0, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, InvalidInput("domain.parse_sequence", "value #%d %q is not an integer", i+1, strings.TrimSpace(p))
		}
		out = append(out, v)
	}
	return out, nil
}
