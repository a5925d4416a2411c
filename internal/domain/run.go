package domain

import "time"

// RunArtifact represents a persisted search run for reproducibility.
type RunArtifact struct {
	ID string `json:"id"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`

	Source   SequenceSource `json:"source"`
	Seed     *uint64        `json:"seed,omitempty"`
	Length   int            `json:"length"`
	Sequence Sequence       `json:"sequence"`

	// Truncated is set by stores that cap how many values they persist.
	Truncated bool `json:"truncated,omitempty"`

	Result SearchResult `json:"result"`
}

// RunRef is a lightweight reference to a stored run.
type RunRef struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Target    int       `json:"target"`
	Found     bool      `json:"found"`
	Length    int       `json:"length"`
	StartedAt time.Time `json:"started_at"`
}
