package buildinfo

import "fmt"

// Overridden at build time:
//
//	go build -ldflags "-X github.com/aalvaropc/seek/internal/buildinfo.Version=v0.1.0"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("seek %s (commit=%s, date=%s)", Version, Commit, Date)
}
