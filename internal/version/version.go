package version

import (
	"fmt"
	"time"
)

// Set via ldflags at release build time.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Build numbering starts at the first day of the project.
var buildEpoch = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

// BuildInfo describes the build metadata in structured form,
// as served by the /version route.
type BuildInfo struct {
	BuildID    int    `json:"build_id"`
	BuildDate  string `json:"build_date"`
	Commit     string `json:"commit"`
	Branch     string `json:"branch"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// CalculateBuildID maps BuildDate to the number of days since the
// project epoch. Using hours avoids DST issues; both dates are UTC.
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Info returns structured version information. Safe to call at any time.
func Info() BuildInfo {
	info := BuildInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String returns a human-readable build string.
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("Build unknown (%s)", info.Error)
	}

	return fmt.Sprintf(
		"Build %d (%s) commit[%s] branch[%s]",
		info.BuildID,
		info.BuildDate,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
