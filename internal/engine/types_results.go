package engine

import (
	"time"

	"github.com/danieljhkim/pzmapclean/internal/geom"
	"github.com/danieljhkim/pzmapclean/internal/scanner"
)

// KindCoverage summarizes the files of one kind found by a scan.
type KindCoverage struct {
	// Kind is the file family.
	Kind scanner.Kind

	// Count is the number of files found.
	Count int

	// Min and Max are the inclusive coordinate extents. Only meaningful
	// when Count > 0.
	Min geom.Coord
	Max geom.Coord
}

// ScanResult is the outcome of a coverage scan.
type ScanResult struct {
	// Root is the scanned save directory.
	Root string

	// Coverage holds one entry per requested kind, in request order.
	Coverage []KindCoverage
}

// Total returns the file count across all kinds.
func (r *ScanResult) Total() int {
	n := 0
	for _, c := range r.Coverage {
		n += c.Count
	}
	return n
}

// EntryFailure records one file that could not be deleted.
type EntryFailure struct {
	// Path is the file that failed.
	Path string

	// Coord is its tile coordinate.
	Coord geom.Coord

	// Kind is its file family.
	Kind scanner.Kind

	// Reason is the underlying error text.
	Reason string
}

// KindOutcome tallies one kind's execution results. Deleted, Failed, and
// ProtectedSkip are reported distinctly and never conflated.
type KindOutcome struct {
	Kind          scanner.Kind
	Deleted       int
	Failed        int
	ProtectedSkip int
}

// CleanResult is the outcome of executing (or simulating) a clean plan.
type CleanResult struct {
	// DryRun records whether any deletion was actually issued. Under
	// dry-run, Deleted counts the files that would have been removed.
	DryRun bool

	// Deleted is the number of files removed (or simulated).
	Deleted int

	// Failed is the number of per-entry deletion failures. A failure never
	// aborts the batch.
	Failed int

	// ProtectedSkip is the number of in-area files spared by safehouse
	// protection.
	ProtectedSkip int

	// PerKind breaks the counts down per kind, in plan order.
	PerKind []KindOutcome

	// Failures lists each failed entry, sorted by path.
	Failures []EntryFailure

	// FinishedAt is when execution completed.
	FinishedAt time.Time
}
