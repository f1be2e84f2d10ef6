package engine

import (
	"github.com/danieljhkim/pzmapclean/internal/geom"
	"github.com/danieljhkim/pzmapclean/internal/scanner"
)

// ScanRequest describes a coverage scan.
type ScanRequest struct {
	// Root is the save directory to scan.
	Root string

	// Kinds restricts the scan; empty means all kinds.
	Kinds []scanner.Kind

	// Area optionally restricts the summary to tiles inside the rectangle
	// (start-inclusive, end-exclusive). Nil means the whole map.
	Area *geom.Rect
}

// CleanRequest describes a deletion run. The area is start-inclusive,
// end-exclusive on both axes.
type CleanRequest struct {
	// Root is the save directory.
	Root string

	// StartX, StartY, EndX, EndY bound the deletion area.
	StartX int
	StartY int
	EndX   int
	EndY   int

	// Kinds is the list of file kinds to delete. Must be non-empty.
	Kinds []scanner.Kind

	// Protect enables safehouse protection.
	Protect bool

	// Padding is the cell margin applied around each safehouse rectangle.
	Padding int

	// DryRun classifies without deleting.
	DryRun bool

	// Workers bounds the deletion fan-out; zero means the default.
	Workers int
}
