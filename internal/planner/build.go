package planner

import (
	"fmt"

	"github.com/danieljhkim/pzmapclean/internal/filter"
	"github.com/danieljhkim/pzmapclean/internal/geom"
	"github.com/danieljhkim/pzmapclean/internal/scanner"
)

// TileScanner enumerates the on-disk tile files of one kind. Satisfied by
// scanner.Scanner; narrowed to an interface so planning is testable without
// a real save directory.
type TileScanner interface {
	Scan(kind scanner.Kind) ([]scanner.Entry, error)
}

// BuildCleanPlan scans each requested kind and classifies every in-area
// entry through the filter. Entries outside the area are dropped here and
// never carried in the plan.
func BuildCleanPlan(
	area geom.Rect,
	kinds []scanner.Kind,
	protect bool,
	padding int,
	sc TileScanner,
	f *filter.Filter,
) (*CleanPlan, error) {
	plan := NewCleanPlan(area, kinds, protect, padding)

	for _, kind := range kinds {
		entries, err := sc.Scan(kind)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		// Ensure the tally exists even for kinds with no files.
		if _, ok := plan.Tallies[kind]; !ok {
			plan.Tallies[kind] = Tally{}
		}

		for _, e := range entries {
			if !f.Requested(e.Coord) {
				continue
			}
			if f.Protected(e.Coord) {
				plan.Add(e, ActionProtected)
				continue
			}
			plan.Add(e, ActionDelete)
		}
	}

	return plan, nil
}
