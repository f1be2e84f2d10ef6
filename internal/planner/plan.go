package planner

import (
	"time"

	"github.com/danieljhkim/pzmapclean/internal/geom"
	"github.com/danieljhkim/pzmapclean/internal/scanner"
)

// Action classifies one planned entry.
type Action string

const (
	// ActionDelete marks an entry inside the area and outside every padded
	// safehouse.
	ActionDelete Action = "delete"

	// ActionProtected marks an entry inside the area but covered by a
	// padded safehouse rectangle.
	ActionProtected Action = "protected"
)

// PlannedEntry is one classified tile file.
type PlannedEntry struct {
	Entry  scanner.Entry
	Action Action
}

// Tally counts classifications for a single kind.
type Tally struct {
	ToDelete      int
	ProtectedSkip int
}

// CleanPlan is the full classified outcome of a planning pass. It carries
// no filesystem handles beyond entry paths and can be executed or reported
// without rescanning.
type CleanPlan struct {
	// Area is the requested deletion area, start-inclusive end-exclusive.
	Area geom.Rect

	// Kinds is the ordered list of requested file kinds.
	Kinds []scanner.Kind

	// Protect records whether safehouse protection was applied.
	Protect bool

	// Padding is the cell margin applied around each safehouse.
	Padding int

	// Entries holds every in-area tile with its classification.
	// Out-of-area tiles are skipped during planning and never appear here.
	Entries []PlannedEntry

	// Tallies counts to-delete and protected-skip entries per kind.
	Tallies map[scanner.Kind]Tally

	// SafehouseDiagnostic carries the recoverable metadata warning, if any.
	// Protection degrades rather than failing when metadata is absent or
	// corrupt.
	SafehouseDiagnostic string

	// GeneratedAt is when the plan was produced.
	GeneratedAt time.Time
}

// NewCleanPlan creates an empty plan for the given request parameters.
func NewCleanPlan(area geom.Rect, kinds []scanner.Kind, protect bool, padding int) *CleanPlan {
	return &CleanPlan{
		Area:    area,
		Kinds:   kinds,
		Protect: protect,
		Padding: padding,
		Tallies: make(map[scanner.Kind]Tally, len(kinds)),
	}
}

// Add records a classified entry and updates the kind tally.
func (p *CleanPlan) Add(e scanner.Entry, action Action) {
	p.Entries = append(p.Entries, PlannedEntry{Entry: e, Action: action})
	tally := p.Tallies[e.Kind]
	switch action {
	case ActionDelete:
		tally.ToDelete++
	case ActionProtected:
		tally.ProtectedSkip++
	}
	p.Tallies[e.Kind] = tally
}

// ToDelete returns the planned entries marked for deletion.
func (p *CleanPlan) ToDelete() []PlannedEntry {
	var out []PlannedEntry
	for _, pe := range p.Entries {
		if pe.Action == ActionDelete {
			out = append(out, pe)
		}
	}
	return out
}

// TotalToDelete returns the to-delete count across all kinds.
func (p *CleanPlan) TotalToDelete() int {
	n := 0
	for _, t := range p.Tallies {
		n += t.ToDelete
	}
	return n
}

// TotalProtected returns the protected-skip count across all kinds.
func (p *CleanPlan) TotalProtected() int {
	n := 0
	for _, t := range p.Tallies {
		n += t.ProtectedSkip
	}
	return n
}
