// Package filter decides, per tile coordinate, whether a file is eligible
// for deletion. The decision is a pure predicate over the requested area,
// the protection configuration, and the loaded safehouse records; identical
// inputs always give identical answers.
package filter

import (
	"github.com/danieljhkim/pzmapclean/internal/geom"
	"github.com/danieljhkim/pzmapclean/internal/safehouse"
)

// Filter evaluates tile coordinates against a requested deletion area and a
// set of protected safehouse rectangles.
type Filter struct {
	area    geom.Rect
	protect bool
	padded  []geom.Rect
}

// New builds a Filter. Safehouse rectangles are expanded by padding cells on
// all four sides once, up front; the records themselves are never mutated.
func New(area geom.Rect, protect bool, padding int, records []safehouse.Record) *Filter {
	f := &Filter{area: area, protect: protect}
	if protect {
		f.padded = make([]geom.Rect, 0, len(records))
		for _, r := range records {
			f.padded = append(f.padded, r.Bounds.Expand(padding))
		}
	}
	return f
}

// Requested reports whether c lies inside the deletion area
// (start-inclusive, end-exclusive).
func (f *Filter) Requested(c geom.Coord) bool {
	return f.area.ContainsHalfOpen(c)
}

// Protected reports whether c falls inside any padded safehouse rectangle.
// Padded bounds are inclusive on all sides; one overlapping safehouse is
// sufficient. Always false when protection is disabled.
func (f *Filter) Protected(c geom.Coord) bool {
	if !f.protect {
		return false
	}
	for _, r := range f.padded {
		if r.ContainsClosed(c) {
			return true
		}
	}
	return false
}

// Eligible reports whether c is requested and not protected.
func (f *Filter) Eligible(c geom.Coord) bool {
	return f.Requested(c) && !f.Protected(c)
}
