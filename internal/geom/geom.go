// Package geom provides the coordinate and rectangle primitives shared by
// the scanner, filter, and planner. A Coord identifies one on-disk storage
// unit; a Rect describes either a requested deletion area (half-open) or a
// safehouse claim (closed after padding expansion).
package geom

import "fmt"

// Coord is an integer tile coordinate. Coordinates may be negative.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Rect is a normalized rectangle. Areas are interpreted start-inclusive,
// end-exclusive; padded safehouse bounds are interpreted closed on all sides.
type Rect struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// NewRect builds a Rect, rejecting empty rectangles. Both axes must satisfy
// min < max.
func NewRect(minX, minY, maxX, maxY int) (Rect, error) {
	if maxX <= minX || maxY <= minY {
		return Rect{}, fmt.Errorf("empty rectangle: (%d,%d)-(%d,%d)", minX, minY, maxX, maxY)
	}
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, nil
}

// Expand grows the rectangle by p cells on all four sides. Safe on degenerate
// rectangles; the result is not re-validated.
func (r Rect) Expand(p int) Rect {
	return Rect{
		MinX: r.MinX - p,
		MinY: r.MinY - p,
		MaxX: r.MaxX + p,
		MaxY: r.MaxY + p,
	}
}

// ContainsHalfOpen reports whether c lies inside the rectangle under the
// area convention: start inclusive, end exclusive.
func (r Rect) ContainsHalfOpen(c Coord) bool {
	return c.X >= r.MinX && c.X < r.MaxX && c.Y >= r.MinY && c.Y < r.MaxY
}

// ContainsClosed reports whether c lies inside the rectangle inclusive of
// all four bounds. Used for padded safehouse rectangles, where the padding
// is a buffer rather than a half-open interval.
func (r Rect) ContainsClosed(c Coord) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}

// Width returns the extent of the rectangle on the X axis (half-open).
func (r Rect) Width() int {
	return r.MaxX - r.MinX
}

// Height returns the extent of the rectangle on the Y axis (half-open).
func (r Rect) Height() int {
	return r.MaxY - r.MinY
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.MinX, r.MinY, r.MaxX, r.MaxY)
}
