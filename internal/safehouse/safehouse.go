// Package safehouse parses the binary safehouse metadata that ships with a
// save directory. The byte layout is reverse-engineered from the game's
// serialization and is not authoritatively documented, so all decoding is
// isolated behind the Decoder interface; callers only ever see Records and
// a diagnostic, never a decode error.
package safehouse

import (
	"github.com/danieljhkim/pzmapclean/internal/geom"
)

// MetaFile is the name of the metadata resource under the save root.
const MetaFile = "map_meta.bin"

// Record is one parsed safehouse claim. Immutable once parsed; padding is
// applied at filter time, never written back into the record.
type Record struct {
	// Bounds is the claimed rectangle, unpadded.
	Bounds geom.Rect

	// Owner is the claiming player's name. May be empty.
	Owner string

	// Players is the ordered list of members granted access.
	Players []string

	// RegionID is an opaque identifier carried through from the file.
	RegionID int32
}

// Load is the outcome of reading the metadata resource. Absence and
// corruption both degrade to fewer (possibly zero) records plus a
// diagnostic; there is no fatal variant.
type Load struct {
	Records    []Record
	Diagnostic string
}

// Partial reports whether the load carries a diagnostic, meaning the record
// list may be incomplete and protection is best-effort.
func (l Load) Partial() bool {
	return l.Diagnostic != ""
}

// Decoder turns the raw metadata bytes into safehouse records. The byte
// contract can be revised behind this interface without touching the filter
// or planner.
type Decoder interface {
	Decode(data []byte) Load
}
