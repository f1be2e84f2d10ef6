package scanner

import "fmt"

// Kind identifies one of the save-data file families. The set is closed;
// each kind has its own filename prefix and directory convention and is
// requested independently.
type Kind int

const (
	// MapData covers the per-tile map payload files.
	MapData Kind = iota

	// ChunkData covers the chunk state files.
	ChunkData

	// ZpopData covers the zombie population files.
	ZpopData
)

// AllKinds returns every supported kind in a stable order.
func AllKinds() []Kind {
	return []Kind{MapData, ChunkData, ZpopData}
}

// Prefix returns the filename prefix for the kind. The mapping is fixed by
// the game's save format.
func (k Kind) Prefix() string {
	switch k {
	case MapData:
		return "map"
	case ChunkData:
		return "chunkdata"
	case ZpopData:
		return "zpop"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) String() string {
	switch k {
	case MapData:
		return "map-data"
	case ChunkData:
		return "chunk-data"
	case ZpopData:
		return "zpop-data"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText renders the kind by name so JSON output stays readable.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
