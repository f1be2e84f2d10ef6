package safehouse

import (
	"encoding/binary"
	"fmt"

	"github.com/danieljhkim/pzmapclean/internal/geom"
)

// Binary layout (little-endian):
//
//	uint32  record count
//	per record:
//	  int32 x4   rectangle bounds (minX, minY, maxX, maxY)
//	  uint32+utf8  owner name
//	  uint32       player count
//	  uint32+utf8  player name, repeated
//	  int32        region id
//
// Any truncation, a length field implying more data than remains, or a
// rectangle that fails normalization abandons the remainder of the stream.
// Records decoded before that point are still returned.

// BinaryDecoder implements Decoder over the known game serialization
// convention.
type BinaryDecoder struct{}

// NewBinaryDecoder creates a BinaryDecoder.
func NewBinaryDecoder() *BinaryDecoder {
	return &BinaryDecoder{}
}

// Decode parses the metadata blob. It never fails: malformed input yields
// the records decoded so far plus a diagnostic.
func (d *BinaryDecoder) Decode(data []byte) Load {
	r := &byteReader{buf: data}

	count, err := r.uint32()
	if err != nil {
		return Load{Diagnostic: "metadata malformed: missing record count"}
	}

	records := make([]Record, 0, min(int(count), 64))
	for i := uint32(0); i < count; i++ {
		rec, err := d.decodeRecord(r)
		if err != nil {
			return Load{
				Records: records,
				Diagnostic: fmt.Sprintf("metadata malformed at record %d of %d: %v; remaining records ignored",
					i+1, count, err),
			}
		}
		records = append(records, rec)
	}

	return Load{Records: records}
}

func (d *BinaryDecoder) decodeRecord(r *byteReader) (Record, error) {
	var bounds [4]int32
	for i := range bounds {
		v, err := r.int32()
		if err != nil {
			return Record{}, fmt.Errorf("rectangle bounds: %w", err)
		}
		bounds[i] = v
	}

	rect, err := geom.NewRect(int(bounds[0]), int(bounds[1]), int(bounds[2]), int(bounds[3]))
	if err != nil {
		return Record{}, fmt.Errorf("rectangle: %w", err)
	}

	owner, err := r.str()
	if err != nil {
		return Record{}, fmt.Errorf("owner name: %w", err)
	}

	playerCount, err := r.uint32()
	if err != nil {
		return Record{}, fmt.Errorf("player count: %w", err)
	}
	if int(playerCount) > r.remaining() {
		// Each player needs at least a length prefix; a count beyond the
		// remaining bytes is corruption, not a huge roster.
		return Record{}, fmt.Errorf("player count %d exceeds remaining data", playerCount)
	}

	var players []string
	for i := uint32(0); i < playerCount; i++ {
		name, err := r.str()
		if err != nil {
			return Record{}, fmt.Errorf("player name %d: %w", i+1, err)
		}
		players = append(players, name)
	}

	regionID, err := r.int32()
	if err != nil {
		return Record{}, fmt.Errorf("region id: %w", err)
	}

	return Record{
		Bounds:   rect,
		Owner:    owner,
		Players:  players,
		RegionID: regionID,
	}, nil
}

// byteReader is a bounds-checked cursor over the metadata blob.
type byteReader struct {
	buf []byte
	off int
}

func (r *byteReader) remaining() int {
	return len(r.buf) - r.off
}

func (r *byteReader) take(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, fmt.Errorf("need %d bytes, %d remain", n, r.remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *byteReader) uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *byteReader) int32() (int32, error) {
	v, err := r.uint32()
	return int32(v), err
}

func (r *byteReader) str() (string, error) {
	n, err := r.uint32()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", fmt.Errorf("string length %d: %w", n, err)
	}
	return string(b), nil
}
