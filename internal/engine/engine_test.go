package engine

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/pzmapclean/internal/clock"
	"github.com/danieljhkim/pzmapclean/internal/fsops"
	"github.com/danieljhkim/pzmapclean/internal/safehouse"
)

// Helpers shared by the engine tests. Tests run against a real filesystem
// in a temp dir; the failRemoveFS wrapper injects per-path deletion errors.

func newTestEngine(fs fsops.FS) *Engine {
	fixed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return New(fs, safehouse.NewBinaryDecoder(), clock.NewFakeClock(fixed))
}

func touch(t *testing.T, parts ...string) string {
	t.Helper()
	path := filepath.Join(parts...)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte{0x00}, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeMeta writes a minimal metadata file with one safehouse rectangle per
// bounds entry (empty owner, no players).
func writeMeta(t *testing.T, root string, bounds ...[4]int32) {
	t.Helper()
	var buf []byte
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(bounds)))
	for i, b := range bounds {
		for _, v := range b {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
		}
		buf = binary.LittleEndian.AppendUint32(buf, 0) // owner length
		buf = binary.LittleEndian.AppendUint32(buf, 0) // player count
		buf = binary.LittleEndian.AppendUint32(buf, uint32(i+1))
	}
	if err := os.WriteFile(filepath.Join(root, safehouse.MetaFile), buf, 0644); err != nil {
		t.Fatal(err)
	}
}

// failRemoveFS fails Remove for one specific path and delegates everything
// else.
type failRemoveFS struct {
	fsops.FS
	failPath string
}

func (f *failRemoveFS) Remove(path string) error {
	if path == f.failPath {
		return errors.New("permission denied")
	}
	return f.FS.Remove(path)
}

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Lstat(path)
	if err == nil {
		return true
	}
	if os.IsNotExist(err) {
		return false
	}
	t.Fatal(err)
	return false
}
