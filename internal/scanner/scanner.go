// Package scanner enumerates on-disk save-data files and resolves each one
// to a tile coordinate. Two mutually exclusive directory conventions are
// supported per kind: the legacy flat layout and the modern subdirectory
// layout. The layout is selected per scan by probing for the kind-named
// subdirectory, never by persistent state.
package scanner

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/danieljhkim/pzmapclean/internal/fsops"
	"github.com/danieljhkim/pzmapclean/internal/geom"
)

// Entry is one discovered save-data file.
type Entry struct {
	// Coord is the tile coordinate parsed from the file's name or path.
	Coord geom.Coord

	// Kind is the file family the entry belongs to.
	Kind Kind

	// Path is the absolute on-disk location of the file.
	Path string
}

// Scanner walks a save root for one kind at a time.
type Scanner struct {
	fs   fsops.FS
	root string
}

// New creates a Scanner over the given save root. The root is assumed to
// exist; callers validate it before scanning.
func New(fs fsops.FS, root string) *Scanner {
	return &Scanner{fs: fs, root: root}
}

// Scan returns every entry of the given kind under the root. A root without
// any files of the kind yields zero entries, not an error. Filenames that do
// not match the kind's pattern are skipped.
func (s *Scanner) Scan(kind Kind) ([]Entry, error) {
	strategy, err := s.selectLayout(kind)
	if err != nil {
		return nil, err
	}
	return strategy.scan(kind)
}

// selectLayout probes for the modern kind-named subdirectory and falls back
// to legacy flat scanning of the root.
func (s *Scanner) selectLayout(kind Kind) (layout, error) {
	kindDir := filepath.Join(s.root, kind.Prefix())
	isDir, err := s.fs.IsDir(kindDir)
	if err != nil {
		return nil, fmt.Errorf("failed to probe layout for %s: %w", kind, err)
	}
	if isDir {
		return &modernLayout{fs: s.fs, dir: kindDir}, nil
	}
	return &legacyLayout{fs: s.fs, root: s.root}, nil
}

// layout is one directory-convention strategy. The two implementations are
// never merged within a single scan.
type layout interface {
	scan(kind Kind) ([]Entry, error)
}

// legacyLayout scans prefix-named files directly under the save root.
type legacyLayout struct {
	fs   fsops.FS
	root string
}

func (l *legacyLayout) scan(kind Kind) ([]Entry, error) {
	dirEntries, err := l.fs.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read save root: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		coord, ok := parsePrefixName(de.Name(), kind.Prefix())
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Coord: coord,
			Kind:  kind,
			Path:  filepath.Join(l.root, de.Name()),
		})
	}
	return entries, nil
}

// modernLayout scans a kind-named subdirectory. MapData nests one directory
// per x coordinate with files named by y; the other kinds keep flat
// prefix-named files inside the subdirectory.
type modernLayout struct {
	fs  fsops.FS
	dir string
}

func (m *modernLayout) scan(kind Kind) ([]Entry, error) {
	if kind == MapData {
		return m.scanNested(kind)
	}
	return m.scanFlat(kind)
}

func (m *modernLayout) scanFlat(kind Kind) ([]Entry, error) {
	dirEntries, err := m.fs.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s directory: %w", kind, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		coord, ok := parsePrefixName(de.Name(), kind.Prefix())
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Coord: coord,
			Kind:  kind,
			Path:  filepath.Join(m.dir, de.Name()),
		})
	}
	return entries, nil
}

func (m *modernLayout) scanNested(kind Kind) ([]Entry, error) {
	xDirs, err := m.fs.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s directory: %w", kind, err)
	}

	var entries []Entry
	for _, xd := range xDirs {
		if !xd.IsDir() {
			continue
		}
		x, err := strconv.Atoi(xd.Name())
		if err != nil {
			continue
		}

		xPath := filepath.Join(m.dir, xd.Name())
		files, err := m.fs.ReadDir(xPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s column %d: %w", kind, x, err)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			name := strings.TrimSuffix(f.Name(), ".bin")
			if name == f.Name() {
				continue
			}
			y, err := strconv.Atoi(name)
			if err != nil {
				continue
			}
			entries = append(entries, Entry{
				Coord: geom.Coord{X: x, Y: y},
				Kind:  kind,
				Path:  filepath.Join(xPath, f.Name()),
			})
		}
	}
	return entries, nil
}

// parsePrefixName extracts a coordinate from a "<prefix>_<x>_<y>.bin"
// filename. Returns false for anything that does not match.
func parsePrefixName(name, prefix string) (geom.Coord, bool) {
	rest := strings.TrimSuffix(name, ".bin")
	if rest == name {
		return geom.Coord{}, false
	}
	rest = strings.TrimPrefix(rest, prefix+"_")
	if rest == strings.TrimSuffix(name, ".bin") {
		return geom.Coord{}, false
	}

	parts := strings.Split(rest, "_")
	if len(parts) != 2 {
		return geom.Coord{}, false
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return geom.Coord{}, false
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return geom.Coord{}, false
	}
	return geom.Coord{X: x, Y: y}, true
}
