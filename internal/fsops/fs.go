// Package fsops provides the filesystem capability surface for pzmapclean.
//
// All filesystem access goes through the FS interface: enumeration for the
// scanner, a single read for the safehouse metadata, and per-file removal
// for the executor. Keeping mutations behind the interface makes the engine
// testable against mocks and keeps deletion confined to what the planner
// decided.
package fsops

import (
	"os"
)

// FS abstracts the filesystem operations the cleaner needs.
type FS interface {
	// ReadDir lists the entries of a directory.
	ReadDir(path string) ([]os.DirEntry, error)

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// Remove removes a single file.
	Remove(path string) error

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) (bool, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// ReadDir lists the entries of a directory.
func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Remove removes a single file.
func (fs *RealFS) Remove(path string) error {
	return os.Remove(path)
}

// IsDir reports whether path exists and is a directory. A missing path is
// not an error; it is simply not a directory.
func (fs *RealFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
