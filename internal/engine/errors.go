package engine

import "errors"

var (
	// ErrDirectoryNotFound indicates the save root does not exist or is not
	// a directory. No scan can proceed.
	ErrDirectoryNotFound = errors.New("save directory not found")

	// ErrNoFileKind indicates a clean was requested with zero file kinds.
	ErrNoFileKind = errors.New("no file kind selected")

	// ErrInvalidArea indicates the requested area is empty or inverted.
	ErrInvalidArea = errors.New("invalid area")
)
