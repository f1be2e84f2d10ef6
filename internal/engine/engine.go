// Package engine provides the core operations behind the pzmapclean CLI.
//
// The engine orchestrates the lower layers: it loads safehouse metadata,
// scans the save directory, builds a clean plan through the planner, and
// executes or simulates that plan. All collaborators are injected so every
// operation can be tested against mocks.
//
// Key operations:
//   - ScanArea: coverage summary for the list command
//   - PlanClean/ExecutePlan: classify then delete (or dry-run)
//   - LoadSafehouses: best-effort metadata read, never fatal
package engine

import (
	"fmt"

	"github.com/danieljhkim/pzmapclean/internal/clock"
	"github.com/danieljhkim/pzmapclean/internal/fsops"
	"github.com/danieljhkim/pzmapclean/internal/safehouse"
)

// Engine orchestrates all pzmapclean operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs      fsops.FS
	decoder safehouse.Decoder
	clock   clock.Clock
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, decoder safehouse.Decoder, clk clock.Clock) *Engine {
	return &Engine{
		fs:      fs,
		decoder: decoder,
		clock:   clk,
	}
}

// validateRoot fails with ErrDirectoryNotFound unless root exists and is a
// directory. Every operation checks this before touching anything else.
func (e *Engine) validateRoot(root string) error {
	isDir, err := e.fs.IsDir(root)
	if err != nil {
		return fmt.Errorf("failed to access save directory %s: %w", root, err)
	}
	if !isDir {
		return fmt.Errorf("%w: %s", ErrDirectoryNotFound, root)
	}
	return nil
}
