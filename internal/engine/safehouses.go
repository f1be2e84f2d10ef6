package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/pzmapclean/internal/safehouse"
)

// LoadSafehouses reads the safehouse metadata under root. Absence or
// corruption is never fatal: protection degrades to whatever records were
// recovered, and the diagnostic explains what happened.
func (e *Engine) LoadSafehouses(root string) safehouse.Load {
	path := filepath.Join(root, safehouse.MetaFile)

	data, err := e.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return safehouse.Load{
				Diagnostic: fmt.Sprintf("safehouse metadata not found at %s; no tiles will be protected", path),
			}
		}
		return safehouse.Load{
			Diagnostic: fmt.Sprintf("safehouse metadata unreadable: %v; no tiles will be protected", err),
		}
	}

	return e.decoder.Decode(data)
}
