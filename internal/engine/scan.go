package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/pzmapclean/internal/scanner"
)

// ScanArea summarizes the on-disk coverage of each requested kind,
// optionally restricted to an area. Used by the list command.
func (e *Engine) ScanArea(ctx context.Context, req *ScanRequest) (*ScanResult, error) {
	if err := e.validateRoot(req.Root); err != nil {
		return nil, err
	}

	kinds := req.Kinds
	if len(kinds) == 0 {
		kinds = scanner.AllKinds()
	}

	sc := scanner.New(e.fs, req.Root)
	result := &ScanResult{Root: req.Root}

	for _, kind := range kinds {
		entries, err := sc.Scan(kind)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}

		cov := KindCoverage{Kind: kind}
		for _, entry := range entries {
			if req.Area != nil && !req.Area.ContainsHalfOpen(entry.Coord) {
				continue
			}
			c := entry.Coord
			if cov.Count == 0 {
				cov.Min, cov.Max = c, c
			} else {
				if c.X < cov.Min.X {
					cov.Min.X = c.X
				}
				if c.Y < cov.Min.Y {
					cov.Min.Y = c.Y
				}
				if c.X > cov.Max.X {
					cov.Max.X = c.X
				}
				if c.Y > cov.Max.Y {
					cov.Max.Y = c.Y
				}
			}
			cov.Count++
		}
		result.Coverage = append(result.Coverage, cov)
	}

	return result, nil
}
