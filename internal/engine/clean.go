package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/pzmapclean/internal/filter"
	"github.com/danieljhkim/pzmapclean/internal/geom"
	"github.com/danieljhkim/pzmapclean/internal/planner"
	"github.com/danieljhkim/pzmapclean/internal/safehouse"
	"github.com/danieljhkim/pzmapclean/internal/scanner"
)

// PlanClean validates the request, loads safehouse records when protection
// is enabled, and classifies every in-area tile. No mutation happens here;
// fatal validation errors abort before anything is touched.
func (e *Engine) PlanClean(ctx context.Context, req *CleanRequest) (*planner.CleanPlan, error) {
	if len(req.Kinds) == 0 {
		return nil, ErrNoFileKind
	}
	if req.Padding < 0 {
		return nil, fmt.Errorf("padding must be non-negative, got %d", req.Padding)
	}

	area, err := geom.NewRect(req.StartX, req.StartY, req.EndX, req.EndY)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArea, err)
	}

	if err := e.validateRoot(req.Root); err != nil {
		return nil, err
	}

	var records []safehouse.Record
	var diagnostic string
	if req.Protect {
		load := e.LoadSafehouses(req.Root)
		records = load.Records
		diagnostic = load.Diagnostic
	}

	f := filter.New(area, req.Protect, req.Padding, records)
	sc := scanner.New(e.fs, req.Root)

	plan, err := planner.BuildCleanPlan(area, req.Kinds, req.Protect, req.Padding, sc, f)
	if err != nil {
		return nil, fmt.Errorf("failed to build clean plan: %w", err)
	}

	plan.SafehouseDiagnostic = diagnostic
	plan.GeneratedAt = e.clock.Now()
	return plan, nil
}

// Clean plans and immediately executes in one call. This is what the CLI
// uses; tests exercise PlanClean and ExecutePlan separately.
func (e *Engine) Clean(ctx context.Context, req *CleanRequest) (*planner.CleanPlan, *CleanResult, error) {
	plan, err := e.PlanClean(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	result, err := e.ExecutePlan(ctx, plan, ExecuteOptions{
		DryRun:  req.DryRun,
		Workers: req.Workers,
	})
	if err != nil {
		return plan, nil, err
	}
	return plan, result, nil
}
