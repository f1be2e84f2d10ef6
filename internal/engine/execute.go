package engine

import (
	"context"
	"os"
	"sort"
	"sync"

	"github.com/danieljhkim/pzmapclean/internal/config"
	"github.com/danieljhkim/pzmapclean/internal/planner"
	"github.com/danieljhkim/pzmapclean/internal/scanner"
)

// ExecuteOptions controls plan execution.
type ExecuteOptions struct {
	// DryRun skips every delete call; the classification counts are
	// identical to a real run.
	DryRun bool

	// Workers bounds the deletion fan-out; zero means the default.
	Workers int
}

// ExecutePlan deletes the plan's to-delete entries. Deletions are
// independent, so they fan out across a bounded worker pool; per-entry
// results are collected under a mutex and the batch never aborts because
// one file failed. Removing an already-absent file counts as a successful
// no-op, which keeps repeated runs idempotent.
func (e *Engine) ExecutePlan(ctx context.Context, plan *planner.CleanPlan, opts ExecuteOptions) (*CleanResult, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = config.DefaultWorkers
	}

	result := &CleanResult{
		DryRun:        opts.DryRun,
		ProtectedSkip: plan.TotalProtected(),
	}

	perKind := make(map[scanner.Kind]*KindOutcome, len(plan.Kinds))
	for _, kind := range plan.Kinds {
		perKind[kind] = &KindOutcome{
			Kind:          kind,
			ProtectedSkip: plan.Tallies[kind].ProtectedSkip,
		}
	}

	toDelete := plan.ToDelete()

	if opts.DryRun {
		for _, pe := range toDelete {
			perKind[pe.Entry.Kind].Deleted++
		}
		result.Deleted = len(toDelete)
	} else {
		jobs := make(chan planner.PlannedEntry)
		var mu sync.Mutex
		var wg sync.WaitGroup

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for pe := range jobs {
					err := e.fs.Remove(pe.Entry.Path)
					if err != nil && os.IsNotExist(err) {
						// Already gone; idempotent no-op.
						err = nil
					}

					mu.Lock()
					if err != nil {
						perKind[pe.Entry.Kind].Failed++
						result.Failed++
						result.Failures = append(result.Failures, EntryFailure{
							Path:   pe.Entry.Path,
							Coord:  pe.Entry.Coord,
							Kind:   pe.Entry.Kind,
							Reason: err.Error(),
						})
					} else {
						perKind[pe.Entry.Kind].Deleted++
						result.Deleted++
					}
					mu.Unlock()
				}
			}()
		}

		for _, pe := range toDelete {
			if ctx.Err() != nil {
				// Stop issuing deletes; in-flight entries finish normally.
				break
			}
			jobs <- pe
		}
		close(jobs)
		wg.Wait()
	}

	for _, kind := range plan.Kinds {
		result.PerKind = append(result.PerKind, *perKind[kind])
	}
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].Path < result.Failures[j].Path
	})

	result.FinishedAt = e.clock.Now()
	return result, nil
}
