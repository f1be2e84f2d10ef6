// Package planner handles the planning phase of a clean run.
//
// The planner scans each requested file kind, classifies every discovered
// tile through the region filter, and produces a deterministic CleanPlan.
// The plan is pure data: executing it (or simulating it under dry-run) is
// the engine's job, and the classification is identical either way.
//
// Key responsibilities:
//   - Scan requested kinds under the save root
//   - Classify tiles as to-delete or protected-skip
//   - Tally both classes per kind; out-of-area tiles are never materialized
package planner
