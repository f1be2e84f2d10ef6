package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/danieljhkim/pzmapclean/internal/fsops"
	"github.com/danieljhkim/pzmapclean/internal/scanner"
)

func TestPlanCleanValidation(t *testing.T) {
	eng := newTestEngine(fsops.NewRealFS())
	ctx := context.Background()
	root := t.TempDir()

	tests := []struct {
		name    string
		req     *CleanRequest
		wantErr error
	}{
		{
			name: "no kinds selected",
			req: &CleanRequest{
				Root: root,
				StartX: 0, StartY: 0, EndX: 10, EndY: 10,
			},
			wantErr: ErrNoFileKind,
		},
		{
			name: "end before start",
			req: &CleanRequest{
				Root:  root,
				Kinds: []scanner.Kind{scanner.MapData},
				StartX: 10, StartY: 0, EndX: 5, EndY: 10,
			},
			wantErr: ErrInvalidArea,
		},
		{
			name: "degenerate area",
			req: &CleanRequest{
				Root:  root,
				Kinds: []scanner.Kind{scanner.MapData},
				StartX: 10, StartY: 10, EndX: 10, EndY: 20,
			},
			wantErr: ErrInvalidArea,
		},
		{
			name: "missing root",
			req: &CleanRequest{
				Root:  root + "/nonexistent",
				Kinds: []scanner.Kind{scanner.MapData},
				StartX: 0, StartY: 0, EndX: 10, EndY: 10,
			},
			wantErr: ErrDirectoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.PlanClean(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("PlanClean error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlanCleanNegativePadding(t *testing.T) {
	eng := newTestEngine(fsops.NewRealFS())
	_, err := eng.PlanClean(context.Background(), &CleanRequest{
		Root:    t.TempDir(),
		Kinds:   []scanner.Kind{scanner.MapData},
		StartX:  0, StartY: 0, EndX: 10, EndY: 10,
		Protect: true,
		Padding: -1,
	})
	if err == nil {
		t.Error("expected error for negative padding")
	}
}

// Area (10,20)-(30,40): tiles at (10,20) and (29,39) are in area, (30,40)
// is excluded by end-exclusivity.
func TestCleanEndExclusivity(t *testing.T) {
	root := t.TempDir()
	inA := touch(t, root, "map_10_20.bin")
	inB := touch(t, root, "map_29_39.bin")
	out := touch(t, root, "map_30_40.bin")

	eng := newTestEngine(fsops.NewRealFS())
	plan, result, err := eng.Clean(context.Background(), &CleanRequest{
		Root:   root,
		Kinds:  []scanner.Kind{scanner.MapData},
		StartX: 10, StartY: 20, EndX: 30, EndY: 40,
		DryRun: true,
	})
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	if result.Deleted != 2 {
		t.Errorf("dry-run Deleted = %d, want 2", result.Deleted)
	}
	if plan.TotalToDelete() != 2 {
		t.Errorf("plan TotalToDelete = %d, want 2", plan.TotalToDelete())
	}

	// Dry-run purity: everything still on disk.
	for _, p := range []string{inA, inB, out} {
		if !exists(t, p) {
			t.Errorf("dry run removed %s", p)
		}
	}
}

func TestCleanDeletesAndIsIdempotent(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "map_1_1.bin")
	touch(t, root, "map_2_2.bin")
	outside := touch(t, root, "map_50_50.bin")

	eng := newTestEngine(fsops.NewRealFS())
	req := &CleanRequest{
		Root:   root,
		Kinds:  []scanner.Kind{scanner.MapData},
		StartX: 0, StartY: 0, EndX: 10, EndY: 10,
	}

	_, first, err := eng.Clean(context.Background(), req)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if first.Deleted != 2 || first.Failed != 0 {
		t.Errorf("first run: deleted %d failed %d, want 2/0", first.Deleted, first.Failed)
	}
	if !exists(t, outside) {
		t.Error("out-of-area file was deleted")
	}

	// Deleted entries are absent from the next scan, so a second run has
	// nothing to do.
	_, second, err := eng.Clean(context.Background(), req)
	if err != nil {
		t.Fatalf("second Clean failed: %v", err)
	}
	if second.Deleted != 0 || second.Failed != 0 {
		t.Errorf("second run: deleted %d failed %d, want 0/0", second.Deleted, second.Failed)
	}
}

// Safehouse (15,25)-(18,28) with padding 4 protects (11,21)-(22,32)
// inclusive; the tile at (12,22) is spared unless protection is disabled.
func TestCleanSafehouseProtection(t *testing.T) {
	root := t.TempDir()
	protected := touch(t, root, "map_12_22.bin")
	eligible := touch(t, root, "map_40_40.bin")
	writeMeta(t, root, [4]int32{15, 25, 18, 28})

	eng := newTestEngine(fsops.NewRealFS())

	plan, result, err := eng.Clean(context.Background(), &CleanRequest{
		Root:    root,
		Kinds:   []scanner.Kind{scanner.MapData},
		StartX:  0, StartY: 0, EndX: 100, EndY: 100,
		Protect: true,
		Padding: 4,
	})
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if plan.SafehouseDiagnostic != "" {
		t.Errorf("unexpected diagnostic: %s", plan.SafehouseDiagnostic)
	}
	if result.Deleted != 1 || result.ProtectedSkip != 1 {
		t.Errorf("deleted %d protected %d, want 1/1", result.Deleted, result.ProtectedSkip)
	}
	if !exists(t, protected) {
		t.Error("protected tile was deleted")
	}
	if exists(t, eligible) {
		t.Error("eligible tile survived")
	}

	// Protection disabled: the same tile goes.
	_, result, err = eng.Clean(context.Background(), &CleanRequest{
		Root:   root,
		Kinds:  []scanner.Kind{scanner.MapData},
		StartX: 0, StartY: 0, EndX: 100, EndY: 100,
	})
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if result.Deleted != 1 {
		t.Errorf("deleted %d, want 1", result.Deleted)
	}
	if exists(t, protected) {
		t.Error("tile survived with protection disabled")
	}
}

// Metadata absent: protection degrades to disabled-equivalent, with a
// diagnostic on the plan.
func TestCleanMetadataAbsent(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "map_5_5.bin")

	eng := newTestEngine(fsops.NewRealFS())
	plan, result, err := eng.Clean(context.Background(), &CleanRequest{
		Root:    root,
		Kinds:   []scanner.Kind{scanner.MapData},
		StartX:  0, StartY: 0, EndX: 10, EndY: 10,
		Protect: true,
		Padding: 4,
		DryRun:  true,
	})
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	if plan.SafehouseDiagnostic == "" {
		t.Error("expected a diagnostic for absent metadata")
	}
	if result.Deleted != 1 || result.ProtectedSkip != 0 {
		t.Errorf("deleted %d protected %d, want 1/0 (same as protection disabled)", result.Deleted, result.ProtectedSkip)
	}
}

func TestCleanMultipleKinds(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "map_1_1.bin")
	touch(t, root, "chunkdata_1_1.bin")
	touch(t, root, "zpop_1_1.bin")

	eng := newTestEngine(fsops.NewRealFS())
	_, result, err := eng.Clean(context.Background(), &CleanRequest{
		Root:   root,
		Kinds:  []scanner.Kind{scanner.MapData, scanner.ChunkData, scanner.ZpopData},
		StartX: 0, StartY: 0, EndX: 5, EndY: 5,
	})
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if result.Deleted != 3 {
		t.Errorf("deleted %d, want 3", result.Deleted)
	}
	if len(result.PerKind) != 3 {
		t.Fatalf("PerKind has %d entries, want 3", len(result.PerKind))
	}
	for _, ko := range result.PerKind {
		if ko.Deleted != 1 {
			t.Errorf("%s deleted %d, want 1", ko.Kind, ko.Deleted)
		}
	}
}
