package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/pzmapclean/internal/engine"
)

var (
	cleanArea      []int
	cleanMapData   bool
	cleanChunkData bool
	cleanZpopData  bool
	cleanDryRun    bool
	cleanNoProtect bool
	cleanPadding   int
	cleanWorkers   int
)

var cleanCmd = &cobra.Command{
	Use:   "clean [save-dir]",
	Short: "Delete save-data files inside a rectangular area",
	Long: `Delete the selected file kinds inside the given area. The area is
start-inclusive, end-exclusive on both axes.

Safehouse protection is enabled by default: every safehouse rectangle from
the save's metadata is padded and its tiles are skipped. Use --no-protect
to delete them anyway, and --dry-run to preview without touching anything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		root, err := resolveSaveDir(args, cfg)
		if err != nil {
			return err
		}

		if len(cleanArea) != 4 {
			return fmt.Errorf("--area needs exactly 4 values: startX,startY,endX,endY")
		}

		kinds := selectedKinds(cleanMapData, cleanChunkData, cleanZpopData)
		if len(kinds) == 0 {
			return fmt.Errorf("select at least one of --map-data, --chunk-data, --zpop-data")
		}

		padding := cfg.Padding
		if cmd.Flags().Changed("padding") {
			padding = cleanPadding
		}
		if padding < 0 {
			return fmt.Errorf("--padding must be non-negative")
		}

		workers := cfg.Workers
		if cmd.Flags().Changed("workers") {
			workers = cleanWorkers
		}

		protect := cfg.Protected()
		if cleanNoProtect {
			protect = false
		}

		req := &engine.CleanRequest{
			Root:    root,
			StartX:  cleanArea[0],
			StartY:  cleanArea[1],
			EndX:    cleanArea[2],
			EndY:    cleanArea[3],
			Kinds:   kinds,
			Protect: protect,
			Padding: padding,
			DryRun:  cleanDryRun,
			Workers: workers,
		}

		plan, result, err := newEngine().Clean(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(struct {
				Plan   any `json:"plan"`
				Result any `json:"result"`
			}{plan, result})
		}

		if plan.SafehouseDiagnostic != "" {
			PrintWarning(plan.SafehouseDiagnostic)
		}

		if cleanDryRun {
			PrintSection("Dry Run")
			PrintInfo(fmt.Sprintf("Would delete %s in area %s",
				PrintCount(result.Deleted, "file", "files"), plan.Area))
			names := make([]string, 0, len(plan.Entries))
			for _, pe := range plan.ToDelete() {
				names = append(names, pe.Entry.Path)
			}
			PrintList(names, 1)
		} else {
			PrintSection("Clean")
			PrintSuccess(fmt.Sprintf("Deleted %s in area %s",
				PrintCount(result.Deleted, "file", "files"), plan.Area))
		}

		for _, ko := range result.PerKind {
			PrintLabelValue(ko.Kind.String(),
				fmt.Sprintf("%d deleted, %d protected, %d failed",
					ko.Deleted, ko.ProtectedSkip, ko.Failed))
		}
		if result.ProtectedSkip > 0 {
			PrintWarning(fmt.Sprintf("Skipped %s inside padded safehouses (padding %d)",
				PrintCount(result.ProtectedSkip, "file", "files"), plan.Padding))
		}

		if result.Failed > 0 {
			for _, f := range result.Failures {
				PrintError(fmt.Sprintf("%s: %s", f.Path, f.Reason))
			}
			return fmt.Errorf("%d of %d deletions failed", result.Failed, result.Failed+result.Deleted)
		}
		return nil
	},
}

func init() {
	cleanCmd.Flags().IntSliceVar(&cleanArea, "area", nil, "Area as startX,startY,endX,endY (end exclusive)")
	cleanCmd.Flags().BoolVar(&cleanMapData, "map-data", false, "Delete map data files (map_*.bin)")
	cleanCmd.Flags().BoolVar(&cleanChunkData, "chunk-data", false, "Delete chunk data files (chunkdata_*.bin)")
	cleanCmd.Flags().BoolVar(&cleanZpopData, "zpop-data", false, "Delete zombie population files (zpop_*.bin)")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Show what would be deleted without deleting")
	cleanCmd.Flags().BoolVar(&cleanNoProtect, "no-protect", false, "Delete tiles inside safehouses too")
	cleanCmd.Flags().IntVar(&cleanPadding, "padding", 4, "Cells of padding around each safehouse")
	cleanCmd.Flags().IntVar(&cleanWorkers, "workers", 4, "Parallel deletion workers")
	_ = cleanCmd.MarkFlagRequired("area")
}
