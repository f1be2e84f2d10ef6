package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/pzmapclean/internal/engine"
	"github.com/danieljhkim/pzmapclean/internal/geom"
)

var listArea []int

var listCmd = &cobra.Command{
	Use:   "list [save-dir]",
	Short: "List save-data coverage per file kind",
	Long: `List how many files of each kind exist in the save directory and the
coordinate extents they cover. Pass --area to restrict the summary to a
rectangle (start-inclusive, end-exclusive).`,
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

		req := &engine.ScanRequest{Root: root}
		if len(listArea) > 0 {
			if len(listArea) != 4 {
				return fmt.Errorf("--area needs exactly 4 values: startX,startY,endX,endY")
			}
			area, err := geom.NewRect(listArea[0], listArea[1], listArea[2], listArea[3])
			if err != nil {
				return fmt.Errorf("invalid area: %v", err)
			}
			req.Area = &area
		}

		result, err := newEngine().ScanArea(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection("Save Coverage")
		PrintLabelValue("Directory", result.Root)
		fmt.Println()
		for _, cov := range result.Coverage {
			if cov.Count == 0 {
				PrintEmptyState(fmt.Sprintf("%s: no files found", cov.Kind))
				continue
			}
			PrintInfo(fmt.Sprintf("  %s: %s, X=[%d, %d], Y=[%d, %d] (%d x %d)",
				cov.Kind,
				PrintCount(cov.Count, "file", "files"),
				cov.Min.X, cov.Max.X, cov.Min.Y, cov.Max.Y,
				cov.Max.X-cov.Min.X+1, cov.Max.Y-cov.Min.Y+1))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntSliceVar(&listArea, "area", nil, "Restrict to startX,startY,endX,endY (end exclusive)")
}
