package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var safehousesCmd = &cobra.Command{
	Use:   "safehouses [save-dir]",
	Short: "List safehouse claims parsed from the save metadata",
	Long: `Parse the safehouse metadata and print every claim: bounds, owner,
members, and region id. A missing or corrupt metadata file is reported as
a warning, matching how the clean command degrades protection.`,
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

		load := newEngine().LoadSafehouses(root)

		if jsonOutput {
			return outputJSON(load)
		}

		PrintSection("Safehouses")
		if load.Diagnostic != "" {
			PrintWarning(load.Diagnostic)
		}
		if len(load.Records) == 0 {
			PrintEmptyState("no safehouse records")
			return nil
		}

		for _, rec := range load.Records {
			owner := rec.Owner
			if owner == "" {
				owner = "(unowned)"
			}
			PrintLabelValue(fmt.Sprintf("region %d", rec.RegionID),
				fmt.Sprintf("%s owner=%s", rec.Bounds, owner))
			if len(rec.Players) > 0 {
				PrintInfo(fmt.Sprintf("    members: %s", strings.Join(rec.Players, ", ")))
			}
		}
		return nil
	},
}
