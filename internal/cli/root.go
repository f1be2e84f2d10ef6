package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	configPath string
)

// rootCmd is the root command for pzmapclean.
var rootCmd = &cobra.Command{
	Use:     "pzmapclean",
	Version: "dev",
	Short:   "Delete map files from Project Zomboid save directories",
	Long: `pzmapclean locates and deletes per-region save-data files inside a
rectangular world area, while never touching tiles protected as player
safehouses.

Areas are start-inclusive, end-exclusive. Safehouse protection is on by
default and pads every claim by a configurable cell margin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file with defaults")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(safehousesCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the pzmapclean version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = os.Stdout.WriteString(rootCmd.Version + "\n")
		},
	}
	rootCmd.AddCommand(versionCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
