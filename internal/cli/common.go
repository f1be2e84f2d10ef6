package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/pzmapclean/internal/clock"
	"github.com/danieljhkim/pzmapclean/internal/config"
	"github.com/danieljhkim/pzmapclean/internal/engine"
	"github.com/danieljhkim/pzmapclean/internal/fsops"
	"github.com/danieljhkim/pzmapclean/internal/safehouse"
	"github.com/danieljhkim/pzmapclean/internal/scanner"
)

// newEngine creates an engine with real implementations of all dependencies.
func newEngine() *engine.Engine {
	fs := fsops.NewRealFS()
	decoder := safehouse.NewBinaryDecoder()
	clk := &clock.RealClock{}
	return engine.New(fs, decoder, clk)
}

// loadConfig returns the file-based defaults when --config was given, or
// the built-in defaults otherwise.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// resolveSaveDir picks the save directory from the positional argument or
// the config file.
func resolveSaveDir(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.SaveDir != "" {
		return cfg.SaveDir, nil
	}
	return "", fmt.Errorf("no save directory given (pass it as an argument or set saveDir in the config file)")
}

// selectedKinds maps the three kind flags to scanner kinds, in fixed order.
func selectedKinds(mapData, chunkData, zpopData bool) []scanner.Kind {
	var kinds []scanner.Kind
	if mapData {
		kinds = append(kinds, scanner.MapData)
	}
	if chunkData {
		kinds = append(kinds, scanner.ChunkData)
	}
	if zpopData {
		kinds = append(kinds, scanner.ZpopData)
	}
	return kinds
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
