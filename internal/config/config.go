// Package config loads the optional YAML settings file. Everything in it
// can also be given on the command line; the file only supplies defaults
// for repeated runs against the same server save.
package config

// Config holds user-supplied defaults for clean runs.
type Config struct {
	// SaveDir is the default save directory, used when a command is run
	// without a directory argument.
	SaveDir string `yaml:"saveDir"`

	// Padding is the safehouse padding in cells. Negative values are
	// rejected at load time.
	Padding int `yaml:"padding"`

	// Protect toggles safehouse protection. Pointer so an absent key keeps
	// the default (enabled) rather than reading as false.
	Protect *bool `yaml:"protect"`

	// Workers bounds the deletion fan-out.
	Workers int `yaml:"workers"`
}

// DefaultPadding is the safehouse padding applied when neither the config
// file nor the --padding flag overrides it.
const DefaultPadding = 4

// DefaultWorkers bounds the deletion fan-out when not overridden.
const DefaultWorkers = 4

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Padding: DefaultPadding,
		Workers: DefaultWorkers,
	}
}

// Protected reports the effective protection setting.
func (c *Config) Protected() bool {
	if c.Protect == nil {
		return true
	}
	return *c.Protect
}
