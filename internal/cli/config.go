package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/poqudrof/arucogen/pkg/errors"
)

// configFile is the name of the optional defaults file inside configDir.
const configFile = "config.toml"

// Config holds optional defaults loaded from
// $XDG_CONFIG_HOME/arucogen/config.toml. Flags always win over the file.
type Config struct {
	OutputDir string `toml:"output_dir"` // default output directory
	Border    int    `toml:"border"`     // default marker border width in modules
}

// loadConfig reads the defaults file if it exists. A missing file yields a
// zero Config and no error; a malformed file is an INVALID_CONFIG error.
func loadConfig() (Config, error) {
	dir, err := configDir()
	if err != nil {
		return Config{}, nil
	}
	return loadConfigFile(filepath.Join(dir, configFile))
}

// loadConfigFile reads and decodes a specific defaults file.
func loadConfigFile(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if cfg.Border < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"%s: border must be non-negative, got %d", path, cfg.Border)
	}
	return cfg, nil
}

// applyConfigDefaults overlays defaults from the optional config file onto
// the output-dir and border flags when the user did not set them. Shared by
// every command exposing those flags.
func (c *CLI) applyConfigDefaults(cmd *cobra.Command, outputDir *string, border *int) {
	cfg, err := loadConfig()
	if err != nil {
		c.Logger.Warnf("Ignoring config file: %v", err)
		return
	}
	overlayConfig(cfg, cmd, outputDir, border)
}

// overlayConfig applies cfg to the flag targets that were left at their
// defaults.
func overlayConfig(cfg Config, cmd *cobra.Command, outputDir *string, border *int) {
	if cfg.OutputDir != "" && !cmd.Flags().Changed("output-dir") {
		*outputDir = cfg.OutputDir
	}
	if cfg.Border > 0 && !cmd.Flags().Changed("border") {
		*border = cfg.Border
	}
}
