package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "output_dir = \"markers\"\nborder = 2\n")

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile() = %v, want nil", err)
	}
	if cfg.OutputDir != "markers" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "markers")
	}
	if cfg.Border != 2 {
		t.Errorf("Border = %d, want 2", cfg.Border)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("loadConfigFile(missing) = %v, want nil", err)
	}
	if cfg != (Config{}) {
		t.Errorf("cfg = %+v, want zero value", cfg)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "output_dir = "},
		{"negative border", "border = -1\n"},
		{"wrong type", "border = \"two\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := loadConfigFile(path); err == nil {
				t.Error("loadConfigFile() = nil, want error")
			}
		})
	}
}

func TestOverlayConfig(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cfg := Config{OutputDir: "markers", Border: 3}

	// Both file-writing commands expose the flags the config file feeds.
	commands := map[string]func() *cobra.Command{
		"generate": c.generateCommand,
		"sheet":    c.sheetCommand,
	}

	for name, newCmd := range commands {
		t.Run(name+" unset flags take config", func(t *testing.T) {
			cmd := newCmd()
			outputDir := "images"
			border := 1
			overlayConfig(cfg, cmd, &outputDir, &border)

			if outputDir != "markers" {
				t.Errorf("outputDir = %q, want %q", outputDir, "markers")
			}
			if border != 3 {
				t.Errorf("border = %d, want 3", border)
			}
		})

		t.Run(name+" set flags win", func(t *testing.T) {
			cmd := newCmd()
			if err := cmd.Flags().Set("output-dir", "elsewhere"); err != nil {
				t.Fatal(err)
			}
			if err := cmd.Flags().Set("border", "2"); err != nil {
				t.Fatal(err)
			}
			outputDir := "elsewhere"
			border := 2
			overlayConfig(cfg, cmd, &outputDir, &border)

			if outputDir != "elsewhere" {
				t.Errorf("outputDir = %q, want %q", outputDir, "elsewhere")
			}
			if border != 2 {
				t.Errorf("border = %d, want 2", border)
			}
		})
	}
}

func TestOverlayConfigZeroValuesIgnored(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	cmd := c.generateCommand()

	outputDir := "images"
	border := 1
	overlayConfig(Config{}, cmd, &outputDir, &border)

	if outputDir != "images" {
		t.Errorf("outputDir = %q, want %q", outputDir, "images")
	}
	if border != 1 {
		t.Errorf("border = %d, want 1", border)
	}
}

func TestConfigDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := configDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", appName); dir != want {
		t.Errorf("configDir() = %q, want %q", dir, want)
	}
}
