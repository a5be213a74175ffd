package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// parseConfig resolves the config of subcommand name with args, without
// running it.
func parseConfig(t *testing.T, name string, args ...string) (config, error) {
	t.Helper()
	root := newRootCommand()
	cmd, rest, err := root.Find(append([]string{name}, args...))
	if err != nil {
		t.Fatalf("find %s: %v", name, err)
	}
	if err := cmd.ParseFlags(rest); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return loadConfig(cmd)
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := parseConfig(t, "run")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 400 || cfg.Height != 640 {
		t.Errorf("size = %dx%d, want 400x640", cfg.Width, cfg.Height)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.Catalog != "" || cfg.Mode != "" || cfg.CellSize != 0 || cfg.Watch || cfg.Debug {
		t.Errorf("unexpected non-default config %+v", cfg)
	}
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, "gridpick.yaml"), `
width: 320
height: 480
mode: detailed
catalog: stickers.yaml
workers: 2
`)
	t.Setenv("GRIDPICK_HEIGHT", "500")
	t.Setenv("GRIDPICK_CELL_SIZE", "36")

	cfg, err := parseConfig(t, "run", "--width", "360")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 360 {
		t.Errorf("Width = %d, want the flag's 360", cfg.Width)
	}
	if cfg.Height != 500 {
		t.Errorf("Height = %d, want the environment's 500", cfg.Height)
	}
	if cfg.CellSize != 36 {
		t.Errorf("CellSize = %v, want 36", cfg.CellSize)
	}
	if cfg.Mode != "detailed" || cfg.Catalog != "stickers.yaml" || cfg.Workers != 2 {
		t.Errorf("file values not applied: %+v", cfg)
	}
}

func TestConfigPathFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	other := t.TempDir()
	writeFile(t, filepath.Join(other, "gridpick.yaml"), "height: 300\n")
	t.Setenv("GRIDPICK_CONFIG_PATH", other)

	cfg, err := parseConfig(t, "inspect")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Height != 300 {
		t.Errorf("Height = %d, want 300", cfg.Height)
	}
}

func TestConfigExplicitFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "expand: [recent, smileys]\nscroll: 120\n")

	cfg, err := parseConfig(t, "inspect", "--config", path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Scroll != 120 {
		t.Errorf("Scroll = %v, want 120", cfg.Scroll)
	}
	if strings.Join(cfg.Expand, ",") != "recent,smileys" {
		t.Errorf("Expand = %v", cfg.Expand)
	}
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, "broken.yaml"), "width: [\n")

	tests := []struct {
		name string
		args []string
	}{
		{"missing explicit file", []string{"--config", filepath.Join(dir, "missing.yaml")}},
		{"malformed file", []string{"--config", filepath.Join(dir, "broken.yaml")}},
		{"zero width", []string{"--width", "0"}},
		{"negative height", []string{"--height", "-5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseConfig(t, "inspect", tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
