package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config is the merged view of flags, GRIDPICK_* environment variables and
// the gridpick config file, in that order of precedence.
type config struct {
	Catalog  string  `mapstructure:"catalog"`
	Mode     string  `mapstructure:"mode"`
	Width    int     `mapstructure:"width"`
	Height   int     `mapstructure:"height"`
	CellSize float64 `mapstructure:"cell-size"`
	Debug    bool    `mapstructure:"debug"`
	NoColor  bool    `mapstructure:"no-color"`

	Assets  string `mapstructure:"assets"`
	Workers int    `mapstructure:"workers"`
	Watch   bool   `mapstructure:"watch"`
	ShowFPS bool   `mapstructure:"fps"`

	Scroll float64  `mapstructure:"scroll"`
	Jump   string   `mapstructure:"jump"`
	Expand []string `mapstructure:"expand"`
}

func addCommonFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "", "config file (default ./gridpick.yaml)")
	f.String("catalog", "", "catalog file; the built-in sample when empty")
	f.String("mode", "", "layout mode, compact or detailed (default from the catalog)")
	f.Int("width", 400, "viewport width in points")
	f.Int("height", 640, "viewport height in points")
	f.Float64("cell-size", 0, "override the native cell size")
	f.Bool("debug", false, "print per-update stats and check invariants")
	f.Bool("no-color", false, "disable colored output")
}

// loadConfig resolves the configuration for cmd. A missing default config
// file is not an error; a missing --config file is.
func loadConfig(cmd *cobra.Command) (config, error) {
	v := viper.New()
	v.SetEnvPrefix("GRIDPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config{}, fmt.Errorf("bind flags: %w", err)
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("gridpick") // .yaml is implicit
		if override := os.Getenv("GRIDPICK_CONFIG_PATH"); override != "" {
			v.AddConfigPath(override)
		}
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return config{}, fmt.Errorf("invalid viewport size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}
