package main

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/pickergrid"
	"github.com/phanxgames/pickergrid/catalog"
)

//go:embed sample.yaml
var sampleCatalog []byte

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridpick",
		Short: "Browse emoji and sticker catalogs in a virtualized picker grid.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addCommonFlags(cmd)

	addCommands(cmd)
	return cmd
}

func addCommands(topLevel *cobra.Command) {
	addRun(topLevel)
	addInspect(topLevel)
}

// openCatalog loads path, or the built-in sample when path is empty.
func openCatalog(path string) (*catalog.File, []pickergrid.ItemGroup, error) {
	var (
		f   *catalog.File
		err error
	)
	if path == "" {
		f, err = catalog.Parse(sampleCatalog)
	} else {
		f, err = catalog.Load(path)
	}
	if err != nil {
		return nil, nil, err
	}
	groups, err := f.ItemGroups()
	if err != nil {
		if path == "" {
			path = "sample catalog"
		}
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, groups, nil
}

// newGrid builds a grid for cfg. The catalog's mode applies unless cfg
// names one.
func newGrid(cfg config, f *catalog.File, loader pickergrid.ContentLoader) (*pickergrid.GridView, error) {
	mode, err := f.LayoutMode()
	if cfg.Mode != "" {
		mode, err = pickergrid.ParseLayoutMode(cfg.Mode)
	}
	if err != nil {
		return nil, err
	}
	gc := pickergrid.DefaultConfig()
	gc.Mode = mode
	gc.Loader = loader
	gc.Debug = cfg.Debug

	grid := pickergrid.NewGridView(gc)
	grid.SetSize(float64(cfg.Width), float64(cfg.Height), pickergrid.Insets{})
	if cfg.CellSize > 0 {
		m := gc.Metrics.Metrics(gc.Mode).Grid
		m.NativeCellSize = cfg.CellSize
		grid.SetLayoutOverride(&m)
	}
	return grid, nil
}
