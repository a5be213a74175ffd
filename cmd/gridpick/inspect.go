package main

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/phanxgames/pickergrid"
	"github.com/phanxgames/pickergrid/inspect"
)

func addInspect(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a catalog's layout and the cells realized at a scroll offset.",
		Example: `
gridpick inspect
gridpick inspect --catalog ./catalog.yaml --scroll 480
gridpick inspect --jump nature/birds --expand recent --no-color
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.NoColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			out, err := inspectCatalog(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	f := cmd.Flags()
	f.String("assets", "", "directory media sources resolve against (default: the catalog's directory)")
	f.Float64("scroll", 0, "scroll offset in points")
	f.String("jump", "", "scroll to a supergroup, optionally supergroup/subgroup")
	f.StringSlice("expand", nil, "groups to expand before printing")

	topLevel.AddCommand(cmd)
}

func inspectCatalog(cfg config) (string, error) {
	f, groups, err := openCatalog(cfg.Catalog)
	if err != nil {
		return "", err
	}
	grid, err := newGrid(cfg, f, statLoader{fsys: os.DirFS(assetDir(cfg))})
	if err != nil {
		return "", err
	}
	defer grid.Close()

	grid.SetGroups(groups, pickergrid.ContentAnimationHint{})
	for _, id := range cfg.Expand {
		grid.ExpandGroup(pickergrid.GroupID(id))
	}
	switch {
	case cfg.Jump != "":
		super, sub, _ := strings.Cut(cfg.Jump, "/")
		if !grid.ScrollToItemGroup(pickergrid.GroupID(super), sub, false) {
			return "", fmt.Errorf("no group matches %q", cfg.Jump)
		}
	case cfg.Scroll != 0:
		grid.SetScrollOffset(cfg.Scroll)
	}

	// Apply completions, then run every transition to its end.
	grid.Update(0)
	grid.Update(10)
	return inspect.Report(grid, inspect.DefaultTheme()), nil
}

// statLoader resolves loads without decoding: glyphs always load, media
// loads when its source file exists and fails otherwise.
type statLoader struct {
	fsys fs.FS
}

func (s statLoader) Load(req pickergrid.LoadRequest, ready func(pickergrid.LoadResult)) pickergrid.LoadHandle {
	res := pickergrid.LoadResult{Key: req.Key, Generation: req.Generation}
	if req.Descriptor.Kind == pickergrid.ContentStaticGlyph {
		res.Content = pickergrid.Content{Payload: req.Descriptor.Source, Width: req.PixelSize, Height: req.PixelSize}
	} else if _, err := fs.Stat(s.fsys, req.Descriptor.Source); err != nil {
		res.Err = err
	}
	ready(res)
	return pickergrid.LoadHandle{}
}
