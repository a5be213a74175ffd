package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/pickergrid"
	"github.com/phanxgames/pickergrid/catalog"
	"github.com/phanxgames/pickergrid/ebitenhost"
	"github.com/phanxgames/pickergrid/ecs"
)

func addRun(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a catalog in a picker window.",
		Example: `
gridpick run
gridpick run --catalog ./stickers/catalog.yaml --mode detailed --watch
GRIDPICK_WORKERS=8 gridpick run --catalog ./catalog.yaml --fps
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runWindow(cfg)
		},
	}
	f := cmd.Flags()
	f.String("assets", "", "directory media sources resolve against (default: the catalog's directory)")
	f.Int("workers", 4, "concurrent content loads")
	f.Bool("watch", false, "reload the catalog when it changes")
	f.Bool("fps", false, "show the frame rate")

	topLevel.AddCommand(cmd)
}

func runWindow(cfg config) error {
	f, groups, err := openCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	loader := pickergrid.NewAsyncLoader(ebitenhost.NewFSFetcher(os.DirFS(assetDir(cfg))), cfg.Workers)
	defer loader.Close()

	grid, err := newGrid(cfg, f, loader)
	if err != nil {
		return err
	}
	defer grid.Close()

	world := donburi.NewWorld()
	p := &picker{grid: grid, groups: groups}
	grid.SetIntentSink(ecs.NewDonburiSink(world))
	grid.OnVisibleTopGroupChanged(ecs.TopGroupPublisher(world))
	ecs.IntentEventType.Subscribe(world, p.onIntent)
	ecs.TopGroupEventType.Subscribe(world, p.onTopGroup)
	grid.SetGroups(groups, pickergrid.ContentAnimationHint{})

	var reloads <-chan catalog.Reload
	if cfg.Watch {
		if cfg.Catalog == "" {
			log.Printf("--watch ignored: no catalog file")
		} else {
			w, err := catalog.NewWatcher(cfg.Catalog)
			if err != nil {
				return err
			}
			defer w.Close()
			reloads = w.Reloads()
		}
	}

	opts := ebitenhost.DefaultOptions()
	opts.Width, opts.Height = cfg.Width, cfg.Height
	opts.ShowFPS = cfg.ShowFPS
	if cfg.Catalog != "" {
		opts.Title = "gridpick - " + filepath.Base(cfg.Catalog)
	}

	host := ebitenhost.New(grid, opts)
	host.SetUpdateFunc(func() error {
		events.ProcessAllEvents(world)
		select {
		case r := <-reloads:
			p.applyReload(r)
		default:
		}
		return nil
	})
	return host.Run()
}

func assetDir(cfg config) string {
	switch {
	case cfg.Assets != "":
		return cfg.Assets
	case cfg.Catalog != "":
		return filepath.Dir(cfg.Catalog)
	}
	return "."
}

// picker reacts to grid intents on the update loop.
type picker struct {
	grid   *pickergrid.GridView
	groups []pickergrid.ItemGroup
}

func (p *picker) onIntent(_ donburi.World, in pickergrid.Intent) {
	switch in.Kind {
	case pickergrid.IntentItemActivated:
		log.Printf("picked %s (%s)", in.Key, in.Trigger)
	case pickergrid.IntentGroupExpandRequested:
		log.Printf("expanded %s", in.GroupID)
	case pickergrid.IntentGroupCleared:
		p.removeGroup(in.GroupID)
	}
}

func (p *picker) onTopGroup(_ donburi.World, e ecs.TopGroupEvent) {
	if e.GroupID != "" {
		log.Printf("top group %s", e.GroupID)
	}
}

func (p *picker) removeGroup(id pickergrid.GroupID) {
	next := make([]pickergrid.ItemGroup, 0, len(p.groups))
	for _, g := range p.groups {
		if g.ID != id {
			next = append(next, g)
		}
	}
	if len(next) == len(p.groups) {
		return
	}
	log.Printf("cleared %s", id)
	p.groups = next
	p.grid.SetGroups(next, pickergrid.GroupRemovedHint(id, false))
}

func (p *picker) applyReload(r catalog.Reload) {
	if r.Err != nil {
		log.Printf("catalog reload: %v", r.Err)
		return
	}
	// Diff against what is shown, which may differ from the file after a
	// clear.
	hint := catalog.Hint(p.groups, r.Groups)
	p.groups = r.Groups
	p.grid.SetGroups(r.Groups, hint)
}
