// Package catalog loads picker groups from YAML files and watches them for
// changes.
//
// A catalog file lists groups in display order:
//
//	groups:
//	  - id: recent
//	    title: Recently Used
//	    clear: true
//	    collapsed_lines: 2
//	    items:
//	      - id: grin
//	        source: ":D"
//	  - id: cats
//	    supergroup: animals
//	    title: Cats
//	    items:
//	      - id: cat1
//	        kind: media
//	        source: stickers/cat1.png
//	        subgroup: sleepy
//	        tint: accent
package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/pickergrid"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid catalog")

// File is the decoded form of a catalog file.
type File struct {
	Mode   string  `yaml:"mode,omitempty"`
	Groups []Group `yaml:"groups"`
}

// Group is one group entry.
type Group struct {
	ID             string  `yaml:"id"`
	Supergroup     string  `yaml:"supergroup,omitempty"`
	Title          string  `yaml:"title,omitempty"`
	Subtitle       string  `yaml:"subtitle,omitempty"`
	Badge          string  `yaml:"badge,omitempty"`
	Featured       bool    `yaml:"featured,omitempty"`
	Premium        bool    `yaml:"premium,omitempty"`
	Embedded       bool    `yaml:"embedded,omitempty"`
	Clear          bool    `yaml:"clear,omitempty"`
	Edit           bool    `yaml:"edit,omitempty"`
	Placeholders   bool    `yaml:"placeholders,omitempty"`
	CollapsedLines *int    `yaml:"collapsed_lines,omitempty"`
	Metrics        *Metric `yaml:"metrics,omitempty"`
	Items          []Item  `yaml:"items"`
}

// Metric overrides the grid metrics of one group.
type Metric struct {
	CellSize        float64 `yaml:"cell_size"`
	MinSpacing      float64 `yaml:"min_spacing"`
	MinItemsPerRow  int     `yaml:"min_items_per_row"`
	VerticalSpacing float64 `yaml:"vertical_spacing,omitempty"`
	SideInset       float64 `yaml:"side_inset,omitempty"`
}

// Item is one item entry. Thumbnail takes a !!binary (base64) scalar.
type Item struct {
	ID        string  `yaml:"id"`
	Kind      string  `yaml:"kind,omitempty"`
	Source    string  `yaml:"source"`
	Aspect    float64 `yaml:"aspect,omitempty"`
	Thumbnail []byte  `yaml:"thumbnail,omitempty"`
	Subgroup  string  `yaml:"subgroup,omitempty"`
	Tint      string  `yaml:"tint,omitempty"`
	Icon      string  `yaml:"icon,omitempty"`
}

// Parse decodes a catalog from YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &f, nil
}

// Load reads and decodes the catalog at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadGroups loads path and converts it to item groups.
func LoadGroups(path string) ([]pickergrid.ItemGroup, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	groups, err := f.ItemGroups()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}

// LayoutMode returns the file's layout mode, compact when unset.
func (f *File) LayoutMode() (pickergrid.LayoutMode, error) {
	m, err := pickergrid.ParseLayoutMode(f.Mode)
	if err != nil {
		return m, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return m, nil
}

// ItemGroups validates the file and converts it to item groups. Group ids
// must be unique, item ids unique within their group.
func (f *File) ItemGroups() ([]pickergrid.ItemGroup, error) {
	if _, err := f.LayoutMode(); err != nil {
		return nil, err
	}
	groups := make([]pickergrid.ItemGroup, 0, len(f.Groups))
	seen := make(map[string]bool, len(f.Groups))
	for gi, g := range f.Groups {
		if g.ID == "" {
			return nil, fmt.Errorf("%w: group %d has no id", ErrInvalid, gi)
		}
		if seen[g.ID] {
			return nil, fmt.Errorf("%w: duplicate group id %q", ErrInvalid, g.ID)
		}
		seen[g.ID] = true

		ig := pickergrid.ItemGroup{
			ID:                          pickergrid.GroupID(g.ID),
			SupergroupID:                pickergrid.GroupID(g.Supergroup),
			Title:                       g.Title,
			Subtitle:                    g.Subtitle,
			Badge:                       g.Badge,
			IsFeatured:                  g.Featured,
			IsPremiumLocked:             g.Premium,
			IsEmbedded:                  g.Embedded,
			HasClear:                    g.Clear,
			HasEdit:                     g.Edit,
			FillWithLoadingPlaceholders: g.Placeholders,
			CollapsedLineCount:          g.CollapsedLines,
			Items:                       make([]pickergrid.Item, 0, len(g.Items)),
		}
		if m := g.Metrics; m != nil {
			ig.LayoutOverride = &pickergrid.GridMetrics{
				NativeCellSize:  m.CellSize,
				MinSpacing:      m.MinSpacing,
				MinItemsPerRow:  m.MinItemsPerRow,
				VerticalSpacing: m.VerticalSpacing,
				SideInset:       m.SideInset,
			}
		}

		ids := make(map[string]bool, len(g.Items))
		for ii, it := range g.Items {
			item, err := it.item()
			if err != nil {
				return nil, fmt.Errorf("group %q item %d: %w", g.ID, ii, err)
			}
			if ids[it.ID] {
				return nil, fmt.Errorf("%w: group %q has duplicate item id %q", ErrInvalid, g.ID, it.ID)
			}
			ids[it.ID] = true
			ig.Items = append(ig.Items, item)
		}
		groups = append(groups, ig)
	}
	return groups, nil
}

func (it Item) item() (pickergrid.Item, error) {
	if it.ID == "" {
		return pickergrid.Item{}, fmt.Errorf("%w: missing id", ErrInvalid)
	}
	kind, err := parseKind(it.Kind)
	if err != nil {
		return pickergrid.Item{}, err
	}
	tint, err := parseTint(it.Tint)
	if err != nil {
		return pickergrid.Item{}, err
	}
	icon, err := parseIcon(it.Icon)
	if err != nil {
		return pickergrid.Item{}, err
	}
	source := it.Source
	if source == "" {
		source = it.ID
	}
	return pickergrid.Item{
		ContentID: pickergrid.ContentID(it.ID),
		Content: pickergrid.ContentDescriptor{
			Kind:        kind,
			Source:      source,
			AspectRatio: it.Aspect,
			Thumbnail:   it.Thumbnail,
		},
		Subgroup: it.Subgroup,
		Icon:     icon,
		Tint:     tint,
	}, nil
}

func parseKind(s string) (pickergrid.ContentKind, error) {
	switch s {
	case "", "glyph":
		return pickergrid.ContentStaticGlyph, nil
	case "media":
		return pickergrid.ContentMedia, nil
	case "icon":
		return pickergrid.ContentIcon, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalid, s)
}

func parseTint(s string) (pickergrid.TintMode, error) {
	switch s {
	case "", "none":
		return pickergrid.TintNone, nil
	case "accent":
		return pickergrid.TintAccent, nil
	case "primary":
		return pickergrid.TintPrimary, nil
	case "mono", "monochrome":
		return pickergrid.TintMonochrome, nil
	}
	return 0, fmt.Errorf("%w: unknown tint %q", ErrInvalid, s)
}

func parseIcon(s string) (pickergrid.IconState, error) {
	switch s {
	case "", "none":
		return pickergrid.IconNone, nil
	case "locked":
		return pickergrid.IconLocked, nil
	case "premium":
		return pickergrid.IconPremium, nil
	}
	return 0, fmt.Errorf("%w: unknown icon %q", ErrInvalid, s)
}
