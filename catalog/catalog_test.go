package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/pickergrid"
)

const sampleYAML = `
mode: detailed
groups:
  - id: recent
    title: Recently Used
    clear: true
    collapsed_lines: 2
    items:
      - id: grin
        source: ":D"
      - id: wink
  - id: cats
    supergroup: animals
    title: Cats
    featured: true
    placeholders: true
    metrics:
      cell_size: 96
      min_spacing: 8
      min_items_per_row: 3
    items:
      - id: cat1
        kind: media
        source: stickers/cat1.png
        aspect: 1.5
        subgroup: sleepy
        tint: accent
        icon: premium
`

func TestParseItemGroups(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	if mode, err := f.LayoutMode(); err != nil || mode != pickergrid.LayoutDetailed {
		t.Errorf("LayoutMode = %v, %v, want detailed", mode, err)
	}
	groups, err := f.ItemGroups()
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	recent := groups[0]
	if recent.ID != "recent" || recent.Title != "Recently Used" || !recent.HasClear {
		t.Errorf("recent = %+v", recent)
	}
	if recent.CollapsedLineCount == nil || *recent.CollapsedLineCount != 2 {
		t.Errorf("CollapsedLineCount = %v, want 2", recent.CollapsedLineCount)
	}
	if recent.Supergroup() != "recent" {
		t.Errorf("Supergroup = %q, want the group's own id", recent.Supergroup())
	}
	wink := recent.Items[1]
	if wink.Content.Source != "wink" || wink.Content.Kind != pickergrid.ContentStaticGlyph {
		t.Errorf("wink = %+v, want glyph sourced from its id", wink)
	}

	cats := groups[1]
	if cats.Supergroup() != "animals" || !cats.IsFeatured || !cats.FillWithLoadingPlaceholders {
		t.Errorf("cats = %+v", cats)
	}
	if cats.LayoutOverride == nil || cats.LayoutOverride.NativeCellSize != 96 || cats.LayoutOverride.MinItemsPerRow != 3 {
		t.Errorf("LayoutOverride = %+v", cats.LayoutOverride)
	}
	cat := cats.Items[0]
	want := pickergrid.Item{
		ContentID: "cat1",
		Content:   pickergrid.ContentDescriptor{Kind: pickergrid.ContentMedia, Source: "stickers/cat1.png", AspectRatio: 1.5},
		Subgroup:  "sleepy",
		Icon:      pickergrid.IconPremium,
		Tint:      pickergrid.TintAccent,
	}
	if !cat.Equal(want) {
		t.Errorf("cat1 = %+v, want %+v", cat, want)
	}
}

func TestItemGroupsValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"group without id", "groups:\n  - title: x\n"},
		{"duplicate group", "groups:\n  - id: a\n  - id: a\n"},
		{"item without id", "groups:\n  - id: a\n    items:\n      - source: x\n"},
		{"duplicate item", "groups:\n  - id: a\n    items:\n      - id: x\n      - id: x\n"},
		{"unknown kind", "groups:\n  - id: a\n    items:\n      - id: x\n        kind: hologram\n"},
		{"unknown tint", "groups:\n  - id: a\n    items:\n      - id: x\n        tint: plaid\n"},
		{"unknown icon", "groups:\n  - id: a\n    items:\n      - id: x\n        icon: crown\n"},
		{"unknown mode", "mode: huge\ngroups:\n  - id: a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if _, err := f.ItemGroups(); !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("groups: [")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	groups, err := LoadGroups(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Errorf("got %d groups", len(groups))
	}

	if _, err := LoadGroups(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}
}
