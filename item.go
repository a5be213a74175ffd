package pickergrid

import "strconv"

// GroupID is the storage identity of a group.
type GroupID string

// ContentID is the content-addressed identity of an item within a group.
type ContentID string

// KeyKind distinguishes real items from the pseudo-cells the layout
// synthesizes.
type KeyKind uint8

const (
	KeyItem          KeyKind = iota // a real Item, keyed by content
	KeyCollapseLabel                // the "+N" cell of a collapsed group
	KeyPlaceholder                  // a loading placeholder cell, keyed by index
)

// ItemKey is the identity of a realized cell. Every comparison the core makes
// between cells goes through this key; node pointers are never compared.
type ItemKey struct {
	Kind      KeyKind
	GroupID   GroupID
	ContentID ContentID
	Index     int // only meaningful for KeyPlaceholder
}

// ItemKeyFor returns the key of a real item.
func ItemKeyFor(group GroupID, content ContentID) ItemKey {
	return ItemKey{Kind: KeyItem, GroupID: group, ContentID: content}
}

// CollapseLabelKey returns the key of a group's "+N" cell.
func CollapseLabelKey(group GroupID) ItemKey {
	return ItemKey{Kind: KeyCollapseLabel, GroupID: group}
}

// PlaceholderKey returns the key of the index-th loading placeholder cell.
func PlaceholderKey(group GroupID, index int) ItemKey {
	return ItemKey{Kind: KeyPlaceholder, GroupID: group, Index: index}
}

// String implements fmt.Stringer.
func (k ItemKey) String() string {
	switch k.Kind {
	case KeyCollapseLabel:
		return string(k.GroupID) + "/+"
	case KeyPlaceholder:
		return string(k.GroupID) + "/#" + strconv.Itoa(k.Index)
	default:
		return string(k.GroupID) + "/" + string(k.ContentID)
	}
}

// ContentDescriptor tells the content loader what to fetch.
type ContentDescriptor struct {
	Kind ContentKind
	// Source is an opaque locator understood by the loader (file id, URL,
	// glyph string).
	Source string
	// AspectRatio is width / height of the intrinsic content. Zero means 1.
	AspectRatio float64
	// Thumbnail is an optional low-resolution preview used for the
	// placeholder silhouette.
	Thumbnail []byte
}

// Equal reports whether two descriptors describe the same content.
func (d ContentDescriptor) Equal(other ContentDescriptor) bool {
	if d.Kind != other.Kind || d.Source != other.Source || d.AspectRatio != other.AspectRatio {
		return false
	}
	if len(d.Thumbnail) != len(other.Thumbnail) {
		return false
	}
	for i := range d.Thumbnail {
		if d.Thumbnail[i] != other.Thumbnail[i] {
			return false
		}
	}
	return true
}

// Item is one cell of content. Items are immutable values supplied by the
// caller on every update.
type Item struct {
	ContentID ContentID
	Content   ContentDescriptor
	Subgroup  string // optional subgroup tag, "" when absent
	Icon      IconState
	Tint      TintMode
}

// Equal reports identity plus descriptor equality.
func (it Item) Equal(other Item) bool {
	return it.ContentID == other.ContentID && it.Content.Equal(other.Content) &&
		it.Subgroup == other.Subgroup && it.Icon == other.Icon && it.Tint == other.Tint
}

// ItemGroup is an ordered, titled collection of items.
type ItemGroup struct {
	ID           GroupID
	SupergroupID GroupID // scroll-to-group target identity; defaults to ID
	Title        string
	Subtitle     string
	Badge        string
	Items        []Item

	IsFeatured                  bool
	IsPremiumLocked             bool
	IsEmbedded                  bool
	HasClear                    bool
	HasEdit                     bool
	FillWithLoadingPlaceholders bool

	// CollapsedLineCount limits the rows shown while the group is not
	// expanded. Nil never collapses.
	CollapsedLineCount *int

	// LayoutOverride replaces the grid metrics for this group only.
	LayoutOverride *GridMetrics
}

// Supergroup returns the scroll target identity of the group.
func (g *ItemGroup) Supergroup() GroupID {
	if g.SupergroupID == "" {
		return g.ID
	}
	return g.SupergroupID
}

// hasHeader reports whether the group draws a title row.
func (g *ItemGroup) hasHeader() bool {
	return g.Title != "" || g.HasClear || g.HasEdit
}

// Lines is a convenience for building CollapsedLineCount values.
func Lines(n int) *int {
	return &n
}
