package pickergrid

// GridMetrics are the inputs of the column/cell-size formula.
type GridMetrics struct {
	// NativeCellSize is the preferred cell edge. Cells shrink below it when
	// the row would overflow, never grow above it.
	NativeCellSize float64
	// MinSpacing is the gap floor used to decide the column count.
	MinSpacing float64
	// MinItemsPerRow is the lowest column count allowed.
	MinItemsPerRow int
	// VerticalSpacing is the gap between rows. Zero reuses the derived
	// horizontal spacing.
	VerticalSpacing float64
	// SideInset is extra padding applied inside the host insets on both sides.
	SideInset float64
}

// Metrics is the full metrics set for one layout mode.
type Metrics struct {
	Grid GridMetrics

	HeaderHeight         float64 // title row above a group's grid
	EmbeddedHeight       float64 // fixed height of an embedded (strip) group
	GroupSpacing         float64 // gap after a regular group
	FeaturedGroupSpacing float64 // gap after a featured group
}

// MetricsProvider supplies metrics per layout mode. The core treats the
// values as opaque numbers.
type MetricsProvider interface {
	Metrics(mode LayoutMode) Metrics
}

// Theme is a static MetricsProvider.
type Theme struct {
	Compact  Metrics
	Detailed Metrics
}

// Metrics implements MetricsProvider.
func (t Theme) Metrics(mode LayoutMode) Metrics {
	if mode == LayoutDetailed {
		return t.Detailed
	}
	return t.Compact
}

// DefaultTheme returns the stock emoji/sticker metrics.
func DefaultTheme() Theme {
	return Theme{
		Compact: Metrics{
			Grid: GridMetrics{
				NativeCellSize: 40,
				MinSpacing:     8,
				MinItemsPerRow: 8,
				SideInset:      12,
			},
			HeaderHeight:         26,
			EmbeddedHeight:       76,
			GroupSpacing:         8,
			FeaturedGroupSpacing: 16,
		},
		Detailed: Metrics{
			Grid: GridMetrics{
				NativeCellSize: 72,
				MinSpacing:     8,
				MinItemsPerRow: 4,
				SideInset:      12,
			},
			HeaderHeight:         30,
			EmbeddedHeight:       96,
			GroupSpacing:         12,
			FeaturedGroupSpacing: 24,
		},
	}
}
