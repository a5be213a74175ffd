package ebitenhost

import (
	"context"
	"fmt"
	_ "image/png" // register the PNG decoder for NewImageFromReader
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/pickergrid"
)

// NewFSFetcher returns a FetchFunc that decodes ContentDescriptor.Source from
// fsys into an *ebiten.Image. Static glyphs are not files: their Source is
// returned as a string payload and drawn as text.
func NewFSFetcher(fsys fs.FS) pickergrid.FetchFunc {
	return func(ctx context.Context, desc pickergrid.ContentDescriptor, pixelSize int) (pickergrid.Content, error) {
		if err := ctx.Err(); err != nil {
			return pickergrid.Content{}, err
		}
		if desc.Kind == pickergrid.ContentStaticGlyph {
			return pickergrid.Content{Payload: desc.Source, Width: pixelSize, Height: pixelSize}, nil
		}

		f, err := fsys.Open(desc.Source)
		if err != nil {
			return pickergrid.Content{}, fmt.Errorf("open content %q: %w", desc.Source, err)
		}
		defer f.Close()

		img, _, err := ebitenutil.NewImageFromReader(f)
		if err != nil {
			return pickergrid.Content{}, fmt.Errorf("decode content %q: %w", desc.Source, err)
		}
		if err := ctx.Err(); err != nil {
			img.Deallocate()
			return pickergrid.Content{}, err
		}
		b := img.Bounds()
		return pickergrid.Content{Payload: img, Width: b.Dx(), Height: b.Dy()}, nil
	}
}
