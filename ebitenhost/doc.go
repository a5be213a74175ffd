// Package ebitenhost runs a pickergrid.GridView inside an ebiten game.
//
// The host owns no grid state of its own. Each frame it turns ebiten input
// into grid calls (wheel and drag scrolling, tap and long-press activation,
// header clear buttons), steps the grid, and draws the realized nodes,
// placeholders and collapse labels straight from the node fields:
//
//	grid := pickergrid.NewGridView(cfg)
//	grid.SetGroups(groups, pickergrid.ContentAnimationHint{})
//	if err := ebitenhost.New(grid, ebitenhost.DefaultOptions()).Run(); err != nil {
//		log.Fatal(err)
//	}
//
// NewFSFetcher builds a pickergrid.FetchFunc that decodes images from an
// fs.FS into *ebiten.Image payloads for use with pickergrid.NewAsyncLoader.
package ebitenhost
