// Package goban is a retained-mode Go board widget for [Ebitengine].
//
// Goban provides the sparse visual state, incremental diff rendering, grid
// geometry, theming, and input routing that an interactive board display
// needs: stones, markers, ghost stones, heat maps, territory paint,
// selections, connection lines, and coordinate labels.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	board := goban.NewBoard(nil) // standard 19x19
//	board.PlaceStone(goban.Pos(3, 3), goban.StoneBlack)
//	board.OnClick(func(ev goban.BoardEvent) {
//		board.PlaceStone(ev.Pos, goban.StoneBlack)
//	})
//	goban.Run(board, goban.RunConfig{
//		Title: "My Board", Width: 640, Height: 640,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Board.Update] and [Board.RenderInto] directly with an [EbitenCanvas]
// (or any other [Canvas] implementation).
//
// # State and diffing
//
// All visual state lives in a [BoardState]: one sparse layer per annotation
// kind plus the grid geometry. Mutate it freely between frames; [Board]
// snapshots the state each render and [Diff] computes the minimal set of
// cells to repaint, so the cost of a frame follows the size of the edit, not
// the size of the board.
//
//	st := board.State()
//	st.SetMarker(goban.Pos(16, 3), goban.NewMarker(goban.MarkerTriangle))
//	st.SetHeat(goban.Pos(9, 9), goban.NewHeat(7))
//
// # Key features
//
// Goban includes four theme presets with builder-style overrides, fuzzy
// hand-placed stone rendering, stone grow-in animation (via [gween]),
// keyboard focus navigation, touch input, busy-state input suppression,
// scripted input injection for tests, and ECS integration (via [Donburi]
// adapter in goban/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package goban
