package goban

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// FaceSource supplies the font for coordinate labels, heat labels, and
	// text markers. Nil disables text rendering.
	FaceSource *text.GoTextFaceSource

	// ClearColor fills the window outside the board. Zero value is black.
	ClearColor Color

	// ScreenshotDir receives PNGs queued via Board.Screenshot. Empty means
	// "screenshots".
	ScreenshotDir string
}

// boardGame adapts a Board to the ebiten game loop. The board renders
// incrementally into a retained offscreen buffer which is blitted to the
// screen every frame, since ebiten clears the screen between frames.
type boardGame struct {
	board  *Board
	poller InputPoller
	buffer *ebiten.Image
	canvas *EbitenCanvas
	config RunConfig
}

func (g *boardGame) Update() error {
	g.poller.Poll(g.board)
	g.board.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *boardGame) Draw(screen *ebiten.Image) {
	w, h := BoardPixelSize(g.board.State(), g.board.Theme())
	bw, bh := int(w)+1, int(h)+1
	if g.buffer == nil || g.buffer.Bounds().Dx() != bw || g.buffer.Bounds().Dy() != bh {
		g.buffer = ebiten.NewImage(bw, bh)
		g.canvas = &EbitenCanvas{Target: g.buffer, FaceSource: g.config.FaceSource, AntiAlias: true}
		g.board.Invalidate()
	}
	g.board.RenderInto(g.canvas)

	screen.Fill(g.config.ClearColor.nrgba())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(g.poller.Offset.X, g.poller.Offset.Y)
	screen.DrawImage(g.buffer, op)
	if g.config.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	flushScreenshots(g.buffer, g.config.ScreenshotDir, g.board.drainScreenshots())
}

func (g *boardGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and drives the board's update/render loop until the
// window closes. It fits the board to the window once at startup; call
// Board.Resize from your own game loop if you need live resizing.
func Run(board *Board, config RunConfig) error {
	if config.Width <= 0 {
		config.Width = 640
	}
	if config.Height <= 0 {
		config.Height = 480
	}
	if config.ScreenshotDir == "" {
		config.ScreenshotDir = "screenshots"
	}
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowSize(config.Width, config.Height)
	if _, err := board.Resize(float64(config.Width), float64(config.Height)); err != nil {
		return fmt.Errorf("goban: fit board to window: %w", err)
	}
	if err := ebiten.RunGame(&boardGame{board: board, config: config}); err != nil {
		return fmt.Errorf("goban: run: %w", err)
	}
	return nil
}
