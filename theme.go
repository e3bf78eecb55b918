package goban

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB converts a 0xRRGGBB value to an opaque Color.
func RGB(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// hsl converts hue (degrees), saturation, and lightness to a Color with the
// given alpha.
func hsl(h, s, l, a float64) Color {
	c := colorful.Hsl(h, s, l)
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// Theme is the complete set of resolved visual parameters for a board.
// Themes are immutable values: the WithX builders return modified copies and
// a theme change replaces the whole value, never mutates it in place.
type Theme struct {
	// Board surface
	Background  Color
	Border      Color
	BorderWidth float64

	// Grid
	GridLines  Color
	GridWidth  float64
	StarPoints Color
	StarSize   float64

	// Stones
	BlackStone Color
	WhiteStone Color
	StoneSize  float64 // ratio of vertex size
	StoneShadow bool

	// Hand-placed look
	FuzzyPlacement bool
	FuzzyMaxOffset float64 // fraction of vertex size
	StoneVariation bool    // pick among texture variants per position

	// Coordinates
	Coordinates Color
	CoordSize   float64

	// Ghost stones
	GhostGood        Color
	GhostInteresting Color
	GhostDoubtful    Color
	GhostBad         Color
	GhostBaseAlpha   float64
	GhostFaintAlpha  float64
	GhostSizeReduction float64 // how much smaller than stones, 0..1

	// Markers
	MarkerColor Color
	MarkerSize  float64 // ratio of vertex size

	// Lines
	LineColor     Color
	LineWidth     float64
	ArrowHeadSize float64

	// Selections
	SelectionColor Color
	SelectionWidth float64
	LastMoveColor  Color

	// Territory paint
	PaintBlackTerritory Color
	PaintWhiteTerritory Color

	// Optional texture names resolved through the AssetSource. Empty names
	// and missing assets fall back to the solid colors above.
	BoardTexture string
	BlackStoneTexture string
	WhiteStoneTexture string
}

// ThemeDefault is the traditional wood board.
func ThemeDefault() Theme {
	return Theme{
		Background:  RGB(0xebb55b),
		Border:      RGB(0xca933a),
		BorderWidth: 2,

		GridLines:  RGB(0x000000),
		GridWidth:  1,
		StarPoints: RGB(0x000000),
		StarSize:   6,

		BlackStone:  RGB(0x000000),
		WhiteStone:  RGB(0xffffff),
		StoneSize:   0.85,
		StoneShadow: true,

		FuzzyMaxOffset: 0.05,

		Coordinates: RGB(0x000000),
		CoordSize:   16,

		GhostGood:          hsl(120, 0.8, 0.5, 1),
		GhostInteresting:   hsl(240, 0.8, 0.6, 1),
		GhostDoubtful:      hsl(60, 0.8, 0.5, 1),
		GhostBad:           hsl(0, 0.8, 0.5, 1),
		GhostBaseAlpha:     0.6,
		GhostFaintAlpha:    0.3,
		GhostSizeReduction: 0.15,

		MarkerColor: RGB(0xff0000),
		MarkerSize:  0.4,

		LineColor:     RGB(0x2c2c2c),
		LineWidth:     2,
		ArrowHeadSize: 8,

		SelectionColor: RGB(0x0066cc),
		SelectionWidth: 2,
		LastMoveColor:  RGB(0x0066cc),

		PaintBlackTerritory: RGB(0x1f3a93),
		PaintWhiteTerritory: RGB(0xe5e5e5),
	}
}

// ThemeDark is a night-mode variant.
func ThemeDark() Theme {
	t := ThemeDefault()
	t.Background = RGB(0x2d2d2d)
	t.Border = RGB(0x404040)
	t.GridLines = RGB(0x808080)
	t.Coordinates = RGB(0xcccccc)
	return t
}

// ThemeMinimal has thin light lines and no stone shadows.
func ThemeMinimal() Theme {
	t := ThemeDefault()
	t.Background = RGB(0xf8f8f8)
	t.Border = RGB(0xe0e0e0)
	t.BorderWidth = 1
	t.GridLines = RGB(0x666666)
	t.GridWidth = 0.5
	t.StarPoints = RGB(0x666666)
	t.StarSize = 4
	t.Coordinates = RGB(0x666666)
	t.CoordSize = 10
	t.StoneShadow = false
	return t
}

// ThemeHighContrast is an accessibility variant with bold black-on-white
// lines.
func ThemeHighContrast() Theme {
	t := ThemeDefault()
	t.Background = RGB(0xffffff)
	t.Border = RGB(0x000000)
	t.BorderWidth = 3
	t.GridLines = RGB(0x000000)
	t.GridWidth = 2
	t.Coordinates = RGB(0x000000)
	t.CoordSize = 14
	return t
}

// WithBackground returns a copy of the theme with the board background color
// replaced.
func (t Theme) WithBackground(c Color) Theme {
	t.Background = c
	return t
}

// WithGridLines returns a copy of the theme with grid line color and width
// replaced.
func (t Theme) WithGridLines(c Color, width float64) Theme {
	t.GridLines = c
	t.GridWidth = width
	return t
}

// WithStoneColors returns a copy of the theme with stone colors replaced.
func (t Theme) WithStoneColors(black, white Color) Theme {
	t.BlackStone = black
	t.WhiteStone = white
	return t
}

// WithFuzzyPlacement returns a copy of the theme with fuzzy stone placement
// configured. maxOffset is a fraction of the vertex size.
func (t Theme) WithFuzzyPlacement(enabled bool, maxOffset float64) Theme {
	t.FuzzyPlacement = enabled
	t.FuzzyMaxOffset = maxOffset
	return t
}

// WithBoardTexture returns a copy of the theme with the board texture name
// replaced.
func (t Theme) WithBoardTexture(name string) Theme {
	t.BoardTexture = name
	return t
}

// StoneColorOf resolves the fill color for a stone color.
func (t Theme) StoneColorOf(c StoneColor) Color {
	if c == StoneBlack {
		return t.BlackStone
	}
	return t.WhiteStone
}

// GhostColorOf resolves the tint for a ghost stone category.
func (t Theme) GhostColorOf(kind GhostKind) Color {
	switch kind {
	case GhostGood:
		return t.GhostGood
	case GhostInteresting:
		return t.GhostInteresting
	case GhostDoubtful:
		return t.GhostDoubtful
	default:
		return t.GhostBad
	}
}

// GhostAlpha resolves the alpha multiplier for a ghost stone.
func (t Theme) GhostAlpha(faint bool) float64 {
	if faint {
		return t.GhostFaintAlpha
	}
	return t.GhostBaseAlpha
}

// HeatColor maps a heat strength (0..9) onto the fixed cool-to-hot ramp:
// blue through cyan and yellow to red, with alpha growing from 0.3 to 0.8.
// Strength 0 is fully transparent.
func HeatColor(strength int) Color {
	s := clampInt(strength, 0, 9)
	if s == 0 {
		return ColorTransparent
	}
	intensity := float64(s) / 9
	alpha := 0.3 + intensity*0.5
	if alpha > 0.8 {
		alpha = 0.8
	}
	switch {
	case intensity <= 0.33:
		local := intensity / 0.33
		return hsl(240-local*60, 0.8, 0.6, alpha) // blue -> cyan
	case intensity <= 0.66:
		local := (intensity - 0.33) / 0.33
		return hsl(180-local*120, 0.8, 0.6, alpha) // cyan -> yellow
	default:
		local := (intensity - 0.66) / 0.34
		return hsl(60-local*60, 0.9, 0.5, alpha) // yellow -> red
	}
}

// HeatTextColor picks a label color that contrasts with HeatColor(strength).
func HeatTextColor(strength int) Color {
	if float64(strength)/9 > 0.5 {
		return ColorWhite.WithAlpha(0.9)
	}
	return ColorBlack.WithAlpha(0.8)
}

// PaintColor maps a paint intensity in [-1, 1] to a fill color. Positive
// intensities shade toward black territory, negative toward white; the alpha
// scales with |intensity| so paint stays a subtle overlay.
func (t Theme) PaintColor(intensity float64) Color {
	v := clampFloat(intensity, -1, 1)
	switch {
	case v > 0:
		return t.PaintBlackTerritory.WithAlpha(v * 0.4)
	case v < 0:
		return t.PaintWhiteTerritory.WithAlpha(-v * 0.4)
	default:
		return ColorTransparent
	}
}
