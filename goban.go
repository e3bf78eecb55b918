package goban

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication, if required, happens in the Canvas implementation.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is plain opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is plain opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// ColorTransparent draws nothing.
var ColorTransparent = Color{}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Vec2 is a 2D vector used for points, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Position is a grid coordinate: column and row, both 0-indexed.
// (0, 0) is the upper-left point of the board. Position is a value type and
// can be used directly as a map key.
type Position struct {
	Col, Row int
}

// Pos is shorthand for Position{col, row}.
func Pos(col, row int) Position {
	return Position{Col: col, Row: row}
}

// GridRange is the visible sub-rectangle of the board, inclusive on all
// sides (MinCol..MaxCol, MinRow..MaxRow).
type GridRange struct {
	MinCol, MaxCol int
	MinRow, MaxRow int
}

// FullRange returns the range covering an entire cols x rows board.
func FullRange(cols, rows int) GridRange {
	return GridRange{MinCol: 0, MaxCol: cols - 1, MinRow: 0, MaxRow: rows - 1}
}

// Cols returns the number of visible columns.
func (g GridRange) Cols() int {
	return g.MaxCol - g.MinCol + 1
}

// Rows returns the number of visible rows.
func (g GridRange) Rows() int {
	return g.MaxRow - g.MinRow + 1
}

// Contains reports whether the position lies inside the range.
func (g GridRange) Contains(p Position) bool {
	return p.Col >= g.MinCol && p.Col <= g.MaxCol &&
		p.Row >= g.MinRow && p.Row <= g.MaxRow
}

// StoneColor identifies the two stone colors. The zero value is not a valid
// stone; an empty point is represented by absence from the stone layer.
type StoneColor uint8

const (
	StoneBlack StoneColor = iota + 1
	StoneWhite
)

// Opponent returns the other color.
func (c StoneColor) Opponent() StoneColor {
	if c == StoneBlack {
		return StoneWhite
	}
	return StoneBlack
}

func (c StoneColor) String() string {
	switch c {
	case StoneBlack:
		return "black"
	case StoneWhite:
		return "white"
	}
	return "invalid"
}

// MouseButton identifies a mouse button. Touch input reports MouseButtonLeft.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// NavKey is a normalized keyboard navigation key.
type NavKey uint8

const (
	NavNone   NavKey = iota
	NavUp            // move focus up one row
	NavDown          // move focus down one row
	NavLeft          // move focus left one column
	NavRight         // move focus right one column
	NavSelect        // activate the focused position (click-equivalent)
)

// PositionSet is a set of grid positions, used by diffs and the compositor.
type PositionSet map[Position]struct{}

// NewPositionSet creates a set containing the given positions.
func NewPositionSet(positions ...Position) PositionSet {
	s := make(PositionSet, len(positions))
	for _, p := range positions {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts a position into the set.
func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

// Has reports whether the set contains the position.
func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

// AddAll inserts every position from other.
func (s PositionSet) AddAll(other PositionSet) {
	for p := range other {
		s[p] = struct{}{}
	}
}
