package goban

import (
	"math"
	"strconv"
)

// Geometry: pure Position <-> pixel mappings. None of these functions hold
// state; re-evaluating them for an unchanged position is bit-for-bit stable,
// which is what lets the compositor skip unchanged cells.

// CellRect returns the pixel rectangle of a cell. The rectangle's origin is
// originOffset plus the cell's column/row scaled by vertexSize; the visible
// range is applied by the caller through originOffset.
func CellRect(p Position, vertexSize float64, originOffset Vec2) Rect {
	return Rect{
		X:      originOffset.X + float64(p.Col)*vertexSize,
		Y:      originOffset.Y + float64(p.Row)*vertexSize,
		Width:  vertexSize,
		Height: vertexSize,
	}
}

// VertexCenter returns the pixel center of a cell, the point where the grid
// lines cross and stones are centered.
func VertexCenter(p Position, vertexSize float64, originOffset Vec2) Vec2 {
	return CellRect(p, vertexSize, originOffset).Center()
}

// PixelToPosition inverts CellRect: it maps a pixel point back to the grid
// position whose cell contains it. Returns false when the point falls outside
// the visible range or outside the board entirely.
func PixelToPosition(point Vec2, vertexSize float64, visible GridRange, originOffset Vec2) (Position, bool) {
	if vertexSize <= 0 {
		return Position{}, false
	}
	p := Position{
		Col: int(math.Floor((point.X - originOffset.X) / vertexSize)),
		Row: int(math.Floor((point.Y - originOffset.Y) / vertexSize)),
	}
	if !visible.Contains(p) {
		return Position{}, false
	}
	return p, true
}

// positionHash mixes a position and a per-board seed into 64 bits (FNV-1a).
// Purely positional: no RNG stream, no instance counter, so every re-render
// of an unchanged position derives the same value.
func positionHash(p Position, seed uint64) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	mix := func(v uint64) {
		for i := 0; i < 8; i++ {
			h ^= (v >> (8 * i)) & 0xff
			h *= prime64
		}
	}
	mix(seed)
	mix(uint64(int64(p.Col)))
	mix(uint64(int64(p.Row)))
	return h
}

// FuzzyOffset returns the deterministic hand-placed-look pixel offset for a
// stone. The offset magnitude never exceeds maxJitterFraction * vertexSize.
func FuzzyOffset(p Position, seed uint64, maxJitterFraction, vertexSize float64) Vec2 {
	if maxJitterFraction <= 0 || vertexSize <= 0 {
		return Vec2{}
	}
	h := positionHash(p, seed)
	// Split the hash into an angle and a radius.
	angle := float64(h&0xffffffff) / float64(1<<32) * 2 * math.Pi
	radius := float64(h>>32) / float64(1<<32) * maxJitterFraction * vertexSize
	return Vec2{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
}

// variationClassCount is the number of stone texture variants.
const variationClassCount = 5

// VariationClass returns a deterministic bucket 0..4 for a position, used to
// pick among texture variants for visual diversity.
func VariationClass(p Position, seed uint64) int {
	return int(positionHash(p, seed) % variationClassCount)
}

// StarPoints returns the canonical handicap-point pattern for the known board
// sizes (9x9, 13x13, 19x19) and an empty set for every other size. Unknown
// sizes are an extension point, not an error.
func StarPoints(cols, rows int) PositionSet {
	switch {
	case cols == 19 && rows == 19:
		return NewPositionSet(
			Pos(3, 3), Pos(9, 3), Pos(15, 3),
			Pos(3, 9), Pos(9, 9), Pos(15, 9),
			Pos(3, 15), Pos(9, 15), Pos(15, 15),
		)
	case cols == 13 && rows == 13:
		return NewPositionSet(
			Pos(3, 3), Pos(9, 3),
			Pos(6, 6),
			Pos(3, 9), Pos(9, 9),
		)
	case cols == 9 && rows == 9:
		return NewPositionSet(
			Pos(2, 2), Pos(6, 2),
			Pos(4, 4),
			Pos(2, 6), Pos(6, 6),
		)
	}
	return PositionSet{}
}

// CellsOnSegment returns the grid positions a straight line between two
// vertex centers passes over, endpoints included. Used to dirty every cell a
// changed line touches, so the cost of a line edit is the line's length, not
// the board area.
func CellsOnSegment(from, to Position) []Position {
	dc := to.Col - from.Col
	dr := to.Row - from.Row
	steps := max(absInt(dc), absInt(dr))
	if steps == 0 {
		return []Position{from}
	}
	out := make([]Position, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		out = append(out, Position{
			Col: from.Col + int(math.Round(float64(dc)*t)),
			Row: from.Row + int(math.Round(float64(dr)*t)),
		})
	}
	return out
}

// ColumnLabel returns the Go coordinate letter for a column: A..T skipping I.
func ColumnLabel(col int) string {
	b := byte('A' + col)
	if col >= 8 { // skip 'I'
		b++
	}
	return string(b)
}

// RowLabel returns the Go coordinate number for a row. Row numbers count from
// the bottom of the board, so row 0 on a 19-row board is "19".
func RowLabel(row, rows int) string {
	return strconv.Itoa(rows - row)
}
