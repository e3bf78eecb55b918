package goban

import "fmt"

// maxBoardSize caps board dimensions per axis. Larger boards would defeat
// the sparse-layer memory model without serving any real use.
const maxBoardSize = 52

// defaultVertexSize is the initial cell edge length in pixels.
const defaultVertexSize = 24.0

// BoardState is the complete visual state of one board widget: a sparse
// layer per attribute plus scalar view configuration. Dimensions are fixed
// at construction. Every mutation validates its input first and applies it
// second, so a rejected call leaves the state untouched.
//
// BoardState is owned by exactly one widget; it is not safe for concurrent
// use and is never shared across widgets.
type BoardState struct {
	cols, rows int

	stones     *Layer[StoneColor]
	markers    *Layer[Marker]
	ghosts     *Layer[Ghost]
	heat       *Layer[Heat]
	paint      *Layer[Paint]
	selections *Layer[Selection]
	lines      []Line

	gridRange       GridRange
	vertexSize      float64
	showCoordinates bool
}

// NewBoardState creates an empty board of the given dimensions with a full
// visible range and the default vertex size.
func NewBoardState(cols, rows int) (*BoardState, error) {
	if cols < 1 || rows < 1 || cols > maxBoardSize || rows > maxBoardSize {
		return nil, fmt.Errorf("goban: board %dx%d: %w", cols, rows, ErrInvalidDimensions)
	}
	return &BoardState{
		cols:       cols,
		rows:       rows,
		stones:     NewLayer[StoneColor](cols, rows),
		markers:    NewLayer[Marker](cols, rows),
		ghosts:     NewLayer[Ghost](cols, rows),
		heat:       NewLayer[Heat](cols, rows),
		paint:      NewLayer[Paint](cols, rows),
		selections: NewLayer[Selection](cols, rows),
		gridRange:  FullRange(cols, rows),
		vertexSize: defaultVertexSize,
	}, nil
}

// StandardBoard creates an empty 19x19 board.
func StandardBoard() *BoardState {
	s, _ := NewBoardState(19, 19)
	return s
}

// Dimensions returns the fixed board size as (cols, rows).
func (s *BoardState) Dimensions() (cols, rows int) {
	return s.cols, s.rows
}

// Contains reports whether p lies on the board.
func (s *BoardState) Contains(p Position) bool {
	return p.Col >= 0 && p.Col < s.cols && p.Row >= 0 && p.Row < s.rows
}

// Range returns the visible sub-rectangle of the grid.
func (s *BoardState) Range() GridRange {
	return s.gridRange
}

// SetRange restricts the visible area. Fails with ErrInvalidRange when the
// rectangle is inverted or not a subset of the full grid.
func (s *BoardState) SetRange(r GridRange) error {
	if r.MinCol > r.MaxCol || r.MinRow > r.MaxRow ||
		r.MinCol < 0 || r.MinRow < 0 ||
		r.MaxCol >= s.cols || r.MaxRow >= s.rows {
		return invalidRangeError(r, s.cols, s.rows)
	}
	s.gridRange = r
	return nil
}

// VertexSize returns the pixel edge length of one cell.
func (s *BoardState) VertexSize() float64 {
	return s.vertexSize
}

// SetVertexSize sets the pixel edge length of one cell; it must be positive.
func (s *BoardState) SetVertexSize(size float64) error {
	if size <= 0 {
		return fmt.Errorf("goban: vertex size %v: %w", size, ErrInvalidConstraint)
	}
	s.vertexSize = size
	return nil
}

// ShowCoordinates reports whether coordinate labels are visible.
func (s *BoardState) ShowCoordinates() bool {
	return s.showCoordinates
}

// SetShowCoordinates toggles coordinate label visibility.
func (s *BoardState) SetShowCoordinates(show bool) {
	s.showCoordinates = show
}

// --- Stones ---

// Stone returns the stone at p, if any.
func (s *BoardState) Stone(p Position) (StoneColor, bool) {
	return s.stones.Get(p)
}

// SetStone places a stone. Replacing a stone of the same color is a no-op
// that produces no diff entry.
func (s *BoardState) SetStone(p Position, c StoneColor) error {
	_, _, err := s.stones.Set(p, c)
	return err
}

// RemoveStone clears the stone at p, reporting whether one was present.
func (s *BoardState) RemoveStone(p Position) (bool, error) {
	_, had, err := s.stones.Remove(p)
	return had, err
}

// --- Markers ---

// Marker returns the marker at p, if any.
func (s *BoardState) Marker(p Position) (Marker, bool) {
	return s.markers.Get(p)
}

// SetMarker places a marker annotation.
func (s *BoardState) SetMarker(p Position, m Marker) error {
	_, _, err := s.markers.Set(p, m)
	return err
}

// RemoveMarker clears the marker at p.
func (s *BoardState) RemoveMarker(p Position) (bool, error) {
	_, had, err := s.markers.Remove(p)
	return had, err
}

// --- Ghost stones ---

// Ghost returns the ghost stone at p, if any.
func (s *BoardState) Ghost(p Position) (Ghost, bool) {
	return s.ghosts.Get(p)
}

// SetGhost places a ghost stone annotation.
func (s *BoardState) SetGhost(p Position, g Ghost) error {
	_, _, err := s.ghosts.Set(p, g)
	return err
}

// RemoveGhost clears the ghost stone at p.
func (s *BoardState) RemoveGhost(p Position) (bool, error) {
	_, had, err := s.ghosts.Remove(p)
	return had, err
}

// --- Heat ---

// Heat returns the heat value at p, if any.
func (s *BoardState) Heat(p Position) (Heat, bool) {
	return s.heat.Get(p)
}

// SetHeat places a heat overlay value. Zero-strength values clear the
// position instead of storing an invisible entry.
func (s *BoardState) SetHeat(p Position, h Heat) error {
	if h.Strength <= 0 {
		_, _, err := s.heat.Remove(p)
		return err
	}
	h.Strength = clampInt(h.Strength, 0, 9)
	_, _, err := s.heat.Set(p, h)
	return err
}

// RemoveHeat clears the heat value at p.
func (s *BoardState) RemoveHeat(p Position) (bool, error) {
	_, had, err := s.heat.Remove(p)
	return had, err
}

// --- Paint ---

// Paint returns the paint value at p, if any.
func (s *BoardState) Paint(p Position) (Paint, bool) {
	return s.paint.Get(p)
}

// SetPaint places a territory paint value. Empty paint clears the position.
func (s *BoardState) SetPaint(p Position, paint Paint) error {
	if paint.Empty() {
		_, _, err := s.paint.Remove(p)
		return err
	}
	_, _, err := s.paint.Set(p, paint)
	return err
}

// RemovePaint clears the paint value at p.
func (s *BoardState) RemovePaint(p Position) (bool, error) {
	_, had, err := s.paint.Remove(p)
	return had, err
}

// --- Selections ---

// Selection returns the selection indicator at p, if any.
func (s *BoardState) Selection(p Position) (Selection, bool) {
	return s.selections.Get(p)
}

// SetSelection places a selection indicator.
func (s *BoardState) SetSelection(p Position, sel Selection) error {
	_, _, err := s.selections.Set(p, sel)
	return err
}

// RemoveSelection clears the selection at p.
func (s *BoardState) RemoveSelection(p Position) (bool, error) {
	_, had, err := s.selections.Remove(p)
	return had, err
}

// ClearSelections removes every selection indicator.
func (s *BoardState) ClearSelections() {
	s.selections.Clear()
}

// --- Lines ---

// Lines returns the connecting lines. The returned slice must not be mutated.
func (s *BoardState) Lines() []Line {
	return s.lines
}

// AddLine appends a connecting line. Both endpoints must be on the board.
func (s *BoardState) AddLine(line Line) error {
	if !s.Contains(line.From) {
		return outOfBoundsError(line.From, s.cols, s.rows)
	}
	if !s.Contains(line.To) {
		return outOfBoundsError(line.To, s.cols, s.rows)
	}
	s.lines = append(s.lines, line)
	return nil
}

// RemoveLine removes the first line equal to the argument, reporting whether
// one was found.
func (s *BoardState) RemoveLine(line Line) bool {
	for i, l := range s.lines {
		if l == line {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

// ClearLines removes every connecting line.
func (s *BoardState) ClearLines() {
	s.lines = s.lines[:0]
}

// --- Snapshots ---

// Snapshot returns an independent deep copy, used by the diff engine to
// compare against later versions of the state.
func (s *BoardState) Snapshot() *BoardState {
	c := &BoardState{
		cols:            s.cols,
		rows:            s.rows,
		stones:          s.stones.Clone(),
		markers:         s.markers.Clone(),
		ghosts:          s.ghosts.Clone(),
		heat:            s.heat.Clone(),
		paint:           s.paint.Clone(),
		selections:      s.selections.Clone(),
		gridRange:       s.gridRange,
		vertexSize:      s.vertexSize,
		showCoordinates: s.showCoordinates,
	}
	c.lines = append([]Line(nil), s.lines...)
	return c
}

// Equal reports whether two states hold identical contents and configuration.
func (s *BoardState) Equal(other *BoardState) bool {
	if s.cols != other.cols || s.rows != other.rows ||
		s.gridRange != other.gridRange ||
		s.vertexSize != other.vertexSize ||
		s.showCoordinates != other.showCoordinates ||
		len(s.lines) != len(other.lines) {
		return false
	}
	for i, l := range s.lines {
		if other.lines[i] != l {
			return false
		}
	}
	return s.stones.Equal(other.stones) &&
		s.markers.Equal(other.markers) &&
		s.ghosts.Equal(other.ghosts) &&
		s.heat.Equal(other.heat) &&
		s.paint.Equal(other.paint) &&
		s.selections.Equal(other.selections)
}
