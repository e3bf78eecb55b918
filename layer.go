package goban

// Layer is a sparse map from Position to one visual attribute value (stone,
// marker, ghost, heat, paint, selection). Layers are mutually independent: a
// position may carry a value in several layers at once.
//
// Storage is a plain map, so memory and iteration cost scale with the number
// of occupied positions, not the board area. Iteration order is unspecified.
type Layer[T comparable] struct {
	cols, rows int
	cells      map[Position]T
}

// NewLayer creates an empty layer bounded by the given board dimensions.
func NewLayer[T comparable](cols, rows int) *Layer[T] {
	return &Layer[T]{cols: cols, rows: rows, cells: make(map[Position]T)}
}

func (l *Layer[T]) inBounds(p Position) bool {
	return p.Col >= 0 && p.Col < l.cols && p.Row >= 0 && p.Row < l.rows
}

// Get returns the value at p and whether one is present. Out-of-bounds
// positions report absence.
func (l *Layer[T]) Get(p Position) (T, bool) {
	v, ok := l.cells[p]
	return v, ok
}

// Set stores a value at p, returning the previous value if one was present.
// Fails with ErrOutOfBounds for positions outside the board; the layer is
// left unchanged.
func (l *Layer[T]) Set(p Position, value T) (prev T, had bool, err error) {
	if !l.inBounds(p) {
		return prev, false, outOfBoundsError(p, l.cols, l.rows)
	}
	prev, had = l.cells[p]
	l.cells[p] = value
	return prev, had, nil
}

// Remove deletes the value at p, returning it if one was present.
// Fails with ErrOutOfBounds for positions outside the board.
func (l *Layer[T]) Remove(p Position) (prev T, had bool, err error) {
	if !l.inBounds(p) {
		return prev, false, outOfBoundsError(p, l.cols, l.rows)
	}
	prev, had = l.cells[p]
	delete(l.cells, p)
	return prev, had, nil
}

// ForEach calls visitor for every occupied position. Order is unspecified.
// The layer must not be mutated during iteration.
func (l *Layer[T]) ForEach(visitor func(Position, T)) {
	for p, v := range l.cells {
		visitor(p, v)
	}
}

// Positions returns the occupied positions in unspecified order.
func (l *Layer[T]) Positions() []Position {
	out := make([]Position, 0, len(l.cells))
	for p := range l.cells {
		out = append(out, p)
	}
	return out
}

// Len returns the number of occupied positions.
func (l *Layer[T]) Len() int {
	return len(l.cells)
}

// Clear removes every value.
func (l *Layer[T]) Clear() {
	clear(l.cells)
}

// Clone returns an independent deep copy of the layer.
func (l *Layer[T]) Clone() *Layer[T] {
	c := &Layer[T]{cols: l.cols, rows: l.rows, cells: make(map[Position]T, len(l.cells))}
	for p, v := range l.cells {
		c.cells[p] = v
	}
	return c
}

// Equal reports whether two layers hold identical contents.
func (l *Layer[T]) Equal(other *Layer[T]) bool {
	if len(l.cells) != len(other.cells) {
		return false
	}
	for p, v := range l.cells {
		ov, ok := other.cells[p]
		if !ok || ov != v {
			return false
		}
	}
	return true
}
