package goban

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by state mutations, geometry queries, and the
// bounded sizer. Wrap-aware: test with errors.Is.
var (
	// ErrOutOfBounds reports a position outside the board dimensions.
	ErrOutOfBounds = errors.New("goban: position out of bounds")

	// ErrInvalidDimensions reports a zero or negative board size.
	ErrInvalidDimensions = errors.New("goban: invalid board dimensions")

	// ErrInvalidConstraint reports a size-bound solver given min > max.
	ErrInvalidConstraint = errors.New("goban: invalid size constraint")

	// ErrInvalidRange reports a visible range that is not a subset of the
	// full grid, or with min > max on either axis.
	ErrInvalidRange = errors.New("goban: invalid board range")

	// ErrAssetUnavailable reports a missing named asset. Never returned from
	// rendering; delivered on the diagnostics callback while the renderer
	// falls back to solid colors.
	ErrAssetUnavailable = errors.New("goban: asset unavailable")
)

func outOfBoundsError(p Position, cols, rows int) error {
	return fmt.Errorf("goban: position (%d, %d) outside %dx%d board: %w",
		p.Col, p.Row, cols, rows, ErrOutOfBounds)
}

func invalidRangeError(r GridRange, cols, rows int) error {
	return fmt.Errorf("goban: range cols %d..%d rows %d..%d outside %dx%d board: %w",
		r.MinCol, r.MaxCol, r.MinRow, r.MaxRow, cols, rows, ErrInvalidRange)
}
