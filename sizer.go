package goban

import "fmt"

// BoundedSizeResult is the solved cell size for a container, along with the
// pixel area the board will actually occupy at that size.
type BoundedSizeResult struct {
	VertexSize      float64
	EffectiveWidth  float64
	EffectiveHeight float64
}

// SolveVertexSize computes the vertex size that fits a cols x rows grid into
// a container, clamped to [minVertex, maxVertex]. The raw candidate is the
// smaller of containerWidth/cols and containerHeight/rows, so the grid keeps
// square cells and never overflows the container before clamping.
//
// Fails with ErrInvalidDimensions when cols or rows is not positive and with
// ErrInvalidConstraint when minVertex > maxVertex.
func SolveVertexSize(containerWidth, containerHeight float64, cols, rows int, minVertex, maxVertex float64) (BoundedSizeResult, error) {
	if cols < 1 || rows < 1 {
		return BoundedSizeResult{}, fmt.Errorf("goban: solve vertex size for %dx%d grid: %w",
			cols, rows, ErrInvalidDimensions)
	}
	if minVertex > maxVertex {
		return BoundedSizeResult{}, fmt.Errorf("goban: solve vertex size with min %v > max %v: %w",
			minVertex, maxVertex, ErrInvalidConstraint)
	}
	raw := containerWidth / float64(cols)
	if h := containerHeight / float64(rows); h < raw {
		raw = h
	}
	size := clampFloat(raw, minVertex, maxVertex)
	return BoundedSizeResult{
		VertexSize:      size,
		EffectiveWidth:  size * float64(cols),
		EffectiveHeight: size * float64(rows),
	}, nil
}
