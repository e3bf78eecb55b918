package goban

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultPlacementDuration = 0.15 // seconds

// StoneAnimator runs the grow-in animation for newly placed stones. Each
// animated position carries one scale tween from 0 to 1; positions without a
// tween render at full scale. Wire Scale into Compositor.StoneScale and call
// Tick once per frame.
//
// There is no global animation manager — the owning widget calls Tick itself.
type StoneAnimator struct {
	// Duration of the grow-in in seconds. Zero means the default.
	Duration float32

	tweens map[Position]*gween.Tween
	scales map[Position]float64
	dirty  []Position
}

// NewStoneAnimator creates an animator with the default duration.
func NewStoneAnimator() *StoneAnimator {
	return &StoneAnimator{
		tweens: make(map[Position]*gween.Tween),
		scales: make(map[Position]float64),
	}
}

// Start begins (or restarts) the grow-in animation at a position.
func (a *StoneAnimator) Start(p Position) {
	d := a.Duration
	if d <= 0 {
		d = defaultPlacementDuration
	}
	a.tweens[p] = gween.New(0, 1, d, ease.OutQuad)
	a.scales[p] = 0
}

// Cancel stops the animation at a position. The stone renders at full scale
// from the next frame on.
func (a *StoneAnimator) Cancel(p Position) {
	delete(a.tweens, p)
	delete(a.scales, p)
}

// Clear stops every running animation.
func (a *StoneAnimator) Clear() {
	clear(a.tweens)
	clear(a.scales)
}

// Active reports whether any animation is still running.
func (a *StoneAnimator) Active() bool {
	return len(a.tweens) > 0
}

// Tick advances all animations by dt seconds and returns the positions whose
// scale changed, so the caller can mark them dirty for the next render. The
// returned slice is reused across calls.
func (a *StoneAnimator) Tick(dt float32) []Position {
	a.dirty = a.dirty[:0]
	for p, tw := range a.tweens {
		val, finished := tw.Update(dt)
		a.scales[p] = float64(val)
		a.dirty = append(a.dirty, p)
		if finished {
			delete(a.tweens, p)
			delete(a.scales, p)
		}
	}
	return a.dirty
}

// Scale returns the current scale multiplier for a stone, 1 when the
// position is not animating.
func (a *StoneAnimator) Scale(p Position) float64 {
	if s, ok := a.scales[p]; ok {
		return s
	}
	return 1
}
