package goban

// MarkerKind distinguishes the marker glyphs drawn on top of stones.
type MarkerKind uint8

const (
	MarkerCircle   MarkerKind = iota // hollow circle
	MarkerCross                      // X
	MarkerTriangle                   // hollow triangle
	MarkerSquare                     // hollow square
	MarkerPoint                      // small filled dot
	MarkerLabel                      // text label, uses Marker.Label
	MarkerLoader                     // spinner placeholder for pending analysis
)

// Marker is a per-position annotation glyph. The zero value is a circle
// marker with default size.
type Marker struct {
	Kind    MarkerKind
	Label   string  // text for MarkerLabel; doubles as the tooltip default
	Tooltip string  // hover tooltip; empty means use Label
	Size    float64 // multiplier relative to vertex size; 0 means 1.0
}

// NewMarker returns a marker of the given kind.
func NewMarker(kind MarkerKind) Marker {
	return Marker{Kind: kind}
}

// LabelMarker returns a text marker. The label is also registered as the
// tooltip for the position.
func LabelMarker(text string) Marker {
	return Marker{Kind: MarkerLabel, Label: text}
}

// WithTooltip returns a copy of the marker with the tooltip set.
func (m Marker) WithTooltip(text string) Marker {
	m.Tooltip = text
	return m
}

// WithSize returns a copy of the marker with the size multiplier set.
func (m Marker) WithSize(size float64) Marker {
	m.Size = size
	return m
}

// TooltipText returns the tooltip for the marker, falling back to the label.
func (m Marker) TooltipText() string {
	if m.Tooltip != "" {
		return m.Tooltip
	}
	return m.Label
}

// GhostKind is the qualitative category of a ghost stone annotation.
type GhostKind uint8

const (
	GhostGood        GhostKind = iota // green
	GhostInteresting                  // blue
	GhostDoubtful                     // yellow
	GhostBad                          // red
)

// Ghost is a non-final analysis stone. Ghost stones render like stones but
// smaller, tinted by category, and translucent; Faint halves visibility again.
type Ghost struct {
	Color StoneColor
	Kind  GhostKind
	Faint bool
}

// Heat is an influence-strength overlay value. Strength ranges 0..9; 0 renders
// nothing. Label, when non-empty, is drawn centered in the cell.
type Heat struct {
	Strength int
	Label    string
}

// NewHeat returns a heat value with the strength clamped to 0..9.
func NewHeat(strength int) Heat {
	return Heat{Strength: clampInt(strength, 0, 9)}
}

// WithLabel returns a copy of the heat value with a centered text label.
func (h Heat) WithLabel(text string) Heat {
	h.Label = text
	return h
}

// PaintCorner indexes the four corner slots of a Paint value.
type PaintCorner uint8

const (
	CornerTopLeft PaintCorner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// Paint is a territory-shading overlay for one cell. Each intensity is in
// [-1, 1]: positive shades toward black territory, negative toward white,
// 0 is transparent. Fill covers the whole cell; Left/Right/Top/Bottom cover
// the corresponding half-cell edge strips; Corners cover quarter-size corner
// squares. All components are independent and may be combined.
type Paint struct {
	Fill    float64
	Left    float64
	Right   float64
	Top     float64
	Bottom  float64
	Corners [4]float64 // indexed by PaintCorner
}

// FillPaint returns a whole-cell paint value.
func FillPaint(intensity float64) Paint {
	return Paint{Fill: clampFloat(intensity, -1, 1)}
}

// Empty reports whether the paint value draws nothing.
func (p Paint) Empty() bool {
	return p == Paint{}
}

// SelectionKind distinguishes selection indicator styles. The directional
// edge variants suppress the outline on the named edge so adjacent selected
// cells visually merge into one region.
type SelectionKind uint8

const (
	SelectionPlain      SelectionKind = iota // full outline
	SelectionLastMove                        // last-move dot indicator
	SelectionOpenLeft                        // outline open toward the left neighbor
	SelectionOpenRight                       // outline open toward the right neighbor
	SelectionOpenTop                         // outline open toward the top neighbor
	SelectionOpenBottom                      // outline open toward the bottom neighbor
)

// Selection is a per-position selection indicator. Opacity 0 means fully
// opaque (the zero value selects at full strength).
type Selection struct {
	Kind    SelectionKind
	Dimmed  bool
	Opacity float64 // 0 means 1.0; otherwise clamped to (0, 1]
}

// NewSelection returns a plain full-opacity selection.
func NewSelection() Selection {
	return Selection{Kind: SelectionPlain}
}

// EffectiveOpacity resolves the opacity, applying the zero-means-opaque rule
// and the dimmed multiplier.
func (s Selection) EffectiveOpacity() float64 {
	op := s.Opacity
	if op <= 0 || op > 1 {
		op = 1.0
	}
	if s.Dimmed {
		op *= 0.5
	}
	return op
}

// Line connects two positions. Arrow lines render a triangular head at To,
// rotated to match the direction of the line.
type Line struct {
	From, To Position
	Arrow    bool
}

// NewLine returns a plain line between two positions.
func NewLine(from, to Position) Line {
	return Line{From: from, To: to}
}

// NewArrow returns an arrow from one position to another.
func NewArrow(from, to Position) Line {
	return Line{From: from, To: to, Arrow: true}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
