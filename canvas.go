package goban

// Texture is an opaque handle to a platform image supplied by an AssetSource.
// The core never inspects pixels; it only forwards handles to the Canvas.
type Texture interface {
	Size() (w, h int)
}

// Canvas is the primitive draw-call surface the compositor renders into.
// Implementations own how the primitives become pixels; the core attaches no
// further semantics. Calls arrive back-to-front within one render pass.
type Canvas interface {
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, width float64, c Color)
	FillCircle(center Vec2, radius float64, c Color)
	StrokeCircle(center Vec2, radius, width float64, c Color)
	StrokeLine(from, to Vec2, width float64, c Color)
	FillPolygon(points []Vec2, c Color)
	// DrawText renders a single text run centered on the given point.
	DrawText(text string, center Vec2, size float64, c Color)
	// DrawImage blits a texture scaled into dst.
	DrawImage(tex Texture, dst Rect)
	// DrawImageRegion blits the src sub-rectangle of a texture, in texture
	// pixels, scaled into dst. Incremental repaints use this to restore a
	// patch of a textured surface.
	DrawImageRegion(tex Texture, src, dst Rect)
}

// OpKind identifies one recorded draw call.
type OpKind uint8

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpFillCircle
	OpStrokeCircle
	OpStrokeLine
	OpFillPolygon
	OpDrawText
	OpDrawImage
	OpDrawImageRegion
)

// DrawOp is one recorded primitive call. Only the fields relevant to Kind
// are populated.
type DrawOp struct {
	Kind    OpKind
	Rect    Rect
	Src     Rect
	Center  Vec2
	From    Vec2
	To      Vec2
	Points  []Vec2
	Radius  float64
	Width   float64
	Size    float64
	Color   Color
	Text    string
	Texture Texture
}

// RecordingCanvas captures draw calls instead of rasterizing them. Used by
// tests to assert on emitted primitives and by debug tooling to count draw
// calls per frame.
type RecordingCanvas struct {
	Ops []DrawOp
}

// Reset discards all recorded operations.
func (r *RecordingCanvas) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns the number of recorded operations of the given kind.
func (r *RecordingCanvas) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (r *RecordingCanvas) FillRect(rect Rect, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpFillRect, Rect: rect, Color: c})
}

func (r *RecordingCanvas) StrokeRect(rect Rect, width float64, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpStrokeRect, Rect: rect, Width: width, Color: c})
}

func (r *RecordingCanvas) FillCircle(center Vec2, radius float64, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpFillCircle, Center: center, Radius: radius, Color: c})
}

func (r *RecordingCanvas) StrokeCircle(center Vec2, radius, width float64, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpStrokeCircle, Center: center, Radius: radius, Width: width, Color: c})
}

func (r *RecordingCanvas) StrokeLine(from, to Vec2, width float64, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpStrokeLine, From: from, To: to, Width: width, Color: c})
}

func (r *RecordingCanvas) FillPolygon(points []Vec2, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpFillPolygon, Points: append([]Vec2(nil), points...), Color: c})
}

func (r *RecordingCanvas) DrawText(text string, center Vec2, size float64, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpDrawText, Text: text, Center: center, Size: size, Color: c})
}

func (r *RecordingCanvas) DrawImage(tex Texture, dst Rect) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpDrawImage, Texture: tex, Rect: dst})
}

func (r *RecordingCanvas) DrawImageRegion(tex Texture, src, dst Rect) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpDrawImageRegion, Texture: tex, Src: src, Rect: dst})
}
