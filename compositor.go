package goban

import (
	"math"
)

// BoardOrigin returns the pixel offset at which the absolute cell (0, 0)
// sits, so that the first visible cell of the range lands just inside the
// border (and the coordinate band, when labels are shown). Cells outside the
// visible range map to coordinates outside the widget; callers clip via the
// range, not via this offset.
func BoardOrigin(st *BoardState, theme Theme) Vec2 {
	pad := theme.BorderWidth
	if st.ShowCoordinates() {
		pad += st.VertexSize()
	}
	r := st.Range()
	size := st.VertexSize()
	return Vec2{
		X: pad - float64(r.MinCol)*size,
		Y: pad - float64(r.MinRow)*size,
	}
}

// BoardPixelSize returns the total widget size in pixels for the current
// range, vertex size, border, and coordinate band.
func BoardPixelSize(st *BoardState, theme Theme) (w, h float64) {
	r := st.Range()
	size := st.VertexSize()
	pad := 2 * theme.BorderWidth
	if st.ShowCoordinates() {
		pad += 2 * size
	}
	return float64(r.Cols())*size + pad, float64(r.Rows())*size + pad
}

// ArrowAngle returns the rotation of an arrowhead in degrees for a line
// between two positions: 0 for a pure left-to-right line, 90 for a pure
// top-to-bottom line.
func ArrowAngle(from, to Position) float64 {
	dy := float64(to.Row - from.Row)
	dx := float64(to.Col - from.Col)
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// HitRegion is one invisible per-cell event-capture rectangle. Regions are
// the topmost layer and are never drawn.
type HitRegion struct {
	Pos  Position
	Rect Rect
}

// stoneSprite is the cached per-position placement of a stone: fuzzy offset
// and texture variation are computed once and reused until the position
// appears in a diff.
type stoneSprite struct {
	offset    Vec2
	variation int
}

// Compositor orders and renders the board layers into a Canvas. The layer
// order is fixed: background, grid and star points, coordinate labels, paint,
// heat, stones, ghosts, markers, lines, selections, interaction surface.
//
// Rendering is incremental: when the diff's LayoutChanged flag is clear, only
// positions present in the diff are repainted, bounding work to the size of
// the edit rather than the board.
type Compositor struct {
	// Assets supplies optional textures. Nil means solid-color rendering.
	Assets AssetSource

	// Diagnostics, when set, receives non-fatal rendering reports such as
	// ErrAssetUnavailable wraps. Never called for structural errors.
	Diagnostics func(error)

	// Seed perturbs the per-position hash for fuzzy offsets and texture
	// variation, so two boards side by side don't jitter identically.
	Seed uint64

	// StoneScale, when set, returns a scale multiplier for the stone at a
	// position. The placement animator uses this for the grow-in effect.
	StoneScale func(Position) float64

	stoneCache map[Position]stoneSprite
	tooltips   map[Position]string
	hitRegions []HitRegion
	missing    map[string]bool // asset names already reported
}

// NewCompositor creates a compositor with no asset source.
func NewCompositor() *Compositor {
	return &Compositor{
		stoneCache: make(map[Position]stoneSprite),
		tooltips:   make(map[Position]string),
		missing:    make(map[string]bool),
	}
}

// HitRegions returns the interaction surface: one rectangle per visible
// cell, rebuilt whenever the layout changes. The slice must not be mutated.
func (c *Compositor) HitRegions() []HitRegion {
	return c.hitRegions
}

// TooltipAt returns the tooltip registered by a label marker at p.
func (c *Compositor) TooltipAt(p Position) (string, bool) {
	tip, ok := c.tooltips[p]
	return tip, ok
}

// Render paints the state into the canvas, repainting only what diff marks
// dirty unless the layout changed. Draw calls are emitted back to front.
func (c *Compositor) Render(st *BoardState, diff RenderDiff, theme Theme, cv Canvas) {
	size := st.VertexSize()
	rng := st.Range()
	origin := BoardOrigin(st, theme)

	var dirty PositionSet
	drawLines := diff.LayoutChanged || !diff.Lines.Empty()
	if diff.LayoutChanged {
		clear(c.stoneCache)
		c.renderStatic(st, theme, cv, origin)
		c.rebuildHitRegions(st, theme, origin)
		c.rebuildTooltips(st)
		dirty = make(PositionSet, rng.Cols()*rng.Rows())
		for row := rng.MinRow; row <= rng.MaxRow; row++ {
			for col := rng.MinCol; col <= rng.MaxCol; col++ {
				dirty.Add(Pos(col, row))
			}
		}
	} else {
		c.invalidateStones(diff.Stones)
		c.updateTooltips(st, diff.Markers)
		dirty = PositionSet{}
		for p := range diff.Dirty() {
			if rng.Contains(p) {
				dirty.Add(p)
			}
		}
		// A repainted cell may sit under a line. Pull every cell of an
		// affected line into the repaint and redraw its stroke, or the base
		// fill would leave a gap in it.
		if len(dirty) > 0 {
			for _, line := range st.Lines() {
				cells := CellsOnSegment(line.From, line.To)
				hit := false
				for _, lp := range cells {
					if dirty.Has(lp) {
						hit = true
						break
					}
				}
				if !hit {
					continue
				}
				drawLines = true
				for _, lp := range cells {
					if rng.Contains(lp) {
						dirty.Add(lp)
					}
				}
			}
		}
		for p := range dirty {
			c.renderCellBase(st, theme, cv, p, origin)
		}
	}

	for p := range dirty {
		if paint, ok := st.Paint(p); ok {
			c.renderPaint(st, theme, cv, p, paint, origin)
		}
		if heat, ok := st.Heat(p); ok {
			c.renderHeat(theme, cv, p, heat, size, origin)
		}
		if stone, ok := st.Stone(p); ok {
			c.renderStone(theme, cv, p, stone, size, origin)
		}
		if ghost, ok := st.Ghost(p); ok {
			c.renderGhost(theme, cv, p, ghost, size, origin)
		}
		if marker, ok := st.Marker(p); ok {
			c.renderMarker(theme, cv, p, marker, size, origin)
		}
	}

	if drawLines {
		for _, line := range st.Lines() {
			c.renderLine(theme, cv, line, size, origin)
		}
	}

	for p := range dirty {
		if sel, ok := st.Selection(p); ok {
			c.renderSelection(theme, cv, p, sel, size, origin)
		}
	}
}

// --- Static layers ---

// renderStatic paints the layers that only change with layout: background,
// border, grid lines, star points, and coordinate labels.
func (c *Compositor) renderStatic(st *BoardState, theme Theme, cv Canvas, origin Vec2) {
	size := st.VertexSize()
	rng := st.Range()
	w, h := BoardPixelSize(st, theme)

	cv.FillRect(Rect{Width: w, Height: h}, theme.Border)
	inner := Rect{
		X:      theme.BorderWidth,
		Y:      theme.BorderWidth,
		Width:  w - 2*theme.BorderWidth,
		Height: h - 2*theme.BorderWidth,
	}
	if tex := c.resolveTexture(theme.BoardTexture); tex != nil {
		cv.DrawImage(tex, inner)
	} else {
		cv.FillRect(inner, theme.Background)
	}

	// Grid lines span between the first and last visible vertex centers.
	first := VertexCenter(Pos(rng.MinCol, rng.MinRow), size, origin)
	last := VertexCenter(Pos(rng.MaxCol, rng.MaxRow), size, origin)
	for row := rng.MinRow; row <= rng.MaxRow; row++ {
		y := VertexCenter(Pos(rng.MinCol, row), size, origin).Y
		cv.StrokeLine(Vec2{first.X, y}, Vec2{last.X, y}, theme.GridWidth, theme.GridLines)
	}
	for col := rng.MinCol; col <= rng.MaxCol; col++ {
		x := VertexCenter(Pos(col, rng.MinRow), size, origin).X
		cv.StrokeLine(Vec2{x, first.Y}, Vec2{x, last.Y}, theme.GridWidth, theme.GridLines)
	}

	cols, rows := st.Dimensions()
	for p := range StarPoints(cols, rows) {
		if !rng.Contains(p) {
			continue
		}
		cv.FillCircle(VertexCenter(p, size, origin), theme.StarSize/2, theme.StarPoints)
	}

	if st.ShowCoordinates() {
		c.renderCoordinates(st, theme, cv, origin)
	}
}

// renderCoordinates draws the column letters above and below the grid and
// the row numbers to its left and right.
func (c *Compositor) renderCoordinates(st *BoardState, theme Theme, cv Canvas, origin Vec2) {
	size := st.VertexSize()
	rng := st.Range()
	_, rows := st.Dimensions()
	topY := VertexCenter(Pos(rng.MinCol, rng.MinRow), size, origin).Y - size
	bottomY := VertexCenter(Pos(rng.MinCol, rng.MaxRow), size, origin).Y + size
	for col := rng.MinCol; col <= rng.MaxCol; col++ {
		x := VertexCenter(Pos(col, rng.MinRow), size, origin).X
		label := ColumnLabel(col)
		cv.DrawText(label, Vec2{x, topY}, theme.CoordSize, theme.Coordinates)
		cv.DrawText(label, Vec2{x, bottomY}, theme.CoordSize, theme.Coordinates)
	}
	leftX := VertexCenter(Pos(rng.MinCol, rng.MinRow), size, origin).X - size
	rightX := VertexCenter(Pos(rng.MaxCol, rng.MinRow), size, origin).X + size
	for row := rng.MinRow; row <= rng.MaxRow; row++ {
		y := VertexCenter(Pos(rng.MinCol, row), size, origin).Y
		label := RowLabel(row, rows)
		cv.DrawText(label, Vec2{leftX, y}, theme.CoordSize, theme.Coordinates)
		cv.DrawText(label, Vec2{rightX, y}, theme.CoordSize, theme.Coordinates)
	}
}

// renderCellBase repairs the background and grid under one dirty cell before
// its overlays are repainted. Grid segments stop at the cell center on the
// range edges, matching the full-length lines of a static render.
func (c *Compositor) renderCellBase(st *BoardState, theme Theme, cv Canvas, p Position, origin Vec2) {
	size := st.VertexSize()
	rng := st.Range()
	cell := CellRect(p, size, origin)
	center := cell.Center()

	// Restore the matching patch of the board texture when one is in use,
	// so incremental repaints don't punch solid-color holes in it.
	if tex := c.resolveTexture(theme.BoardTexture); tex != nil {
		w, h := BoardPixelSize(st, theme)
		inner := Rect{
			X:      theme.BorderWidth,
			Y:      theme.BorderWidth,
			Width:  w - 2*theme.BorderWidth,
			Height: h - 2*theme.BorderWidth,
		}
		tw, th := tex.Size()
		sx := float64(tw) / inner.Width
		sy := float64(th) / inner.Height
		src := Rect{
			X:      (cell.X - inner.X) * sx,
			Y:      (cell.Y - inner.Y) * sy,
			Width:  cell.Width * sx,
			Height: cell.Height * sy,
		}
		cv.DrawImageRegion(tex, src, cell)
	} else {
		cv.FillRect(cell, theme.Background)
	}

	x0, x1 := cell.X, cell.X+cell.Width
	if p.Col == rng.MinCol {
		x0 = center.X
	}
	if p.Col == rng.MaxCol {
		x1 = center.X
	}
	cv.StrokeLine(Vec2{x0, center.Y}, Vec2{x1, center.Y}, theme.GridWidth, theme.GridLines)

	y0, y1 := cell.Y, cell.Y+cell.Height
	if p.Row == rng.MinRow {
		y0 = center.Y
	}
	if p.Row == rng.MaxRow {
		y1 = center.Y
	}
	cv.StrokeLine(Vec2{center.X, y0}, Vec2{center.X, y1}, theme.GridWidth, theme.GridLines)

	cols, rows := st.Dimensions()
	if StarPoints(cols, rows).Has(p) {
		cv.FillCircle(center, theme.StarSize/2, theme.StarPoints)
	}
}

// --- Paint overlay ---

// renderPaint draws the whole-cell fill, the four half-cell edge strips, and
// the four corner squares of one paint value.
func (c *Compositor) renderPaint(st *BoardState, theme Theme, cv Canvas, p Position, paint Paint, origin Vec2) {
	size := st.VertexSize()
	cell := CellRect(p, size, origin)

	if paint.Fill != 0 {
		cv.FillRect(cell, theme.PaintColor(paint.Fill))
	}

	half := size / 2
	if paint.Left != 0 {
		cv.FillRect(Rect{cell.X, cell.Y, half, size}, theme.PaintColor(paint.Left))
	}
	if paint.Right != 0 {
		cv.FillRect(Rect{cell.X + half, cell.Y, half, size}, theme.PaintColor(paint.Right))
	}
	if paint.Top != 0 {
		cv.FillRect(Rect{cell.X, cell.Y, size, half}, theme.PaintColor(paint.Top))
	}
	if paint.Bottom != 0 {
		cv.FillRect(Rect{cell.X, cell.Y + half, size, half}, theme.PaintColor(paint.Bottom))
	}

	quarter := size / 4
	cornerRects := [4]Rect{
		CornerTopLeft:     {cell.X, cell.Y, quarter, quarter},
		CornerTopRight:    {cell.X + size - quarter, cell.Y, quarter, quarter},
		CornerBottomLeft:  {cell.X, cell.Y + size - quarter, quarter, quarter},
		CornerBottomRight: {cell.X + size - quarter, cell.Y + size - quarter, quarter, quarter},
	}
	for corner := CornerTopLeft; corner <= CornerBottomRight; corner++ {
		if paint.Corners[corner] == 0 {
			continue
		}
		blended := BlendedCornerIntensity(st, p, corner)
		cv.FillRect(cornerRects[corner], theme.PaintColor(blended))
	}
}

// cornerNeighbors lists, per corner, the column/row deltas of the three
// cells that share the corner point with the owning cell, and which of
// their corner slots faces that point.
var cornerNeighbors = [4][3]struct {
	dc, dr int
	facing PaintCorner
}{
	CornerTopLeft: {
		{-1, 0, CornerTopRight}, {0, -1, CornerBottomLeft}, {-1, -1, CornerBottomRight},
	},
	CornerTopRight: {
		{1, 0, CornerTopLeft}, {0, -1, CornerBottomRight}, {1, -1, CornerBottomLeft},
	},
	CornerBottomLeft: {
		{-1, 0, CornerBottomRight}, {0, 1, CornerTopLeft}, {-1, 1, CornerTopRight},
	},
	CornerBottomRight: {
		{1, 0, CornerBottomLeft}, {0, 1, CornerTopRight}, {1, 1, CornerTopLeft},
	},
}

// BlendedCornerIntensity resolves the rendered intensity of one paint corner
// as the mean of the four corner intensities meeting at that grid point: the
// cell's own value plus the facing corner values of its three diagonal and
// orthogonal neighbors, where off-board or unpainted cells contribute zero.
// The blend keeps adjacent painted cells from forming seams at shared
// corners.
func BlendedCornerIntensity(st *BoardState, p Position, corner PaintCorner) float64 {
	total := 0.0
	if paint, ok := st.Paint(p); ok {
		total = paint.Corners[corner]
	}
	for _, n := range cornerNeighbors[corner] {
		np := Pos(p.Col+n.dc, p.Row+n.dr)
		if paint, ok := st.Paint(np); ok {
			total += paint.Corners[n.facing]
		}
	}
	return clampFloat(total/4, -1, 1)
}

// --- Heat overlay ---

func (c *Compositor) renderHeat(theme Theme, cv Canvas, p Position, heat Heat, size float64, origin Vec2) {
	if heat.Strength <= 0 {
		return
	}
	center := VertexCenter(p, size, origin)
	extent := size * 0.75
	cv.FillRect(Rect{
		X:      center.X - extent/2,
		Y:      center.Y - extent/2,
		Width:  extent,
		Height: extent,
	}, HeatColor(heat.Strength))
	if heat.Label != "" {
		cv.DrawText(heat.Label, center, size*0.4, HeatTextColor(heat.Strength))
	}
}

// --- Stones ---

// stonePlacement returns the cached fuzzy offset and variation class for a
// stone, computing and caching them on first use after an invalidation.
func (c *Compositor) stonePlacement(theme Theme, p Position, size float64) stoneSprite {
	if sprite, ok := c.stoneCache[p]; ok {
		return sprite
	}
	sprite := stoneSprite{variation: VariationClass(p, c.Seed)}
	if theme.FuzzyPlacement {
		sprite.offset = FuzzyOffset(p, c.Seed, theme.FuzzyMaxOffset, size)
	}
	c.stoneCache[p] = sprite
	return sprite
}

func (c *Compositor) invalidateStones(d LayerDiff) {
	for p := range d.Added {
		delete(c.stoneCache, p)
	}
	for p := range d.Removed {
		delete(c.stoneCache, p)
	}
	for p := range d.Changed {
		delete(c.stoneCache, p)
	}
}

func (c *Compositor) renderStone(theme Theme, cv Canvas, p Position, stone StoneColor, size float64, origin Vec2) {
	sprite := c.stonePlacement(theme, p, size)
	center := VertexCenter(p, size, origin)
	center.X += sprite.offset.X
	center.Y += sprite.offset.Y

	scale := 1.0
	if c.StoneScale != nil {
		scale = c.StoneScale(p)
	}
	radius := size * theme.StoneSize / 2 * scale
	if radius <= 0 {
		return
	}

	if theme.StoneShadow {
		cv.FillCircle(Vec2{center.X + size*0.04, center.Y + size*0.06}, radius, ColorBlack.WithAlpha(0.3))
	}

	if theme.StoneVariation {
		name := StoneVariantName(stone, sprite.variation)
		if tex := c.resolveTexture(name); tex != nil {
			cv.DrawImage(tex, Rect{center.X - radius, center.Y - radius, radius * 2, radius * 2})
			return
		}
	}

	cv.FillCircle(center, radius, theme.StoneColorOf(stone))
	if stone == StoneWhite {
		cv.StrokeCircle(center, radius, 1, ColorBlack.WithAlpha(0.4))
	}
}

// --- Ghost stones ---

// ghostGlyphs maps each ghost category to its marker glyph; combined with
// the category tint this gives every kind a fixed color+glyph identity.
var ghostGlyphs = [...]string{
	GhostGood:        "+",
	GhostInteresting: "!",
	GhostDoubtful:    "?",
	GhostBad:         "x",
}

func (c *Compositor) renderGhost(theme Theme, cv Canvas, p Position, ghost Ghost, size float64, origin Vec2) {
	center := VertexCenter(p, size, origin)
	alpha := theme.GhostAlpha(ghost.Faint)
	radius := size * theme.StoneSize / 2 * (1 - theme.GhostSizeReduction)
	tint := theme.GhostColorOf(ghost.Kind)

	cv.FillCircle(center, radius, theme.StoneColorOf(ghost.Color).WithAlpha(alpha))
	cv.StrokeCircle(center, radius, 2, tint.WithAlpha(math.Min(alpha+0.2, 1)))
	cv.DrawText(ghostGlyphs[ghost.Kind], center, size*0.35, tint.WithAlpha(math.Min(alpha+0.2, 1)))
}

// --- Markers ---

func (c *Compositor) renderMarker(theme Theme, cv Canvas, p Position, m Marker, size float64, origin Vec2) {
	center := VertexCenter(p, size, origin)
	mult := m.Size
	if mult <= 0 {
		mult = 1
	}
	extent := size * theme.MarkerSize * mult
	half := extent / 2
	col := theme.MarkerColor

	switch m.Kind {
	case MarkerCircle:
		cv.StrokeCircle(center, half, theme.LineWidth, col)
	case MarkerCross:
		cv.StrokeLine(Vec2{center.X - half, center.Y - half}, Vec2{center.X + half, center.Y + half}, theme.LineWidth, col)
		cv.StrokeLine(Vec2{center.X - half, center.Y + half}, Vec2{center.X + half, center.Y - half}, theme.LineWidth, col)
	case MarkerTriangle:
		cv.FillPolygon([]Vec2{
			{center.X, center.Y - half},
			{center.X + half, center.Y + half},
			{center.X - half, center.Y + half},
		}, col)
	case MarkerSquare:
		cv.StrokeRect(Rect{center.X - half, center.Y - half, extent, extent}, theme.LineWidth, col)
	case MarkerPoint:
		cv.FillCircle(center, extent*0.3, col)
	case MarkerLabel:
		cv.DrawText(m.Label, center, size*0.5, col)
	case MarkerLoader:
		// Spinner placeholder: a faint ring until analysis arrives.
		cv.StrokeCircle(center, half, theme.LineWidth, col.WithAlpha(0.5))
	}
}

func (c *Compositor) rebuildTooltips(st *BoardState) {
	clear(c.tooltips)
	st.markers.ForEach(func(p Position, m Marker) {
		if tip := m.TooltipText(); tip != "" {
			c.tooltips[p] = tip
		}
	})
}

func (c *Compositor) updateTooltips(st *BoardState, d LayerDiff) {
	for p := range d.Removed {
		delete(c.tooltips, p)
	}
	for _, set := range []PositionSet{d.Added, d.Changed} {
		for p := range set {
			delete(c.tooltips, p)
			if m, ok := st.Marker(p); ok {
				if tip := m.TooltipText(); tip != "" {
					c.tooltips[p] = tip
				}
			}
		}
	}
}

// --- Lines ---

func (c *Compositor) renderLine(theme Theme, cv Canvas, line Line, size float64, origin Vec2) {
	from := VertexCenter(line.From, size, origin)
	to := VertexCenter(line.To, size, origin)
	cv.StrokeLine(from, to, theme.LineWidth, theme.LineColor)
	if line.Arrow {
		c.renderArrowHead(theme, cv, from, to)
	}
}

// renderArrowHead draws the triangular head at the line's destination,
// rotated along the vector between the endpoints. The rotation comes
// straight from atan2, so it is correct for every direction including the
// purely vertical and horizontal cases.
func (c *Compositor) renderArrowHead(theme Theme, cv Canvas, from, to Vec2) {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	head := theme.ArrowHeadSize
	base := Vec2{
		X: to.X - head*math.Cos(angle),
		Y: to.Y - head*math.Sin(angle),
	}
	perp := Vec2{X: -math.Sin(angle), Y: math.Cos(angle)}
	cv.FillPolygon([]Vec2{
		to,
		{base.X + perp.X*head/2, base.Y + perp.Y*head/2},
		{base.X - perp.X*head/2, base.Y - perp.Y*head/2},
	}, theme.LineColor)
}

// --- Selections ---

func (c *Compositor) renderSelection(theme Theme, cv Canvas, p Position, sel Selection, size float64, origin Vec2) {
	center := VertexCenter(p, size, origin)
	col := theme.SelectionColor.WithAlpha(sel.EffectiveOpacity())

	if sel.Kind == SelectionLastMove {
		cv.FillCircle(center, size*0.12, theme.LastMoveColor.WithAlpha(sel.EffectiveOpacity()))
		return
	}

	extent := size * 0.9
	half := extent / 2
	tl := Vec2{center.X - half, center.Y - half}
	tr := Vec2{center.X + half, center.Y - half}
	bl := Vec2{center.X - half, center.Y + half}
	br := Vec2{center.X + half, center.Y + half}

	// Each edge is drawn unless the selection opens toward that neighbor,
	// which merges adjacent selected cells into one outline.
	if sel.Kind != SelectionOpenTop {
		cv.StrokeLine(tl, tr, theme.SelectionWidth, col)
	}
	if sel.Kind != SelectionOpenBottom {
		cv.StrokeLine(bl, br, theme.SelectionWidth, col)
	}
	if sel.Kind != SelectionOpenLeft {
		cv.StrokeLine(tl, bl, theme.SelectionWidth, col)
	}
	if sel.Kind != SelectionOpenRight {
		cv.StrokeLine(tr, br, theme.SelectionWidth, col)
	}
}

// --- Interaction surface ---

func (c *Compositor) rebuildHitRegions(st *BoardState, theme Theme, origin Vec2) {
	size := st.VertexSize()
	rng := st.Range()
	c.hitRegions = c.hitRegions[:0]
	for row := rng.MinRow; row <= rng.MaxRow; row++ {
		for col := rng.MinCol; col <= rng.MaxCol; col++ {
			p := Pos(col, row)
			c.hitRegions = append(c.hitRegions, HitRegion{Pos: p, Rect: CellRect(p, size, origin)})
		}
	}
}

// --- Assets ---

// resolveTexture looks up a named texture, reporting a miss once per name on
// the diagnostics callback and falling back to nil (solid-color rendering).
func (c *Compositor) resolveTexture(name string) Texture {
	if name == "" || c.Assets == nil {
		return nil
	}
	tex, err := c.Assets.Texture(name)
	if err != nil {
		if c.Diagnostics != nil && !c.missing[name] {
			c.missing[name] = true
			c.Diagnostics(err)
		}
		return nil
	}
	delete(c.missing, name)
	return tex
}
