package goban

// LayerDiff is the minimal position delta between two snapshots of one layer:
// positions that gained a value, lost a value, or changed value (structural
// equality, not identity).
type LayerDiff struct {
	Added   PositionSet
	Removed PositionSet
	Changed PositionSet
}

func newLayerDiff() LayerDiff {
	return LayerDiff{
		Added:   PositionSet{},
		Removed: PositionSet{},
		Changed: PositionSet{},
	}
}

// Empty reports whether the diff contains no positions.
func (d LayerDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Dirty returns the union of added, removed, and changed positions.
func (d LayerDiff) Dirty() PositionSet {
	out := make(PositionSet, len(d.Added)+len(d.Removed)+len(d.Changed))
	out.AddAll(d.Added)
	out.AddAll(d.Removed)
	out.AddAll(d.Changed)
	return out
}

// diffLayer compares two snapshots of a layer. A nil previous layer is the
// first-render case: every current value is reported as added. Cost is
// proportional to the number of occupied positions, never the board area.
func diffLayer[T comparable](prev, cur *Layer[T]) LayerDiff {
	d := newLayerDiff()
	if prev == nil {
		for p := range cur.cells {
			d.Added.Add(p)
		}
		return d
	}
	for p, v := range cur.cells {
		if pv, ok := prev.cells[p]; !ok {
			d.Added.Add(p)
		} else if pv != v {
			d.Changed.Add(p)
		}
	}
	for p := range prev.cells {
		if _, ok := cur.cells[p]; !ok {
			d.Removed.Add(p)
		}
	}
	return d
}

// diffPaint expands the plain layer diff with neighbors whose rendered
// corner blend depends on an edited cell: corner intensities average across
// the four cells meeting at a grid point, so a corner edit restyles painted
// neighbors that did not themselves change. Only neighbors carrying corner
// components are pulled in; plain fills and edge strips stay local.
func diffPaint(prev, cur *Layer[Paint]) LayerDiff {
	d := diffLayer(prev, cur)
	edited := make([]Position, 0, len(d.Added)+len(d.Removed)+len(d.Changed))
	for _, set := range []PositionSet{d.Added, d.Removed, d.Changed} {
		for p := range set {
			edited = append(edited, p)
		}
	}
	for _, p := range edited {
		pv, _ := prev.Get(p)
		cv, _ := cur.Get(p)
		if pv.Corners == cv.Corners {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			for dr := -1; dr <= 1; dr++ {
				if dc == 0 && dr == 0 {
					continue
				}
				np := Pos(p.Col+dc, p.Row+dr)
				if d.Added.Has(np) || d.Removed.Has(np) || d.Changed.Has(np) {
					continue
				}
				if paint, ok := cur.Get(np); ok && paint.Corners != [4]float64{} {
					d.Changed.Add(np)
				}
			}
		}
	}
	return d
}

// diffLines compares the line collections as multisets. Every cell a changed
// line passes over is reported, not just the endpoints, so the compositor
// repaints the pixels between them too.
func diffLines(prev, cur []Line) LayerDiff {
	d := newLayerDiff()
	counts := make(map[Line]int, len(prev))
	for _, l := range prev {
		counts[l]++
	}
	for _, l := range cur {
		if counts[l] > 0 {
			counts[l]--
			continue
		}
		for _, p := range CellsOnSegment(l.From, l.To) {
			d.Added.Add(p)
		}
	}
	for l, n := range counts {
		if n > 0 {
			for _, p := range CellsOnSegment(l.From, l.To) {
				d.Removed.Add(p)
			}
		}
	}
	return d
}

// RenderDiff aggregates per-layer diffs between two BoardState snapshots.
// LayoutChanged is set when dimensions, visible range, or vertex size differ:
// every cached pixel rectangle is then invalid and the compositor must repaint
// everything rather than apply the per-position sets.
//
// RenderDiff values are transient: produced by Diff, consumed by one render,
// then discarded.
type RenderDiff struct {
	Stones     LayerDiff
	Markers    LayerDiff
	Ghosts     LayerDiff
	Heat       LayerDiff
	Paint      LayerDiff
	Selections LayerDiff
	Lines      LayerDiff

	LayoutChanged bool
}

// Empty reports whether nothing changed at all.
func (d RenderDiff) Empty() bool {
	return !d.LayoutChanged &&
		d.Stones.Empty() && d.Markers.Empty() && d.Ghosts.Empty() &&
		d.Heat.Empty() && d.Paint.Empty() && d.Selections.Empty() &&
		d.Lines.Empty()
}

// Dirty returns the union of every layer's dirty positions.
func (d RenderDiff) Dirty() PositionSet {
	out := PositionSet{}
	for _, ld := range []LayerDiff{d.Stones, d.Markers, d.Ghosts, d.Heat, d.Paint, d.Selections, d.Lines} {
		out.AddAll(ld.Added)
		out.AddAll(ld.Removed)
		out.AddAll(ld.Changed)
	}
	return out
}

// Diff computes the minimal update between two state snapshots. A nil
// previous state is the first render: every occupied position is added and
// LayoutChanged is set so static layers (background, grid, labels) paint too.
func Diff(prev, cur *BoardState) RenderDiff {
	if prev == nil {
		return RenderDiff{
			Stones:        diffLayer[StoneColor](nil, cur.stones),
			Markers:       diffLayer[Marker](nil, cur.markers),
			Ghosts:        diffLayer[Ghost](nil, cur.ghosts),
			Heat:          diffLayer[Heat](nil, cur.heat),
			Paint:         diffLayer[Paint](nil, cur.paint),
			Selections:    diffLayer[Selection](nil, cur.selections),
			Lines:         diffLines(nil, cur.lines),
			LayoutChanged: true,
		}
	}
	return RenderDiff{
		Stones:     diffLayer(prev.stones, cur.stones),
		Markers:    diffLayer(prev.markers, cur.markers),
		Ghosts:     diffLayer(prev.ghosts, cur.ghosts),
		Heat:       diffLayer(prev.heat, cur.heat),
		Paint:      diffPaint(prev.paint, cur.paint),
		Selections: diffLayer(prev.selections, cur.selections),
		Lines:      diffLines(prev.lines, cur.lines),
		LayoutChanged: prev.cols != cur.cols || prev.rows != cur.rows ||
			prev.gridRange != cur.gridRange ||
			prev.vertexSize != cur.vertexSize ||
			prev.showCoordinates != cur.showCoordinates,
	}
}
