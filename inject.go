package goban

// InjectPress queues a pointer press at the given widget-local pixel
// coordinates (left button). The event is consumed on the next Update call.
func (b *Board) InjectPress(x, y float64) {
	b.injected = append(b.injected, RawEvent{Kind: RawDown, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectMove queues a pointer move to the given coordinates.
func (b *Board) InjectMove(x, y float64) {
	b.injected = append(b.injected, RawEvent{Kind: RawMove, X: x, Y: y})
}

// InjectRelease queues a pointer release at the given coordinates.
func (b *Board) InjectRelease(x, y float64) {
	b.injected = append(b.injected, RawEvent{Kind: RawUp, X: x, Y: y, Button: MouseButtonLeft})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same coordinates.
func (b *Board) InjectClick(x, y float64) {
	b.InjectPress(x, y)
	b.InjectRelease(x, y)
}

// InjectClickCell is a convenience that clicks the center of a cell.
func (b *Board) InjectClickCell(p Position) {
	c := VertexCenter(p, b.state.VertexSize(), BoardOrigin(b.state, b.theme))
	b.InjectClick(c.X, c.Y)
}

// InjectKey queues a keyboard navigation key.
func (b *Board) InjectKey(key NavKey) {
	b.injected = append(b.injected, RawEvent{Kind: RawKey, Key: key})
}

// drainInjected routes every queued synthetic event in order.
func (b *Board) drainInjected() {
	for _, ev := range b.injected {
		b.HandleRaw(ev)
	}
	b.injected = b.injected[:0]
}
