package goban

// --- Raw input events ---

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// RawEventKind identifies a platform-level input event before routing.
type RawEventKind uint8

const (
	RawMove RawEventKind = iota
	RawDown
	RawUp
	RawKey
)

// RawEvent is one platform input event in widget-local pixel coordinates.
// The ebiten layer and the injection queue both produce these; the router
// does not care which.
type RawEvent struct {
	Kind      RawEventKind
	X, Y      float64
	Button    MouseButton
	Pointer   int // 0 = mouse, 1-9 = touch slots
	Key       NavKey
	Modifiers KeyModifiers
}

// --- Routed board events ---

// BoardEventKind identifies a grid-level event produced by the router.
type BoardEventKind uint8

const (
	EventClick BoardEventKind = iota
	EventDown
	EventUp
	EventHoverEnter
	EventHoverLeave
	EventKeyNav
)

// BoardEvent is an input event resolved to a grid position.
type BoardEvent struct {
	Kind      BoardEventKind
	Pos       Position
	Button    MouseButton
	Pointer   int
	Key       NavKey
	Modifiers KeyModifiers
}

// --- Per-pointer state ---

type routerPointer struct {
	down     bool
	button   MouseButton
	pressPos Position
	pressOn  bool // press landed on a cell
	hoverPos Position
	hovering bool
}

// --- Router ---

// InteractionRouter turns raw pointer and keyboard events into grid events.
// It owns the hover and press state per pointer and the keyboard focus
// cursor, and knows nothing about rendering.
//
// While the busy flag is set the router suppresses clicks, presses,
// releases, and new hover entries, but still reports hover leave so a cell
// highlighted before the busy period does not stay lit.
type InteractionRouter struct {
	vertexSize float64
	visible    GridRange
	origin     Vec2

	busy     bool
	pointers [maxPointers]routerPointer

	focus   Position
	focused bool
}

// NewInteractionRouter creates a router with no layout. Callers must call
// SetLayout before routing pointer events.
func NewInteractionRouter() *InteractionRouter {
	return &InteractionRouter{}
}

// SetLayout updates the geometry used for hit testing. The focus cursor is
// clamped into the new visible range.
func (r *InteractionRouter) SetLayout(vertexSize float64, visible GridRange, origin Vec2) {
	r.vertexSize = vertexSize
	r.visible = visible
	r.origin = origin
	if r.focused {
		r.focus = r.clampToVisible(r.focus)
	}
}

// SetBusy toggles busy suppression.
func (r *InteractionRouter) SetBusy(busy bool) {
	r.busy = busy
}

// Busy reports whether busy suppression is active.
func (r *InteractionRouter) Busy() bool {
	return r.busy
}

// Focus returns the keyboard focus cursor, if any key navigation happened.
func (r *InteractionRouter) Focus() (Position, bool) {
	return r.focus, r.focused
}

// SetFocus places the keyboard focus cursor, clamped to the visible range.
func (r *InteractionRouter) SetFocus(p Position) {
	r.focus = r.clampToVisible(p)
	r.focused = true
}

func (r *InteractionRouter) clampToVisible(p Position) Position {
	return Pos(
		clampInt(p.Col, r.visible.MinCol, r.visible.MaxCol),
		clampInt(p.Row, r.visible.MinRow, r.visible.MaxRow),
	)
}

// Route processes one raw event and returns the grid events it produced, in
// order. A single move can yield both a leave and an enter.
func (r *InteractionRouter) Route(ev RawEvent) []BoardEvent {
	if ev.Kind == RawKey {
		return r.routeKey(ev)
	}
	if ev.Pointer < 0 || ev.Pointer >= maxPointers {
		return nil
	}
	ps := &r.pointers[ev.Pointer]
	pos, onBoard := PixelToPosition(Vec2{ev.X, ev.Y}, r.vertexSize, r.visible, r.origin)

	var out []BoardEvent
	out = r.updateHover(out, ps, ev, pos, onBoard)

	switch ev.Kind {
	case RawDown:
		if ps.down {
			break // button held, not a new press
		}
		ps.down = true
		ps.button = ev.Button
		ps.pressPos = pos
		ps.pressOn = onBoard
		if !r.busy && onBoard {
			out = append(out, BoardEvent{
				Kind: EventDown, Pos: pos,
				Button: ev.Button, Pointer: ev.Pointer, Modifiers: ev.Modifiers,
			})
		}
	case RawUp:
		if !ps.down {
			break
		}
		// Click only when press and release land on the same cell, with the
		// button captured at press time.
		if !r.busy && ps.pressOn && onBoard && pos == ps.pressPos {
			out = append(out, BoardEvent{
				Kind: EventClick, Pos: pos,
				Button: ps.button, Pointer: ev.Pointer, Modifiers: ev.Modifiers,
			})
		}
		if !r.busy && onBoard {
			out = append(out, BoardEvent{
				Kind: EventUp, Pos: pos,
				Button: ps.button, Pointer: ev.Pointer, Modifiers: ev.Modifiers,
			})
		}
		ps.down = false
		ps.pressOn = false
	}
	return out
}

// updateHover fires leave/enter when the hovered cell changes. Leave always
// fires; enter is suppressed while busy.
func (r *InteractionRouter) updateHover(out []BoardEvent, ps *routerPointer, ev RawEvent, pos Position, onBoard bool) []BoardEvent {
	same := ps.hovering == onBoard && (!onBoard || ps.hoverPos == pos)
	if same {
		return out
	}
	if ps.hovering {
		out = append(out, BoardEvent{
			Kind: EventHoverLeave, Pos: ps.hoverPos,
			Pointer: ev.Pointer, Modifiers: ev.Modifiers,
		})
		ps.hovering = false
	}
	if onBoard && !r.busy {
		out = append(out, BoardEvent{
			Kind: EventHoverEnter, Pos: pos,
			Pointer: ev.Pointer, Modifiers: ev.Modifiers,
		})
		ps.hoverPos = pos
		ps.hovering = true
	}
	return out
}

// routeKey moves the focus cursor for arrow keys and synthesizes a click for
// the select key. The first arrow press lands the cursor on the top-left
// visible cell.
func (r *InteractionRouter) routeKey(ev RawEvent) []BoardEvent {
	switch ev.Key {
	case NavUp, NavDown, NavLeft, NavRight:
		if !r.focused {
			r.focus = Pos(r.visible.MinCol, r.visible.MinRow)
			r.focused = true
		} else {
			next := r.focus
			switch ev.Key {
			case NavUp:
				next.Row--
			case NavDown:
				next.Row++
			case NavLeft:
				next.Col--
			case NavRight:
				next.Col++
			}
			r.focus = r.clampToVisible(next)
		}
		return []BoardEvent{{
			Kind: EventKeyNav, Pos: r.focus,
			Key: ev.Key, Modifiers: ev.Modifiers,
		}}
	case NavSelect:
		if !r.focused || r.busy {
			return nil
		}
		return []BoardEvent{{
			Kind: EventClick, Pos: r.focus,
			Button: MouseButtonLeft, Key: NavSelect, Modifiers: ev.Modifiers,
		}}
	}
	return nil
}
