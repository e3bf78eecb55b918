package goban

import (
	"testing"
)

func newTestRouter() *InteractionRouter {
	r := NewInteractionRouter()
	r.SetLayout(24, FullRange(19, 19), Vec2{})
	return r
}

func cellCenterPx(p Position) (float64, float64) {
	c := VertexCenter(p, 24, Vec2{})
	return c.X, c.Y
}

func kinds(events []BoardEvent) []BoardEventKind {
	out := make([]BoardEventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

// --- Hover ---

func TestRouteHoverEnter(t *testing.T) {
	r := newTestRouter()
	x, y := cellCenterPx(Pos(3, 2))
	events := r.Route(RawEvent{Kind: RawMove, X: x, Y: y})
	if len(events) != 1 || events[0].Kind != EventHoverEnter || events[0].Pos != Pos(3, 2) {
		t.Fatalf("events = %+v", events)
	}
}

func TestRouteHoverMoveBetweenCells(t *testing.T) {
	r := newTestRouter()
	x, y := cellCenterPx(Pos(3, 2))
	r.Route(RawEvent{Kind: RawMove, X: x, Y: y})

	x, y = cellCenterPx(Pos(4, 2))
	events := r.Route(RawEvent{Kind: RawMove, X: x, Y: y})
	got := kinds(events)
	if len(got) != 2 || got[0] != EventHoverLeave || got[1] != EventHoverEnter {
		t.Fatalf("events = %+v", events)
	}
	if events[0].Pos != Pos(3, 2) || events[1].Pos != Pos(4, 2) {
		t.Errorf("positions = %v, %v", events[0].Pos, events[1].Pos)
	}
}

func TestRouteHoverMoveWithinCellSilent(t *testing.T) {
	r := newTestRouter()
	x, y := cellCenterPx(Pos(3, 2))
	r.Route(RawEvent{Kind: RawMove, X: x, Y: y})
	if events := r.Route(RawEvent{Kind: RawMove, X: x + 3, Y: y + 3}); len(events) != 0 {
		t.Errorf("movement within a cell emitted %+v", events)
	}
}

func TestRouteHoverLeaveOffBoard(t *testing.T) {
	r := newTestRouter()
	x, y := cellCenterPx(Pos(0, 0))
	r.Route(RawEvent{Kind: RawMove, X: x, Y: y})
	events := r.Route(RawEvent{Kind: RawMove, X: -50, Y: -50})
	if len(events) != 1 || events[0].Kind != EventHoverLeave {
		t.Fatalf("events = %+v", events)
	}
}

// --- Clicks ---

func TestRouteClick(t *testing.T) {
	r := newTestRouter()
	x, y := cellCenterPx(Pos(5, 5))
	r.Route(RawEvent{Kind: RawMove, X: x, Y: y})
	down := r.Route(RawEvent{Kind: RawDown, X: x, Y: y, Button: MouseButtonLeft})
	if len(down) != 1 || down[0].Kind != EventDown {
		t.Fatalf("down events = %+v", down)
	}
	up := r.Route(RawEvent{Kind: RawUp, X: x, Y: y, Button: MouseButtonLeft})
	got := kinds(up)
	if len(got) != 2 || got[0] != EventClick || got[1] != EventUp {
		t.Fatalf("up events = %+v", up)
	}
	if up[0].Pos != Pos(5, 5) || up[0].Button != MouseButtonLeft {
		t.Errorf("click = %+v", up[0])
	}
}

func TestRouteNoClickAcrossCells(t *testing.T) {
	r := newTestRouter()
	x, y := cellCenterPx(Pos(5, 5))
	r.Route(RawEvent{Kind: RawDown, X: x, Y: y, Button: MouseButtonLeft})
	x2, y2 := cellCenterPx(Pos(6, 5))
	events := r.Route(RawEvent{Kind: RawUp, X: x2, Y: y2, Button: MouseButtonLeft})
	for _, ev := range events {
		if ev.Kind == EventClick {
			t.Errorf("press and release on different cells produced a click")
		}
	}
}

func TestRouteClickKeepsPressButton(t *testing.T) {
	r := newTestRouter()
	x, y := cellCenterPx(Pos(2, 2))
	r.Route(RawEvent{Kind: RawDown, X: x, Y: y, Button: MouseButtonRight})
	events := r.Route(RawEvent{Kind: RawUp, X: x, Y: y, Button: MouseButtonLeft})
	for _, ev := range events {
		if ev.Kind == EventClick && ev.Button != MouseButtonRight {
			t.Errorf("click button = %v, want the button captured at press", ev.Button)
		}
	}
}

func TestRouteTouchPointersIndependent(t *testing.T) {
	r := newTestRouter()
	x1, y1 := cellCenterPx(Pos(2, 2))
	x2, y2 := cellCenterPx(Pos(10, 10))
	r.Route(RawEvent{Kind: RawDown, X: x1, Y: y1, Pointer: 1, Button: MouseButtonLeft})
	r.Route(RawEvent{Kind: RawDown, X: x2, Y: y2, Pointer: 2, Button: MouseButtonLeft})

	events := r.Route(RawEvent{Kind: RawUp, X: x1, Y: y1, Pointer: 1, Button: MouseButtonLeft})
	clicked := false
	for _, ev := range events {
		if ev.Kind == EventClick && ev.Pos == Pos(2, 2) && ev.Pointer == 1 {
			clicked = true
		}
	}
	if !clicked {
		t.Errorf("touch slot 1 release did not click: %+v", events)
	}
}

// --- Busy suppression ---

func TestBusySuppressesClicksKeepsLeave(t *testing.T) {
	r := newTestRouter()
	x, y := cellCenterPx(Pos(5, 5))
	r.Route(RawEvent{Kind: RawMove, X: x, Y: y})

	r.SetBusy(true)
	if events := r.Route(RawEvent{Kind: RawDown, X: x, Y: y, Button: MouseButtonLeft}); len(events) != 0 {
		t.Errorf("busy down emitted %+v", events)
	}
	if events := r.Route(RawEvent{Kind: RawUp, X: x, Y: y, Button: MouseButtonLeft}); len(events) != 0 {
		t.Errorf("busy up emitted %+v", events)
	}

	// Leave still fires for the pre-busy hover; enter stays suppressed.
	x2, y2 := cellCenterPx(Pos(6, 5))
	events := r.Route(RawEvent{Kind: RawMove, X: x2, Y: y2})
	if len(events) != 1 || events[0].Kind != EventHoverLeave || events[0].Pos != Pos(5, 5) {
		t.Fatalf("busy move emitted %+v", events)
	}
}

func TestBusyClearRestoresRouting(t *testing.T) {
	r := newTestRouter()
	r.SetBusy(true)
	r.SetBusy(false)
	x, y := cellCenterPx(Pos(1, 1))
	events := r.Route(RawEvent{Kind: RawMove, X: x, Y: y})
	if len(events) != 1 || events[0].Kind != EventHoverEnter {
		t.Fatalf("events after busy cleared = %+v", events)
	}
}

// --- Keyboard navigation ---

func TestKeyNavFocusStartsTopLeft(t *testing.T) {
	r := newTestRouter()
	events := r.Route(RawEvent{Kind: RawKey, Key: NavRight})
	if len(events) != 1 || events[0].Kind != EventKeyNav || events[0].Pos != Pos(0, 0) {
		t.Fatalf("first nav = %+v", events)
	}
}

func TestKeyNavMovesAndClamps(t *testing.T) {
	r := newTestRouter()
	r.SetFocus(Pos(0, 0))
	r.Route(RawEvent{Kind: RawKey, Key: NavRight})
	r.Route(RawEvent{Kind: RawKey, Key: NavDown})
	if focus, _ := r.Focus(); focus != Pos(1, 1) {
		t.Errorf("focus = %v, want (1, 1)", focus)
	}

	for i := 0; i < 30; i++ {
		r.Route(RawEvent{Kind: RawKey, Key: NavLeft})
		r.Route(RawEvent{Kind: RawKey, Key: NavUp})
	}
	if focus, _ := r.Focus(); focus != Pos(0, 0) {
		t.Errorf("focus after clamping = %v, want (0, 0)", focus)
	}
}

func TestKeyNavClampsToVisibleRange(t *testing.T) {
	r := NewInteractionRouter()
	r.SetLayout(24, GridRange{MinCol: 5, MaxCol: 10, MinRow: 5, MaxRow: 10}, Vec2{})
	events := r.Route(RawEvent{Kind: RawKey, Key: NavDown})
	if events[0].Pos != Pos(5, 5) {
		t.Errorf("first focus = %v, want the range corner", events[0].Pos)
	}
	for i := 0; i < 20; i++ {
		r.Route(RawEvent{Kind: RawKey, Key: NavRight})
	}
	if focus, _ := r.Focus(); focus != Pos(10, 5) {
		t.Errorf("focus = %v, want clamped to MaxCol", focus)
	}
}

func TestKeySelectClicksFocus(t *testing.T) {
	r := newTestRouter()
	r.SetFocus(Pos(9, 9))
	events := r.Route(RawEvent{Kind: RawKey, Key: NavSelect})
	if len(events) != 1 || events[0].Kind != EventClick || events[0].Pos != Pos(9, 9) {
		t.Fatalf("select events = %+v", events)
	}
	if events[0].Key != NavSelect {
		t.Error("synthetic click should carry the select key")
	}
}

func TestKeySelectWithoutFocusSilent(t *testing.T) {
	r := newTestRouter()
	if events := r.Route(RawEvent{Kind: RawKey, Key: NavSelect}); len(events) != 0 {
		t.Errorf("unfocused select emitted %+v", events)
	}
}

func TestKeySelectSuppressedWhileBusy(t *testing.T) {
	r := newTestRouter()
	r.SetFocus(Pos(3, 3))
	r.SetBusy(true)
	if events := r.Route(RawEvent{Kind: RawKey, Key: NavSelect}); len(events) != 0 {
		t.Errorf("busy select emitted %+v", events)
	}
}

func TestSetLayoutClampsFocus(t *testing.T) {
	r := newTestRouter()
	r.SetFocus(Pos(18, 18))
	r.SetLayout(24, GridRange{MinCol: 0, MaxCol: 8, MinRow: 0, MaxRow: 8}, Vec2{})
	if focus, _ := r.Focus(); focus != Pos(8, 8) {
		t.Errorf("focus after range shrink = %v", focus)
	}
}
