package goban

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputPoller reads ebiten input state once per frame and converts it into
// the edge-based raw events the router consumes. Offset is the widget's
// top-left corner in window coordinates; cursor and touch positions are
// translated into widget-local pixels before routing.
type InputPoller struct {
	Offset Vec2

	mouseDown   bool
	mouseButton MouseButton
	lastX       float64
	lastY       float64
	hasLast     bool

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	touchLast    [maxPointers]Vec2
	prevTouchIDs []ebiten.TouchID
}

// Poll reads the current input state and feeds the derived events to the
// board. Call once per Update.
func (ip *InputPoller) Poll(b *Board) {
	mods := readModifiers()
	ip.pollMouse(b, mods)
	ip.pollTouches(b, mods)
	ip.pollKeys(b, mods)
}

func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// pollMouse handles pointer 0.
func (ip *InputPoller) pollMouse(b *Board, mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()
	x := float64(mx) - ip.Offset.X
	y := float64(my) - ip.Offset.Y

	// Detect which button is pressed. If the pointer is already down, keep
	// the button captured at press time.
	var pressed bool
	button := ip.mouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if !ip.mouseDown {
			if left {
				button = MouseButtonLeft
			} else if right {
				button = MouseButtonRight
			} else {
				button = MouseButtonMiddle
			}
		}
	}

	if !ip.hasLast || x != ip.lastX || y != ip.lastY {
		b.HandleRaw(RawEvent{Kind: RawMove, X: x, Y: y, Modifiers: mods})
		ip.lastX = x
		ip.lastY = y
		ip.hasLast = true
	}
	if pressed && !ip.mouseDown {
		ip.mouseDown = true
		ip.mouseButton = button
		b.HandleRaw(RawEvent{Kind: RawDown, X: x, Y: y, Button: button, Modifiers: mods})
	} else if !pressed && ip.mouseDown {
		ip.mouseDown = false
		b.HandleRaw(RawEvent{Kind: RawUp, X: x, Y: y, Button: ip.mouseButton, Modifiers: mods})
	}
}

// pollTouches handles pointers 1-9. Touches report the left button.
func (ip *InputPoller) pollTouches(b *Board, mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(ip.prevTouchIDs[:0])
	ip.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := ip.touchSlot(tid)
		if slot < 0 {
			continue
		}
		tx, ty := ebiten.TouchPosition(tid)
		x := float64(tx) - ip.Offset.X
		y := float64(ty) - ip.Offset.Y

		if inpututil.TouchPressDuration(tid) == 1 {
			b.HandleRaw(RawEvent{Kind: RawDown, X: x, Y: y, Button: MouseButtonLeft, Pointer: slot, Modifiers: mods})
		} else {
			b.HandleRaw(RawEvent{Kind: RawMove, X: x, Y: y, Pointer: slot, Modifiers: mods})
		}
		ip.touchLast[slot] = Vec2{x, y}
		activeSlots[slot] = true
	}

	// Release slots whose touch ended this frame.
	for i := 1; i < maxPointers; i++ {
		if ip.touchUsed[i] && !activeSlots[i] {
			last := ip.touchLast[i]
			b.HandleRaw(RawEvent{Kind: RawUp, X: last.X, Y: last.Y, Button: MouseButtonLeft, Pointer: i, Modifiers: mods})
			ip.touchUsed[i] = false
			ip.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9), allocating a new
// one when the touch is unseen. Returns -1 if all slots are taken.
func (ip *InputPoller) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if ip.touchUsed[i] && ip.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !ip.touchUsed[i] {
			ip.touchUsed[i] = true
			ip.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// navKeyBindings maps physical keys to navigation keys. Both arrows and vi
// keys move the focus cursor; enter and space activate it.
var navKeyBindings = []struct {
	key ebiten.Key
	nav NavKey
}{
	{ebiten.KeyArrowUp, NavUp},
	{ebiten.KeyArrowDown, NavDown},
	{ebiten.KeyArrowLeft, NavLeft},
	{ebiten.KeyArrowRight, NavRight},
	{ebiten.KeyK, NavUp},
	{ebiten.KeyJ, NavDown},
	{ebiten.KeyH, NavLeft},
	{ebiten.KeyL, NavRight},
	{ebiten.KeyEnter, NavSelect},
	{ebiten.KeySpace, NavSelect},
}

func (ip *InputPoller) pollKeys(b *Board, mods KeyModifiers) {
	for _, bind := range navKeyBindings {
		if inpututil.IsKeyJustPressed(bind.key) {
			b.HandleRaw(RawEvent{Kind: RawKey, Key: bind.nav, Modifiers: mods})
		}
	}
}
