package goban

// EntityStore receives routed board events for the ECS bridge. See the ecs
// subpackage for a donburi-backed implementation.
type EntityStore interface {
	EmitEvent(event BoardEvent)
}

// Board is the top-level widget: it owns the visual state, the theme, the
// compositor, the interaction router, and the placement animator, and ties
// them together into an update/render loop.
//
// Mutate the state through State() (or the Set* forwarding helpers) at any
// rate; Board retains the snapshot from the last consumed render, so any
// number of edits between two renders collapse into one diff.
type Board struct {
	state *BoardState
	prev  *BoardState // snapshot consumed by the last render, nil forces a full repaint
	theme Theme

	compositor *Compositor
	router     *InteractionRouter
	animator   *StoneAnimator

	store      EntityStore
	testRunner *TestRunner
	debug      bool

	minVertexSize float64
	maxVertexSize float64

	injected    []RawEvent
	animDirty   []Position
	screenshots []string

	onClick      func(BoardEvent)
	onHoverEnter func(BoardEvent)
	onHoverLeave func(BoardEvent)
	onKeyNav     func(BoardEvent)
}

// NewBoard creates a board widget around an existing state. Passing nil
// starts with a standard 19x19 board.
func NewBoard(state *BoardState) *Board {
	if state == nil {
		state = StandardBoard()
	}
	b := &Board{
		state:         state,
		theme:         ThemeDefault(),
		compositor:    NewCompositor(),
		router:        NewInteractionRouter(),
		animator:      NewStoneAnimator(),
		minVertexSize: 12,
		maxVertexSize: 48,
	}
	b.compositor.StoneScale = b.animator.Scale
	b.syncLayout()
	return b
}

// State returns the mutable visual state. Edits become visible on the next
// render.
func (b *Board) State() *BoardState {
	return b.state
}

// Theme returns the active theme.
func (b *Board) Theme() Theme {
	return b.theme
}

// SetTheme replaces the theme and forces a full repaint on the next render,
// since a theme touches every layer.
func (b *Board) SetTheme(theme Theme) {
	b.theme = theme
	b.prev = nil
	b.syncLayout()
}

// SetAssets installs the texture source used for board and stone textures.
func (b *Board) SetAssets(assets AssetSource) {
	b.compositor.Assets = assets
	b.prev = nil
}

// Invalidate forces a full repaint on the next render, for callers whose
// drawing surface lost its contents.
func (b *Board) Invalidate() {
	b.prev = nil
}

// SetDiagnostics installs the callback for non-fatal rendering reports.
func (b *Board) SetDiagnostics(fn func(error)) {
	b.compositor.Diagnostics = fn
}

// SetEntityStore installs the ECS bridge. Every routed event is mirrored to
// the store in addition to the Board's own callbacks.
func (b *Board) SetEntityStore(store EntityStore) {
	b.store = store
}

// SetDebugMode toggles per-frame render statistics on stderr.
func (b *Board) SetDebugMode(enabled bool) {
	b.debug = enabled
}

// SetBusy toggles busy mode: input-driven clicks, presses, releases, and new
// hover highlights are suppressed until the flag clears.
func (b *Board) SetBusy(busy bool) {
	b.router.SetBusy(busy)
}

// Busy reports whether busy mode is active.
func (b *Board) Busy() bool {
	return b.router.Busy()
}

// SetVertexSizeBounds sets the clamp range used by Resize.
func (b *Board) SetVertexSizeBounds(min, max float64) error {
	if min > max {
		return ErrInvalidConstraint
	}
	b.minVertexSize = min
	b.maxVertexSize = max
	return nil
}

// Resize fits the board into a container of the given pixel size by solving
// for the largest vertex size that fits, clamped to the configured bounds.
// The border and the coordinate band count against the container, so the
// rendered widget stays inside it. The layout change flows through the next
// render's diff.
func (b *Board) Resize(containerWidth, containerHeight float64) (BoundedSizeResult, error) {
	r := b.state.Range()
	cols, rows := r.Cols(), r.Rows()
	if b.state.ShowCoordinates() {
		// The coordinate band is one vertex-size strip on each side.
		cols += 2
		rows += 2
	}
	chrome := 2 * b.theme.BorderWidth
	res, err := SolveVertexSize(containerWidth-chrome, containerHeight-chrome, cols, rows, b.minVertexSize, b.maxVertexSize)
	if err != nil {
		return res, err
	}
	if err := b.state.SetVertexSize(res.VertexSize); err != nil {
		return res, err
	}
	b.syncLayout()
	return res, nil
}

// --- Event callbacks ---

// OnClick sets the handler for resolved clicks (pointer or keyboard select).
func (b *Board) OnClick(fn func(BoardEvent)) { b.onClick = fn }

// OnHoverEnter sets the handler for the pointer entering a cell.
func (b *Board) OnHoverEnter(fn func(BoardEvent)) { b.onHoverEnter = fn }

// OnHoverLeave sets the handler for the pointer leaving a cell.
func (b *Board) OnHoverLeave(fn func(BoardEvent)) { b.onHoverLeave = fn }

// OnKeyNav sets the handler for focus cursor movement.
func (b *Board) OnKeyNav(fn func(BoardEvent)) { b.onKeyNav = fn }

// --- Stones with animation ---

// PlaceStone sets a stone and starts its grow-in animation.
func (b *Board) PlaceStone(p Position, c StoneColor) error {
	if err := b.state.SetStone(p, c); err != nil {
		return err
	}
	b.animator.Start(p)
	return nil
}

// --- Input ---

// HandleRaw routes one raw input event immediately and dispatches the
// resulting board events.
func (b *Board) HandleRaw(ev RawEvent) {
	for _, out := range b.router.Route(ev) {
		b.dispatch(out)
	}
}

// Tooltip returns the tooltip registered at a position, if any.
func (b *Board) Tooltip(p Position) (string, bool) {
	return b.compositor.TooltipAt(p)
}

// Focus returns the keyboard focus cursor, if any.
func (b *Board) Focus() (Position, bool) {
	return b.router.Focus()
}

func (b *Board) dispatch(ev BoardEvent) {
	switch ev.Kind {
	case EventClick:
		if b.onClick != nil {
			b.onClick(ev)
		}
	case EventHoverEnter:
		if b.onHoverEnter != nil {
			b.onHoverEnter(ev)
		}
	case EventHoverLeave:
		if b.onHoverLeave != nil {
			b.onHoverLeave(ev)
		}
	case EventKeyNav:
		if b.onKeyNav != nil {
			b.onKeyNav(ev)
		}
	}
	if b.store != nil {
		b.store.EmitEvent(ev)
	}
}

// --- Update / render ---

// Update advances animations by dt seconds, steps the attached test runner,
// and drains injected input.
func (b *Board) Update(dt float32) {
	if b.testRunner != nil {
		b.testRunner.step(b)
	}
	b.animDirty = append(b.animDirty, b.animator.Tick(dt)...)
	b.drainInjected()
}

// RenderInto diffs the state against the last consumed snapshot, paints the
// difference into the canvas, and retains a new snapshot. The returned diff
// is what was rendered; callers only needing the repaint can ignore it.
func (b *Board) RenderInto(cv Canvas) RenderDiff {
	diff := Diff(b.prev, b.state)

	// Animating stones repaint even when the state itself did not change.
	if len(b.animDirty) > 0 && !diff.LayoutChanged {
		if diff.Stones.Changed == nil {
			diff.Stones.Changed = PositionSet{}
		}
		for _, p := range b.animDirty {
			if _, ok := b.state.Stone(p); ok {
				diff.Stones.Changed.Add(p)
			}
		}
	}
	b.animDirty = b.animDirty[:0]

	b.compositor.Render(b.state, diff, b.theme, cv)
	b.prev = b.state.Snapshot()
	b.syncLayout()

	if b.debug {
		logRenderStats(diff)
	}
	return diff
}

// syncLayout pushes the current geometry into the router so hit testing
// matches what the compositor drew.
func (b *Board) syncLayout() {
	b.router.SetLayout(b.state.VertexSize(), b.state.Range(), BoardOrigin(b.state, b.theme))
}
