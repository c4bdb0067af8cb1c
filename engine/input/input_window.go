package input

// EventSource is the callback surface of a platform window that a windowSource
// listens to. window.Window satisfies it.
type EventSource interface {
	SetKeyDownCallback(callback func(keyCode uint32))
	SetKeyUpCallback(callback func(keyCode uint32))
	SetScrollCallback(callback func(dx, dy float32))
	SetCursorMoveCallback(callback func(x, y float64))
	SetCursorCaptured(captured bool)
}

// windowSource turns window callbacks into per-frame input state.
// Callbacks and frame reads happen on the same thread (the window message loop),
// so no locking is needed.
type windowSource struct {
	events   EventSource
	settings Settings

	held map[uint32]bool

	// cursor tracking between callbacks
	hasLast      bool
	lastX, lastY float64

	// accumulated since the last BeginFrame
	accDX, accDY           float32
	accScrollX, accScrollY float32

	// latched for the current frame
	frameDX, frameDY           float32
	frameScrollX, frameScrollY float32

	captured bool
}

var (
	_ Source   = &windowSource{}
	_ Rebinder = &windowSource{}
)

// NewWindowSource creates a Source fed by window callbacks.
// It installs key, scroll and cursor callbacks on events, replacing any existing ones.
//
// Parameters:
//   - events: the window to listen to
//   - options: functional options for bindings and pointer scale
//
// Returns:
//   - Source: the window-backed input source
func NewWindowSource(events EventSource, options ...SourceOption) Source {
	ws := &windowSource{
		events:   events,
		settings: NewSettings(options...),
		held:     make(map[uint32]bool),
	}

	events.SetKeyDownCallback(func(keyCode uint32) {
		ws.held[keyCode] = true
	})
	events.SetKeyUpCallback(func(keyCode uint32) {
		delete(ws.held, keyCode)
	})
	events.SetScrollCallback(func(dx, dy float32) {
		ws.accScrollX += dx
		ws.accScrollY += dy
	})
	events.SetCursorMoveCallback(ws.onCursorMove)

	return ws
}

func (ws *windowSource) onCursorMove(x, y float64) {
	if !ws.hasLast {
		ws.lastX, ws.lastY = x, y
		ws.hasLast = true
		return
	}
	ws.accDX += float32(x - ws.lastX)
	ws.accDY += float32(y - ws.lastY)
	ws.lastX, ws.lastY = x, y
}

func (ws *windowSource) BeginFrame() {
	scale := ws.settings.PointerScale
	ws.frameDX, ws.frameDY = ws.accDX*scale, ws.accDY*scale
	ws.frameScrollX, ws.frameScrollY = ws.accScrollX, ws.accScrollY
	ws.accDX, ws.accDY = 0, 0
	ws.accScrollX, ws.accScrollY = 0, 0
}

func (ws *windowSource) IsHeld(k LogicalKey) bool {
	code, ok := ws.settings.Bindings[k]
	if !ok {
		return false
	}
	return ws.held[code]
}

func (ws *windowSource) PointerDelta() (dx, dy float32) {
	return ws.frameDX, ws.frameDY
}

func (ws *windowSource) ScrollDelta() (dx, dy float32) {
	return ws.frameScrollX, ws.frameScrollY
}

func (ws *windowSource) CapturePointer() {
	if ws.captured {
		return
	}
	ws.events.SetCursorCaptured(true)
	ws.captured = true
	// The platform may warp the cursor when switching modes; do not count the jump as motion.
	ws.hasLast = false
	ws.accDX, ws.accDY = 0, 0
}

func (ws *windowSource) ReleasePointer() {
	if !ws.captured {
		return
	}
	ws.events.SetCursorCaptured(false)
	ws.captured = false
	ws.hasLast = false
}

func (ws *windowSource) PointerCaptured() bool {
	return ws.captured
}

func (ws *windowSource) SetBindings(b KeyBindings) {
	WithBindings(b)(&ws.settings)
}
