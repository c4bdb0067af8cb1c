// Package input samples the small fixed key set and pointer motion a camera rig needs
// each frame. Concrete backends (window callbacks, polling game loops, scripted fakes)
// sit behind the Source interface.
package input

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-freefly/common"
)

// LogicalKey names an action rather than a physical key. Physical keys are
// resolved through KeyBindings.
type LogicalKey int

const (
	KeyForward LogicalKey = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyDown
	KeyUp
	KeySprint
	KeyEscape

	logicalKeyCount
)

var logicalKeyNames = [logicalKeyCount]string{
	KeyForward: "forward",
	KeyBack:    "back",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyDown:    "down",
	KeyUp:      "up",
	KeySprint:  "sprint",
	KeyEscape:  "escape",
}

func (k LogicalKey) String() string {
	if k < 0 || k >= logicalKeyCount {
		return fmt.Sprintf("LogicalKey(%d)", int(k))
	}
	return logicalKeyNames[k]
}

// LogicalKeys returns every logical key in declaration order.
func LogicalKeys() []LogicalKey {
	keys := make([]LogicalKey, 0, logicalKeyCount)
	for k := LogicalKey(0); k < logicalKeyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// ParseLogicalKey resolves a logical key from its lower-case name (e.g. "sprint").
//
// Parameters:
//   - name: the logical key name, case-insensitive
//
// Returns:
//   - LogicalKey: the resolved key
//   - bool: false if the name is unknown
func ParseLogicalKey(name string) (LogicalKey, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, kn := range logicalKeyNames {
		if kn == n {
			return LogicalKey(k), true
		}
	}
	return 0, false
}

// KeyBindings maps logical keys to virtual key codes (see common key codes).
type KeyBindings map[LogicalKey]uint32

// DefaultBindings returns the WASD + Q/E layout with left shift to sprint and escape to exit.
//
// Returns:
//   - KeyBindings: a fresh map the caller may modify
func DefaultBindings() KeyBindings {
	return KeyBindings{
		KeyForward: common.KeyW,
		KeyBack:    common.KeyS,
		KeyLeft:    common.KeyA,
		KeyRight:   common.KeyD,
		KeyDown:    common.KeyQ,
		KeyUp:      common.KeyE,
		KeySprint:  common.KeyLeftShift,
		KeyEscape:  common.KeyEsc,
	}
}

// Source is the per-frame view of input the camera rig polls.
// Implementations are driven from the frame thread only.
type Source interface {
	// BeginFrame latches the input accumulated since the previous frame.
	// PointerDelta and ScrollDelta report the latched values until the next call.
	BeginFrame()

	// IsHeld reports whether the key bound to k is currently held.
	//
	// Parameters:
	//   - k: the logical key to test
	//
	// Returns:
	//   - bool: true while held
	IsHeld(k LogicalKey) bool

	// PointerDelta returns this frame's pointer motion. Y grows downward (screen space).
	//
	// Returns:
	//   - dx, dy: pointer motion, already scaled by the source's pointer scale
	PointerDelta() (dx, dy float32)

	// ScrollDelta returns this frame's scroll wheel motion. Positive Y scrolls up.
	//
	// Returns:
	//   - dx, dy: scroll offsets
	ScrollDelta() (dx, dy float32)

	// CapturePointer hides the pointer and locks it to the view.
	CapturePointer()

	// ReleasePointer restores the pointer. Safe to call when not captured.
	ReleasePointer()

	// PointerCaptured reports whether the pointer is currently captured.
	//
	// Returns:
	//   - bool: true while captured
	PointerCaptured() bool
}

// Rebinder is implemented by sources whose key bindings can change while running.
type Rebinder interface {
	// SetBindings replaces the key bindings. Held state is tracked per physical key,
	// so a key already down reports as held under its new binding.
	//
	// Parameters:
	//   - b: the new bindings; the source keeps its own copy
	SetBindings(b KeyBindings)
}
