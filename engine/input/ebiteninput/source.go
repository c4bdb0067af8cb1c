// Package ebiteninput adapts Ebitengine's polled input API to input.Source.
package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Carmen-Shannon/oxy-freefly/common"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
)

// virtualKeys maps the engine's virtual key codes to Ebitengine keys.
var virtualKeys = map[uint32]ebiten.Key{
	'A': ebiten.KeyA, 'B': ebiten.KeyB, 'C': ebiten.KeyC, 'D': ebiten.KeyD,
	'E': ebiten.KeyE, 'F': ebiten.KeyF, 'G': ebiten.KeyG, 'H': ebiten.KeyH,
	'I': ebiten.KeyI, 'J': ebiten.KeyJ, 'K': ebiten.KeyK, 'L': ebiten.KeyL,
	'M': ebiten.KeyM, 'N': ebiten.KeyN, 'O': ebiten.KeyO, 'P': ebiten.KeyP,
	'Q': ebiten.KeyQ, 'R': ebiten.KeyR, 'S': ebiten.KeyS, 'T': ebiten.KeyT,
	'U': ebiten.KeyU, 'V': ebiten.KeyV, 'W': ebiten.KeyW, 'X': ebiten.KeyX,
	'Y': ebiten.KeyY, 'Z': ebiten.KeyZ,

	'0': ebiten.KeyDigit0, '1': ebiten.KeyDigit1, '2': ebiten.KeyDigit2,
	'3': ebiten.KeyDigit3, '4': ebiten.KeyDigit4, '5': ebiten.KeyDigit5,
	'6': ebiten.KeyDigit6, '7': ebiten.KeyDigit7, '8': ebiten.KeyDigit8,
	'9': ebiten.KeyDigit9,

	common.KeySpace:        ebiten.KeySpace,
	common.KeyEsc:          ebiten.KeyEscape,
	common.KeyUp:           ebiten.KeyArrowUp,
	common.KeyDown:         ebiten.KeyArrowDown,
	common.KeyLeft:         ebiten.KeyArrowLeft,
	common.KeyRight:        ebiten.KeyArrowRight,
	common.KeyPageUp:       ebiten.KeyPageUp,
	common.KeyPageDown:     ebiten.KeyPageDown,
	common.KeyBackspace:    ebiten.KeyBackspace,
	common.KeyLeftShift:    ebiten.KeyShiftLeft,
	common.KeyRightShift:   ebiten.KeyShiftRight,
	common.KeyLeftControl:  ebiten.KeyControlLeft,
	common.KeyRightControl: ebiten.KeyControlRight,
}

// source polls Ebitengine once per frame. It must be used from the game's Update.
type source struct {
	settings input.Settings
	keys     map[input.LogicalKey]ebiten.Key

	hasLast      bool
	lastX, lastY int

	frameDX, frameDY           float32
	frameScrollX, frameScrollY float32

	captured bool
}

var (
	_ input.Source   = &source{}
	_ input.Rebinder = &source{}
)

// NewSource creates an input.Source backed by Ebitengine's polling API.
// Bindings to virtual keys with no Ebitengine equivalent are ignored.
//
// Parameters:
//   - options: functional options for bindings and pointer scale
//
// Returns:
//   - input.Source: the Ebitengine-backed source
func NewSource(options ...input.SourceOption) input.Source {
	s := &source{
		settings: input.NewSettings(options...),
	}
	s.keys = resolveKeys(s.settings.Bindings)
	return s
}

// resolveKeys translates bindings to Ebitengine keys, dropping unsupported codes.
func resolveKeys(bindings input.KeyBindings) map[input.LogicalKey]ebiten.Key {
	keys := make(map[input.LogicalKey]ebiten.Key, len(bindings))
	for lk, code := range bindings {
		if k, ok := virtualKeys[code]; ok {
			keys[lk] = k
		}
	}
	return keys
}

func (s *source) BeginFrame() {
	x, y := ebiten.CursorPosition()
	if s.hasLast {
		scale := s.settings.PointerScale
		s.frameDX = float32(x-s.lastX) * scale
		s.frameDY = float32(y-s.lastY) * scale
	} else {
		s.frameDX, s.frameDY = 0, 0
		s.hasLast = true
	}
	s.lastX, s.lastY = x, y

	wx, wy := ebiten.Wheel()
	s.frameScrollX, s.frameScrollY = float32(wx), float32(wy)
}

func (s *source) IsHeld(k input.LogicalKey) bool {
	key, ok := s.keys[k]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

func (s *source) PointerDelta() (dx, dy float32) {
	return s.frameDX, s.frameDY
}

func (s *source) ScrollDelta() (dx, dy float32) {
	return s.frameScrollX, s.frameScrollY
}

func (s *source) CapturePointer() {
	if s.captured {
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	s.captured = true
	s.hasLast = false
}

func (s *source) ReleasePointer() {
	if !s.captured {
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	s.captured = false
	s.hasLast = false
}

func (s *source) PointerCaptured() bool {
	return s.captured
}

func (s *source) SetBindings(b input.KeyBindings) {
	input.WithBindings(b)(&s.settings)
	s.keys = resolveKeys(s.settings.Bindings)
}
