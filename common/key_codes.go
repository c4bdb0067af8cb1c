package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW         = 87  // W key (ASCII)
	KeyA         = 65  // A key (ASCII)
	KeyS         = 83  // S key (ASCII)
	KeyD         = 68  // D key (ASCII)
	KeyQ         = 81  // Q key (ASCII)
	KeyE         = 69  // E key (ASCII)
	KeyC         = 67  // C key (ASCII)
	KeyF         = 70  // F key (ASCII)
	KeyR         = 82  // R key (ASCII)
	KeyX         = 88  // X key (ASCII)
	KeyZ         = 90  // Z key (ASCII)
	KeySpace     = 32  // Spacebar (ASCII)
	KeyEsc       = 256 // Escape key (GLFW)
	KeyUp        = 265 // Up arrow (GLFW)
	KeyDown      = 264 // Down arrow (GLFW)
	KeyLeft      = 263 // Left arrow (GLFW)
	KeyRight     = 262 // Right arrow (GLFW)
	KeyPageUp    = 266 // Page Up (GLFW)
	KeyPageDown  = 267 // Page Down (GLFW)
	KeyBackspace = 259 // Backspace key (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
)

// keyNames maps the upper-case names accepted in config files to key codes.
// Single letters and digits are resolved from their ASCII value and are not listed.
var keyNames = map[string]uint32{
	"SPACE":         KeySpace,
	"ESCAPE":        KeyEsc,
	"ESC":           KeyEsc,
	"UP":            KeyUp,
	"DOWN":          KeyDown,
	"LEFT":          KeyLeft,
	"RIGHT":         KeyRight,
	"PAGE_UP":       KeyPageUp,
	"PAGE_DOWN":     KeyPageDown,
	"BACKSPACE":     KeyBackspace,
	"LEFT_SHIFT":    KeyLeftShift,
	"RIGHT_SHIFT":   KeyRightShift,
	"LEFT_CONTROL":  KeyLeftControl,
	"RIGHT_CONTROL": KeyRightControl,
}

// KeyCodeByName resolves a key name such as "W", "7", "LEFT_SHIFT" or "escape"
// to its virtual key code. Names are case-insensitive.
//
// Parameters:
//   - name: the key name
//
// Returns:
//   - uint32: the virtual key code
//   - bool: false if the name is not recognised
func KeyCodeByName(name string) (uint32, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if len(n) == 1 {
		c := n[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return uint32(c), true
		}
	}
	code, ok := keyNames[n]
	return code, ok
}
