package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-freefly/common"
)

// fakeEvents records the callbacks a windowSource installs so tests can fire them.
type fakeEvents struct {
	keyDown   func(uint32)
	keyUp     func(uint32)
	scroll    func(dx, dy float32)
	move      func(x, y float64)
	captured  bool
	modeCalls int
}

func (f *fakeEvents) SetKeyDownCallback(cb func(uint32))          { f.keyDown = cb }
func (f *fakeEvents) SetKeyUpCallback(cb func(uint32))            { f.keyUp = cb }
func (f *fakeEvents) SetScrollCallback(cb func(dx, dy float32))   { f.scroll = cb }
func (f *fakeEvents) SetCursorMoveCallback(cb func(x, y float64)) { f.move = cb }
func (f *fakeEvents) SetCursorCaptured(c bool) {
	f.captured = c
	f.modeCalls++
}

func TestLogicalKey_RoundTrip(t *testing.T) {
	for _, k := range LogicalKeys() {
		got, ok := ParseLogicalKey(k.String())
		if !ok || got != k {
			t.Errorf("ParseLogicalKey(%q) != %v (got %v, %v)", k.String(), k, got, ok)
		}
	}
	if _, ok := ParseLogicalKey("jump"); ok {
		t.Error("ParseLogicalKey(\"jump\") should fail")
	}
	if s := LogicalKey(42).String(); s != "LogicalKey(42)" {
		t.Errorf("unexpected String() for out of range key: %q", s)
	}
}

func TestDefaultBindings_CoverAllKeys(t *testing.T) {
	b := DefaultBindings()
	for _, k := range LogicalKeys() {
		if _, ok := b[k]; !ok {
			t.Errorf("DefaultBindings missing %v", k)
		}
	}
}

func TestNewSettings_Defaults(t *testing.T) {
	s := NewSettings()
	if s.PointerScale != DefaultPointerScale {
		t.Errorf("PointerScale != %v (got %v)", DefaultPointerScale, s.PointerScale)
	}
	if s.Bindings[KeyForward] != common.KeyW {
		t.Errorf("forward binding != W (got %d)", s.Bindings[KeyForward])
	}

	custom := KeyBindings{KeyForward: common.KeyUp}
	s = NewSettings(WithBindings(custom), WithPointerScale(1))
	custom[KeyForward] = common.KeyDown
	if s.Bindings[KeyForward] != common.KeyUp {
		t.Error("WithBindings should copy the caller's map")
	}
	if _, ok := s.Bindings[KeyBack]; ok {
		t.Error("keys missing from custom bindings should be unbound")
	}
	if s.PointerScale != 1 {
		t.Errorf("PointerScale != 1 (got %v)", s.PointerScale)
	}
}

func TestWindowSource_KeyState(t *testing.T) {
	ev := &fakeEvents{}
	src := NewWindowSource(ev)

	ev.keyDown(common.KeyW)
	ev.keyDown(common.KeyLeftShift)
	if !src.IsHeld(KeyForward) || !src.IsHeld(KeySprint) {
		t.Fatal("forward and sprint should be held")
	}
	if src.IsHeld(KeyBack) {
		t.Error("back should not be held")
	}

	ev.keyUp(common.KeyW)
	if src.IsHeld(KeyForward) {
		t.Error("forward should be released")
	}
}

func TestWindowSource_UnboundKeyNeverHeld(t *testing.T) {
	ev := &fakeEvents{}
	src := NewWindowSource(ev, WithBindings(KeyBindings{KeyForward: common.KeyW}))
	ev.keyDown(common.KeyEsc)
	if src.IsHeld(KeyEscape) {
		t.Error("escape is unbound and should never report held")
	}
}

func TestWindowSource_SetBindings(t *testing.T) {
	ev := &fakeEvents{}
	src := NewWindowSource(ev)
	ev.keyDown(common.KeyUp)

	bindings := DefaultBindings()
	bindings[KeyForward] = common.KeyUp
	src.(Rebinder).SetBindings(bindings)
	bindings[KeyForward] = common.KeyW

	if !src.IsHeld(KeyForward) {
		t.Error("a key already down should report held under its new binding")
	}
	ev.keyDown(common.KeyW)
	ev.keyUp(common.KeyUp)
	if src.IsHeld(KeyForward) {
		t.Error("SetBindings should keep its own copy of the bindings")
	}
}

func TestWindowSource_PointerDeltaPerFrame(t *testing.T) {
	ev := &fakeEvents{}
	src := NewWindowSource(ev, WithPointerScale(0.5))

	// The first sample only establishes the reference position.
	ev.move(100, 100)
	ev.move(110, 96)
	ev.move(120, 90)

	src.BeginFrame()
	dx, dy := src.PointerDelta()
	if dx != 10 || dy != -5 {
		t.Errorf("frame 1 delta != (10, -5) (got (%v, %v))", dx, dy)
	}

	// Reads are stable until the next frame.
	dx, dy = src.PointerDelta()
	if dx != 10 || dy != -5 {
		t.Errorf("repeated read changed delta (got (%v, %v))", dx, dy)
	}

	src.BeginFrame()
	dx, dy = src.PointerDelta()
	if dx != 0 || dy != 0 {
		t.Errorf("frame 2 without motion should be zero (got (%v, %v))", dx, dy)
	}
}

func TestWindowSource_ScrollPerFrame(t *testing.T) {
	ev := &fakeEvents{}
	src := NewWindowSource(ev)

	ev.scroll(0, 1)
	ev.scroll(0, 2)
	src.BeginFrame()
	if _, dy := src.ScrollDelta(); dy != 3 {
		t.Errorf("scroll dy != 3 (got %v)", dy)
	}
	src.BeginFrame()
	if _, dy := src.ScrollDelta(); dy != 0 {
		t.Errorf("scroll should reset each frame (got %v)", dy)
	}
}

func TestWindowSource_CaptureRelease(t *testing.T) {
	ev := &fakeEvents{}
	src := NewWindowSource(ev)

	src.ReleasePointer()
	if ev.modeCalls != 0 {
		t.Error("releasing an uncaptured pointer should not touch the window")
	}

	src.CapturePointer()
	src.CapturePointer()
	if !ev.captured || !src.PointerCaptured() || ev.modeCalls != 1 {
		t.Errorf("capture should be applied once (captured=%v calls=%d)", ev.captured, ev.modeCalls)
	}

	// A warp right after capture must not produce motion.
	ev.move(0, 0)
	ev.move(5, 5)
	src.BeginFrame()
	if dx, dy := src.PointerDelta(); dx != 0.5 || dy != 0.5 {
		t.Errorf("delta after capture != (0.5, 0.5) (got (%v, %v))", dx, dy)
	}

	src.ReleasePointer()
	if ev.captured || src.PointerCaptured() || ev.modeCalls != 2 {
		t.Errorf("release should restore the pointer (captured=%v calls=%d)", ev.captured, ev.modeCalls)
	}
}
