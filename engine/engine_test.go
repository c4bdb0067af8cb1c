package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-freefly/engine/camera"
)

// The engine is the host the free-fly controller reports escape to.
var _ camera.SessionHost = &engine{}

// fakeWindow runs its update callback until closed or until maxFrames iterations.
type fakeWindow struct {
	update     func()
	resize     func(width, height int)
	running    bool
	closeCalls int
	maxFrames  int
}

func (w *fakeWindow) SetUpdateCallback(cb func())                  { w.update = cb }
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.resize = cb }
func (w *fakeWindow) Width() int                                   { return 800 }
func (w *fakeWindow) Height() int                                  { return 600 }

func (w *fakeWindow) ProcessMessages() {
	w.running = true
	for i := 0; i < w.maxFrames && w.running; i++ {
		if w.update != nil {
			w.update()
		}
	}
}

func (w *fakeWindow) RequestClose() {
	w.running = false
	w.closeCalls++
}

// fakeClock advances by step every time it is read.
type fakeClock struct {
	now    time.Time
	step   time.Duration
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
}

func newTestEngine(t *testing.T, w *fakeWindow, clock *fakeClock, opts ...EngineBuilderOption) Engine {
	t.Helper()
	opts = append([]EngineBuilderOption{WithWindow(w), WithClock(clock.Now, clock.Sleep)}, opts...)
	e, err := NewEngine(opts...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngine_RequiresWindow(t *testing.T) {
	if _, err := NewEngine(); !errors.Is(err, ErrNoWindow) {
		t.Errorf("expected ErrNoWindow (got %v)", err)
	}
}

func TestEngine_FrameDeltaTime(t *testing.T) {
	w := &fakeWindow{maxFrames: 5}
	clock := &fakeClock{step: 20 * time.Millisecond}
	e := newTestEngine(t, w, clock)

	var dts []float32
	e.SetFrameCallback(func(dt float32) {
		dts = append(dts, dt)
	})
	e.Run()

	if len(dts) != 5 || e.Frames() != 5 {
		t.Fatalf("expected 5 frames (got %d callbacks, %d counted)", len(dts), e.Frames())
	}
	for i, dt := range dts {
		if dt != 0.02 {
			t.Errorf("frame %d: dt != 0.02 (got %v)", i, dt)
		}
	}
	if w.update != nil {
		t.Error("Run should clear the update callback when it returns")
	}
}

func TestEngine_FrameLimit(t *testing.T) {
	w := &fakeWindow{maxFrames: 3}
	clock := &fakeClock{step: 5 * time.Millisecond}
	e := newTestEngine(t, w, clock, WithFrameLimit(50))
	e.Run()

	if len(clock.sleeps) != 3 {
		t.Fatalf("expected 3 sleeps (got %d)", len(clock.sleeps))
	}
	for _, d := range clock.sleeps {
		if d != 15*time.Millisecond {
			t.Errorf("sleep != 15ms (got %v)", d)
		}
	}

	e.SetFrameLimit(0)
	clock.sleeps = nil
	e.Run()
	if len(clock.sleeps) != 0 {
		t.Errorf("uncapped loop should not sleep (got %d sleeps)", len(clock.sleeps))
	}
}

func TestEngine_RequestQuit(t *testing.T) {
	w := &fakeWindow{maxFrames: 100}
	e := newTestEngine(t, w, &fakeClock{step: time.Millisecond})

	frames := 0
	e.SetFrameCallback(func(float32) {
		frames++
		if frames == 3 {
			e.RequestQuit()
			e.RequestQuit()
		}
	})
	e.Run()

	if frames != 3 {
		t.Errorf("loop should stop after the quit frame (ran %d frames)", frames)
	}
	if w.closeCalls != 1 {
		t.Errorf("window close calls != 1 (got %d)", w.closeCalls)
	}

	e.StopSession()
	if w.closeCalls != 1 {
		t.Error("StopSession outside a debug session should do nothing")
	}
}

func TestEngine_DebugSession(t *testing.T) {
	w := &fakeWindow{maxFrames: 100}
	e := newTestEngine(t, w, &fakeClock{step: time.Millisecond}, WithDebugSession(true))

	frames := 0
	e.SetFrameCallback(func(float32) {
		frames++
		switch frames {
		case 2:
			e.RequestQuit()
		case 4:
			e.StopSession()
			e.StopSession()
		}
	})
	e.Run()

	if frames != 4 {
		t.Errorf("debug session should run until StopSession (ran %d frames)", frames)
	}
	if w.closeCalls != 1 {
		t.Errorf("window close calls != 1 (got %d)", w.closeCalls)
	}
}

func TestEngine_PanicQuits(t *testing.T) {
	w := &fakeWindow{maxFrames: 10}
	e := newTestEngine(t, w, &fakeClock{step: time.Millisecond})
	e.SetFrameCallback(func(float32) {
		panic("boom")
	})
	e.Run()

	if w.closeCalls != 1 {
		t.Errorf("panic should close the window (close calls %d)", w.closeCalls)
	}
}

func TestEngine_Resize(t *testing.T) {
	w := &fakeWindow{}
	e := newTestEngine(t, w, &fakeClock{})

	var got [][2]int
	e.SetResizeCallback(func(width, height int) {
		got = append(got, [2]int{width, height})
	})

	w.resize(0, 0)
	w.resize(1024, 768)
	if len(got) != 1 || got[0] != [2]int{1024, 768} {
		t.Errorf("expected only the non-zero resize to be forwarded (got %v)", got)
	}
}

func TestEngine_Profiler(t *testing.T) {
	w := &fakeWindow{maxFrames: 4}
	e := newTestEngine(t, w, &fakeClock{step: 250 * time.Millisecond})
	e.EnableProfiler()
	e.Run()

	eng := e.(*engine)
	if s := eng.profiler.Last(); s.Frames != 4 {
		t.Errorf("profiler should have reported 4 frames (got %+v)", s)
	}

	e.DisableProfiler()
	if eng.profilingEnabled {
		t.Error("DisableProfiler did not disable profiling")
	}
}
