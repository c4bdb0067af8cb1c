package engine

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-freefly/engine/profiler"
)

var ErrNoWindow = errors.New("engine requires a window")

// Window is the part of window.Window the frame loop drives.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	SetResizeCallback(callback func(width, height int))

	// ProcessMessages runs the message loop until the window stops.
	ProcessMessages()

	// RequestClose asks the message loop to stop.
	RequestClose()

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// engine implements the Engine interface.
// Runs every frame on the thread that calls Run, inside the window's message loop.
type engine struct {
	window Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback  func(deltaTime float32)
	resizeCallback func(width, height int)

	clock      func() time.Time
	sleep      func(time.Duration)
	lastFrame  time.Time
	frameLimit time.Duration // minimum frame duration; 0 = uncapped

	debugSession bool
	stopped      bool
	frames       uint64

	quitOnce    sync.Once // Ensures the window is only asked to close once
	sessionOnce sync.Once
}

// Engine is the main entry point for a host application.
// It owns the frame loop and is the Host the camera controller reports quit requests to.
type Engine interface {
	// Window returns the window the engine drives.
	//
	// Returns:
	//   - Window: the window instance
	Window() Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetFrameCallback registers the function called once per frame.
	// Use this for input processing, camera updates and rendering.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	SetFrameCallback(callback func(deltaTime float32))

	// SetResizeCallback registers the function called when the window's framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Frames returns the number of frames run so far.
	//
	// Returns:
	//   - uint64: completed frame count
	Frames() uint64

	// Run starts the frame loop. Blocks until the window closes.
	Run()

	// RequestQuit asks the application to exit. During a debug session the request is
	// logged and ignored; the session is ended with StopSession instead.
	// Safe to call multiple times.
	RequestQuit()

	// StopSession ends a debug session: no further frames run and the window is asked to close.
	// Has no effect outside a debug session. Safe to call multiple times.
	StopSession()

	// Quit closes the window unconditionally.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, frame limit, etc.)
//
// Returns:
//   - Engine: the newly created engine
//   - error: ErrNoWindow if no window was supplied
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		profiler: profiler.NewProfiler(),
		clock:    time.Now,
		sleep:    time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		return nil, ErrNoWindow
	}

	e.window.SetResizeCallback(func(width, height int) {
		if width <= 0 || height <= 0 {
			// minimized
			return
		}
		if e.resizeCallback != nil {
			e.resizeCallback(width, height)
		}
	})

	return e, nil
}

func (e *engine) Window() Window {
	return e.window
}

func (e *engine) Run() {
	e.lastFrame = e.clock()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
	e.window.SetUpdateCallback(nil)
}

// frame runs one iteration of the loop: delta time, the frame callback, profiling
// and frame rate limiting. Recovers from panics in the callback and asks the window to close.
func (e *engine) frame() {
	if e.stopped {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] frame recovered from panic: %v", r)
			e.Quit()
		}
	}()

	start := e.clock()
	dt := float32(start.Sub(e.lastFrame).Seconds())
	e.lastFrame = start

	if e.frameCallback != nil {
		e.frameCallback(dt)
	}
	e.frames++

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(dt)
	}

	// Frame rate limiting
	if e.frameLimit > 0 {
		if remaining := e.frameLimit - e.clock().Sub(start); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

func (e *engine) RequestQuit() {
	if e.debugSession {
		log.Printf("[Engine] quit requested during a debug session, ignoring")
		return
	}
	e.Quit()
}

func (e *engine) StopSession() {
	if !e.debugSession {
		return
	}
	e.sessionOnce.Do(func() {
		log.Printf("[Engine] debug session stopped after %d frames", e.frames)
		e.stopped = true
		e.window.RequestClose()
	})
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.window.RequestClose()
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetFrameCallback registers the function called each frame.
func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}

// SetResizeCallback registers the function called on framebuffer resize.
func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.resizeCallback = callback
}

// SetFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetFrameLimit(fps float64) {
	e.frameLimit = frameDuration(fps)
}

func (e *engine) Frames() uint64 {
	return e.frames
}

// frameDuration converts a frame rate cap to the minimum frame duration. Non-positive rates are uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
