package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-freefly/engine/profiler"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler.
//
// Parameters:
//   - p: the profiler to tick each frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window whose message loop drives the engine. Required.
//
// Parameters:
//   - w: a created window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.frameLimit = frameDuration(fps)
	}
}

// WithDebugSession marks the run as an interactive debug session.
// Quit requests are then ignored and StopSession ends the run.
//
// Parameters:
//   - enabled: if true, the engine behaves as a debug host
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDebugSession(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.debugSession = enabled
	}
}

// WithClock replaces the time source and sleep function used for delta time and frame limiting.
//
// Parameters:
//   - now: returns the current time
//   - sleep: blocks for the given duration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(now func() time.Time, sleep func(time.Duration)) EngineBuilderOption {
	return func(e *engine) {
		e.clock = now
		e.sleep = sleep
	}
}
