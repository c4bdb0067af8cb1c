package profiler

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Snapshot is the frame statistics of one completed reporting interval.
type Snapshot struct {
	Frames   int
	FPS      float64
	MinFrame time.Duration
	AvgFrame time.Duration
	MaxFrame time.Duration
}

// Profiler tracks frame rate, frame time spread and memory statistics for performance monitoring.
// Frame time is accumulated from the deltas passed to Tick, so the report reflects the same
// clock the frame loop uses. Outputs stats to the log at a configurable interval.
type Profiler struct {
	updateInterval time.Duration
	memoryStats    bool

	frameCount int
	elapsed    time.Duration
	minFrame   time.Duration
	maxFrame   time.Duration

	last Snapshot

	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how much frame time accumulates between reports.
//
// Parameters:
//   - interval: reporting interval (non-positive values keep the 1 second default)
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// WithMemoryStats adds heap, allocation rate and GC pause figures to each report.
func WithMemoryStats(enabled bool) ProfilerOption {
	return func(p *Profiler) {
		p.memoryStats = enabled
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second
// and memory statistics are included.
//
// Parameters:
//   - options: functional options to apply
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		memoryStats:    true,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Tick should be called once per frame with that frame's delta time.
// Logs performance statistics when the accumulated frame time reaches the update interval.
// Statistics include: FPS, min/avg/max frame time and, when enabled, heap usage,
// allocation rate, GC count/pause times and total memory.
//
// Parameters:
//   - dt: the frame's delta time in seconds; negative values count as zero
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(dt float32) bool {
	if dt < 0 {
		dt = 0
	}
	frame := time.Duration(float64(dt) * float64(time.Second))

	if p.frameCount == 0 || frame < p.minFrame {
		p.minFrame = frame
	}
	if frame > p.maxFrame {
		p.maxFrame = frame
	}
	p.frameCount++
	p.elapsed += frame

	if p.elapsed < p.updateInterval {
		return false
	}

	p.last = Snapshot{
		Frames:   p.frameCount,
		FPS:      float64(p.frameCount) / p.elapsed.Seconds(),
		MinFrame: p.minFrame,
		AvgFrame: p.elapsed / time.Duration(p.frameCount),
		MaxFrame: p.maxFrame,
	}

	if p.memoryStats {
		log.Printf("[Profiler] FPS: %.2f | Frame: min %s avg %s max %s | %s",
			p.last.FPS, p.last.MinFrame, p.last.AvgFrame, p.last.MaxFrame, p.readMemory())
	} else {
		log.Printf("[Profiler] FPS: %.2f | Frame: min %s avg %s max %s",
			p.last.FPS, p.last.MinFrame, p.last.AvgFrame, p.last.MaxFrame)
	}

	p.frameCount = 0
	p.elapsed = 0
	p.minFrame = 0
	p.maxFrame = 0
	return true
}

// Last returns the statistics of the most recently reported interval.
// The zero Snapshot is returned before the first report.
//
// Returns:
//   - Snapshot: the last reported statistics
func (p *Profiler) Last() Snapshot {
	return p.last
}

// readMemory samples the runtime memory statistics and formats them for the report.
func (p *Profiler) readMemory() string {
	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	// Allocation churn over the interval, per second of frame time
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / p.elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc

	return fmt.Sprintf("Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)
}
