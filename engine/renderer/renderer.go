package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-freefly/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Surface is the window the renderer presents to.
type Surface interface {
	// SurfaceDescriptor returns the platform-specific WebGPU surface descriptor.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	clearColor common.Color

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
}

// Renderer presents frames to a window surface. Each frame is cleared to a single
// backdrop color; the free-fly rig has no scene geometry to draw.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size.
	// Zero-sized (minimized) framebuffers are ignored.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// SetPresentMode changes how frames are delivered to the display.
	// Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the color the next frames are cleared to.
	//
	// Parameters:
	//   - c: the backdrop color
	SetClearColor(c common.Color)

	// ClearColor returns the current backdrop color.
	//
	// Returns:
	//   - common.Color: the backdrop color
	ClearColor() common.Color

	// DrawFrame acquires the next surface image, clears it and presents it.
	//
	// Returns:
	//   - error: if the surface image could not be acquired or submitted
	DrawFrame() error

	// Release frees every GPU resource held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the given surface and configures it at the surface's current size.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - surface: the window to present to
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: if no adapter or device could be obtained
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		clearColor:  common.HorizonColor,
		presentMode: PresentModeVSync,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		b, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter)
		if err != nil {
			return nil, fmt.Errorf("renderer: %w", err)
		}
		r.backend = b
	}

	r.backend.SetPresentMode(r.presentMode)
	r.backend.ConfigureSurface(surface.Width(), surface.Height())
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) SetClearColor(c common.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = c
}

func (r *renderer) ClearColor() common.Color {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clearColor
}

func (r *renderer) DrawFrame() error {
	if err := r.backend.BeginFrame(r.ClearColor()); err != nil {
		return err
	}
	if err := r.backend.EndFrame(); err != nil {
		return err
	}
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.backend.Release()
}
