package renderer

import "github.com/Carmen-Shannon/oxy-freefly/common"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// RendererBackend is the GPU API a Renderer drives. One frame is BeginFrame, EndFrame, Present.
type RendererBackend interface {
	// ConfigureSurface (re)creates the swapchain at the given size.
	ConfigureSurface(width, height int)

	// SetPresentMode selects the present mode used by the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// BeginFrame acquires the next surface image and opens a render pass that clears it.
	BeginFrame(clear common.Color) error

	// EndFrame closes the render pass and submits the frame's commands.
	EndFrame() error

	// Present shows the acquired surface image and releases the frame's references.
	Present()

	// Release frees the device, surface and instance.
	Release()
}
