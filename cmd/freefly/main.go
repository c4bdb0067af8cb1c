package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-freefly/common"
	"github.com/Carmen-Shannon/oxy-freefly/engine"
	"github.com/Carmen-Shannon/oxy-freefly/engine/camera"
	"github.com/Carmen-Shannon/oxy-freefly/engine/config"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
	"github.com/Carmen-Shannon/oxy-freefly/engine/renderer"
	"github.com/Carmen-Shannon/oxy-freefly/engine/window"
)

func main() {
	configPath := flag.String("config", "", "YAML controller config; built-in defaults when empty")
	watch := flag.Bool("watch", false, "reload the config file whenever it changes")
	debug := flag.Bool("debug", false, "debug session: escape stops the session instead of quitting")
	profile := flag.Bool("profile", false, "log frame statistics once per second")
	width := flag.Int("width", 1280, "initial window width")
	height := flag.Int("height", 720, "initial window height")
	vsync := flag.Bool("vsync", true, "wait for vertical blank when presenting")
	fpsCap := flag.Float64("fps", 0, "frame rate cap, 0 for uncapped")
	flag.Parse()

	// ── Config ──────────────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	bindings, err := cfg.KeyBindings()
	if err != nil {
		log.Fatalf("Invalid key bindings: %v", err)
	}

	// ── Window ──────────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle("Oxy Free Fly"),
		window.WithSize(*width, *height),
	)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Close()

	// ── Engine ──────────────────────────────────────────────────────────
	eng, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithProfiling(*profile),
		engine.WithDebugSession(*debug),
		engine.WithFrameLimit(*fpsCap),
	)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	// ── Renderer ────────────────────────────────────────────────────────
	presentMode := renderer.PresentModeVSync
	if !*vsync {
		presentMode = renderer.PresentModeUncapped
	}
	r, err := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
	)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Release()

	// ── Hot Reload ──────────────────────────────────────────────────────
	var watcher *config.Watcher
	if *watch && *configPath != "" {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer watcher.Close()
	}

	// ── Camera ──────────────────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithPosition(0, 2, -10),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
	)

	src := input.NewWindowSource(win, input.WithBindings(bindings))
	controller, err := camera.NewFreeFlyController(
		camera.WithInput(src),
		camera.WithHost(eng),
		camera.WithConfig(cfg),
	)
	if err != nil {
		log.Fatalf("Failed to create controller: %v", err)
	}

	// Last fallible step: log.Fatalf skips defers, so nothing may fail once the pointer is captured.
	if err := controller.Activate(cam); err != nil {
		log.Fatalf("Failed to activate controller: %v", err)
	}
	defer controller.Deactivate()

	// ── Frame ───────────────────────────────────────────────────────────
	eng.SetResizeCallback(func(width, height int) {
		r.Resize(width, height)
		cam.SetAspect(float32(width) / float32(height))
	})

	eng.SetFrameCallback(func(dt float32) {
		if watcher != nil {
			watcher.Drain(controller.Configure)
		}
		if err := controller.Update(dt); err != nil {
			log.Printf("[FreeFly] update failed: %v", err)
			return
		}

		pitch, _, _ := cam.Rotation()
		r.SetClearColor(common.SkyColor(pitch))
		if err := r.DrawFrame(); err != nil {
			log.Printf("[Renderer] frame dropped: %v", err)
		}
	})

	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Println("║  Oxy Free Fly                                        ║")
	fmt.Println("╠══════════════════════════════════════════════════════╣")
	fmt.Println("║  Mouse=Look  WASD=Move  Q/E=Down/Up  Shift=Sprint    ║")
	fmt.Println("║  Scroll=Speed  Esc=Quit                              ║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	log.Println("Starting Oxy Free Fly")
	eng.Run()

	x, y, z := cam.Position()
	log.Printf("[FreeFly] stopped at (%.2f, %.2f, %.2f) after %d frames", x, y, z, eng.Frames())
}
