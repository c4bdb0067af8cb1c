package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Carmen-Shannon/oxy-freefly/common"
	"github.com/Carmen-Shannon/oxy-freefly/engine/camera"
	"github.com/Carmen-Shannon/oxy-freefly/engine/config"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input/ebiteninput"
	"github.com/Carmen-Shannon/oxy-freefly/engine/profiler"
)

// Ground grid drawn as projected markers so motion is visible against the flat sky.
const (
	gridHalfExtent = 50
	gridSpacing    = 5
	markerSize     = 4
)

// game is the Ebitengine host. It is also the controller's Host: escape ends the game.
type game struct {
	cam        camera.Camera
	controller camera.FreeFlyController
	watcher    *config.Watcher
	profiler   *profiler.Profiler

	debug bool
	quit  bool

	marker     *ebiten.Image
	originMark *ebiten.Image
}

var _ camera.SessionHost = &game{}

// RequestQuit ends the game, except during a debug session where only StopSession does.
func (g *game) RequestQuit() {
	if g.debug {
		return
	}
	g.quit = true
}

// StopSession ends a debug session.
func (g *game) StopSession() {
	if g.debug {
		log.Printf("[FreeFly] debug session stopped")
		g.quit = true
	}
}

func (g *game) Update() error {
	if g.watcher != nil {
		g.watcher.Drain(g.controller.Configure)
	}

	dt := 1 / float32(ebiten.TPS())
	if err := g.controller.Update(dt); err != nil {
		return err
	}
	if g.profiler != nil {
		g.profiler.Tick(dt)
	}

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	pitch, yaw, roll := g.cam.Rotation()
	screen.Fill(common.SkyColor(pitch).RGBA8())

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vp := g.cam.ViewProjectionMatrix()
	frustum := g.cam.Frustum()

	for x := -gridHalfExtent; x <= gridHalfExtent; x += gridSpacing {
		for z := -gridHalfExtent; z <= gridHalfExtent; z += gridSpacing {
			img := g.marker
			if x == 0 && z == 0 {
				img = g.originMark
			}
			p := mgl32.Vec3{float32(x), 0, float32(z)}
			if !frustum.ContainsSphere(p.X(), p.Y(), p.Z(), 0.1) {
				continue
			}
			sx, sy, ok := project(vp, p, w, h)
			if !ok {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(sx-markerSize/2, sy-markerSize/2)
			screen.DrawImage(img, op)
		}
	}

	x, y, z := g.cam.Position()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"pos   %8.2f %8.2f %8.2f\nrot   %8.2f %8.2f %8.2f\nboost %8.2f\nfps   %8.2f\n\nmouse look, WASD move, Q/E down/up\nshift sprint, wheel speed, esc quit",
		x, y, z, pitch, yaw, roll, g.controller.Boost(), ebiten.ActualFPS(),
	))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideHeight > 0 {
		g.cam.SetAspect(float32(outsideWidth) / float32(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// run drives g with runGame and releases the controller's pointer capture before returning,
// whatever the outcome. ebiten.Termination is a clean exit.
func run(g *game, runGame func(ebiten.Game) error) error {
	defer g.controller.Deactivate()
	if err := runGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// project maps a world point to screen pixels. ok is false for points behind the camera.
func project(vp mgl32.Mat4, p mgl32.Vec3, width, height int) (x, y float64, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = float64(ndc.X()+1) / 2 * float64(width)
	y = float64(1-ndc.Y()) / 2 * float64(height)
	return x, y, true
}

func main() {
	configPath := flag.String("config", "", "YAML controller config; built-in defaults when empty")
	watch := flag.Bool("watch", false, "reload the config file whenever it changes")
	debug := flag.Bool("debug", false, "debug session: escape stops the session instead of quitting")
	profile := flag.Bool("profile", false, "log frame statistics once per second")
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

	// ── Camera ──────────────────────────────────────────────────────────
	g := &game{
		cam:        camera.NewCamera(camera.WithPosition(0, 2, -10)),
		debug:      *debug,
		marker:     ebiten.NewImage(markerSize, markerSize),
		originMark: ebiten.NewImage(markerSize, markerSize),
	}
	g.marker.Fill(color.RGBA{R: 240, G: 240, B: 240, A: 255})
	g.originMark.Fill(color.RGBA{R: 230, G: 60, B: 40, A: 255})

	g.controller, err = camera.NewFreeFlyController(
		camera.WithInput(ebiteninput.NewSource(input.WithBindings(bindings))),
		camera.WithHost(g),
		camera.WithConfig(cfg),
	)
	if err != nil {
		log.Fatalf("Failed to create controller: %v", err)
	}

	// ── Hot Reload ──────────────────────────────────────────────────────
	if *watch && *configPath != "" {
		g.watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch config: %v", err)
		}
		defer g.watcher.Close()
	}
	if *profile {
		g.profiler = profiler.NewProfiler()
	}

	// Last fallible step: log.Fatalf skips defers, so nothing may fail once the pointer is captured.
	if err := g.controller.Activate(g.cam); err != nil {
		log.Fatalf("Failed to activate controller: %v", err)
	}

	ebiten.SetWindowTitle("Oxy Free Fly (Ebitengine)")
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Println("Starting Oxy Free Fly (Ebitengine)")
	if err := run(g, ebiten.RunGame); err != nil {
		if g.watcher != nil {
			g.watcher.Close()
		}
		log.Fatalf("Game exited with error: %v", err)
	}
}
