// Package game wires the galaxy generator, scene and panel into an
// ebiten.Game.
package game

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/galaxy-generator/internal/config"
	"github.com/iburimskiy/galaxy-generator/internal/galaxy"
	"github.com/iburimskiy/galaxy-generator/internal/input"
	"github.com/iburimskiy/galaxy-generator/internal/loop"
	"github.com/iburimskiy/galaxy-generator/internal/panel"
	"github.com/iburimskiy/galaxy-generator/internal/scene"
)

// Options configures a Game. Zero values get working defaults except
// Params, which callers must fill.
type Options struct {
	Params  *config.Parameters
	Sprite  *ebiten.Image
	Seed    uint64
	Clock   loop.Clock
	Picker  panel.ColorPicker
	Pointer input.Pointer
	Logger  *slog.Logger
}

type Game struct {
	params *config.Parameters
	logger *slog.Logger
	sprite *ebiten.Image

	seed uint64
	src  galaxy.Source

	scene    *scene.Scene
	slot     *scene.Slot
	camera   *scene.PerspectiveCamera
	controls *scene.OrbitControls
	renderer *scene.Renderer
	panel    *panel.Panel

	loop        *loop.Loop
	cancelFrame func()
	pointer     input.Masked
	elapsed     float64
	tap         *frameTap

	// input edge detection
	prevKey map[ebiten.Key]bool

	drawn   int
	lastErr error
}

func New(opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = loop.NewWallClock()
	}
	if opts.Pointer == nil {
		opts.Pointer = input.Ebiten{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	g := &Game{
		params:   opts.Params,
		logger:   opts.Logger,
		sprite:   opts.Sprite,
		seed:     opts.Seed,
		src:      galaxy.NewSource(opts.Seed),
		scene:    scene.New(),
		renderer: scene.NewRenderer(),
		loop:     loop.New(opts.Clock),
		pointer:  input.Masked{Pointer: opts.Pointer},
		tap:      newFrameTap(config.FrameTapSize),
		prevKey:  map[ebiten.Key]bool{},
	}
	g.slot = scene.NewSlot(g.scene)
	g.renderer.MinPointPixels = config.MinPointPixels

	g.camera = scene.NewPerspectiveCamera(config.CameraFov, float32(config.WindowWidth)/config.WindowHeight, config.CameraNear, config.CameraFar)
	g.camera.Position = mgl32.Vec3{config.CameraX, config.CameraY, config.CameraZ}

	g.controls = scene.NewOrbitControls(g.camera)
	g.controls.EnableDamping = true
	g.controls.DampingFactor = config.OrbitDamping
	g.controls.RotateSpeed = config.OrbitSensitivity
	g.controls.ZoomStep = config.ZoomStep
	g.controls.MinDistance = config.MinDistance
	g.controls.MaxDistance = config.MaxDistance

	g.panel = panel.New(g.params, opts.Picker, g.onFinishChange)

	g.Regenerate()
	g.cancelFrame = g.loop.Register(g.frame)
	return g
}

// Regenerate rebuilds the cloud from the current parameters and swaps it
// into the scene.
func (g *Game) Regenerate() {
	if err := g.params.Validate(); err != nil {
		g.logger.Warn("clamping galaxy parameters", "err", err)
	}

	start := time.Now()
	pc := galaxy.Generate(*g.params, g.src)
	p := g.params.Clamped()

	pts := scene.NewPoints(
		scene.NewGeometry(pc.Positions, pc.Colors),
		scene.NewPointsMaterial(float32(p.Size), g.sprite),
	)
	pts.Rotation = mgl32.Vec3{config.InitialTilt, rotationAt(g.elapsed, p.RotationSpeed), 0}
	g.slot.Replace(pts)

	g.logger.Debug("galaxy generated", "count", pc.Len(), "seed", g.seed, "took", time.Since(start))
}

// Reseed regenerates the same parameters from a fresh random stream.
func (g *Game) Reseed() {
	g.seed++
	g.src = galaxy.NewSource(g.seed)
	g.Regenerate()
}

func (g *Game) onFinishChange(field string) {
	g.logger.Info("parameter committed", "field", field)
	if field == panel.FieldRotationSpeed {
		// applied by the frame task on the next tick
		return
	}
	g.Regenerate()
}

// frame is the per-tick task: move the camera, then spin the cloud.
func (g *Game) frame(elapsed float64) {
	g.elapsed = elapsed
	g.tap.record(elapsed)

	g.controls.Update(g.pointer)

	if pts := g.slot.Current(); pts != nil {
		pts.Rotation[1] = rotationAt(elapsed, g.params.RotationSpeed)
	}
}

// Close stops the frame task and releases the cloud. Safe to call twice.
func (g *Game) Close() {
	if g.cancelFrame != nil {
		g.cancelFrame()
		g.cancelFrame = nil
	}
	g.slot.Clear()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyH) {
		g.panel.Hidden = !g.panel.Hidden
	}
	if justPressed(ebiten.KeyR) {
		g.Reseed()
	}

	captured, err := g.panel.Update(g.pointer.Pointer)
	if err != nil {
		g.logger.Error("panel edit failed", "err", err)
		g.lastErr = err
	}
	g.pointer.Hidden = captured || g.controlsBlocked()

	g.loop.Tick()
	return nil
}

// controlsBlocked keeps the camera still while a slider drag is in flight
// even after the cursor leaves the panel.
func (g *Game) controlsBlocked() bool {
	return g.panel.Active()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	g.drawn = g.renderer.Render(screen, g.scene, g.camera)
	g.panel.Draw(screen)

	status := fmt.Sprintf("points %d/%d  tps %.0f  frame %s  seed %d  [R] reseed  [Esc] quit",
		g.drawn, g.params.Count, ebiten.ActualTPS(), formatFrameTime(g.tap.average()), g.seed)
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
