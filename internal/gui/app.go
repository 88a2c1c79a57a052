package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/dotsim/internal/config"
	"github.com/san-kum/dotsim/internal/control"
	"github.com/san-kum/dotsim/internal/sim"
)

const title = "Gravity Simulation"

var (
	ColBg        = rl.Black
	ColBody      = rl.Blue
	ColExplosion = rl.Red
	ColCentroid  = rl.Green
	ColText      = rl.NewColor(140, 140, 140, 255)
	ColTextDim   = rl.NewColor(60, 60, 60, 255)
)

const centroidRadius = 3

type App struct {
	Sim     *sim.Simulator
	Input   *control.Manual
	Running bool
	ShowHUD bool

	log       *slog.Logger
	frame     sim.Frame
	destroyed int
}

// initWindow opens a window the size of the world and caps the frame rate at
// the configured tick rate. Escape is left as the exit key.
func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), title)
	rl.SetTargetFPS(int32(cfg.TargetFPS()))
}

func NewApp(s *sim.Simulator, cfg *config.Config, log *slog.Logger) *App {
	return &App{
		Sim:     s,
		Input:   control.NewManual(s.World(), cfg.SpawnInterval(), nil),
		Running: true,
		log:     log,
		frame:   s.World().Snapshot(),
	}
}

// Run opens the window and blocks until it is closed.
func Run(s *sim.Simulator, cfg *config.Config, log *slog.Logger) {
	initWindow(cfg)
	defer rl.CloseWindow()
	log.Info("window opened", "width", cfg.Width, "height", cfg.Height, "fps", cfg.TargetFPS())
	app := NewApp(s, cfg, log)
	app.RunLoop()
	log.Info("window closed", "ticks", s.Ticks(), "destroyed", app.destroyed)
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) viewport() control.Viewport {
	return control.Viewport{
		Width:  float64(rl.GetScreenWidth()),
		Height: float64(rl.GetScreenHeight()),
		World:  a.Sim.World().Bounds(),
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyP) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Sim.Reset()
		a.Input.Release()
		a.destroyed = 0
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.Sim.World().Clear()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.ShowHUD = !a.ShowHUD
	}

	a.handleMouse()

	if !a.Running {
		return
	}
	frame, err := a.Sim.Step(float64(rl.GetFrameTime()) * 1000)
	if err != nil {
		// the first frame can report zero elapsed time
		a.log.Debug("step skipped", "err", err)
		return
	}
	a.frame = frame
	a.destroyed += frame.Destroyed
}

// handleMouse turns a press with space held into an explosion and dragging
// into a stream of bodies.
func (a *App) handleMouse() {
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.Input.Release()
		return
	}

	pos := rl.GetMousePosition()
	x, y, ok := a.viewport().ToWorld(float64(pos.X), float64(pos.Y))
	if !ok {
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.Input.Press(x, y, rl.IsKeyDown(rl.KeySpace))
		return
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
			a.Input.Drag(x, y)
		}
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawWorld()
	if a.ShowHUD {
		a.DrawHUD()
	}

	rl.EndDrawing()
}

// drawWorld draws explosions under bodies, then the centroid on top.
func (a *App) drawWorld() {
	for i := range a.frame.Explosions {
		e := &a.frame.Explosions[i]
		rl.DrawCircle(int32(e.X), int32(e.Y), float32(e.Radius()), ColExplosion)
	}
	for i := range a.frame.Bodies {
		d := &a.frame.Bodies[i]
		rl.DrawCircle(int32(d.X), int32(d.Y), float32(d.Radius), ColBody)
	}
	if c := a.frame.Centroid; c.OK {
		rl.DrawCircle(int32(c.X), int32(c.Y), centroidRadius, ColCentroid)
	}
}

func (a *App) DrawHUD() {
	status := "RUNNING"
	if !a.Running {
		status = "PAUSED"
	}
	rl.DrawText(fmt.Sprintf("%s  t=%.1fs", status, a.Sim.Time()/1000), 10, 10, 16, ColText)
	rl.DrawText(fmt.Sprintf("dots %d  explosions %d  destroyed %d", len(a.frame.Bodies), len(a.frame.Explosions), a.destroyed), 10, 30, 16, ColText)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 10, int32(rl.GetScreenHeight())-24, 14, ColTextDim)
	rl.DrawText("[DRAG] SPAWN  [SPACE+CLICK] EXPLODE  [P] PAUSE  [R] RESET  [C] CLEAR  [H] HUD", 120, int32(rl.GetScreenHeight())-24, 14, ColTextDim)
}
