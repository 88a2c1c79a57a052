package viz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dotsim/internal/config"
	"github.com/san-kum/dotsim/internal/control"
	"github.com/san-kum/dotsim/internal/physics"
	"github.com/san-kum/dotsim/internal/sim"
)

const (
	width           = 80
	height          = 24
	statsWidth      = 40
	historyCapacity = 300

	// canvas origin inside canvasStyle's padding
	originCol = 2
	originRow = 1
)

type TickMsg time.Time

// ConfigMsg carries a reloaded configuration. Theme and tick rate take
// effect immediately; world size and seeding only apply on the next start.
type ConfigMsg struct{ Config *config.Config }

// Model drives a Simulator from Bubble Tea ticks and draws its frames.
type Model struct {
	sim      *sim.Simulator
	input    *control.Manual
	log      *slog.Logger
	interval time.Duration

	canvas *Canvas
	theme  Theme
	frame  sim.Frame
	last   time.Time

	running  bool
	showHelp bool

	population []float64
	blasts     []float64
	destroyed  int
}

func NewModel(s *sim.Simulator, cfg *config.Config, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return Model{
		sim:        s,
		input:      control.NewManual(s.World(), cfg.SpawnInterval(), time.Now),
		log:        log,
		interval:   cfg.TickDuration(),
		canvas:     NewCanvas(width, height),
		theme:      GetTheme(cfg.Theme),
		frame:      s.World().Snapshot(),
		last:       time.Now(),
		running:    true,
		population: make([]float64, 0, historyCapacity),
		blasts:     make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) viewport() control.Viewport {
	return control.Viewport{
		X:      originCol,
		Y:      originRow,
		Width:  float64(m.canvas.Width),
		Height: float64(m.canvas.Height),
		World:  m.sim.World().Bounds(),
	}
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sim.Reset()
			m.input.Release()
			m.population = m.population[:0]
			m.blasts = m.blasts[:0]
			m.destroyed = 0
			m.frame = m.sim.World().Snapshot()
		case "c":
			m.sim.World().Clear()
		case "x":
			m.input.ToggleExplodeMode()
		case "b":
			m.sim.World().SpawnRandomBody()
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case ConfigMsg:
		m.theme = GetTheme(msg.Config.Theme)
		m.interval = msg.Config.TickDuration()
	case TickMsg:
		now := time.Time(msg)
		elapsed := float64(now.Sub(m.last)) / float64(time.Millisecond)
		m.last = now
		if m.running {
			m.step(elapsed)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if x, y, ok := m.viewport().CellToWorld(msg.X, msg.Y); ok {
			m.input.Press(x, y, msg.Shift)
		}
	case tea.MouseActionMotion:
		if x, y, ok := m.viewport().CellToWorld(msg.X, msg.Y); ok {
			m.input.Drag(x, y)
		}
	case tea.MouseActionRelease:
		m.input.Release()
	}
}

func (m *Model) resize(w, h int) {
	cols := max(w-statsWidth-2*originCol-2, 20)
	rows := max(h-2*originRow, 8)
	if cols == m.canvas.Width && rows == m.canvas.Height {
		return
	}
	m.canvas = NewCanvas(cols, rows)
	m.log.Debug("canvas resized", "cols", cols, "rows", rows)
}

// step advances the simulation by elapsed milliseconds of wall time.
func (m *Model) step(elapsed float64) {
	frame, err := m.sim.Step(elapsed)
	if err != nil {
		m.log.Warn("step failed", "err", err)
		return
	}
	m.frame = frame
	m.destroyed += frame.Destroyed

	m.population = appendCapped(m.population, float64(len(frame.Bodies)))
	m.blasts = appendCapped(m.blasts, float64(len(frame.Explosions)))
}

func appendCapped(xs []float64, v float64) []float64 {
	xs = append(xs, v)
	if len(xs) > historyCapacity {
		xs = xs[1:]
	}
	return xs
}

// draw renders the current frame: explosions first so bodies stay visible on
// top of them, then bodies, then the centroid.
func (m *Model) draw() {
	m.canvas.Clear()
	pw, ph := m.canvas.PixelSize()
	b := m.sim.World().Bounds()
	sx, sy := float64(pw)/b.Width, float64(ph)/b.Height

	for i := range m.frame.Explosions {
		e := &m.frame.Explosions[i]
		r := e.Radius()
		m.canvas.Ellipse(e.X*sx, e.Y*sy, r*sx, r*sy, LayerExplosion)
	}
	for i := range m.frame.Bodies {
		d := &m.frame.Bodies[i]
		m.canvas.Dot(int(d.X*sx), int(d.Y*sy), 2, LayerBody)
	}
	if c := m.frame.Centroid; c.OK {
		cx, cy := int(c.X*sx), int(c.Y*sy)
		m.canvas.Set(cx, cy, LayerCentroid)
		m.canvas.Set(cx-1, cy, LayerCentroid)
		m.canvas.Set(cx+1, cy, LayerCentroid)
		m.canvas.Set(cx, cy-1, LayerCentroid)
		m.canvas.Set(cx, cy+1, LayerCentroid)
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.Render(m.theme.layerStyle))

	var s strings.Builder
	s.WriteString(GradientText("GRAVITY SIMULATION", m.theme.Title, m.theme.Accent) + "\n")

	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}
	if m.input.ExplodeMode {
		status += "  " + StatusExplode.Render("EXPLODE")
	}
	s.WriteString(status + "\n\n")

	if len(m.population) > 1 {
		chart := asciigraph.Plot(m.population, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Bodies"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(labelStyle.Render("Blasts") + SparklineChart(m.blasts, 24) + "\n\n")

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.sim.Time()/1000)) + "\n")
	s.WriteString(labelStyle.Render("Bodies") + valueStyle.Render(fmt.Sprintf("%d", len(m.frame.Bodies))) + "\n")
	s.WriteString(labelStyle.Render("Explosions") + valueStyle.Render(fmt.Sprintf("%d", len(m.frame.Explosions))) + "\n")
	s.WriteString(labelStyle.Render("Destroyed") + valueStyle.Render(fmt.Sprintf("%d", m.destroyed)) + "\n")
	s.WriteString(labelStyle.Render("Centroid") + valueStyle.Render(formatCentroid(m.frame.Centroid)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")

	s.WriteString(helpStyle.Render("\n─────────────────────\nDrag:Spawn  Shift+Click:Boom\nSP:Pause R:Reset Q:Quit\nX:Explode B:Body T:Theme ?:Help"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          MOUSE & KEYBOARD            ║
╠══════════════════════════════════════╣
║  Drag     - Spawn dots (10 per sec)  ║
║  Click    - Explode (in explode mode)║
║  Shft+Clk - Explode                  ║
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  C        - Clear the world          ║
║  X        - Toggle explode mode      ║
║  B        - Spawn a random dot       ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func formatCentroid(c physics.Centroid) string {
	if !c.OK {
		return "-"
	}
	return fmt.Sprintf("(%.0f, %.0f)", c.X, c.Y)
}

// Run starts the terminal program and blocks until the user quits. If
// watchPath is set, edits to that config file are applied while running.
func Run(s *sim.Simulator, cfg *config.Config, watchPath string, log *slog.Logger) error {
	log.Info("starting terminal frontend", "bodies", len(s.World().Bodies()), "theme", cfg.Theme)
	p := tea.NewProgram(NewModel(s, cfg, log), tea.WithAltScreen(), tea.WithMouseAllMotion())

	if watchPath != "" {
		w, err := config.NewWatcher(watchPath, log)
		if err != nil {
			return fmt.Errorf("watch %s: %w", watchPath, err)
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go w.Run(ctx, func(c *config.Config) { p.Send(ConfigMsg{Config: c}) })
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal frontend: %w", err)
	}
	log.Info("terminal frontend closed", "ticks", s.Ticks())
	return nil
}
