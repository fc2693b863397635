// Package tiltmaze implements a tilt-controlled labyrinth. The terminal
// window is a virtual play field with four fixed barriers; arrow keys tilt
// the field through a simulated sensor and the ball rolls until it escapes
// past the exit barrier at the right edge.
package tiltmaze

import (
	"time"

	"github.com/dkorolev/tiltmaze/internal/config"
	"github.com/dkorolev/tiltmaze/internal/core"
	"github.com/dkorolev/tiltmaze/internal/maze"
	"github.com/dkorolev/tiltmaze/internal/registry"
	"github.com/dkorolev/tiltmaze/internal/sensor"
)

// Game state constants
const (
	StatePlaying = "playing" // Ball rolling, input live
	StatePaused  = "paused"  // Frozen by the player
	StateWon     = "won"     // Ball reached the right field edge
)

// Mode selects who steers: the player or the built-in pilot.
type Mode int

const (
	ModeClassic Mode = iota // Arrow keys drive the virtual tilt sensor
	ModeDemo                // Autopilot runs the maze on its own
)

// configPath stores the custom config path set via CLI
var configPath string

// feelPreset stores the tilt feel preset set via CLI
var feelPreset config.FeelPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetFeelPreset sets the tilt feel preset applied on top of the config.
// Unknown names fall back to the configured values.
func SetFeelPreset(preset string) {
	if config.ValidFeel(preset) {
		feelPreset = config.FeelPreset(preset)
	} else {
		feelPreset = ""
	}
}

// tiltFeed is the part of sensor.Stream the game consumes. Tests substitute
// a buffered fake to drive the simulation with hand-built samples.
type tiltFeed interface {
	Samples() <-chan sensor.Sample
	Close() error
}

// Game implements the tilt maze logic.
type Game struct {
	mode Mode

	// Simulation
	engine    *maze.Engine
	obstacles []maze.Obstacle

	// Sensor chain: exactly one of tilt/pilot is active per mode
	tilt  *sensor.VirtualTilt
	pilot *sensor.Autopilot
	feed  tiltFeed
	integ *sensor.Integrator

	// Game state
	state     string
	tickCount int

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.MazeConfig

	// Layout (computed from screen size)
	cellW          int // field px per terminal column
	cellH          int // field px per terminal row
	screenTooSmall bool
}

// New creates a new game in classic (player-steered) mode.
func New() *Game {
	return &Game{mode: ModeClassic, engine: maze.NewEngine(), state: StatePlaying}
}

// NewDemo creates a new game driven by the autopilot.
func NewDemo() *Game {
	return &Game{mode: ModeDemo, engine: maze.NewEngine(), state: StatePlaying}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeDemo {
		return "tiltmaze_demo"
	}
	return "tiltmaze"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeDemo {
		return "Tilt Maze (Demo)"
	}
	return "Tilt Maze"
}

// Reset initializes or restarts the game. Called on start, restart and every
// window resize; the play field is re-derived from the new terminal grid and
// the sensor subscription is replaced.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		cfg = config.DefaultMazeConfig()
	}
	if feelPreset != "" {
		config.ApplyFeelPreset(&cfg, feelPreset)
	}
	g.cfg = cfg

	g.cellW = cfg.Render.CellWidthOrDefault()
	g.cellH = cfg.Render.CellHeightOrDefault()

	// Row 0 is the HUD; the border box takes one cell on each remaining
	// side. What is left maps onto the virtual field.
	fieldW := float64((runtime.ScreenW - 2) * g.cellW)
	fieldH := float64((runtime.ScreenH - 3) * g.cellH)

	bound := maze.MinTraversableField()
	g.screenTooSmall = fieldW <= bound.Width || fieldH <= bound.Height

	// Drop any previous subscription before rebuilding the simulation.
	if g.feed != nil {
		g.feed.Close()
		g.feed = nil
	}

	g.engine = maze.NewEngine()
	g.obstacles = nil
	g.state = StatePlaying
	g.tickCount = 0

	if g.screenTooSmall {
		return
	}

	g.engine.SetField(fieldW, fieldH)
	g.obstacles = maze.BuildLayout(g.engine.Field())
	g.integ = sensor.NewIntegrator()

	period := time.Duration(cfg.Tilt.SamplePeriodOrDefault()) * time.Millisecond
	switch g.mode {
	case ModeDemo:
		g.tilt = nil
		g.pilot = sensor.NewAutopilot(cfg.Tilt.DemoGain)
		x, y := g.engine.Position()
		g.pilot.Observe(x, y, g.engine.Field())
		g.feed = sensor.Open(g.pilot, period)
	default:
		g.pilot = nil
		g.tilt = sensor.NewVirtualTilt(cfg.Tilt.Impulse, cfg.Tilt.Decay, cfg.Tilt.MaxRate)
		g.feed = sensor.Open(g.tilt, period)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart after a win
	if in.Has(core.ActionRestart) && g.state == StateWon {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.togglePause()
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Classic mode: held arrows push the virtual sensor
	if g.tilt != nil {
		g.steer(in)
	}

	g.drainSamples()

	x, y := g.engine.Position()
	if g.pilot != nil {
		g.pilot.Observe(x, y, g.engine.Field())
	}

	// The right field edge is the exit; it can only be touched past the
	// exit barrier.
	if x >= g.engine.Field().Width-g.engine.Radius() {
		g.state = StateWon
	}

	return core.StepResult{State: g.State()}
}

// togglePause flips between playing and paused.
func (g *Game) togglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
		if g.tilt != nil {
			g.tilt.Level()
		}
	case StatePaused:
		g.state = StatePlaying
		// Samples produced while paused are stale. Drop them and
		// re-baseline the integrator so the ball does not jump on resume.
		g.discardPending()
		g.integ.Reset()
	}
}

// steer converts held directional actions into one tilt impulse.
func (g *Game) steer(in core.InputFrame) {
	var dx, dy float64
	if in.Has(core.ActionLeft) {
		dx -= 1
	}
	if in.Has(core.ActionRight) {
		dx += 1
	}
	if in.Has(core.ActionUp) {
		dy -= 1
	}
	if in.Has(core.ActionDown) {
		dy += 1
	}

	if dx != 0 || dy != 0 {
		g.tilt.Steer(dx, dy)
	}
}

// drainSamples consumes every pending sensor sample and applies the
// resulting movement. The channel is bounded and latest-wins, so one tick
// never integrates more than a handful of readings.
func (g *Game) drainSamples() {
	for {
		select {
		case s, open := <-g.feed.Samples():
			if !open {
				return
			}
			if delta, ok := g.integ.Integrate(s); ok {
				g.engine.ApplyMovement(delta, g.obstacles)
			}
		default:
			return
		}
	}
}

// discardPending empties the sample channel without integrating.
func (g *Game) discardPending() {
	for {
		select {
		case _, open := <-g.feed.Samples():
			if !open {
				return
			}
		default:
			return
		}
	}
}

// elapsedSeconds converts the tick counter to whole seconds of play.
func (g *Game) elapsedSeconds() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return g.tickCount / rate
}

// State returns the current game state. The score is the elapsed time in
// whole seconds; it freezes on a win, so it doubles as the final time.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.elapsedSeconds(),
		GameOver: g.state == StateWon,
		Won:      g.state == StateWon,
		Paused:   g.state == StatePaused || g.screenTooSmall,
	}
}

// Close releases the sensor subscription. The platform closes the game on
// quit; Reset closes the previous subscription on its own.
func (g *Game) Close() error {
	if g.feed == nil {
		return nil
	}
	err := g.feed.Close()
	g.feed = nil
	return err
}

// Register both modes with the registry
func init() {
	registry.Register("tiltmaze", "steer the ball around the barriers to the right edge", func() registry.Game {
		return New()
	})
	registry.Register("tiltmaze_demo", "watch the autopilot run the maze", func() registry.Game {
		return NewDemo()
	})
}
