// Package detector implements Detector Run, an endless runner where a
// jumping detector collects coins and dodges cans that scroll toward it.
package detector

import (
	"math"
	"math/rand"
	"slices"

	"github.com/vovakirdan/detector-run/internal/assets"
	"github.com/vovakirdan/detector-run/internal/config"
	"github.com/vovakirdan/detector-run/internal/core"
)

// transition is the reaction to the jump-or-restart input in one phase.
type transition func(*Game)

// jumpOrRestart maps each phase to what the jump input does there.
var jumpOrRestart = map[Phase]transition{
	PhasePlaying:  (*Game).jump,
	PhaseGameOver: (*Game).restart,
}

// Game owns the whole simulation: body, items, spawner and scoreboard.
type Game struct {
	cfg     config.DetectorConfig
	sprites assets.Sprites
	ramp    *config.SpeedRamp
	rng     *rand.Rand

	body    *PhysicsBody
	spawner *SpawnScheduler
	items   []Item
	state   GameState
	paused  bool

	viewW  float64 // viewport width in world units
	viewH  float64 // viewport height in world units
	ground float64 // ground line in world units

	events []core.Event
}

// New creates a game with the given tuning and sprites.
// Reset must be called before the first Step.
func New(cfg config.DetectorConfig, sprites assets.Sprites) *Game {
	return &Game{
		cfg:     cfg,
		sprites: sprites,
		ramp:    config.NewSpeedRamp(cfg.Speed),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "detector"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Detector Run"
}

// Reset starts a fresh round with a new random stream from runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.spawner = NewSpawnScheduler(g.rng, g.cfg.Spawn, g.cfg.Items)

	g.computeViewport(runtime.ScreenW, runtime.ScreenH)
	g.body = NewPhysicsBody(g.cfg.Player, g.cfg.Physics, g.ground)

	g.items = g.items[:0]
	g.state = NewGameState(g.cfg.Lives, g.ramp.Initial())
	g.paused = false
}

// Resize recomputes the viewport and ground line for a new playfield size
// in cells. Items keep their positions.
func (g *Game) Resize(cols, rows int) {
	g.computeViewport(cols, rows)
	if g.body != nil {
		g.body.SetGround(g.ground)
	}
}

func (g *Game) computeViewport(cols, rows int) {
	vp := g.cfg.Viewport
	g.viewW = float64(cols) * vp.CellWidth
	if vp.MaxWidth > 0 {
		g.viewW = math.Min(g.viewW, vp.MaxWidth)
	}
	g.viewH = float64(rows) * vp.CellHeight
	g.ground = g.viewH * vp.GroundRatio
}

// JumpOrRestart jumps while playing and starts a new round after game over.
func (g *Game) JumpOrRestart() {
	if t, ok := jumpOrRestart[g.state.Phase]; ok {
		t(g)
	}
}

func (g *Game) jump() {
	g.body.Jump()
}

// restart begins a new round. The random stream and spawn countdown carry
// over from the previous round.
func (g *Game) restart() {
	g.state = NewGameState(g.cfg.Lives, g.ramp.Initial())
	g.items = g.items[:0]
	g.body.Land(g.ground)
	g.paused = false
	g.emit(core.EventRestart)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionPause) && g.state.Playing() {
		g.paused = !g.paused
	}

	restartable := !g.state.Playing()
	switch {
	case in.Has(core.ActionJump) && !g.paused:
		g.JumpOrRestart()
	case in.Has(core.ActionRestart) && restartable:
		g.restart()
	}

	// A restart shows the fresh round for one frame before it moves.
	if restartable && g.state.Playing() {
		return g.result()
	}

	if g.state.Playing() && !g.paused {
		g.advance()
	}
	return g.result()
}

// advance runs one frame of simulation. Items are processed newest first
// so removal never shifts an unvisited index.
func (g *Game) advance() {
	g.body.Tick()
	g.state.Accelerate(g.ramp)

	if it, ok := g.spawner.MaybeSpawn(g.items, g.viewW, g.ground); ok {
		g.items = append(g.items, it)
	}

	for i := len(g.items) - 1; i >= 0; i-- {
		g.items[i].Tick(g.state.Speed)
		it := g.items[i]

		if Overlaps(g.body, it, g.cfg.Collision.Margin) {
			g.items = slices.Delete(g.items, i, i+1)
			g.collide(it.Kind)
			if !g.state.Playing() {
				break
			}
			continue
		}

		if it.OffScreen() {
			g.items = slices.Delete(g.items, i, i+1)
		}
	}
}

func (g *Game) collide(kind ItemKind) {
	switch kind {
	case KindBonus:
		g.state.CollectBonus()
		g.emit(core.EventBonus)
	case KindHazard:
		g.emit(core.EventHazard)
		if g.state.TakeHit() {
			g.emit(core.EventGameOver)
		}
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the platform-facing snapshot of the round.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Lives:    g.state.Lives,
		Speed:    g.state.Speed,
		GameOver: !g.state.Playing(),
		Paused:   g.paused,
	}
}

// Phase returns the current lifecycle stage.
func (g *Game) Phase() Phase {
	return g.state.Phase
}
