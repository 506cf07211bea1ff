// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"go-shmup/internal/audio"
	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/entity"
	"go-shmup/internal/event"
	"go-shmup/internal/input"
	"go-shmup/internal/logging"
	"go-shmup/internal/metrics"
	"go-shmup/internal/system"
	"go-shmup/internal/types"
	"go-shmup/internal/utils"
	"go-shmup/internal/visual"
)

var (
	ErrNoLibrary = errors.New("no enemy library")
	ErrNoSprites = errors.New("no sprite library")
)

// Options wires a Game to its content and services.
type Options struct {
	Library *defs.Library
	Sprites visual.Library
	Audio   audio.Service     // nil plays nothing
	Metrics *metrics.Exporter // optional
	Seed    int64             // 0 seeds from the clock
}

// Game holds the main game state and logic.
type Game struct {
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	UnitSystem       *system.UnitSystem
	ProjectileSystem *system.ProjectileSystem
	RenderSystem     *system.RenderSystem
	PlayerSystem     *system.PlayerSystem
	WaveSystem       *system.WaveSystem
	Spawner          *system.Spawner
	Rng              *utils.PRNGService
	PlayerID         types.EntityID

	SpeedMultiplier float64
	speedIndex      int

	metrics  *metrics.Exporter
	gameOver bool
}

// NewGame builds the world and spawns the player. The first wave arrives on
// the first update.
func NewGame(opts Options) (*Game, error) {
	if opts.Library == nil {
		return nil, ErrNoLibrary
	}
	if opts.Sprites == nil {
		return nil, ErrNoSprites
	}
	sound := opts.Audio
	if sound == nil {
		sound = audio.Nop{}
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(opts.Seed),
		RenderSystem:    system.NewRenderSystem(ecs),
		Spawner:         system.NewSpawner(ecs, opts.Sprites),
		SpeedMultiplier: config.SpeedMultipliers[0],
		metrics:         opts.Metrics,
	}
	g.UnitSystem = system.NewUnitSystem(ecs, opts.Sprites, sound, g.Rng, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.UnitSystem, sound, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, opts.Library, g.Spawner, g.PlayerSystem, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.PlayerKilled, event.WavesExhausted)
	if g.metrics != nil {
		g.metrics.Subscribe(eventDispatcher)
	}

	id, err := g.Spawner.SpawnPlayer()
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.PlayerID = id
	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerKilled:
		l.game.gameOver = true
		logging.Logger.Info("player sunk", "wave", l.game.WaveSystem.Number(), "tick", l.game.ECS.Tick)
	case event.WavesExhausted:
		logging.Logger.Info("all waves cleared", "tick", l.game.ECS.Tick)
	}
}

// Update runs one simulation tick. deltaTime is the real frame time in
// seconds; long frames are clamped so a stall does not teleport anything.
func (g *Game) Update(deltaTime float64, in input.Snapshot) {
	if g.metrics != nil {
		g.metrics.ObserveTick(deltaTime, g.ECS.Len())
	}
	dt := utils.Clamp(deltaTime, 0, config.MaxDeltaTime) * g.SpeedMultiplier
	g.ECS.TimeScale = dt * config.TicksPerSecond
	g.ECS.GameTime += dt
	g.ECS.Tick++

	g.UnitSystem.SetInput(in)
	for _, id := range g.ECS.Snapshot() {
		if _, ok := g.ECS.Units[id]; ok {
			g.UnitSystem.Step(id)
		} else if _, ok := g.ECS.Projectiles[id]; ok {
			g.ProjectileSystem.Step(id)
		}
	}

	if !g.gameOver {
		g.WaveSystem.Advance()
	}
}

// Draw renders the world through r.
func (g *Game) Draw(r system.Renderer) {
	g.RenderSystem.Draw(r)
}

// HandleSpeedClick cycles the simulation speed x1 -> x2 -> x4 -> x1.
func (g *Game) HandleSpeedClick() {
	g.speedIndex = (g.speedIndex + 1) % len(config.SpeedMultipliers)
	g.SpeedMultiplier = config.SpeedMultipliers[g.speedIndex]
}

// SpeedIndex is the position of the current multiplier in config.SpeedMultipliers.
func (g *Game) SpeedIndex() int {
	return g.speedIndex
}

// IsGameOver reports whether the player has been sunk.
func (g *Game) IsGameOver() bool {
	return g.gameOver
}

// IsCleared reports whether a finite wave list has been beaten.
func (g *Game) IsCleared() bool {
	return g.WaveSystem.Exhausted() && g.ECS.HostileCount() == 0
}

// Wave is the number of the wave in progress.
func (g *Game) Wave() int {
	return g.WaveSystem.Number()
}

// PlayerStatus is what the HUD shows about the player.
type PlayerStatus struct {
	Alive     bool
	Level     int
	Exp       int
	Health    int
	MaxHealth int
}

func (g *Game) PlayerStatus() PlayerStatus {
	ps, ok := g.ECS.PlayerState[g.PlayerID]
	if !ok {
		return PlayerStatus{}
	}
	u := g.ECS.Units[g.PlayerID]
	return PlayerStatus{
		Alive:     true,
		Level:     ps.Level,
		Exp:       ps.Exp,
		Health:    u.Health(),
		MaxHealth: u.MaxHealth,
	}
}

// ClearEnemies sinks every enemy on the field.
func (g *Game) ClearEnemies() int {
	return g.UnitSystem.KillAll(component.AISimple) + g.UnitSystem.KillAll(component.AIStalk)
}
