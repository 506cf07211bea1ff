package system

import (
	"testing"

	"go-shmup/internal/component"
	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/input"
	"go-shmup/pkg/vec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerAI_MovesAndFlips(t *testing.T) {
	w := newWorld(t)
	id, err := w.spawner.SpawnPlayer()
	require.NoError(t, err)
	tr := w.ecs.Transforms[id]

	w.units.SetInput(input.Snapshot{Right: true})
	w.units.Step(id)
	assert.Equal(t, config.PlayerStartX+config.PlayerSpeed, tr.Pos.X)
	assert.False(t, tr.Flipped)

	w.units.SetInput(input.Snapshot{Left: true})
	w.units.Step(id)
	w.units.Step(id)
	assert.Equal(t, config.PlayerStartX-config.PlayerSpeed, tr.Pos.X)
	assert.True(t, tr.Flipped)

	// nothing pressed: stays put and keeps facing
	w.units.SetInput(input.Snapshot{})
	w.units.Step(id)
	assert.Equal(t, config.PlayerStartX-config.PlayerSpeed, tr.Pos.X)
	assert.True(t, tr.Flipped)
}

func TestPlayerAI_ClampedToScreen(t *testing.T) {
	w := newWorld(t)
	id, err := w.spawner.SpawnPlayer()
	require.NoError(t, err)
	w.ecs.Transforms[id].Pos = vec.New(21, config.PlayerStartY)

	w.units.SetInput(input.Snapshot{Left: true})
	w.units.Step(id)
	assert.Equal(t, 20.0, w.ecs.Transforms[id].Pos.X)

	w.ecs.Transforms[id].Pos = vec.New(config.ScreenWidth-21, config.PlayerStartY)
	w.units.SetInput(input.Snapshot{Right: true})
	w.units.Step(id)
	assert.Equal(t, config.ScreenWidth-20.0, w.ecs.Transforms[id].Pos.X)
}

func TestPlayerAI_Weapons(t *testing.T) {
	w := newWorld(t)
	id, err := w.spawner.SpawnPlayer()
	require.NoError(t, err)

	w.units.SetInput(input.Snapshot{FireArc: true})
	w.units.Step(id)
	shots := w.projectileIDs()
	require.Len(t, shots, 1)
	assert.Equal(t, vec.New(config.PlayerStartX+40, config.PlayerStartY-20), w.ecs.Transforms[shots[0]].Pos)
	assert.Equal(t, vec.New(12, -12), w.ecs.Velocities[shots[0]].V)
	assert.Equal(t, 20, w.ecs.Projectiles[shots[0]].Power)
	assert.Equal(t, id, w.ecs.Projectiles[shots[0]].Owner)

	// lob is locked at level 1
	w.ecs.Units[id].ResetCooldowns()
	w.units.SetInput(input.Snapshot{FireLob: true})
	w.units.Step(id)
	assert.Len(t, w.projectileIDs(), 1)

	w.ecs.PlayerState[id].Level = config.LobShotLevel
	w.units.Step(id)
	require.Len(t, w.projectileIDs(), 2)
	assert.Equal(t, config.PlayerCooldown*1.5, w.ecs.Units[id].Cooldowns[0])
}

func TestPlayerAI_CheatSinksSimpleEnemies(t *testing.T) {
	w := newWorld(t)
	id, err := w.spawner.SpawnPlayer()
	require.NoError(t, err)
	stalk := testArchetype("stalker")
	stalk.Pattern = defs.PatternStalk
	_, err = w.spawner.SpawnEnemy(testArchetype("probe"), vec.New(300, 200))
	require.NoError(t, err)
	stalker, err := w.spawner.SpawnEnemy(stalk, vec.New(500, 200))
	require.NoError(t, err)

	w.units.SetInput(input.Snapshot{Cheat: true})
	w.units.Step(id)
	assert.Equal(t, 1, w.ecs.HostileCount())
	assert.True(t, w.ecs.Alive(stalker))
}

func TestSimpleAI_PatrolReversesAtBounds(t *testing.T) {
	w := newWorld(t)
	def := testArchetype("probe")
	id, err := w.spawner.SpawnEnemy(def, vec.New(def.Bounds.MaxX-1, 200))
	require.NoError(t, err)
	tr := w.ecs.Transforms[id]

	w.units.Step(id)
	assert.Equal(t, def.Bounds.MaxX+1, tr.Pos.X)
	assert.Equal(t, -def.Speed, w.ecs.Enemies[id].HSpeed)
	assert.True(t, tr.Flipped)

	w.units.Step(id)
	assert.Equal(t, def.Bounds.MaxX-1, tr.Pos.X)

	tr.Pos = vec.New(def.Bounds.MinX+1, 200)
	w.units.Step(id)
	w.units.Step(id)
	assert.Equal(t, def.Speed, w.ecs.Enemies[id].HSpeed)
	assert.False(t, tr.Flipped)
}

func TestSimpleAI_VerticalBounce(t *testing.T) {
	w := newWorld(t)
	def := testArchetype("diver")
	def.VSpeed = 3
	id, err := w.spawner.SpawnEnemy(def, vec.New(600, def.Bounds.MaxY-1))
	require.NoError(t, err)

	w.units.Step(id)
	assert.Equal(t, -3.0, w.ecs.Enemies[id].VSpeed)
}

func TestSimpleAI_HoldsFireWhenDamagedOrOffScreen(t *testing.T) {
	w := newWorld(t)
	_, err := w.spawner.SpawnPlayer()
	require.NoError(t, err)
	def := testArchetype("armored")
	def.Parts = []defs.PartDef{{Sprite: "plate", MinHealth: 60, Behavior: defs.BehaviorDef{Type: defs.BehaviorNone}}}

	intact, err := w.spawner.SpawnEnemy(def, vec.New(400, 200))
	require.NoError(t, err)
	w.units.Step(intact)
	assert.Len(t, w.projectileIDs(), 1)

	damaged, err := w.spawner.SpawnEnemy(def, vec.New(600, 200))
	require.NoError(t, err)
	w.ecs.Units[damaged].Damage = 50
	w.units.Step(damaged)
	assert.Len(t, w.projectileIDs(), 1, "a lost plate suppresses fire")

	away, err := w.spawner.SpawnEnemy(def, vec.New(-300, 200))
	require.NoError(t, err)
	w.units.Step(away)
	assert.Len(t, w.projectileIDs(), 1, "off-screen enemies do not shoot")
}

func TestStalkAI_TracksPlayerAndIgnoresDamage(t *testing.T) {
	w := newWorld(t)
	_, err := w.spawner.SpawnPlayer()
	require.NoError(t, err)
	def := testArchetype("stalker")
	def.Pattern = defs.PatternStalk
	def.Parts = []defs.PartDef{{Sprite: "plate", MinHealth: 90, Behavior: defs.BehaviorDef{Type: defs.BehaviorNone}}}

	id, err := w.spawner.SpawnEnemy(def, vec.New(300, 200))
	require.NoError(t, err)
	w.ecs.Units[id].Damage = 50
	tr := w.ecs.Transforms[id]

	w.units.Step(id)
	assert.Equal(t, 300+def.Speed, tr.Pos.X)
	assert.False(t, tr.Flipped)
	assert.Len(t, w.projectileIDs(), 1)

	// never overshoots
	tr.Pos = vec.New(config.PlayerStartX+1, 200)
	w.units.Step(id)
	assert.Equal(t, float64(config.PlayerStartX), tr.Pos.X)
	assert.True(t, tr.Flipped)
}

func TestStalkAI_IdleWithoutPlayer(t *testing.T) {
	w := newWorld(t)
	def := testArchetype("stalker")
	def.Pattern = defs.PatternStalk
	id, err := w.spawner.SpawnEnemy(def, vec.New(300, 200))
	require.NoError(t, err)

	w.units.Step(id)
	assert.Equal(t, 300.0, w.ecs.Transforms[id].Pos.X)
	assert.Empty(t, w.projectileIDs())
	assert.Equal(t, component.AIStalk, w.ecs.Units[id].AI)
}
