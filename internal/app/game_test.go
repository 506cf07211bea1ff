package app

import (
	"net/http/httptest"
	"testing"

	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/input"
	"go-shmup/internal/metrics"
	"go-shmup/internal/visual"
	"go-shmup/pkg/vec"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSprites struct{}

func (stubSprites) Animation(key string, repeat bool) (visual.Animation, error) {
	return visual.NewCycle(key, 1, vec.New(40, 40), repeat, nil), nil
}

const testData = `{
  "archetypes": [
    {"id": "probe", "life": 30},
    {"id": "stalker", "pattern": "stalk", "exp": 15}
  ],
  "waves": [["probe", "probe"], ["stalker"]],
  "cyclic": false
}`

func newTestGame(t *testing.T, m *metrics.Exporter) *Game {
	t.Helper()
	lib, err := defs.Parse([]byte(testData))
	require.NoError(t, err)
	g, err := NewGame(Options{Library: lib, Sprites: stubSprites{}, Seed: 7, Metrics: m})
	require.NoError(t, err)
	return g
}

func TestNewGame_RequiresContent(t *testing.T) {
	_, err := NewGame(Options{Sprites: stubSprites{}})
	assert.ErrorIs(t, err, ErrNoLibrary)
	_, err = NewGame(Options{Library: &defs.Library{}})
	assert.ErrorIs(t, err, ErrNoSprites)
}

func TestGame_FirstUpdateSpawnsWave(t *testing.T) {
	g := newTestGame(t, nil)
	status := g.PlayerStatus()
	require.True(t, status.Alive)
	assert.Equal(t, 1, status.Level)
	assert.Zero(t, g.Wave())

	g.Update(1.0/60, input.Snapshot{})
	assert.Equal(t, 1, g.Wave())
	assert.Equal(t, 2, g.ECS.HostileCount())
	assert.Equal(t, 24, g.PlayerStatus().Exp)

	g.Update(1.0/60, input.Snapshot{})
	assert.Equal(t, 1, g.Wave(), "no new wave while enemies are alive")
}

func TestGame_TimeScaleClampAndSpeed(t *testing.T) {
	g := newTestGame(t, nil)

	g.Update(1.0/60, input.Snapshot{})
	assert.InDelta(t, 1.0, g.ECS.TimeScale, 1e-9)

	g.Update(2.5, input.Snapshot{})
	assert.InDelta(t, config.MaxDeltaTime*config.TicksPerSecond, g.ECS.TimeScale, 1e-9)

	g.HandleSpeedClick()
	assert.Equal(t, 1, g.SpeedIndex())
	g.Update(1.0/60, input.Snapshot{})
	assert.InDelta(t, 2.0, g.ECS.TimeScale, 1e-9)

	g.HandleSpeedClick()
	g.HandleSpeedClick()
	assert.Equal(t, 0, g.SpeedIndex())
	assert.Equal(t, 1.0, g.SpeedMultiplier)
	assert.Equal(t, uint64(3), g.ECS.Tick)
}

func TestGame_ClearingWavesUntilDone(t *testing.T) {
	g := newTestGame(t, nil)

	g.Update(1.0/60, input.Snapshot{})
	assert.Equal(t, 2, g.ClearEnemies())
	g.Update(1.0/60, input.Snapshot{})
	assert.Equal(t, 2, g.Wave())
	assert.Equal(t, 1, g.ClearEnemies())
	// 2x12 for the probes, 12 for the stalker spawn, 15 for the stalker kill
	assert.Equal(t, 51, g.PlayerStatus().Exp)

	g.Update(1.0/60, input.Snapshot{})
	assert.True(t, g.IsCleared())
	assert.False(t, g.IsGameOver())
}

func TestGame_PlayerDeathEndsWaves(t *testing.T) {
	g := newTestGame(t, nil)
	g.ECS.Units[g.PlayerID].Damage = config.PlayerMaxHealth
	require.True(t, g.UnitSystem.CheckDead(g.PlayerID))

	assert.True(t, g.IsGameOver())
	assert.False(t, g.PlayerStatus().Alive)

	g.Update(1.0/60, input.Snapshot{})
	assert.Zero(t, g.Wave())
}

func TestGame_PlayerShootsThroughUpdate(t *testing.T) {
	g := newTestGame(t, nil)
	g.Update(1.0/60, input.Snapshot{FireUp: true})
	assert.Len(t, g.ECS.Projectiles, 1)
}

func TestGame_FeedsMetrics(t *testing.T) {
	m := metrics.NewExporter()
	g := newTestGame(t, m)

	g.Update(1.0/60, input.Snapshot{FireArc: true})
	g.ClearEnemies()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, "shmup_projectiles_fired_total 1")
	assert.Contains(t, body, `shmup_units_killed_total{archetype="probe"} 2`)
	assert.Contains(t, body, "shmup_wave_current 1")
	n, err := testutil.GatherAndCount(m.Registry(), "shmup_entities_live")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
