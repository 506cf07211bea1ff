package system

import (
	"testing"
	"time"

	"go-shmup/internal/component"
	"go-shmup/pkg/vec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_UnitWithPartsAndHealthBar(t *testing.T) {
	w := newWorld(t)
	w.sprites.sizes["turret"] = vec.New(20, 10)
	id := w.addUnit(vec.New(100, 100), 100)
	turret, _ := w.sprites.Animation("turret", true)
	plate, _ := w.sprites.Animation("plate", true)
	u := w.ecs.Units[id]
	u.Parts = []component.Part{
		{RelPos: vec.New(40, 0), Visual: turret, MinHealth: 10},
		{RelPos: vec.New(-40, 0), Visual: plate, MinHealth: 80},
	}
	u.Damage = 25

	r := &recordingRenderer{}
	NewRenderSystem(w.ecs).Draw(r)

	require.Len(t, r.sprites, 2, "hull and the surviving turret")
	assert.Equal(t, "hull", r.sprites[0].Key)
	assert.Equal(t, vec.New(80, 80), r.positions[0])
	assert.Equal(t, "turret", r.sprites[1].Key)
	assert.Equal(t, vec.New(130, 95), r.positions[1])

	require.Len(t, r.rects, 2)
	assert.Equal(t, vec.Rect{Min: vec.New(80, 125), Max: vec.New(120, 130)}, r.rects[0])
	assert.Equal(t, vec.Rect{Min: vec.New(80, 125), Max: vec.New(110, 130)}, r.rects[1])
}

func TestRender_FlippedUnitMirrorsFrames(t *testing.T) {
	w := newWorld(t)
	id := w.addUnit(vec.New(100, 100), 100)
	w.ecs.Transforms[id].Flipped = true

	r := &recordingRenderer{}
	NewRenderSystem(w.ecs).Draw(r)
	require.NotEmpty(t, r.sprites)
	assert.True(t, r.sprites[0].Mirrored)
}

func TestRender_ExhaustedEffectIsRemoved(t *testing.T) {
	w := newWorld(t)
	boom, _ := w.sprites.Animation("boom", false)
	fx := w.units.SpawnEffect(vec.New(50, 50), boom)
	rs := NewRenderSystem(w.ecs)

	r := &recordingRenderer{}
	rs.Draw(r)
	assert.Len(t, r.sprites, 1)
	assert.True(t, w.ecs.Alive(fx))

	w.sprites.now = w.sprites.now.Add(50 * time.Millisecond)
	rs.Draw(r)
	assert.Equal(t, 1, r.sprites[1].Index)

	w.sprites.now = w.sprites.now.Add(time.Second)
	rs.Draw(r)
	assert.Len(t, r.sprites, 2)
	assert.False(t, w.ecs.Alive(fx))
}

func TestRender_DeadUnitHasNoFillBar(t *testing.T) {
	w := newWorld(t)
	id := w.addUnit(vec.New(100, 100), 10)
	w.ecs.Units[id].Damage = 10

	r := &recordingRenderer{}
	NewRenderSystem(w.ecs).Draw(r)
	assert.Len(t, r.rects, 1)
}
