package entity

import (
	"testing"

	"go-shmup/internal/component"
	"go-shmup/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestECS_RemoveIsIdempotent(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	ecs.Units[a] = &component.Unit{MaxHealth: 10}
	ecs.Transforms[a] = &component.Transform{}

	assert.True(t, ecs.Remove(a))
	assert.False(t, ecs.Remove(a), "второе удаление не должно ничего делать")
	assert.False(t, ecs.Alive(a))
	assert.NotContains(t, ecs.Units, a)
	assert.NotContains(t, ecs.Transforms, a)
	assert.Equal(t, []types.EntityID{b}, ecs.Snapshot())
}

func TestECS_SnapshotIsStableUnderMutation(t *testing.T) {
	ecs := NewECS()
	ids := []types.EntityID{ecs.NewEntity(), ecs.NewEntity(), ecs.NewEntity()}

	snap := ecs.Snapshot()
	ecs.Remove(ids[1])
	late := ecs.NewEntity()

	assert.Equal(t, ids, snap)
	assert.Equal(t, []types.EntityID{ids[0], ids[2], late}, ecs.Snapshot())
	assert.Equal(t, 3, ecs.Len())
}

func TestECS_PlayerAndHostiles(t *testing.T) {
	ecs := NewECS()
	p := ecs.NewEntity()
	ecs.Units[p] = &component.Unit{}
	ecs.PlayerState[p] = &component.PlayerStateComponent{Level: 1}
	e := ecs.NewEntity()
	ecs.Units[e] = &component.Unit{}

	id, ok := ecs.Player()
	assert.True(t, ok)
	assert.Equal(t, p, id)
	assert.Equal(t, 1, ecs.HostileCount())

	ecs.Remove(e)
	assert.Equal(t, 0, ecs.HostileCount())
	ecs.Remove(p)
	_, ok = ecs.Player()
	assert.False(t, ok)
}
