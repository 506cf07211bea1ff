// internal/entity/ecs.go
package entity

import (
	"go-shmup/internal/component"
	"go-shmup/internal/types"
)

// ECS owns every live entity of one world. Removal is immediate and
// idempotent; systems iterate over Snapshot() so removing or spawning
// entities mid-tick never skips or double-processes anyone.
type ECS struct {
	Tick      uint64  // simulation ticks run so far
	GameTime  float64 // seconds of simulated time
	TimeScale float64 // elapsed time of the current tick in nominal 1/60 s ticks

	NextID      types.EntityID
	Transforms  map[types.EntityID]*component.Transform
	Velocities  map[types.EntityID]*component.Velocity
	Renderables map[types.EntityID]*component.Renderable
	Units       map[types.EntityID]*component.Unit
	Projectiles map[types.EntityID]*component.Projectile
	Effects     map[types.EntityID]*component.Effect
	Enemies     map[types.EntityID]*component.Enemy
	PlayerState map[types.EntityID]*component.PlayerStateComponent

	order []types.EntityID // live entities in creation order
	live  map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		TimeScale:   1,
		NextID:      1,
		Transforms:  make(map[types.EntityID]*component.Transform),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Units:       make(map[types.EntityID]*component.Unit),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Effects:     make(map[types.EntityID]*component.Effect),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		PlayerState: make(map[types.EntityID]*component.PlayerStateComponent),
		live:        make(map[types.EntityID]struct{}),
	}
}

// NewEntity allocates an ID and registers it as live.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.order = append(ecs.order, id)
	ecs.live[id] = struct{}{}
	return id
}

// Alive reports whether the entity is still part of the world.
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.live[id]
	return ok
}

// Remove drops the entity and all of its components. Removing an entity
// that is already gone is a no-op; the return value tells which case it was.
func (ecs *ECS) Remove(id types.EntityID) bool {
	if !ecs.Alive(id) {
		return false
	}
	delete(ecs.live, id)
	delete(ecs.Transforms, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Units, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Effects, id)
	delete(ecs.Enemies, id)
	delete(ecs.PlayerState, id)
	for i, e := range ecs.order {
		if e == id {
			ecs.order = append(ecs.order[:i], ecs.order[i+1:]...)
			break
		}
	}
	return true
}

// Snapshot returns the live IDs in creation order. The slice is a copy.
func (ecs *ECS) Snapshot() []types.EntityID {
	out := make([]types.EntityID, len(ecs.order))
	copy(out, ecs.order)
	return out
}

// Len is the number of live entities.
func (ecs *ECS) Len() int {
	return len(ecs.order)
}

// Player returns the player entity, if it is still alive.
func (ecs *ECS) Player() (types.EntityID, bool) {
	for _, id := range ecs.order {
		if _, ok := ecs.PlayerState[id]; ok {
			return id, true
		}
	}
	return 0, false
}

// HostileCount counts live units that are not the player.
func (ecs *ECS) HostileCount() int {
	n := 0
	for id := range ecs.Units {
		if _, isPlayer := ecs.PlayerState[id]; !isPlayer {
			n++
		}
	}
	return n
}
