// internal/system/wave.go
package system

import (
	"go-shmup/internal/config"
	"go-shmup/internal/defs"
	"go-shmup/internal/entity"
	"go-shmup/internal/event"
	"go-shmup/internal/logging"
	"go-shmup/pkg/vec"
)

// WaveSystem spawns the next wave once the field is clear of enemies.
type WaveSystem struct {
	ecs             *entity.ECS
	library         *defs.Library
	spawner         *Spawner
	players         *PlayerSystem
	eventDispatcher *event.Dispatcher

	next      int // index into library.Waves
	number    int // waves started so far
	exhausted bool
}

func NewWaveSystem(ecs *entity.ECS, library *defs.Library, spawner *Spawner, players *PlayerSystem, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		library:         library,
		spawner:         spawner,
		players:         players,
		eventDispatcher: eventDispatcher,
	}
}

// Advance is polled once per update. It spawns the whole next wave when no
// enemy is alive and reports whether it did.
func (s *WaveSystem) Advance() bool {
	if s.exhausted || s.ecs.HostileCount() > 0 {
		return false
	}
	if s.next >= len(s.library.Waves) {
		if !s.library.Cyclic || len(s.library.Waves) == 0 {
			s.exhausted = true
			logging.Logger.Info("wave list exhausted", "waves", s.number)
			s.eventDispatcher.Dispatch(event.Event{Type: event.WavesExhausted})
			return false
		}
		s.next = 0
	}

	wave := s.library.Waves[s.next]
	s.next++
	s.number++

	copies := make(map[string]int)
	spawned := 0
	for _, name := range wave {
		def, err := s.library.Archetype(name)
		if err != nil {
			logging.Logger.Error("skipping spawn", "wave", s.number, "err", err)
			continue
		}
		// copies of the same archetype trail each other into the screen
		pos := def.Spawn.Vec().Sub(vec.New(float64(copies[name])*config.WaveSpawnSpacing, 0))
		copies[name]++

		if _, err := s.spawner.SpawnEnemy(def, pos); err != nil {
			logging.Logger.Error("spawn failed", "wave", s.number, "archetype", name, "err", err)
			continue
		}
		spawned++
		if bounty := s.players.SpawnBounty(); bounty > 0 {
			s.players.GainExp(bounty)
		}
	}

	logging.Logger.Info("wave started", "wave", s.number, "spawned", spawned)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveStartedData{Number: s.number, Spawned: spawned}})
	return true
}

// Number is the count of waves started so far.
func (s *WaveSystem) Number() int {
	return s.number
}

// Exhausted reports whether a non-cyclic wave list has run out.
func (s *WaveSystem) Exhausted() bool {
	return s.exhausted
}
