// internal/system/player_system.go
package system

import (
	"go-shmup/internal/config"
	"go-shmup/internal/entity"
	"go-shmup/internal/event"
	"go-shmup/internal/logging"
)

// PlayerSystem отвечает за опыт и уровни игрока.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{ecs: ecs, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(event.UnitKilled, s)
	return s
}

// OnEvent pays out kill bounties.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.UnitKilled {
		return
	}
	data, ok := e.Data.(event.UnitKilledData)
	if !ok {
		return
	}
	if data.IsPlayer {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerKilled})
		return
	}
	if data.Exp > 0 {
		s.GainExp(data.Exp)
	}
}

// SpawnBounty is the experience granted for one spawned enemy: fewer points
// the higher the player's level.
func (s *PlayerSystem) SpawnBounty() int {
	id, ok := s.ecs.Player()
	if !ok {
		return 0
	}
	level := s.ecs.PlayerState[id].Level
	if level < 1 {
		level = 1
	}
	return config.WaveExpBase / level
}

// GainExp adds experience and applies every level-up it causes. Returns the
// number of levels gained.
func (s *PlayerSystem) GainExp(amount int) int {
	id, ok := s.ecs.Player()
	if !ok {
		return 0
	}
	ps := s.ecs.PlayerState[id]
	u := s.ecs.Units[id]

	ps.Exp += amount
	gained := 0
	for ps.Exp > config.PlayerExpPerStep {
		ps.Exp -= config.PlayerExpPerStep
		ps.Level++
		gained++

		if parts, ok := ps.Unlocks[ps.Level]; ok {
			u.Parts = append(u.Parts, parts...)
			delete(ps.Unlocks, ps.Level)
		}
		logging.Logger.Info("player level up", "level", ps.Level, "exp", ps.Exp)
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerLevelUp, Data: ps.Level})
	}
	if gained > 0 {
		u.ResetCooldowns()
	}
	return gained
}
