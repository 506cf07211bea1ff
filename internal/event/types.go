// internal/event/types.go
package event

import "go-shmup/internal/types"

const (
	UnitKilled      EventType = "UnitKilled"      // Юнит уничтожен (Data: UnitKilledData)
	UnitDamaged     EventType = "UnitDamaged"     // Попадание снаряда (Data: UnitDamagedData)
	ProjectileFired EventType = "ProjectileFired" // Выстрел (Data: types.EntityID of the shooter)
	WaveStarted     EventType = "WaveStarted"     // Новая волна (Data: WaveStartedData)
	WavesExhausted  EventType = "WavesExhausted"  // Список волн закончился
	PlayerLevelUp   EventType = "PlayerLevelUp"   // Data: new level (int)
	PlayerKilled    EventType = "PlayerKilled"
)

// UnitKilledData is the payload of UnitKilled.
type UnitKilledData struct {
	ID        types.EntityID
	Archetype string // empty for the player
	Exp       int    // bounty paid to the player
	IsPlayer  bool
}

// UnitDamagedData is the payload of UnitDamaged.
type UnitDamagedData struct {
	ID    types.EntityID
	Power int
}

// WaveStartedData is the payload of WaveStarted.
type WaveStartedData struct {
	Number  int // 1-based, keeps counting across cycles
	Spawned int
}
