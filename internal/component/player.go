// internal/component/player.go
package component

// PlayerStateComponent хранит уровень и опыт игрока.
type PlayerStateComponent struct {
	Level   int
	Exp     int
	Speed   float64
	Unlocks map[int][]Part // parts mounted when the player reaches the level
}
