// internal/component/projectile.go
package component

import "go-shmup/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	Power   int
	Gravity float64 // added to vertical velocity every nominal tick
	Armed   bool    // false until the projectile has left every unit's box
	Owner   types.EntityID
}
