// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService owns the simulation's only random source. A fixed seed
// replays the same fire rolls.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// OneIn reports true with probability 1/n. n <= 1 is always true.
func (s *PRNGService) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return s.rng.Intn(n) == 0
}
