// internal/state/resources.go
package state

import (
	"image"

	"go-shmup/internal/assets"
	"go-shmup/internal/audio"
	"go-shmup/internal/defs"
	"go-shmup/internal/input"
	"go-shmup/internal/metrics"
)

// Resources - всё, что загружено один раз при старте и переживает рестарты.
type Resources struct {
	Library    *defs.Library
	Sprites    *assets.Bank
	Audio      audio.Service
	Metrics    *metrics.Exporter // может быть nil
	Background image.Image       // может быть nil
	Input      input.Source
	Seed       int64
	Debug      bool
}
