// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 6.0
	HealthCircleSpacing = 4.0
	HealthPerCircle     = 10
)

var (
	healthHighColor  = color.RGBA{0, 90, 255, 255}
	healthLowColor   = color.RGBA{220, 30, 30, 255}
	healthEmptyColor = color.Black
)

// PlayerHealthIndicator отображает здоровье игрока рядом кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// circleColors - цвет каждого кружка. Полный кружок - HealthPerCircle единиц.
// Пока здоровья больше половины, "избыток" синий, остальное красное.
func circleColors(health, maxHealth int) []color.Color {
	circles := (maxHealth + HealthPerCircle - 1) / HealthPerCircle
	filled := (max(health, 0) + HealthPerCircle - 1) / HealthPerCircle
	half := circles / 2

	out := make([]color.Color, circles)
	for j := range out {
		switch {
		case j >= filled:
			out[j] = healthEmptyColor
		case filled > half && j < filled-half:
			out[j] = healthHighColor
		default:
			out[j] = healthLowColor
		}
	}
	return out
}

// Draw рисует индикатор здоровья игрока.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	for j, clr := range circleColors(health, maxHealth) {
		row := j / HealthCols
		col := j % HealthCols
		cx := i.X + HealthCircleRadius + float32(col)*(HealthCircleRadius*2+HealthCircleSpacing)
		cy := i.Y + HealthCircleRadius + float32(row)*(HealthCircleRadius*2+HealthCircleSpacing)
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, clr, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	label := strconv.Itoa(max(health, 0)) + "/" + strconv.Itoa(maxHealth)
	width := float64(HealthCols) * (HealthCircleRadius*2 + HealthCircleSpacing)
	DrawText(screen, label, float64(i.X)+width/2, float64(i.Y)-18, 1, color.White)
}
