// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y      float32
	MaxLevels int // сколько ячеек уровня рисовать
	FillColor color.Color
}

const (
	xpBarWidth      = 118
	xpBarHeight     = 12
	levelRectWidth  = 16
	levelRectHeight = 12
	levelRectGap    = 9
	borderWidth     = 1
)

var borderColor = color.White

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32, maxLevels int, fill color.Color) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, MaxLevels: maxLevels, FillColor: fill}
}

// xpFill - доля заполнения полосы опыта, в пределах [0, 1].
func xpFill(currentXP, xpToNext int) float64 {
	if xpToNext <= 0 || currentXP <= 0 {
		return 0
	}
	return min(float64(currentXP)/float64(xpToNext), 1)
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	// 1. Обводка полосы опыта
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * xpFill(currentXP, xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, i.FillColor, true)
	}

	// 3. Ячейки уровня
	rectY := i.Y + xpBarHeight + 10
	for j := 0; j < i.MaxLevels; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, i.FillColor, true)
		}
	}
	// уровни сверх ячеек - числом
	if level > i.MaxLevels {
		x := i.X + float32(i.MaxLevels)*(levelRectWidth+levelRectGap) + 8
		DrawText(screen, "+"+strconv.Itoa(level-i.MaxLevels), float64(x), float64(rectY), 1, borderColor)
	}
}
