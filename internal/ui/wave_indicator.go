// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float64
	Scale            float64
	Color            color.Color
	BossColor        color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y, scale float64, clr, bossColor color.Color) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Scale:            scale,
		Color:            clr,
		BossColor:        bossColor,
		OutlineColor:     color.Black,
		OutlineThickness: 2,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// waveColor: каждая десятая волна подсвечивается.
func (i *WaveIndicator) waveColor(waveNumber int) color.Color {
	if waveNumber%10 == 0 {
		return i.BossColor
	}
	return i.Color
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	drawOutlinedText(screen, toRoman(waveNumber), i.X, i.Y, i.Scale, i.waveColor(waveNumber), i.OutlineColor, i.OutlineThickness)
}
