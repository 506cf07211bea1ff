// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton - кнопка переключения скорости (x1/x2/x4), два треугольника.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * clickPulse(b.LastClickTime)
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	left := [][2]float32{{b.X - width, b.Y - height/2}, {b.X, b.Y}, {b.X - width, b.Y + height/2}}
	right := [][2]float32{{b.X - width + offset, b.Y - height/2}, {b.X + offset, b.Y}, {b.X - width + offset, b.Y + height/2}}
	for _, tri := range [][][2]float32{left, right} {
		fillPolygon(screen, clr, tri...)
		strokePolygon(screen, color.White, 1, tri...)
	}
}

func (b *SpeedButton) IsClicked(mx, my int) bool {
	// форма сложная, попадание считаем по кругу
	return inCircle(mx, my, b.X, b.Y, b.Size*1.5)
}

// SetState синхронизирует кнопку с текущей скоростью игры.
func (b *SpeedButton) SetState(state int) {
	if state != b.CurrentState {
		b.CurrentState = state
		b.LastClickTime = time.Now()
	}
}
