// internal/ui/draw.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face - шрифт всего интерфейса.
var Face font.Face = basicfont.Face7x13

var whitePixel *ebiten.Image

// fillSource - белый пиксель для DrawTriangles, создаётся при первой отрисовке.
func fillSource() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// clickPulse даёт короткое увеличение элемента после клика.
func clickPulse(last time.Time) float32 {
	if last.IsZero() {
		return 1
	}
	elapsed := time.Since(last).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

// fillPolygon заливает выпуклый многоугольник.
func fillPolygon(screen *ebiten.Image, clr color.Color, pts ...[2]float32) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, fillSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func strokePolygon(screen *ebiten.Image, clr color.Color, width float32, pts ...[2]float32) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], width, clr, true)
	}
}

// DrawText рисует строку, масштабированную в scale раз, с центром по cx.
// y - верхняя граница текста.
func DrawText(screen *ebiten.Image, s string, cx, y float64, scale float64, clr color.Color) {
	bounds := text.BoundString(Face, s)
	w := float64(bounds.Dx()) * scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-w/2, y-float64(bounds.Min.Y)*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, Face, op)
}

// drawOutlinedText рисует текст с обводкой в thickness пикселей.
func drawOutlinedText(screen *ebiten.Image, s string, cx, y, scale float64, clr, outline color.Color, thickness int) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(screen, s, cx+float64(dx), y+float64(dy), scale, outline)
		}
	}
	DrawText(screen, s, cx, y, scale, clr)
}

func inCircle(mx, my int, cx, cy, r float32) bool {
	dx := float32(mx) - cx
	dy := float32(my) - cy
	return dx*dx+dy*dy <= r*r
}
