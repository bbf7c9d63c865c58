package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// DrawTerminal paints scene onto a tcell screen, one character cell per
// grid unit horizontally and vertically. Grid row 0 is the bottom line.
func DrawTerminal(screen tcell.Screen, scene *Scene) {
	if screen == nil || scene == nil {
		return
	}
	width, height := screen.Size()
	vx, vy := scene.View()

	screen.Clear()
	for _, sp := range scene.Sprites() {
		if sp.Color == nil {
			continue
		}
		style := tcell.StyleDefault.Background(toTcell(sp.Color))
		x0 := int(math.Round(sp.X - vx))
		x1 := int(math.Round(sp.X - vx + sp.W))
		y0 := int(math.Round(sp.Y - vy))
		y1 := int(math.Round(sp.Y - vy + sp.H))
		for gy := y0; gy < y1; gy++ {
			row := height - 1 - gy
			if row < 0 || row >= height {
				continue
			}
			for gx := x0; gx < x1; gx++ {
				if gx < 0 || gx >= width {
					continue
				}
				screen.SetContent(gx, row, ' ', nil, style)
			}
		}
	}

	for _, l := range scene.Labels() {
		clr := l.Color
		if clr == nil {
			clr = color.White
		}
		style := tcell.StyleDefault.Foreground(toTcell(clr))
		row := height - 1 - int(math.Round(l.Y))
		if row < 0 || row >= height {
			continue
		}
		col := int(math.Round(l.X))
		x := col
		for _, r := range l.Text {
			if x >= width {
				break
			}
			if x >= 0 {
				screen.SetContent(x, row, r, nil, style)
			}
			x++
		}
	}
	screen.Show()
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
