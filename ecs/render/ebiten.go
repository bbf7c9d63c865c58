package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// liftScale converts one unit of Z into a fraction of a cell of upward
// screen offset.
const liftScale = 0.25

var labelFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// DrawEbiten paints scene onto screen with cell pixels per grid unit. Grid
// row 0 sits at the bottom of the screen, shifted by the scene view.
func DrawEbiten(screen *ebiten.Image, scene *Scene, cell float64) {
	if screen == nil || scene == nil || cell <= 0 {
		return
	}
	height := float64(screen.Bounds().Dy())
	vx, vy := scene.View()

	for _, sp := range scene.Sprites() {
		if sp.Color == nil {
			continue
		}
		px := (sp.X - vx) * cell
		py := height - (sp.Y-vy+sp.H)*cell - sp.Z*cell*liftScale
		vector.FillRect(screen, float32(px), float32(py), float32(sp.W*cell), float32(sp.H*cell), sp.Color, false)
	}

	for _, l := range scene.Labels() {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(l.X*cell, height-(l.Y+1)*cell)
		clr := l.Color
		if clr == nil {
			clr = color.White
		}
		op.ColorScale.ScaleWithColor(clr)
		ebtext.Draw(screen, l.Text, labelFace, op)
	}
}
