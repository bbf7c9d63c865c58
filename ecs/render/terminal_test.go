package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func background(screen tcell.Screen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestDrawTerminalFlipsRows(t *testing.T) {
	screen := simScreen(t, 4, 3)
	scene := NewScene()
	scene.AddSprite(&Sprite{X: 1, Y: 0, W: 2, H: 1, Color: colornames.Red})

	DrawTerminal(screen, scene)

	red := toTcell(colornames.Red)
	assert.Equal(t, red, background(screen, 1, 2))
	assert.Equal(t, red, background(screen, 2, 2))
	assert.NotEqual(t, red, background(screen, 0, 2))
	assert.NotEqual(t, red, background(screen, 1, 0))
}

func TestDrawTerminalAppliesView(t *testing.T) {
	screen := simScreen(t, 4, 3)
	scene := NewScene()
	scene.AddSprite(&Sprite{X: 0, Y: 5, W: 1, H: 1, Color: colornames.Blue})
	scene.SetView(0, 5)

	DrawTerminal(screen, scene)
	assert.Equal(t, toTcell(colornames.Blue), background(screen, 0, 2))
}

func TestDrawTerminalZOrder(t *testing.T) {
	screen := simScreen(t, 2, 1)
	scene := NewScene()
	scene.AddSprite(&Sprite{W: 1, H: 1, Z: 10, Color: colornames.Lime})
	scene.AddSprite(&Sprite{W: 1, H: 1, Z: -10, Color: colornames.Navy})

	DrawTerminal(screen, scene)
	assert.Equal(t, toTcell(colornames.Lime), background(screen, 0, 0))
}

func TestDrawTerminalLabels(t *testing.T) {
	screen := simScreen(t, 10, 2)
	scene := NewScene()
	scene.AddLabel(&Label{Text: "SCORE", X: 1, Y: 1})

	DrawTerminal(screen, scene)

	var got []rune
	for x := 1; x < 6; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		got = append(got, r)
	}
	assert.Equal(t, "SCORE", string(got))
}

func TestDrawTerminalLabelColumnsCountRunes(t *testing.T) {
	screen := simScreen(t, 10, 1)
	scene := NewScene()
	scene.AddLabel(&Label{Text: "éüx", X: 0, Y: 0})

	DrawTerminal(screen, scene)

	var got []rune
	for x := 0; x < 3; x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		got = append(got, r)
	}
	assert.Equal(t, "éüx", string(got))
}

func TestDrawTerminalNilSafe(t *testing.T) {
	assert.NotPanics(t, func() { DrawTerminal(nil, NewScene()) })
}
