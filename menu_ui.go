package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/frogger/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
)

type menuButton struct {
	label   string
	onClick func()
}

// newMenuUI builds a centered panel with a title, an optional body line and a
// column of buttons. Buttons use colored nine-slices so no theme fonts need
// loading. The returned text is the body, nil when body is empty.
func newMenuUI(title, body string, buttons ...menuButton) (*ebitenui.UI, *widget.Text) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, white),
		widget.TextOpts.WidgetOpts(center),
	))

	var text *widget.Text
	if body != "" {
		text = widget.NewText(
			widget.TextOpts.Text(body, &face, white),
			widget.TextOpts.WidgetOpts(center),
		)
		panel.AddChild(text)
	}

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnImg, Pressed: btnPressed}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}, text
}

// NewPauseUI shows Resume and Restart while the game is paused.
func NewPauseUI(g *Game) *ebitenui.UI {
	ui, _ := newMenuUI("Paused", "",
		menuButton{label: "Resume", onClick: func() { g.paused = false }},
		menuButton{label: "Restart", onClick: g.clickRestart},
	)
	return ui
}

// NewGameOverUI shows the final score and a Restart button. The score line
// is refreshed by the returned func.
func NewGameOverUI(g *Game) (*ebitenui.UI, func()) {
	ui, text := newMenuUI("Game Over", "Score 0", menuButton{label: "Restart", onClick: g.clickRestart})
	return ui, func() {
		if s := g.stage.Session; s != nil {
			text.Label = fmt.Sprintf("Score %d  Level %d", s.Score, s.Level)
		}
	}
}

func (g *Game) clickRestart() {
	if err := g.restart(); err != nil {
		g.log.Error("restart failed", zap.Error(err))
	}
}
