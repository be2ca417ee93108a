package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/cakechase/assets"
	"github.com/milk9111/cakechase/ecs/component"
)

var (
	white    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelBg  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonBg = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
)

// menuPanel builds a centered vertical panel on a full-screen anchor root.
func menuPanel(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelBg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, child := range children {
		panel.AddChild(child)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func centeredText(label string) *widget.Text {
	face := assets.UIFace
	return widget.NewText(
		widget.TextOpts.Text(label, &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func menuButton(label string, onClick func()) *widget.Button {
	face := assets.UIFace
	img := imageui.NewNineSliceColor(buttonBg)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Pressed: img}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// NewPauseUI builds the pause menu shown while the session is frozen.
func NewPauseUI(g *Game) *ebitenui.UI {
	return menuPanel(
		centeredText("Paused"),
		menuButton("Resume", func() { g.paused = false }),
		menuButton("Restart", g.restart),
	)
}

// GameOverUI is the panel shown once the score hits the game over
// threshold.
type GameOverUI struct {
	ui    *ebitenui.UI
	score *widget.Text
}

func NewGameOverUI(g *Game) *GameOverUI {
	score := centeredText("")
	return &GameOverUI{
		ui: menuPanel(
			centeredText("Game over"),
			score,
			menuButton("Restart (Enter)", g.restart),
		),
		score: score,
	}
}

func (o *GameOverUI) SetScore(s component.Score) {
	o.score.Label = fmt.Sprintf("score %d, %d cakes eaten", s.Score, s.Eaten)
}

func (o *GameOverUI) Update() {
	o.ui.Update()
}

func (o *GameOverUI) Draw(screen *ebiten.Image) {
	o.ui.Draw(screen)
}

// HUD is the top-left text readout.
type HUD struct {
	ui   *ebitenui.UI
	text *widget.Text
}

func NewHUD() *HUD {
	face := assets.UIFace
	text := widget.NewText(widget.TextOpts.Text("", &face, white))

	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 120})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	box.AddChild(text)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(box)
	return &HUD{ui: &ebitenui.UI{Container: root}, text: text}
}

func (h *HUD) SetText(s string) {
	h.text.Label = s
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
