// Package ui holds the ebitenui interfaces layered over the world view.
package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SidePanel is the right-hand panel (character sheet placeholder plus debug
// controls). Opening it shifts the world viewport left so the map stays
// centered in the remaining space.
type SidePanel struct {
	UI   *ebitenui.UI
	open bool

	// Callbacks
	OnOpen       func()
	OnClose      func()
	OnDebugLevel func(level int)

	debugLabel *widget.Label
	debugLevel int

	normalFace text.Face
	smallFace  text.Face
}

// NewSidePanel builds the panel widgets. The panel starts closed.
func NewSidePanel(normalFace, smallFace text.Face, onOpen, onClose func(), onDebugLevel func(int)) *SidePanel {
	p := &SidePanel{
		OnOpen:       onOpen,
		OnClose:      onClose,
		OnDebugLevel: onDebugLevel,
		normalFace:   normalFace,
		smallFace:    smallFace,
	}

	p.buildUI()
	return p
}

// Open returns whether the panel is showing.
func (p *SidePanel) Open() bool {
	return p.open
}

// Toggle opens or closes the panel, firing the viewport callbacks.
func (p *SidePanel) Toggle() {
	p.SetOpen(!p.open)
}

// SetOpen forces the panel state, firing callbacks only on change.
func (p *SidePanel) SetOpen(open bool) {
	if p.open == open {
		return
	}
	p.open = open

	if open {
		if p.OnOpen != nil {
			p.OnOpen()
		}
	} else if p.OnClose != nil {
		p.OnClose()
	}
}

func (p *SidePanel) Update() {
	if p.open {
		p.UI.Update()
	}
}

func (p *SidePanel) Draw(screen *ebiten.Image) {
	if p.open {
		p.UI.Draw(screen)
	}
}

func (p *SidePanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}
	panelContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(400, 0),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("CHARACTER", &p.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panelContainer.AddChild(titleLabel)

	p.debugLabel = widget.NewLabel(
		widget.LabelOpts.Text("Map debug: off", &p.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	panelContainer.AddChild(p.debugLabel)

	debugButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 20),
		),
		widget.ButtonOpts.Image(p.buttonImage()),
		widget.ButtonOpts.Text("Cycle map debug", &p.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.CycleDebugLevel()
		}),
	)
	panelContainer.AddChild(debugButton)

	rootContainer.AddChild(panelContainer)

	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// CycleDebugLevel steps the overlay verbosity 0 -> 1 -> 2 -> 0.
func (p *SidePanel) CycleDebugLevel() {
	p.SetDebugLevel((p.debugLevel + 1) % 3)
}

// SetDebugLevel sets the overlay verbosity and fires OnDebugLevel.
func (p *SidePanel) SetDebugLevel(level int) {
	p.debugLevel = level
	p.debugLabel.Label = fmt.Sprintf("Map debug: %s", debugLevelName(level))

	if p.OnDebugLevel != nil {
		p.OnDebugLevel(level)
	}
}

func debugLevelName(level int) string {
	switch level {
	case 0:
		return "off"
	case 1:
		return "tiles"
	default:
		return "sub-tiles"
	}
}

func (p *SidePanel) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}
