package ui

import (
	"bytes"
	goimage "image"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Action is one button on an overlay.
type Action struct {
	Label string
	Run   func()
}

// OverlayUI is a centered panel with a title, a status line and a column of
// buttons. The pause menu and the result screens are built from it.
type OverlayUI struct {
	UI *ebitenui.UI

	actions     []Action
	buttons     []*widget.Button
	titleLabel  *widget.Label
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewOverlayUI builds the overlay. background is drawn over the whole screen.
func NewOverlayUI(title string, titleColor, background color.Color, actions []Action) *OverlayUI {
	ui := &OverlayUI{actions: actions}
	ui.loadFonts()
	ui.buildUI(title, titleColor, background)
	return ui
}

func (ui *OverlayUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 22}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *OverlayUI) buildUI(title string, titleColor, background color.Color) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 12, Bottom: 12, Left: 24, Right: 24}
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	ui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text(title, &ui.titleFace, &widget.LabelColor{
			Idle: titleColor,
		}),
	)
	contentContainer.AddChild(ui.titleLabel)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	for i := range ui.actions {
		btn := ui.buildButton(i)
		ui.buttons = append(ui.buttons, btn)
		contentContainer.AddChild(btn)
	}

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *OverlayUI) buildButton(index int) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 110, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text(ui.actions[index].Label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 220, 150, 255},
			Pressed:  color.RGBA{200, 170, 120, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.Activate(index)
		}),
	)
}

// Len returns the number of buttons.
func (ui *OverlayUI) Len() int { return len(ui.actions) }

// Activate runs the action of button index, as if it had been clicked.
func (ui *OverlayUI) Activate(index int) {
	if index < 0 || index >= len(ui.actions) || ui.actions[index].Run == nil {
		return
	}
	ui.actions[index].Run()
}

// ButtonRect returns where button index was laid out on the last draw.
func (ui *OverlayUI) ButtonRect(index int) goimage.Rectangle {
	if index < 0 || index >= len(ui.buttons) {
		return goimage.Rectangle{}
	}
	return ui.buttons[index].GetWidget().Rect
}

func (ui *OverlayUI) SetTitle(title string) {
	if ui.titleLabel != nil {
		ui.titleLabel.Label = title
	}
}

func (ui *OverlayUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *OverlayUI) Update() {
	ui.UI.Update()
}
