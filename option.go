package fynespin

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// OptionWidget is the capability an option row must expose: render one option
// and report when the user picks it. Any widget satisfying it can be produced
// by the factory handed to Behavior.SetOptionFactory.
type OptionWidget interface {
	fyne.CanvasObject
	SetOption(Option)
	SetOnSelected(func())
}

// OptionFactory creates one dropdown row. Swappable at any time; the dropdown
// is rebuilt with the new factory on the next open.
type OptionFactory func() OptionWidget

// OptionRow is the default dropdown row: a text label over a rounded
// background.
type OptionRow struct {
	widget.BaseWidget

	text      *canvas.Text
	rectangle *canvas.Rectangle

	onSelected func()
}

func NewOptionRow() *OptionRow {
	r := &OptionRow{
		text:      canvas.NewText("", theme.Color(theme.ColorNameForeground)),
		rectangle: canvas.NewRectangle(color.Transparent),
	}
	r.ExtendBaseWidget(r)

	r.rectangle.CornerRadius = 5
	r.updateMinSize()
	return r
}

func (r *OptionRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(r.rectangle, container.NewPadded(r.text)))
}

func (r *OptionRow) SetOption(opt Option) {
	r.text.Text = opt.Text
	r.updateMinSize()

	r.Refresh()
}

func (r *OptionRow) Text() string {
	return r.text.Text
}

func (r *OptionRow) SetOnSelected(fn func()) {
	r.onSelected = fn
}

func (r *OptionRow) Tapped(_ *fyne.PointEvent) {
	if r.onSelected != nil {
		r.onSelected()
	}
}

func (r *OptionRow) updateMinSize() {
	ms := r.text.MinSize()
	r.rectangle.SetMinSize(fyne.NewSize(ms.Width+10, ms.Height+5))
}

func (r *OptionRow) Refresh() {
	r.BaseWidget.Refresh()
	r.text.Refresh()
	r.rectangle.Refresh()
}
