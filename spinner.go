// Package fynespin turns any clickable Fyne widget into a spinner: a
// button-like control that reveals a dropdown of selectable options and
// closes once a choice is made.
package fynespin

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/quintans/fynespin/bind"
)

// Behavior wires a clickable host widget to a dropdown of options: tapping
// the host opens the dropdown under it, picking an option records it as the
// selection and closes the dropdown, and a tap anywhere else dismisses it.
//
// Configuration fields are meant to be set before the first open. All methods
// must be called from the toolkit's event goroutine.
type Behavior struct {
	// Selection holds the picked option, nil while nothing was picked.
	// A later SetOptions does not clear it, even when the picked option is
	// no longer in the list.
	Selection *bind.Bind[*Option]

	// AutoSelect picks that option at dropdown (re)build time when nothing
	// is selected yet. Negative means off.
	AutoSelect int

	// SyncHeight forces every dropdown row to the host's height.
	SyncHeight bool

	// RowSpacing is the vertical gap between dropdown rows.
	RowSpacing float32

	host    Clickable
	anchor  fyne.CanvasObject
	factory OptionFactory
	options []Option

	popup *widget.PopUp
	rows  []OptionWidget
	rl    *rowsLayout
	stale bool
}

// Attach registers the spinner behavior on host. The host must already be
// constructed; it does not need to be on a canvas yet.
func Attach(host Clickable) *Behavior {
	b := &Behavior{
		Selection:  bind.New[*Option](nil),
		AutoSelect: -1,
		host:       host,
		anchor:     host,
		factory:    func() OptionWidget { return NewOptionRow() },
	}
	if a, ok := host.(anchored); ok {
		b.anchor = a.anchor()
	}
	host.OnRelease(b.Open)

	return b
}

// AttachButton registers the spinner behavior on a stock button.
func AttachButton(btn *widget.Button) *Behavior {
	return Attach(buttonHost{btn})
}

// SetOptions replaces the option list. An open dropdown is left untouched;
// the next open reflects the new list.
func (b *Behavior) SetOptions(options []Option) {
	b.options = options
	b.stale = true
}

// Options returns the current option list.
func (b *Behavior) Options() []Option {
	return b.options
}

// SetOptionFactory replaces the widget factory used for dropdown rows,
// discarding any rows built with the previous one.
func (b *Behavior) SetOptionFactory(factory OptionFactory) {
	b.factory = factory
	b.rows = nil
	b.stale = true
}

// Selected returns the picked option, or false while nothing was picked.
func (b *Behavior) Selected() (Option, bool) {
	if sel := b.Selection.Get(); sel != nil {
		return *sel, true
	}
	return Option{}, false
}

// Opened reports whether the dropdown is currently shown.
func (b *Behavior) Opened() bool {
	return b.popup != nil && b.popup.Visible()
}

// Open shows the dropdown under the host, rebuilding it first when the
// options or the factory changed since the last build. No-op while already
// open or while the host is not on a canvas.
func (b *Behavior) Open() {
	if b.Opened() {
		return
	}

	driver := fyne.CurrentApp().Driver()
	cv := driver.CanvasForObject(b.anchor)
	if cv == nil {
		slog.Warn("spinner host is not on a canvas, ignoring open")
		return
	}

	if b.popup == nil || b.stale {
		b.rebuild(cv)
	}

	b.rl.spacing = b.RowSpacing
	b.rl.rowHeight = 0
	if b.SyncHeight {
		b.rl.rowHeight = b.anchor.Size().Height
	}

	pos := driver.AbsolutePositionForObject(b.anchor)
	pos.Y += b.anchor.Size().Height
	b.popup.ShowAtPosition(pos)

	width := fyne.Max(b.anchor.Size().Width, b.popup.MinSize().Width)
	b.popup.Resize(fyne.NewSize(width, b.popup.MinSize().Height))
}

// Close hides the dropdown. Closing an already closed dropdown is a no-op.
// A tap outside the dropdown hides it through the popup overlay itself.
func (b *Behavior) Close() {
	if b.popup != nil {
		b.popup.Hide()
	}
}

// SelectIndex picks the i-th option as if its row was tapped: it records the
// selection, updates the host's text when it has one, and closes the
// dropdown. Out of range indexes are ignored.
func (b *Behavior) SelectIndex(i int) {
	if i < 0 || i >= len(b.options) {
		return
	}

	b.applySelection(&b.options[i])
	b.Close()
}

func (b *Behavior) applySelection(opt *Option) {
	b.Selection.Set(opt)
	if ts, ok := b.host.(textSetter); ok {
		ts.SetText(opt.Text)
	}
}

// rebuild creates the dropdown for the current options, reusing row widgets
// left over from the previous build.
func (b *Behavior) rebuild(cv fyne.Canvas) {
	rows := make([]OptionWidget, len(b.options))
	objects := make([]fyne.CanvasObject, len(b.options))
	for i := range b.options {
		i := i
		var row OptionWidget
		if i < len(b.rows) {
			row = b.rows[i]
		} else {
			row = b.factory()
		}
		row.SetOption(b.options[i])
		row.SetOnSelected(func() { b.SelectIndex(i) })
		rows[i] = row
		objects[i] = row
	}
	b.rows = rows

	b.rl = &rowsLayout{spacing: b.RowSpacing}
	b.popup = widget.NewPopUp(container.New(b.rl, objects...), cv)
	b.stale = false

	if b.AutoSelect >= 0 && b.AutoSelect < len(b.options) && b.Selection.Get() == nil {
		b.applySelection(&b.options[b.AutoSelect])
	}

	slog.Debug("spinner dropdown rebuilt", "options", len(b.options))
}
