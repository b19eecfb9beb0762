package fynespin

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// Clickable is the capability a host widget must expose to acquire spinner
// behavior: a way to register a callback for its completed tap gesture.
type Clickable interface {
	fyne.CanvasObject
	OnRelease(func())
}

// textSetter is satisfied by hosts with a text-like display, e.g. *widget.Button.
// Hosts without it simply keep their current look after a selection.
type textSetter interface {
	SetText(string)
}

// anchored lets a host adapter name the object actually present in the canvas
// tree. Canvas lookups and popup positioning resolve against that object; a
// host that is itself rendered, like Tappable, needs no adapter.
type anchored interface {
	anchor() fyne.CanvasObject
}

// Tappable wraps any canvas object and makes it a Clickable host.
type Tappable struct {
	widget.BaseWidget

	OnTapped func() `json:"-"`
	object   fyne.CanvasObject
}

func NewTappable(obj fyne.CanvasObject) *Tappable {
	t := &Tappable{
		object: obj,
	}
	t.ExtendBaseWidget(t)

	return t
}

func (t *Tappable) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.object)
}

func (t *Tappable) Tapped(_ *fyne.PointEvent) {
	if t.OnTapped != nil {
		t.OnTapped()
	}
}

// OnRelease chains fn after any handler already registered.
func (t *Tappable) OnRelease(fn func()) {
	prev := t.OnTapped
	t.OnTapped = func() {
		if prev != nil {
			prev()
		}
		fn()
	}
}

// SetText forwards to the wrapped object when it has a text-like display.
func (t *Tappable) SetText(text string) {
	if ts, ok := t.object.(textSetter); ok {
		ts.SetText(text)
		t.Refresh()
	}
}

type buttonHost struct {
	*widget.Button
}

func (b buttonHost) OnRelease(fn func()) {
	prev := b.Button.OnTapped
	b.Button.OnTapped = func() {
		if prev != nil {
			prev()
		}
		fn()
	}
}

// anchor returns the button itself: the adapter wrapper is never rendered, so
// it cannot be used for canvas lookups.
func (b buttonHost) anchor() fyne.CanvasObject {
	return b.Button
}
