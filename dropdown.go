package fynespin

import (
	"fyne.io/fyne/v2"
)

// rowsLayout stacks option rows vertically, stretching each one to the full
// dropdown width. A non-zero rowHeight forces every row to that height,
// otherwise rows keep their natural height.
type rowsLayout struct {
	spacing   float32
	rowHeight float32
}

func (l *rowsLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var y float32
	for _, obj := range objects {
		h := l.rowHeight
		if h == 0 {
			h = obj.MinSize().Height
		}

		obj.Resize(fyne.NewSize(size.Width, h))
		obj.Move(fyne.NewPos(0, y))
		y += h + l.spacing
	}
}

func (l *rowsLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for i, obj := range objects {
		ms := obj.MinSize()
		width = fyne.Max(width, ms.Width)

		h := l.rowHeight
		if h == 0 {
			h = ms.Height
		}
		if i > 0 {
			height += l.spacing
		}
		height += h
	}
	return fyne.NewSize(width, height)
}
