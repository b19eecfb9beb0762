package main

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"github.com/quintans/fynespin"
)

const qualityOptions = `[
	{"text": "480p", "value": 480},
	{"text": "720p", "value": 720},
	{"text": "1080p", "value": 1080},
	{"text": "2160p", "value": 2160}
]`

func main() {
	a := app.New()
	w := a.NewWindow("fynespin demo")
	w.Resize(fyne.NewSize(400, 300))

	quality := widget.NewButton("Quality", nil)
	qualitySpin := fynespin.AttachButton(quality)
	qualitySpin.SetOptions(fynespin.OptionsFromJSON(qualityOptions))
	qualitySpin.Selection.Listen(func(opt *fynespin.Option) {
		slog.Info("quality selected", "text", opt.Text, "value", opt.Value)
	})

	// Any canvas object wrapped in a Tappable can host a spinner.
	sizeLabel := widget.NewLabel("pick a size")
	sizeHost := fynespin.NewTappable(sizeLabel)
	sizeSpin := fynespin.Attach(sizeHost)
	sizeSpin.SyncHeight = true

	var sizes []fynespin.Option
	for _, n := range []uint64{512, 1 << 20, 1 << 30, 1 << 40} {
		sizes = append(sizes, fynespin.Option{Text: humanize.Bytes(n), Value: n})
	}
	sizeSpin.SetOptions(sizes)
	sizeSpin.Selection.Listen(func(opt *fynespin.Option) {
		slog.Info("size selected", "text", opt.Text)
	})

	w.SetContent(container.NewVBox(quality, sizeHost))
	w.ShowAndRun()
}
