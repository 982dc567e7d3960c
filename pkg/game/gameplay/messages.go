package gameplay

import (
	_ "embed"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/padding"

	"blademaster/pkg/game/state"
)

// Narration templates. The msgids are the English text so an untranslated
// lookup still reads correctly.
const (
	MsgRanInto = "You ran into the %s."
	MsgTaken   = "You now have the %s."
	MsgWelcome = "Welcome to Blademaster"
)

// Narration colors
const (
	ColorBlocked = color.FgBlue
	ColorTaken   = color.FgGreen
	ColorWelcome = color.FgLightBlue
)

//go:embed locale/default.po
var defaultPO []byte

var catalog = loadCatalog(defaultPO)

func loadCatalog(buf []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(buf)
	return po
}

// Narrate formats a catalog message, pads it to half the canvas width and
// posts it to the event log.
func Narrate(g *state.Game, c color.Color, msg string, a ...any) {
	g.Events.PostEvent(pad(catalog.Get(msg, a...), g.Canvas.Pad()), c)
}

// pad appends at least one space and up to width spaces of trailing padding
func pad(text string, width int) string {
	if width < 1 {
		width = 1
	}
	return padding.String(text, uint(ansi.PrintableRuneWidth(text)+width))
}
