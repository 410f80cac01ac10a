// Command uidemo hosts the interface core in an Ebitengine window: it
// feeds window input through the event router, runs the layout pass
// every frame and rasterizes the resulting drawing command list.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lichnak/rg3d/pkg/arena"
	"github.com/lichnak/rg3d/pkg/graphics"
	"github.com/lichnak/rg3d/pkg/ui"
	"github.com/lichnak/rg3d/pkg/widgets"
)

const sheet = `
styles:
  panel:
    setters:
      - {name: fill_color, value: "#202830"}
      - {name: stroke_color, value: "#4080c0"}
      - {name: stroke_thickness, value: 2.0}
  swatch:
    base: panel
    setters:
      - {name: stroke_color, value: dimgray}
`

// swatch is a bordered box that brightens while hovered and swaps its
// stroke color while the left button is held on it.
type swatch struct {
	widgets.Border
	restingFill graphics.Color
	hoverFill   graphics.Color
}

func newSwatch(fill graphics.Color) *swatch {
	s := &swatch{
		Border:      *widgets.NewBorder(),
		restingFill: fill,
		hoverFill:   fill.WithAlpha8(0xff),
	}
	s.FillColor = fill
	w := s.Widget()
	w.Height = 48
	w.Margin = graphics.EdgeInsetsAll(4)
	return s
}

func (s *swatch) HandleEvent(self arena.Handle, u *ui.UserInterface, evt *ui.Event) {
	if evt.Source != self {
		return
	}
	switch evt.Kind.(type) {
	case ui.MouseEnter:
		s.FillColor = s.hoverFill
	case ui.MouseLeave:
		s.FillColor = s.restingFill
	case ui.MouseDown:
		s.StrokeColor = graphics.RGB(0xff, 0xa0, 0x40)
		u.CaptureMouse(self)
		evt.Handled = true
	case ui.MouseUp:
		s.StrokeColor = graphics.White
		u.ReleaseMouseCapture()
		evt.Handled = true
	}
}

type game struct {
	ui     *ui.UserInterface
	input  inputState
	screen graphics.Size
}

func (g *game) Update() error {
	for _, evt := range g.input.poll() {
		g.ui.ProcessInputEvent(evt)
	}

	g.ui.Update(g.screen, 1.0/float32(ebiten.TPS()))

	for evt := g.ui.PollEvent(); evt != nil; evt = g.ui.PollEvent() {
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	renderCommands(screen, g.ui.Draw())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screen = graphics.Size{Width: float32(outsideWidth), Height: float32(outsideHeight)}
	return outsideWidth, outsideHeight
}

func buildScene(u *ui.UserInterface, styles map[string]*ui.Style) {
	panel := widgets.NewStackPanel()
	w := panel.Widget()
	w.Name = "panel"
	w.Width = 220
	w.Margin = graphics.EdgeInsetsAll(16)
	w.HorizontalAlignment = graphics.HorizontalLeft
	w.VerticalAlignment = graphics.VerticalTop
	ph := u.AddNode(panel)

	frame := widgets.NewBorder()
	frame.Widget().Name = "frame"
	ui.ApplyStyle(frame, styles["panel"])
	fh := u.AddNode(frame)
	u.LinkNodes(fh, ph)

	inner := widgets.NewStackPanel()
	inner.Widget().Margin = graphics.EdgeInsetsAll(8)
	ih := u.AddNode(inner)
	u.LinkNodes(ih, fh)

	for _, fill := range []graphics.Color{
		graphics.RGBA8(0xc0, 0x40, 0x40, 0xd0),
		graphics.RGBA8(0x40, 0xc0, 0x40, 0xd0),
		graphics.RGBA8(0x40, 0x40, 0xc0, 0xd0),
	} {
		s := newSwatch(fill)
		ui.ApplyStyle(s, styles["swatch"])
		u.LinkNodes(u.AddNode(s), ih)
	}
}

func main() {
	optionsPath := flag.String("options", "uidemo.toml", "tuning options file")
	debug := flag.Bool("debug", false, "draw the picked node's bounds")
	flag.Parse()

	opts, err := ui.LoadOptions(*optionsPath)
	if err != nil {
		log.Fatalf("uidemo: %v", err)
	}

	styles, err := ui.LoadStylesheet(strings.NewReader(sheet))
	if err != nil {
		log.Fatalf("uidemo: %v", err)
	}

	u := ui.NewWithOptions(opts)
	if *debug {
		u.SetVisualDebug(true)
	}
	buildScene(u, styles)

	g := &game{
		ui:     u,
		screen: graphics.Size{Width: 800, Height: 600},
	}

	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("uidemo")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
