// Command bezedit shows an animated Bézier curve whose control points can be
// edited with the mouse.
//
//	left drag    move a control point
//	right click  insert a point on the control polygon
//	space        remove the point under the cursor
//	a            append the cursor position as the new end point
//	l            insert a point halfway between the anchors
//	r            restart the animation
//	esc          quit
package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sgostarter/i/l"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/internal/config"
	"honnef.co/go/bezier/internal/editor"
)

const tps = 60

var (
	background = color.RGBA{0x18, 0x18, 0x18, 0xff}
	polygon    = color.RGBA{0x70, 0x70, 0x70, 0xff}
	trail      = color.RGBA{0x40, 0x90, 0xd0, 0xff}
	anchor     = color.RGBA{0xe0, 0x30, 0x30, 0xff}
	control    = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	hovered    = color.RGBA{0xf0, 0xc0, 0x20, 0xff}
	moving     = color.RGBA{0x30, 0xe0, 0x60, 0xff}
)

type game struct {
	cfg    *config.Config
	editor *editor.Editor
}

func cursor() bezier.Point {
	x, y := ebiten.CursorPosition()
	return bezier.Pt(float64(x), float64(y))
}

func (g *game) Update() error {
	pt := cursor()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.editor.RemoveAt(pt)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.editor.Append(pt)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.editor.Split()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.editor.Reset()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.editor.Press(pt)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.editor.Drag(pt)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.editor.Release()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.editor.InsertAt(pt)
	}

	g.editor.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	anim := g.editor.Animation()
	c := anim.Curve()

	for _, seg := range c.Segments() {
		vector.StrokeLine(screen,
			float32(seg.P0.X), float32(seg.P0.Y), float32(seg.P1.X), float32(seg.P1.Y),
			1, polygon, true)
	}

	const steps = 100
	prev := c.Start()
	for i := 1; i <= steps; i++ {
		p := c.Eval(float64(i) / steps)
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y), 2, trail, true)
		prev = p
	}

	hover, isHover := g.editor.Hovered(cursor())
	r := float32(g.editor.Radius())
	for i, p := range c.All() {
		clr := color.Color(control)
		switch {
		case isHover && i == hover:
			clr = hovered
		case i == 0 || i == c.Len()-1:
			clr = anchor
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, clr, true)
	}

	if p := anim.Current(); !p.IsNaN() && !p.IsInf() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r*0.75, moving, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("degree %d  t=%.2f  easing %s  TPS %.0f",
		c.Degree(), anim.Param(), anim.Easing(), ebiten.ActualTPS()))
}

func (g *game) Layout(int, int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	easing := flag.String("easing", "", "override the configured easing")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("loading configuration")
	}
	if *easing != "" {
		e, err := bezier.ParseEasing(*easing)
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Fatal("parsing -easing")
		}
		cfg.Animation.Easing = e
	}

	g := &game{
		cfg:    cfg,
		editor: editor.New(float64(cfg.Window.Width), float64(cfg.Window.Height), cfg.Animation, cfg.Editor, logger),
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(tps)

	logger.WithFields(
		l.IntField("width", cfg.Window.Width),
		l.IntField("height", cfg.Window.Height),
		l.StringField("easing", cfg.Animation.Easing.String()),
	).Debug("starting editor")

	if err := ebiten.RunGame(g); err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("running editor")
	}
}
