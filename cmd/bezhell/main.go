// Command bezhell is a small bullet-pattern toy for the terminal. An enemy
// sways along a curve and fires rings of bullets, some of which home in on
// the player.
//
//	arrow keys  move
//	r           restart
//	q, esc      quit
package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sgostarter/i/l"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/internal/config"
	"honnef.co/go/bezier/internal/hell"
)

const (
	frame      = 16 * time.Millisecond
	sampleRate = beep.SampleRate(44100)
)

var (
	pathStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	enemyStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	bulletStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	homingStyle = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

type game struct {
	logger l.Wrapper
	cfg    config.HellConfig
	screen tcell.Screen
	world  *hell.World
	audio  bool
}

func newGame(cfg config.HellConfig, logger l.Wrapper) (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &game{
		logger: logger.WithFields(l.StringField(l.ClsKey, "bezhell")),
		cfg:    cfg,
		screen: screen,
	}
	g.restart()

	if cfg.Sound {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			// The game works without sound.
			g.logger.WithFields(l.ErrorField(err)).Error("audio initialization failed")
		} else {
			g.audio = true
		}
	}

	return g, nil
}

func (g *game) restart() {
	w, h := g.screen.Size()
	// The last row is the status line. The world doesn't log, since the
	// terminal belongs to tcell.
	g.world = hell.New(float64(w), float64(h-1), g.cfg, nil)
}

func (g *game) blip() {
	if !g.audio {
		return
	}
	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		g.logger.WithFields(l.ErrorField(err)).Error("generating tone")
		g.audio = false
		return
	}
	speaker.Play(beep.Take(sampleRate.N(40*time.Millisecond), sine))
}

// handleInput returns false when the game should quit.
func (g *game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.world.MovePlayer(0, -1)
		case tcell.KeyDown:
			g.world.MovePlayer(0, 1)
		case tcell.KeyLeft:
			g.world.MovePlayer(-1, 0)
		case tcell.KeyRight:
			g.world.MovePlayer(1, 0)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				g.restart()
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
		w, h := g.screen.Size()
		g.world.Resize(float64(w), float64(h-1))
	}
	return true
}

func (g *game) set(p bezier.Point, r rune, style tcell.Style) {
	if p.IsNaN() || p.IsInf() || !g.world.Bounds().Contains(p) {
		return
	}
	g.screen.SetContent(int(math.Floor(p.X)), int(math.Floor(p.Y)), r, nil, style)
}

func (g *game) draw() {
	g.screen.Clear()

	for _, p := range g.world.EnemyPath() {
		g.set(p, '·', pathStyle)
	}
	for b := range g.world.Bullets() {
		if b.Homing {
			g.set(b.Pos, '+', homingStyle)
		} else {
			g.set(b.Pos, '*', bulletStyle)
		}
	}
	g.set(g.world.Enemy(), 'W', enemyStyle)
	g.set(g.world.Player(), '@', playerStyle)

	w, h := g.screen.Size()
	status := fmt.Sprintf(" wave %d  bullets %d  hits %d ", g.world.Waves(), g.world.BulletCount(), g.world.Hits())
	for x := range w {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		g.screen.SetContent(x, h-1, r, nil, statusStyle)
	}

	g.screen.Show()
}

func (g *game) run() {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !g.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if g.world.Step(dt).Turned {
				g.blip()
			}
			g.draw()
		}
	}
}

func (g *game) close() {
	if g.audio {
		speaker.Close()
	}
	g.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	logger := l.NewConsoleLoggerWrapper()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("loading configuration")
	}

	g, err := newGame(cfg.Hell, logger)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("initializing terminal")
	}
	defer g.close()

	g.run()
}
