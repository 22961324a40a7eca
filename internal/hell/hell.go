// Package hell simulates the bullet-pattern demo driven by cmd/bezhell.
//
// An enemy loops along a curve and periodically fires rings of bullets. Each
// bullet is an animation in an arena: ordinary bullets fly out to a point on
// the ring and keep going past it, homing bullets bend through the ring point
// towards the player and follow the player while they fly.
package hell

import (
	"iter"
	"math"

	"github.com/sgostarter/i/l"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/internal/config"
)

const (
	// every homingEvery-th wave homes in on the player
	homingEvery = 3
	hitRadius   = 0.75
)

type Bullet struct {
	Pos    bezier.Point
	Homing bool
}

// Events reports what happened during a call to [World.Step].
type Events struct {
	// Turned is set when the enemy's clock changed direction.
	Turned bool
	Spawned int
	Pruned  int
	Hits    int
}

type World struct {
	logger l.Wrapper
	cfg    config.HellConfig

	bounds  bezier.Rect
	enemy   *bezier.Animation
	player  bezier.Point
	bullets *bezier.Arena
	homing  map[bezier.Handle]bool

	sinceSpawn float64
	waves      int
	hits       int
}

// New returns a world of the given size, with the player at the bottom
// center.
func New(width, height float64, cfg config.HellConfig, logger l.Wrapper) *World {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	w := &World{
		logger:  logger.WithFields(l.StringField(l.ClsKey, "World")),
		cfg:     cfg,
		bounds:  bezier.NewRectFromSize(width, height),
		player:  bezier.Pt(math.Floor(width/2), math.Floor(height*0.9)),
		bullets: bezier.NewArena(logger),
		homing:  make(map[bezier.Handle]bool),
	}

	w.enemy = bezier.NewAnimation(cfg.EnemyDuration,
		bezier.Pt(width*0.2, height*0.15), bezier.Pt(width*0.8, height*0.15),
		true, bezier.Parabola)
	w.enemy.Insert(bezier.Pt(width*0.5, height*0.6), 0)
	w.enemy.Tick(0)

	return w
}

func (w *World) Bounds() bezier.Rect       { return w.bounds }
func (w *World) Enemy() bezier.Point       { return w.enemy.Current() }
func (w *World) EnemyPath() []bezier.Point { return w.enemy.ControlPoints() }
func (w *World) Player() bezier.Point      { return w.player }
func (w *World) Waves() int                { return w.waves }
func (w *World) Hits() int                 { return w.hits }
func (w *World) BulletCount() int          { return w.bullets.Len() }

// Bullets returns an iterator over the bullets in flight.
func (w *World) Bullets() iter.Seq[Bullet] {
	return func(yield func(Bullet) bool) {
		for h, b := range w.bullets.All() {
			if !yield(Bullet{Pos: b.Current(), Homing: w.homing[h]}) {
				return
			}
		}
	}
}

// MovePlayer moves the player by (dx, dy), keeping it inside the world.
func (w *World) MovePlayer(dx, dy float64) {
	w.player = w.clamp(w.player.Translate(bezier.Vec(dx, dy)))
}

// Resize changes the size of the world. Bullets that end up outside of it are
// pruned once they're complete.
func (w *World) Resize(width, height float64) {
	w.bounds = bezier.NewRectFromSize(width, height)
	w.player = w.clamp(w.player)
}

func (w *World) clamp(p bezier.Point) bezier.Point {
	return bezier.NewRectFromSize(w.bounds.Width()-1, w.bounds.Height()-1).Clamp(p)
}

// Step advances the world by dt seconds.
func (w *World) Step(dt float64) Events {
	var ev Events

	reverse := w.enemy.Clock().Reverse
	w.enemy.Tick(dt)
	ev.Turned = w.enemy.Clock().Reverse != reverse

	for h, b := range w.bullets.All() {
		if w.homing[h] {
			b.Chase(w.player, dt)
		} else {
			b.Tick(dt)
		}
	}

	w.sinceSpawn += dt
	if w.sinceSpawn >= w.cfg.SpawnInterval {
		w.sinceSpawn -= w.cfg.SpawnInterval
		ev.Spawned = w.spawn()
	}

	hit := bezier.Circle{Center: w.player, Radius: hitRadius}
	ev.Pruned = w.bullets.Prune(func(h bezier.Handle, b *bezier.Animation) bool {
		p := b.Current()
		remove := false
		switch {
		case hit.Contains(p):
			ev.Hits++
			remove = true
		case b.Complete() && !(bezier.Circle{Center: p, Radius: 1}).Overlaps(w.bounds):
			remove = true
		case p.IsNaN():
			remove = true
		}
		if remove {
			delete(w.homing, h)
		}
		return remove
	})
	w.hits += ev.Hits

	return ev
}

// spawn fires a ring of bullets from the enemy's position.
func (w *World) spawn() int {
	w.waves++
	origin := w.enemy.Current()
	radius := math.Max(w.bounds.Width(), w.bounds.Height()) / 2
	// Rotate successive waves so their bullets don't overlap.
	first := origin.Translate(bezier.Vec(radius, 0)).Transform(bezier.RotateAbout(float64(w.waves)*0.2, origin))
	homing := w.waves%homingEvery == 0

	ring := bezier.Ring(origin, first, w.cfg.RingSize)
	for _, target := range ring {
		var h bezier.Handle
		if homing {
			a := bezier.NewAnimation(w.cfg.BulletDuration, origin, w.player, false, bezier.QuadraticEaseOut)
			a.Insert(target, 0)
			h = w.bullets.Add(a)
			w.homing[h] = true
		} else {
			h = w.bullets.Create(w.cfg.BulletDuration, origin, target, false, bezier.Normal)
		}
		// Put the bullet at the enemy until the next step.
		w.bullets.Step(h, 0)
	}

	w.logger.WithFields(l.IntField("wave", w.waves), l.IntField("bullets", w.bullets.Len())).Debug("spawned wave")
	return len(ring)
}
