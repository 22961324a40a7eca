package bezier

import (
	"errors"
	"fmt"
	"iter"

	"github.com/sgostarter/i/l"
)

// ErrUnknownHandle is returned for handles that were never issued by an arena
// or whose animation has been destroyed.
var ErrUnknownHandle = errors.New("bezier: unknown animation handle")

// Handle identifies an animation in an [Arena]. Handles are never reused, so
// a stale handle can't accidentally address a newer animation. The zero
// Handle is never issued.
type Handle uint64

type arenaEntry struct {
	handle Handle
	anim   Animation
}

// Arena owns a collection of animations, such as all bullets on screen, and
// addresses them by stable handles. Removing an animation compacts the
// arena's storage.
//
// Pointers returned by [Arena.Get] and [Arena.All] point into that storage
// and are only valid until the next call that adds or removes animations.
// Handles stay valid until their animation is destroyed.
type Arena struct {
	logger l.Wrapper

	last    Handle
	entries []arenaEntry
	index   map[Handle]int
}

// NewArena returns an empty arena. A nil logger disables logging.
func NewArena(logger l.Wrapper) *Arena {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Arena{
		logger: logger.WithFields(l.StringField(l.ClsKey, "Arena")),
		index:  make(map[Handle]int),
	}
}

// Create adds a new animation, see [NewAnimation].
func (a *Arena) Create(duration float64, start, end Point, loop bool, easing Easing) Handle {
	return a.Add(NewAnimation(duration, start, end, loop, easing))
}

// Add copies anim, including its curve, into the arena. Later changes to anim
// don't affect the arena's copy.
func (a *Arena) Add(anim *Animation) Handle {
	cp := *anim
	cp.curve = &Curve{points: anim.curve.Points()}

	a.last++
	h := a.last
	a.index[h] = len(a.entries)
	a.entries = append(a.entries, arenaEntry{handle: h, anim: cp})
	return h
}

// Len returns the number of animations in the arena.
func (a *Arena) Len() int { return len(a.entries) }

// Get returns the animation for h.
func (a *Arena) Get(h Handle) (*Animation, bool) {
	i, ok := a.index[h]
	if !ok {
		return nil, false
	}
	return &a.entries[i].anim, true
}

// Step advances the animation for h by dt seconds and returns its new
// position.
func (a *Arena) Step(h Handle, dt float64) (Point, error) {
	anim, ok := a.Get(h)
	if !ok {
		return Point{}, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return anim.Tick(dt), nil
}

// Current returns the position computed by the last tick of the animation
// for h.
func (a *Arena) Current(h Handle) (Point, error) {
	anim, ok := a.Get(h)
	if !ok {
		return Point{}, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return anim.Current(), nil
}

// Tick advances every animation by dt seconds.
func (a *Arena) Tick(dt float64) {
	for i := range a.entries {
		a.entries[i].anim.Tick(dt)
	}
}

// All returns an iterator over all animations. The order is unspecified and
// changes when animations are removed. The arena must not be modified during
// iteration; use [Arena.Prune] to remove animations based on their state.
func (a *Arena) All() iter.Seq2[Handle, *Animation] {
	return func(yield func(Handle, *Animation) bool) {
		for i := range a.entries {
			if !yield(a.entries[i].handle, &a.entries[i].anim) {
				return
			}
		}
	}
}

// Destroy removes the animation for h and reports whether it existed.
func (a *Arena) Destroy(h Handle) bool {
	i, ok := a.index[h]
	if !ok {
		return false
	}
	a.removeAt(i)
	a.logger.WithFields(l.UInt64Field("handle", uint64(h))).Debug("destroyed")
	return true
}

// Prune removes every animation for which remove returns true, and returns
// how many were removed. remove must not modify the arena.
func (a *Arena) Prune(remove func(Handle, *Animation) bool) int {
	n := 0
	for i := 0; i < len(a.entries); {
		e := &a.entries[i]
		if remove(e.handle, &e.anim) {
			a.removeAt(i)
			n++
			// removeAt moved another entry into slot i; look at it next.
			continue
		}
		i++
	}
	if n > 0 {
		a.logger.WithFields(l.IntField("removed", n), l.IntField("remaining", len(a.entries))).Debug("pruned")
	}
	return n
}

// removeAt swaps the last entry into slot i and shrinks the storage.
func (a *Arena) removeAt(i int) {
	last := len(a.entries) - 1
	delete(a.index, a.entries[i].handle)
	if i != last {
		a.entries[i] = a.entries[last]
		a.index[a.entries[i].handle] = i
	}
	a.entries[last] = arenaEntry{}
	a.entries = a.entries[:last]
}
