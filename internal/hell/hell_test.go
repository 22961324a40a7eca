package hell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/internal/config"
)

func newTestWorld(enemyDuration float64) *World {
	return New(80, 40, config.HellConfig{
		EnemyDuration:  enemyDuration,
		BulletDuration: 1,
		RingSize:       8,
		SpawnInterval:  1,
	}, nil)
}

func countHoming(w *World) int {
	n := 0
	for b := range w.Bullets() {
		if b.Homing {
			n++
		}
	}
	return n
}

func TestNew(t *testing.T) {
	w := newTestWorld(10)
	assert.Equal(t, bezier.Pt(40, 36), w.Player())
	assert.InDelta(t, 16, w.Enemy().X, 1e-9)
	assert.InDelta(t, 6, w.Enemy().Y, 1e-9)
	assert.Len(t, w.EnemyPath(), 3)
	assert.Equal(t, 0, w.BulletCount())
}

func TestMovePlayer(t *testing.T) {
	w := newTestWorld(10)
	w.MovePlayer(-1, 1)
	assert.Equal(t, bezier.Pt(39, 37), w.Player())
	w.MovePlayer(-1000, 1000)
	assert.Equal(t, bezier.Pt(0, 39), w.Player())
	w.MovePlayer(1000, -1000)
	assert.Equal(t, bezier.Pt(79, 0), w.Player())

	w.Resize(20, 10)
	assert.Equal(t, bezier.Pt(19, 0), w.Player())
	assert.Equal(t, bezier.NewRectFromSize(20, 10), w.Bounds())
}

func TestStepSpawnsAndTurns(t *testing.T) {
	w := newTestWorld(1)

	ev := w.Step(0.5)
	assert.Equal(t, Events{}, ev)

	ev = w.Step(0.5)
	assert.False(t, ev.Turned)
	assert.Equal(t, 8, ev.Spawned)
	assert.Equal(t, 8, w.BulletCount())
	assert.Equal(t, 1, w.Waves())
	for b := range w.Bullets() {
		assert.False(t, b.Homing)
		assert.InDelta(t, 16, b.Pos.X, 1e-9)
		assert.InDelta(t, 6, b.Pos.Y, 1e-9)
	}

	ev = w.Step(0.5)
	assert.True(t, ev.Turned)
	assert.Equal(t, 0, ev.Spawned)
	assert.Equal(t, 8, w.BulletCount())
	for b := range w.Bullets() {
		assert.InDelta(t, 20, b.Pos.Distance(bezier.Pt(16, 6)), 1e-9)
	}
}

func TestBulletsPruned(t *testing.T) {
	w := newTestWorld(10)
	require.Equal(t, 8, w.Step(1).Spawned)
	w.cfg.SpawnInterval = math.Inf(1)

	pruned := 0
	for range 3 {
		ev := w.Step(1)
		assert.Equal(t, 0, ev.Hits)
		pruned += ev.Pruned
	}
	assert.Equal(t, 8, pruned)
	assert.Equal(t, 0, w.BulletCount())
	assert.Empty(t, w.homing)
}

func TestHomingWave(t *testing.T) {
	w := newTestWorld(10)
	for range homingEvery - 1 {
		w.Step(1)
	}
	assert.Equal(t, 0, countHoming(w))

	ev := w.Step(1)
	require.Equal(t, 8, ev.Spawned)
	assert.Equal(t, 8, countHoming(w))
	assert.Equal(t, 0, w.Hits())

	// Homing bullets end their flight at the player, wherever it went.
	w.MovePlayer(-10, 0)
	ev = w.Step(1)
	assert.Equal(t, 8, ev.Hits)
	assert.Equal(t, 8, w.Hits())
	assert.Equal(t, 0, countHoming(w))
}
