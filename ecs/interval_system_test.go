package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eachFrameSystem struct {
	*ecs.IntervalSystem
	ticks int
}

func newEachFrameSystem(w *ecs.World) *eachFrameSystem {
	s := &eachFrameSystem{}
	s.IntervalSystem = ecs.NewIntervalSystem(s, w, ecs.EachFrameInterval)
	return s
}

func (s *eachFrameSystem) OnTick() { s.ticks++ }

func TestIntervalSystemEachFrameTicksOncePerUpdate(t *testing.T) {
	w := buildEmptyWorld(t)
	s := newEachFrameSystem(w)

	w.DeltaTime = 1.0 / 60
	s.Update()
	s.Update()

	assert.Equal(t, 2, s.ticks)
}

type fixedStepSystem struct {
	*ecs.IntervalSystem
	ticks      int
	lastAlphas []float32
}

func newFixedStepSystem(w *ecs.World, step float32) *fixedStepSystem {
	s := &fixedStepSystem{}
	s.IntervalSystem = ecs.NewIntervalSystem(s, w, ecs.FixedInterval(step))
	return s
}

func (s *fixedStepSystem) OnTick()            { s.ticks++ }
func (s *fixedStepSystem) OnAlpha(a float32) { s.lastAlphas = append(s.lastAlphas, a) }

func TestIntervalSystemFixedAccumulatesAndStepsExactly(t *testing.T) {
	w := buildEmptyWorld(t)
	s := newFixedStepSystem(w, 0.1)

	w.DeltaTime = 0.25
	s.Update()

	assert.Equal(t, 2, s.ticks)
	require.NotEmpty(t, s.lastAlphas)
	assert.InDelta(t, 0.05/0.1, s.lastAlphas[len(s.lastAlphas)-1], 1e-6)
}

func TestIntervalSystemDisabledSkipsUpdate(t *testing.T) {
	w := buildEmptyWorld(t)
	s := newEachFrameSystem(w)
	s.Enabled = false

	s.Update()
	assert.Equal(t, 0, s.ticks)
}

func TestIntervalSystemDisposeWithoutDisposerIsNoop(t *testing.T) {
	w := buildEmptyWorld(t)
	s := newEachFrameSystem(w)
	assert.NotPanics(t, func() { s.Dispose() })
}

func buildEmptyWorld(t *testing.T) *ecs.World {
	t.Helper()
	w, err := ecs.NewWorldBuilder().Build()
	if err != nil {
		t.Fatalf("build world: %v", err)
	}
	return w
}
