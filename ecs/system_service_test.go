package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct{ updates int }

func (s *countingSystem) Update() { s.updates++ }

type otherCountingSystem struct{ updates int }

func (s *otherCountingSystem) Update() { s.updates++ }

type disposableSystem struct{ disposed *[]string }

func (s *disposableSystem) Update() {}
func (s *disposableSystem) OnDispose() {
	*s.disposed = append(*s.disposed, "disposed")
}

func TestSystemServiceRegisterAndUpdateRunsInOrder(t *testing.T) {
	ss := ecs.NewSystemService()
	a := &countingSystem{}
	b := &otherCountingSystem{}

	require.NoError(t, ss.Register(a))
	require.NoError(t, ss.Register(b))

	ss.Update()
	ss.Update()

	assert.Equal(t, 2, a.updates)
	assert.Equal(t, 2, b.updates)
}

func TestSystemServiceRegisterDuplicateTypeFails(t *testing.T) {
	ss := ecs.NewSystemService()
	require.NoError(t, ss.Register(&countingSystem{}))

	err := ss.Register(&countingSystem{})
	assert.ErrorIs(t, err, ecs.ErrSystemAlreadyAdded)
}

func TestSystemByTypeLookup(t *testing.T) {
	ss := ecs.NewSystemService()
	a := &countingSystem{}
	require.NoError(t, ss.Register(a))

	got, err := ecs.SystemByType[*countingSystem](ss)
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestSystemByTypeLookupUnregisteredFails(t *testing.T) {
	ss := ecs.NewSystemService()
	_, err := ecs.SystemByType[*countingSystem](ss)
	assert.ErrorIs(t, err, ecs.ErrNoSuchSystem)
}

func TestSystemServiceStatsTracksExecutions(t *testing.T) {
	ss := ecs.NewSystemService()
	require.NoError(t, ss.Register(&countingSystem{}))

	ss.Update()
	ss.Update()
	ss.Update()

	stats := ss.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, int64(3), stats[0].ExecutionCount)
}

func TestSystemServiceDisposeRunsDisposer(t *testing.T) {
	ss := ecs.NewSystemService()
	var order []string
	require.NoError(t, ss.Register(&disposableSystem{disposed: &order}))
	require.NoError(t, ss.Register(&countingSystem{}))

	ss.Dispose()
	assert.Equal(t, []string{"disposed"}, order)
}
