package ecs_test

import (
	"errors"
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Velocity struct{ DX, DY float32 }

func TestRegisterComponentTwiceFails(t *testing.T) {
	cs := ecs.NewComponentService()
	_, err := ecs.RegisterComponent[Position](cs, func() Position { return Position{} })
	require.NoError(t, err)

	_, err = ecs.RegisterComponent[Position](cs, func() Position { return Position{} })
	assert.True(t, errors.Is(err, ecs.ErrComponentAlreadyAdded))
}

func TestMapperForUnregisteredTypeFails(t *testing.T) {
	cs := ecs.NewComponentService()
	_, err := ecs.Mapper[Position](cs)
	assert.True(t, errors.Is(err, ecs.ErrNoSuchComponent))
}

func TestMapperReturnsSameInstance(t *testing.T) {
	cs := ecs.NewComponentService()
	registered, err := ecs.RegisterComponent[Position](cs, func() Position { return Position{} })
	require.NoError(t, err)

	looked, err := ecs.Mapper[Position](cs)
	require.NoError(t, err)
	assert.Same(t, registered, looked)
}

func TestComponentServiceCount(t *testing.T) {
	cs := ecs.NewComponentService()
	assert.Equal(t, 0, cs.Count())

	ecs.RegisterComponent[Position](cs, func() Position { return Position{} })
	ecs.RegisterComponent[Velocity](cs, func() Velocity { return Velocity{} })
	assert.Equal(t, 2, cs.Count())
}

func TestMapperByIDRoundTrips(t *testing.T) {
	cs := ecs.NewComponentService()
	mapper, err := ecs.RegisterComponent[Position](cs, func() Position { return Position{} })
	require.NoError(t, err)

	raw, err := cs.MapperByID(mapper.ID())
	require.NoError(t, err)
	assert.Same(t, mapper, raw)
}

func TestMapperByIDUnknownFails(t *testing.T) {
	cs := ecs.NewComponentService()
	_, err := cs.MapperByID(99)
	assert.True(t, errors.Is(err, ecs.ErrNoSuchComponent))
}

func TestComponentIDsAreStableAndSequential(t *testing.T) {
	cs := ecs.NewComponentService()
	posMapper, _ := ecs.RegisterComponent[Position](cs, func() Position { return Position{} })
	velMapper, _ := ecs.RegisterComponent[Velocity](cs, func() Velocity { return Velocity{} })

	assert.Equal(t, uint16(0), posMapper.ID())
	assert.Equal(t, uint16(1), velMapper.ID())
}
