package ecs_test

import (
	"testing"

	"github.com/plus3/ecscore/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldBuilderBuildWiresComponentsAndSystems(t *testing.T) {
	b := ecs.NewWorldBuilder().EntityCapacity(16)
	ecs.WithComponent[Position](b, func() Position { return Position{} })

	var built *countingSystem
	b.AddSystem(func(w *ecs.World) (ecs.System, error) {
		built = &countingSystem{}
		return built, nil
	})

	w, err := b.Build()
	require.NoError(t, err)
	assert.NotNil(t, built)

	got, err := ecs.SystemOf[*countingSystem](w)
	require.NoError(t, err)
	assert.Same(t, built, got)
}

func TestWorldBuilderDuplicateComponentFailsAtRegistration(t *testing.T) {
	b := ecs.NewWorldBuilder()
	ecs.WithComponent[Position](b, func() Position { return Position{} })
	ecs.WithComponent[Position](b, func() Position { return Position{} })

	_, err := b.Build()
	assert.ErrorIs(t, err, ecs.ErrComponentAlreadyAdded)
}

func TestWorldBuilderSystemFactoryErrorPropagates(t *testing.T) {
	b := ecs.NewWorldBuilder()
	b.AddSystem(func(w *ecs.World) (ecs.System, error) {
		return nil, ecs.ErrNoSuchComponent
	})

	_, err := b.Build()
	assert.ErrorIs(t, err, ecs.ErrNoSuchComponent)
}

func TestWorldBuilderInjectReachableFromSystemFactory(t *testing.T) {
	b := ecs.NewWorldBuilder().Inject("greeting", "hello")

	var captured string
	b.AddSystem(func(w *ecs.World) (ecs.System, error) {
		v, err := ecs.Inject[string](w.Injection, "greeting")
		if err != nil {
			return nil, err
		}
		captured = v
		return &countingSystem{}, nil
	})

	_, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "hello", captured)
}

func TestWorldBuilderSystemReceivesNonOwningWorldReference(t *testing.T) {
	b := ecs.NewWorldBuilder()
	var seenDuringFactory *ecs.World
	b.AddSystem(func(w *ecs.World) (ecs.System, error) {
		seenDuringFactory = w
		return &countingSystem{}, nil
	})

	w, err := b.Build()
	require.NoError(t, err)
	assert.Same(t, w, seenDuringFactory)
}
