package main

import "github.com/plus3/ecscore/ecs"

func buildStressWorld(entityCapacity int) (*ecs.World, error) {
	b := ecs.NewWorldBuilder().EntityCapacity(entityCapacity)

	ecs.WithComponent[Position](b, func() Position { return Position{} })
	ecs.WithComponent[Velocity](b, func() Velocity { return Velocity{} })
	ecs.WithComponent[Health](b, func() Health { return Health{} })
	ecs.WithComponent[Age](b, func() Age { return Age{} })
	ecs.WithComponent[Tag](b, func() Tag { return Tag{} })

	b.AddSystem(newMovementSystem)
	b.AddSystem(newAgingSystem)
	b.AddSystem(newHealthDecaySystem)

	return b.Build()
}
