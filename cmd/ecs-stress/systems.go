package main

import "github.com/plus3/ecscore/ecs"

// movementSystem advances Position by Velocity*dt for every entity carrying
// both, exercising the Family/IteratingSystem path under load.
type movementSystem struct {
	*ecs.IteratingSystem
	positions *ecs.ComponentMapper[Position]
	velocities *ecs.ComponentMapper[Velocity]
}

func newMovementSystem(w *ecs.World) (ecs.System, error) {
	positions, err := ecs.MapperOf[Position](w)
	if err != nil {
		return nil, err
	}
	velocities, err := ecs.MapperOf[Velocity](w)
	if err != nil {
		return nil, err
	}
	fb, err := ecs.AllOfType[Position](ecs.NewFamilyBuilder(), w.Components)
	if err != nil {
		return nil, err
	}
	fb, err = ecs.AllOfType[Velocity](fb, w.Components)
	if err != nil {
		return nil, err
	}
	family, err := w.Family(fb)
	if err != nil {
		return nil, err
	}

	s := &movementSystem{positions: positions, velocities: velocities}
	s.IteratingSystem = ecs.NewIteratingSystem(s, w, ecs.EachFrameInterval, family)
	return s, nil
}

func (s *movementSystem) OnTickEntity(e ecs.Entity) {
	pos := s.positions.GetOrNull(e)
	vel := s.velocities.GetOrNull(e)
	if pos == nil || vel == nil {
		return
	}
	dt := s.World.DeltaTime
	pos.X += vel.DX * dt
	pos.Y += vel.DY * dt
}

// agingSystem accumulates elapsed seconds on every entity carrying Age.
type agingSystem struct {
	*ecs.IteratingSystem
	ages *ecs.ComponentMapper[Age]
}

func newAgingSystem(w *ecs.World) (ecs.System, error) {
	ages, err := ecs.MapperOf[Age](w)
	if err != nil {
		return nil, err
	}
	fb, err := ecs.AllOfType[Age](ecs.NewFamilyBuilder(), w.Components)
	if err != nil {
		return nil, err
	}
	family, err := w.Family(fb)
	if err != nil {
		return nil, err
	}

	s := &agingSystem{ages: ages}
	s.IteratingSystem = ecs.NewIteratingSystem(s, w, ecs.EachFrameInterval, family)
	return s, nil
}

func (s *agingSystem) OnTickEntity(e ecs.Entity) {
	age := s.ages.GetOrNull(e)
	if age == nil {
		return
	}
	age.Seconds += s.World.DeltaTime
}

// healthDecaySystem drains Health.HP and removes the entity once it reaches
// zero, exercising Remove (and its deferred form) under load.
type healthDecaySystem struct {
	*ecs.IteratingSystem
	healths *ecs.ComponentMapper[Health]
}

func newHealthDecaySystem(w *ecs.World) (ecs.System, error) {
	healths, err := ecs.MapperOf[Health](w)
	if err != nil {
		return nil, err
	}
	fb, err := ecs.AllOfType[Health](ecs.NewFamilyBuilder(), w.Components)
	if err != nil {
		return nil, err
	}
	family, err := w.Family(fb)
	if err != nil {
		return nil, err
	}

	s := &healthDecaySystem{healths: healths}
	s.IteratingSystem = ecs.NewIteratingSystem(s, w, ecs.EachFrameInterval, family)
	return s, nil
}

func (s *healthDecaySystem) OnTickEntity(e ecs.Entity) {
	health := s.healths.GetOrNull(e)
	if health == nil {
		return
	}
	health.HP--
	if health.HP <= 0 {
		_ = s.World.Remove(e)
	}
}
