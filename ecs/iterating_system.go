package ecs

// EntityTicker is implemented by the concrete system embedding
// *IteratingSystem; OnTickEntity runs once per matching entity, per tick.
type EntityTicker interface {
	OnTickEntity(e Entity)
}

// IteratingSystem specializes IntervalSystem to a single Family: its
// OnTick iterates the family, calling the concrete system's OnTickEntity
// for each member.
type IteratingSystem struct {
	*IntervalSystem
	Family *Family

	self EntityTicker
}

// NewIteratingSystem wires self into a new IteratingSystem bound to world,
// paced by interval, iterating family on every tick.
func NewIteratingSystem(self EntityTicker, world *World, interval Interval, family *Family) *IteratingSystem {
	is := &IteratingSystem{Family: family, self: self}
	// capabilities stays pointed at self (the concrete outer system), not
	// at is, so OnAlpha/OnDispose defined on self are still found by
	// IntervalSystem's optional-interface checks.
	is.IntervalSystem = newIntervalSystem(self, is.onTick, world, interval)
	return is
}

// onTick delegates to the family's deferred-mutation protected iteration.
func (is *IteratingSystem) onTick() {
	is.Family.ForEach(func(e Entity) {
		is.self.OnTickEntity(e)
	})
}

// ConfigureEntity delegates to EntityService.Configure, letting a system
// mutate an entity's components from inside OnTickEntity without bypassing
// family notification.
func (is *IteratingSystem) ConfigureEntity(e Entity, f func(*World, Entity)) error {
	return is.World.Entities.Configure(is.World, e, f)
}
