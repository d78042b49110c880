package ecs

import "github.com/kamstrup/intmap"

// Config holds the sizing knobs used when a World is built.
type Config struct {
	// EntityCapacity sizes the initial backing arrays of the entity
	// service. Component mapper storage is not pre-sized; it grows on first
	// use.
	EntityCapacity int
}

// World is the top-level façade composing the component registry, entity
// service, system scheduler, and injection registry.
type World struct {
	Config     Config
	Components *ComponentService
	Entities   *EntityService
	Systems    *SystemService
	Injection  *InjectionRegistry

	// DeltaTime is set by Update before systems run.
	DeltaTime float32

	families *intmap.Map[uint64, *Family]
	logger   Logger
}

// Entity creates a new entity (a recycled id if one is available, else the
// next unused id), runs configure against it, and notifies families.
func (w *World) Entity(configure func(*World, Entity)) Entity {
	return w.Entities.Create(w, configure)
}

// Remove destroys e, clearing its components and recycling its id.
func (w *World) Remove(e Entity) error {
	return w.Entities.Remove(e)
}

// RemoveAll destroys every active entity.
func (w *World) RemoveAll() error {
	return w.Entities.RemoveAll()
}

// ForEach iterates every active entity in ascending id order.
func (w *World) ForEach(f func(Entity)) {
	w.Entities.ForEach(f)
}

// Family returns the (possibly cached) Family matching b's predicate.
// Families are deduplicated by predicate equality: building the same
// allOf/noneOf/anyOf triple twice returns the same *Family. Fails with
// FamilyEmpty if b has no constraint set at all.
func (w *World) Family(b *FamilyBuilder) (*Family, error) {
	if b.isEmpty() {
		return nil, newFamilyEmptyError()
	}

	key := familyCacheKey(b.allOf, b.noneOf, b.anyOf)
	if f, ok := w.families.Get(key); ok {
		return f, nil
	}

	f := newFamily(b.allOf, b.noneOf, b.anyOf, w.Entities, w.logger)
	w.families.Put(key, f)
	return f, nil
}

func familyCacheKey(allOf, noneOf, anyOf BitArray) uint64 {
	const prime uint64 = 1099511628211
	h := allOf.Hash()
	h *= prime
	h ^= noneOf.Hash()
	h *= prime
	h ^= anyOf.Hash()
	h *= prime
	return h
}

// Update sets DeltaTime and drives one pass of every registered system in
// registration order.
func (w *World) Update(dt float32) {
	w.DeltaTime = dt
	w.Systems.Update()
}

// Dispose calls OnDispose on every system (reverse registration order) and
// removes all entities, firing their component listeners.
func (w *World) Dispose() error {
	w.Systems.Dispose()
	return w.Entities.RemoveAll()
}

// MapperOf is a convenience wrapper over Mapper(w.Components).
func MapperOf[T any](w *World) (*ComponentMapper[T], error) {
	return Mapper[T](w.Components)
}

// SystemOf is a convenience wrapper over SystemByType(w.Systems).
func SystemOf[T any](w *World) (T, error) {
	return SystemByType[T](w.Systems)
}
