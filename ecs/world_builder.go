package ecs

import "github.com/kamstrup/intmap"

// WorldBuilder assembles a World's configuration, component registrations,
// system registrations, and injectables before Build constructs the
// World, mirroring the teacher's constructor-composition style in place
// of spec §6's conceptual entityCapacity/components{}/systems{}/inject()
// DSL.
type WorldBuilder struct {
	config     Config
	components *ComponentService
	injection  *InjectionRegistry
	logger     Logger

	systemFactories []func(*World) (System, error)
	err             error
}

// NewWorldBuilder returns a builder with default (zero) entity capacity
// and an empty component/system/injection set.
func NewWorldBuilder() *WorldBuilder {
	return &WorldBuilder{
		components: NewComponentService(),
		injection:  NewInjectionRegistry(),
		logger:     noopLogger{},
	}
}

// EntityCapacity sets the initial backing-array size of the entity
// service. Component mapper storage is not pre-sized by it.
func (b *WorldBuilder) EntityCapacity(n int) *WorldBuilder {
	b.config.EntityCapacity = n
	return b
}

// WithLogger installs l as the World's operational logger.
func (b *WorldBuilder) WithLogger(l Logger) *WorldBuilder {
	b.logger = l
	return b
}

// Inject registers obj under name, available to system factories via
// World.Injection.
func (b *WorldBuilder) Inject(name string, obj any) *WorldBuilder {
	b.injection.Set(name, obj)
	return b
}

// AddSystem queues factory to run once the World exists, registering its
// result in registration order. factory receives a non-owning reference to
// the World being built, resolving the World↔Systems cyclic dependency
// without a cycle in ownership (spec §9): the World owns the systems;
// systems merely borrow the World handle for deferred mutation.
func (b *WorldBuilder) AddSystem(factory func(*World) (System, error)) *WorldBuilder {
	b.systemFactories = append(b.systemFactories, factory)
	return b
}

// WithComponent registers component type T on the World being built, with
// an optional set of initial listeners. Registration happens immediately;
// a failure such as a duplicate registration (ComponentAlreadyAdded) is
// recorded on the builder, later WithComponent calls are skipped, and
// Build returns that error. Methods cannot be generic in Go, so this is
// a free function taking the builder, mirroring the teacher's
// RegisterComponent[T](registry) shape.
func WithComponent[T any](b *WorldBuilder, factory func() T, listeners ...Listener[T]) *WorldBuilder {
	if b.err != nil {
		return b
	}
	if _, err := RegisterComponent[T](b.components, factory, listeners...); err != nil {
		b.err = err
	}
	return b
}

// Build constructs the World, wiring every registered component mapper's
// back-reference and running every queued system factory in order.
func (b *WorldBuilder) Build() (*World, error) {
	if b.err != nil {
		return nil, b.err
	}

	w := &World{
		Config:     b.config,
		Components: b.components,
		Entities:   NewEntityService(b.config.EntityCapacity, b.components),
		Systems:    NewSystemService(),
		Injection:  b.injection,
		families:   intmap.New[uint64, *Family](16),
		logger:     b.logger,
	}
	w.Entities.logger = b.logger
	b.components.setWorld(w)

	for _, factory := range b.systemFactories {
		sys, err := factory(w)
		if err != nil {
			return nil, err
		}
		if err := w.Systems.Register(sys); err != nil {
			return nil, err
		}
	}

	return w, nil
}
