package ecs

// IntervalKind selects how an IntervalSystem paces its ticks.
type IntervalKind int

const (
	// EachFrame ticks exactly once per world Update call.
	EachFrame IntervalKind = iota
	// Fixed ticks zero or more times per world Update call, accumulating
	// delta time and stepping by a fixed amount.
	Fixed
)

// Interval describes an IntervalSystem's pacing: either EachFrame, or
// Fixed with a step in seconds.
type Interval struct {
	Kind IntervalKind
	Step float32
}

// EachFrameInterval is the zero-config EachFrame pacing.
var EachFrameInterval = Interval{Kind: EachFrame}

// FixedInterval returns a Fixed pacing with the given step in seconds.
func FixedInterval(stepSeconds float32) Interval {
	return Interval{Kind: Fixed, Step: stepSeconds}
}

// Ticker is implemented by the concrete system embedding *IntervalSystem;
// OnTick runs once per accumulated step.
type Ticker interface {
	OnTick()
}

// AlphaReceiver is an optional system capability: under Fixed pacing,
// OnAlpha runs once per world Update after ticking, with
// alpha = accumulator/step. It is not called under EachFrame.
type AlphaReceiver interface {
	OnAlpha(alpha float32)
}

// Disposer is an optional system capability invoked on world shutdown.
type Disposer interface {
	OnDispose()
}

// IntervalSystem is the base every system embeds. It is constructed with a
// self reference to the concrete system so its default Update can dispatch
// to the concrete OnTick/OnAlpha/OnDispose without virtual method
// dispatch, the same self-reference idiom the teacher uses implicitly via
// Go's embedding + interface satisfaction.
type IntervalSystem struct {
	Enabled  bool
	World    *World
	Interval Interval

	accumulator float32
	alpha       float32

	// capabilities is the outermost concrete system, checked for the
	// optional AlphaReceiver/Disposer interfaces. It is distinct from tick
	// because IteratingSystem sits between IntervalSystem and the concrete
	// system: the tick callback routes through IteratingSystem's family
	// iteration, but capability checks must see the concrete system itself
	// or OnAlpha/OnDispose defined there would never be found.
	capabilities any
	tick         func()
}

// NewIntervalSystem wires self (the concrete system implementing Ticker)
// into a new, enabled IntervalSystem bound to world with the given pacing.
func NewIntervalSystem(self Ticker, world *World, interval Interval) *IntervalSystem {
	return newIntervalSystem(self, self.OnTick, world, interval)
}

// newIntervalSystem is the shared constructor: capabilities is the object
// checked for AlphaReceiver/Disposer, tick is what OnUpdate actually calls.
// IteratingSystem uses this to keep capabilities pointed at its own
// embedder while tick routes through family iteration.
func newIntervalSystem(capabilities any, tick func(), world *World, interval Interval) *IntervalSystem {
	return &IntervalSystem{
		Enabled:      true,
		World:        world,
		Interval:     interval,
		capabilities: capabilities,
		tick:         tick,
	}
}

// Alpha returns accumulator/step as of the last Update call under Fixed
// pacing; always 0 under EachFrame.
func (s *IntervalSystem) Alpha() float32 { return s.alpha }

// Update runs the default per-tick dispatch described in spec §4.7: under
// EachFrame it calls OnTick once; under Fixed it accumulates World's
// DeltaTime and calls OnTick once per whole step, then reports alpha via
// OnAlpha if the concrete system implements AlphaReceiver.
func (s *IntervalSystem) Update() {
	if !s.Enabled {
		return
	}

	switch s.Interval.Kind {
	case EachFrame:
		s.tick()
	case Fixed:
		s.accumulator += s.World.DeltaTime
		for s.accumulator >= s.Interval.Step {
			s.tick()
			s.accumulator -= s.Interval.Step
		}
		if s.Interval.Step > 0 {
			s.alpha = s.accumulator / s.Interval.Step
		}
		if ar, ok := s.capabilities.(AlphaReceiver); ok {
			ar.OnAlpha(s.alpha)
		}
	}
}

// Dispose invokes OnDispose if the concrete system implements Disposer.
func (s *IntervalSystem) Dispose() {
	if d, ok := s.capabilities.(Disposer); ok {
		d.OnDispose()
	}
}
