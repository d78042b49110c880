package ecs

import (
	"reflect"
	"time"
)

// System is the minimal contract SystemService drives every tick.
// IntervalSystem and IteratingSystem both satisfy it via their Update
// method.
type System interface {
	Update()
}

// SystemStats reports execution statistics for a single registered
// system, grounded on the teacher's SchedulerStats/SystemStats.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemEntry struct {
	name   string
	typ    reflect.Type
	system System
	stats  SystemStats
}

// SystemService holds an ordered collection of systems and drives their
// per-tick execution. Registration order is execution order.
type SystemService struct {
	entries []*systemEntry
}

// NewSystemService returns an empty SystemService.
func NewSystemService() *SystemService {
	return &SystemService{}
}

// Register adds s to the end of the execution order. Fails with
// SystemAlreadyAdded if a system of the same concrete type is already
// registered.
func (ss *SystemService) Register(s System) error {
	t := reflect.TypeOf(s)
	for _, e := range ss.entries {
		if e.typ == t {
			return newSystemAlreadyAddedError(t.String())
		}
	}
	ss.entries = append(ss.entries, &systemEntry{
		name:   t.String(),
		typ:    t,
		system: s,
		stats:  SystemStats{Name: t.String(), MinDuration: time.Duration(1<<63 - 1)},
	})
	return nil
}

// Update calls Update on each registered system in registration order,
// recording per-system execution statistics.
func (ss *SystemService) Update() {
	for _, e := range ss.entries {
		start := time.Now()
		e.system.Update()
		d := time.Since(start)

		e.stats.ExecutionCount++
		e.stats.LastDuration = d
		e.stats.TotalDuration += d
		if d < e.stats.MinDuration {
			e.stats.MinDuration = d
		}
		if d > e.stats.MaxDuration {
			e.stats.MaxDuration = d
		}
	}
}

// Dispose calls OnDispose (via Disposer, when implemented) on every system
// in reverse registration order.
func (ss *SystemService) Dispose() {
	for i := len(ss.entries) - 1; i >= 0; i-- {
		if d, ok := ss.entries[i].system.(Disposer); ok {
			d.OnDispose()
		}
	}
}

// SystemByType returns the single registered system of type T. Fails with
// NoSuchSystem if none is registered. A free function rather than a method
// because Go methods cannot be generic.
func SystemByType[T any](ss *SystemService) (T, error) {
	var zero T
	want := reflect.TypeOf(zero)
	for _, e := range ss.entries {
		if e.typ == want {
			return e.system.(T), nil
		}
	}
	return zero, newNoSuchSystemError(want.String())
}

// Stats returns a snapshot of execution statistics for every registered
// system, in registration order.
func (ss *SystemService) Stats() []SystemStats {
	out := make([]SystemStats, len(ss.entries))
	for i, e := range ss.entries {
		out[i] = e.stats
	}
	return out
}
