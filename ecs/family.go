package ecs

// Family is a cached set of entities matching a composite predicate over
// component presence. It is kept consistent incrementally: entity
// mutations mark it dirty, and membership is recomputed lazily on the next
// updateIfDirty (normally triggered by ForEach).
type Family struct {
	allOf, noneOf, anyOf BitArray

	members    BitArray
	memberList Bag[Entity]
	dirty      bool

	entities *EntityService
	logger   Logger
}

func newFamily(allOf, noneOf, anyOf BitArray, entities *EntityService, logger Logger) *Family {
	if logger == nil {
		logger = noopLogger{}
	}
	f := &Family{
		allOf:    allOf,
		noneOf:   noneOf,
		anyOf:    anyOf,
		entities: entities,
		dirty:    true,
		logger:   logger,
	}
	entities.registerFamily(f)
	return f
}

func (f *Family) matches(mask BitArray) bool {
	if !f.allOf.IsEmpty() && !mask.Contains(f.allOf) {
		return false
	}
	if !f.noneOf.IsEmpty() && mask.Intersects(f.noneOf) {
		return false
	}
	if !f.anyOf.IsEmpty() && !mask.Intersects(f.anyOf) {
		return false
	}
	return true
}

func (f *Family) onEntityCfgChanged(Entity) {
	f.dirty = true
}

// updateIfDirty rebuilds members/memberList by rescanning active entities.
// It is a no-op when the family is already clean.
func (f *Family) updateIfDirty() {
	if !f.dirty {
		return
	}

	f.members.Reset()
	f.memberList = Bag[Entity]{}

	count := 0
	f.entities.ForEach(func(e Entity) {
		mask := f.entities.Mask(e)
		if f.matches(*mask) {
			f.members.Set(int(e))
			f.memberList.Add(e)
			count++
		}
	})

	f.dirty = false
	f.logger.Debugf("family recomputed: %d members", count)
}

// ForEach recomputes membership if dirty, then iterates a stable snapshot
// of the member list. Entity removals issued from fn (Remove/RemoveAll) are
// deferred and applied once the outermost ForEach (of this or any other
// family) exits. Entity creation and component add/remove take effect
// immediately; they do not change which entities the current pass visits.
func (f *Family) ForEach(fn func(Entity)) {
	f.updateIfDirty()

	f.entities.acquireDelay()
	defer f.entities.releaseDelay()

	snapshot := f.memberList
	for e := range snapshot.All() {
		fn(e)
	}
}

// NumEntities returns the number of matching entities, recomputing first
// if dirty.
func (f *Family) NumEntities() int {
	f.updateIfDirty()
	return f.memberList.Size()
}

// IsEmpty reports whether the family currently matches no entity.
func (f *Family) IsEmpty() bool {
	return f.NumEntities() == 0
}

// Contains reports whether e currently matches the family's predicate.
func (f *Family) Contains(e Entity) bool {
	f.updateIfDirty()
	return f.members.Get(int(e))
}
