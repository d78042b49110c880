package ecs

// delayedOp describes a structural mutation queued while a family
// iteration is in progress. removeAll, when true, means "remove every
// active entity" rather than a single entity.
type delayedOp struct {
	entity    Entity
	removeAll bool
}

// EntityService owns entity id allocation/recycling and each live
// entity's component bitset. It notifies registered families whenever an
// entity's mask may have changed.
type EntityService struct {
	nextID     Entity
	recycled   Bag[Entity]
	compMasks  Bag[BitArray]
	active     BitArray
	numActive  int
	components *ComponentService

	delayDepth       int
	delayedMutations []delayedOp

	families []*Family
	logger   Logger
}

// NewEntityService returns an EntityService with storage pre-sized to
// initialCapacity entities.
func NewEntityService(initialCapacity int, components *ComponentService) *EntityService {
	return &EntityService{
		recycled:   NewBag[Entity](initialCapacity / 4),
		compMasks:  NewBag[BitArray](initialCapacity),
		active:     NewBitArray(initialCapacity),
		components: components,
		logger:     noopLogger{},
	}
}

func (es *EntityService) registerFamily(f *Family) {
	es.families = append(es.families, f)
}

func (es *EntityService) notifyFamilies(e Entity) {
	for _, f := range es.families {
		f.onEntityCfgChanged(e)
	}
}

// Create allocates an entity (a recycled id if available, else the next
// unused id), runs configure against it, and notifies families. A
// re-allocated id always starts with an empty component mask.
func (es *EntityService) Create(world *World, configure func(*World, Entity)) Entity {
	e, ok := es.recycled.PopStack()
	if !ok {
		e = es.nextID
		es.nextID++
	}

	idx := int(e)
	es.compMasks.Set(idx, BitArray{})
	es.active.Set(idx)
	es.numActive++

	if configure != nil {
		configure(world, e)
	}
	es.notifyFamilies(e)
	return e
}

// Configure runs f against an existing entity and notifies families
// afterward, since f may have changed its component set.
func (es *EntityService) Configure(world *World, e Entity, f func(*World, Entity)) error {
	if !es.active.Get(int(e)) {
		return newIndexOutOfBoundsError(e)
	}
	if f != nil {
		f(world, e)
	}
	es.notifyFamilies(e)
	return nil
}

// Mask returns a pointer to entity e's live component bitset.
func (es *EntityService) Mask(e Entity) *BitArray {
	return es.compMasks.GetPtr(int(e))
}

// Remove destroys entity e: every component it carries is cleared (firing
// OnRemove listeners), its mask is cleared, and its id is pushed onto the
// recycle stack. If a family iteration is in progress (delayRemoval
// active), the removal is queued and applied when the outermost iteration
// exits.
func (es *EntityService) Remove(e Entity) error {
	if es.delayDepth > 0 {
		es.delayedMutations = append(es.delayedMutations, delayedOp{entity: e})
		return nil
	}
	return es.removeNow(e)
}

func (es *EntityService) removeNow(e Entity) error {
	idx := int(e)
	if !es.active.Get(idx) {
		return nil
	}

	mask := es.compMasks.GetPtr(idx)
	if err := es.components.removeAllFor(e, mask); err != nil {
		return err
	}
	// removeAllFor may have run listeners that created entities, which can
	// grow (and reallocate) compMasks; re-fetch rather than reuse mask.
	es.compMasks.GetPtr(idx).Reset()

	es.active.Clear(idx)
	es.numActive--
	es.recycled.PushStack(e)
	es.notifyFamilies(e)
	return nil
}

// RemoveAll removes every active entity, honoring delayRemoval the same
// way Remove does.
func (es *EntityService) RemoveAll() error {
	if es.delayDepth > 0 {
		es.delayedMutations = append(es.delayedMutations, delayedOp{removeAll: true})
		return nil
	}
	return es.removeAllNow()
}

func (es *EntityService) removeAllNow() error {
	var errOut error
	es.ForEach(func(e Entity) {
		if err := es.removeNow(e); err != nil {
			errOut = err
		}
	})
	return errOut
}

// ForEach iterates active entities in ascending id order. It is safe under
// concurrent mutation only while delayRemoval is held (e.g. from inside a
// Family.ForEach callback).
func (es *EntityService) ForEach(f func(Entity)) {
	es.active.ForEachSetBit(func(i int) {
		f(Entity(i))
	})
}

// Capacity returns the current size of the backing bags.
func (es *EntityService) Capacity() int { return es.compMasks.Size() }

// NumEntities returns the number of currently active entities.
func (es *EntityService) NumEntities() int { return es.numActive }

// acquireDelay increments the reference-counted delayRemoval guard. Every
// acquireDelay must be paired with a releaseDelay, typically via defer, so
// an exception mid-iteration still drains the queue exactly once when the
// outermost iteration exits.
func (es *EntityService) acquireDelay() {
	es.delayDepth++
}

func (es *EntityService) releaseDelay() {
	es.delayDepth--
	if es.delayDepth > 0 {
		return
	}
	es.drainDelayed()
}

func (es *EntityService) drainDelayed() {
	pending := es.delayedMutations
	es.delayedMutations = nil
	for _, op := range pending {
		if op.removeAll {
			es.removeAllNow()
			continue
		}
		es.removeNow(op.entity)
	}
	if len(pending) > 0 {
		es.logger.Debugf("drained %d deferred entity mutations", len(pending))
	}
}
