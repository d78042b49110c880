package ecs

// AddComponent installs a component of type T on e, growing the mapper's
// storage as needed. configure may be nil. Re-adding an existing component
// overwrites it in place via configure and does not fire listeners — the
// documented overwrite-silent contract (spec Open Question).
func AddComponent[T any](w *World, e Entity, configure func(*T)) error {
	mapper, err := Mapper[T](w.Components)
	if err != nil {
		return err
	}
	mapper.Add(e, w.Entities.Mask(e), configure)
	w.Entities.notifyFamilies(e)
	return nil
}

// RemoveComponent removes e's component of type T, firing OnRemove
// listeners. Fails with NoSuchEntityComponent if e does not carry T.
func RemoveComponent[T any](w *World, e Entity) error {
	mapper, err := Mapper[T](w.Components)
	if err != nil {
		return err
	}
	if err := mapper.Remove(e, w.Entities.Mask(e)); err != nil {
		return err
	}
	w.Entities.notifyFamilies(e)
	return nil
}

// GetComponent returns a pointer to e's component of type T. Fails with
// NoSuchEntityComponent if absent.
func GetComponent[T any](w *World, e Entity) (*T, error) {
	mapper, err := Mapper[T](w.Components)
	if err != nil {
		return nil, err
	}
	return mapper.Get(e)
}

// HasComponent reports whether e currently carries component type T.
func HasComponent[T any](w *World, e Entity) (bool, error) {
	mapper, err := Mapper[T](w.Components)
	if err != nil {
		return false, err
	}
	return mapper.Contains(e), nil
}
