package ecs

// FamilyBuilder assembles a Family predicate before handing it to World,
// mirroring spec's family{ allOf(...); noneOf(...); anyOf(...) } shape
// without a DSL: AllOf/NoneOf/AnyOf take already-registered mappers.
type FamilyBuilder struct {
	allOf, noneOf, anyOf BitArray
}

// NewFamilyBuilder returns an empty builder.
func NewFamilyBuilder() *FamilyBuilder {
	return &FamilyBuilder{}
}

// AllOf requires every given component id to be present.
func (b *FamilyBuilder) AllOf(ids ...uint16) *FamilyBuilder {
	for _, id := range ids {
		b.allOf.Set(int(id))
	}
	return b
}

// NoneOf excludes entities carrying any of the given component ids.
func (b *FamilyBuilder) NoneOf(ids ...uint16) *FamilyBuilder {
	for _, id := range ids {
		b.noneOf.Set(int(id))
	}
	return b
}

// AnyOf requires at least one of the given component ids to be present.
func (b *FamilyBuilder) AnyOf(ids ...uint16) *FamilyBuilder {
	for _, id := range ids {
		b.anyOf.Set(int(id))
	}
	return b
}

func (b *FamilyBuilder) isEmpty() bool {
	return b.allOf.IsEmpty() && b.noneOf.IsEmpty() && b.anyOf.IsEmpty()
}

// AllOfType is a convenience for the common case of requiring a
// registered component type rather than a raw id.
func AllOfType[T any](b *FamilyBuilder, cs *ComponentService) (*FamilyBuilder, error) {
	m, err := Mapper[T](cs)
	if err != nil {
		return nil, err
	}
	return b.AllOf(m.ID()), nil
}

// NoneOfType is the NoneOf counterpart of AllOfType.
func NoneOfType[T any](b *FamilyBuilder, cs *ComponentService) (*FamilyBuilder, error) {
	m, err := Mapper[T](cs)
	if err != nil {
		return nil, err
	}
	return b.NoneOf(m.ID()), nil
}

// AnyOfType is the AnyOf counterpart of AllOfType.
func AnyOfType[T any](b *FamilyBuilder, cs *ComponentService) (*FamilyBuilder, error) {
	m, err := Mapper[T](cs)
	if err != nil {
		return nil, err
	}
	return b.AnyOf(m.ID()), nil
}
