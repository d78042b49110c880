package ecs

import "fmt"

// Kind distinguishes the structured failure modes the core can return.
// Callers compare against the Err* sentinels with errors.Is rather than
// switching on Kind directly.
type Kind int

const (
	KindComponentAlreadyAdded Kind = iota
	KindNoSuchComponent
	KindNoSuchEntityComponent
	KindSystemAlreadyAdded
	KindNoSuchSystem
	KindFamilyEmpty
	KindIndexOutOfBounds
	KindInjectableNotFound
)

func (k Kind) String() string {
	switch k {
	case KindComponentAlreadyAdded:
		return "ComponentAlreadyAdded"
	case KindNoSuchComponent:
		return "NoSuchComponent"
	case KindNoSuchEntityComponent:
		return "NoSuchEntityComponent"
	case KindSystemAlreadyAdded:
		return "SystemAlreadyAdded"
	case KindNoSuchSystem:
		return "NoSuchSystem"
	case KindFamilyEmpty:
		return "FamilyEmpty"
	case KindIndexOutOfBounds:
		return "IndexOutOfBounds"
	case KindInjectableNotFound:
		return "InjectableNotFound"
	default:
		return "Unknown"
	}
}

// Error is the single error type the core returns. Ident carries whatever
// identifier the caller needs to act on the failure: a type name, an
// entity, or an injectable name.
type Error struct {
	Kind  Kind
	Ident string
}

func (e *Error) Error() string {
	if e.Ident == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Ident)
}

// Is matches by Kind only, so errors.Is(err, ecs.ErrNoSuchComponent) works
// regardless of the offending identifier.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for use with errors.Is. They carry no Ident; construct a
// fresh *Error with the new...Error constructors below when an identifier
// is needed.
var (
	ErrComponentAlreadyAdded = &Error{Kind: KindComponentAlreadyAdded}
	ErrNoSuchComponent       = &Error{Kind: KindNoSuchComponent}
	ErrNoSuchEntityComponent = &Error{Kind: KindNoSuchEntityComponent}
	ErrSystemAlreadyAdded    = &Error{Kind: KindSystemAlreadyAdded}
	ErrNoSuchSystem          = &Error{Kind: KindNoSuchSystem}
	ErrFamilyEmpty           = &Error{Kind: KindFamilyEmpty}
	ErrIndexOutOfBounds      = &Error{Kind: KindIndexOutOfBounds}
	ErrInjectableNotFound    = &Error{Kind: KindInjectableNotFound}
)

func newComponentAlreadyAddedError(typeName string) error {
	return &Error{Kind: KindComponentAlreadyAdded, Ident: typeName}
}

func newNoSuchComponentError(typeName string) error {
	return &Error{Kind: KindNoSuchComponent, Ident: typeName}
}

func newNoSuchEntityComponentError(typeName string, e Entity) error {
	return &Error{Kind: KindNoSuchEntityComponent, Ident: fmt.Sprintf("%s@%d", typeName, e)}
}

func newSystemAlreadyAddedError(typeName string) error {
	return &Error{Kind: KindSystemAlreadyAdded, Ident: typeName}
}

func newNoSuchSystemError(typeName string) error {
	return &Error{Kind: KindNoSuchSystem, Ident: typeName}
}

func newFamilyEmptyError() error {
	return &Error{Kind: KindFamilyEmpty}
}

func newIndexOutOfBoundsError(e Entity) error {
	return &Error{Kind: KindIndexOutOfBounds, Ident: fmt.Sprintf("%d", e)}
}

func newInjectableNotFoundError(name string) error {
	return &Error{Kind: KindInjectableNotFound, Ident: name}
}
