package ecs

// Entity is an opaque handle: a non-negative id. Two entities compare equal
// iff their ids are equal.
//
// There is no generation counter. Ids are dense and recycled, so the same
// id can refer to different logical entities over time; a consumer that
// holds a stale Entity past a remove/recycle cycle can silently observe an
// unrelated entity's data. This is a known limitation carried over from the
// spec rather than a bug: a hardened build would add a generation field.
type Entity uint32

// NoEntity is never a valid, live entity id.
const NoEntity Entity = 1<<32 - 1
