package smithy4go

import (
	"github.com/mellemahp/smithy4go/document"
)

// Trait is structured metadata attached to a schema node. Concrete built-in
// implementations live in the traits subpackage; traits without a Go
// implementation are represented by DynamicTrait.
type Trait interface {
	// TraitID is the trait's shape ID as written in the Smithy model.
	TraitID() ShapeID

	// TraitValue is the trait's data as a dynamic document value.
	TraitValue() document.Value
}

// DynamicTrait represents a trait with no concrete Go implementation. It can
// be queried from a schema by ID but cannot be retrieved through GetTrait.
type DynamicTrait struct {
	ID    ShapeID
	Value document.Value
}

func (t DynamicTrait) TraitID() ShapeID           { return t.ID }
func (t DynamicTrait) TraitValue() document.Value { return t.Value }

// TraitMap tracks the traits applied to a schema node, at most one per trait
// ID. The zero value is usable for lookups.
type TraitMap struct {
	m map[ShapeID]Trait
}

// NewTraitMap builds a map from a list of traits. Later duplicates of the
// same ID win.
func NewTraitMap(traits ...Trait) TraitMap {
	if len(traits) == 0 {
		return TraitMap{}
	}
	tm := TraitMap{m: make(map[ShapeID]Trait, len(traits))}
	for _, t := range traits {
		tm.m[t.TraitID()] = t
	}
	return tm
}

// Contains reports whether a trait with the given ID is present.
func (tm TraitMap) Contains(id ShapeID) bool {
	_, ok := tm.m[id]
	return ok
}

// Get returns the trait with the given ID, if present.
func (tm TraitMap) Get(id ShapeID) (Trait, bool) {
	t, ok := tm.m[id]
	return t, ok
}

// Len returns the number of traits in the map.
func (tm TraitMap) Len() int { return len(tm.m) }

// insert places a trait, overwriting any previous trait with the same ID.
func (tm *TraitMap) insert(t Trait) {
	if tm.m == nil {
		tm.m = make(map[ShapeID]Trait, 1)
	}
	tm.m[t.TraitID()] = t
}

// merge copies traits from other that are not already present. Existing
// entries win, which gives member-site traits precedence when flattening a
// member target's traits.
func (tm *TraitMap) merge(other TraitMap) {
	for id, t := range other.m {
		if _, ok := tm.m[id]; ok {
			continue
		}
		if tm.m == nil {
			tm.m = make(map[ShapeID]Trait, len(other.m))
		}
		tm.m[id] = t
	}
}

// GetTrait retrieves a trait from the schema as its concrete type. The
// lookup key is the zero value's TraitID, so T must implement TraitID on its
// value receiver without touching instance state.
func GetTrait[T Trait](s *Schema) (T, bool) {
	var zero T
	opaque, ok := s.Traits().Get(zero.TraitID())
	if !ok {
		return zero, false
	}
	t, ok := opaque.(T)
	return t, ok
}
