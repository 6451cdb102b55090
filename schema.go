package smithy4go

import (
	"fmt"
	"sync"
)

// Schema describes a shape from a Smithy model. Generated code constructs
// schemas once, usually behind a sync.OnceValue static, and uses them at
// runtime to drive serialization, deserialization, and validation.
//
// A Schema is immutable after SchemaBuilder.Build returns it and is safe for
// concurrent use. The one internal mutation, lazy resolution of a deferred
// member target, is guarded by sync.Once.
type Schema struct {
	id     ShapeID
	typ    ShapeType
	traits TraitMap

	// Structure/Union members in final (required-first) order.
	members []*Schema
	byName  map[string]*Schema

	// List/Map children.
	listMember *Schema
	mapKey     *Schema
	mapValue   *Schema

	// Enum/IntEnum values in declaration order.
	enumValues    []string
	intEnumValues []int32

	// Member state.
	memberName  string
	memberIndex int
	target      *Schema
	resolve     func() *Schema
	resolveOnce *sync.Once
}

// ID returns the schema's shape ID.
func (s *Schema) ID() ShapeID { return s.id }

// Type returns the schema's shape type.
func (s *Schema) Type() ShapeType { return s.typ }

// Traits returns the traits attached to this node. For member schemas the
// target's traits have been flattened in, with member-site traits winning.
func (s *Schema) Traits() TraitMap {
	if s.typ == ShapeTypeMember {
		s.resolveTarget()
	}
	return s.traits
}

// ContainsTrait reports whether a trait with the given ID is attached.
func (s *Schema) ContainsTrait(id ShapeID) bool {
	return s.Traits().Contains(id)
}

// GetTraitDynamic returns the trait with the given ID as the opaque Trait
// interface. Use the package-level GetTrait for typed access.
func (s *Schema) GetTraitDynamic(id ShapeID) (Trait, bool) {
	return s.Traits().Get(id)
}

// Member returns the named child schema, honoring each kind's member
// contract: structures and unions look up by field name, lists answer only
// "member", maps answer only "key" and "value", and member schemas delegate
// to their target. All other kinds have no members.
func (s *Schema) Member(name string) (*Schema, bool) {
	switch s.typ {
	case ShapeTypeStructure, ShapeTypeUnion:
		m, ok := s.byName[name]
		return m, ok
	case ShapeTypeList:
		if name == "member" {
			return s.listMember, true
		}
	case ShapeTypeMap:
		switch name {
		case "key":
			return s.mapKey, true
		case "value":
			return s.mapValue, true
		}
	case ShapeTypeMember:
		return s.MemberTarget().Member(name)
	}
	return nil, false
}

// ExpectMember is Member for generated code that has already validated the
// schema shape at model time; it panics when the member is absent.
func (s *Schema) ExpectMember(name string) *Schema {
	m, ok := s.Member(name)
	if !ok {
		panic(fmt.Sprintf("smithy4go: schema %s has no member %q", s.id, name))
	}
	return m
}

// Members returns structure/union members in their final order: required
// members first, then declaration order within each group. The returned
// slice must not be mutated.
func (s *Schema) Members() []*Schema { return s.members }

// MemberName returns the member's field name; empty for non-member schemas.
func (s *Schema) MemberName() string { return s.memberName }

// MemberIndex returns the member's zero-based position in its container's
// final order, used by generated builders for numeric dispatch.
func (s *Schema) MemberIndex() int { return s.memberIndex }

// MemberTarget resolves and returns the member's target schema. It panics
// when called on a non-member schema.
func (s *Schema) MemberTarget() *Schema {
	if s.typ != ShapeTypeMember {
		panic(fmt.Sprintf("smithy4go: schema %s is not a member", s.id))
	}
	s.resolveTarget()
	return s.target
}

// TargetType returns the member's resolved target type, or the schema's own
// type for non-members. Codecs use this to dispatch without caring whether
// they hold a member or a target schema.
func (s *Schema) TargetType() ShapeType {
	if s.typ == ShapeTypeMember {
		return s.MemberTarget().Type()
	}
	return s.typ
}

// EnumValues returns the allowed values of an Enum schema.
func (s *Schema) EnumValues() []string { return s.enumValues }

// IntEnumValues returns the allowed values of an IntEnum schema.
func (s *Schema) IntEnumValues() []int32 { return s.intEnumValues }

// resolveTarget runs the deferred target thunk once and flattens the
// target's traits into the member's trait map (member-site traits win).
func (s *Schema) resolveTarget() {
	if s.resolveOnce == nil {
		return
	}
	s.resolveOnce.Do(func() {
		if s.target == nil && s.resolve != nil {
			s.target = s.resolve()
		}
		if s.target != nil {
			s.traits.merge(s.target.Traits())
		}
	})
}

// NewScalarSchema constructs a leaf schema of the given scalar type.
func NewScalarSchema(typ ShapeType, id ShapeID, traits ...Trait) *Schema {
	if !typ.IsScalar() {
		panic(fmt.Sprintf("smithy4go: %s is not a scalar shape type", typ))
	}
	return &Schema{id: id, typ: typ, traits: NewTraitMap(traits...)}
}

// Scalar constructors, one per simple shape kind. Generated schema constants
// call these directly.

func NewBooleanSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeBoolean, id, traits...)
}

func NewByteSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeByte, id, traits...)
}

func NewShortSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeShort, id, traits...)
}

func NewIntegerSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeInteger, id, traits...)
}

func NewLongSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeLong, id, traits...)
}

func NewFloatSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeFloat, id, traits...)
}

func NewDoubleSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeDouble, id, traits...)
}

func NewBigIntegerSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeBigInteger, id, traits...)
}

func NewBigDecimalSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeBigDecimal, id, traits...)
}

func NewStringSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeString, id, traits...)
}

func NewBlobSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeBlob, id, traits...)
}

func NewTimestampSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeTimestamp, id, traits...)
}

func NewDocumentSchema(id ShapeID, traits ...Trait) *Schema {
	return NewScalarSchema(ShapeTypeDocument, id, traits...)
}

// NewEnumSchema constructs a string enum schema. Values keep declaration
// order.
func NewEnumSchema(id ShapeID, values []string, traits ...Trait) *Schema {
	return &Schema{
		id:         id,
		typ:        ShapeTypeEnum,
		enumValues: append([]string(nil), values...),
		traits:     NewTraitMap(traits...),
	}
}

// NewIntEnumSchema constructs an integer enum schema.
func NewIntEnumSchema(id ShapeID, values []int32, traits ...Trait) *Schema {
	return &Schema{
		id:            id,
		typ:           ShapeTypeIntEnum,
		intEnumValues: append([]int32(nil), values...),
		traits:        NewTraitMap(traits...),
	}
}
