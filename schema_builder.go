package smithy4go

import (
	"fmt"
	"sync"
)

// RequiredTraitID identifies the smithy.api#required trait. It lives here,
// rather than in the traits subpackage, because member ordering at schema
// build time depends on it.
var RequiredTraitID = ShapeID{Namespace: "smithy.api", Name: "required"}

// SchemaBuilder accumulates members and traits for an aggregate shape and
// freezes them into an immutable Schema. Builders are single-use and not
// safe for concurrent use; construction is expected to happen once behind a
// lazily-initialized static.
type SchemaBuilder struct {
	id      ShapeID
	typ     ShapeType
	members []memberBuilder
	traits  TraitMap
	err     error
}

type memberBuilder struct {
	name    string
	id      ShapeID
	target  *Schema
	resolve func() *Schema
	traits  TraitMap
}

// required reports whether the member site carries the required trait.
// Requiredness is modeled on members in Smithy, so deferred targets do not
// need to be resolved to order a structure's members.
func (mb memberBuilder) required() bool {
	return mb.traits.Contains(RequiredTraitID)
}

func newSchemaBuilder(id ShapeID, typ ShapeType) *SchemaBuilder {
	return &SchemaBuilder{id: id, typ: typ}
}

// NewStructureBuilder starts a structure schema.
func NewStructureBuilder(id ShapeID, traits ...Trait) *SchemaBuilder {
	b := newSchemaBuilder(id, ShapeTypeStructure)
	b.traits = NewTraitMap(traits...)
	return b
}

// NewUnionBuilder starts a union schema.
func NewUnionBuilder(id ShapeID, traits ...Trait) *SchemaBuilder {
	b := newSchemaBuilder(id, ShapeTypeUnion)
	b.traits = NewTraitMap(traits...)
	return b
}

// NewListBuilder starts a list schema; it accepts exactly one member named
// "member".
func NewListBuilder(id ShapeID, traits ...Trait) *SchemaBuilder {
	b := newSchemaBuilder(id, ShapeTypeList)
	b.traits = NewTraitMap(traits...)
	return b
}

// NewMapBuilder starts a map schema; it accepts exactly two members named
// "key" and "value".
func NewMapBuilder(id ShapeID, traits ...Trait) *SchemaBuilder {
	b := newSchemaBuilder(id, ShapeTypeMap)
	b.traits = NewTraitMap(traits...)
	return b
}

// PutMember appends a member targeting the given schema. Contract
// violations (a list member not named "member", a map member other than
// "key"/"value", a duplicate name) are recorded and surfaced by Build.
func (b *SchemaBuilder) PutMember(name string, target *Schema, traits ...Trait) *SchemaBuilder {
	return b.putMember(name, target, nil, traits)
}

// PutDeferredMember appends a member whose target schema is resolved lazily
// on first access. This is how self-referential and mutually recursive
// schemas are expressed: the resolve func typically calls the same
// sync.OnceValue static that is currently being constructed, which has
// completed by the time any member target is first read.
func (b *SchemaBuilder) PutDeferredMember(name string, resolve func() *Schema, traits ...Trait) *SchemaBuilder {
	if resolve == nil {
		b.fail(fmt.Errorf("smithy4go: deferred member %q of %s has nil resolve func", name, b.id))
		return b
	}
	return b.putMember(name, nil, resolve, traits)
}

func (b *SchemaBuilder) putMember(name string, target *Schema, resolve func() *Schema, traits []Trait) *SchemaBuilder {
	switch b.typ {
	case ShapeTypeList:
		if name != "member" {
			b.fail(fmt.Errorf("smithy4go: list %s members must be named \"member\", got %q", b.id, name))
			return b
		}
	case ShapeTypeMap:
		if name != "key" && name != "value" {
			b.fail(fmt.Errorf("smithy4go: map %s members must be named \"key\" or \"value\", got %q", b.id, name))
			return b
		}
	}
	for _, m := range b.members {
		if m.name == name {
			b.fail(fmt.Errorf("smithy4go: duplicate member %q on %s", name, b.id))
			return b
		}
	}
	b.members = append(b.members, memberBuilder{
		name:    name,
		id:      b.id.WithMember(name),
		target:  target,
		resolve: resolve,
		traits:  NewTraitMap(traits...),
	})
	return b
}

// WithTrait attaches a trait to the shape itself.
func (b *SchemaBuilder) WithTrait(t Trait) *SchemaBuilder {
	b.traits.insert(t)
	return b
}

func (b *SchemaBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Build freezes the builder into an immutable schema. For structures the
// members are stably partitioned so that required members precede optional
// ones, preserving declaration order within each group; the zero-based
// member index reflects the final order. Unions keep declaration order.
func (b *SchemaBuilder) Build() (*Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	switch b.typ {
	case ShapeTypeStructure, ShapeTypeUnion:
		ordered := b.members
		if b.typ == ShapeTypeStructure {
			ordered = partitionRequired(b.members)
		}
		s := &Schema{
			id:      b.id,
			typ:     b.typ,
			traits:  b.traits,
			members: make([]*Schema, 0, len(ordered)),
			byName:  make(map[string]*Schema, len(ordered)),
		}
		for i, mb := range ordered {
			m := mb.buildMember(i)
			s.members = append(s.members, m)
			s.byName[m.memberName] = m
		}
		return s, nil
	case ShapeTypeList:
		if len(b.members) != 1 {
			return nil, fmt.Errorf("smithy4go: list %s requires exactly one member, got %d", b.id, len(b.members))
		}
		return &Schema{
			id:         b.id,
			typ:        b.typ,
			traits:     b.traits,
			listMember: b.members[0].buildMember(0),
		}, nil
	case ShapeTypeMap:
		if len(b.members) != 2 {
			return nil, fmt.Errorf("smithy4go: map %s requires key and value members, got %d", b.id, len(b.members))
		}
		key, value := b.members[0], b.members[1]
		if key.name != "key" {
			key, value = value, key
		}
		return &Schema{
			id:       b.id,
			typ:      b.typ,
			traits:   b.traits,
			mapKey:   key.buildMember(0),
			mapValue: value.buildMember(1),
		}, nil
	}
	return nil, fmt.Errorf("smithy4go: cannot build schema of type %s", b.typ)
}

// MustBuild is Build for static schema definitions; it panics on error.
func (b *SchemaBuilder) MustBuild() *Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// partitionRequired stably moves required members ahead of optional ones.
func partitionRequired(members []memberBuilder) []memberBuilder {
	ordered := make([]memberBuilder, 0, len(members))
	for _, m := range members {
		if m.required() {
			ordered = append(ordered, m)
		}
	}
	for _, m := range members {
		if !m.required() {
			ordered = append(ordered, m)
		}
	}
	return ordered
}

func (mb memberBuilder) buildMember(index int) *Schema {
	m := &Schema{
		id:          mb.id,
		typ:         ShapeTypeMember,
		traits:      mb.traits,
		memberName:  mb.name,
		memberIndex: index,
		target:      mb.target,
		resolve:     mb.resolve,
		resolveOnce: new(sync.Once),
	}
	if mb.target != nil {
		// Direct targets flatten eagerly; deferred ones flatten on first
		// access so recursive definitions can complete first.
		m.resolveTarget()
	}
	return m
}
