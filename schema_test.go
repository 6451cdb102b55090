package smithy4go_test

import (
	"sync"
	"testing"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/prelude"
	"github.com/mellemahp/smithy4go/traits"
)

func TestStructureMembersRequiredFirst(t *testing.T) {
	s := smithy.NewStructureBuilder(smithy.MustShapeID("test#Shape")).
		PutMember("a", prelude.String()).
		PutMember("b", prelude.String(), traits.Required{}).
		PutMember("c", prelude.String()).
		PutMember("d", prelude.String(), traits.Required{}).
		MustBuild()

	want := []string{"b", "d", "a", "c"}
	members := s.Members()
	if len(members) != len(want) {
		t.Fatalf("got %d members, want %d", len(members), len(want))
	}
	for i, m := range members {
		if m.MemberName() != want[i] {
			t.Errorf("member %d = %q, want %q", i, m.MemberName(), want[i])
		}
		if m.MemberIndex() != i {
			t.Errorf("member %q index = %d, want %d", m.MemberName(), m.MemberIndex(), i)
		}
	}
}

func TestMemberLookupMatchesIteration(t *testing.T) {
	s := smithy.NewStructureBuilder(smithy.MustShapeID("test#Shape")).
		PutMember("a", prelude.String()).
		PutMember("b", prelude.Integer(), traits.Required{}).
		MustBuild()

	for _, m := range s.Members() {
		got, ok := s.Member(m.MemberName())
		if !ok || got != m {
			t.Fatalf("Member(%q) did not return the iterated schema", m.MemberName())
		}
	}
	if _, ok := s.Member("missing"); ok {
		t.Fatal("Member(missing) = ok")
	}
}

func TestMemberTraitFlattening(t *testing.T) {
	target := smithy.NewStringSchema(
		smithy.MustShapeID("test#ShortString"),
		traits.LengthMax(10),
		traits.Sensitive{},
	)
	s := smithy.NewStructureBuilder(smithy.MustShapeID("test#Shape")).
		PutMember("field", target, traits.LengthMax(5)).
		MustBuild()

	member := s.ExpectMember("field")
	l, ok := smithy.GetTrait[traits.Length](member)
	if !ok {
		t.Fatal("length trait not flattened onto member")
	}
	if got := l.MaxValue(); got != 5 {
		t.Fatalf("member-site length lost: max = %d, want 5", got)
	}
	if !member.ContainsTrait((traits.Sensitive{}).TraitID()) {
		t.Fatal("target trait not flattened onto member")
	}
	if target.ContainsTrait(smithy.RequiredTraitID) {
		t.Fatal("flattening mutated the target")
	}
}

func TestListMemberContract(t *testing.T) {
	_, err := smithy.NewListBuilder(smithy.MustShapeID("test#List")).
		PutMember("element", prelude.String()).
		Build()
	if err == nil {
		t.Fatal("expected error for list member not named \"member\"")
	}

	s := smithy.NewListBuilder(smithy.MustShapeID("test#List")).
		PutMember("member", prelude.String()).
		MustBuild()
	m := s.ExpectMember("member")
	if m.TargetType() != smithy.ShapeTypeString {
		t.Fatalf("list member target = %s", m.TargetType())
	}
}

func TestMapMemberContract(t *testing.T) {
	_, err := smithy.NewMapBuilder(smithy.MustShapeID("test#Map")).
		PutMember("key", prelude.String()).
		PutMember("val", prelude.String()).
		Build()
	if err == nil {
		t.Fatal("expected error for map member named \"val\"")
	}

	_, err = smithy.NewMapBuilder(smithy.MustShapeID("test#Map")).
		PutMember("key", prelude.String()).
		Build()
	if err == nil {
		t.Fatal("expected error for map without value member")
	}

	s := smithy.NewMapBuilder(smithy.MustShapeID("test#Map")).
		PutMember("value", prelude.Integer()).
		PutMember("key", prelude.String()).
		MustBuild()
	if s.ExpectMember("key").TargetType() != smithy.ShapeTypeString {
		t.Fatal("key member misassigned")
	}
	if s.ExpectMember("value").TargetType() != smithy.ShapeTypeInteger {
		t.Fatal("value member misassigned")
	}
}

func TestDuplicateMemberRejected(t *testing.T) {
	_, err := smithy.NewStructureBuilder(smithy.MustShapeID("test#Shape")).
		PutMember("a", prelude.String()).
		PutMember("a", prelude.String()).
		Build()
	if err == nil {
		t.Fatal("expected duplicate member error")
	}
}

var recursiveSchema func() *smithy.Schema

func init() {
	recursiveSchema = sync.OnceValue(func() *smithy.Schema {
		return smithy.NewStructureBuilder(smithy.MustShapeID("test#Recursive")).
			PutMember("value", prelude.String(), traits.Required{}).
			PutDeferredMember("next", RecursiveSchema).
			MustBuild()
	})
}

func RecursiveSchema() *smithy.Schema { return recursiveSchema() }

func TestRecursiveSchema(t *testing.T) {
	s := RecursiveSchema()
	next := s.ExpectMember("next")
	if next.MemberTarget() != s {
		t.Fatal("deferred member did not resolve to the containing schema")
	}
	// Descending through the cycle stays on the same schema.
	if next.MemberTarget().ExpectMember("next").MemberTarget() != s {
		t.Fatal("second hop did not resolve")
	}
}

func TestEnumSchemas(t *testing.T) {
	e := smithy.NewEnumSchema(smithy.MustShapeID("test#Suit"), []string{"HEART", "SPADE"})
	if e.Type() != smithy.ShapeTypeEnum {
		t.Fatalf("type = %s", e.Type())
	}
	if got := e.EnumValues(); len(got) != 2 || got[0] != "HEART" {
		t.Fatalf("EnumValues = %v", got)
	}

	ie := smithy.NewIntEnumSchema(smithy.MustShapeID("test#Code"), []int32{1, 2, 3})
	if got := ie.IntEnumValues(); len(got) != 3 || got[2] != 3 {
		t.Fatalf("IntEnumValues = %v", got)
	}
}

func TestGetTraitTyped(t *testing.T) {
	s := smithy.NewStringSchema(
		smithy.MustShapeID("test#Str"),
		traits.LengthBetween(1, 4),
	)
	l, ok := smithy.GetTrait[traits.Length](s)
	if !ok {
		t.Fatal("GetTrait missed attached trait")
	}
	if l.MinValue() != 1 || l.MaxValue() != 4 {
		t.Fatalf("length = [%d, %d]", l.MinValue(), l.MaxValue())
	}
	if _, ok := smithy.GetTrait[traits.Pattern](s); ok {
		t.Fatal("GetTrait reported an absent trait")
	}
}

func TestUnitSchema(t *testing.T) {
	u := prelude.Unit()
	if u.Type() != smithy.ShapeTypeStructure {
		t.Fatalf("unit type = %s", u.Type())
	}
	if len(u.Members()) != 0 {
		t.Fatalf("unit has %d members", len(u.Members()))
	}
}
