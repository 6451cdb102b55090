package testshapes

import (
	"sync"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/prelude"
	"github.com/mellemahp/smithy4go/serde"
	"github.com/mellemahp/smithy4go/traits"
	"github.com/mellemahp/smithy4go/validate"
)

var personSchema = sync.OnceValue(func() *smithy.Schema {
	return smithy.NewStructureBuilder(smithy.ShapeID{Namespace: namespace, Name: "Person"}).
		PutMember("name", prelude.String(), traits.Required{}, traits.LengthBetween(1, 100)).
		PutMember("age", prelude.Integer(), traits.RangeBetween(0, 150)).
		PutMember("ssn", prelude.String(), traits.Sensitive{}, traits.MustPattern(`^\d{3}-\d{2}-\d{4}$`)).
		MustBuild()
})

// PersonSchema returns the Person structure schema.
func PersonSchema() *smithy.Schema { return personSchema() }

// Person is a simple structure with one required member and two optional
// ones, one of them sensitive.
type Person struct {
	Name string
	Age  *int32
	SSN  *string
}

func (p Person) Schema() *smithy.Schema { return PersonSchema() }

func (p Person) SerializeWithSchema(schema *smithy.Schema, s serde.Serializer) error {
	st, err := s.WriteStruct(schema, 3)
	if err != nil {
		return err
	}
	if err := st.SerializeMember(schema.ExpectMember("name"), serde.StringValue(p.Name)); err != nil {
		return err
	}
	if p.Age != nil {
		if err := st.SerializeMember(schema.ExpectMember("age"), serde.IntegerValue(*p.Age)); err != nil {
			return err
		}
	}
	if p.SSN != nil {
		if err := st.SerializeMember(schema.ExpectMember("ssn"), serde.StringValue(*p.SSN)); err != nil {
			return err
		}
	}
	return st.End(schema)
}

func (p Person) String() string { return serde.FormatShape(p) }

// PersonBuilder accumulates Person members during deserialization.
type PersonBuilder struct {
	name serde.Required[string]
	age  *int32
	ssn  *string
}

func NewPersonBuilder() *PersonBuilder { return &PersonBuilder{} }

func (b *PersonBuilder) SetName(v string) *PersonBuilder {
	b.name.Set(v)
	return b
}

func (b *PersonBuilder) SetAge(v int32) *PersonBuilder {
	b.age = &v
	return b
}

func (b *PersonBuilder) SetSSN(v string) *PersonBuilder {
	b.ssn = &v
	return b
}

func (b *PersonBuilder) DeserializeMember(member *smithy.Schema, d serde.Deserializer) error {
	switch member.MemberIndex() {
	case 0:
		v, err := d.ReadString(member)
		if err != nil {
			return err
		}
		b.name.Set(v)
	case 1:
		if d.IsNull() {
			return d.ReadNull()
		}
		v, err := d.ReadInteger(member)
		if err != nil {
			return err
		}
		b.age = &v
	case 2:
		if d.IsNull() {
			return d.ReadNull()
		}
		v, err := d.ReadString(member)
		if err != nil {
			return err
		}
		b.ssn = &v
	default:
		return d.Skip()
	}
	return nil
}

func (b *PersonBuilder) Validate(v *validate.Validator) {
	schema := PersonSchema()
	name := schema.ExpectMember("name")
	v.CheckRequired(name, b.name.IsSet())
	if s, ok := b.name.Get(); ok {
		v.CheckString(name, s)
	}
	if b.age != nil {
		v.CheckInteger(schema.ExpectMember("age"), int64(*b.age))
	}
	if b.ssn != nil {
		v.CheckString(schema.ExpectMember("ssn"), *b.ssn)
	}
}

func (b *PersonBuilder) Correct() Person {
	return Person{Name: b.name.OrZero(), Age: b.age, SSN: b.ssn}
}

func (b *PersonBuilder) Build() (Person, error) {
	return b.BuildWithValidator(validate.NewDefault())
}

func (b *PersonBuilder) BuildWithValidator(v *validate.Validator) (Person, error) {
	return serde.BuildWith[Person](b, v)
}
