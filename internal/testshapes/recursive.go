package testshapes

import (
	"sync"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/prelude"
	"github.com/mellemahp/smithy4go/serde"
	"github.com/mellemahp/smithy4go/traits"
	"github.com/mellemahp/smithy4go/validate"
)

// nodeSchema refers to itself through a deferred member. The resolve func
// is the public accessor, which has finished initializing by the time any
// member target is first read.
var nodeSchema func() *smithy.Schema

func init() {
	nodeSchema = sync.OnceValue(func() *smithy.Schema {
		return smithy.NewStructureBuilder(smithy.ShapeID{Namespace: namespace, Name: "Node"}).
			PutMember("value", prelude.String(), traits.Required{}).
			PutDeferredMember("next", NodeSchema).
			MustBuild()
	})
}

// NodeSchema returns the self-referential Node structure schema.
func NodeSchema() *smithy.Schema { return nodeSchema() }

// Node is a singly linked chain.
type Node struct {
	Value string
	Next  *Node
}

func (n Node) Schema() *smithy.Schema { return NodeSchema() }

func (n Node) SerializeWithSchema(schema *smithy.Schema, s serde.Serializer) error {
	st, err := s.WriteStruct(schema, 2)
	if err != nil {
		return err
	}
	if err := st.SerializeMember(schema.ExpectMember("value"), serde.StringValue(n.Value)); err != nil {
		return err
	}
	if n.Next != nil {
		if err := st.SerializeMember(schema.ExpectMember("next"), *n.Next); err != nil {
			return err
		}
	}
	return st.End(schema)
}

// NodeBuilder accumulates Node members during deserialization. The next
// member holds another NodeBuilder, so an entire chain validates through
// one shared validator and its depth guard.
type NodeBuilder struct {
	value serde.Required[string]
	next  *NodeBuilder
}

func NewNodeBuilder() *NodeBuilder { return &NodeBuilder{} }

func (b *NodeBuilder) SetValue(v string) *NodeBuilder {
	b.value.Set(v)
	return b
}

func (b *NodeBuilder) SetNext(next *NodeBuilder) *NodeBuilder {
	b.next = next
	return b
}

func (b *NodeBuilder) DeserializeMember(member *smithy.Schema, d serde.Deserializer) error {
	switch member.MemberIndex() {
	case 0:
		v, err := d.ReadString(member)
		if err != nil {
			return err
		}
		b.value.Set(v)
	case 1:
		if d.IsNull() {
			return d.ReadNull()
		}
		nb := NewNodeBuilder()
		if err := d.ReadStruct(member, nb.DeserializeMember); err != nil {
			return err
		}
		b.next = nb
	default:
		return d.Skip()
	}
	return nil
}

func (b *NodeBuilder) Validate(v *validate.Validator) {
	schema := NodeSchema()
	v.CheckRequired(schema.ExpectMember("value"), b.value.IsSet())
	if b.next != nil {
		if v.Enter(schema.ExpectMember("next")) {
			b.next.Validate(v)
			v.Leave()
		}
	}
}

func (b *NodeBuilder) Correct() Node {
	n := Node{Value: b.value.OrZero()}
	if b.next != nil {
		next := b.next.Correct()
		n.Next = &next
	}
	return n
}

func (b *NodeBuilder) Build() (Node, error) {
	return b.BuildWithValidator(validate.NewDefault())
}

func (b *NodeBuilder) BuildWithValidator(v *validate.Validator) (Node, error) {
	return serde.BuildWith[Node](b, v)
}
