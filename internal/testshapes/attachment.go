package testshapes

import (
	"sync"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/prelude"
	"github.com/mellemahp/smithy4go/serde"
	"github.com/mellemahp/smithy4go/validate"
)

var attachmentSchema = sync.OnceValue(func() *smithy.Schema {
	return smithy.NewUnionBuilder(smithy.ShapeID{Namespace: namespace, Name: "Attachment"}).
		PutMember("text", prelude.String()).
		PutMember("data", prelude.Blob()).
		PutMember("none", prelude.Unit()).
		MustBuild()
})

// AttachmentSchema returns the Attachment union schema.
func AttachmentSchema() *smithy.Schema { return attachmentSchema() }

// Attachment is a union with exactly one variant set. The concrete types
// below are its only implementations.
type Attachment interface {
	serde.SerializableShape
	isAttachment()
}

// AttachmentText holds the text variant.
type AttachmentText struct{ Value string }

func (AttachmentText) isAttachment() {}
func (AttachmentText) Schema() *smithy.Schema { return AttachmentSchema() }

func (a AttachmentText) SerializeWithSchema(schema *smithy.Schema, s serde.Serializer) error {
	st, err := s.WriteStruct(schema, 1)
	if err != nil {
		return err
	}
	if err := st.SerializeMember(schema.ExpectMember("text"), serde.StringValue(a.Value)); err != nil {
		return err
	}
	return st.End(schema)
}

// AttachmentData holds the data variant.
type AttachmentData struct{ Value []byte }

func (AttachmentData) isAttachment() {}
func (AttachmentData) Schema() *smithy.Schema { return AttachmentSchema() }

func (a AttachmentData) SerializeWithSchema(schema *smithy.Schema, s serde.Serializer) error {
	st, err := s.WriteStruct(schema, 1)
	if err != nil {
		return err
	}
	if err := st.SerializeMember(schema.ExpectMember("data"), serde.BlobValue(a.Value)); err != nil {
		return err
	}
	return st.End(schema)
}

// AttachmentNone is the valueless variant, targeting smithy.api#Unit.
type AttachmentNone struct{}

func (AttachmentNone) isAttachment() {}
func (AttachmentNone) Schema() *smithy.Schema { return AttachmentSchema() }

func (AttachmentNone) SerializeWithSchema(schema *smithy.Schema, s serde.Serializer) error {
	st, err := s.WriteStruct(schema, 1)
	if err != nil {
		return err
	}
	member := schema.ExpectMember("none")
	err = st.SerializeMember(member, serde.SerializeFunc(func(sc *smithy.Schema, ss serde.Serializer) error {
		unit, err := ss.WriteStruct(sc, 0)
		if err != nil {
			return err
		}
		return unit.End(sc)
	}))
	if err != nil {
		return err
	}
	return st.End(schema)
}

// AttachmentBuilder accumulates the single variant of an Attachment.
type AttachmentBuilder struct {
	value Attachment
}

func NewAttachmentBuilder() *AttachmentBuilder { return &AttachmentBuilder{} }

func (b *AttachmentBuilder) DeserializeMember(member *smithy.Schema, d serde.Deserializer) error {
	if b.value != nil {
		return serde.ErrUnionValueAlreadySet
	}
	switch member.MemberIndex() {
	case 0:
		v, err := d.ReadString(member)
		if err != nil {
			return err
		}
		b.value = AttachmentText{Value: v}
	case 1:
		v, err := d.ReadBlob(member)
		if err != nil {
			return err
		}
		b.value = AttachmentData{Value: v}
	case 2:
		err := d.ReadStruct(member, func(m *smithy.Schema, dd serde.Deserializer) error {
			return dd.Skip()
		})
		if err != nil {
			return err
		}
		b.value = AttachmentNone{}
	default:
		return d.Skip()
	}
	return nil
}

func (b *AttachmentBuilder) Validate(v *validate.Validator) {}

// Correct returns the set variant, or nil when no variant arrived. Unions
// have no usable default, so Build turns the nil into an error instead.
func (b *AttachmentBuilder) Correct() Attachment { return b.value }

func (b *AttachmentBuilder) Build() (Attachment, error) {
	return b.BuildWithValidator(validate.NewDefault())
}

func (b *AttachmentBuilder) BuildWithValidator(v *validate.Validator) (Attachment, error) {
	if b.value == nil {
		return nil, serde.ErrNoUnionValue
	}
	return serde.BuildWith[Attachment](b, v)
}
