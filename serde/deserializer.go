package serde

import (
	"math/big"
	"time"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/document"
	"github.com/mellemahp/smithy4go/validate"
)

// Deserializer is the pull-model half of the protocol. The codec drives
// aggregate traversal: ReadStruct invokes the callback once per member
// found in the source, ReadList once per element, and ReadMap once per
// entry. A callback error aborts the read and propagates out unchanged.
type Deserializer interface {
	ReadStruct(schema *smithy.Schema, fn func(member *smithy.Schema, d Deserializer) error) error
	ReadList(schema *smithy.Schema, fn func(d Deserializer) error) error
	ReadMap(schema *smithy.Schema, fn func(key string, d Deserializer) error) error

	ReadBoolean(schema *smithy.Schema) (bool, error)
	ReadByte(schema *smithy.Schema) (int8, error)
	ReadShort(schema *smithy.Schema) (int16, error)
	ReadInteger(schema *smithy.Schema) (int32, error)
	ReadLong(schema *smithy.Schema) (int64, error)
	ReadFloat(schema *smithy.Schema) (float32, error)
	ReadDouble(schema *smithy.Schema) (float64, error)
	ReadBigInteger(schema *smithy.Schema) (*big.Int, error)
	ReadBigDecimal(schema *smithy.Schema) (*big.Rat, error)
	ReadString(schema *smithy.Schema) (string, error)
	ReadBlob(schema *smithy.Schema) ([]byte, error)
	ReadTimestamp(schema *smithy.Schema) (time.Time, error)
	ReadDocument(schema *smithy.Schema) (document.Value, error)

	// IsNull reports whether the next value is an explicit null without
	// consuming it.
	IsNull() bool

	// ReadNull consumes an explicit null value.
	ReadNull() error

	// Skip consumes and discards the next value, including nested
	// aggregates.
	Skip() error
}

// ShapeBuilder accumulates member values for one shape during
// deserialization. DeserializeMember dispatches on the member's index,
// Validate reports constraint violations against the accumulated state,
// Correct produces a value unconditionally by filling absent required
// members with protocol defaults, and the Build variants combine the two.
type ShapeBuilder[T any] interface {
	DeserializeMember(member *smithy.Schema, d Deserializer) error
	Validate(v *validate.Validator)
	Correct() T
	Build() (T, error)
	BuildWithValidator(v *validate.Validator) (T, error)
}

// Deserialize reads one shape from the deserializer into the builder and
// builds it with default validation.
func Deserialize[T any](schema *smithy.Schema, b ShapeBuilder[T], d Deserializer) (T, error) {
	if err := d.ReadStruct(schema, b.DeserializeMember); err != nil {
		var zero T
		return zero, err
	}
	return b.Build()
}

// BuildWith validates the builder's accumulated state against v and, when
// no violations were recorded, produces the corrected value. Generated
// Build and BuildWithValidator methods delegate here.
func BuildWith[T any](b interface {
	Validate(v *validate.Validator)
	Correct() T
}, v *validate.Validator) (T, error) {
	b.Validate(v)
	if err := v.Result(); err != nil {
		var zero T
		return zero, err
	}
	return b.Correct(), nil
}
