// Package serde defines the schema-guided serialization protocol: the
// Serializer (push) and Deserializer (pull) contracts that concrete codecs
// implement, and the builder machinery generated shapes use to accumulate
// partial state during deserialization before validating and constructing
// the final immutable value.
package serde

import (
	"math/big"
	"time"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/document"
)

// Serializable is any value that can write itself through a Serializer,
// guided by a schema. Generated shapes implement it; scalar adapters for
// primitive values live in values.go.
type Serializable interface {
	SerializeWithSchema(schema *smithy.Schema, s Serializer) error
}

// SerializableShape is a generated top-level shape carrying static access to
// its own schema.
type SerializableShape interface {
	Serializable
	Schema() *smithy.Schema
}

// Serialize writes a shape through the serializer using the shape's own
// schema.
func Serialize(v SerializableShape, s Serializer) error {
	return v.SerializeWithSchema(v.Schema(), s)
}

// Serializer is the push-model half of the protocol. Aggregate writes
// return a sub-serializer that must be finished with exactly one End call;
// scalar writes are terminal. Implementations report sink and protocol
// failures through ordinary errors.
type Serializer interface {
	WriteStruct(schema *smithy.Schema, size int) (StructSerializer, error)
	WriteList(schema *smithy.Schema, size int) (ListSerializer, error)
	WriteMap(schema *smithy.Schema, size int) (MapSerializer, error)

	WriteBoolean(schema *smithy.Schema, v bool) error
	WriteByte(schema *smithy.Schema, v int8) error
	WriteShort(schema *smithy.Schema, v int16) error
	WriteInteger(schema *smithy.Schema, v int32) error
	WriteLong(schema *smithy.Schema, v int64) error
	WriteFloat(schema *smithy.Schema, v float32) error
	WriteDouble(schema *smithy.Schema, v float64) error
	WriteBigInteger(schema *smithy.Schema, v *big.Int) error
	WriteBigDecimal(schema *smithy.Schema, v *big.Rat) error
	WriteString(schema *smithy.Schema, v string) error
	WriteBlob(schema *smithy.Schema, v []byte) error
	WriteTimestamp(schema *smithy.Schema, v time.Time) error
	WriteDocument(schema *smithy.Schema, v document.Value) error

	// WriteNull writes an explicit null value.
	WriteNull(schema *smithy.Schema) error

	// Skip omits an absent optional value entirely.
	Skip(schema *smithy.Schema) error
}

// StructSerializer writes the members of one structure or union.
type StructSerializer interface {
	// SerializeMember writes one member value.
	SerializeMember(member *smithy.Schema, v Serializable) error

	// SerializeOptionalMember writes the member when v is non-nil and
	// skips it otherwise.
	SerializeOptionalMember(member *smithy.Schema, v Serializable) error

	// End closes the structure. It must be called exactly once.
	End(schema *smithy.Schema) error
}

// ListSerializer writes the elements of one list.
type ListSerializer interface {
	SerializeElement(member *smithy.Schema, v Serializable) error
	End(schema *smithy.Schema) error
}

// MapSerializer writes the entries of one map.
type MapSerializer interface {
	SerializeEntry(keySchema, valueSchema *smithy.Schema, key string, v Serializable) error
	End(schema *smithy.Schema) error
}
