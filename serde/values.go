package serde

import (
	"math/big"
	"time"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/document"
)

// SerializeFunc adapts a function to the Serializable interface.
type SerializeFunc func(schema *smithy.Schema, s Serializer) error

func (f SerializeFunc) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return f(schema, s)
}

// Scalar adapters wrap primitive Go values as Serializable so they can be
// passed to SerializeMember, SerializeElement, and SerializeEntry.

type BooleanValue bool

func (v BooleanValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteBoolean(schema, bool(v))
}

type ByteValue int8

func (v ByteValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteByte(schema, int8(v))
}

type ShortValue int16

func (v ShortValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteShort(schema, int16(v))
}

type IntegerValue int32

func (v IntegerValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteInteger(schema, int32(v))
}

type LongValue int64

func (v LongValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteLong(schema, int64(v))
}

type FloatValue float32

func (v FloatValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteFloat(schema, float32(v))
}

type DoubleValue float64

func (v DoubleValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteDouble(schema, float64(v))
}

type StringValue string

func (v StringValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteString(schema, string(v))
}

type BlobValue []byte

func (v BlobValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteBlob(schema, []byte(v))
}

type TimestampValue time.Time

func (v TimestampValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteTimestamp(schema, time.Time(v))
}

type BigIntegerValue struct{ Int *big.Int }

func (v BigIntegerValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteBigInteger(schema, v.Int)
}

type BigDecimalValue struct{ Rat *big.Rat }

func (v BigDecimalValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteBigDecimal(schema, v.Rat)
}

type DocumentValue struct{ Value document.Value }

func (v DocumentValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteDocument(schema, v.Value)
}

// NullValue writes an explicit null, used for sparse collection entries.
type NullValue struct{}

func (NullValue) SerializeWithSchema(schema *smithy.Schema, s Serializer) error {
	return s.WriteNull(schema)
}
