// Package jsoncodec implements the serialization protocol over JSON. The
// serializer writes directly into a buffer; the deserializer pulls tokens
// from a streaming decoder so unknown fields can be skipped without
// materializing them.
//
// Member names honor the jsonName trait. Blobs are base64 strings.
// Timestamps follow the timestampFormat trait and default to RFC 3339
// date-time.
package jsoncodec

import (
	"bytes"
	"errors"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/serde"
	"github.com/mellemahp/smithy4go/traits"
)

// DefaultMaxDepth bounds aggregate nesting in both directions.
const DefaultMaxDepth = 2048

// ErrMaxDepth is returned when a value nests deeper than the configured
// limit.
var ErrMaxDepth = errors.New("jsoncodec: max depth exceeded")

// Options configures a codec instance.
type Options struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

// Marshal serializes a shape to JSON with default options.
func Marshal(v serde.SerializableShape) ([]byte, error) {
	return MarshalWith(v, Options{})
}

// MarshalWith serializes a shape to JSON.
func MarshalWith(v serde.SerializableShape, opt Options) ([]byte, error) {
	var buf bytes.Buffer
	s := NewSerializer(&buf, opt)
	if err := serde.Serialize(v, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal deserializes JSON into the builder and builds the shape with
// default validation.
func Unmarshal[T any](data []byte, schema *smithy.Schema, b serde.ShapeBuilder[T]) (T, error) {
	return UnmarshalWith(data, schema, b, Options{})
}

// UnmarshalWith deserializes JSON into the builder and builds the shape.
func UnmarshalWith[T any](data []byte, schema *smithy.Schema, b serde.ShapeBuilder[T], opt Options) (T, error) {
	d := NewDeserializer(bytes.NewReader(data), opt)
	return serde.Deserialize(schema, b, d)
}

// structMembers lists the fields to match against, resolving through a
// member schema to its target when the caller passed one.
func structMembers(schema *smithy.Schema) []*smithy.Schema {
	if schema.Type() == smithy.ShapeTypeMember {
		schema = schema.MemberTarget()
	}
	return schema.Members()
}

// memberKey resolves the wire name of a struct member.
func memberKey(member *smithy.Schema) string {
	if t, ok := smithy.GetTrait[traits.JSONName](member); ok {
		return t.Name
	}
	return member.MemberName()
}

// timestampFormat resolves the wire format of a timestamp value.
func timestampFormat(schema *smithy.Schema) string {
	if t, ok := smithy.GetTrait[traits.TimestampFormat](schema); ok {
		return t.Format
	}
	return traits.TimestampDateTime
}
