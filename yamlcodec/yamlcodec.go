// Package yamlcodec implements the serialization protocol over YAML. The
// serializer assembles a yaml.Node tree that the yaml encoder renders; the
// deserializer walks a decoded node tree, which makes unknown-field
// skipping and null detection trivial.
//
// Member names honor the jsonName trait so the JSON and YAML renderings of
// a shape stay field-compatible. Blobs use the !!binary tag.
package yamlcodec

import (
	"errors"

	"gopkg.in/yaml.v3"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/serde"
	"github.com/mellemahp/smithy4go/traits"
)

// DefaultMaxDepth bounds aggregate nesting in both directions.
const DefaultMaxDepth = 2048

// ErrMaxDepth is returned when a value nests deeper than the configured
// limit.
var ErrMaxDepth = errors.New("yamlcodec: max depth exceeded")

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

// Marshal serializes a shape to YAML with default options.
func Marshal(v serde.SerializableShape) ([]byte, error) {
	return MarshalWith(v, Options{})
}

// MarshalWith serializes a shape to YAML.
func MarshalWith(v serde.SerializableShape, opt Options) ([]byte, error) {
	s := NewSerializer(opt)
	if err := serde.Serialize(v, s); err != nil {
		return nil, err
	}
	return yaml.Marshal(s.Root())
}

// Unmarshal deserializes YAML into the builder and builds the shape with
// default validation.
func Unmarshal[T any](data []byte, schema *smithy.Schema, b serde.ShapeBuilder[T]) (T, error) {
	return UnmarshalWith(data, schema, b, Options{})
}

// UnmarshalWith deserializes YAML into the builder and builds the shape.
func UnmarshalWith[T any](data []byte, schema *smithy.Schema, b serde.ShapeBuilder[T], opt Options) (T, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		var zero T
		return zero, err
	}
	d, err := NewDeserializer(&doc, opt)
	if err != nil {
		var zero T
		return zero, err
	}
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

func memberKey(member *smithy.Schema) string {
	if t, ok := smithy.GetTrait[traits.JSONName](member); ok {
		return t.Name
	}
	return member.MemberName()
}

func timestampFormat(schema *smithy.Schema) string {
	if t, ok := smithy.GetTrait[traits.TimestampFormat](schema); ok {
		return t.Format
	}
	return traits.TimestampDateTime
}
