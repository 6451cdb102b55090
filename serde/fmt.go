package serde

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
	"time"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/document"
	"github.com/mellemahp/smithy4go/traits"
)

const redacted = "*REDACTED*"

// FormatShape renders a shape as a human-readable one-liner of the form
// Name[member=value, ...]. Values carrying the sensitive trait, directly
// or through their member, are replaced with *REDACTED*.
func FormatShape(v SerializableShape) string {
	var sb strings.Builder
	s := &fmtSerializer{sb: &sb}
	if err := Serialize(v, s); err != nil {
		return fmt.Sprintf("<format error: %v>", err)
	}
	return sb.String()
}

type fmtSerializer struct {
	sb *strings.Builder
}

func sensitive(schema *smithy.Schema) bool {
	return schema.ContainsTrait(traits.Sensitive{}.TraitID())
}

func (f *fmtSerializer) scalar(schema *smithy.Schema, render string) error {
	if sensitive(schema) {
		f.sb.WriteString(redacted)
	} else {
		f.sb.WriteString(render)
	}
	return nil
}

func (f *fmtSerializer) WriteStruct(schema *smithy.Schema, size int) (StructSerializer, error) {
	name := schema.ID().Name
	if schema.Type() == smithy.ShapeTypeMember {
		name = schema.MemberTarget().ID().Name
	}
	f.sb.WriteString(name)
	f.sb.WriteByte('[')
	return &fmtStructSerializer{f: f}, nil
}

func (f *fmtSerializer) WriteList(schema *smithy.Schema, size int) (ListSerializer, error) {
	f.sb.WriteByte('[')
	return &fmtListSerializer{f: f}, nil
}

func (f *fmtSerializer) WriteMap(schema *smithy.Schema, size int) (MapSerializer, error) {
	f.sb.WriteByte('{')
	return &fmtMapSerializer{f: f}, nil
}

func (f *fmtSerializer) WriteBoolean(schema *smithy.Schema, v bool) error {
	return f.scalar(schema, fmt.Sprintf("%t", v))
}

func (f *fmtSerializer) WriteByte(schema *smithy.Schema, v int8) error {
	return f.scalar(schema, fmt.Sprintf("%d", v))
}

func (f *fmtSerializer) WriteShort(schema *smithy.Schema, v int16) error {
	return f.scalar(schema, fmt.Sprintf("%d", v))
}

func (f *fmtSerializer) WriteInteger(schema *smithy.Schema, v int32) error {
	return f.scalar(schema, fmt.Sprintf("%d", v))
}

func (f *fmtSerializer) WriteLong(schema *smithy.Schema, v int64) error {
	return f.scalar(schema, fmt.Sprintf("%d", v))
}

func (f *fmtSerializer) WriteFloat(schema *smithy.Schema, v float32) error {
	return f.scalar(schema, fmt.Sprintf("%g", v))
}

func (f *fmtSerializer) WriteDouble(schema *smithy.Schema, v float64) error {
	return f.scalar(schema, fmt.Sprintf("%g", v))
}

func (f *fmtSerializer) WriteBigInteger(schema *smithy.Schema, v *big.Int) error {
	return f.scalar(schema, v.String())
}

func (f *fmtSerializer) WriteBigDecimal(schema *smithy.Schema, v *big.Rat) error {
	return f.scalar(schema, v.RatString())
}

func (f *fmtSerializer) WriteString(schema *smithy.Schema, v string) error {
	return f.scalar(schema, v)
}

func (f *fmtSerializer) WriteBlob(schema *smithy.Schema, v []byte) error {
	return f.scalar(schema, base64.StdEncoding.EncodeToString(v))
}

func (f *fmtSerializer) WriteTimestamp(schema *smithy.Schema, v time.Time) error {
	return f.scalar(schema, v.UTC().Format(time.RFC3339))
}

func (f *fmtSerializer) WriteDocument(schema *smithy.Schema, v document.Value) error {
	return f.scalar(schema, fmt.Sprintf("%v", v))
}

func (f *fmtSerializer) WriteNull(schema *smithy.Schema) error {
	f.sb.WriteString("null")
	return nil
}

func (f *fmtSerializer) Skip(schema *smithy.Schema) error { return nil }

type fmtStructSerializer struct {
	f *fmtSerializer
	n int
}

func (s *fmtStructSerializer) SerializeMember(member *smithy.Schema, v Serializable) error {
	if s.n > 0 {
		s.f.sb.WriteString(", ")
	}
	s.n++
	s.f.sb.WriteString(member.MemberName())
	s.f.sb.WriteByte('=')
	if sensitive(member) {
		s.f.sb.WriteString(redacted)
		return nil
	}
	return v.SerializeWithSchema(member, s.f)
}

func (s *fmtStructSerializer) SerializeOptionalMember(member *smithy.Schema, v Serializable) error {
	if v == nil {
		return nil
	}
	return s.SerializeMember(member, v)
}

func (s *fmtStructSerializer) End(schema *smithy.Schema) error {
	s.f.sb.WriteByte(']')
	return nil
}

type fmtListSerializer struct {
	f *fmtSerializer
	n int
}

func (s *fmtListSerializer) SerializeElement(member *smithy.Schema, v Serializable) error {
	if s.n > 0 {
		s.f.sb.WriteString(", ")
	}
	s.n++
	return v.SerializeWithSchema(member, s.f)
}

func (s *fmtListSerializer) End(schema *smithy.Schema) error {
	s.f.sb.WriteByte(']')
	return nil
}

type fmtMapSerializer struct {
	f *fmtSerializer
	n int
}

func (s *fmtMapSerializer) SerializeEntry(keySchema, valueSchema *smithy.Schema, key string, v Serializable) error {
	if s.n > 0 {
		s.f.sb.WriteString(", ")
	}
	s.n++
	if sensitive(keySchema) {
		s.f.sb.WriteString(redacted)
	} else {
		s.f.sb.WriteString(key)
	}
	s.f.sb.WriteByte('=')
	return v.SerializeWithSchema(valueSchema, s.f)
}

func (s *fmtMapSerializer) End(schema *smithy.Schema) error {
	s.f.sb.WriteByte('}')
	return nil
}
