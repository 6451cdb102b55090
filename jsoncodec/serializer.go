package jsoncodec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/document"
	"github.com/mellemahp/smithy4go/serde"
	"github.com/mellemahp/smithy4go/traits"
)

// Serializer writes shapes as JSON into a buffer. It implements
// serde.Serializer.
type Serializer struct {
	buf      *bytes.Buffer
	depth    int
	maxDepth int
}

// NewSerializer returns a serializer writing into buf.
func NewSerializer(buf *bytes.Buffer, opt Options) *Serializer {
	return &Serializer{buf: buf, maxDepth: opt.maxDepth()}
}

func (s *Serializer) enter() error {
	s.depth++
	if s.depth > s.maxDepth {
		return ErrMaxDepth
	}
	return nil
}

func (s *Serializer) leave() { s.depth-- }

func (s *Serializer) writeKey(name string) error {
	if err := s.writeString(name); err != nil {
		return err
	}
	s.buf.WriteByte(':')
	return nil
}

func (s *Serializer) writeString(v string) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.buf.Write(b)
	return nil
}

func (s *Serializer) WriteStruct(schema *smithy.Schema, size int) (serde.StructSerializer, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	s.buf.WriteByte('{')
	return &structSerializer{s: s}, nil
}

func (s *Serializer) WriteList(schema *smithy.Schema, size int) (serde.ListSerializer, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	s.buf.WriteByte('[')
	return &listSerializer{s: s}, nil
}

func (s *Serializer) WriteMap(schema *smithy.Schema, size int) (serde.MapSerializer, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	s.buf.WriteByte('{')
	return &mapSerializer{s: s}, nil
}

func (s *Serializer) WriteBoolean(schema *smithy.Schema, v bool) error {
	s.buf.WriteString(strconv.FormatBool(v))
	return nil
}

func (s *Serializer) WriteByte(schema *smithy.Schema, v int8) error {
	s.buf.WriteString(strconv.FormatInt(int64(v), 10))
	return nil
}

func (s *Serializer) WriteShort(schema *smithy.Schema, v int16) error {
	s.buf.WriteString(strconv.FormatInt(int64(v), 10))
	return nil
}

func (s *Serializer) WriteInteger(schema *smithy.Schema, v int32) error {
	s.buf.WriteString(strconv.FormatInt(int64(v), 10))
	return nil
}

func (s *Serializer) WriteLong(schema *smithy.Schema, v int64) error {
	s.buf.WriteString(strconv.FormatInt(v, 10))
	return nil
}

func (s *Serializer) WriteFloat(schema *smithy.Schema, v float32) error {
	return s.writeFloat(float64(v), 32)
}

func (s *Serializer) WriteDouble(schema *smithy.Schema, v float64) error {
	return s.writeFloat(v, 64)
}

// writeFloat renders non-finite values as strings, matching the Smithy
// JSON convention for NaN and the infinities.
func (s *Serializer) writeFloat(v float64, bits int) error {
	switch {
	case math.IsNaN(v):
		s.buf.WriteString(`"NaN"`)
	case math.IsInf(v, 1):
		s.buf.WriteString(`"Infinity"`)
	case math.IsInf(v, -1):
		s.buf.WriteString(`"-Infinity"`)
	default:
		s.buf.WriteString(strconv.FormatFloat(v, 'g', -1, bits))
	}
	return nil
}

func (s *Serializer) WriteBigInteger(schema *smithy.Schema, v *big.Int) error {
	s.buf.WriteString(v.String())
	return nil
}

func (s *Serializer) WriteBigDecimal(schema *smithy.Schema, v *big.Rat) error {
	if v.IsInt() {
		s.buf.WriteString(v.Num().String())
		return nil
	}
	s.buf.WriteString(v.FloatString(bigDecimalScale))
	return nil
}

// bigDecimalScale bounds the rendered fraction digits for values whose
// decimal expansion does not terminate.
const bigDecimalScale = 34

func (s *Serializer) WriteString(schema *smithy.Schema, v string) error {
	return s.writeString(v)
}

func (s *Serializer) WriteBlob(schema *smithy.Schema, v []byte) error {
	return s.writeString(base64.StdEncoding.EncodeToString(v))
}

func (s *Serializer) WriteTimestamp(schema *smithy.Schema, v time.Time) error {
	switch timestampFormat(schema) {
	case traits.TimestampEpochSeconds:
		sec := float64(v.UnixNano()) / float64(time.Second)
		s.buf.WriteString(strconv.FormatFloat(sec, 'g', -1, 64))
		return nil
	case traits.TimestampHTTPDate:
		return s.writeString(v.UTC().Format(http1DateLayout))
	default:
		return s.writeString(v.UTC().Format(time.RFC3339Nano))
	}
}

// http1DateLayout is the IMF-fixdate form required by the http-date
// timestamp format.
const http1DateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

func (s *Serializer) WriteDocument(schema *smithy.Schema, v document.Value) error {
	return s.writeDocument(v)
}

func (s *Serializer) writeDocument(v document.Value) error {
	if err := s.enter(); err != nil {
		return err
	}
	defer s.leave()
	switch dv := v.(type) {
	case nil, document.Null:
		s.buf.WriteString("null")
	case document.Bool:
		s.buf.WriteString(strconv.FormatBool(bool(dv)))
	case document.Integer:
		s.buf.WriteString(strconv.FormatInt(int64(dv), 10))
	case document.Float:
		return s.writeFloat(float64(dv), 64)
	case document.String:
		return s.writeString(string(dv))
	case document.Blob:
		return s.writeString(base64.StdEncoding.EncodeToString(dv))
	case document.Timestamp:
		return s.writeString(time.Time(dv).UTC().Format(time.RFC3339Nano))
	case document.BigInteger:
		s.buf.WriteString(dv.Value.String())
	case document.BigDecimal:
		if dv.Value.IsInt() {
			s.buf.WriteString(dv.Value.Num().String())
		} else {
			s.buf.WriteString(dv.Value.FloatString(bigDecimalScale))
		}
	case document.List:
		s.buf.WriteByte('[')
		for i, el := range dv {
			if i > 0 {
				s.buf.WriteByte(',')
			}
			if err := s.writeDocument(el); err != nil {
				return err
			}
		}
		s.buf.WriteByte(']')
	case document.Map:
		s.buf.WriteByte('{')
		for i, k := range dv.SortedKeys() {
			if i > 0 {
				s.buf.WriteByte(',')
			}
			if err := s.writeKey(k); err != nil {
				return err
			}
			if err := s.writeDocument(dv[k]); err != nil {
				return err
			}
		}
		s.buf.WriteByte('}')
	default:
		return fmt.Errorf("jsoncodec: unsupported document value %T", v)
	}
	return nil
}

func (s *Serializer) WriteNull(schema *smithy.Schema) error {
	s.buf.WriteString("null")
	return nil
}

func (s *Serializer) Skip(schema *smithy.Schema) error { return nil }

type structSerializer struct {
	s *Serializer
	n int
}

func (st *structSerializer) SerializeMember(member *smithy.Schema, v serde.Serializable) error {
	if st.n > 0 {
		st.s.buf.WriteByte(',')
	}
	st.n++
	if err := st.s.writeKey(memberKey(member)); err != nil {
		return err
	}
	return v.SerializeWithSchema(member, st.s)
}

func (st *structSerializer) SerializeOptionalMember(member *smithy.Schema, v serde.Serializable) error {
	if v == nil {
		return nil
	}
	return st.SerializeMember(member, v)
}

func (st *structSerializer) End(schema *smithy.Schema) error {
	st.s.buf.WriteByte('}')
	st.s.leave()
	return nil
}

type listSerializer struct {
	s *Serializer
	n int
}

func (ls *listSerializer) SerializeElement(member *smithy.Schema, v serde.Serializable) error {
	if ls.n > 0 {
		ls.s.buf.WriteByte(',')
	}
	ls.n++
	return v.SerializeWithSchema(member, ls.s)
}

func (ls *listSerializer) End(schema *smithy.Schema) error {
	ls.s.buf.WriteByte(']')
	ls.s.leave()
	return nil
}

type mapSerializer struct {
	s *Serializer
	n int
}

func (ms *mapSerializer) SerializeEntry(keySchema, valueSchema *smithy.Schema, key string, v serde.Serializable) error {
	if ms.n > 0 {
		ms.s.buf.WriteByte(',')
	}
	ms.n++
	if err := ms.s.writeKey(key); err != nil {
		return err
	}
	return v.SerializeWithSchema(valueSchema, ms.s)
}

func (ms *mapSerializer) End(schema *smithy.Schema) error {
	ms.s.buf.WriteByte('}')
	ms.s.leave()
	return nil
}
