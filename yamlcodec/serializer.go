package yamlcodec

import (
	"encoding/base64"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/document"
	"github.com/mellemahp/smithy4go/serde"
	"github.com/mellemahp/smithy4go/traits"
)

// Serializer assembles a yaml.Node tree. It implements serde.Serializer.
type Serializer struct {
	root     *yaml.Node
	stack    []*yaml.Node
	maxDepth int
}

// NewSerializer returns an empty serializer.
func NewSerializer(opt Options) *Serializer {
	return &Serializer{maxDepth: opt.maxDepth()}
}

// Root returns the assembled tree. It is nil until a value has been
// written.
func (s *Serializer) Root() *yaml.Node { return s.root }

// emit attaches n to the innermost open container, or makes it the root.
func (s *Serializer) emit(n *yaml.Node) {
	if len(s.stack) == 0 {
		s.root = n
		return
	}
	top := s.stack[len(s.stack)-1]
	top.Content = append(top.Content, n)
}

func (s *Serializer) push(n *yaml.Node) error {
	if len(s.stack) >= s.maxDepth {
		return ErrMaxDepth
	}
	s.emit(n)
	s.stack = append(s.stack, n)
	return nil
}

func (s *Serializer) pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func stringNode(v string) *yaml.Node {
	n := scalarNode("!!str", v)
	// Keep strings that look like other scalar types from being
	// re-resolved on decode.
	n.Style = yaml.DoubleQuotedStyle
	return n
}

// keyNode renders mapping keys plain. Lookup on decode goes by node value,
// not resolved tag, so plain style is safe and reads better.
func keyNode(v string) *yaml.Node {
	return scalarNode("!!str", v)
}

func (s *Serializer) WriteStruct(schema *smithy.Schema, size int) (serde.StructSerializer, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if err := s.push(n); err != nil {
		return nil, err
	}
	return &structSerializer{s: s}, nil
}

func (s *Serializer) WriteList(schema *smithy.Schema, size int) (serde.ListSerializer, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if err := s.push(n); err != nil {
		return nil, err
	}
	return &listSerializer{s: s}, nil
}

func (s *Serializer) WriteMap(schema *smithy.Schema, size int) (serde.MapSerializer, error) {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if err := s.push(n); err != nil {
		return nil, err
	}
	return &mapSerializer{s: s}, nil
}

func (s *Serializer) WriteBoolean(schema *smithy.Schema, v bool) error {
	s.emit(scalarNode("!!bool", strconv.FormatBool(v)))
	return nil
}

func (s *Serializer) WriteByte(schema *smithy.Schema, v int8) error {
	s.emit(scalarNode("!!int", strconv.FormatInt(int64(v), 10)))
	return nil
}

func (s *Serializer) WriteShort(schema *smithy.Schema, v int16) error {
	s.emit(scalarNode("!!int", strconv.FormatInt(int64(v), 10)))
	return nil
}

func (s *Serializer) WriteInteger(schema *smithy.Schema, v int32) error {
	s.emit(scalarNode("!!int", strconv.FormatInt(int64(v), 10)))
	return nil
}

func (s *Serializer) WriteLong(schema *smithy.Schema, v int64) error {
	s.emit(scalarNode("!!int", strconv.FormatInt(v, 10)))
	return nil
}

func (s *Serializer) WriteFloat(schema *smithy.Schema, v float32) error {
	s.emit(floatNode(float64(v), 32))
	return nil
}

func (s *Serializer) WriteDouble(schema *smithy.Schema, v float64) error {
	s.emit(floatNode(v, 64))
	return nil
}

func floatNode(v float64, bits int) *yaml.Node {
	switch {
	case math.IsNaN(v):
		return scalarNode("!!float", ".nan")
	case math.IsInf(v, 1):
		return scalarNode("!!float", ".inf")
	case math.IsInf(v, -1):
		return scalarNode("!!float", "-.inf")
	}
	return scalarNode("!!float", strconv.FormatFloat(v, 'g', -1, bits))
}

func (s *Serializer) WriteBigInteger(schema *smithy.Schema, v *big.Int) error {
	s.emit(scalarNode("!!int", v.String()))
	return nil
}

func (s *Serializer) WriteBigDecimal(schema *smithy.Schema, v *big.Rat) error {
	if v.IsInt() {
		s.emit(scalarNode("!!int", v.Num().String()))
		return nil
	}
	s.emit(scalarNode("!!float", v.FloatString(bigDecimalScale)))
	return nil
}

const bigDecimalScale = 34

func (s *Serializer) WriteString(schema *smithy.Schema, v string) error {
	s.emit(stringNode(v))
	return nil
}

func (s *Serializer) WriteBlob(schema *smithy.Schema, v []byte) error {
	s.emit(scalarNode("!!binary", base64.StdEncoding.EncodeToString(v)))
	return nil
}

func (s *Serializer) WriteTimestamp(schema *smithy.Schema, v time.Time) error {
	switch timestampFormat(schema) {
	case traits.TimestampEpochSeconds:
		sec := float64(v.UnixNano()) / float64(time.Second)
		s.emit(scalarNode("!!float", strconv.FormatFloat(sec, 'g', -1, 64)))
	case traits.TimestampHTTPDate:
		s.emit(stringNode(v.UTC().Format(http1DateLayout)))
	default:
		s.emit(stringNode(v.UTC().Format(time.RFC3339Nano)))
	}
	return nil
}

const http1DateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

func (s *Serializer) WriteDocument(schema *smithy.Schema, v document.Value) error {
	n, err := documentNode(v, 0, s.maxDepth)
	if err != nil {
		return err
	}
	s.emit(n)
	return nil
}

func documentNode(v document.Value, depth, maxDepth int) (*yaml.Node, error) {
	if depth >= maxDepth {
		return nil, ErrMaxDepth
	}
	switch dv := v.(type) {
	case nil, document.Null:
		return scalarNode("!!null", "null"), nil
	case document.Bool:
		return scalarNode("!!bool", strconv.FormatBool(bool(dv))), nil
	case document.Integer:
		return scalarNode("!!int", strconv.FormatInt(int64(dv), 10)), nil
	case document.Float:
		return floatNode(float64(dv), 64), nil
	case document.String:
		return stringNode(string(dv)), nil
	case document.Blob:
		return scalarNode("!!binary", base64.StdEncoding.EncodeToString(dv)), nil
	case document.Timestamp:
		return stringNode(time.Time(dv).UTC().Format(time.RFC3339Nano)), nil
	case document.BigInteger:
		return scalarNode("!!int", dv.Value.String()), nil
	case document.BigDecimal:
		if dv.Value.IsInt() {
			return scalarNode("!!int", dv.Value.Num().String()), nil
		}
		return scalarNode("!!float", dv.Value.FloatString(bigDecimalScale)), nil
	case document.List:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range dv {
			child, err := documentNode(el, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	case document.Map:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range dv.SortedKeys() {
			child, err := documentNode(dv[k], depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, stringNode(k), child)
		}
		return n, nil
	}
	return nil, fmt.Errorf("yamlcodec: unsupported document value %T", v)
}

func (s *Serializer) WriteNull(schema *smithy.Schema) error {
	s.emit(scalarNode("!!null", "null"))
	return nil
}

func (s *Serializer) Skip(schema *smithy.Schema) error { return nil }

type structSerializer struct{ s *Serializer }

func (st *structSerializer) SerializeMember(member *smithy.Schema, v serde.Serializable) error {
	st.s.emit(keyNode(memberKey(member)))
	return v.SerializeWithSchema(member, st.s)
}

func (st *structSerializer) SerializeOptionalMember(member *smithy.Schema, v serde.Serializable) error {
	if v == nil {
		return nil
	}
	return st.SerializeMember(member, v)
}

func (st *structSerializer) End(schema *smithy.Schema) error {
	st.s.pop()
	return nil
}

type listSerializer struct{ s *Serializer }

func (ls *listSerializer) SerializeElement(member *smithy.Schema, v serde.Serializable) error {
	return v.SerializeWithSchema(member, ls.s)
}

func (ls *listSerializer) End(schema *smithy.Schema) error {
	ls.s.pop()
	return nil
}

type mapSerializer struct{ s *Serializer }

func (ms *mapSerializer) SerializeEntry(keySchema, valueSchema *smithy.Schema, key string, v serde.Serializable) error {
	ms.s.emit(keyNode(key))
	return v.SerializeWithSchema(valueSchema, ms.s)
}

func (ms *mapSerializer) End(schema *smithy.Schema) error {
	ms.s.pop()
	return nil
}
