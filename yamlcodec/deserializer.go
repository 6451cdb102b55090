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

// Deserializer walks a decoded yaml.Node tree. It implements
// serde.Deserializer. The current node advances as aggregate callbacks
// descend into children.
type Deserializer struct {
	cur      *yaml.Node
	depth    int
	maxDepth int
}

// NewDeserializer returns a deserializer positioned at the document's
// root value.
func NewDeserializer(node *yaml.Node, opt Options) (*Deserializer, error) {
	n, err := resolve(node)
	if err != nil {
		return nil, err
	}
	return &Deserializer{cur: n, maxDepth: opt.maxDepth()}, nil
}

// resolve unwraps document wrappers and alias indirection.
func resolve(n *yaml.Node) (*yaml.Node, error) {
	seen := 0
	for {
		switch {
		case n == nil:
			return nil, fmt.Errorf("yamlcodec: empty document")
		case n.Kind == yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil, fmt.Errorf("yamlcodec: empty document")
			}
			n = n.Content[0]
		case n.Kind == yaml.AliasNode:
			seen++
			if seen > 64 {
				return nil, fmt.Errorf("yamlcodec: alias chain too long")
			}
			n = n.Alias
		default:
			return n, nil
		}
	}
}

func (d *Deserializer) enter() error {
	d.depth++
	if d.depth > d.maxDepth {
		return ErrMaxDepth
	}
	return nil
}

func (d *Deserializer) leave() { d.depth-- }

// at runs fn with the current node swapped to child.
func (d *Deserializer) at(child *yaml.Node, fn func() error) error {
	resolved, err := resolve(child)
	if err != nil {
		return err
	}
	prev := d.cur
	d.cur = resolved
	err = fn()
	d.cur = prev
	return err
}

func (d *Deserializer) expectKind(kind yaml.Kind, what string) error {
	if d.cur.Kind != kind {
		return fmt.Errorf("yamlcodec: expected %s, got %s node", what, kindName(d.cur.Kind))
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.DocumentNode:
		return "document"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}

func (d *Deserializer) ReadStruct(schema *smithy.Schema, fn func(member *smithy.Schema, dd serde.Deserializer) error) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	if err := d.expectKind(yaml.MappingNode, "mapping"); err != nil {
		return err
	}
	members := structMembers(schema)
	byKey := make(map[string]*smithy.Schema, len(members))
	for _, m := range members {
		byKey[memberKey(m)] = m
	}
	content := d.cur.Content
	for i := 0; i+1 < len(content); i += 2 {
		member, ok := byKey[content[i].Value]
		if !ok {
			continue
		}
		if err := d.at(content[i+1], func() error { return fn(member, d) }); err != nil {
			return err
		}
	}
	return nil
}

func (d *Deserializer) ReadList(schema *smithy.Schema, fn func(dd serde.Deserializer) error) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	if err := d.expectKind(yaml.SequenceNode, "sequence"); err != nil {
		return err
	}
	for _, el := range d.cur.Content {
		if err := d.at(el, func() error { return fn(d) }); err != nil {
			return err
		}
	}
	return nil
}

func (d *Deserializer) ReadMap(schema *smithy.Schema, fn func(key string, dd serde.Deserializer) error) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	if err := d.expectKind(yaml.MappingNode, "mapping"); err != nil {
		return err
	}
	content := d.cur.Content
	for i := 0; i+1 < len(content); i += 2 {
		key := content[i].Value
		if err := d.at(content[i+1], func() error { return fn(key, d) }); err != nil {
			return err
		}
	}
	return nil
}

func (d *Deserializer) scalarValue(what string) (string, error) {
	if err := d.expectKind(yaml.ScalarNode, what); err != nil {
		return "", err
	}
	return d.cur.Value, nil
}

func (d *Deserializer) readInt(bits int) (int64, error) {
	v, err := d.scalarValue("integer")
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(v, 10, bits)
}

func (d *Deserializer) ReadBoolean(schema *smithy.Schema) (bool, error) {
	v, err := d.scalarValue("boolean")
	if err != nil {
		return false, err
	}
	return strconv.ParseBool(v)
}

func (d *Deserializer) ReadByte(schema *smithy.Schema) (int8, error) {
	v, err := d.readInt(8)
	return int8(v), err
}

func (d *Deserializer) ReadShort(schema *smithy.Schema) (int16, error) {
	v, err := d.readInt(16)
	return int16(v), err
}

func (d *Deserializer) ReadInteger(schema *smithy.Schema) (int32, error) {
	v, err := d.readInt(32)
	return int32(v), err
}

func (d *Deserializer) ReadLong(schema *smithy.Schema) (int64, error) {
	return d.readInt(64)
}

func (d *Deserializer) ReadFloat(schema *smithy.Schema) (float32, error) {
	v, err := d.readFloat()
	return float32(v), err
}

func (d *Deserializer) ReadDouble(schema *smithy.Schema) (float64, error) {
	return d.readFloat()
}

func (d *Deserializer) readFloat() (float64, error) {
	v, err := d.scalarValue("float")
	if err != nil {
		return 0, err
	}
	return parseYAMLFloat(v)
}

func parseYAMLFloat(v string) (float64, error) {
	switch v {
	case ".nan", ".NaN", ".NAN", "NaN":
		return math.NaN(), nil
	case ".inf", ".Inf", "+.inf", "Infinity":
		return math.Inf(1), nil
	case "-.inf", "-.Inf", "-Infinity":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(v, 64)
}

func (d *Deserializer) ReadBigInteger(schema *smithy.Schema) (*big.Int, error) {
	v, err := d.scalarValue("integer")
	if err != nil {
		return nil, err
	}
	i, ok := new(big.Int).SetString(v, 10)
	if !ok {
		return nil, fmt.Errorf("yamlcodec: invalid big integer %q", v)
	}
	return i, nil
}

func (d *Deserializer) ReadBigDecimal(schema *smithy.Schema) (*big.Rat, error) {
	v, err := d.scalarValue("decimal")
	if err != nil {
		return nil, err
	}
	r, ok := new(big.Rat).SetString(v)
	if !ok {
		return nil, fmt.Errorf("yamlcodec: invalid big decimal %q", v)
	}
	return r, nil
}

func (d *Deserializer) ReadString(schema *smithy.Schema) (string, error) {
	return d.scalarValue("string")
}

func (d *Deserializer) ReadBlob(schema *smithy.Schema) ([]byte, error) {
	v, err := d.scalarValue("binary")
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(v)
}

func (d *Deserializer) ReadTimestamp(schema *smithy.Schema) (time.Time, error) {
	switch timestampFormat(schema) {
	case traits.TimestampEpochSeconds:
		sec, err := d.readFloat()
		if err != nil {
			return time.Time{}, err
		}
		return time.Unix(0, int64(sec*float64(time.Second))).UTC(), nil
	case traits.TimestampHTTPDate:
		v, err := d.scalarValue("timestamp")
		if err != nil {
			return time.Time{}, err
		}
		return time.Parse(http1DateLayout, v)
	default:
		v, err := d.scalarValue("timestamp")
		if err != nil {
			return time.Time{}, err
		}
		return time.Parse(time.RFC3339Nano, v)
	}
}

func (d *Deserializer) ReadDocument(schema *smithy.Schema) (document.Value, error) {
	return nodeDocument(d.cur, 0, d.maxDepth)
}

func nodeDocument(n *yaml.Node, depth, maxDepth int) (document.Value, error) {
	if depth >= maxDepth {
		return nil, ErrMaxDepth
	}
	n, err := resolve(n)
	if err != nil {
		return nil, err
	}
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return document.Null{}, nil
		case "!!bool":
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return nil, err
			}
			return document.Bool(b), nil
		case "!!int":
			i, err := strconv.ParseInt(n.Value, 10, 64)
			if err != nil {
				return nil, err
			}
			return document.Integer(i), nil
		case "!!float":
			f, err := parseYAMLFloat(n.Value)
			if err != nil {
				return nil, err
			}
			return document.Float(f), nil
		case "!!binary":
			b, err := base64.StdEncoding.DecodeString(n.Value)
			if err != nil {
				return nil, err
			}
			return document.Blob(b), nil
		default:
			return document.String(n.Value), nil
		}
	case yaml.SequenceNode:
		list := make(document.List, 0, len(n.Content))
		for _, el := range n.Content {
			v, err := nodeDocument(el, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.MappingNode:
		m := make(document.Map, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeDocument(n.Content[i+1], depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			m[n.Content[i].Value] = v
		}
		return m, nil
	}
	return nil, fmt.Errorf("yamlcodec: unexpected %s node", kindName(n.Kind))
}

// IsNull reports whether the current value is an explicit null.
func (d *Deserializer) IsNull() bool {
	return d.cur.Kind == yaml.ScalarNode && d.cur.Tag == "!!null"
}

func (d *Deserializer) ReadNull() error {
	if !d.IsNull() {
		return fmt.Errorf("yamlcodec: expected null, got %q", d.cur.Value)
	}
	return nil
}

// Skip discards the current value. The tree walk makes this a no-op.
func (d *Deserializer) Skip() error { return nil }
