package jsoncodec

import (
	"encoding/base64"
	"fmt"
	"io"
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

// Deserializer pulls shapes out of a JSON token stream. It implements
// serde.Deserializer.
type Deserializer struct {
	dec      *json.Decoder
	peeked   json.Token
	peekErr  error
	hasPeek  bool
	depth    int
	maxDepth int
}

// NewDeserializer returns a deserializer reading from r.
func NewDeserializer(r io.Reader, opt Options) *Deserializer {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Deserializer{dec: dec, maxDepth: opt.maxDepth()}
}

func (d *Deserializer) peek() (json.Token, error) {
	if !d.hasPeek {
		d.peeked, d.peekErr = d.dec.Token()
		d.hasPeek = true
	}
	return d.peeked, d.peekErr
}

func (d *Deserializer) next() (json.Token, error) {
	if d.hasPeek {
		d.hasPeek = false
		return d.peeked, d.peekErr
	}
	return d.dec.Token()
}

func (d *Deserializer) enter() error {
	d.depth++
	if d.depth > d.maxDepth {
		return ErrMaxDepth
	}
	return nil
}

func (d *Deserializer) leave() { d.depth-- }

func (d *Deserializer) expectDelim(want rune) error {
	tok, err := d.next()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || rune(delim) != want {
		return fmt.Errorf("jsoncodec: expected %q, got %v", want, tok)
	}
	return nil
}

func (d *Deserializer) ReadStruct(schema *smithy.Schema, fn func(member *smithy.Schema, dd serde.Deserializer) error) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	if err := d.expectDelim('{'); err != nil {
		return err
	}
	members := structMembers(schema)
	byKey := make(map[string]*smithy.Schema, len(members))
	for _, m := range members {
		byKey[memberKey(m)] = m
	}
	for d.dec.More() {
		tok, err := d.next()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("jsoncodec: expected object key, got %v", tok)
		}
		member, ok := byKey[key]
		if !ok {
			if err := d.Skip(); err != nil {
				return err
			}
			continue
		}
		if err := fn(member, d); err != nil {
			return err
		}
	}
	return d.expectDelim('}')
}

func (d *Deserializer) ReadList(schema *smithy.Schema, fn func(dd serde.Deserializer) error) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	if err := d.expectDelim('['); err != nil {
		return err
	}
	for d.dec.More() {
		if err := fn(d); err != nil {
			return err
		}
	}
	return d.expectDelim(']')
}

func (d *Deserializer) ReadMap(schema *smithy.Schema, fn func(key string, dd serde.Deserializer) error) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	if err := d.expectDelim('{'); err != nil {
		return err
	}
	for d.dec.More() {
		tok, err := d.next()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("jsoncodec: expected object key, got %v", tok)
		}
		if err := fn(key, d); err != nil {
			return err
		}
	}
	return d.expectDelim('}')
}

func (d *Deserializer) readNumber() (json.Number, error) {
	tok, err := d.next()
	if err != nil {
		return "", err
	}
	num, ok := tok.(json.Number)
	if !ok {
		return "", fmt.Errorf("jsoncodec: expected number, got %v", tok)
	}
	return num, nil
}

func (d *Deserializer) readInt(bits int) (int64, error) {
	num, err := d.readNumber()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(num.String(), 10, bits)
}

func (d *Deserializer) ReadBoolean(schema *smithy.Schema) (bool, error) {
	tok, err := d.next()
	if err != nil {
		return false, err
	}
	b, ok := tok.(bool)
	if !ok {
		return false, fmt.Errorf("jsoncodec: expected boolean, got %v", tok)
	}
	return b, nil
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

// readFloat accepts numbers plus the string spellings of the non-finite
// values.
func (d *Deserializer) readFloat() (float64, error) {
	tok, err := d.next()
	if err != nil {
		return 0, err
	}
	switch t := tok.(type) {
	case json.Number:
		return strconv.ParseFloat(t.String(), 64)
	case string:
		switch t {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
	}
	return 0, fmt.Errorf("jsoncodec: expected number, got %v", tok)
}

func (d *Deserializer) ReadBigInteger(schema *smithy.Schema) (*big.Int, error) {
	num, err := d.readNumber()
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(num.String(), 10)
	if !ok {
		return nil, fmt.Errorf("jsoncodec: invalid big integer %q", num)
	}
	return v, nil
}

func (d *Deserializer) ReadBigDecimal(schema *smithy.Schema) (*big.Rat, error) {
	num, err := d.readNumber()
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Rat).SetString(num.String())
	if !ok {
		return nil, fmt.Errorf("jsoncodec: invalid big decimal %q", num)
	}
	return v, nil
}

func (d *Deserializer) readString() (string, error) {
	tok, err := d.next()
	if err != nil {
		return "", err
	}
	str, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("jsoncodec: expected string, got %v", tok)
	}
	return str, nil
}

func (d *Deserializer) ReadString(schema *smithy.Schema) (string, error) {
	return d.readString()
}

func (d *Deserializer) ReadBlob(schema *smithy.Schema) ([]byte, error) {
	str, err := d.readString()
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(str)
}

func (d *Deserializer) ReadTimestamp(schema *smithy.Schema) (time.Time, error) {
	switch timestampFormat(schema) {
	case traits.TimestampEpochSeconds:
		sec, err := d.readFloat()
		if err != nil {
			return time.Time{}, err
		}
		nanos := int64(sec * float64(time.Second))
		return time.Unix(0, nanos).UTC(), nil
	case traits.TimestampHTTPDate:
		str, err := d.readString()
		if err != nil {
			return time.Time{}, err
		}
		return time.Parse(http1DateLayout, str)
	default:
		str, err := d.readString()
		if err != nil {
			return time.Time{}, err
		}
		return time.Parse(time.RFC3339Nano, str)
	}
}

func (d *Deserializer) ReadDocument(schema *smithy.Schema) (document.Value, error) {
	return d.readDocument()
}

func (d *Deserializer) readDocument() (document.Value, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()
	tok, err := d.peek()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case nil:
		d.hasPeek = false
		return document.Null{}, nil
	case bool:
		d.hasPeek = false
		return document.Bool(t), nil
	case string:
		d.hasPeek = false
		return document.String(t), nil
	case json.Number:
		d.hasPeek = false
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return document.Integer(i), nil
		}
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return nil, err
		}
		return document.Float(f), nil
	case json.Delim:
		d.hasPeek = false
		switch rune(t) {
		case '[':
			list := document.List{}
			for d.dec.More() {
				el, err := d.readDocument()
				if err != nil {
					return nil, err
				}
				list = append(list, el)
			}
			if err := d.expectDelim(']'); err != nil {
				return nil, err
			}
			return list, nil
		case '{':
			m := document.Map{}
			for d.dec.More() {
				key, err := d.readString()
				if err != nil {
					return nil, err
				}
				val, err := d.readDocument()
				if err != nil {
					return nil, err
				}
				m[key] = val
			}
			if err := d.expectDelim('}'); err != nil {
				return nil, err
			}
			return m, nil
		}
	}
	return nil, fmt.Errorf("jsoncodec: unexpected token %v", tok)
}

// IsNull reports whether the next value is a JSON null without consuming
// it.
func (d *Deserializer) IsNull() bool {
	tok, err := d.peek()
	return err == nil && tok == nil
}

func (d *Deserializer) ReadNull() error {
	tok, err := d.next()
	if err != nil {
		return err
	}
	if tok != nil {
		return fmt.Errorf("jsoncodec: expected null, got %v", tok)
	}
	return nil
}

// Skip consumes and discards the next value, descending through nested
// aggregates.
func (d *Deserializer) Skip() error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	tok, err := d.next()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	switch rune(delim) {
	case '[':
		for d.dec.More() {
			if err := d.Skip(); err != nil {
				return err
			}
		}
		return d.expectDelim(']')
	case '{':
		for d.dec.More() {
			if _, err := d.readString(); err != nil {
				return err
			}
			if err := d.Skip(); err != nil {
				return err
			}
		}
		return d.expectDelim('}')
	}
	return fmt.Errorf("jsoncodec: unexpected delimiter %v", delim)
}
