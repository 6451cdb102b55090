// Package document provides the untyped dynamic value used for trait data
// and document-typed shapes. A Value is schema-free; codecs decide how to
// render it on the wire.
package document

import (
	"math/big"
	"sort"
	"time"
)

// Value is the sum of all dynamic value kinds. Implementations are the
// concrete types in this package; user code switches on them or uses the
// As* helpers.
type Value interface {
	isValue()
}

type (
	// Null is the absent/null value.
	Null struct{}
	// Bool wraps a boolean value.
	Bool bool
	// Integer wraps any integral value up to 64 bits.
	Integer int64
	// Float wraps a floating point value.
	Float float64
	// String wraps a text value.
	String string
	// Blob wraps opaque bytes.
	Blob []byte
	// Timestamp wraps a point in time.
	Timestamp time.Time
	// List is an ordered sequence of values.
	List []Value
	// Map is a keyed collection of values.
	Map map[string]Value
)

// BigInteger wraps an arbitrary-precision integer.
type BigInteger struct{ Value *big.Int }

// BigDecimal wraps an arbitrary-precision decimal.
type BigDecimal struct{ Value *big.Rat }

func (Null) isValue()       {}
func (Bool) isValue()       {}
func (Integer) isValue()    {}
func (Float) isValue()      {}
func (String) isValue()     {}
func (Blob) isValue()       {}
func (Timestamp) isValue()  {}
func (List) isValue()       {}
func (Map) isValue()        {}
func (BigInteger) isValue() {}
func (BigDecimal) isValue() {}

// SortedKeys returns the map's keys in ascending order, for deterministic
// traversal.
func (m Map) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsString returns the string payload if v is a String.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsInteger returns the integral payload if v is an Integer.
func AsInteger(v Value) (int64, bool) {
	i, ok := v.(Integer)
	return int64(i), ok
}

// AsFloat returns the floating point payload if v is a Float or Integer.
func AsFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Float:
		return float64(t), true
	case Integer:
		return float64(t), true
	}
	return 0, false
}

// AsBool returns the boolean payload if v is a Bool.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// IsNull reports whether v is Null or a nil interface.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}
