// Package traits implements the built-in Smithy traits consumed by the
// runtime: constraint traits (required, length, pattern, range, uniqueItems),
// protocol hints (jsonName, timestampFormat), and behavioral markers
// (sensitive, sparse, default, error, httpError).
//
// All types are value types with value receivers so they can be retrieved
// through smithy4go.GetTrait, which calls TraitID on a zero value.
package traits

import (
	"fmt"
	"math/big"
	"regexp"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/document"
)

func apiID(name string) smithy.ShapeID {
	return smithy.ShapeID{Namespace: "smithy.api", Name: name}
}

// Required marks a structure member that must be present.
type Required struct{}

func (Required) TraitID() smithy.ShapeID    { return smithy.RequiredTraitID }
func (Required) TraitValue() document.Value { return document.Null{} }

// Sensitive marks a shape whose values must be redacted from display output.
type Sensitive struct{}

func (Sensitive) TraitID() smithy.ShapeID    { return apiID("sensitive") }
func (Sensitive) TraitValue() document.Value { return document.Null{} }

// Sparse marks a list or map that may hold null entries.
type Sparse struct{}

func (Sparse) TraitID() smithy.ShapeID    { return apiID("sparse") }
func (Sparse) TraitValue() document.Value { return document.Null{} }

// UniqueItems requires list elements to be distinct.
type UniqueItems struct{}

func (UniqueItems) TraitID() smithy.ShapeID    { return apiID("uniqueItems") }
func (UniqueItems) TraitValue() document.Value { return document.Null{} }

// Length bounds the size of a string (codepoints), blob (bytes), list, or
// map. Nil bounds are unbounded.
type Length struct {
	Min *int64
	Max *int64
}

// LengthBetween builds a Length with both bounds set.
func LengthBetween(min, max int64) Length { return Length{Min: &min, Max: &max} }

// LengthMin builds a Length with only a lower bound.
func LengthMin(min int64) Length { return Length{Min: &min} }

// LengthMax builds a Length with only an upper bound.
func LengthMax(max int64) Length { return Length{Max: &max} }

func (Length) TraitID() smithy.ShapeID { return apiID("length") }

func (l Length) TraitValue() document.Value {
	m := document.Map{}
	if l.Min != nil {
		m["min"] = document.Integer(*l.Min)
	}
	if l.Max != nil {
		m["max"] = document.Integer(*l.Max)
	}
	return m
}

// MinValue returns the lower bound, defaulting to 0.
func (l Length) MinValue() int64 {
	if l.Min == nil {
		return 0
	}
	return *l.Min
}

// MaxValue returns the upper bound, defaulting to the maximum int64.
func (l Length) MaxValue() int64 {
	if l.Max == nil {
		return int64(^uint64(0) >> 1)
	}
	return *l.Max
}

// Pattern constrains a string to match an anchored-or-found regular
// expression, per Smithy's find semantics.
type Pattern struct {
	Expr *regexp.Regexp
}

// NewPattern compiles the expression.
func NewPattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("traits: invalid @pattern %q: %w", expr, err)
	}
	return Pattern{Expr: re}, nil
}

// MustPattern is NewPattern for static schema definitions.
func MustPattern(expr string) Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (Pattern) TraitID() smithy.ShapeID { return apiID("pattern") }

func (p Pattern) TraitValue() document.Value {
	if p.Expr == nil {
		return document.String("")
	}
	return document.String(p.Expr.String())
}

// Matches reports whether s satisfies the pattern (find, not full match).
func (p Pattern) Matches(s string) bool {
	if p.Expr == nil {
		return true
	}
	return p.Expr.MatchString(s)
}

// Range bounds a numeric value. Bounds use big.Rat so the comparison is
// exact for every numeric shape kind, including bigDecimal. Nil bounds are
// unbounded.
type Range struct {
	Min *big.Rat
	Max *big.Rat
}

// RangeBetween builds a Range from int64 bounds.
func RangeBetween(min, max int64) Range {
	return Range{Min: new(big.Rat).SetInt64(min), Max: new(big.Rat).SetInt64(max)}
}

// RangeMin builds a Range with only a lower bound.
func RangeMin(min int64) Range { return Range{Min: new(big.Rat).SetInt64(min)} }

// RangeMax builds a Range with only an upper bound.
func RangeMax(max int64) Range { return Range{Max: new(big.Rat).SetInt64(max)} }

func (Range) TraitID() smithy.ShapeID { return apiID("range") }

func (r Range) TraitValue() document.Value {
	m := document.Map{}
	if r.Min != nil {
		m["min"] = document.BigDecimal{Value: r.Min}
	}
	if r.Max != nil {
		m["max"] = document.BigDecimal{Value: r.Max}
	}
	return m
}

// Contains reports whether v lies within the bounds.
func (r Range) Contains(v *big.Rat) bool {
	if r.Min != nil && v.Cmp(r.Min) < 0 {
		return false
	}
	if r.Max != nil && v.Cmp(r.Max) > 0 {
		return false
	}
	return true
}

// JSONName renames a member when serialized by a JSON protocol.
type JSONName struct {
	Name string
}

func (JSONName) TraitID() smithy.ShapeID      { return apiID("jsonName") }
func (t JSONName) TraitValue() document.Value { return document.String(t.Name) }

// TimestampFormat selects the wire representation of a timestamp member.
type TimestampFormat struct {
	Format string
}

// Timestamp formats defined by the Smithy spec.
const (
	TimestampDateTime     = "date-time"
	TimestampEpochSeconds = "epoch-seconds"
	TimestampHTTPDate     = "http-date"
)

func (TimestampFormat) TraitID() smithy.ShapeID      { return apiID("timestampFormat") }
func (t TimestampFormat) TraitValue() document.Value { return document.String(t.Format) }

// Default records a shape's default value.
type Default struct {
	Value document.Value
}

func (Default) TraitID() smithy.ShapeID      { return apiID("default") }
func (t Default) TraitValue() document.Value { return t.Value }

// Error marks a structure as an operation error with a client or server
// fault.
type Error struct {
	Fault string // "client" or "server"
}

func (Error) TraitID() smithy.ShapeID      { return apiID("error") }
func (t Error) TraitValue() document.Value { return document.String(t.Fault) }

// HTTPError customizes the HTTP status code of an error structure.
type HTTPError struct {
	Code int
}

func (HTTPError) TraitID() smithy.ShapeID      { return apiID("httpError") }
func (t HTTPError) TraitValue() document.Value { return document.Integer(t.Code) }

// EnumValue customizes the wire value of an enum member.
type EnumValue struct {
	Value document.Value
}

func (EnumValue) TraitID() smithy.ShapeID      { return apiID("enumValue") }
func (t EnumValue) TraitValue() document.Value { return t.Value }
