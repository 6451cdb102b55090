// Package validate checks builder state against the constraint traits of a
// schema. A Validator accumulates every violation found during one tree
// walk, bounded by a maximum recursion depth and a maximum error count, and
// surfaces them as a single Errors value.
package validate

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"unicode/utf8"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/traits"
)

// Code classifies a violation.
type Code string

const (
	CodeRequired    Code = "required"
	CodeLength      Code = "length"
	CodePattern     Code = "pattern"
	CodeRange       Code = "range"
	CodeUniqueItems Code = "unique_items"
	CodeInvalidEnum Code = "invalid_enum"
	CodeInvalidType Code = "invalid_type"
	CodeUnsupported Code = "unsupported"

	// CodeMaxErrors is the sentinel appended when the error budget is
	// exhausted and the walk stops reporting.
	CodeMaxErrors Code = "max_errors_reached"
	// CodeMaxDepth reports that the structural recursion guard tripped.
	CodeMaxDepth Code = "maximum_depth_exceeded"
)

// Error is a single violation, tagged with the schema path it occurred at.
type Error struct {
	Path    string
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code, e.Path, e.Message)
}

// Errors is the aggregate of all violations from one walk. It implements
// error; the summary shows the first few entries.
type Errors []*Error

func (errs Errors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(errs), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", errs[i].Code, errs[i].Path)
	}
	if len(errs) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(errs))
	}
	return b.String()
}

// Options bounds a validation walk.
type Options struct {
	// MaxDepth limits structural recursion; DefaultMaxDepth when zero.
	MaxDepth int
	// MaxErrors stops accumulation once reached; DefaultMaxErrors when zero.
	MaxErrors int
}

const (
	DefaultMaxDepth  = 2048
	DefaultMaxErrors = 100
)

// Validator walks a builder tree against its schema, accumulating
// violations. Validators are single-use and not safe for concurrent use.
type Validator struct {
	opt   Options
	errs  Errors
	depth int
	full  bool
}

// New returns a validator with the given bounds.
func New(opt Options) *Validator {
	if opt.MaxDepth <= 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	if opt.MaxErrors <= 0 {
		opt.MaxErrors = DefaultMaxErrors
	}
	return &Validator{opt: opt}
}

// NewDefault returns a validator with the default bounds.
func NewDefault() *Validator { return New(Options{}) }

// Enter guards one level of structural recursion. It returns false, after
// recording a depth violation, when the walk must not descend further; every
// true return must be paired with a Leave.
func (v *Validator) Enter(schema *smithy.Schema) bool {
	if v.depth >= v.opt.MaxDepth {
		v.Emit(schema, CodeMaxDepth, fmt.Sprintf("validation depth exceeds %d", v.opt.MaxDepth))
		return false
	}
	v.depth++
	return true
}

// Leave unwinds one Enter.
func (v *Validator) Leave() { v.depth-- }

// Emit records a violation at the given schema's path. Once the error
// budget is reached a single max-errors sentinel is appended and further
// emissions are dropped.
func (v *Validator) Emit(schema *smithy.Schema, code Code, message string) {
	if v.full {
		return
	}
	if len(v.errs) >= v.opt.MaxErrors {
		v.errs = append(v.errs, &Error{
			Path:    schema.ID().String(),
			Code:    CodeMaxErrors,
			Message: fmt.Sprintf("stopped after %d errors", v.opt.MaxErrors),
		})
		v.full = true
		return
	}
	v.errs = append(v.errs, &Error{Path: schema.ID().String(), Code: code, Message: message})
}

// Result returns nil after a clean walk, or every accumulated violation.
func (v *Validator) Result() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// CheckRequired records a violation when a member carrying @required has no
// value set.
func (v *Validator) CheckRequired(member *smithy.Schema, set bool) {
	if set {
		return
	}
	if member.ContainsTrait(smithy.RequiredTraitID) {
		v.Emit(member, CodeRequired, "required member is not set")
	}
}

// CheckString validates @length (counted in codepoints) and @pattern.
func (v *Validator) CheckString(schema *smithy.Schema, s string) {
	if l, ok := smithy.GetTrait[traits.Length](schema); ok {
		n := int64(utf8.RuneCountInString(s))
		if n < l.MinValue() || n > l.MaxValue() {
			v.Emit(schema, CodeLength, fmt.Sprintf("length %d outside [%d, %d]", n, l.MinValue(), l.MaxValue()))
		}
	}
	if p, ok := smithy.GetTrait[traits.Pattern](schema); ok && !p.Matches(s) {
		v.Emit(schema, CodePattern, fmt.Sprintf("value does not match pattern %s", p.Expr))
	}
}

// CheckBlob validates @length counted in bytes.
func (v *Validator) CheckBlob(schema *smithy.Schema, b []byte) {
	if l, ok := smithy.GetTrait[traits.Length](schema); ok {
		n := int64(len(b))
		if n < l.MinValue() || n > l.MaxValue() {
			v.Emit(schema, CodeLength, fmt.Sprintf("length %d outside [%d, %d]", n, l.MinValue(), l.MaxValue()))
		}
	}
}

// CheckCollection validates @length against a list or map size.
func (v *Validator) CheckCollection(schema *smithy.Schema, size int) {
	if l, ok := smithy.GetTrait[traits.Length](schema); ok {
		n := int64(size)
		if n < l.MinValue() || n > l.MaxValue() {
			v.Emit(schema, CodeLength, fmt.Sprintf("size %d outside [%d, %d]", n, l.MinValue(), l.MaxValue()))
		}
	}
}

// CheckInteger validates @range for any integral shape kind.
func (v *Validator) CheckInteger(schema *smithy.Schema, value int64) {
	if r, ok := smithy.GetTrait[traits.Range](schema); ok {
		if !r.Contains(new(big.Rat).SetInt64(value)) {
			v.Emit(schema, CodeRange, fmt.Sprintf("value %d outside range", value))
		}
	}
}

// CheckFloat validates @range for float and double shapes. NaN and
// infinities are outside every bounded range.
func (v *Validator) CheckFloat(schema *smithy.Schema, value float64) {
	r, ok := smithy.GetTrait[traits.Range](schema)
	if !ok {
		return
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		if r.Min != nil || r.Max != nil {
			v.Emit(schema, CodeRange, fmt.Sprintf("value %v outside range", value))
		}
		return
	}
	rat := new(big.Rat).SetFloat64(value)
	if !r.Contains(rat) {
		v.Emit(schema, CodeRange, fmt.Sprintf("value %v outside range", value))
	}
}

// CheckBigInteger validates @range for bigInteger shapes.
func (v *Validator) CheckBigInteger(schema *smithy.Schema, value *big.Int) {
	if value == nil {
		return
	}
	if r, ok := smithy.GetTrait[traits.Range](schema); ok {
		if !r.Contains(new(big.Rat).SetInt(value)) {
			v.Emit(schema, CodeRange, fmt.Sprintf("value %s outside range", value))
		}
	}
}

// CheckBigDecimal validates @range for bigDecimal shapes using exact
// rational comparison.
func (v *Validator) CheckBigDecimal(schema *smithy.Schema, value *big.Rat) {
	if value == nil {
		return
	}
	if r, ok := smithy.GetTrait[traits.Range](schema); ok {
		if !r.Contains(value) {
			v.Emit(schema, CodeRange, fmt.Sprintf("value %s outside range", value.RatString()))
		}
	}
}

// CheckEnum validates membership in a string enum's value set.
func (v *Validator) CheckEnum(schema *smithy.Schema, value string) {
	target := schema
	if schema.Type() == smithy.ShapeTypeMember {
		target = schema.MemberTarget()
	}
	if target.Type() != smithy.ShapeTypeEnum {
		return
	}
	for _, allowed := range target.EnumValues() {
		if allowed == value {
			return
		}
	}
	v.Emit(schema, CodeInvalidEnum, fmt.Sprintf("value %q is not a known enum value", value))
}

// CheckIntEnum validates membership in an intEnum's value set.
func (v *Validator) CheckIntEnum(schema *smithy.Schema, value int32) {
	target := schema
	if schema.Type() == smithy.ShapeTypeMember {
		target = schema.MemberTarget()
	}
	if target.Type() != smithy.ShapeTypeIntEnum {
		return
	}
	for _, allowed := range target.IntEnumValues() {
		if allowed == value {
			return
		}
	}
	v.Emit(schema, CodeInvalidEnum, fmt.Sprintf("value %d is not a known enum value", value))
}

// CheckUnique validates @uniqueItems against a slice of comparable
// elements.
func CheckUnique[E comparable](v *Validator, schema *smithy.Schema, items []E) {
	if !schema.ContainsTrait(traits.UniqueItems{}.TraitID()) {
		return
	}
	seen := make(map[E]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it]; dup {
			v.Emit(schema, CodeUniqueItems, "collection items must be unique")
			return
		}
		seen[it] = struct{}{}
	}
}
