package validate_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/prelude"
	"github.com/mellemahp/smithy4go/traits"
	"github.com/mellemahp/smithy4go/validate"
)

func personSchema(t *testing.T) *smithy.Schema {
	t.Helper()
	return smithy.NewStructureBuilder(smithy.MustShapeID("test#Person")).
		PutMember("name", prelude.String(), traits.Required{}, traits.LengthBetween(1, 10)).
		PutMember("age", prelude.Integer(), traits.RangeBetween(0, 150)).
		MustBuild()
}

func asErrors(t *testing.T, err error) validate.Errors {
	t.Helper()
	var errs validate.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("error is %T, want validate.Errors", err)
	}
	return errs
}

func TestCleanWalkReturnsNil(t *testing.T) {
	v := validate.NewDefault()
	s := personSchema(t)
	v.CheckRequired(s.ExpectMember("name"), true)
	v.CheckString(s.ExpectMember("name"), "Alice")
	v.CheckInteger(s.ExpectMember("age"), 42)
	if err := v.Result(); err != nil {
		t.Fatalf("Result = %v, want nil", err)
	}
}

func TestViolationsAccumulate(t *testing.T) {
	v := validate.NewDefault()
	s := personSchema(t)
	v.CheckRequired(s.ExpectMember("name"), false)
	v.CheckInteger(s.ExpectMember("age"), 200)

	errs := asErrors(t, v.Result())
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2", len(errs))
	}
	if errs[0].Code != validate.CodeRequired {
		t.Errorf("errs[0].Code = %s", errs[0].Code)
	}
	if errs[1].Code != validate.CodeRange {
		t.Errorf("errs[1].Code = %s", errs[1].Code)
	}
	if !strings.Contains(errs[0].Path, "test#Person$name") {
		t.Errorf("errs[0].Path = %q", errs[0].Path)
	}
}

func TestRequiredSkipsOptionalMembers(t *testing.T) {
	v := validate.NewDefault()
	v.CheckRequired(personSchema(t).ExpectMember("age"), false)
	if err := v.Result(); err != nil {
		t.Fatalf("optional member reported as missing: %v", err)
	}
}

func TestStringLengthCountsCodepoints(t *testing.T) {
	s := smithy.NewStringSchema(smithy.MustShapeID("test#Str"), traits.LengthMax(3))

	v := validate.NewDefault()
	// Three runes, nine bytes.
	v.CheckString(s, "ééé")
	if err := v.Result(); err != nil {
		t.Fatalf("codepoint count exceeded byte-length reasoning: %v", err)
	}

	v = validate.NewDefault()
	v.CheckString(s, "abcd")
	if v.Result() == nil {
		t.Fatal("length violation not reported")
	}
}

func TestPatternUsesFindSemantics(t *testing.T) {
	s := smithy.NewStringSchema(smithy.MustShapeID("test#Str"), traits.MustPattern(`\d+`))
	v := validate.NewDefault()
	v.CheckString(s, "order-12")
	if err := v.Result(); err != nil {
		t.Fatalf("substring match rejected: %v", err)
	}

	v = validate.NewDefault()
	v.CheckString(s, "no digits")
	errs := asErrors(t, v.Result())
	if errs[0].Code != validate.CodePattern {
		t.Fatalf("code = %s", errs[0].Code)
	}
}

func TestFloatRangeRejectsNonFinite(t *testing.T) {
	s := smithy.NewDoubleSchema(smithy.MustShapeID("test#Dbl"), traits.RangeBetween(0, 100))
	for _, val := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v := validate.NewDefault()
		v.CheckFloat(s, val)
		if v.Result() == nil {
			t.Errorf("value %v accepted by bounded range", val)
		}
	}

	unbounded := smithy.NewDoubleSchema(smithy.MustShapeID("test#Any"))
	v := validate.NewDefault()
	v.CheckFloat(unbounded, math.NaN())
	if err := v.Result(); err != nil {
		t.Fatalf("NaN rejected without a range trait: %v", err)
	}
}

func TestEnumMembership(t *testing.T) {
	e := smithy.NewEnumSchema(smithy.MustShapeID("test#Suit"), []string{"HEART", "SPADE"})
	v := validate.NewDefault()
	v.CheckEnum(e, "HEART")
	if err := v.Result(); err != nil {
		t.Fatalf("known value rejected: %v", err)
	}

	v = validate.NewDefault()
	v.CheckEnum(e, "CLUB")
	errs := asErrors(t, v.Result())
	if errs[0].Code != validate.CodeInvalidEnum {
		t.Fatalf("code = %s", errs[0].Code)
	}
}

func TestUniqueItems(t *testing.T) {
	s := smithy.NewListBuilder(smithy.MustShapeID("test#Tags"), traits.UniqueItems{}).
		PutMember("member", prelude.String()).
		MustBuild()

	v := validate.NewDefault()
	validate.CheckUnique(v, s, []string{"a", "b", "c"})
	if err := v.Result(); err != nil {
		t.Fatalf("unique items rejected: %v", err)
	}

	v = validate.NewDefault()
	validate.CheckUnique(v, s, []string{"a", "b", "a"})
	errs := asErrors(t, v.Result())
	if errs[0].Code != validate.CodeUniqueItems {
		t.Fatalf("code = %s", errs[0].Code)
	}
}

func TestMaxErrorsSentinel(t *testing.T) {
	s := personSchema(t)
	name := s.ExpectMember("name")
	v := validate.New(validate.Options{MaxErrors: 3})
	for i := 0; i < 10; i++ {
		v.CheckRequired(name, false)
	}
	errs := asErrors(t, v.Result())
	if len(errs) != 4 {
		t.Fatalf("got %d errors, want 3 plus sentinel", len(errs))
	}
	if errs[3].Code != validate.CodeMaxErrors {
		t.Fatalf("last code = %s, want %s", errs[3].Code, validate.CodeMaxErrors)
	}
}

func TestDepthGuard(t *testing.T) {
	s := personSchema(t)
	v := validate.New(validate.Options{MaxDepth: 2})
	if !v.Enter(s) {
		t.Fatal("first Enter refused")
	}
	if !v.Enter(s) {
		t.Fatal("second Enter refused")
	}
	if v.Enter(s) {
		t.Fatal("Enter beyond MaxDepth allowed")
	}
	errs := asErrors(t, v.Result())
	if errs[0].Code != validate.CodeMaxDepth {
		t.Fatalf("code = %s", errs[0].Code)
	}
}

func TestErrorsSummaryTruncates(t *testing.T) {
	s := personSchema(t)
	v := validate.NewDefault()
	for i := 0; i < 5; i++ {
		v.Emit(s, validate.CodeLength, "boom")
	}
	msg := v.Result().Error()
	if !strings.Contains(msg, "total 5") {
		t.Fatalf("summary = %q", msg)
	}
}
