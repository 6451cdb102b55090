package serde_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mellemahp/smithy4go/internal/testshapes"
	"github.com/mellemahp/smithy4go/serde"
	"github.com/mellemahp/smithy4go/validate"
)

func TestRequiredCell(t *testing.T) {
	var r serde.Required[string]
	if r.IsSet() {
		t.Fatal("zero cell reports set")
	}
	if _, ok := r.Get(); ok {
		t.Fatal("Get on empty cell reports present")
	}
	if got := r.OrElse(func() string { return "fallback" }); got != "fallback" {
		t.Fatalf("OrElse = %q", got)
	}

	r.Set("")
	if !r.IsSet() {
		t.Fatal("explicitly set zero value reports unset")
	}
	if got := r.OrElse(func() string { return "fallback" }); got != "" {
		t.Fatalf("OrElse after Set = %q", got)
	}
}

func TestMaybeBuiltSkipsRevalidation(t *testing.T) {
	// A built value must not be re-validated even when invalid.
	m := serde.Built(testshapes.Item{SKU: "not valid per pattern", Quantity: -1})
	v := validate.NewDefault()
	m.Validate(v)
	if err := v.Result(); err != nil {
		t.Fatalf("built value re-validated: %v", err)
	}
	got := m.Correct(func() testshapes.Item { return testshapes.Item{} })
	if got.Quantity != -1 {
		t.Fatalf("Correct = %+v", got)
	}
}

func TestMaybeBuiltValidatesBuilder(t *testing.T) {
	ib := testshapes.NewItemBuilder().SetSKU("WS-1")
	m := serde.Building[testshapes.Item](ib)
	v := validate.NewDefault()
	m.Validate(v)
	if v.Result() == nil {
		t.Fatal("missing quantity not reported through held builder")
	}
}

func TestMaybeBuiltUnset(t *testing.T) {
	var m serde.MaybeBuilt[testshapes.Item]
	if m.IsSet() {
		t.Fatal("zero value reports set")
	}
	if got := m.CorrectOptional(); got != nil {
		t.Fatalf("CorrectOptional = %+v, want nil", got)
	}
	def := m.Correct(func() testshapes.Item { return testshapes.Item{SKU: "D"} })
	if def.SKU != "D" {
		t.Fatalf("default not used: %+v", def)
	}
}

func TestCorrectionTotality(t *testing.T) {
	// An empty builder always yields a value through Correct, with zero
	// and epoch defaults in place of missing required members.
	order := testshapes.NewOrderBuilder().Correct()
	if order.ID != "" {
		t.Fatalf("ID = %q", order.ID)
	}
	if order.Items == nil || len(order.Items) != 0 {
		t.Fatalf("Items = %v", order.Items)
	}
	if !order.CreatedAt.Equal(serde.DefaultTimestamp()) {
		t.Fatalf("CreatedAt = %v", order.CreatedAt)
	}
	if order.Shipping != nil {
		t.Fatalf("Shipping = %+v", order.Shipping)
	}
}

func TestDefaultTimestampIsEpoch(t *testing.T) {
	if !serde.DefaultTimestamp().Equal(time.Unix(0, 0)) {
		t.Fatalf("DefaultTimestamp = %v", serde.DefaultTimestamp())
	}
}

func TestCorrectSlice(t *testing.T) {
	builders := []*testshapes.ItemBuilder{
		testshapes.NewItemBuilder().SetSKU("A-1").SetQuantity(1),
		testshapes.NewItemBuilder(),
	}
	items := serde.CorrectSlice[testshapes.Item](builders)
	if len(items) != 2 {
		t.Fatalf("len = %d", len(items))
	}
	if items[0].SKU != "A-1" || items[1].SKU != "" {
		t.Fatalf("items = %+v", items)
	}
	if serde.CorrectSlice[testshapes.Item]([]*testshapes.ItemBuilder(nil)) != nil {
		t.Fatal("nil input did not stay nil")
	}
}

func TestBuildWithReportsViolations(t *testing.T) {
	b := testshapes.NewPersonBuilder()
	_, err := serde.BuildWith[testshapes.Person](b, validate.NewDefault())
	if err == nil {
		t.Fatal("missing required member not reported")
	}

	b = testshapes.NewPersonBuilder().SetName("Alice")
	p, err := serde.BuildWith[testshapes.Person](b, validate.NewDefault())
	if err != nil {
		t.Fatalf("BuildWith: %v", err)
	}
	if p.Name != "Alice" {
		t.Fatalf("Name = %q", p.Name)
	}
}

func TestBuildEmptyNameFailsLengthOnly(t *testing.T) {
	// A set-but-empty required member violates length, not required.
	b := testshapes.NewPersonBuilder().SetName("")
	_, err := b.Build()
	var errs validate.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("err = %v, want validate.Errors", err)
	}
	if len(errs) != 1 {
		t.Fatalf("got %d violations, want 1: %v", len(errs), errs)
	}
	if errs[0].Code != validate.CodeLength {
		t.Fatalf("code = %s, want %s", errs[0].Code, validate.CodeLength)
	}
	if !strings.Contains(errs[0].Path, "$name") {
		t.Fatalf("path = %q", errs[0].Path)
	}
}

func TestBuildEmptyBuilderFailsRequiredOnly(t *testing.T) {
	_, err := testshapes.NewPersonBuilder().Build()
	var errs validate.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("err = %v, want validate.Errors", err)
	}
	if len(errs) != 1 || errs[0].Code != validate.CodeRequired {
		t.Fatalf("violations = %v, want one required violation", errs)
	}
}

func TestFormatShapeRedactsSensitive(t *testing.T) {
	ssn := "123-45-6789"
	age := int32(41)
	p := testshapes.Person{Name: "Alice", Age: &age, SSN: &ssn}
	out := serde.FormatShape(p)
	if strings.Contains(out, ssn) {
		t.Fatalf("sensitive value leaked: %q", out)
	}
	if !strings.Contains(out, "*REDACTED*") {
		t.Fatalf("no redaction marker: %q", out)
	}
	if !strings.Contains(out, "Person[") || !strings.Contains(out, "name=Alice") {
		t.Fatalf("unexpected rendering: %q", out)
	}
}

func TestFormatShapeAggregates(t *testing.T) {
	order := testshapes.Order{
		ID:        "ord-1",
		Items:     []testshapes.Item{{SKU: "A-1", Quantity: 2}},
		CreatedAt: time.Unix(0, 0).UTC(),
		Tags:      map[string]string{"k": "v"},
	}
	out := serde.FormatShape(order)
	for _, want := range []string{"Order[", "items=[Item[", "sku=A-1", "tags={k=v}"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
