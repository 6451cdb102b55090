package traits

import (
	"math/big"
	"testing"
)

func TestLengthBounds(t *testing.T) {
	l := LengthBetween(2, 5)
	if l.MinValue() != 2 || l.MaxValue() != 5 {
		t.Fatalf("bounds = [%d, %d]", l.MinValue(), l.MaxValue())
	}

	min := LengthMin(3)
	if min.MinValue() != 3 {
		t.Fatalf("min = %d", min.MinValue())
	}
	if min.Max != nil {
		t.Fatal("LengthMin set a max")
	}
}

func TestPatternFindSemantics(t *testing.T) {
	p := MustPattern(`\d{3}`)
	// An unanchored pattern matches anywhere in the string.
	if !p.Matches("abc123def") {
		t.Fatal("expected substring match")
	}
	if p.Matches("no digits") {
		t.Fatal("unexpected match")
	}

	anchored := MustPattern(`^\d{3}$`)
	if anchored.Matches("abc123") {
		t.Fatal("anchors were ignored")
	}
	if !anchored.Matches("123") {
		t.Fatal("anchored exact match failed")
	}
}

func TestNewPatternInvalid(t *testing.T) {
	if _, err := NewPattern("("); err == nil {
		t.Fatal("expected error for invalid expression")
	}
}

func TestRangeContains(t *testing.T) {
	r := RangeBetween(0, 10)
	for _, tc := range []struct {
		v    int64
		want bool
	}{
		{-1, false},
		{0, true},
		{10, true},
		{11, false},
	} {
		got := r.Contains(new(big.Rat).SetInt64(tc.v))
		if got != tc.want {
			t.Errorf("Contains(%d) = %t, want %t", tc.v, got, tc.want)
		}
	}
}

func TestRangeExactness(t *testing.T) {
	// A bound just above an int64-representable value still excludes it.
	r := Range{Min: new(big.Rat).SetFrac64(1, 3)}
	if r.Contains(new(big.Rat).SetFrac64(3333, 10000)) {
		t.Fatal("value below exact rational bound was accepted")
	}
	if !r.Contains(new(big.Rat).SetFrac64(1, 2)) {
		t.Fatal("value above bound was rejected")
	}
}

func TestTraitIDs(t *testing.T) {
	for _, tr := range []struct {
		name string
		id   string
	}{
		{"sensitive", Sensitive{}.TraitID().String()},
		{"sparse", Sparse{}.TraitID().String()},
		{"uniqueItems", UniqueItems{}.TraitID().String()},
		{"length", Length{}.TraitID().String()},
		{"pattern", Pattern{}.TraitID().String()},
		{"range", Range{}.TraitID().String()},
		{"jsonName", JSONName{}.TraitID().String()},
		{"timestampFormat", TimestampFormat{}.TraitID().String()},
	} {
		want := "smithy.api#" + tr.name
		if tr.id != want {
			t.Errorf("trait id = %q, want %q", tr.id, want)
		}
	}
}
