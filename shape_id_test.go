package smithy4go

import (
	"errors"
	"testing"
)

func TestParseShapeID(t *testing.T) {
	id, err := ParseShapeID("com.example#Person")
	if err != nil {
		t.Fatalf("ParseShapeID: %v", err)
	}
	if id.Namespace != "com.example" || id.Name != "Person" || id.Member != "" {
		t.Fatalf("unexpected id: %+v", id)
	}
}

func TestParseShapeIDWithMember(t *testing.T) {
	id, err := ParseShapeID("com.example#Person$name")
	if err != nil {
		t.Fatalf("ParseShapeID: %v", err)
	}
	if id.Member != "name" {
		t.Fatalf("member = %q, want %q", id.Member, "name")
	}
	if got := id.String(); got != "com.example#Person$name" {
		t.Fatalf("String() = %q", got)
	}
}

func TestParseShapeIDMissingSeparator(t *testing.T) {
	_, err := ParseShapeID("no-separator")
	if !errors.Is(err, ErrInvalidShapeID) {
		t.Fatalf("err = %v, want ErrInvalidShapeID", err)
	}
}

func TestShapeIDDerivation(t *testing.T) {
	id := MustShapeID("com.example#Person")
	member := id.WithMember("name")
	if member.String() != "com.example#Person$name" {
		t.Fatalf("WithMember = %q", member)
	}
	if member.WithoutMember() != id {
		t.Fatalf("WithoutMember = %q, want %q", member.WithoutMember(), id)
	}
}

func TestShapeIDLess(t *testing.T) {
	a := MustShapeID("com.example#A")
	b := MustShapeID("com.example#B")
	if !a.Less(b) || b.Less(a) {
		t.Fatalf("ordering broken for %q and %q", a, b)
	}
}

func TestMustShapeIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustShapeID("bogus")
}
