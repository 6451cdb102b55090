package testshapes

import (
	"testing"

	smithy "github.com/mellemahp/smithy4go"
)

// The builders dispatch on member index, so the schemas' final member
// order is load-bearing. Pin it here.

func TestPersonMemberOrder(t *testing.T) {
	assertMemberOrder(t, PersonSchema().Members(), []string{"name", "age", "ssn"})
}

func TestOrderMemberOrder(t *testing.T) {
	assertMemberOrder(t, OrderSchema().Members(), []string{
		"id", "items", "createdAt",
		"tags", "shipping", "payload", "metadata", "status", "priority",
	})
}

func TestAttachmentMemberOrder(t *testing.T) {
	assertMemberOrder(t, AttachmentSchema().Members(), []string{"text", "data", "none"})
}

func TestNodeMemberOrder(t *testing.T) {
	assertMemberOrder(t, NodeSchema().Members(), []string{"value", "next"})
}

func assertMemberOrder(t *testing.T, members []*smithy.Schema, want []string) {
	t.Helper()
	if len(members) != len(want) {
		t.Fatalf("got %d members, want %d", len(members), len(want))
	}
	for i, m := range members {
		if m.MemberName() != want[i] {
			t.Errorf("member %d = %q, want %q", i, m.MemberName(), want[i])
		}
		if m.MemberIndex() != i {
			t.Errorf("member %q index = %d, want %d", m.MemberName(), m.MemberIndex(), i)
		}
	}
}
