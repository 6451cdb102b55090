package smithy4go

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidShapeID is returned when an ID string lacks the namespace#name
// separator.
var ErrInvalidShapeID = errors.New("smithy4go: invalid shape id, expected namespace#name")

// ShapeID identifies a shape in a Smithy model: namespace#name, optionally
// extended with $member for members of aggregate shapes.
//
// The zero value is not a valid ID. ShapeID is comparable and may be used as
// a map key; ordering is lexicographic on the full rendered id.
type ShapeID struct {
	Namespace string
	Name      string
	Member    string
}

// ParseShapeID parses "namespace#name" or "namespace#name$member".
func ParseShapeID(s string) (ShapeID, error) {
	ns, rest, ok := strings.Cut(s, "#")
	if !ok {
		return ShapeID{}, fmt.Errorf("%w: %q", ErrInvalidShapeID, s)
	}
	name, member, _ := strings.Cut(rest, "$")
	return ShapeID{Namespace: ns, Name: name, Member: member}, nil
}

// MustShapeID is ParseShapeID for static schema definitions; it panics on a
// malformed id.
func MustShapeID(s string) ShapeID {
	id, err := ParseShapeID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// WithMember derives a member ID from this shape's namespace and name.
func (id ShapeID) WithMember(member string) ShapeID {
	return ShapeID{Namespace: id.Namespace, Name: id.Name, Member: member}
}

// WithoutMember strips the member portion, yielding the containing shape's ID.
func (id ShapeID) WithoutMember() ShapeID {
	return ShapeID{Namespace: id.Namespace, Name: id.Name}
}

// String renders namespace#name[$member].
func (id ShapeID) String() string {
	if id.Member == "" {
		return id.Namespace + "#" + id.Name
	}
	return id.Namespace + "#" + id.Name + "$" + id.Member
}

// Less orders IDs lexicographically on the full rendered id.
func (id ShapeID) Less(other ShapeID) bool {
	return id.String() < other.String()
}
