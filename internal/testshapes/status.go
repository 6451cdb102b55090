package testshapes

import (
	"sync"

	smithy "github.com/mellemahp/smithy4go"
	"github.com/mellemahp/smithy4go/serde"
)

// Status is a string enum.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusActive   Status = "ACTIVE"
	StatusArchived Status = "ARCHIVED"
)

var statusSchema = sync.OnceValue(func() *smithy.Schema {
	return smithy.NewEnumSchema(
		smithy.ShapeID{Namespace: namespace, Name: "Status"},
		[]string{string(StatusPending), string(StatusActive), string(StatusArchived)},
	)
})

// StatusSchema returns the Status enum schema.
func StatusSchema() *smithy.Schema { return statusSchema() }

func (s Status) Schema() *smithy.Schema { return StatusSchema() }

func (s Status) SerializeWithSchema(schema *smithy.Schema, sz serde.Serializer) error {
	return sz.WriteString(schema, string(s))
}

// Priority is an int enum.
type Priority int32

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

var prioritySchema = sync.OnceValue(func() *smithy.Schema {
	return smithy.NewIntEnumSchema(
		smithy.ShapeID{Namespace: namespace, Name: "Priority"},
		[]int32{int32(PriorityLow), int32(PriorityMedium), int32(PriorityHigh)},
	)
})

// PrioritySchema returns the Priority int enum schema.
func PrioritySchema() *smithy.Schema { return prioritySchema() }

func (p Priority) Schema() *smithy.Schema { return PrioritySchema() }

func (p Priority) SerializeWithSchema(schema *smithy.Schema, sz serde.Serializer) error {
	return sz.WriteInteger(schema, int32(p))
}
