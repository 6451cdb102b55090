// Package smithy4go implements the Smithy data model as a runtime schema
// graph plus a schema-guided serialization protocol.
//
// The root package holds the contract types: ShapeID, ShapeType, Schema,
// SchemaBuilder, and the Trait registry attached to every schema node.
// Schemas are built once (typically behind a sync.OnceValue static), frozen
// by Build, and safe for concurrent reads afterwards.
//
// Subpackages:
//
//   - prelude: shared scalar schemas for the smithy.api namespace
//   - traits: concrete implementations of the built-in Smithy traits
//   - document: the untyped dynamic value carried by traits and document shapes
//   - serde: the Serializer/Deserializer contracts any codec implements,
//     plus the builder machinery used during deserialization
//   - validate: constraint-trait validation with error accumulation
//   - jsoncodec, yamlcodec: concrete codecs implementing the serde contracts
package smithy4go
