// Package testshapes holds hand-written models in the shape of generated
// code. The codec and serde tests exercise the full protocol through them:
// structures, lists, maps, unions, enums, recursion, and the builder
// validation and error-correction paths.
package testshapes

const namespace = "smithy.example"
