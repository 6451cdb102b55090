// Package prelude exposes the shared scalar schemas of the smithy.api
// namespace. Each schema is computed once on first access and the same
// pointer is returned thereafter, so member targets across generated code
// share nodes instead of copying them.
package prelude

import (
	"sync"

	smithy "github.com/mellemahp/smithy4go"
)

func lazyScalar(typ smithy.ShapeType, name string) func() *smithy.Schema {
	return sync.OnceValue(func() *smithy.Schema {
		return smithy.NewScalarSchema(typ, smithy.ShapeID{Namespace: "smithy.api", Name: name})
	})
}

var (
	blobSchema       = lazyScalar(smithy.ShapeTypeBlob, "Blob")
	booleanSchema    = lazyScalar(smithy.ShapeTypeBoolean, "Boolean")
	stringSchema     = lazyScalar(smithy.ShapeTypeString, "String")
	timestampSchema  = lazyScalar(smithy.ShapeTypeTimestamp, "Timestamp")
	byteSchema       = lazyScalar(smithy.ShapeTypeByte, "Byte")
	shortSchema      = lazyScalar(smithy.ShapeTypeShort, "Short")
	integerSchema    = lazyScalar(smithy.ShapeTypeInteger, "Integer")
	longSchema       = lazyScalar(smithy.ShapeTypeLong, "Long")
	floatSchema      = lazyScalar(smithy.ShapeTypeFloat, "Float")
	doubleSchema     = lazyScalar(smithy.ShapeTypeDouble, "Double")
	bigIntegerSchema = lazyScalar(smithy.ShapeTypeBigInteger, "BigInteger")
	bigDecimalSchema = lazyScalar(smithy.ShapeTypeBigDecimal, "BigDecimal")
	documentSchema   = lazyScalar(smithy.ShapeTypeDocument, "Document")

	unitSchema = sync.OnceValue(func() *smithy.Schema {
		return smithy.NewStructureBuilder(smithy.ShapeID{Namespace: "smithy.api", Name: "Unit"}).MustBuild()
	})
)

func Blob() *smithy.Schema       { return blobSchema() }
func Boolean() *smithy.Schema    { return booleanSchema() }
func String() *smithy.Schema     { return stringSchema() }
func Timestamp() *smithy.Schema  { return timestampSchema() }
func Byte() *smithy.Schema       { return byteSchema() }
func Short() *smithy.Schema      { return shortSchema() }
func Integer() *smithy.Schema    { return integerSchema() }
func Long() *smithy.Schema       { return longSchema() }
func Float() *smithy.Schema      { return floatSchema() }
func Double() *smithy.Schema     { return doubleSchema() }
func BigInteger() *smithy.Schema { return bigIntegerSchema() }
func BigDecimal() *smithy.Schema { return bigDecimalSchema() }
func Document() *smithy.Schema   { return documentSchema() }

// Unit is the singleton structure used for union variants that carry no
// data.
func Unit() *smithy.Schema { return unitSchema() }
