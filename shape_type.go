package smithy4go

// ShapeType enumerates the kinds of shapes in the Smithy data model.
// See https://smithy.io/2.0/spec/idl.html#defining-shapes.
type ShapeType int

const (
	ShapeTypeBlob ShapeType = iota
	ShapeTypeBoolean
	ShapeTypeString
	ShapeTypeTimestamp
	ShapeTypeByte
	ShapeTypeShort
	ShapeTypeInteger
	ShapeTypeLong
	ShapeTypeFloat
	ShapeTypeDouble
	ShapeTypeBigInteger
	ShapeTypeBigDecimal
	ShapeTypeDocument
	ShapeTypeEnum
	ShapeTypeIntEnum
	ShapeTypeList
	ShapeTypeMap
	ShapeTypeStructure
	ShapeTypeUnion
	ShapeTypeMember
	ShapeTypeService
	ShapeTypeResource
	ShapeTypeOperation
)

var shapeTypeNames = map[ShapeType]string{
	ShapeTypeBlob:       "blob",
	ShapeTypeBoolean:    "boolean",
	ShapeTypeString:     "string",
	ShapeTypeTimestamp:  "timestamp",
	ShapeTypeByte:       "byte",
	ShapeTypeShort:      "short",
	ShapeTypeInteger:    "integer",
	ShapeTypeLong:       "long",
	ShapeTypeFloat:      "float",
	ShapeTypeDouble:     "double",
	ShapeTypeBigInteger: "bigInteger",
	ShapeTypeBigDecimal: "bigDecimal",
	ShapeTypeDocument:   "document",
	ShapeTypeEnum:       "enum",
	ShapeTypeIntEnum:    "intEnum",
	ShapeTypeList:       "list",
	ShapeTypeMap:        "map",
	ShapeTypeStructure:  "structure",
	ShapeTypeUnion:      "union",
	ShapeTypeMember:     "member",
	ShapeTypeService:    "service",
	ShapeTypeResource:   "resource",
	ShapeTypeOperation:  "operation",
}

func (t ShapeType) String() string {
	if s, ok := shapeTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// IsScalar reports whether the type is a simple (memberless) value shape.
func (t ShapeType) IsScalar() bool {
	switch t {
	case ShapeTypeBlob, ShapeTypeBoolean, ShapeTypeString, ShapeTypeTimestamp,
		ShapeTypeByte, ShapeTypeShort, ShapeTypeInteger, ShapeTypeLong,
		ShapeTypeFloat, ShapeTypeDouble, ShapeTypeBigInteger, ShapeTypeBigDecimal,
		ShapeTypeDocument:
		return true
	}
	return false
}
