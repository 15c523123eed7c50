package ast

// ElementType represents the variant of an element
type ElementType uint16

// Element types
const (
	elementTypeAtom     ElementType = 128
	elementTypeVector   ElementType = 256
	elementTypeCallable ElementType = 512

	TypeIdentifier = elementTypeAtom | 1
	TypeInteger    = elementTypeAtom | 2
	TypeReal       = elementTypeAtom | 4
	TypeBoolean    = elementTypeAtom | 8
	TypeNull       = elementTypeAtom | 16

	TypeList = elementTypeVector | 1

	TypeFunction = elementTypeCallable | 1
	TypeBuiltin  = elementTypeCallable | 2
)

func (et ElementType) String() string {
	s, ok := elementTypeName[et]
	if ok {
		return s
	}
	return ""
}

var elementTypeName = map[ElementType]string{
	TypeIdentifier: "identifier",
	TypeInteger:    "integer",
	TypeReal:       "real",
	TypeBoolean:    "boolean",
	TypeNull:       "null",
	TypeList:       "list",
	TypeFunction:   "function",
	TypeBuiltin:    "builtin",
}
