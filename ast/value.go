package ast

// Value represents an input value in GraphQL.
type Value interface {
	Node
	valueNode()
}

type IntValue struct {
	Value int32
}

type FloatValue struct {
	Value float64
}

type StringValue struct {
	Value string
}

type BooleanValue struct {
	Value bool
}

type NullValue struct{}

// EnumValue is a bare name used as a value.
type EnumValue struct {
	Name string
}

type ListValue struct {
	Values []Value
}

// ObjectValue holds its fields in source order.
type ObjectValue struct {
	Fields []*ObjectField
}

type ObjectField struct {
	Name  string
	Value Value
}

// Variable is a $name reference.
type Variable struct {
	Name string
}

func (*IntValue) Kind() Kind     { return KindIntValue }
func (*FloatValue) Kind() Kind   { return KindFloatValue }
func (*StringValue) Kind() Kind  { return KindStringValue }
func (*BooleanValue) Kind() Kind { return KindBooleanValue }
func (*NullValue) Kind() Kind    { return KindNullValue }
func (*EnumValue) Kind() Kind    { return KindEnumValue }
func (*ListValue) Kind() Kind    { return KindListValue }
func (*ObjectValue) Kind() Kind  { return KindObjectValue }
func (*ObjectField) Kind() Kind  { return KindObjectField }
func (*Variable) Kind() Kind     { return KindVariable }

func (*IntValue) valueNode()     {}
func (*FloatValue) valueNode()   {}
func (*StringValue) valueNode()  {}
func (*BooleanValue) valueNode() {}
func (*NullValue) valueNode()    {}
func (*EnumValue) valueNode()    {}
func (*ListValue) valueNode()    {}
func (*ObjectValue) valueNode()  {}
func (*Variable) valueNode()     {}

// Type represents a type reference (e.g., String, [Int!], User!).
//
// Non-null is carried by the outermost wrapper only, so a non-null type is
// never wrapped twice.
type Type interface {
	Node
	typeNode()
}

type NamedType struct {
	Name string
}

type ListType struct {
	Type Type
}

type NonNullNamedType struct {
	Name string
}

type NonNullListType struct {
	Type Type
}

func (*NamedType) Kind() Kind        { return KindNamedType }
func (*ListType) Kind() Kind         { return KindListType }
func (*NonNullNamedType) Kind() Kind { return KindNonNullNamedType }
func (*NonNullListType) Kind() Kind  { return KindNonNullListType }

func (*NamedType) typeNode()        {}
func (*ListType) typeNode()         {}
func (*NonNullNamedType) typeNode() {}
func (*NonNullListType) typeNode()  {}
