package ast

// The extension nodes mirror their definitions without a description. The
// parser does not produce them yet; they are part of the model so consumers
// can switch over them exhaustively.

// TypeExtension is one of the six named type extensions.
type TypeExtension interface {
	TypeSystemExtension
	typeExtensionNode()
}

type SchemaExtension struct {
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

type ScalarTypeExtension struct {
	Name       string
	Directives []*Directive
}

type ObjectTypeExtension struct {
	Name       string
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

type InterfaceTypeExtension struct {
	Name       string
	Interfaces []*NamedType
	Directives []*Directive
	Fields     []*FieldDefinition
}

type UnionTypeExtension struct {
	Name       string
	Directives []*Directive
	Types      []*NamedType
}

type EnumTypeExtension struct {
	Name       string
	Directives []*Directive
	Values     []*EnumValueDefinition
}

type InputObjectTypeExtension struct {
	Name       string
	Directives []*Directive
	Fields     []*InputValueDefinition
}

func (*SchemaExtension) Kind() Kind          { return KindSchemaExtension }
func (*ScalarTypeExtension) Kind() Kind      { return KindScalarTypeExtension }
func (*ObjectTypeExtension) Kind() Kind      { return KindObjectTypeExtension }
func (*InterfaceTypeExtension) Kind() Kind   { return KindInterfaceTypeExtension }
func (*UnionTypeExtension) Kind() Kind       { return KindUnionTypeExtension }
func (*EnumTypeExtension) Kind() Kind        { return KindEnumTypeExtension }
func (*InputObjectTypeExtension) Kind() Kind { return KindInputObjectTypeExtension }

func (*SchemaExtension) definitionNode()                   {}
func (*SchemaExtension) typeSystemExtensionNode()          {}
func (*ScalarTypeExtension) definitionNode()               {}
func (*ScalarTypeExtension) typeSystemExtensionNode()      {}
func (*ScalarTypeExtension) typeExtensionNode()            {}
func (*ObjectTypeExtension) definitionNode()               {}
func (*ObjectTypeExtension) typeSystemExtensionNode()      {}
func (*ObjectTypeExtension) typeExtensionNode()            {}
func (*InterfaceTypeExtension) definitionNode()            {}
func (*InterfaceTypeExtension) typeSystemExtensionNode()   {}
func (*InterfaceTypeExtension) typeExtensionNode()         {}
func (*UnionTypeExtension) definitionNode()                {}
func (*UnionTypeExtension) typeSystemExtensionNode()       {}
func (*UnionTypeExtension) typeExtensionNode()             {}
func (*EnumTypeExtension) definitionNode()                 {}
func (*EnumTypeExtension) typeSystemExtensionNode()        {}
func (*EnumTypeExtension) typeExtensionNode()              {}
func (*InputObjectTypeExtension) definitionNode()          {}
func (*InputObjectTypeExtension) typeSystemExtensionNode() {}
func (*InputObjectTypeExtension) typeExtensionNode()       {}
