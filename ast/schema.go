package ast

// TypeDefinition is one of the six named type definitions.
type TypeDefinition interface {
	TypeSystemDefinition
	typeDefinitionNode()
}

// SchemaDefinition represents schema { query: Query ... }. OperationTypes is
// never empty.
type SchemaDefinition struct {
	Description    *string
	Directives     []*Directive
	OperationTypes []*OperationTypeDefinition
}

type OperationTypeDefinition struct {
	Operation OperationType
	Type      *NamedType
}

type ScalarTypeDefinition struct {
	Description *string
	Name        string
	Directives  []*Directive
}

type ObjectTypeDefinition struct {
	Description *string
	Name        string
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

type InterfaceTypeDefinition struct {
	Description *string
	Name        string
	Interfaces  []*NamedType
	Directives  []*Directive
	Fields      []*FieldDefinition
}

type UnionTypeDefinition struct {
	Description *string
	Name        string
	Directives  []*Directive
	Types       []*NamedType
}

type EnumTypeDefinition struct {
	Description *string
	Name        string
	Directives  []*Directive
	Values      []*EnumValueDefinition
}

type InputObjectTypeDefinition struct {
	Description *string
	Name        string
	Directives  []*Directive
	Fields      []*InputValueDefinition
}

// DirectiveDefinition represents directive @name(args) [repeatable] on A | B.
// Locations is never empty.
type DirectiveDefinition struct {
	Description *string
	Name        string
	Arguments   []*InputValueDefinition
	Repeatable  bool
	Locations   []string
}

type FieldDefinition struct {
	Description *string
	Name        string
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  []*Directive
}

type InputValueDefinition struct {
	Description  *string
	Name         string
	Type         Type
	DefaultValue Value // nil when absent
	Directives   []*Directive
}

type EnumValueDefinition struct {
	Description *string
	Name        string
	Directives  []*Directive
}

func (*SchemaDefinition) Kind() Kind          { return KindSchemaDefinition }
func (*OperationTypeDefinition) Kind() Kind   { return KindOperationTypeDefinition }
func (*ScalarTypeDefinition) Kind() Kind      { return KindScalarTypeDefinition }
func (*ObjectTypeDefinition) Kind() Kind      { return KindObjectTypeDefinition }
func (*InterfaceTypeDefinition) Kind() Kind   { return KindInterfaceTypeDefinition }
func (*UnionTypeDefinition) Kind() Kind       { return KindUnionTypeDefinition }
func (*EnumTypeDefinition) Kind() Kind        { return KindEnumTypeDefinition }
func (*InputObjectTypeDefinition) Kind() Kind { return KindInputObjectTypeDefinition }
func (*DirectiveDefinition) Kind() Kind       { return KindDirectiveDefinition }
func (*FieldDefinition) Kind() Kind           { return KindFieldDefinition }
func (*InputValueDefinition) Kind() Kind      { return KindInputValueDefinition }
func (*EnumValueDefinition) Kind() Kind       { return KindEnumValueDefinition }

func (*SchemaDefinition) definitionNode()                    {}
func (*SchemaDefinition) typeSystemDefinitionNode()          {}
func (*ScalarTypeDefinition) definitionNode()                {}
func (*ScalarTypeDefinition) typeSystemDefinitionNode()      {}
func (*ScalarTypeDefinition) typeDefinitionNode()            {}
func (*ObjectTypeDefinition) definitionNode()                {}
func (*ObjectTypeDefinition) typeSystemDefinitionNode()      {}
func (*ObjectTypeDefinition) typeDefinitionNode()            {}
func (*InterfaceTypeDefinition) definitionNode()             {}
func (*InterfaceTypeDefinition) typeSystemDefinitionNode()   {}
func (*InterfaceTypeDefinition) typeDefinitionNode()         {}
func (*UnionTypeDefinition) definitionNode()                 {}
func (*UnionTypeDefinition) typeSystemDefinitionNode()       {}
func (*UnionTypeDefinition) typeDefinitionNode()             {}
func (*EnumTypeDefinition) definitionNode()                  {}
func (*EnumTypeDefinition) typeSystemDefinitionNode()        {}
func (*EnumTypeDefinition) typeDefinitionNode()              {}
func (*InputObjectTypeDefinition) definitionNode()           {}
func (*InputObjectTypeDefinition) typeSystemDefinitionNode() {}
func (*InputObjectTypeDefinition) typeDefinitionNode()       {}
func (*DirectiveDefinition) definitionNode()                 {}
func (*DirectiveDefinition) typeSystemDefinitionNode()       {}
