package ast

// Node is the base interface for all AST nodes.
type Node interface {
	Kind() Kind
}

// Document represents a complete GraphQL document.
// It contains the definitions in source order.
type Document struct {
	Definitions []Definition
}

func (*Document) Kind() Kind { return KindDocument }

// Definition is an interface for all top-level definitions in a GraphQL document.
type Definition interface {
	Node
	definitionNode()
}

// ExecutableDefinition is an operation or a fragment.
type ExecutableDefinition interface {
	Definition
	executableDefinitionNode()
}

// TypeSystemDefinition is a schema, type or directive definition.
type TypeSystemDefinition interface {
	Definition
	typeSystemDefinitionNode()
}

// TypeSystemExtension is an extend schema or extend type definition.
type TypeSystemExtension interface {
	Definition
	typeSystemExtensionNode()
}

// OperationType is the kind of an operation: query, mutation or subscription.
type OperationType string

const (
	Query        OperationType = "query"
	Mutation     OperationType = "mutation"
	Subscription OperationType = "subscription"
)

// OperationDefinition represents a GraphQL operation (query, mutation, or subscription).
type OperationDefinition struct {
	Operation           OperationType         // query, mutation or subscription
	Name                string                // Optional operation name
	VariableDefinitions []*VariableDefinition // Variable definitions for this operation
	Directives          []*Directive
	SelectionSet        *SelectionSet // The fields to select
}

// FragmentDefinition represents a named fragment.
type FragmentDefinition struct {
	Name                string
	VariableDefinitions []*VariableDefinition
	TypeCondition       *NamedType
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

// VariableDefinition represents a variable definition in an operation.
type VariableDefinition struct {
	Variable     string // Variable name (without $)
	Type         Type   // The type of the variable
	DefaultValue Value  // nil when absent
	Directives   []*Directive
}

// SelectionSet represents a set of fields to select. It always holds at
// least one selection.
type SelectionSet struct {
	Selections []Selection
}

// Selection is a field, a fragment spread or an inline fragment.
type Selection interface {
	Node
	selectionNode()
}

// Field represents a single field selection in a GraphQL query.
type Field struct {
	Alias        string      // Optional alias
	Name         string      // Field name
	Arguments    []*Argument // Field arguments
	Directives   []*Directive
	SelectionSet *SelectionSet // Nested selections (if any)
}

// FragmentSpread represents ...Name.
type FragmentSpread struct {
	Name       string
	Directives []*Directive
}

// InlineFragment represents ... on Type { ... }. TypeCondition is nil when
// the fragment has none.
type InlineFragment struct {
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

// Argument represents an argument passed to a field or directive.
type Argument struct {
	Name  string
	Value Value
}

// Directive represents @name(arguments).
type Directive struct {
	Name      string
	Arguments []*Argument
}

func (*OperationDefinition) Kind() Kind { return KindOperationDefinition }
func (*FragmentDefinition) Kind() Kind  { return KindFragmentDefinition }
func (*VariableDefinition) Kind() Kind  { return KindVariableDefinition }
func (*SelectionSet) Kind() Kind        { return KindSelectionSet }
func (*Field) Kind() Kind               { return KindField }
func (*FragmentSpread) Kind() Kind      { return KindFragmentSpread }
func (*InlineFragment) Kind() Kind      { return KindInlineFragment }
func (*Argument) Kind() Kind            { return KindArgument }
func (*Directive) Kind() Kind           { return KindDirective }

func (*OperationDefinition) definitionNode()           {}
func (*OperationDefinition) executableDefinitionNode() {}
func (*FragmentDefinition) definitionNode()            {}
func (*FragmentDefinition) executableDefinitionNode()  {}

func (*Field) selectionNode()          {}
func (*FragmentSpread) selectionNode() {}
func (*InlineFragment) selectionNode() {}
