package ast

import "fmt"

// Inspect traverses the tree rooted at node in depth-first source order. It
// calls f for every node; if f returns false the children of that node are
// skipped.
//
// Inspect panics on a node type it does not know, so adding a node type
// without teaching Inspect about it fails loudly.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *Document:
		for _, d := range n.Definitions {
			Inspect(d, f)
		}

	case *OperationDefinition:
		inspectVariables(n.VariableDefinitions, f)
		inspectDirectives(n.Directives, f)
		inspectSelectionSet(n.SelectionSet, f)
	case *FragmentDefinition:
		inspectVariables(n.VariableDefinitions, f)
		inspectNamed(n.TypeCondition, f)
		inspectDirectives(n.Directives, f)
		inspectSelectionSet(n.SelectionSet, f)
	case *VariableDefinition:
		Inspect(n.Type, f)
		Inspect(n.DefaultValue, f)
		inspectDirectives(n.Directives, f)
	case *SelectionSet:
		for _, s := range n.Selections {
			Inspect(s, f)
		}
	case *Field:
		inspectArguments(n.Arguments, f)
		inspectDirectives(n.Directives, f)
		inspectSelectionSet(n.SelectionSet, f)
	case *FragmentSpread:
		inspectDirectives(n.Directives, f)
	case *InlineFragment:
		inspectNamed(n.TypeCondition, f)
		inspectDirectives(n.Directives, f)
		inspectSelectionSet(n.SelectionSet, f)
	case *Argument:
		Inspect(n.Value, f)
	case *Directive:
		inspectArguments(n.Arguments, f)

	case *IntValue, *FloatValue, *StringValue, *BooleanValue, *NullValue, *EnumValue, *Variable:
		// leaves
	case *ListValue:
		for _, v := range n.Values {
			Inspect(v, f)
		}
	case *ObjectValue:
		for _, field := range n.Fields {
			Inspect(field, f)
		}
	case *ObjectField:
		Inspect(n.Value, f)

	case *NamedType, *NonNullNamedType:
		// leaves
	case *ListType:
		Inspect(n.Type, f)
	case *NonNullListType:
		Inspect(n.Type, f)

	case *SchemaDefinition:
		inspectDirectives(n.Directives, f)
		for _, o := range n.OperationTypes {
			Inspect(o, f)
		}
	case *OperationTypeDefinition:
		inspectNamed(n.Type, f)
	case *ScalarTypeDefinition:
		inspectDirectives(n.Directives, f)
	case *ObjectTypeDefinition:
		inspectNamedList(n.Interfaces, f)
		inspectDirectives(n.Directives, f)
		inspectFields(n.Fields, f)
	case *InterfaceTypeDefinition:
		inspectNamedList(n.Interfaces, f)
		inspectDirectives(n.Directives, f)
		inspectFields(n.Fields, f)
	case *UnionTypeDefinition:
		inspectDirectives(n.Directives, f)
		inspectNamedList(n.Types, f)
	case *EnumTypeDefinition:
		inspectDirectives(n.Directives, f)
		inspectEnumValues(n.Values, f)
	case *InputObjectTypeDefinition:
		inspectDirectives(n.Directives, f)
		inspectInputValues(n.Fields, f)
	case *DirectiveDefinition:
		inspectInputValues(n.Arguments, f)
	case *FieldDefinition:
		inspectInputValues(n.Arguments, f)
		Inspect(n.Type, f)
		inspectDirectives(n.Directives, f)
	case *InputValueDefinition:
		Inspect(n.Type, f)
		Inspect(n.DefaultValue, f)
		inspectDirectives(n.Directives, f)
	case *EnumValueDefinition:
		inspectDirectives(n.Directives, f)

	case *SchemaExtension:
		inspectDirectives(n.Directives, f)
		for _, o := range n.OperationTypes {
			Inspect(o, f)
		}
	case *ScalarTypeExtension:
		inspectDirectives(n.Directives, f)
	case *ObjectTypeExtension:
		inspectNamedList(n.Interfaces, f)
		inspectDirectives(n.Directives, f)
		inspectFields(n.Fields, f)
	case *InterfaceTypeExtension:
		inspectNamedList(n.Interfaces, f)
		inspectDirectives(n.Directives, f)
		inspectFields(n.Fields, f)
	case *UnionTypeExtension:
		inspectDirectives(n.Directives, f)
		inspectNamedList(n.Types, f)
	case *EnumTypeExtension:
		inspectDirectives(n.Directives, f)
		inspectEnumValues(n.Values, f)
	case *InputObjectTypeExtension:
		inspectDirectives(n.Directives, f)
		inspectInputValues(n.Fields, f)

	default:
		panic(fmt.Sprintf("ast.Inspect: unexpected node type %T", n))
	}
}

func inspectSelectionSet(s *SelectionSet, f func(Node) bool) {
	if s != nil {
		Inspect(s, f)
	}
}

func inspectNamed(t *NamedType, f func(Node) bool) {
	if t != nil {
		Inspect(t, f)
	}
}

func inspectNamedList(list []*NamedType, f func(Node) bool) {
	for _, t := range list {
		Inspect(t, f)
	}
}

func inspectVariables(list []*VariableDefinition, f func(Node) bool) {
	for _, v := range list {
		Inspect(v, f)
	}
}

func inspectDirectives(list []*Directive, f func(Node) bool) {
	for _, d := range list {
		Inspect(d, f)
	}
}

func inspectArguments(list []*Argument, f func(Node) bool) {
	for _, a := range list {
		Inspect(a, f)
	}
}

func inspectFields(list []*FieldDefinition, f func(Node) bool) {
	for _, d := range list {
		Inspect(d, f)
	}
}

func inspectInputValues(list []*InputValueDefinition, f func(Node) bool) {
	for _, d := range list {
		Inspect(d, f)
	}
}

func inspectEnumValues(list []*EnumValueDefinition, f func(Node) bool) {
	for _, d := range list {
		Inspect(d, f)
	}
}
