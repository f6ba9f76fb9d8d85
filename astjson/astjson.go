// Package astjson projects tokens and AST nodes onto plain JSON values so a
// parsed document can be handed to validators and executors in other
// processes.
//
// Every node becomes an object with a "kind" field naming its ast.Kind.
// Optional children that are absent are encoded as null; lists are always
// arrays.
package astjson

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/Protocol-Lattice/gqlparse/ast"
	"github.com/Protocol-Lattice/gqlparse/parser"
	"github.com/Protocol-Lattice/gqlparse/token"
)

// Object is a single encoded node or token.
type Object = map[string]any

// Marshal encodes v, typically the result of Document or Tokens.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Document projects a parsed document.
func Document(doc *ast.Document) Object {
	return Node(doc).(Object)
}

// Node projects any AST node. It panics on a node type it does not know.
func Node(node ast.Node) any {
	if node == nil {
		return nil
	}
	o := Object{"kind": string(node.Kind())}

	switch n := node.(type) {
	case *ast.Document:
		o["definitions"] = list(n.Definitions)

	case *ast.OperationDefinition:
		o["operation"] = string(n.Operation)
		o["name"] = optionalName(n.Name)
		o["variableDefinitions"] = list(n.VariableDefinitions)
		o["directives"] = list(n.Directives)
		o["selectionSet"] = selectionSet(n.SelectionSet)
	case *ast.FragmentDefinition:
		o["name"] = n.Name
		o["variableDefinitions"] = list(n.VariableDefinitions)
		o["typeCondition"] = namedType(n.TypeCondition)
		o["directives"] = list(n.Directives)
		o["selectionSet"] = selectionSet(n.SelectionSet)
	case *ast.VariableDefinition:
		o["variable"] = n.Variable
		o["type"] = Node(n.Type)
		o["defaultValue"] = Node(n.DefaultValue)
		o["directives"] = list(n.Directives)
	case *ast.SelectionSet:
		o["selections"] = list(n.Selections)
	case *ast.Field:
		o["alias"] = optionalName(n.Alias)
		o["name"] = n.Name
		o["arguments"] = list(n.Arguments)
		o["directives"] = list(n.Directives)
		o["selectionSet"] = selectionSet(n.SelectionSet)
	case *ast.FragmentSpread:
		o["name"] = n.Name
		o["directives"] = list(n.Directives)
	case *ast.InlineFragment:
		o["typeCondition"] = namedType(n.TypeCondition)
		o["directives"] = list(n.Directives)
		o["selectionSet"] = selectionSet(n.SelectionSet)
	case *ast.Argument:
		o["name"] = n.Name
		o["value"] = Node(n.Value)
	case *ast.Directive:
		o["name"] = n.Name
		o["arguments"] = list(n.Arguments)

	case *ast.IntValue:
		o["value"] = n.Value
	case *ast.FloatValue:
		o["value"] = n.Value
	case *ast.StringValue:
		o["value"] = n.Value
	case *ast.BooleanValue:
		o["value"] = n.Value
	case *ast.NullValue:
	case *ast.EnumValue:
		o["name"] = n.Name
	case *ast.ListValue:
		o["values"] = list(n.Values)
	case *ast.ObjectValue:
		o["fields"] = list(n.Fields)
	case *ast.ObjectField:
		o["name"] = n.Name
		o["value"] = Node(n.Value)
	case *ast.Variable:
		o["name"] = n.Name

	case *ast.NamedType:
		o["name"] = n.Name
	case *ast.NonNullNamedType:
		o["name"] = n.Name
	case *ast.ListType:
		o["type"] = Node(n.Type)
	case *ast.NonNullListType:
		o["type"] = Node(n.Type)

	case *ast.SchemaDefinition:
		o["description"] = n.Description
		o["directives"] = list(n.Directives)
		o["operationTypes"] = list(n.OperationTypes)
	case *ast.OperationTypeDefinition:
		o["operation"] = string(n.Operation)
		o["type"] = namedType(n.Type)
	case *ast.ScalarTypeDefinition:
		o["description"] = n.Description
		o["name"] = n.Name
		o["directives"] = list(n.Directives)
	case *ast.ObjectTypeDefinition:
		o["description"] = n.Description
		o["name"] = n.Name
		o["interfaces"] = list(n.Interfaces)
		o["directives"] = list(n.Directives)
		o["fields"] = list(n.Fields)
	case *ast.InterfaceTypeDefinition:
		o["description"] = n.Description
		o["name"] = n.Name
		o["interfaces"] = list(n.Interfaces)
		o["directives"] = list(n.Directives)
		o["fields"] = list(n.Fields)
	case *ast.UnionTypeDefinition:
		o["description"] = n.Description
		o["name"] = n.Name
		o["directives"] = list(n.Directives)
		o["types"] = list(n.Types)
	case *ast.EnumTypeDefinition:
		o["description"] = n.Description
		o["name"] = n.Name
		o["directives"] = list(n.Directives)
		o["values"] = list(n.Values)
	case *ast.InputObjectTypeDefinition:
		o["description"] = n.Description
		o["name"] = n.Name
		o["directives"] = list(n.Directives)
		o["fields"] = list(n.Fields)
	case *ast.DirectiveDefinition:
		o["description"] = n.Description
		o["name"] = n.Name
		o["arguments"] = list(n.Arguments)
		o["repeatable"] = n.Repeatable
		o["locations"] = n.Locations
	case *ast.FieldDefinition:
		o["description"] = n.Description
		o["name"] = n.Name
		o["arguments"] = list(n.Arguments)
		o["type"] = Node(n.Type)
		o["directives"] = list(n.Directives)
	case *ast.InputValueDefinition:
		o["description"] = n.Description
		o["name"] = n.Name
		o["type"] = Node(n.Type)
		o["defaultValue"] = Node(n.DefaultValue)
		o["directives"] = list(n.Directives)
	case *ast.EnumValueDefinition:
		o["description"] = n.Description
		o["name"] = n.Name
		o["directives"] = list(n.Directives)

	case *ast.SchemaExtension:
		o["directives"] = list(n.Directives)
		o["operationTypes"] = list(n.OperationTypes)
	case *ast.ScalarTypeExtension:
		o["name"] = n.Name
		o["directives"] = list(n.Directives)
	case *ast.ObjectTypeExtension:
		o["name"] = n.Name
		o["interfaces"] = list(n.Interfaces)
		o["directives"] = list(n.Directives)
		o["fields"] = list(n.Fields)
	case *ast.InterfaceTypeExtension:
		o["name"] = n.Name
		o["interfaces"] = list(n.Interfaces)
		o["directives"] = list(n.Directives)
		o["fields"] = list(n.Fields)
	case *ast.UnionTypeExtension:
		o["name"] = n.Name
		o["directives"] = list(n.Directives)
		o["types"] = list(n.Types)
	case *ast.EnumTypeExtension:
		o["name"] = n.Name
		o["directives"] = list(n.Directives)
		o["values"] = list(n.Values)
	case *ast.InputObjectTypeExtension:
		o["name"] = n.Name
		o["directives"] = list(n.Directives)
		o["fields"] = list(n.Fields)

	default:
		panic(fmt.Sprintf("astjson: unexpected node type %T", n))
	}
	return o
}

func list[T ast.Node](nodes []T) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Node(n))
	}
	return out
}

func optionalName(name string) any {
	if name == "" {
		return nil
	}
	return name
}

// selectionSet and namedType keep a nil pointer from turning into a non-nil
// ast.Node interface.
func selectionSet(s *ast.SelectionSet) any {
	if s == nil {
		return nil
	}
	return Node(s)
}

func namedType(t *ast.NamedType) any {
	if t == nil {
		return nil
	}
	return Node(t)
}

// Token projects a single token.
func Token(t token.Token) Object {
	o := Object{"type": string(t.Type)}
	switch t.Type {
	case token.SYMBOL:
		o["value"] = string(t.Symbol)
	case token.KEYWORD:
		o["value"] = string(t.Keyword)
	case token.IDENT, token.STRING, token.DESCRIPTION:
		o["value"] = t.Text
	case token.FLOAT:
		o["value"] = t.Float
	case token.INT:
		o["value"] = t.Int
	case token.BOOLEAN:
		o["value"] = t.Bool
	case token.NULL:
		o["value"] = nil
	case token.ILLEGAL:
		o["value"] = string(t.Char)
	}
	return o
}

// Tokens projects a token sequence.
func Tokens(tokens []token.Token) []Object {
	out := make([]Object, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, Token(t))
	}
	return out
}

// Error projects a parse failure. An *parser.UnexpectedTokenError carries
// its token, or a null token when the input ended early.
func Error(err error) Object {
	o := Object{"message": err.Error()}
	var unexpected *parser.UnexpectedTokenError
	if errors.As(err, &unexpected) {
		if unexpected.Token != nil {
			o["token"] = Token(*unexpected.Token)
		} else {
			o["token"] = nil
		}
	}
	return o
}
