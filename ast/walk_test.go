package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Protocol-Lattice/gqlparse/ast"
	"github.com/Protocol-Lattice/gqlparse/parser"
)

func kinds(t *testing.T, src string, f func(ast.Node) bool) []ast.Kind {
	t.Helper()
	doc, err := parser.ParseString(src)
	require.NoError(t, err)

	var out []ast.Kind
	ast.Inspect(doc, func(n ast.Node) bool {
		out = append(out, n.Kind())
		if f != nil {
			return f(n)
		}
		return true
	})
	return out
}

func TestInspectSourceOrder(t *testing.T) {
	got := kinds(t, `query ($id: ID = 1) { user(id: $id) { ... on Admin { level } } }`, nil)
	assert.Equal(t, []ast.Kind{
		ast.KindDocument,
		ast.KindOperationDefinition,
		ast.KindVariableDefinition,
		ast.KindNamedType,
		ast.KindIntValue,
		ast.KindSelectionSet,
		ast.KindField,
		ast.KindArgument,
		ast.KindVariable,
		ast.KindSelectionSet,
		ast.KindInlineFragment,
		ast.KindNamedType,
		ast.KindSelectionSet,
		ast.KindField,
	}, got)
}

func TestInspectSkipsChildren(t *testing.T) {
	got := kinds(t, `{ a { b c } d }`, func(n ast.Node) bool {
		f, ok := n.(*ast.Field)
		return !ok || f.Name != "a"
	})
	assert.Equal(t, []ast.Kind{
		ast.KindDocument,
		ast.KindOperationDefinition,
		ast.KindSelectionSet,
		ast.KindField,
		ast.KindField,
	}, got)
}

func TestInspectTypeSystem(t *testing.T) {
	got := kinds(t, `"d" type A implements B @k { f(x: [Int!]): String } enum E { V } directive @d(a: Int) on FIELD`, nil)
	assert.Equal(t, []ast.Kind{
		ast.KindDocument,
		ast.KindObjectTypeDefinition,
		ast.KindNamedType,
		ast.KindDirective,
		ast.KindFieldDefinition,
		ast.KindInputValueDefinition,
		ast.KindListType,
		ast.KindNonNullNamedType,
		ast.KindNamedType,
		ast.KindEnumTypeDefinition,
		ast.KindEnumValueDefinition,
		ast.KindDirectiveDefinition,
		ast.KindInputValueDefinition,
		ast.KindNamedType,
	}, got)
}

func TestInspectExtensionNodes(t *testing.T) {
	ext := &ast.ObjectTypeExtension{
		Name:       "Query",
		Interfaces: []*ast.NamedType{{Name: "Node"}},
		Fields:     []*ast.FieldDefinition{{Name: "me", Type: &ast.NamedType{Name: "User"}}},
	}
	var got []ast.Kind
	ast.Inspect(ext, func(n ast.Node) bool {
		got = append(got, n.Kind())
		return true
	})
	assert.Equal(t, []ast.Kind{
		ast.KindObjectTypeExtension,
		ast.KindNamedType,
		ast.KindFieldDefinition,
		ast.KindNamedType,
	}, got)
}

func TestInspectNil(t *testing.T) {
	called := false
	ast.Inspect(nil, func(ast.Node) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

type unknownNode struct{}

func (unknownNode) Kind() ast.Kind { return "Unknown" }

func TestInspectPanicsOnUnknownNode(t *testing.T) {
	assert.Panics(t, func() {
		ast.Inspect(unknownNode{}, func(ast.Node) bool { return true })
	})
}
