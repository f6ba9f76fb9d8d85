package graphql_test

import (
	"errors"
	"testing"

	graphql "github.com/Protocol-Lattice/gqlparse"
)

func TestLexerIllegalCharacter(t *testing.T) {
	lexer := graphql.NewLexer("\x01")
	tok, ok := lexer.NextToken()
	if !ok {
		t.Fatal("expected a token")
	}
	if tok.Type != graphql.ILLEGAL {
		t.Errorf("expected ILLEGAL token, got %s", tok.Type)
	}
	if _, ok := lexer.NextToken(); ok {
		t.Error("expected end of input")
	}
}

func TestLexerStringToken(t *testing.T) {
	tokens := graphql.Tokenize(`"hello world"`)
	if len(tokens) != 1 {
		t.Fatalf("expected one token, got %d", len(tokens))
	}
	if tokens[0].Type != graphql.STRING || tokens[0].Text != "hello world" {
		t.Errorf("expected string token with text 'hello world', got %s", tokens[0])
	}
}

func TestOperationDefinitionImplicitQuery(t *testing.T) {
	doc, err := graphql.Parse(`{ hello }`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Definitions) != 1 {
		t.Fatal("expected one definition for implicit query")
	}
	op, ok := doc.Definitions[0].(*graphql.OperationDefinition)
	if !ok {
		t.Fatal("expected operation definition")
	}
	if op.Operation != "query" {
		t.Errorf("expected operation to be 'query', got %q", op.Operation)
	}
}

func TestOperationDefinitionWithNameAndVariables(t *testing.T) {
	parser := graphql.NewParser(graphql.Tokenize(`query MyQuery($id: Int) { hello }`))
	doc, err := parser.ParseDocument()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	op, ok := doc.Definitions[0].(*graphql.OperationDefinition)
	if !ok {
		t.Fatal("expected an operation definition")
	}
	if op.Name != "MyQuery" {
		t.Errorf("expected operation name 'MyQuery', got %q", op.Name)
	}
	if len(op.VariableDefinitions) != 1 {
		t.Fatalf("expected one variable definition, got %d", len(op.VariableDefinitions))
	}
	if op.VariableDefinitions[0].Variable != "id" {
		t.Errorf("expected variable name 'id', got %q", op.VariableDefinitions[0].Variable)
	}
}

func TestParseErrorIsUnexpectedToken(t *testing.T) {
	doc, err := graphql.Parse(`{ hello`)
	if doc != nil {
		t.Errorf("expected no document, got %v", doc)
	}
	if !errors.Is(err, graphql.ErrUnexpectedToken) {
		t.Fatalf("expected ErrUnexpectedToken, got %v", err)
	}
	var unexpected *graphql.UnexpectedTokenError
	if !errors.As(err, &unexpected) || unexpected.Token != nil {
		t.Errorf("expected end of input error, got %v", err)
	}
}
