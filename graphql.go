// Package graphql provides a GraphQL lexer and parser for Go.
// It turns source text into tokens and tokens into a typed syntax tree.
package graphql

import (
	"github.com/Protocol-Lattice/gqlparse/ast"
	"github.com/Protocol-Lattice/gqlparse/lexer"
	"github.com/Protocol-Lattice/gqlparse/parser"
	"github.com/Protocol-Lattice/gqlparse/token"
)

// Token types
type (
	TokenType = token.TokenType
	Token     = token.Token
)

// Token constants
const (
	ILLEGAL     = token.ILLEGAL
	SYMBOL      = token.SYMBOL
	DESCRIPTION = token.DESCRIPTION
	STRING      = token.STRING
	FLOAT       = token.FLOAT
	INT         = token.INT
	BOOLEAN     = token.BOOLEAN
	NULL        = token.NULL
	KEYWORD     = token.KEYWORD
	IDENT       = token.IDENT
)

// AST types
type (
	Node                 = ast.Node
	Document             = ast.Document
	Definition           = ast.Definition
	OperationDefinition  = ast.OperationDefinition
	FragmentDefinition   = ast.FragmentDefinition
	VariableDefinition   = ast.VariableDefinition
	Type                 = ast.Type
	SelectionSet         = ast.SelectionSet
	Selection            = ast.Selection
	Field                = ast.Field
	Argument             = ast.Argument
	Directive            = ast.Directive
	Value                = ast.Value
	TypeDefinition       = ast.TypeDefinition
	ObjectTypeDefinition = ast.ObjectTypeDefinition
	EnumTypeDefinition   = ast.EnumTypeDefinition
)

// Lexer type
type Lexer = lexer.Lexer

// Parser type
type Parser = parser.Parser

// UnexpectedTokenError is the error returned for every parse failure.
type UnexpectedTokenError = parser.UnexpectedTokenError

// ErrUnexpectedToken matches any parse failure under errors.Is.
var ErrUnexpectedToken = parser.ErrUnexpectedToken

// NewLexer creates a new lexer for the given GraphQL source.
func NewLexer(input string) *Lexer {
	return lexer.New(input)
}

// NewParser creates a new parser over a lexed token sequence.
func NewParser(tokens []Token) *Parser {
	return parser.New(tokens)
}

// Tokenize lexes the whole of input.
func Tokenize(input string) []Token {
	return lexer.Tokenize(input)
}

// Parse lexes and parses input into a document.
func Parse(input string) (*Document, error) {
	return parser.ParseString(input)
}
