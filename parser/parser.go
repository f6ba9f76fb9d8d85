package parser

import (
	"github.com/Protocol-Lattice/gqlparse/ast"
	"github.com/Protocol-Lattice/gqlparse/lexer"
	"github.com/Protocol-Lattice/gqlparse/token"
)

// Parser parses a GraphQL token sequence into an AST.
//
// Every grammar rule is a try method: when the current token cannot start
// the rule it returns a nil node and a nil error without consuming anything.
// Once a rule has consumed its first token it is committed, and any later
// mismatch is reported as an *UnexpectedTokenError that aborts the parse.
//
// A Parser must not be used from more than one goroutine at a time.
type Parser struct {
	tokens   []token.Token // The complete token sequence
	position int           // Index of the current token
	depth    int           // Open selection sets, lists and objects
	maxDepth int
}

// DefaultMaxDepth bounds the nesting of selection sets, list and object
// values and list types unless MaxDepth says otherwise.
const DefaultMaxDepth = 256

// Option configures a Parser.
type Option func(*Parser)

// MaxDepth sets how deeply selection sets, list and object values and list
// types may nest. Values below one select DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// New creates a new Parser over a fully lexed token sequence.
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseString lexes src to exhaustion and parses the result.
func ParseString(src string, opts ...Option) (*ast.Document, error) {
	return New(lexer.Tokenize(src), opts...).ParseDocument()
}

// curToken returns the current token, or nil once the sequence is exhausted.
func (p *Parser) curToken() *token.Token {
	if p.position >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.position]
}

// nextToken advances the parser to the next token.
func (p *Parser) nextToken() {
	p.position++
}

func (p *Parser) peekSymbol(kind token.SymbolKind) bool {
	tok := p.curToken()
	return tok != nil && tok.IsSymbol(kind)
}

func (p *Parser) peekKeyword(kind token.KeywordKind) bool {
	tok := p.curToken()
	return tok != nil && tok.IsKeyword(kind)
}

// skipSymbol consumes the current token if it is the given punctuator.
func (p *Parser) skipSymbol(kind token.SymbolKind) bool {
	if p.peekSymbol(kind) {
		p.nextToken()
		return true
	}
	return false
}

func (p *Parser) skipKeyword(kind token.KeywordKind) bool {
	if p.peekKeyword(kind) {
		p.nextToken()
		return true
	}
	return false
}

func (p *Parser) expectSymbol(kind token.SymbolKind) error {
	if !p.skipSymbol(kind) {
		return p.unexpected()
	}
	return nil
}

func (p *Parser) expectKeyword(kind token.KeywordKind) error {
	if !p.skipKeyword(kind) {
		return p.unexpected()
	}
	return nil
}

// unexpected builds the error for the current token.
func (p *Parser) unexpected() error {
	tok := p.curToken()
	if tok == nil {
		return &UnexpectedTokenError{}
	}
	t := *tok
	return &UnexpectedTokenError{Token: &t}
}

// enter opens one nesting level at the current token, which is rejected once
// the limit is passed. Every successful enter is paired with a leave.
func (p *Parser) enter() error {
	if p.depth >= p.maxDepth {
		return p.unexpected()
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// nested runs delimited one nesting level deeper. The level is only opened
// when the current token is opening, so a mismatch still consumes nothing.
func nested[T comparable](p *Parser, opening, closing token.SymbolKind, atLeastOne bool, item func() (T, error)) ([]T, bool, error) {
	if !p.peekSymbol(opening) {
		return nil, false, nil
	}
	if err := p.enter(); err != nil {
		return nil, true, err
	}
	defer p.leave()
	return delimited(p, opening, closing, atLeastOne, item)
}

// tryIdentifier consumes an IDENT token.
func (p *Parser) tryIdentifier() (string, bool) {
	tok := p.curToken()
	if tok == nil || tok.Type != token.IDENT {
		return "", false
	}
	p.nextToken()
	return tok.Text, true
}

// tryName consumes an IDENT or a KEYWORD token. Keywords are not reserved in
// GraphQL names, so fields, arguments and the like may be called "type" or
// "input".
func (p *Parser) tryName() (string, bool) {
	tok := p.curToken()
	if tok == nil {
		return "", false
	}
	switch tok.Type {
	case token.IDENT:
		p.nextToken()
		return tok.Text, true
	case token.KEYWORD:
		p.nextToken()
		return string(tok.Keyword), true
	}
	return "", false
}

func (p *Parser) expectName() (string, error) {
	name, ok := p.tryName()
	if !ok {
		return "", p.unexpected()
	}
	return name, nil
}

func (p *Parser) expectIdentifier() (string, error) {
	name, ok := p.tryIdentifier()
	if !ok {
		return "", p.unexpected()
	}
	return name, nil
}

// ParseDocument parses the whole token sequence. It returns either a document
// holding every definition in source order or the first error; there is no
// partial result.
func (p *Parser) ParseDocument() (*ast.Document, error) {
	doc := &ast.Document{Definitions: []ast.Definition{}}
	for p.curToken() != nil {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, def)
	}
	return doc, nil
}

// parseDefinition parses a single top-level definition.
func (p *Parser) parseDefinition() (ast.Definition, error) {
	def, err := first(
		p.tryExecutableDefinition,
		p.tryTypeSystemDefinition,
		p.tryTypeSystemExtension,
	)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, p.unexpected()
	}
	return def, nil
}

// first runs rules in order and returns the first match. Rules report "no
// match" with the zero value, so interface-typed rules must return an untyped
// nil.
func first[T comparable](rules ...func() (T, error)) (T, error) {
	var none T
	for _, rule := range rules {
		v, err := rule()
		if err != nil {
			return none, err
		}
		if v != none {
			return v, nil
		}
	}
	return none, nil
}

// many applies item until it stops matching. The result is never nil.
func many[T comparable](item func() (T, error)) ([]T, error) {
	var none T
	items := []T{}
	for {
		v, err := item()
		if err != nil {
			return nil, err
		}
		if v == none {
			return items, nil
		}
		items = append(items, v)
	}
}

// delimited parses opening item* closing. The boolean result is false, with
// nothing consumed, when the current token is not opening. With atLeastOne an
// empty list is rejected at the token that ended it.
func delimited[T comparable](p *Parser, opening, closing token.SymbolKind, atLeastOne bool, item func() (T, error)) ([]T, bool, error) {
	if !p.skipSymbol(opening) {
		return nil, false, nil
	}
	items, err := many(item)
	if err != nil {
		return nil, true, err
	}
	if atLeastOne && len(items) == 0 {
		return nil, true, p.unexpected()
	}
	if err := p.expectSymbol(closing); err != nil {
		return nil, true, err
	}
	return items, true, nil
}

// optionalList is delimited for lists that may be left out entirely; an
// absent list is empty.
func optionalList[T comparable](p *Parser, opening, closing token.SymbolKind, item func() (T, error)) ([]T, error) {
	items, ok, err := delimited(p, opening, closing, true, item)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}
	return items, nil
}
