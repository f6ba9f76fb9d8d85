package parser

import (
	"github.com/Protocol-Lattice/gqlparse/ast"
	"github.com/Protocol-Lattice/gqlparse/token"
)

// tryValue parses a value. The alternatives are tried in a fixed order and
// the first match wins.
func (p *Parser) tryValue() (ast.Value, error) {
	return first(
		p.tryIntValue,
		p.tryFloatValue,
		p.tryStringValue,
		p.tryBooleanValue,
		p.tryNullValue,
		p.tryEnumValue,
		p.tryListValue,
		p.tryObjectValue,
		p.tryVariable,
	)
}

func (p *Parser) parseValue() (ast.Value, error) {
	v, err := p.tryValue()
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, p.unexpected()
	}
	return v, nil
}

// literal consumes the current token when it has type t.
func (p *Parser) literal(t token.TokenType) (token.Token, bool) {
	tok := p.curToken()
	if tok == nil || tok.Type != t {
		return token.Token{}, false
	}
	p.nextToken()
	return *tok, true
}

func (p *Parser) tryIntValue() (ast.Value, error) {
	if tok, ok := p.literal(token.INT); ok {
		return &ast.IntValue{Value: tok.Int}, nil
	}
	return nil, nil
}

func (p *Parser) tryFloatValue() (ast.Value, error) {
	if tok, ok := p.literal(token.FLOAT); ok {
		return &ast.FloatValue{Value: tok.Float}, nil
	}
	return nil, nil
}

// tryStringValue accepts both "string" and """block""" literals.
func (p *Parser) tryStringValue() (ast.Value, error) {
	if s, ok := p.tryString(); ok {
		return &ast.StringValue{Value: s}, nil
	}
	return nil, nil
}

func (p *Parser) tryString() (string, bool) {
	if tok, ok := p.literal(token.STRING); ok {
		return tok.Text, true
	}
	if tok, ok := p.literal(token.DESCRIPTION); ok {
		return tok.Text, true
	}
	return "", false
}

func (p *Parser) tryBooleanValue() (ast.Value, error) {
	if tok, ok := p.literal(token.BOOLEAN); ok {
		return &ast.BooleanValue{Value: tok.Bool}, nil
	}
	return nil, nil
}

func (p *Parser) tryNullValue() (ast.Value, error) {
	if _, ok := p.literal(token.NULL); ok {
		return &ast.NullValue{}, nil
	}
	return nil, nil
}

// tryEnumValue parses a bare identifier. true, false and null never get
// here because the lexer turns them into literals.
func (p *Parser) tryEnumValue() (ast.Value, error) {
	if name, ok := p.tryIdentifier(); ok {
		return &ast.EnumValue{Name: name}, nil
	}
	return nil, nil
}

// tryListValue parses [value, ...]. The list may be empty.
func (p *Parser) tryListValue() (ast.Value, error) {
	values, ok, err := nested(p, token.LBRACKET, token.RBRACKET, false, p.tryValue)
	if err != nil || !ok {
		return nil, err
	}
	return &ast.ListValue{Values: values}, nil
}

// tryObjectValue parses {name: value, ...}. The object may be empty.
func (p *Parser) tryObjectValue() (ast.Value, error) {
	fields, ok, err := nested(p, token.LBRACE, token.RBRACE, false, p.tryObjectField)
	if err != nil || !ok {
		return nil, err
	}
	return &ast.ObjectValue{Fields: fields}, nil
}

func (p *Parser) tryObjectField() (*ast.ObjectField, error) {
	name, ok := p.tryName()
	if !ok {
		return nil, nil
	}
	if err := p.expectSymbol(token.COLON); err != nil {
		return nil, err
	}
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &ast.ObjectField{Name: name, Value: value}, nil
}

// tryVariable parses $name.
func (p *Parser) tryVariable() (ast.Value, error) {
	if !p.skipSymbol(token.DOLLAR) {
		return nil, nil
	}
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Name: name}, nil
}

// tryType parses a type reference. Non-null applies to the outermost wrapper
// only: T!, [T], [T]!, [T!]!.
func (p *Parser) tryType() (ast.Type, error) {
	return first(p.tryNamedOrNonNullType, p.tryListType)
}

func (p *Parser) parseType() (ast.Type, error) {
	t, err := p.tryType()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, p.unexpected()
	}
	return t, nil
}

func (p *Parser) tryNamedOrNonNullType() (ast.Type, error) {
	name, ok := p.tryIdentifier()
	if !ok {
		return nil, nil
	}
	if p.skipSymbol(token.BANG) {
		return &ast.NonNullNamedType{Name: name}, nil
	}
	return &ast.NamedType{Name: name}, nil
}

func (p *Parser) tryListType() (ast.Type, error) {
	if !p.peekSymbol(token.LBRACKET) {
		return nil, nil
	}
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.nextToken()
	inner, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(token.RBRACKET); err != nil {
		return nil, err
	}
	if p.skipSymbol(token.BANG) {
		return &ast.NonNullListType{Type: inner}, nil
	}
	return &ast.ListType{Type: inner}, nil
}

// parseNamedType parses a bare type name, as used by type conditions,
// interface lists, union members and schema operation types.
func (p *Parser) parseNamedType() (*ast.NamedType, error) {
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	return &ast.NamedType{Name: name}, nil
}
