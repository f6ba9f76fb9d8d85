package parser

import (
	"github.com/Protocol-Lattice/gqlparse/ast"
	"github.com/Protocol-Lattice/gqlparse/token"
)

// tryTypeSystemDefinition parses an optionally described schema, type or
// directive definition. A description commits the rule: it must be followed
// by one of those definitions.
func (p *Parser) tryTypeSystemDefinition() (ast.Definition, error) {
	desc := p.tryDescription()

	def, err := first(
		func() (ast.Definition, error) { return p.trySchemaDefinition(desc) },
		func() (ast.Definition, error) { return p.tryScalarTypeDefinition(desc) },
		func() (ast.Definition, error) { return p.tryObjectTypeDefinition(desc) },
		func() (ast.Definition, error) { return p.tryInterfaceTypeDefinition(desc) },
		func() (ast.Definition, error) { return p.tryUnionTypeDefinition(desc) },
		func() (ast.Definition, error) { return p.tryEnumTypeDefinition(desc) },
		func() (ast.Definition, error) { return p.tryInputObjectTypeDefinition(desc) },
		func() (ast.Definition, error) { return p.tryDirectiveDefinition(desc) },
	)
	if err != nil {
		return nil, err
	}
	if def == nil && desc != nil {
		return nil, p.unexpected()
	}
	return def, nil
}

// tryTypeSystemExtension is where extend schema and extend type would be
// parsed. Extensions are not supported, so it never matches and a leading
// extend keyword is reported as unexpected.
func (p *Parser) tryTypeSystemExtension() (ast.Definition, error) {
	return nil, nil
}

// tryDescription consumes a """description""" or a "string" token.
func (p *Parser) tryDescription() *string {
	s, ok := p.tryString()
	if !ok {
		return nil
	}
	return &s
}

// trySchemaDefinition parses schema @directives { query: Query ... }.
func (p *Parser) trySchemaDefinition(desc *string) (ast.Definition, error) {
	if !p.skipKeyword(token.SCHEMA) {
		return nil, nil
	}
	schema := &ast.SchemaDefinition{Description: desc}

	var err error
	if schema.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if !p.peekSymbol(token.LBRACE) {
		return nil, p.unexpected()
	}
	if schema.OperationTypes, err = optionalList(p, token.LBRACE, token.RBRACE, p.tryOperationTypeDefinition); err != nil {
		return nil, err
	}
	return schema, nil
}

func (p *Parser) tryOperationTypeDefinition() (*ast.OperationTypeDefinition, error) {
	operation, ok := p.tryOperationType()
	if !ok {
		return nil, nil
	}
	if err := p.expectSymbol(token.COLON); err != nil {
		return nil, err
	}
	t, err := p.parseNamedType()
	if err != nil {
		return nil, err
	}
	return &ast.OperationTypeDefinition{Operation: operation, Type: t}, nil
}

// tryScalarTypeDefinition parses scalar Name @directives.
func (p *Parser) tryScalarTypeDefinition(desc *string) (ast.Definition, error) {
	if !p.skipKeyword(token.SCALAR) {
		return nil, nil
	}
	scalar := &ast.ScalarTypeDefinition{Description: desc}

	var err error
	if scalar.Name, err = p.expectIdentifier(); err != nil {
		return nil, err
	}
	if scalar.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	return scalar, nil
}

// tryObjectTypeDefinition parses type Name implements A & B @directives { fields }.
func (p *Parser) tryObjectTypeDefinition(desc *string) (ast.Definition, error) {
	if !p.skipKeyword(token.TYPE) {
		return nil, nil
	}
	obj := &ast.ObjectTypeDefinition{Description: desc}

	var err error
	if obj.Name, err = p.expectIdentifier(); err != nil {
		return nil, err
	}
	if obj.Interfaces, err = p.parseImplementsInterfaces(); err != nil {
		return nil, err
	}
	if obj.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if obj.Fields, err = p.parseFieldsDefinition(); err != nil {
		return nil, err
	}
	return obj, nil
}

// tryInterfaceTypeDefinition parses interface Name implements A & B @directives { fields }.
func (p *Parser) tryInterfaceTypeDefinition(desc *string) (ast.Definition, error) {
	if !p.skipKeyword(token.INTERFACE) {
		return nil, nil
	}
	iface := &ast.InterfaceTypeDefinition{Description: desc}

	var err error
	if iface.Name, err = p.expectIdentifier(); err != nil {
		return nil, err
	}
	if iface.Interfaces, err = p.parseImplementsInterfaces(); err != nil {
		return nil, err
	}
	if iface.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if iface.Fields, err = p.parseFieldsDefinition(); err != nil {
		return nil, err
	}
	return iface, nil
}

// parseImplementsInterfaces parses implements [&] A & B. An absent clause is
// empty.
func (p *Parser) parseImplementsInterfaces() ([]*ast.NamedType, error) {
	if !p.skipKeyword(token.IMPLEMENTS) {
		return []*ast.NamedType{}, nil
	}
	return p.parseSeparatedNamedTypes(token.AMP)
}

// parseSeparatedNamedTypes parses [sep] A sep B sep C, at least one name.
func (p *Parser) parseSeparatedNamedTypes(sep token.SymbolKind) ([]*ast.NamedType, error) {
	p.skipSymbol(sep)
	types := []*ast.NamedType{}
	for {
		t, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
		if !p.skipSymbol(sep) {
			return types, nil
		}
	}
}

// parseFieldsDefinition parses { field: Type ... }. The block may be left
// out; when present it holds at least one field.
func (p *Parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	return optionalList(p, token.LBRACE, token.RBRACE, p.tryFieldDefinition)
}

// tryFieldDefinition parses "description" name(args): Type @directives.
func (p *Parser) tryFieldDefinition() (*ast.FieldDefinition, error) {
	desc := p.tryDescription()
	name, ok := p.tryName()
	if !ok {
		if desc != nil {
			return nil, p.unexpected()
		}
		return nil, nil
	}
	field := &ast.FieldDefinition{Description: desc, Name: name}

	var err error
	if field.Arguments, err = p.parseArgumentsDefinition(); err != nil {
		return nil, err
	}
	if err = p.expectSymbol(token.COLON); err != nil {
		return nil, err
	}
	if field.Type, err = p.parseType(); err != nil {
		return nil, err
	}
	if field.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	return field, nil
}

// parseArgumentsDefinition parses (name: Type = default, ...). An absent list
// is empty.
func (p *Parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	return optionalList(p, token.LPAREN, token.RPAREN, p.tryInputValueDefinition)
}

// tryInputValueDefinition parses "description" name: Type = default @directives.
func (p *Parser) tryInputValueDefinition() (*ast.InputValueDefinition, error) {
	desc := p.tryDescription()
	name, ok := p.tryName()
	if !ok {
		if desc != nil {
			return nil, p.unexpected()
		}
		return nil, nil
	}
	input := &ast.InputValueDefinition{Description: desc, Name: name}

	var err error
	if err = p.expectSymbol(token.COLON); err != nil {
		return nil, err
	}
	if input.Type, err = p.parseType(); err != nil {
		return nil, err
	}
	if input.DefaultValue, err = p.parseDefaultValue(); err != nil {
		return nil, err
	}
	if input.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	return input, nil
}

// tryUnionTypeDefinition parses union Name @directives = [|] A | B.
func (p *Parser) tryUnionTypeDefinition(desc *string) (ast.Definition, error) {
	if !p.skipKeyword(token.UNION) {
		return nil, nil
	}
	union := &ast.UnionTypeDefinition{Description: desc, Types: []*ast.NamedType{}}

	var err error
	if union.Name, err = p.expectIdentifier(); err != nil {
		return nil, err
	}
	if union.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if p.skipSymbol(token.ASSIGN) {
		if union.Types, err = p.parseSeparatedNamedTypes(token.PIPE); err != nil {
			return nil, err
		}
	}
	return union, nil
}

// tryEnumTypeDefinition parses enum Name @directives { VALUE ... }.
func (p *Parser) tryEnumTypeDefinition(desc *string) (ast.Definition, error) {
	if !p.skipKeyword(token.ENUM) {
		return nil, nil
	}
	enum := &ast.EnumTypeDefinition{Description: desc}

	var err error
	if enum.Name, err = p.expectIdentifier(); err != nil {
		return nil, err
	}
	if enum.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if enum.Values, err = optionalList(p, token.LBRACE, token.RBRACE, p.tryEnumValueDefinition); err != nil {
		return nil, err
	}
	return enum, nil
}

func (p *Parser) tryEnumValueDefinition() (*ast.EnumValueDefinition, error) {
	desc := p.tryDescription()
	name, ok := p.tryName()
	if !ok {
		if desc != nil {
			return nil, p.unexpected()
		}
		return nil, nil
	}
	value := &ast.EnumValueDefinition{Description: desc, Name: name}

	var err error
	if value.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	return value, nil
}

// tryInputObjectTypeDefinition parses input Name @directives { field: Type ... }.
func (p *Parser) tryInputObjectTypeDefinition(desc *string) (ast.Definition, error) {
	if !p.skipKeyword(token.INPUT) {
		return nil, nil
	}
	input := &ast.InputObjectTypeDefinition{Description: desc}

	var err error
	if input.Name, err = p.expectIdentifier(); err != nil {
		return nil, err
	}
	if input.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if input.Fields, err = optionalList(p, token.LBRACE, token.RBRACE, p.tryInputValueDefinition); err != nil {
		return nil, err
	}
	return input, nil
}

// tryDirectiveDefinition parses
// directive @name(args) [repeatable] on [|] LOCATION | LOCATION.
func (p *Parser) tryDirectiveDefinition(desc *string) (ast.Definition, error) {
	if !p.skipKeyword(token.DIRECTIVE) {
		return nil, nil
	}
	directive := &ast.DirectiveDefinition{Description: desc}

	var err error
	if err = p.expectSymbol(token.AT); err != nil {
		return nil, err
	}
	if directive.Name, err = p.expectIdentifier(); err != nil {
		return nil, err
	}
	if directive.Arguments, err = p.parseArgumentsDefinition(); err != nil {
		return nil, err
	}
	directive.Repeatable = p.skipKeyword(token.REPEATABLE)
	if err = p.expectKeyword(token.ON); err != nil {
		return nil, err
	}
	if directive.Locations, err = p.parseDirectiveLocations(); err != nil {
		return nil, err
	}
	return directive, nil
}

// parseDirectiveLocations parses [|] A | B | C, at least one location.
func (p *Parser) parseDirectiveLocations() ([]string, error) {
	p.skipSymbol(token.PIPE)
	locations := []string{}
	for {
		location, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
		if !p.skipSymbol(token.PIPE) {
			return locations, nil
		}
	}
}
