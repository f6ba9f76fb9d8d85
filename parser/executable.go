package parser

import (
	"github.com/Protocol-Lattice/gqlparse/ast"
	"github.com/Protocol-Lattice/gqlparse/token"
)

func (p *Parser) tryExecutableDefinition() (ast.Definition, error) {
	return first(p.tryOperationDefinition, p.tryFragmentDefinition)
}

// tryOperationDefinition parses a query, mutation, or subscription operation.
// A bare selection set is an anonymous query.
func (p *Parser) tryOperationDefinition() (ast.Definition, error) {
	if p.peekSymbol(token.LBRACE) {
		ss, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.OperationDefinition{
			Operation:           ast.Query,
			VariableDefinitions: []*ast.VariableDefinition{},
			Directives:          []*ast.Directive{},
			SelectionSet:        ss,
		}, nil
	}

	operation, ok := p.tryOperationType()
	if !ok {
		return nil, nil
	}
	op := &ast.OperationDefinition{Operation: operation}
	op.Name, _ = p.tryName()

	var err error
	if op.VariableDefinitions, err = p.parseVariableDefinitions(); err != nil {
		return nil, err
	}
	if op.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if op.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return nil, err
	}
	return op, nil
}

// tryOperationType consumes query, mutation or subscription.
func (p *Parser) tryOperationType() (ast.OperationType, bool) {
	switch {
	case p.skipKeyword(token.QUERY):
		return ast.Query, true
	case p.skipKeyword(token.MUTATION):
		return ast.Mutation, true
	case p.skipKeyword(token.SUBSCRIPTION):
		return ast.Subscription, true
	}
	return "", false
}

// tryFragmentDefinition parses fragment Name on Type { ... }.
func (p *Parser) tryFragmentDefinition() (ast.Definition, error) {
	if !p.skipKeyword(token.FRAGMENT) {
		return nil, nil
	}
	frag := &ast.FragmentDefinition{}

	var err error
	if frag.Name, err = p.expectIdentifier(); err != nil {
		return nil, err
	}
	if frag.VariableDefinitions, err = p.parseVariableDefinitions(); err != nil {
		return nil, err
	}
	if err = p.expectKeyword(token.ON); err != nil {
		return nil, err
	}
	if frag.TypeCondition, err = p.parseNamedType(); err != nil {
		return nil, err
	}
	if frag.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if frag.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return nil, err
	}
	return frag, nil
}

// parseVariableDefinitions parses ($a: T, ...). An absent list is empty; a
// present one holds at least one definition.
func (p *Parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	return optionalList(p, token.LPAREN, token.RPAREN, p.tryVariableDefinition)
}

// tryVariableDefinition parses $name: Type [= default] @directives.
func (p *Parser) tryVariableDefinition() (*ast.VariableDefinition, error) {
	if !p.skipSymbol(token.DOLLAR) {
		return nil, nil
	}
	v := &ast.VariableDefinition{}

	var err error
	if v.Variable, err = p.expectName(); err != nil {
		return nil, err
	}
	if err = p.expectSymbol(token.COLON); err != nil {
		return nil, err
	}
	if v.Type, err = p.parseType(); err != nil {
		return nil, err
	}
	if v.DefaultValue, err = p.parseDefaultValue(); err != nil {
		return nil, err
	}
	if v.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	return v, nil
}

// parseDefaultValue parses an optional "= Value".
func (p *Parser) parseDefaultValue() (ast.Value, error) {
	if !p.skipSymbol(token.ASSIGN) {
		return nil, nil
	}
	return p.parseValue()
}

// trySelectionSet parses { selection+ }.
func (p *Parser) trySelectionSet() (*ast.SelectionSet, error) {
	selections, ok, err := nested(p, token.LBRACE, token.RBRACE, true, p.trySelection)
	if err != nil || !ok {
		return nil, err
	}
	return &ast.SelectionSet{Selections: selections}, nil
}

func (p *Parser) parseSelectionSet() (*ast.SelectionSet, error) {
	ss, err := p.trySelectionSet()
	if err != nil {
		return nil, err
	}
	if ss == nil {
		return nil, p.unexpected()
	}
	return ss, nil
}

func (p *Parser) trySelection() (ast.Selection, error) {
	return first(p.tryField, p.tryFragment)
}

// tryField parses [alias:] name(args) @directives { ... }.
func (p *Parser) tryField() (ast.Selection, error) {
	name, ok := p.tryName()
	if !ok {
		return nil, nil
	}
	field := &ast.Field{Name: name}

	var err error
	if p.skipSymbol(token.COLON) {
		field.Alias = name
		if field.Name, err = p.expectName(); err != nil {
			return nil, err
		}
	}
	if field.Arguments, err = p.parseArguments(); err != nil {
		return nil, err
	}
	if field.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if field.SelectionSet, err = p.trySelectionSet(); err != nil {
		return nil, err
	}
	return field, nil
}

// tryFragment parses a fragment spread (...Name) or an inline fragment
// (... [on Type] @directives { ... }). Fragment names are identifiers, so
// the on keyword always starts an inline fragment.
func (p *Parser) tryFragment() (ast.Selection, error) {
	if !p.skipSymbol(token.SPREAD) {
		return nil, nil
	}

	if name, ok := p.tryIdentifier(); ok {
		spread := &ast.FragmentSpread{Name: name}
		var err error
		if spread.Directives, err = p.parseDirectives(); err != nil {
			return nil, err
		}
		return spread, nil
	}

	inline := &ast.InlineFragment{}
	var err error
	if p.skipKeyword(token.ON) {
		if inline.TypeCondition, err = p.parseNamedType(); err != nil {
			return nil, err
		}
	}
	if inline.Directives, err = p.parseDirectives(); err != nil {
		return nil, err
	}
	if inline.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return nil, err
	}
	return inline, nil
}

// parseArguments parses (name: value, ...). An absent list is empty.
func (p *Parser) parseArguments() ([]*ast.Argument, error) {
	return optionalList(p, token.LPAREN, token.RPAREN, p.tryArgument)
}

func (p *Parser) tryArgument() (*ast.Argument, error) {
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
	return &ast.Argument{Name: name, Value: value}, nil
}

// parseDirectives parses any number of @name(args).
func (p *Parser) parseDirectives() ([]*ast.Directive, error) {
	return many(p.tryDirective)
}

func (p *Parser) tryDirective() (*ast.Directive, error) {
	if !p.skipSymbol(token.AT) {
		return nil, nil
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	return &ast.Directive{Name: name, Arguments: args}, nil
}
