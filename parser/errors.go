package parser

import (
	"errors"

	"github.com/Protocol-Lattice/gqlparse/token"
)

// ErrUnexpectedToken matches every *UnexpectedTokenError under errors.Is.
var ErrUnexpectedToken = errors.New("unexpected token")

// UnexpectedTokenError is the only error the parser returns. Token is the
// token that could not continue the grammar, or nil when the input ended
// where a token was required.
type UnexpectedTokenError struct {
	Token *token.Token
}

func (e *UnexpectedTokenError) Error() string {
	if e.Token == nil {
		return "unexpected end of input"
	}
	return "unexpected token " + e.Token.String()
}

func (e *UnexpectedTokenError) Is(target error) bool {
	return target == ErrUnexpectedToken
}
