package token

import (
	"strconv"
)

// TokenType represents the kind of a token produced by the GraphQL lexer.
type TokenType string

const (
	ILLEGAL     TokenType = "ILLEGAL"     // A single unrecognized character
	SYMBOL      TokenType = "SYMBOL"      // Punctuation, see SymbolKind
	DESCRIPTION TokenType = "DESCRIPTION" // """text"""
	STRING      TokenType = "STRING"      // "text"
	FLOAT       TokenType = "FLOAT"       // 1.5
	INT         TokenType = "INT"         // 15
	BOOLEAN     TokenType = "BOOLEAN"     // true, false
	NULL        TokenType = "NULL"        // null
	KEYWORD     TokenType = "KEYWORD"     // Reserved words, see KeywordKind
	IDENT       TokenType = "IDENT"       // Names (field names, type names, etc.)
)

// SymbolKind identifies a punctuator. The value is its lexeme.
type SymbolKind string

const (
	LPAREN   SymbolKind = "("
	RPAREN   SymbolKind = ")"
	LBRACE   SymbolKind = "{"
	RBRACE   SymbolKind = "}"
	LBRACKET SymbolKind = "["
	RBRACKET SymbolKind = "]"
	PIPE     SymbolKind = "|"
	ASSIGN   SymbolKind = "="
	AMP      SymbolKind = "&"
	DOLLAR   SymbolKind = "$"
	AT       SymbolKind = "@"
	DOT      SymbolKind = "."
	SPREAD   SymbolKind = "..."
	COLON    SymbolKind = ":"
	BANG     SymbolKind = "!"
)

// Symbols lists every punctuator, longest lexeme first.
var Symbols = []SymbolKind{
	SPREAD,
	LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET,
	PIPE, ASSIGN, AMP, DOLLAR, AT, DOT, COLON, BANG,
}

// KeywordKind identifies a reserved word. The value is the word itself.
type KeywordKind string

const (
	EXTEND       KeywordKind = "extend"
	SCHEMA       KeywordKind = "schema"
	QUERY        KeywordKind = "query"
	MUTATION     KeywordKind = "mutation"
	SUBSCRIPTION KeywordKind = "subscription"
	TYPE         KeywordKind = "type"
	INPUT        KeywordKind = "input"
	ENUM         KeywordKind = "enum"
	UNION        KeywordKind = "union"
	INTERFACE    KeywordKind = "interface"
	SCALAR       KeywordKind = "scalar"
	DIRECTIVE    KeywordKind = "directive"
	FRAGMENT     KeywordKind = "fragment"
	ON           KeywordKind = "on"
	IMPLEMENTS   KeywordKind = "implements"
	REPEATABLE   KeywordKind = "repeatable"
)

var keywords = map[string]KeywordKind{
	"extend":       EXTEND,
	"schema":       SCHEMA,
	"query":        QUERY,
	"mutation":     MUTATION,
	"subscription": SUBSCRIPTION,
	"type":         TYPE,
	"input":        INPUT,
	"enum":         ENUM,
	"union":        UNION,
	"interface":    INTERFACE,
	"scalar":       SCALAR,
	"directive":    DIRECTIVE,
	"fragment":     FRAGMENT,
	"on":           ON,
	"implements":   IMPLEMENTS,
	"repeatable":   REPEATABLE,
}

// LookupKeyword reports whether name is a reserved word. The match is exact
// and case-sensitive.
func LookupKeyword(name string) (KeywordKind, bool) {
	kw, ok := keywords[name]
	return kw, ok
}

// Token represents a single token in the GraphQL source.
//
// Only the payload field matching Type is set, so two tokens are equal under
// == exactly when they have the same kind and the same payload.
type Token struct {
	Type    TokenType   // The kind of the token
	Symbol  SymbolKind  // SYMBOL
	Keyword KeywordKind // KEYWORD
	Text    string      // DESCRIPTION, STRING, IDENT
	Float   float64     // FLOAT
	Int     int32       // INT
	Bool    bool        // BOOLEAN
	Char    rune        // ILLEGAL
}

func Sym(kind SymbolKind) Token { return Token{Type: SYMBOL, Symbol: kind} }

func Keyword(kind KeywordKind) Token { return Token{Type: KEYWORD, Keyword: kind} }

func Ident(name string) Token { return Token{Type: IDENT, Text: name} }

func Description(text string) Token { return Token{Type: DESCRIPTION, Text: text} }

func String(text string) Token { return Token{Type: STRING, Text: text} }

func Float(v float64) Token { return Token{Type: FLOAT, Float: v} }

func Int(v int32) Token { return Token{Type: INT, Int: v} }

func Bool(v bool) Token { return Token{Type: BOOLEAN, Bool: v} }

func Null() Token { return Token{Type: NULL} }

func Illegal(ch rune) Token { return Token{Type: ILLEGAL, Char: ch} }

// IsSymbol reports whether t is the given punctuator.
func (t Token) IsSymbol(kind SymbolKind) bool {
	return t.Type == SYMBOL && t.Symbol == kind
}

// IsKeyword reports whether t is the given reserved word.
func (t Token) IsKeyword(kind KeywordKind) bool {
	return t.Type == KEYWORD && t.Keyword == kind
}

// Lexeme returns the payload rendered the way it would appear in source.
func (t Token) Lexeme() string {
	switch t.Type {
	case SYMBOL:
		return string(t.Symbol)
	case KEYWORD:
		return string(t.Keyword)
	case IDENT:
		return t.Text
	case DESCRIPTION:
		return `"""` + t.Text + `"""`
	case STRING:
		return strconv.Quote(t.Text)
	case FLOAT:
		return strconv.FormatFloat(t.Float, 'g', -1, 64)
	case INT:
		return strconv.FormatInt(int64(t.Int), 10)
	case BOOLEAN:
		return strconv.FormatBool(t.Bool)
	case NULL:
		return "null"
	case ILLEGAL:
		return string(t.Char)
	default:
		return ""
	}
}

// String renders the token for diagnostics, e.g. KEYWORD(type) or ILLEGAL('\x01').
func (t Token) String() string {
	if t.Type == ILLEGAL {
		return string(t.Type) + "(" + strconv.QuoteRune(t.Char) + ")"
	}
	return string(t.Type) + "(" + t.Lexeme() + ")"
}
