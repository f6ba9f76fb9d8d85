package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Protocol-Lattice/gqlparse/token"
)

const (
	bom          = '\uFEFF'
	blockQuote   = `"""`
	eofCharacter = -1
)

// Lexer tokenizes GraphQL source code.
//
// A Lexer makes a single forward pass over its input and cannot be
// restarted. It must not be used from more than one goroutine at a time.
type Lexer struct {
	input        string // The input string
	position     int    // Current position in input (points to current char)
	readPosition int    // Next reading position (after current char)
	ch           rune   // Current char under examination, eofCharacter at the end
}

// New creates a new Lexer for the given input string.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize runs a fresh lexer over input to exhaustion.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	for {
		tok, ok := l.NextToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// readChar advances the lexer to the next character.
func (l *Lexer) readChar() {
	l.position = l.readPosition
	if l.readPosition >= len(l.input) {
		l.ch = eofCharacter
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.readPosition += w
}

// advance consumes n bytes of ASCII text starting at the current char.
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		l.readChar()
	}
}

func (l *Lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(l.input[l.position:], s)
}

// HasNext reports whether NextToken would produce another token.
func (l *Lexer) HasNext() bool {
	l.skipIgnored()
	return l.ch != eofCharacter
}

// NextToken returns the next token from the input. The second result is false
// once the input is exhausted.
func (l *Lexer) NextToken() (token.Token, bool) {
	l.skipIgnored()
	if l.ch == eofCharacter {
		return token.Token{}, false
	}

	if l.hasPrefix(blockQuote) {
		return l.readDescription(), true
	}
	if tok, ok := l.readSymbol(); ok {
		return tok, true
	}
	if l.ch == '"' {
		return l.readString(), true
	}
	if isDigit(l.ch) {
		return l.readNumber(), true
	}
	if isLetter(l.ch) {
		return classify(l.readName()), true
	}
	return l.illegal(eofCharacter), true
}

// skipIgnored advances past whitespace, line terminators, comments, commas
// and byte order marks.
func (l *Lexer) skipIgnored() {
	for {
		switch l.ch {
		case bom, ' ', '\t', '\n', '\r', ',':
			l.readChar()
		case '#':
			for l.ch != eofCharacter && !isLineTerminator(l.ch) {
				l.readChar()
			}
		default:
			return
		}
	}
}

// readSymbol consumes a punctuator, preferring "..." over ".".
func (l *Lexer) readSymbol() (token.Token, bool) {
	for _, sym := range token.Symbols {
		if l.hasPrefix(string(sym)) {
			l.advance(len(sym))
			return token.Sym(sym), true
		}
	}
	return token.Token{}, false
}

// readDescription reads a """-delimited description. The body may not span
// lines.
func (l *Lexer) readDescription() token.Token {
	l.advance(len(blockQuote))
	start := l.position
	for l.ch != eofCharacter && !isLineTerminator(l.ch) && !l.hasPrefix(blockQuote) {
		l.readChar()
	}
	if !l.hasPrefix(blockQuote) {
		return l.illegal('"')
	}
	text := l.input[start:l.position]
	l.advance(len(blockQuote))
	return token.Description(text)
}

// readString reads a string literal from the input. Strings end at the
// closing quote and may not span lines.
func (l *Lexer) readString() token.Token {
	// skip opening quote
	l.readChar()
	start := l.position
	for l.ch != eofCharacter && l.ch != '"' && !isLineTerminator(l.ch) {
		l.readChar()
	}
	if l.ch != '"' {
		return l.illegal('"')
	}
	str := l.input[start:l.position]
	// skip closing quote
	l.readChar()
	return token.String(str)
}

// readNumber reads an integer or a float literal.
func (l *Lexer) readNumber() token.Token {
	integer := l.readDigits()
	if l.ch != '.' {
		v, err := strconv.ParseInt(integer, 10, 32)
		if err != nil {
			return l.illegal(rune(integer[len(integer)-1]))
		}
		return token.Int(int32(v))
	}

	l.readChar() // skip '.'
	fraction := l.readDigits()
	if fraction == "" {
		return l.illegal('.')
	}
	v, err := strconv.ParseFloat(integer+"."+fraction, 64)
	if err != nil {
		return l.illegal(rune(fraction[len(fraction)-1]))
	}
	return token.Float(v)
}

func (l *Lexer) readDigits() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readName reads an identifier from the input.
func (l *Lexer) readName() string {
	start := l.position
	for isNameContinue(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// illegal consumes the current character and wraps it in an ILLEGAL token.
// At the end of input there is nothing left to consume and fallback is
// wrapped instead.
func (l *Lexer) illegal(fallback rune) token.Token {
	if l.ch == eofCharacter {
		return token.Illegal(fallback)
	}
	ch := l.ch
	l.readChar()
	return token.Illegal(ch)
}

// classify turns a scanned name into a literal, keyword or identifier token.
func classify(name string) token.Token {
	switch name {
	case "true":
		return token.Bool(true)
	case "false":
		return token.Bool(false)
	case "null":
		return token.Null()
	}
	if kw, ok := token.LookupKeyword(name); ok {
		return token.Keyword(kw)
	}
	return token.Ident(name)
}

func isLineTerminator(ch rune) bool {
	return ch == '\n' || ch == '\r'
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if a rune is a decimal digit.
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// Names start with a letter. Digits and underscores may follow.
func isNameContinue(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}
